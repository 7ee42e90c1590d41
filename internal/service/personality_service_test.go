package service

import (
	"testing"

	"github.com/skillforge/skillforge/internal/apperror"
	"github.com/skillforge/skillforge/internal/model"
)

func TestScorePersonality(t *testing.T) {
	cases := []struct {
		name      string
		answers   map[string]string
		wantScore int
		wantLevel string
	}{
		{
			name: "all top answers",
			answers: map[string]string{
				"1": "A", "2": "A", "3": "A", "4": "A", "5": "A", "6": "A", "7": "A",
			},
			wantScore: 28,
			wantLevel: model.LearningLevelFast,
		},
		{
			name: "fast lower bound",
			answers: map[string]string{
				"1": "A", "2": "A", "3": "A", "4": "A", "5": "A", "6": "A",
			},
			wantScore: 24,
			wantLevel: model.LearningLevelFast,
		},
		{
			name: "just below fast",
			answers: map[string]string{
				"1": "A", "2": "A", "3": "A", "4": "A", "5": "A", "6": "B",
			},
			wantScore: 23,
			wantLevel: model.LearningLevelAverage,
		},
		{
			name: "average lower bound",
			answers: map[string]string{
				"1": "A", "2": "A", "3": "A", "4": "A",
			},
			wantScore: 16,
			wantLevel: model.LearningLevelAverage,
		},
		{
			name: "just below average",
			answers: map[string]string{
				"1": "A", "2": "A", "3": "A", "4": "B",
			},
			wantScore: 15,
			wantLevel: model.LearningLevelSlow,
		},
		{
			name:      "empty submission",
			answers:   map[string]string{},
			wantScore: 0,
			wantLevel: model.LearningLevelSlow,
		},
		{
			name: "unknown options and question ids contribute zero",
			answers: map[string]string{
				"1": "Z", "99": "A", "2": "C",
			},
			wantScore: 2,
			wantLevel: model.LearningLevelSlow,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			score, level := ScorePersonality(tc.answers)
			if score != tc.wantScore {
				t.Errorf("score = %d, want %d", score, tc.wantScore)
			}
			if level != tc.wantLevel {
				t.Errorf("level = %q, want %q", level, tc.wantLevel)
			}
		})
	}
}

func TestQuestionsHideWeights(t *testing.T) {
	svc := NewPersonalityService(&stubPersonalityAttemptRepo{}, newStubReportRepo())

	questions := svc.Questions()
	if len(questions) != 7 {
		t.Fatalf("got %d questions, want 7", len(questions))
	}
	for _, q := range questions {
		if len(q.Options) != 4 {
			t.Errorf("question %d has %d options, want 4", q.ID, len(q.Options))
		}
		if q.Options[0] != "A" || q.Options[3] != "D" {
			t.Errorf("question %d options not sorted: %v", q.ID, q.Options)
		}
	}
}

func TestSubmitAssessmentUpdatesReport(t *testing.T) {
	attemptRepo := &stubPersonalityAttemptRepo{}
	reportRepo := newStubReportRepo()
	if _, err := reportRepo.GetOrCreate(1); err != nil {
		t.Fatal(err)
	}

	svc := NewPersonalityService(attemptRepo, reportRepo)

	result, err := svc.SubmitAssessment(1, map[string]string{
		"1": "A", "2": "A", "3": "A", "4": "A", "5": "A", "6": "A", "7": "A",
	})
	if err != nil {
		t.Fatalf("SubmitAssessment: %v", err)
	}
	if result.Score != 28 || result.LearningLevel != model.LearningLevelFast {
		t.Errorf("result = %+v, want score 28 fast", result)
	}

	if len(attemptRepo.attempts) != 1 {
		t.Fatalf("got %d attempts, want 1", len(attemptRepo.attempts))
	}
	report, _ := reportRepo.FindByStudentID(1)
	if report.PersonalityScore != 28 {
		t.Errorf("report personality score = %d, want 28", report.PersonalityScore)
	}
}

func TestSubmitAssessmentAttemptsAreImmutable(t *testing.T) {
	attemptRepo := &stubPersonalityAttemptRepo{}
	reportRepo := newStubReportRepo()
	if _, err := reportRepo.GetOrCreate(1); err != nil {
		t.Fatal(err)
	}

	svc := NewPersonalityService(attemptRepo, reportRepo)

	if _, err := svc.SubmitAssessment(1, map[string]string{"1": "A"}); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.SubmitAssessment(1, map[string]string{"1": "D"}); err != nil {
		t.Fatal(err)
	}

	// Both attempts are kept; the report carries the latest score.
	if len(attemptRepo.attempts) != 2 {
		t.Fatalf("got %d attempts, want 2", len(attemptRepo.attempts))
	}
	if attemptRepo.attempts[0].TotalScore != 4 {
		t.Errorf("first attempt score = %d, want 4", attemptRepo.attempts[0].TotalScore)
	}
	report, _ := reportRepo.FindByStudentID(1)
	if report.PersonalityScore != 1 {
		t.Errorf("report personality score = %d, want 1", report.PersonalityScore)
	}
}

func TestSubmitAssessmentWithoutReport(t *testing.T) {
	svc := NewPersonalityService(&stubPersonalityAttemptRepo{}, newStubReportRepo())

	_, err := svc.SubmitAssessment(42, map[string]string{"1": "A"})
	if !apperror.IsNotFound(err) {
		t.Errorf("got %v, want not-found error", err)
	}
}
