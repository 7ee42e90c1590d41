package service

import (
	"testing"

	"github.com/skillforge/skillforge/internal/apperror"
	"github.com/skillforge/skillforge/internal/dto"
	"github.com/skillforge/skillforge/internal/model"
)

type skillTestFixture struct {
	studentRepo  *stubStudentRepo
	reportRepo   *stubReportRepo
	categoryRepo *stubCategoryRepo
	attemptRepo  *stubSkillAttemptRepo
	sessionRepo  *stubSessionRepo
	engine       *stubEngine
	svc          SkillTestService
	studentID    uint
	categoryID   uint
}

func newSkillTestFixture(t *testing.T) *skillTestFixture {
	t.Helper()
	f := &skillTestFixture{
		studentRepo:  newStubStudentRepo(),
		reportRepo:   newStubReportRepo(),
		categoryRepo: newStubCategoryRepo(),
		attemptRepo:  newStubSkillAttemptRepo(),
		sessionRepo:  newStubSessionRepo(),
		engine:       &stubEngine{},
	}
	f.svc = NewSkillTestService(f.studentRepo, f.reportRepo, f.categoryRepo, f.attemptRepo, f.sessionRepo, f.engine)

	student := &model.Student{Name: "Alice", Email: "alice@example.com"}
	if err := f.studentRepo.Create(student); err != nil {
		t.Fatal(err)
	}
	f.studentID = student.ID
	if _, err := f.reportRepo.GetOrCreate(student.ID); err != nil {
		t.Fatal(err)
	}

	category := &model.SkillCategory{Name: "Backend Development"}
	if err := f.categoryRepo.Create(category); err != nil {
		t.Fatal(err)
	}
	f.categoryID = category.ID
	return f
}

func (f *skillTestFixture) generate(t *testing.T) *dto.SkillTestResponse {
	t.Helper()
	test, err := f.svc.Generate(dto.GenerateSkillTestRequest{StudentID: f.studentID, CategoryID: f.categoryID})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return test
}

func TestGenerateStripsCorrectAnswers(t *testing.T) {
	f := newSkillTestFixture(t)

	test := f.generate(t)
	if test.TotalQuestions != 5 {
		t.Errorf("total questions = %d, want 5", test.TotalQuestions)
	}
	if len(test.Questions) != 5 {
		t.Fatalf("got %d questions, want 5", len(test.Questions))
	}
	for _, q := range test.Questions {
		if len(q.Options) != 4 {
			t.Errorf("question %d has %d options, want 4", q.Index, len(q.Options))
		}
	}

	// The stored attempt keeps the answer key; the response must not.
	attempt, err := f.attemptRepo.FindByIDAndStudent(test.AttemptID, f.studentID)
	if err != nil {
		t.Fatal(err)
	}
	if len(attempt.Questions) == 0 {
		t.Error("attempt questions were not persisted")
	}
}

func TestGenerateMissingPrerequisites(t *testing.T) {
	f := newSkillTestFixture(t)

	cases := []struct {
		name string
		req  dto.GenerateSkillTestRequest
	}{
		{"unknown student", dto.GenerateSkillTestRequest{StudentID: 999, CategoryID: f.categoryID}},
		{"unknown category", dto.GenerateSkillTestRequest{StudentID: f.studentID, CategoryID: 999}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := f.svc.Generate(tc.req); !apperror.IsNotFound(err) {
				t.Errorf("got %v, want not-found error", err)
			}
		})
	}
}

func TestGenerateRejectsForeignSession(t *testing.T) {
	f := newSkillTestFixture(t)
	session := &model.ExamSession{StudentID: f.studentID + 100, IsActive: true}
	if err := f.sessionRepo.Create(session); err != nil {
		t.Fatal(err)
	}

	_, err := f.svc.Generate(dto.GenerateSkillTestRequest{
		StudentID:  f.studentID,
		CategoryID: f.categoryID,
		SessionID:  &session.ID,
	})
	if !apperror.IsValidation(err) {
		t.Errorf("got %v, want validation error", err)
	}
}

func TestGenerateFailsFastOnEngineError(t *testing.T) {
	f := newSkillTestFixture(t)
	f.engine.err = apperror.NewAnalysis(errStubFailure)

	_, err := f.svc.Generate(dto.GenerateSkillTestRequest{StudentID: f.studentID, CategoryID: f.categoryID})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if len(f.attemptRepo.attempts) != 0 {
		t.Errorf("attempt was created despite generation failure")
	}
}

func TestSubmitScoresPositionally(t *testing.T) {
	f := newSkillTestFixture(t)
	test := f.generate(t)

	// Correct answer is A for every generated stub question.
	result, err := f.svc.Submit(dto.SubmitSkillTestRequest{
		StudentID: f.studentID,
		AttemptID: test.AttemptID,
		Answers:   []string{"A", "A", "A", "B", "C"},
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if result.Status != "completed" {
		t.Errorf("status = %q, want completed", result.Status)
	}
	if result.Score != 3 {
		t.Errorf("score = %d, want 3", result.Score)
	}
	if result.Percentage != 60.0 {
		t.Errorf("percentage = %v, want 60", result.Percentage)
	}
	if !result.Passed {
		t.Error("60% must pass")
	}

	report, _ := f.reportRepo.FindByStudentID(f.studentID)
	if report.Stage != model.StageVerified {
		t.Errorf("stage = %q, want verified", report.Stage)
	}
	if report.SkillTestScore != 60.0 {
		t.Errorf("report skill score = %v, want 60", report.SkillTestScore)
	}
	if decodeJSONMap(report.FinalAnalysis)["verdict"] != "PASS" {
		t.Errorf("final analysis = %s", report.FinalAnalysis)
	}
}

func TestSubmitFailingScore(t *testing.T) {
	f := newSkillTestFixture(t)
	test := f.generate(t)

	result, err := f.svc.Submit(dto.SubmitSkillTestRequest{
		StudentID: f.studentID,
		AttemptID: test.AttemptID,
		Answers:   []string{"A", "B", "B", "B", "B"},
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if result.Passed {
		t.Error("20% must not pass")
	}
	report, _ := f.reportRepo.FindByStudentID(f.studentID)
	if report.Stage != model.StageNeedsImprovement {
		t.Errorf("stage = %q, want needs_improvement", report.Stage)
	}
}

func TestSubmitShortAnswerListIgnoresMissingPositions(t *testing.T) {
	f := newSkillTestFixture(t)
	test := f.generate(t)

	result, err := f.svc.Submit(dto.SubmitSkillTestRequest{
		StudentID: f.studentID,
		AttemptID: test.AttemptID,
		Answers:   []string{"A"},
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if result.Score != 1 || result.Percentage != 20.0 {
		t.Errorf("score = %d/%v, want 1/20", result.Score, result.Percentage)
	}
}

func TestSubmitEmptyAttemptHasZeroPercentage(t *testing.T) {
	f := newSkillTestFixture(t)

	attempt := &model.SkillTestAttempt{StudentID: f.studentID, CategoryID: f.categoryID}
	if err := f.attemptRepo.Create(attempt); err != nil {
		t.Fatal(err)
	}

	result, err := f.svc.Submit(dto.SubmitSkillTestRequest{
		StudentID: f.studentID,
		AttemptID: attempt.ID,
		Answers:   []string{},
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if result.Percentage != 0 || result.Passed {
		t.Errorf("result = %+v, want zero percentage and not passed", result)
	}
}

func TestSubmitFlaggedSessionDisqualifies(t *testing.T) {
	f := newSkillTestFixture(t)

	session := &model.ExamSession{StudentID: f.studentID, IsActive: true, IsFlagged: true, RiskScore: 65}
	if err := f.sessionRepo.Create(session); err != nil {
		t.Fatal(err)
	}
	f.attemptRepo.sessions[session.ID] = session

	attempt := &model.SkillTestAttempt{
		StudentID:        f.studentID,
		CategoryID:       f.categoryID,
		ProctorSessionID: &session.ID,
		TotalQuestions:   5,
	}
	if err := f.attemptRepo.Create(attempt); err != nil {
		t.Fatal(err)
	}

	result, err := f.svc.Submit(dto.SubmitSkillTestRequest{
		StudentID: f.studentID,
		AttemptID: attempt.ID,
		Answers:   []string{"A", "A", "A", "A", "A"},
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if result.Status != "flagged" {
		t.Errorf("status = %q, want flagged", result.Status)
	}
	if result.RiskScore != 65 {
		t.Errorf("risk score = %v, want 65", result.RiskScore)
	}
	if result.Message != "Test disqualified due to suspicious activity" {
		t.Errorf("message = %q", result.Message)
	}

	// No evaluation, no report mutation.
	if attempt.IsEvaluated {
		t.Error("flagged attempt was evaluated")
	}
	report, _ := f.reportRepo.FindByStudentID(f.studentID)
	if report.SkillTestScore != 0 || report.Stage != model.StageTemporary {
		t.Errorf("report mutated by flagged submission: %+v", report)
	}
	if f.engine.calls != 0 {
		t.Errorf("engine was called %d times for flagged submission", f.engine.calls)
	}
}

func TestSubmitTwiceIsRejected(t *testing.T) {
	f := newSkillTestFixture(t)
	test := f.generate(t)

	answers := []string{"A", "A", "A", "A", "A"}
	if _, err := f.svc.Submit(dto.SubmitSkillTestRequest{StudentID: f.studentID, AttemptID: test.AttemptID, Answers: answers}); err != nil {
		t.Fatal(err)
	}

	_, err := f.svc.Submit(dto.SubmitSkillTestRequest{StudentID: f.studentID, AttemptID: test.AttemptID, Answers: answers})
	if !apperror.IsConflict(err) {
		t.Errorf("got %v, want conflict error", err)
	}
}

func TestSubmitUnknownAttempt(t *testing.T) {
	f := newSkillTestFixture(t)

	_, err := f.svc.Submit(dto.SubmitSkillTestRequest{StudentID: f.studentID, AttemptID: 999, Answers: []string{"A"}})
	if !apperror.IsNotFound(err) {
		t.Errorf("got %v, want not-found error", err)
	}
}

func TestSubmitRejectsForeignAttempt(t *testing.T) {
	f := newSkillTestFixture(t)
	test := f.generate(t)

	_, err := f.svc.Submit(dto.SubmitSkillTestRequest{StudentID: f.studentID + 1, AttemptID: test.AttemptID, Answers: []string{"A"}})
	if !apperror.IsNotFound(err) {
		t.Errorf("got %v, want not-found error", err)
	}
}
