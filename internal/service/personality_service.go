package service

import (
	"encoding/json"
	"errors"
	"sort"
	"strconv"

	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/skillforge/skillforge/internal/apperror"
	"github.com/skillforge/skillforge/internal/dto"
	"github.com/skillforge/skillforge/internal/model"
	"github.com/skillforge/skillforge/internal/repository"
)

// Tier thresholds, inclusive lower bounds.
const (
	fastThreshold    = 24
	averageThreshold = 16
)

type PersonalityService interface {
	Questions() []dto.PersonalityQuestionResponse
	SubmitAssessment(studentID uint, answers map[string]string) (*dto.PersonalityResultResponse, error)
}

type personalityService struct {
	attemptRepo repository.PersonalityAttemptRepository
	reportRepo  repository.ReportRepository
}

func NewPersonalityService(
	attemptRepo repository.PersonalityAttemptRepository,
	reportRepo repository.ReportRepository,
) PersonalityService {
	return &personalityService{attemptRepo: attemptRepo, reportRepo: reportRepo}
}

func (s *personalityService) Questions() []dto.PersonalityQuestionResponse {
	questions := make([]dto.PersonalityQuestionResponse, 0, len(personalityQuestions))
	for _, q := range personalityQuestions {
		labels := make([]string, 0, len(q.Options))
		for label := range q.Options {
			labels = append(labels, label)
		}
		sort.Strings(labels)
		questions = append(questions, dto.PersonalityQuestionResponse{
			ID:      q.ID,
			Prompt:  q.Prompt,
			Options: labels,
		})
	}
	return questions
}

func (s *personalityService) SubmitAssessment(studentID uint, answers map[string]string) (*dto.PersonalityResultResponse, error) {
	// The report must already exist: personality scoring feeds an existing
	// verification flow, it does not start one.
	report, err := s.reportRepo.FindByStudentID(studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFound("report", studentID)
		}
		return nil, err
	}

	total, level := ScorePersonality(answers)

	answersJSON, err := json.Marshal(answers)
	if err != nil {
		return nil, err
	}

	attempt := &model.PersonalityAttempt{
		StudentID:     studentID,
		Answers:       datatypes.JSON(answersJSON),
		TotalScore:    total,
		LearningLevel: level,
	}
	if err := s.attemptRepo.Create(attempt); err != nil {
		return nil, err
	}

	report.PersonalityScore = total
	if err := s.reportRepo.Update(report); err != nil {
		return nil, err
	}

	log.Info().Uint("studentID", studentID).Int("score", total).Str("level", level).Msg("Personality assessment recorded")

	return &dto.PersonalityResultResponse{Score: total, LearningLevel: level}, nil
}

// ScorePersonality sums the weights of matched answers. Missing or
// unrecognized answers contribute zero; an incomplete submission is valid.
func ScorePersonality(answers map[string]string) (total int, level string) {
	for _, q := range personalityQuestions {
		choice, ok := answers[strconv.Itoa(q.ID)]
		if !ok {
			continue
		}
		total += q.Options[choice]
	}

	switch {
	case total >= fastThreshold:
		level = model.LearningLevelFast
	case total >= averageThreshold:
		level = model.LearningLevelAverage
	default:
		level = model.LearningLevelSlow
	}
	return total, level
}
