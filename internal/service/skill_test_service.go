package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/skillforge/skillforge/internal/apperror"
	"github.com/skillforge/skillforge/internal/dto"
	"github.com/skillforge/skillforge/internal/model"
	"github.com/skillforge/skillforge/internal/repository"
)

const (
	defaultQuestionCount = 5
	passPercentage       = 60.0
)

// SkillTestService drives the generated -> evaluated attempt state machine.
// Unlike the report aggregator, this path is fail-fast: collaborator errors
// propagate to the caller after logging.
type SkillTestService interface {
	Generate(req dto.GenerateSkillTestRequest) (*dto.SkillTestResponse, error)
	Submit(req dto.SubmitSkillTestRequest) (*dto.SkillTestResultResponse, error)
}

type skillTestService struct {
	studentRepo  repository.StudentRepository
	reportRepo   repository.ReportRepository
	categoryRepo repository.CategoryRepository
	attemptRepo  repository.SkillAttemptRepository
	sessionRepo  repository.SessionRepository
	engine       AnalysisEngine
}

func NewSkillTestService(
	studentRepo repository.StudentRepository,
	reportRepo repository.ReportRepository,
	categoryRepo repository.CategoryRepository,
	attemptRepo repository.SkillAttemptRepository,
	sessionRepo repository.SessionRepository,
	engine AnalysisEngine,
) SkillTestService {
	return &skillTestService{
		studentRepo:  studentRepo,
		reportRepo:   reportRepo,
		categoryRepo: categoryRepo,
		attemptRepo:  attemptRepo,
		sessionRepo:  sessionRepo,
		engine:       engine,
	}
}

func (s *skillTestService) Generate(req dto.GenerateSkillTestRequest) (*dto.SkillTestResponse, error) {
	if _, err := s.studentRepo.FindByID(req.StudentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFound("student", req.StudentID)
		}
		return nil, err
	}

	report, err := s.reportRepo.FindByStudentID(req.StudentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFound("report", req.StudentID)
		}
		return nil, err
	}

	category, err := s.categoryRepo.FindByID(req.CategoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFound("category", req.CategoryID)
		}
		return nil, err
	}

	if req.SessionID != nil {
		session, err := s.sessionRepo.FindByID(*req.SessionID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperror.NewNotFound("session", *req.SessionID)
			}
			return nil, err
		}
		if session.StudentID != req.StudentID {
			return nil, apperror.NewValidation("session does not belong to this student")
		}
	}

	// Missing upstream analysis is fine: the context strings are simply empty.
	questions, err := s.engine.GenerateTest(
		context.Background(),
		analysisContext(report.ResumeAnalysis),
		analysisContext(report.GithubAnalysis),
		analysisContext(report.PartialSummary),
		defaultQuestionCount,
		category.Name,
	)
	if err != nil {
		log.Error().Err(err).Uint("studentID", req.StudentID).Uint("categoryID", req.CategoryID).Msg("Skill test generation failed")
		return nil, err
	}

	questionsJSON, err := json.Marshal(questions)
	if err != nil {
		return nil, err
	}

	attempt := &model.SkillTestAttempt{
		StudentID:        req.StudentID,
		CategoryID:       category.ID,
		ProctorSessionID: req.SessionID,
		Questions:        datatypes.JSON(questionsJSON),
		TotalQuestions:   len(questions),
	}
	if err := s.attemptRepo.Create(attempt); err != nil {
		return nil, err
	}

	return &dto.SkillTestResponse{
		AttemptID:      attempt.ID,
		CategoryID:     category.ID,
		CategoryName:   category.Name,
		TotalQuestions: attempt.TotalQuestions,
		Questions:      sanitizeQuestions(questions),
	}, nil
}

func (s *skillTestService) Submit(req dto.SubmitSkillTestRequest) (*dto.SkillTestResultResponse, error) {
	attempt, err := s.attemptRepo.FindByIDAndStudent(req.AttemptID, req.StudentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFound("skill test attempt", req.AttemptID)
		}
		return nil, err
	}

	report, err := s.reportRepo.FindByStudentID(req.StudentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFound("report", req.StudentID)
		}
		return nil, err
	}

	// The flagged gate short-circuits before any scoring. The attempt stays
	// unevaluated: disqualification is terminal through the session flag
	// itself, which never clears.
	if attempt.ProctorSession != nil && attempt.ProctorSession.IsFlagged {
		log.Warn().Uint("attemptID", attempt.ID).Float64("risk", attempt.ProctorSession.RiskScore).Msg("Skill test submission blocked by proctoring flag")
		return &dto.SkillTestResultResponse{
			Status:    "flagged",
			RiskScore: attempt.ProctorSession.RiskScore,
			Message:   "Test disqualified due to suspicious activity",
		}, nil
	}

	if attempt.IsEvaluated {
		return nil, apperror.NewIntegrity("attempt is already evaluated")
	}

	var questions []model.GeneratedQuestion
	if len(attempt.Questions) > 0 {
		if err := json.Unmarshal(attempt.Questions, &questions); err != nil {
			return nil, err
		}
	}

	correct := 0
	for i, question := range questions {
		if i < len(req.Answers) && req.Answers[i] == question.CorrectAnswer {
			correct++
		}
	}

	percentage := 0.0
	if attempt.TotalQuestions > 0 {
		percentage = float64(correct) / float64(attempt.TotalQuestions) * 100
	}
	passed := percentage >= passPercentage

	answersJSON, err := json.Marshal(req.Answers)
	if err != nil {
		return nil, err
	}

	// Single-writer transition: a concurrent duplicate submission loses here
	// and never touches the report.
	evaluated, err := s.attemptRepo.MarkEvaluated(attempt.ID, repository.EvaluationResult{
		SubmittedAnswers: datatypes.JSON(answersJSON),
		Score:            correct,
		Percentage:       percentage,
		Passed:           passed,
		CompletedAt:      time.Now(),
	})
	if err != nil {
		return nil, err
	}
	if !evaluated {
		return nil, apperror.NewIntegrity("attempt was evaluated concurrently")
	}

	verdict := "FAIL"
	if passed {
		verdict = "PASS"
	}

	finalAnalysis, err := s.engine.FinalAnalysis(
		context.Background(),
		analysisContext(report.ResumeAnalysis),
		analysisContext(report.GithubAnalysis),
		analysisContext(report.PartialSummary),
		percentage,
		verdict,
	)
	if err != nil {
		log.Error().Err(err).Uint("attemptID", attempt.ID).Msg("Final analysis failed")
		return nil, err
	}

	report.FinalAnalysis = encodeJSONMap(finalAnalysis)
	report.SkillTestScore = percentage
	if passed {
		report.Stage = model.StageVerified
	} else {
		report.Stage = model.StageNeedsImprovement
	}
	if err := s.reportRepo.Update(report); err != nil {
		log.Error().Err(err).Uint("attemptID", attempt.ID).Msg("Failed to persist final report")
		return nil, err
	}

	log.Info().Uint("attemptID", attempt.ID).Int("score", correct).Float64("percentage", percentage).Bool("passed", passed).Msg("Skill test evaluated")

	return &dto.SkillTestResultResponse{
		Status:     "completed",
		Score:      correct,
		Percentage: percentage,
		Passed:     passed,
		Analysis:   finalAnalysis,
	}, nil
}

func sanitizeQuestions(questions []model.GeneratedQuestion) []dto.SkillTestQuestionResponse {
	sanitized := make([]dto.SkillTestQuestionResponse, 0, len(questions))
	for i, q := range questions {
		sanitized = append(sanitized, dto.SkillTestQuestionResponse{
			Index:   i,
			Prompt:  q.Prompt,
			Options: q.Options,
		})
	}
	return sanitized
}

func analysisContext(data datatypes.JSON) string {
	if len(data) == 0 {
		return ""
	}
	return string(data)
}
