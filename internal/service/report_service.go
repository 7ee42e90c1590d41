package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/skillforge/skillforge/internal/apperror"
	"github.com/skillforge/skillforge/internal/dto"
	"github.com/skillforge/skillforge/internal/model"
	"github.com/skillforge/skillforge/internal/repository"
)

// Written into the report when aggregation fails; retry is the recovery path.
var partialReportFailure = datatypes.JSON([]byte(`{"error": "AI analysis failed. Please retry."}`))

// ReportService owns the report aggregation pipeline and the final read.
//
// GeneratePartialReport is self-healing: collaborator failures never escape,
// they become a durable error-stage report. GetFinalAnalysis is a pure read.
type ReportService interface {
	GeneratePartialReport(studentID uint) (*dto.ReportResponse, error)
	GetFinalAnalysis(studentID uint) (*dto.FinalAnalysisResponse, error)
}

type reportService struct {
	studentRepo repository.StudentRepository
	reportRepo  repository.ReportRepository
	extractor   DocumentTextExtractor
	fetcher     ProfileFetcher
	engine      AnalysisEngine
}

func NewReportService(
	studentRepo repository.StudentRepository,
	reportRepo repository.ReportRepository,
	extractor DocumentTextExtractor,
	fetcher ProfileFetcher,
	engine AnalysisEngine,
) ReportService {
	return &reportService{
		studentRepo: studentRepo,
		reportRepo:  reportRepo,
		extractor:   extractor,
		fetcher:     fetcher,
		engine:      engine,
	}
}

func (s *reportService) GeneratePartialReport(studentID uint) (*dto.ReportResponse, error) {
	student, err := s.studentRepo.FindByID(studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFound("student", studentID)
		}
		return nil, err
	}

	report, err := s.reportRepo.GetOrCreate(studentID)
	if err != nil {
		return nil, err
	}

	ctx := context.Background()

	resumeAnalysis, githubAnalysis, summary, pipelineErr := s.runPipeline(ctx, student)
	if pipelineErr != nil {
		log.Error().Err(pipelineErr).Uint("studentID", studentID).Msg("Partial report generation failed")
		failed, upsertErr := s.reportRepo.UpsertError(studentID, partialReportFailure)
		if upsertErr != nil {
			log.Error().Err(upsertErr).Uint("studentID", studentID).Msg("Failed to record error-stage report")
			return nil, upsertErr
		}
		return reportToDTO(failed), nil
	}

	// Full recompute: the three analysis fields are overwritten as a unit.
	// Previously recorded skill-test fields are preserved.
	report.ResumeAnalysis = encodeJSONMap(resumeAnalysis)
	report.GithubAnalysis = encodeJSONMap(githubAnalysis)
	report.PartialSummary = encodeJSONMap(summary)
	report.Stage = model.StageTemporary

	if err := s.reportRepo.Update(report); err != nil {
		log.Error().Err(err).Uint("studentID", studentID).Msg("Failed to persist partial report")
		failed, upsertErr := s.reportRepo.UpsertError(studentID, partialReportFailure)
		if upsertErr != nil {
			return nil, upsertErr
		}
		return reportToDTO(failed), nil
	}

	return reportToDTO(report), nil
}

func (s *reportService) runPipeline(ctx context.Context, student *model.Student) (resumeAnalysis, githubAnalysis, summary map[string]any, err error) {
	resumeAnalysis = map[string]any{}
	githubAnalysis = map[string]any{}

	if student.ResumeURL != nil && *student.ResumeURL != "" {
		text, extractErr := s.extractor.Extract(ctx, *student.ResumeURL)
		if extractErr != nil {
			return nil, nil, nil, extractErr
		}
		resumeAnalysis, err = s.engine.AnalyzeResume(ctx, text)
		if err != nil {
			return nil, nil, nil, err
		}
	}

	if student.GithubURL != nil && *student.GithubURL != "" {
		handle := githubHandle(*student.GithubURL)
		profile, fetchErr := s.fetcher.Fetch(ctx, handle)
		if fetchErr != nil {
			return nil, nil, nil, fetchErr
		}
		profileJSON, _ := json.Marshal(profile)
		githubAnalysis, err = s.engine.AnalyzeProfile(ctx, string(profileJSON))
		if err != nil {
			return nil, nil, nil, err
		}
	}

	summary, err = s.engine.Summarize(ctx, resumeAnalysis, githubAnalysis)
	if err != nil {
		return nil, nil, nil, err
	}
	return resumeAnalysis, githubAnalysis, summary, nil
}

func (s *reportService) GetFinalAnalysis(studentID uint) (*dto.FinalAnalysisResponse, error) {
	report, err := s.reportRepo.FindByStudentID(studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFound("report", studentID)
		}
		return nil, err
	}

	stage := report.Stage
	if stage == "" {
		stage = model.StageTemporary
	}

	return &dto.FinalAnalysisResponse{
		Stage:            stage,
		PersonalityScore: report.PersonalityScore,
		SkillTestScore:   report.SkillTestScore,
		ResumeAnalysis:   decodeJSONMap(report.ResumeAnalysis),
		GithubAnalysis:   decodeJSONMap(report.GithubAnalysis),
		PartialSummary:   decodeJSONMap(report.PartialSummary),
		FinalAnalysis:    decodeJSONMap(report.FinalAnalysis),
	}, nil
}

// githubHandle derives the username from a profile link: the last non-empty
// path segment.
func githubHandle(url string) string {
	trimmed := strings.TrimRight(url, "/")
	if idx := strings.LastIndex(trimmed, "/"); idx >= 0 {
		return trimmed[idx+1:]
	}
	return trimmed
}

func reportToDTO(report *model.VerificationReport) *dto.ReportResponse {
	return &dto.ReportResponse{
		ID:               report.ID,
		StudentID:        report.StudentID,
		Stage:            report.Stage,
		PersonalityScore: report.PersonalityScore,
		SkillTestScore:   report.SkillTestScore,
		ResumeAnalysis:   decodeJSONMap(report.ResumeAnalysis),
		GithubAnalysis:   decodeJSONMap(report.GithubAnalysis),
		PartialSummary:   decodeJSONMap(report.PartialSummary),
	}
}

func encodeJSONMap(m map[string]any) datatypes.JSON {
	if m == nil {
		m = map[string]any{}
	}
	data, err := json.Marshal(m)
	if err != nil {
		return datatypes.JSON([]byte(`{}`))
	}
	return datatypes.JSON(data)
}

func decodeJSONMap(data datatypes.JSON) map[string]any {
	if len(data) == 0 {
		return nil
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil
	}
	return m
}
