package service

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/skillforge/skillforge/internal/apperror"
	"github.com/skillforge/skillforge/internal/dto"
	"github.com/skillforge/skillforge/internal/model"
	"github.com/skillforge/skillforge/internal/repository"
)

// Risk accumulation policy. A session flags permanently once its risk score
// reaches flagRiskThreshold, or immediately on a confident high-severity
// event.
const (
	flagRiskThreshold      = 50.0
	highSeverityConfidence = 0.9
	defaultEventWeight     = 5.0
)

var eventWeights = map[string]float64{
	"TAB_SWITCH":     10,
	"NO_FACE":        15,
	"COPY_PASTE":     20,
	"MULTIPLE_FACES": 25,
	"PHONE_DETECTED": 30,
}

var highSeverityEvents = map[string]bool{
	"MULTIPLE_FACES": true,
	"PHONE_DETECTED": true,
}

// Flag level by accumulated cheating event count.
const (
	mediumFlagEvents = 3
	highFlagEvents   = 6
)

type ProctorService interface {
	StartSession(studentID uint) (*dto.SessionResponse, error)
	RecordEvent(sessionID uint, eventType string, confidence float64) (*dto.SessionResponse, error)
	EndSession(sessionID uint) (*dto.SessionResponse, error)
	GetSession(sessionID uint) (*dto.SessionResponse, error)
	GetVerification(studentID uint) (*dto.VerificationResponse, error)
}

type proctorService struct {
	studentRepo      repository.StudentRepository
	sessionRepo      repository.SessionRepository
	verificationRepo repository.VerificationRepository
}

func NewProctorService(
	studentRepo repository.StudentRepository,
	sessionRepo repository.SessionRepository,
	verificationRepo repository.VerificationRepository,
) ProctorService {
	return &proctorService{
		studentRepo:      studentRepo,
		sessionRepo:      sessionRepo,
		verificationRepo: verificationRepo,
	}
}

func (s *proctorService) StartSession(studentID uint) (*dto.SessionResponse, error) {
	if _, err := s.studentRepo.FindByID(studentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFound("student", studentID)
		}
		return nil, err
	}

	session := &model.ExamSession{StudentID: studentID, IsActive: true}
	if err := s.sessionRepo.Create(session); err != nil {
		return nil, err
	}

	log.Info().Uint("sessionID", session.ID).Uint("studentID", studentID).Msg("Proctoring session started")
	return sessionToDTO(session), nil
}

func (s *proctorService) RecordEvent(sessionID uint, eventType string, confidence float64) (*dto.SessionResponse, error) {
	if confidence < 0 || confidence > 1 {
		return nil, apperror.NewValidation("confidence must be between 0 and 1")
	}

	session, err := s.sessionRepo.FindByID(sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFound("session", sessionID)
		}
		return nil, err
	}
	if !session.IsActive {
		return nil, apperror.NewValidation("session is no longer active")
	}

	event := &model.ProctorEvent{
		SessionID:  sessionID,
		EventType:  eventType,
		Confidence: confidence,
	}
	if err := s.sessionRepo.AppendEvent(event); err != nil {
		return nil, err
	}

	weight, ok := eventWeights[eventType]
	if !ok {
		weight = defaultEventWeight
	}
	penalty := weight * confidence

	session.RiskScore += penalty
	// Flagging is one-way: the flag never clears once set.
	if !session.IsFlagged {
		if session.RiskScore >= flagRiskThreshold {
			session.IsFlagged = true
		} else if highSeverityEvents[eventType] && confidence >= highSeverityConfidence {
			session.IsFlagged = true
		}
	}
	if err := s.sessionRepo.Update(session); err != nil {
		return nil, err
	}

	if err := s.applyTrustPenalty(session.StudentID, eventType, penalty); err != nil {
		log.Error().Err(err).Uint("sessionID", sessionID).Msg("Failed to update trust record")
		return nil, err
	}

	if session.IsFlagged {
		log.Warn().Uint("sessionID", sessionID).Str("event", eventType).Float64("risk", session.RiskScore).Msg("Session flagged")
	}

	return sessionToDTO(session), nil
}

func (s *proctorService) applyTrustPenalty(studentID uint, eventType string, penalty float64) error {
	verification, err := s.verificationRepo.GetOrCreate(studentID)
	if err != nil {
		return err
	}

	verification.TrustScore -= penalty
	if verification.TrustScore < 0 {
		verification.TrustScore = 0
	}
	verification.CheatingEvents++

	reasons := decodeReasons(verification.FlagReasons)
	reasons = append(reasons, strings.ToLower(eventType))
	reasonsJSON, err := json.Marshal(reasons)
	if err != nil {
		return err
	}
	verification.FlagReasons = datatypes.JSON(reasonsJSON)

	switch {
	case verification.CheatingEvents >= highFlagEvents:
		verification.FlagLevel = model.FlagLevelHigh
	case verification.CheatingEvents >= mediumFlagEvents:
		verification.FlagLevel = model.FlagLevelMedium
	default:
		verification.FlagLevel = model.FlagLevelLow
	}

	return s.verificationRepo.Update(verification)
}

func (s *proctorService) EndSession(sessionID uint) (*dto.SessionResponse, error) {
	session, err := s.sessionRepo.FindByID(sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFound("session", sessionID)
		}
		return nil, err
	}

	if session.IsActive {
		now := time.Now()
		session.IsActive = false
		session.EndedAt = &now
		if err := s.sessionRepo.Update(session); err != nil {
			return nil, err
		}
	}

	return sessionToDTO(session), nil
}

func (s *proctorService) GetSession(sessionID uint) (*dto.SessionResponse, error) {
	session, err := s.sessionRepo.FindByID(sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFound("session", sessionID)
		}
		return nil, err
	}
	return sessionToDTO(session), nil
}

func (s *proctorService) GetVerification(studentID uint) (*dto.VerificationResponse, error) {
	verification, err := s.verificationRepo.FindByStudentID(studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFound("verification record", studentID)
		}
		return nil, err
	}

	return &dto.VerificationResponse{
		StudentID:      verification.StudentID,
		TrustScore:     verification.TrustScore,
		FlagLevel:      verification.FlagLevel,
		CheatingEvents: verification.CheatingEvents,
		FlagReasons:    decodeReasons(verification.FlagReasons),
	}, nil
}

func sessionToDTO(session *model.ExamSession) *dto.SessionResponse {
	return &dto.SessionResponse{
		ID:        session.ID,
		StudentID: session.StudentID,
		RiskScore: session.RiskScore,
		IsFlagged: session.IsFlagged,
		IsActive:  session.IsActive,
		StartedAt: session.StartedAt,
		EndedAt:   session.EndedAt,
	}
}

func decodeReasons(data datatypes.JSON) []string {
	if len(data) == 0 {
		return []string{}
	}
	var reasons []string
	if err := json.Unmarshal(data, &reasons); err != nil {
		return []string{}
	}
	return reasons
}
