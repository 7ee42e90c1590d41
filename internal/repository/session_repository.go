package repository

import (
	"github.com/skillforge/skillforge/internal/model"
	"gorm.io/gorm"
)

type SessionRepository interface {
	Create(session *model.ExamSession) error
	FindByID(id uint) (*model.ExamSession, error)
	Update(session *model.ExamSession) error
	AppendEvent(event *model.ProctorEvent) error
	FindEventsBySession(sessionID uint) ([]model.ProctorEvent, error)
}

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(session *model.ExamSession) error {
	return r.db.Create(session).Error
}

func (r *sessionRepository) FindByID(id uint) (*model.ExamSession, error) {
	var session model.ExamSession
	if err := r.db.First(&session, id).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepository) Update(session *model.ExamSession) error {
	return r.db.Save(session).Error
}

func (r *sessionRepository) AppendEvent(event *model.ProctorEvent) error {
	return r.db.Create(event).Error
}

func (r *sessionRepository) FindEventsBySession(sessionID uint) ([]model.ProctorEvent, error) {
	var events []model.ProctorEvent
	err := r.db.
		Where("session_id = ?", sessionID).
		Order("created_at ASC").
		Find(&events).Error
	return events, err
}
