package repository

import (
	"github.com/skillforge/skillforge/internal/model"
	"gorm.io/gorm"
)

type PersonalityAttemptRepository interface {
	Create(attempt *model.PersonalityAttempt) error
	FindLatestByStudent(studentID uint) (*model.PersonalityAttempt, error)
}

type personalityAttemptRepository struct {
	db *gorm.DB
}

func NewPersonalityAttemptRepository(db *gorm.DB) PersonalityAttemptRepository {
	return &personalityAttemptRepository{db: db}
}

func (r *personalityAttemptRepository) Create(attempt *model.PersonalityAttempt) error {
	return r.db.Create(attempt).Error
}

func (r *personalityAttemptRepository) FindLatestByStudent(studentID uint) (*model.PersonalityAttempt, error) {
	var attempt model.PersonalityAttempt
	err := r.db.
		Where("student_id = ?", studentID).
		Order("created_at DESC").
		First(&attempt).Error
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}
