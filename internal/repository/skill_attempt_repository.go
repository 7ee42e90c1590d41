package repository

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/skillforge/skillforge/internal/model"
)

// EvaluationResult is the scored outcome written by MarkEvaluated.
type EvaluationResult struct {
	SubmittedAnswers datatypes.JSON
	Score            int
	Percentage       float64
	Passed           bool
	CompletedAt      time.Time
}

type SkillAttemptRepository interface {
	Create(attempt *model.SkillTestAttempt) error
	// FindByIDAndStudent loads an attempt only when it belongs to the student,
	// with its proctoring session (if any) preloaded.
	FindByIDAndStudent(id, studentID uint) (*model.SkillTestAttempt, error)
	// MarkEvaluated performs the generated -> evaluated transition as a
	// conditional update on is_evaluated. Returns false when another writer
	// already evaluated the attempt.
	MarkEvaluated(id uint, result EvaluationResult) (bool, error)
}

type skillAttemptRepository struct {
	db *gorm.DB
}

func NewSkillAttemptRepository(db *gorm.DB) SkillAttemptRepository {
	return &skillAttemptRepository{db: db}
}

func (r *skillAttemptRepository) Create(attempt *model.SkillTestAttempt) error {
	return r.db.Create(attempt).Error
}

func (r *skillAttemptRepository) FindByIDAndStudent(id, studentID uint) (*model.SkillTestAttempt, error) {
	var attempt model.SkillTestAttempt
	err := r.db.
		Preload("ProctorSession").
		Preload("Category").
		Where("id = ? AND student_id = ?", id, studentID).
		First(&attempt).Error
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *skillAttemptRepository) MarkEvaluated(id uint, result EvaluationResult) (bool, error) {
	res := r.db.Model(&model.SkillTestAttempt{}).
		Where("id = ? AND is_evaluated = ?", id, false).
		Updates(map[string]any{
			"submitted_answers": result.SubmittedAnswers,
			"score":             result.Score,
			"percentage":        result.Percentage,
			"passed":            result.Passed,
			"is_evaluated":      true,
			"completed_at":      result.CompletedAt,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
