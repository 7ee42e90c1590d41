package repository

import (
	"github.com/skillforge/skillforge/internal/model"
	"gorm.io/gorm"
)

type VerificationRepository interface {
	GetOrCreate(studentID uint) (*model.SkillVerification, error)
	FindByStudentID(studentID uint) (*model.SkillVerification, error)
	Update(verification *model.SkillVerification) error
}

type verificationRepository struct {
	db *gorm.DB
}

func NewVerificationRepository(db *gorm.DB) VerificationRepository {
	return &verificationRepository{db: db}
}

func (r *verificationRepository) GetOrCreate(studentID uint) (*model.SkillVerification, error) {
	var verification model.SkillVerification
	err := r.db.
		Where(model.SkillVerification{StudentID: studentID}).
		Attrs(model.SkillVerification{TrustScore: 100}).
		FirstOrCreate(&verification).Error
	if err != nil {
		return nil, err
	}
	return &verification, nil
}

func (r *verificationRepository) FindByStudentID(studentID uint) (*model.SkillVerification, error) {
	var verification model.SkillVerification
	if err := r.db.Where("student_id = ?", studentID).First(&verification).Error; err != nil {
		return nil, err
	}
	return &verification, nil
}

func (r *verificationRepository) Update(verification *model.SkillVerification) error {
	return r.db.Save(verification).Error
}
