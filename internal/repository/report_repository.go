package repository

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/skillforge/skillforge/internal/model"
)

type ReportRepository interface {
	// GetOrCreate returns the student's report, creating an empty one if
	// absent. Relies on the unique index on student_id so concurrent callers
	// never produce a second report.
	GetOrCreate(studentID uint) (*model.VerificationReport, error)
	FindByStudentID(studentID uint) (*model.VerificationReport, error)
	Update(report *model.VerificationReport) error
	// UpsertError durably records a failed aggregation run as an error-stage
	// report, creating the row when needed.
	UpsertError(studentID uint, payload datatypes.JSON) (*model.VerificationReport, error)
}

type reportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) GetOrCreate(studentID uint) (*model.VerificationReport, error) {
	var report model.VerificationReport
	err := r.db.
		Where(model.VerificationReport{StudentID: studentID}).
		Attrs(model.VerificationReport{Stage: model.StageTemporary}).
		FirstOrCreate(&report).Error
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *reportRepository) FindByStudentID(studentID uint) (*model.VerificationReport, error) {
	var report model.VerificationReport
	if err := r.db.Where("student_id = ?", studentID).First(&report).Error; err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *reportRepository) Update(report *model.VerificationReport) error {
	return r.db.Save(report).Error
}

func (r *reportRepository) UpsertError(studentID uint, payload datatypes.JSON) (*model.VerificationReport, error) {
	report, err := r.GetOrCreate(studentID)
	if err != nil {
		return nil, err
	}
	report.Stage = model.StageError
	report.PartialSummary = payload
	if err := r.db.Model(report).Updates(map[string]any{
		"stage":           model.StageError,
		"partial_summary": payload,
	}).Error; err != nil {
		return nil, err
	}
	return report, nil
}
