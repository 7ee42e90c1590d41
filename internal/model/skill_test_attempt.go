package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// GeneratedQuestion is one AI-generated test question. CorrectAnswer is held
// server-side only and must never reach a client payload.
type GeneratedQuestion struct {
	Prompt        string            `json:"prompt"`
	Options       map[string]string `json:"options"`
	CorrectAnswer string            `json:"correct_answer"`
}

// SkillTestAttempt moves through a generated -> evaluated state machine.
// Evaluation happens exactly once; the conditional update in the repository
// enforces the single-writer transition.
type SkillTestAttempt struct {
	ID               uint           `gorm:"primarykey" json:"id"`
	StudentID        uint           `json:"student_id" gorm:"not null;index"`
	Student          Student        `json:"-" gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE"`
	CategoryID       uint           `json:"category_id" gorm:"not null;index"`
	Category         SkillCategory  `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	ProctorSessionID *uint          `json:"proctor_session_id,omitempty" gorm:"uniqueIndex"`
	ProctorSession   *ExamSession   `json:"-" gorm:"foreignKey:ProctorSessionID;constraint:OnDelete:SET NULL"`
	Questions        datatypes.JSON `json:"-" gorm:"column:generated_questions"`
	SubmittedAnswers datatypes.JSON `json:"submitted_answers,omitempty"`
	TotalQuestions   int            `json:"total_questions"`
	Score            int            `json:"score"`
	Percentage       float64        `json:"percentage"`
	Passed           bool           `json:"passed"`
	IsEvaluated      bool           `json:"is_evaluated"`
	StartedAt        time.Time      `json:"started_at" gorm:"autoCreateTime"`
	CompletedAt      *time.Time     `json:"completed_at,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}
