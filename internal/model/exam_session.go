package model

import (
	"time"

	"gorm.io/gorm"
)

// ExamSession accumulates proctoring risk for one test sitting. Once
// IsFlagged is set it never clears.
type ExamSession struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	StudentID uint           `json:"student_id" gorm:"not null;index"`
	Student   Student        `json:"-" gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE"`
	RiskScore float64        `json:"risk_score"`
	IsFlagged bool           `json:"is_flagged"`
	IsActive  bool           `json:"is_active" gorm:"default:true"`
	StartedAt time.Time      `json:"started_at" gorm:"autoCreateTime"`
	EndedAt   *time.Time     `json:"ended_at,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// ProctorEvent is an append-only suspicion signal within a session.
type ProctorEvent struct {
	ID         uint        `gorm:"primarykey" json:"id"`
	SessionID  uint        `json:"session_id" gorm:"not null;index"`
	Session    ExamSession `json:"-" gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE"`
	EventType  string      `json:"event_type" gorm:"not null"`
	Confidence float64     `json:"confidence" gorm:"default:1.0"`
	CreatedAt  time.Time   `json:"timestamp"`
}
