package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Trust record flag levels.
const (
	FlagLevelLow    = "low"
	FlagLevelMedium = "medium"
	FlagLevelHigh   = "high"
)

// SkillVerification is the auxiliary trust record: starts at full trust and
// only ever decreases as proctoring signals accumulate.
type SkillVerification struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	StudentID      uint           `json:"student_id" gorm:"not null;uniqueIndex"`
	Student        Student        `json:"-" gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE"`
	TrustScore     float64        `json:"trust_score" gorm:"default:100"`
	FlagLevel      string         `json:"flag_level,omitempty"`
	CheatingEvents int            `json:"cheating_events"`
	FlagReasons    datatypes.JSON `json:"flag_reasons,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}
