package model

import (
	"time"

	"gorm.io/datatypes"
)

// Learning level tiers derived from the personality questionnaire total.
const (
	LearningLevelSlow    = "slow"
	LearningLevelAverage = "average"
	LearningLevelFast    = "fast"
)

// PersonalityAttempt is an immutable snapshot of one questionnaire
// submission. Multiple attempts per student are kept; only the most recent
// one feeds the report's personality score.
type PersonalityAttempt struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	StudentID     uint           `json:"student_id" gorm:"not null;index"`
	Student       Student        `json:"-" gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE"`
	Answers       datatypes.JSON `json:"answers"`
	TotalScore    int            `json:"total_score"`
	LearningLevel string         `json:"learning_level"`
	CreatedAt     time.Time      `json:"created_at"`
}
