package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Report lifecycle stages.
const (
	StageTemporary        = "temporary"
	StageVerified         = "verified"
	StageNeedsImprovement = "needs_improvement"
	StageError            = "error"
)

// VerificationReport is the single evolving trust/skill report per student.
// The analysis fields are accumulated JSON documents; the score fields hold
// the most recent attempt's result (last-attempt-wins).
type VerificationReport struct {
	ID               uint           `gorm:"primarykey" json:"id"`
	StudentID        uint           `json:"student_id" gorm:"not null;uniqueIndex"`
	Student          Student        `json:"-" gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE"`
	PersonalityScore int            `json:"personality_score"`
	SkillTestScore   float64        `json:"skill_test_score"`
	Stage            string         `json:"stage" gorm:"default:'temporary'"`
	ResumeAnalysis   datatypes.JSON `json:"resume_analysis,omitempty"`
	GithubAnalysis   datatypes.JSON `json:"github_analysis,omitempty"`
	PartialSummary   datatypes.JSON `json:"partial_summary,omitempty"`
	FinalAnalysis    datatypes.JSON `json:"final_analysis,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}
