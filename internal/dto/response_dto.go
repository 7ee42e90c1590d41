package dto

import "time"

type ErrorResponse struct {
	Error string `json:"error"`
}

type StudentResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	ResumeURL *string   `json:"resume_url,omitempty"`
	GithubURL *string   `json:"github_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ReportResponse is the partial-report view of a verification report.
type ReportResponse struct {
	ID               uint           `json:"id"`
	StudentID        uint           `json:"student_id"`
	Stage            string         `json:"stage"`
	PersonalityScore int            `json:"personality_score"`
	SkillTestScore   float64        `json:"skill_test_score"`
	ResumeAnalysis   map[string]any `json:"resume_analysis"`
	GithubAnalysis   map[string]any `json:"github_analysis"`
	PartialSummary   map[string]any `json:"partial_summary"`
}

// FinalAnalysisResponse assembles every stored report field for the
// candidate-facing final view. Absent analyses surface as null, not errors.
type FinalAnalysisResponse struct {
	Stage            string         `json:"stage"`
	PersonalityScore int            `json:"personality_score"`
	SkillTestScore   float64        `json:"skill_test_score"`
	ResumeAnalysis   map[string]any `json:"resume_analysis"`
	GithubAnalysis   map[string]any `json:"github_analysis"`
	PartialSummary   map[string]any `json:"partial_summary"`
	FinalAnalysis    map[string]any `json:"final_analysis"`
}

// PersonalityQuestionResponse is the client view of one bank question.
// Option weights stay server-side; only the labels are exposed.
type PersonalityQuestionResponse struct {
	ID      int      `json:"id"`
	Prompt  string   `json:"question"`
	Options []string `json:"options"`
}

type PersonalityResultResponse struct {
	Score         int    `json:"score"`
	LearningLevel string `json:"learning_level"`
}

// SkillTestQuestionResponse strips the expected answer from a generated
// question before it leaves the server.
type SkillTestQuestionResponse struct {
	Index   int               `json:"index"`
	Prompt  string            `json:"prompt"`
	Options map[string]string `json:"options"`
}

type SkillTestResponse struct {
	AttemptID      uint                        `json:"attempt_id"`
	CategoryID     uint                        `json:"category_id"`
	CategoryName   string                      `json:"category_name,omitempty"`
	TotalQuestions int                         `json:"total_questions"`
	Questions      []SkillTestQuestionResponse `json:"questions"`
}

// SkillTestResultResponse covers both submission outcomes: a completed
// evaluation or a flagged short-circuit (no scoring fields in that case).
type SkillTestResultResponse struct {
	Status     string         `json:"status"`
	Score      int            `json:"score,omitempty"`
	Percentage float64        `json:"percentage,omitempty"`
	Passed     bool           `json:"passed,omitempty"`
	Analysis   map[string]any `json:"analysis,omitempty"`
	RiskScore  float64        `json:"risk_score,omitempty"`
	Message    string         `json:"message,omitempty"`
}

type SessionResponse struct {
	ID        uint       `json:"id"`
	StudentID uint       `json:"student_id"`
	RiskScore float64    `json:"risk_score"`
	IsFlagged bool       `json:"is_flagged"`
	IsActive  bool       `json:"is_active"`
	StartedAt time.Time  `json:"started_at"`
	EndedAt   *time.Time `json:"ended_at,omitempty"`
}

type CategoryResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// VerificationResponse is the admin view of a student's trust record.
type VerificationResponse struct {
	StudentID      uint     `json:"student_id"`
	TrustScore     float64  `json:"trust_score"`
	FlagLevel      string   `json:"flag_level,omitempty"`
	CheatingEvents int      `json:"cheating_events"`
	FlagReasons    []string `json:"flag_reasons"`
}
