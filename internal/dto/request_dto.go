package dto

// CreateStudentRequest registers a candidate with optional evidence links.
type CreateStudentRequest struct {
	Name      string  `json:"name" binding:"required"`
	Email     string  `json:"email" binding:"required,email"`
	ResumeURL *string `json:"resume_url"`
	GithubURL *string `json:"github_url"`
}

// GeneratePartialReportRequest triggers evidence aggregation for a student.
type GeneratePartialReportRequest struct {
	StudentID uint `json:"student_id" binding:"required"`
}

// SubmitPersonalityRequest carries questionnaire answers keyed by question id.
// Missing or unknown answers are allowed and contribute zero.
type SubmitPersonalityRequest struct {
	StudentID uint              `json:"student_id" binding:"required"`
	Answers   map[string]string `json:"answers" binding:"required"`
}

// GenerateSkillTestRequest starts a new category-scoped test attempt,
// optionally bound to a proctoring session.
type GenerateSkillTestRequest struct {
	StudentID  uint  `json:"student_id" binding:"required"`
	CategoryID uint  `json:"category_id" binding:"required"`
	SessionID  *uint `json:"session_id"`
}

// SubmitSkillTestRequest carries positional answers for a generated attempt.
type SubmitSkillTestRequest struct {
	StudentID uint     `json:"student_id" binding:"required"`
	AttemptID uint     `json:"attempt_id" binding:"required"`
	Answers   []string `json:"answers" binding:"required"`
}

// StartSessionRequest opens a proctoring session for a student.
type StartSessionRequest struct {
	StudentID uint `json:"student_id" binding:"required"`
}

// RecordEventRequest appends one suspicion signal to a session.
type RecordEventRequest struct {
	EventType  string   `json:"event_type" binding:"required"`
	Confidence *float64 `json:"confidence"`
}

// CategoryCreateRequest adds a skill category to the shared vocabulary.
type CategoryCreateRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}
