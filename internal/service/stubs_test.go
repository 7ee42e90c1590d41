package service

import (
	"context"
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/skillforge/skillforge/internal/model"
	"github.com/skillforge/skillforge/internal/repository"
)

// In-memory repository fakes. They model just enough behavior for the
// services under test: id assignment, not-found semantics and the
// conditional evaluated transition.

type stubStudentRepo struct {
	students map[uint]*model.Student
	nextID   uint
}

func newStubStudentRepo() *stubStudentRepo {
	return &stubStudentRepo{students: map[uint]*model.Student{}, nextID: 1}
}

func (r *stubStudentRepo) Create(student *model.Student) error {
	student.ID = r.nextID
	r.nextID++
	r.students[student.ID] = student
	return nil
}

func (r *stubStudentRepo) FindByID(id uint) (*model.Student, error) {
	student, ok := r.students[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return student, nil
}

type stubReportRepo struct {
	reports map[uint]*model.VerificationReport
	nextID  uint
}

func newStubReportRepo() *stubReportRepo {
	return &stubReportRepo{reports: map[uint]*model.VerificationReport{}, nextID: 1}
}

func (r *stubReportRepo) GetOrCreate(studentID uint) (*model.VerificationReport, error) {
	if report, ok := r.reports[studentID]; ok {
		return report, nil
	}
	report := &model.VerificationReport{ID: r.nextID, StudentID: studentID, Stage: model.StageTemporary}
	r.nextID++
	r.reports[studentID] = report
	return report, nil
}

func (r *stubReportRepo) FindByStudentID(studentID uint) (*model.VerificationReport, error) {
	report, ok := r.reports[studentID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return report, nil
}

func (r *stubReportRepo) Update(report *model.VerificationReport) error {
	r.reports[report.StudentID] = report
	return nil
}

func (r *stubReportRepo) UpsertError(studentID uint, payload datatypes.JSON) (*model.VerificationReport, error) {
	report, err := r.GetOrCreate(studentID)
	if err != nil {
		return nil, err
	}
	report.Stage = model.StageError
	report.PartialSummary = payload
	return report, nil
}

type stubPersonalityAttemptRepo struct {
	attempts []*model.PersonalityAttempt
}

func (r *stubPersonalityAttemptRepo) Create(attempt *model.PersonalityAttempt) error {
	attempt.ID = uint(len(r.attempts) + 1)
	r.attempts = append(r.attempts, attempt)
	return nil
}

func (r *stubPersonalityAttemptRepo) FindLatestByStudent(studentID uint) (*model.PersonalityAttempt, error) {
	for i := len(r.attempts) - 1; i >= 0; i-- {
		if r.attempts[i].StudentID == studentID {
			return r.attempts[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type stubCategoryRepo struct {
	categories map[uint]*model.SkillCategory
	nextID     uint
}

func newStubCategoryRepo() *stubCategoryRepo {
	return &stubCategoryRepo{categories: map[uint]*model.SkillCategory{}, nextID: 1}
}

func (r *stubCategoryRepo) Create(category *model.SkillCategory) error {
	category.ID = r.nextID
	r.nextID++
	r.categories[category.ID] = category
	return nil
}

func (r *stubCategoryRepo) FindByID(id uint) (*model.SkillCategory, error) {
	category, ok := r.categories[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return category, nil
}

func (r *stubCategoryRepo) FindAll() ([]model.SkillCategory, error) {
	out := make([]model.SkillCategory, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, *c)
	}
	return out, nil
}

type stubSkillAttemptRepo struct {
	attempts map[uint]*model.SkillTestAttempt
	sessions map[uint]*model.ExamSession
	nextID   uint
}

func newStubSkillAttemptRepo() *stubSkillAttemptRepo {
	return &stubSkillAttemptRepo{
		attempts: map[uint]*model.SkillTestAttempt{},
		sessions: map[uint]*model.ExamSession{},
		nextID:   1,
	}
}

func (r *stubSkillAttemptRepo) Create(attempt *model.SkillTestAttempt) error {
	attempt.ID = r.nextID
	r.nextID++
	r.attempts[attempt.ID] = attempt
	return nil
}

func (r *stubSkillAttemptRepo) FindByIDAndStudent(id, studentID uint) (*model.SkillTestAttempt, error) {
	attempt, ok := r.attempts[id]
	if !ok || attempt.StudentID != studentID {
		return nil, gorm.ErrRecordNotFound
	}
	if attempt.ProctorSessionID != nil {
		attempt.ProctorSession = r.sessions[*attempt.ProctorSessionID]
	}
	return attempt, nil
}

func (r *stubSkillAttemptRepo) MarkEvaluated(id uint, result repository.EvaluationResult) (bool, error) {
	attempt, ok := r.attempts[id]
	if !ok || attempt.IsEvaluated {
		return false, nil
	}
	attempt.SubmittedAnswers = result.SubmittedAnswers
	attempt.Score = result.Score
	attempt.Percentage = result.Percentage
	attempt.Passed = result.Passed
	attempt.IsEvaluated = true
	completed := result.CompletedAt
	attempt.CompletedAt = &completed
	return true, nil
}

type stubSessionRepo struct {
	sessions map[uint]*model.ExamSession
	events   []*model.ProctorEvent
	nextID   uint
}

func newStubSessionRepo() *stubSessionRepo {
	return &stubSessionRepo{sessions: map[uint]*model.ExamSession{}, nextID: 1}
}

func (r *stubSessionRepo) Create(session *model.ExamSession) error {
	session.ID = r.nextID
	r.nextID++
	r.sessions[session.ID] = session
	return nil
}

func (r *stubSessionRepo) FindByID(id uint) (*model.ExamSession, error) {
	session, ok := r.sessions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return session, nil
}

func (r *stubSessionRepo) Update(session *model.ExamSession) error {
	r.sessions[session.ID] = session
	return nil
}

func (r *stubSessionRepo) AppendEvent(event *model.ProctorEvent) error {
	event.ID = uint(len(r.events) + 1)
	r.events = append(r.events, event)
	return nil
}

func (r *stubSessionRepo) FindEventsBySession(sessionID uint) ([]model.ProctorEvent, error) {
	var out []model.ProctorEvent
	for _, e := range r.events {
		if e.SessionID == sessionID {
			out = append(out, *e)
		}
	}
	return out, nil
}

type stubVerificationRepo struct {
	records map[uint]*model.SkillVerification
	nextID  uint
}

func newStubVerificationRepo() *stubVerificationRepo {
	return &stubVerificationRepo{records: map[uint]*model.SkillVerification{}, nextID: 1}
}

func (r *stubVerificationRepo) GetOrCreate(studentID uint) (*model.SkillVerification, error) {
	if record, ok := r.records[studentID]; ok {
		return record, nil
	}
	record := &model.SkillVerification{ID: r.nextID, StudentID: studentID, TrustScore: 100}
	r.nextID++
	r.records[studentID] = record
	return record, nil
}

func (r *stubVerificationRepo) FindByStudentID(studentID uint) (*model.SkillVerification, error) {
	record, ok := r.records[studentID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return record, nil
}

func (r *stubVerificationRepo) Update(record *model.SkillVerification) error {
	r.records[record.StudentID] = record
	return nil
}

// stubEngine returns canned analysis payloads, or a configured error.

type stubEngine struct {
	err       error
	questions []model.GeneratedQuestion
	calls     int
}

func (e *stubEngine) AnalyzeResume(ctx context.Context, text string) (map[string]any, error) {
	e.calls++
	if e.err != nil {
		return nil, e.err
	}
	return map[string]any{"summary": "resume analysis"}, nil
}

func (e *stubEngine) AnalyzeProfile(ctx context.Context, profile string) (map[string]any, error) {
	e.calls++
	if e.err != nil {
		return nil, e.err
	}
	return map[string]any{"summary": "github analysis"}, nil
}

func (e *stubEngine) Summarize(ctx context.Context, resumeAnalysis, githubAnalysis map[string]any) (map[string]any, error) {
	e.calls++
	if e.err != nil {
		return nil, e.err
	}
	return map[string]any{"overall_assessment": "promising"}, nil
}

func (e *stubEngine) GenerateTest(ctx context.Context, resumeCtx, githubCtx, summaryCtx string, numQuestions int, roleHint string) ([]model.GeneratedQuestion, error) {
	e.calls++
	if e.err != nil {
		return nil, e.err
	}
	if e.questions != nil {
		return e.questions, nil
	}
	questions := make([]model.GeneratedQuestion, numQuestions)
	for i := range questions {
		questions[i] = model.GeneratedQuestion{
			Prompt:        "question",
			Options:       map[string]string{"A": "a", "B": "b", "C": "c", "D": "d"},
			CorrectAnswer: "A",
		}
	}
	return questions, nil
}

func (e *stubEngine) FinalAnalysis(ctx context.Context, resumeCtx, githubCtx, summaryCtx string, percentage float64, verdict string) (map[string]any, error) {
	e.calls++
	if e.err != nil {
		return nil, e.err
	}
	return map[string]any{"verdict": verdict}, nil
}

type stubExtractor struct {
	text string
	err  error
}

func (e *stubExtractor) Extract(ctx context.Context, resumeURL string) (string, error) {
	if e.err != nil {
		return "", e.err
	}
	return e.text, nil
}

type stubFetcher struct {
	profile map[string]any
	err     error
	handle  string
}

func (f *stubFetcher) Fetch(ctx context.Context, handle string) (map[string]any, error) {
	f.handle = handle
	if f.err != nil {
		return nil, f.err
	}
	return f.profile, nil
}

var errStubFailure = errors.New("stub failure")

func strPtr(s string) *string { return &s }
