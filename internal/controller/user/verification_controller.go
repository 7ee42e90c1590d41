package user

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/skillforge/skillforge/internal/controller"
	"github.com/skillforge/skillforge/internal/dto"
	"github.com/skillforge/skillforge/internal/service"
)

// VerificationController serves the candidate-facing verification flow:
// registration, report aggregation, the personality questionnaire and
// AI-generated skill tests.
type VerificationController struct {
	studentSvc     service.StudentService
	reportSvc      service.ReportService
	personalitySvc service.PersonalityService
	skillTestSvc   service.SkillTestService
	categorySvc    service.CategoryService
}

func NewVerificationController(
	studentSvc service.StudentService,
	reportSvc service.ReportService,
	personalitySvc service.PersonalityService,
	skillTestSvc service.SkillTestService,
	categorySvc service.CategoryService,
) *VerificationController {
	return &VerificationController{
		studentSvc:     studentSvc,
		reportSvc:      reportSvc,
		personalitySvc: personalitySvc,
		skillTestSvc:   skillTestSvc,
		categorySvc:    categorySvc,
	}
}

func (c *VerificationController) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/students", c.CreateStudentHandler)
	rg.POST("/reports/partial", c.GeneratePartialReportHandler)
	rg.GET("/reports/final", c.GetFinalAnalysisHandler)
	rg.GET("/personality/questions", c.GetPersonalityQuestionsHandler)
	rg.POST("/personality/submit", c.SubmitPersonalityHandler)
	rg.POST("/skill-tests/generate", c.GenerateSkillTestHandler)
	rg.POST("/skill-tests/submit", c.SubmitSkillTestHandler)
	rg.GET("/categories", c.ListCategoriesHandler)
}

// CreateStudentHandler godoc
// @Summary Register a new student
// @Description Register a candidate with optional resume and GitHub links
// @Tags students
// @Accept json
// @Produce json
// @Param student body dto.CreateStudentRequest true "Student data"
// @Success 201 {object} dto.StudentResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 409 {object} dto.ErrorResponse "Email already registered"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students [post]
func (c *VerificationController) CreateStudentHandler(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind CreateStudentRequest")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	student, err := c.studentSvc.CreateStudent(req)
	if err != nil {
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, student)
}

// GeneratePartialReportHandler godoc
// @Summary Generate or refresh a partial verification report
// @Description Aggregates resume and GitHub evidence into the student's report. Analysis failures are recorded in the report rather than returned as errors.
// @Tags reports
// @Accept json
// @Produce json
// @Param request body dto.GeneratePartialReportRequest true "Target student"
// @Success 200 {object} dto.ReportResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reports/partial [post]
func (c *VerificationController) GeneratePartialReportHandler(ctx *gin.Context) {
	var req dto.GeneratePartialReportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind GeneratePartialReportRequest")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	report, err := c.reportSvc.GeneratePartialReport(req.StudentID)
	if err != nil {
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, report)
}

// GetFinalAnalysisHandler godoc
// @Summary Get the assembled verification report
// @Description Retrieve every stored report field for a student, including the final analysis when present
// @Tags reports
// @Produce json
// @Param student_id query int true "Student ID"
// @Success 200 {object} dto.FinalAnalysisResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID format"
// @Failure 404 {object} dto.ErrorResponse "Report not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reports/final [get]
func (c *VerificationController) GetFinalAnalysisHandler(ctx *gin.Context) {
	studentIDStr := ctx.Query("student_id")
	studentID, err := strconv.ParseUint(studentIDStr, 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid student_id format"})
		return
	}

	analysis, err := c.reportSvc.GetFinalAnalysis(uint(studentID))
	if err != nil {
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, analysis)
}

// GetPersonalityQuestionsHandler godoc
// @Summary List personality questionnaire questions
// @Description Retrieve the fixed questionnaire. Option weights are not exposed.
// @Tags personality
// @Produce json
// @Success 200 {array} dto.PersonalityQuestionResponse
// @Router /personality/questions [get]
func (c *VerificationController) GetPersonalityQuestionsHandler(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.personalitySvc.Questions())
}

// SubmitPersonalityHandler godoc
// @Summary Submit personality questionnaire answers
// @Description Score the submitted answers and record the result on the student's report
// @Tags personality
// @Accept json
// @Produce json
// @Param submission body dto.SubmitPersonalityRequest true "Answers keyed by question id"
// @Success 200 {object} dto.PersonalityResultResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Report not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /personality/submit [post]
func (c *VerificationController) SubmitPersonalityHandler(ctx *gin.Context) {
	var req dto.SubmitPersonalityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind SubmitPersonalityRequest")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	result, err := c.personalitySvc.SubmitAssessment(req.StudentID, req.Answers)
	if err != nil {
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// GenerateSkillTestHandler godoc
// @Summary Generate a skill test attempt
// @Description Create an AI-generated multiple-choice test for a student and category, optionally bound to a proctoring session
// @Tags skill-tests
// @Accept json
// @Produce json
// @Param request body dto.GenerateSkillTestRequest true "Generation parameters"
// @Success 201 {object} dto.SkillTestResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body or session ownership"
// @Failure 404 {object} dto.ErrorResponse "Student, report, category or session not found"
// @Failure 500 {object} dto.ErrorResponse "Question generation failed"
// @Router /skill-tests/generate [post]
func (c *VerificationController) GenerateSkillTestHandler(ctx *gin.Context) {
	var req dto.GenerateSkillTestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind GenerateSkillTestRequest")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	test, err := c.skillTestSvc.Generate(req)
	if err != nil {
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, test)
}

// SubmitSkillTestHandler godoc
// @Summary Submit skill test answers
// @Description Score a generated attempt and fold the result into the student's report. A flagged proctoring session disqualifies the submission without scoring it.
// @Tags skill-tests
// @Accept json
// @Produce json
// @Param submission body dto.SubmitSkillTestRequest true "Positional answers"
// @Success 200 {object} dto.SkillTestResultResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Attempt or report not found"
// @Failure 409 {object} dto.ErrorResponse "Attempt already evaluated"
// @Failure 500 {object} dto.ErrorResponse "Final analysis failed"
// @Router /skill-tests/submit [post]
func (c *VerificationController) SubmitSkillTestHandler(ctx *gin.Context) {
	var req dto.SubmitSkillTestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind SubmitSkillTestRequest")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	result, err := c.skillTestSvc.Submit(req)
	if err != nil {
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// ListCategoriesHandler godoc
// @Summary List skill categories
// @Description Retrieve all skill categories, ordered by name
// @Tags categories
// @Produce json
// @Success 200 {array} dto.CategoryResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /categories [get]
func (c *VerificationController) ListCategoriesHandler(ctx *gin.Context) {
	categories, err := c.categorySvc.ListCategories()
	if err != nil {
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, categories)
}
