package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/skillforge/skillforge/internal/controller"
	"github.com/skillforge/skillforge/internal/dto"
	"github.com/skillforge/skillforge/internal/service"
)

// ProctorController serves the browser-side proctoring loop: open a session,
// stream suspicion events into it, close it when the test ends.
type ProctorController struct {
	proctorSvc service.ProctorService
}

func NewProctorController(proctorSvc service.ProctorService) *ProctorController {
	return &ProctorController{proctorSvc: proctorSvc}
}

func (c *ProctorController) RegisterRoutes(rg *gin.RouterGroup) {
	sessions := rg.Group("/proctor/sessions")
	sessions.POST("", c.StartSessionHandler)
	sessions.POST("/:id/events", c.RecordEventHandler)
	sessions.POST("/:id/end", c.EndSessionHandler)
	sessions.GET("/:id", c.GetSessionHandler)
}

// StartSessionHandler godoc
// @Summary Start a proctoring session
// @Description Open an active session for a student before a skill test begins
// @Tags proctoring
// @Accept json
// @Produce json
// @Param request body dto.StartSessionRequest true "Target student"
// @Success 201 {object} dto.SessionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /proctor/sessions [post]
func (c *ProctorController) StartSessionHandler(ctx *gin.Context) {
	var req dto.StartSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind StartSessionRequest")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	session, err := c.proctorSvc.StartSession(req.StudentID)
	if err != nil {
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, session)
}

// RecordEventHandler godoc
// @Summary Record a proctoring event
// @Description Append a suspicion signal to an active session. The updated risk score and flag state are returned.
// @Tags proctoring
// @Accept json
// @Produce json
// @Param id path int true "Session ID"
// @Param event body dto.RecordEventRequest true "Event type and optional confidence (defaults to 1.0)"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body or inactive session"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /proctor/sessions/{id}/events [post]
func (c *ProctorController) RecordEventHandler(ctx *gin.Context) {
	sessionID, ok := controller.ParseUintParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.RecordEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind RecordEventRequest")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	confidence := 1.0
	if req.Confidence != nil {
		confidence = *req.Confidence
	}

	session, err := c.proctorSvc.RecordEvent(sessionID, req.EventType, confidence)
	if err != nil {
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, session)
}

// EndSessionHandler godoc
// @Summary End a proctoring session
// @Description Close a session. Ending is idempotent; an already closed session is returned unchanged.
// @Tags proctoring
// @Produce json
// @Param id path int true "Session ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid session ID format"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /proctor/sessions/{id}/end [post]
func (c *ProctorController) EndSessionHandler(ctx *gin.Context) {
	sessionID, ok := controller.ParseUintParam(ctx, "id")
	if !ok {
		return
	}

	session, err := c.proctorSvc.EndSession(sessionID)
	if err != nil {
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, session)
}

// GetSessionHandler godoc
// @Summary Get a proctoring session
// @Description Retrieve the current risk score and flag state of a session
// @Tags proctoring
// @Produce json
// @Param id path int true "Session ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid session ID format"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /proctor/sessions/{id} [get]
func (c *ProctorController) GetSessionHandler(ctx *gin.Context) {
	sessionID, ok := controller.ParseUintParam(ctx, "id")
	if !ok {
		return
	}

	session, err := c.proctorSvc.GetSession(sessionID)
	if err != nil {
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, session)
}
