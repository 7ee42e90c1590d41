package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/skillforge/skillforge/internal/controller"
	"github.com/skillforge/skillforge/internal/dto"
	"github.com/skillforge/skillforge/internal/service"
)

type AdminController struct {
	categorySvc service.CategoryService
	proctorSvc  service.ProctorService
}

func NewAdminController(categorySvc service.CategoryService, proctorSvc service.ProctorService) *AdminController {
	return &AdminController{categorySvc: categorySvc, proctorSvc: proctorSvc}
}

func (c *AdminController) RegisterRoutes(rg *gin.RouterGroup) {
	adminGroup := rg.Group("/admin")
	adminGroup.POST("/categories", c.CreateCategoryHandler)
	adminGroup.GET("/verifications/:student_id", c.GetVerificationHandler)
}

// CreateCategoryHandler godoc
// @Summary (Admin) Create a skill category
// @Description Add a new category to the skill test vocabulary. Names are unique.
// @Tags admin
// @Accept json
// @Produce json
// @Param category body dto.CategoryCreateRequest true "Category data"
// @Success 201 {object} dto.CategoryResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 409 {object} dto.ErrorResponse "Category name already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/categories [post]
func (c *AdminController) CreateCategoryHandler(ctx *gin.Context) {
	var req dto.CategoryCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind CategoryCreateRequest")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	category, err := c.categorySvc.CreateCategory(req)
	if err != nil {
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, category)
}

// GetVerificationHandler godoc
// @Summary (Admin) Get a student's trust record
// @Description Retrieve the accumulated trust score, flag level and event history for a student
// @Tags admin
// @Produce json
// @Param student_id path int true "Student ID"
// @Success 200 {object} dto.VerificationResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID format"
// @Failure 404 {object} dto.ErrorResponse "No trust record for this student"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/verifications/{student_id} [get]
func (c *AdminController) GetVerificationHandler(ctx *gin.Context) {
	studentID, ok := controller.ParseUintParam(ctx, "student_id")
	if !ok {
		return
	}

	verification, err := c.proctorSvc.GetVerification(studentID)
	if err != nil {
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, verification)
}
