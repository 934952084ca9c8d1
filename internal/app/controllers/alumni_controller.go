package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/konaseema/zpportal/internal/app/models"
	"github.com/konaseema/zpportal/internal/app/models/dto"
	"github.com/konaseema/zpportal/internal/app/services"
	"github.com/konaseema/zpportal/internal/middleware"
	"github.com/konaseema/zpportal/internal/pkg/helpers"
)

// AlumniController handles the alumni network
type AlumniController struct {
	alumniService services.AlumniService
}

// NewAlumniController creates a new AlumniController
func NewAlumniController(alumniService services.AlumniService) *AlumniController {
	return &AlumniController{alumniService: alumniService}
}

// ListAlumni lists alumni profiles
// @Summary List alumni
// @Tags alumni
// @Produce json
// @Param school_id query string false "School ID"
// @Param batch_year query int false "Batch year"
// @Success 200 {object} dto.APIResponse{data=[]models.Alumni} "Alumni"
// @Failure 400 {object} dto.ErrorResponse "Invalid filter"
// @Router /alumni [get]
func (c *AlumniController) ListAlumni(ctx *gin.Context) {
	batchYear, err := helpers.QueryInt(ctx, "batch_year")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	alumni, err := c.alumniService.ListAlumni(ctx.Request.Context(), models.AlumniFilter{
		SchoolID:  helpers.QueryString(ctx, "school_id"),
		BatchYear: batchYear,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(alumni))
}

// CreateAlumniProfile publishes the caller's alumni profile
// @Summary Create alumni profile
// @Tags alumni
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AlumniRequest true "Alumni profile"
// @Success 201 {object} dto.APIResponse{data=models.Alumni} "Profile created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Account awaiting approval"
// @Router /alumni [post]
func (c *AlumniController) CreateAlumniProfile(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}

	var req dto.AlumniRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}

	profile, err := c.alumniService.CreateProfile(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(profile))
}
