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

// SchoolNeedController handles school needs
type SchoolNeedController struct {
	needService services.SchoolNeedService
}

// NewSchoolNeedController creates a new SchoolNeedController
func NewSchoolNeedController(needService services.SchoolNeedService) *SchoolNeedController {
	return &SchoolNeedController{needService: needService}
}

// ListSchoolNeeds lists school needs
// @Summary List school needs
// @Tags school-needs
// @Produce json
// @Param school_id query string false "School ID"
// @Param status query string false "Status" Enums(active, fulfilled, closed)
// @Success 200 {object} dto.APIResponse{data=[]models.SchoolNeed} "Needs"
// @Failure 400 {object} dto.ErrorResponse "Invalid status"
// @Router /school-needs [get]
func (c *SchoolNeedController) ListSchoolNeeds(ctx *gin.Context) {
	needs, err := c.needService.ListSchoolNeeds(ctx.Request.Context(),
		helpers.QueryString(ctx, "school_id"),
		models.NeedStatus(helpers.QueryString(ctx, "status")))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(needs))
}

// CreateSchoolNeed publishes a need
// @Summary Create a school need
// @Tags school-needs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SchoolNeedRequest true "Need"
// @Success 201 {object} dto.APIResponse{data=models.SchoolNeed} "Need created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Router /school-needs [post]
func (c *SchoolNeedController) CreateSchoolNeed(ctx *gin.Context) {
	var req dto.SchoolNeedRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}

	need, err := c.needService.CreateSchoolNeed(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(need))
}
