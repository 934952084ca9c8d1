package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/konaseema/zpportal/internal/app/models/dto"
	"github.com/konaseema/zpportal/internal/app/repositories"
	"github.com/konaseema/zpportal/internal/app/services"
	"github.com/konaseema/zpportal/internal/middleware"
	"github.com/konaseema/zpportal/internal/pkg/helpers"
)

// SchoolController handles the school directory and mandals
type SchoolController struct {
	schoolService services.SchoolService
}

// NewSchoolController creates a new SchoolController
func NewSchoolController(schoolService services.SchoolService) *SchoolController {
	return &SchoolController{schoolService: schoolService}
}

// ListSchools lists schools
// @Summary List schools
// @Description Lists schools ordered by name, optionally filtered by mandal and a case-insensitive name search
// @Tags schools
// @Produce json
// @Param search query string false "Name contains"
// @Param mandal_id query string false "Mandal ID"
// @Success 200 {object} dto.APIResponse{data=[]models.School} "Schools"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schools [get]
func (c *SchoolController) ListSchools(ctx *gin.Context) {
	schools, err := c.schoolService.ListSchools(ctx.Request.Context(), repositories.SchoolFilter{
		MandalID: helpers.QueryString(ctx, "mandal_id"),
		Search:   helpers.QueryString(ctx, "search"),
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(schools))
}

// GetSchool retrieves a school
// @Summary Get school details
// @Tags schools
// @Produce json
// @Param id path string true "School ID"
// @Success 200 {object} dto.APIResponse{data=models.School} "School"
// @Failure 404 {object} dto.ErrorResponse "School not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schools/{id} [get]
func (c *SchoolController) GetSchool(ctx *gin.Context) {
	school, err := c.schoolService.GetSchool(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(school))
}

// CreateSchool creates a school
// @Summary Create a school
// @Tags schools
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SchoolRequest true "School"
// @Success 201 {object} dto.APIResponse{data=models.School} "School created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 409 {object} dto.ErrorResponse "School already exists"
// @Router /schools [post]
func (c *SchoolController) CreateSchool(ctx *gin.Context) {
	var req dto.SchoolRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}

	school, err := c.schoolService.CreateSchool(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(school))
}

// UpdateSchool updates a school
// @Summary Update a school
// @Tags schools
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "School ID"
// @Param request body dto.SchoolRequest true "School"
// @Success 200 {object} dto.APIResponse{data=models.School} "School updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "School not found"
// @Router /schools/{id} [put]
func (c *SchoolController) UpdateSchool(ctx *gin.Context) {
	var req dto.SchoolRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}

	school, err := c.schoolService.UpdateSchool(ctx.Request.Context(), ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(school))
}

// ListMandals lists mandals
// @Summary List mandals
// @Tags schools
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Mandal} "Mandals"
// @Router /mandals [get]
func (c *SchoolController) ListMandals(ctx *gin.Context) {
	mandals, err := c.schoolService.ListMandals(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(mandals))
}
