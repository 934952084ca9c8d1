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

// AdminController handles the admin dashboard
type AdminController struct {
	adminService services.AdminService
}

// NewAdminController creates a new AdminController
func NewAdminController(adminService services.AdminService) *AdminController {
	return &AdminController{adminService: adminService}
}

// Stats returns dashboard totals
// @Summary Admin statistics
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.AdminStats} "Statistics"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Router /admin/stats [get]
func (c *AdminController) Stats(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}
	stats, err := c.adminService.Stats(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(stats))
}

// ListUsers lists users
// @Summary List users
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param role query string false "Role"
// @Success 200 {object} dto.APIResponse{data=[]models.User} "Users"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Router /admin/users [get]
func (c *AdminController) ListUsers(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}
	users, err := c.adminService.ListUsers(ctx.Request.Context(), userID, models.RoleType(helpers.QueryString(ctx, "role")))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(users))
}

// ApproveUser approves a pending user
// @Summary Approve a user
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} dto.APIResponse{data=models.User} "Approved user"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /admin/users/{id}/approve [put]
func (c *AdminController) ApproveUser(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}
	user, err := c.adminService.ApproveUser(ctx.Request.Context(), userID, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(user))
}
