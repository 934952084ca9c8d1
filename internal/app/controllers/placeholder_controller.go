package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/konaseema/zpportal/internal/app/models/dto"
)

// PlaceholderController answers the endpoints of features not built yet.
type PlaceholderController struct{}

// NewPlaceholderController creates a new PlaceholderController
func NewPlaceholderController() *PlaceholderController {
	return &PlaceholderController{}
}

// ComingSoon acknowledges the request without data
// @Summary Feature placeholder
// @Description Chat conversations, mentors and notifications are not available yet
// @Tags placeholders
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.MessageResponse} "Coming soon"
// @Router /chat/conversations [get]
// @Router /mentors [get]
// @Router /notifications [get]
func (c *PlaceholderController) ComingSoon(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.MessageResponse{Message: "Coming soon"}))
}
