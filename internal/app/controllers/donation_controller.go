package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/konaseema/zpportal/internal/app/models/dto"
	"github.com/konaseema/zpportal/internal/app/services"
	"github.com/konaseema/zpportal/internal/middleware"
	"github.com/konaseema/zpportal/internal/pkg/helpers"
)

// DonationController handles donations
type DonationController struct {
	donationService services.DonationService
}

// NewDonationController creates a new DonationController
func NewDonationController(donationService services.DonationService) *DonationController {
	return &DonationController{donationService: donationService}
}

// ListDonations lists donations
// @Summary List donations
// @Description Lists donations newest first, at most 100
// @Tags donations
// @Produce json
// @Param school_id query string false "School ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Donation} "Donations"
// @Router /donations [get]
func (c *DonationController) ListDonations(ctx *gin.Context) {
	donations, err := c.donationService.ListDonations(ctx.Request.Context(), helpers.QueryString(ctx, "school_id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(donations))
}

// CreateDonation records a donation
// @Summary Donate
// @Description Records a donation. Payment is mocked: the donation is stored as completed with a generated transaction id.
// @Tags donations
// @Accept json
// @Produce json
// @Param request body dto.DonationRequest true "Donation"
// @Success 201 {object} dto.APIResponse{data=models.Donation} "Donation recorded"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /donations [post]
func (c *DonationController) CreateDonation(ctx *gin.Context) {
	var req dto.DonationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}

	donation, err := c.donationService.CreateDonation(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(donation))
}
