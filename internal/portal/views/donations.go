package views

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/konaseema/zpportal/internal/app/models"
	"github.com/konaseema/zpportal/internal/app/models/dto"
	"github.com/konaseema/zpportal/internal/pkg/validation"
	"github.com/konaseema/zpportal/internal/portal/apiclient"
	"github.com/konaseema/zpportal/internal/portal/resource"
)

// DonationForm is the donate form as typed by the visitor.
type DonationForm struct {
	DonorName  string
	DonorEmail string
	Amount     string
	SchoolID   string
	Purpose    string
}

// Request validates the form and converts it for the backend.
func (f DonationForm) Request() (dto.DonationRequest, error) {
	name := strings.TrimSpace(f.DonorName)
	if name == "" {
		return dto.DonationRequest{}, errors.New("name is required")
	}
	email := strings.TrimSpace(f.DonorEmail)
	if !validation.IsEmail(email) {
		return dto.DonationRequest{}, errors.New("a valid email is required")
	}
	amount, err := resource.ParseAmount(f.Amount)
	if err != nil {
		return dto.DonationRequest{}, resource.ErrInvalidAmount
	}

	req := dto.DonationRequest{DonorName: name, DonorEmail: email, Amount: amount}
	if id := strings.TrimSpace(f.SchoolID); id != "" {
		req.SchoolID = &id
	}
	if purpose := strings.TrimSpace(f.Purpose); purpose != "" {
		req.Purpose = &purpose
	}
	return req, nil
}

// Donations shows the donation history and takes new donations.
type Donations struct {
	*resource.Controller
	api API
}

func NewDonations(api API, logger zerolog.Logger) *Donations {
	v := &Donations{Controller: resource.New(logger), api: api}
	v.Register(SliceDonations, fetch(func(ctx context.Context) ([]*models.Donation, error) {
		return api.ListDonations(ctx, "")
	}))
	v.Register(SliceSchools, fetch(func(ctx context.Context) ([]*models.School, error) {
		return api.ListSchools(ctx, apiclient.SchoolQuery{})
	}))
	return v
}

func (v *Donations) Donations() []*models.Donation {
	donations, _ := resource.Get[[]*models.Donation](v.Controller, SliceDonations)
	return donations
}

func (v *Donations) Schools() []*models.School {
	schools, _ := resource.Get[[]*models.School](v.Controller, SliceSchools)
	return schools
}

func (v *Donations) Total() float64 {
	return TotalAmount(v.Donations())
}

func (v *Donations) SchoolsSupported() int {
	return SchoolsSupported(v.Donations())
}

// SchoolName resolves a school id for display, falling back to "General
// Fund" for donations not tied to a school.
func (v *Donations) SchoolName(id *string) string {
	if id == nil || *id == "" {
		return "General Fund"
	}
	for _, s := range v.Schools() {
		if s.ID == *id {
			return s.Name
		}
	}
	return *id
}

// Donate validates form locally, sends it and merges the recorded
// donation into the list.
func (v *Donations) Donate(ctx context.Context, form DonationForm) error {
	var req dto.DonationRequest
	return v.Submit(ctx, resource.Submission{
		Target: SliceDonations,
		Validate: func() error {
			var err error
			req, err = form.Request()
			return err
		},
		Send: func(ctx context.Context) (any, error) {
			return v.api.CreateDonation(ctx, req)
		},
		Merge:   resource.UpsertMerge[*models.Donation](func(d *models.Donation) string { return d.ID }),
		Success: "Thank you for your generous contribution!",
		Failure: func(error) string { return "Error processing donation" },
	})
}

// TotalAmount sums donation amounts.
func TotalAmount(donations []*models.Donation) float64 {
	total := 0.0
	for _, d := range donations {
		total += d.Amount
	}
	return total
}

// SchoolsSupported counts the distinct schools that received donations.
func SchoolsSupported(donations []*models.Donation) int {
	seen := make(map[string]bool)
	for _, d := range donations {
		if d.SchoolID != nil && *d.SchoolID != "" {
			seen[*d.SchoolID] = true
		}
	}
	return len(seen)
}
