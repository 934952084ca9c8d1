package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	appAuth "github.com/konaseema/zpportal/internal/app/auth"
	"github.com/konaseema/zpportal/internal/app/models"
	"github.com/konaseema/zpportal/internal/app/models/dto"
	"github.com/konaseema/zpportal/internal/app/repositories"
	"github.com/konaseema/zpportal/internal/pkg/apperrors"
	"github.com/konaseema/zpportal/internal/pkg/validation"
)

// AlumniService handles the alumni network.
type AlumniService interface {
	CreateProfile(ctx context.Context, userID string, req *dto.AlumniRequest) (*models.Alumni, error)
	ListAlumni(ctx context.Context, filter models.AlumniFilter) ([]*models.Alumni, error)
}

type alumniServiceImpl struct {
	alumniRepo   repositories.IAlumniRepository
	authzService *appAuth.AuthorizationService
}

// NewAlumniService creates a new AlumniService
func NewAlumniService(alumniRepo repositories.IAlumniRepository, authzService *appAuth.AuthorizationService) AlumniService {
	return &alumniServiceImpl{
		alumniRepo:   alumniRepo,
		authzService: authzService,
	}
}

// CreateProfile publishes an alumni profile owned by the caller.
func (s *alumniServiceImpl) CreateProfile(ctx context.Context, userID string, req *dto.AlumniRequest) (*models.Alumni, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: profile is nil", apperrors.ErrValidationFailed)
	}
	schoolID, err := requireText("school_id", req.SchoolID)
	if err != nil {
		return nil, err
	}
	if !validation.IsBatchYear(req.BatchYear) {
		return nil, fmt.Errorf("%w: batch year out of range", apperrors.ErrValidationFailed)
	}

	allowed, err := s.authzService.CanPublishAlumniProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, apperrors.NewForbiddenError("alumni account is awaiting approval")
	}

	achievements := make([]string, 0, len(req.Achievements))
	for _, a := range req.Achievements {
		if a = strings.TrimSpace(a); a != "" {
			achievements = append(achievements, a)
		}
	}

	alumni := &models.Alumni{
		ID:                newID(),
		UserID:            userID,
		SchoolID:          schoolID,
		BatchYear:         req.BatchYear,
		CurrentProfession: optionalText(req.CurrentProfession),
		Company:           optionalText(req.Company),
		Achievements:      achievements,
		WillingToMentor:   req.WillingToMentor,
	}

	if err := s.alumniRepo.CreateAlumni(ctx, alumni); err != nil {
		if errors.Is(err, apperrors.ErrSchoolNotFound) {
			return nil, fmt.Errorf("%w: %w", apperrors.ErrValidationFailed, err)
		}
		return nil, fmt.Errorf("error creating alumni profile: %w", err)
	}
	return alumni, nil
}

// ListAlumni lists alumni by school and batch.
func (s *alumniServiceImpl) ListAlumni(ctx context.Context, filter models.AlumniFilter) ([]*models.Alumni, error) {
	if filter.BatchYear != 0 && !validation.IsBatchYear(filter.BatchYear) {
		return nil, fmt.Errorf("%w: batch year out of range", apperrors.ErrValidationFailed)
	}
	alumni, err := s.alumniRepo.ListAlumni(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error retrieving alumni: %w", err)
	}
	return alumni, nil
}
