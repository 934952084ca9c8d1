package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/konaseema/zpportal/internal/app/models"
	"github.com/konaseema/zpportal/internal/app/models/dto"
	"github.com/konaseema/zpportal/internal/app/repositories"
	"github.com/konaseema/zpportal/internal/pkg/apperrors"
	"github.com/konaseema/zpportal/internal/pkg/validation"
)

// SchoolService defines the interface for school directory operations
type SchoolService interface {
	CreateSchool(ctx context.Context, req *dto.SchoolRequest) (*models.School, error)
	GetSchool(ctx context.Context, id string) (*models.School, error)
	ListSchools(ctx context.Context, filter repositories.SchoolFilter) ([]*models.School, error)
	UpdateSchool(ctx context.Context, id string, req *dto.SchoolRequest) (*models.School, error)
	ListMandals(ctx context.Context) ([]*models.Mandal, error)
}

type schoolServiceImpl struct {
	schoolRepo repositories.ISchoolRepository
}

// NewSchoolService creates a new school service instance
func NewSchoolService(schoolRepo repositories.ISchoolRepository) SchoolService {
	return &schoolServiceImpl{schoolRepo: schoolRepo}
}

// schoolFromRequest validates req and builds the stored representation.
func schoolFromRequest(req *dto.SchoolRequest) (*models.School, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: school is nil", apperrors.ErrValidationFailed)
	}

	name, err := requireText("name", req.Name)
	if err != nil {
		return nil, err
	}
	mandalID, err := requireText("mandal_id", req.MandalID)
	if err != nil {
		return nil, err
	}
	if req.ContactEmail != nil && strings.TrimSpace(*req.ContactEmail) != "" && !validation.IsEmail(*req.ContactEmail) {
		return nil, fmt.Errorf("%w: invalid contact email", apperrors.ErrValidationFailed)
	}

	facilities := make([]string, 0, len(req.Facilities))
	for _, f := range req.Facilities {
		if f = strings.TrimSpace(f); f != "" {
			facilities = append(facilities, f)
		}
	}

	return &models.School{
		Name:         name,
		MandalID:     mandalID,
		HMNote:       optionalText(req.HMNote),
		Facilities:   facilities,
		ContactEmail: optionalText(req.ContactEmail),
		ContactPhone: optionalText(req.ContactPhone),
		Address:      optionalText(req.Address),
	}, nil
}

// CreateSchool creates a school. A caller supplied id must be a slug such as
// "school-006"; otherwise a uuid is assigned.
func (s *schoolServiceImpl) CreateSchool(ctx context.Context, req *dto.SchoolRequest) (*models.School, error) {
	school, err := schoolFromRequest(req)
	if err != nil {
		return nil, err
	}

	school.ID = newID()
	if id := strings.TrimSpace(req.ID); id != "" {
		if !validation.CompiledPatterns.Slug.MatchString(id) {
			return nil, fmt.Errorf("%w: id must be lowercase letters, digits and dashes", apperrors.ErrValidationFailed)
		}
		school.ID = id
	}

	if err := s.schoolRepo.CreateSchool(ctx, school); err != nil {
		if errors.Is(err, apperrors.ErrMandalNotFound) {
			return nil, fmt.Errorf("%w: %w", apperrors.ErrValidationFailed, err)
		}
		if errors.Is(err, apperrors.ErrResourceAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating school: %w", err)
	}
	return school, nil
}

// GetSchool retrieves a school by ID
func (s *schoolServiceImpl) GetSchool(ctx context.Context, id string) (*models.School, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: invalid school ID", apperrors.ErrValidationFailed)
	}
	school, err := s.schoolRepo.GetSchoolByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrSchoolNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error retrieving school: %w", err)
	}
	return school, nil
}

// ListSchools lists schools matching the filter.
func (s *schoolServiceImpl) ListSchools(ctx context.Context, filter repositories.SchoolFilter) ([]*models.School, error) {
	schools, err := s.schoolRepo.ListSchools(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error retrieving schools: %w", err)
	}
	return schools, nil
}

// UpdateSchool replaces the mutable fields of a school.
func (s *schoolServiceImpl) UpdateSchool(ctx context.Context, id string, req *dto.SchoolRequest) (*models.School, error) {
	school, err := schoolFromRequest(req)
	if err != nil {
		return nil, err
	}
	school.ID = id

	if err := s.schoolRepo.UpdateSchool(ctx, school); err != nil {
		if errors.Is(err, apperrors.ErrSchoolNotFound) {
			return nil, err
		}
		if errors.Is(err, apperrors.ErrMandalNotFound) {
			return nil, fmt.Errorf("%w: %w", apperrors.ErrValidationFailed, err)
		}
		return nil, fmt.Errorf("error updating school: %w", err)
	}
	return school, nil
}

// ListMandals lists every mandal.
func (s *schoolServiceImpl) ListMandals(ctx context.Context) ([]*models.Mandal, error) {
	mandals, err := s.schoolRepo.ListMandals(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving mandals: %w", err)
	}
	return mandals, nil
}
