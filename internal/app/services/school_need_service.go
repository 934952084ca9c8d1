package services

import (
	"context"
	"fmt"

	"github.com/konaseema/zpportal/internal/app/models"
	"github.com/konaseema/zpportal/internal/app/models/dto"
	"github.com/konaseema/zpportal/internal/app/repositories"
	"github.com/konaseema/zpportal/internal/pkg/apperrors"
)

// SchoolNeedService handles needs published by schools.
type SchoolNeedService interface {
	CreateSchoolNeed(ctx context.Context, req *dto.SchoolNeedRequest) (*models.SchoolNeed, error)
	ListSchoolNeeds(ctx context.Context, schoolID string, status models.NeedStatus) ([]*models.SchoolNeed, error)
}

type schoolNeedServiceImpl struct {
	needRepo repositories.ISchoolNeedRepository
}

// NewSchoolNeedService creates a new SchoolNeedService
func NewSchoolNeedService(needRepo repositories.ISchoolNeedRepository) SchoolNeedService {
	return &schoolNeedServiceImpl{needRepo: needRepo}
}

func validNeedStatus(status models.NeedStatus) bool {
	switch status {
	case models.NeedActive, models.NeedFulfilled, models.NeedClosed:
		return true
	}
	return false
}

func (s *schoolNeedServiceImpl) CreateSchoolNeed(ctx context.Context, req *dto.SchoolNeedRequest) (*models.SchoolNeed, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: need is nil", apperrors.ErrValidationFailed)
	}
	schoolID, err := requireText("school_id", req.SchoolID)
	if err != nil {
		return nil, err
	}
	title, err := requireText("title", req.Title)
	if err != nil {
		return nil, err
	}
	description, err := requireText("description", req.Description)
	if err != nil {
		return nil, err
	}
	category, err := requireText("category", req.Category)
	if err != nil {
		return nil, err
	}
	if req.TargetAmount != nil {
		if err := ValidateAmount(*req.TargetAmount); err != nil {
			return nil, fmt.Errorf("%w: target_amount must be greater than zero", apperrors.ErrValidationFailed)
		}
	}

	need := &models.SchoolNeed{
		ID:           newID(),
		SchoolID:     schoolID,
		Title:        title,
		Description:  description,
		Category:     category,
		TargetAmount: req.TargetAmount,
		Status:       models.NeedActive,
	}
	if err := s.needRepo.CreateSchoolNeed(ctx, need); err != nil {
		return nil, wrapCreateError("school need", err)
	}
	return need, nil
}

func (s *schoolNeedServiceImpl) ListSchoolNeeds(ctx context.Context, schoolID string, status models.NeedStatus) ([]*models.SchoolNeed, error) {
	if status != "" && !validNeedStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", apperrors.ErrValidationFailed, status)
	}
	needs, err := s.needRepo.ListSchoolNeeds(ctx, schoolID, status)
	if err != nil {
		return nil, fmt.Errorf("error retrieving school needs: %w", err)
	}
	return needs, nil
}
