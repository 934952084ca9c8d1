package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	appAuth "github.com/konaseema/zpportal/internal/app/auth"
	"github.com/konaseema/zpportal/internal/app/models"
	"github.com/konaseema/zpportal/internal/app/models/dto"
	"github.com/konaseema/zpportal/internal/app/repositories"
	"github.com/konaseema/zpportal/internal/pkg/apperrors"
	"github.com/konaseema/zpportal/internal/pkg/email"
)

// AdminService backs the admin dashboard. Every operation re-checks that the
// caller is staff against the stored user.
type AdminService interface {
	Stats(ctx context.Context, callerID string) (*dto.AdminStats, error)
	ListUsers(ctx context.Context, callerID string, role models.RoleType) ([]*models.User, error)
	ApproveUser(ctx context.Context, callerID, userID string) (*models.User, error)
}

type adminServiceImpl struct {
	userRepo     repositories.IUserRepository
	statsRepo    repositories.IStatsRepository
	authzService *appAuth.AuthorizationService
	emailService email.EmailService
	logger       zerolog.Logger
}

// NewAdminService creates a new AdminService
func NewAdminService(
	userRepo repositories.IUserRepository,
	statsRepo repositories.IStatsRepository,
	authzService *appAuth.AuthorizationService,
	emailService email.EmailService,
	logger zerolog.Logger,
) AdminService {
	return &adminServiceImpl{
		userRepo:     userRepo,
		statsRepo:    statsRepo,
		authzService: authzService,
		emailService: emailService,
		logger:       logger,
	}
}

func (s *adminServiceImpl) Stats(ctx context.Context, callerID string) (*dto.AdminStats, error) {
	if err := s.authzService.ValidateStaff(ctx, callerID); err != nil {
		return nil, err
	}
	stats, err := s.statsRepo.AdminStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("error computing admin stats: %w", err)
	}
	return stats, nil
}

func (s *adminServiceImpl) ListUsers(ctx context.Context, callerID string, role models.RoleType) ([]*models.User, error) {
	if err := s.authzService.ValidateStaff(ctx, callerID); err != nil {
		return nil, err
	}
	users, err := s.userRepo.ListUsers(ctx, role)
	if err != nil {
		return nil, fmt.Errorf("error retrieving users: %w", err)
	}
	return users, nil
}

// ApproveUser marks a user approved. Approving an approved user is a no-op
// that returns the stored user and sends no mail.
func (s *adminServiceImpl) ApproveUser(ctx context.Context, callerID, userID string) (*models.User, error) {
	if err := s.authzService.ValidateStaff(ctx, callerID); err != nil {
		return nil, err
	}

	current, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error loading user: %w", err)
	}
	if current.Approved {
		return current, nil
	}

	user, err := s.userRepo.ApproveUser(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error approving user: %w", err)
	}

	s.logger.Info().Str("userID", user.ID).Str("approvedBy", callerID).Msg("User approved")

	if err := s.emailService.SendApprovalEmail(user.Email, user.Name); err != nil {
		s.logger.Warn().Err(err).Str("userID", user.ID).Msg("Failed to send approval email")
	}
	return user, nil
}
