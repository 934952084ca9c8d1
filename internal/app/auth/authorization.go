package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/konaseema/zpportal/internal/app/repositories"
	"github.com/konaseema/zpportal/internal/pkg/apperrors"
	"github.com/konaseema/zpportal/internal/pkg/logger"
)

// ErrNotStaff is returned when a non administrative user attempts a staff action.
var ErrNotStaff = errors.New("only administrators and MEOs can perform this action")

// AuthorizationService re-checks roles against the stored user, so a token
// issued before a role change cannot keep old privileges.
type AuthorizationService struct {
	userRepo repositories.IUserRepository
}

// NewAuthorizationService creates a new AuthorizationService
func NewAuthorizationService(userRepo repositories.IUserRepository) *AuthorizationService {
	return &AuthorizationService{userRepo: userRepo}
}

// IsStaff checks if the user is an admin or MEO.
func (s *AuthorizationService) IsStaff(ctx context.Context, userID string) (bool, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return false, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Str("userID", userID).Msg("Error getting user by ID in IsStaff")
		return false, err
	}
	return user.Role.IsStaff(), nil
}

// ValidateStaff returns ErrNotStaff wrapped in ErrPermissionDenied when the
// user is not staff.
func (s *AuthorizationService) ValidateStaff(ctx context.Context, userID string) error {
	ok, err := s.IsStaff(ctx, userID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %w", apperrors.ErrPermissionDenied, ErrNotStaff)
	}
	return nil
}

// CanPublishAlumniProfile reports whether the user may publish an alumni
// profile. Alumni registrations must be approved first.
func (s *AuthorizationService) CanPublishAlumniProfile(ctx context.Context, userID string) (bool, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return false, err
	}
	return !user.IsPendingApproval(), nil
}
