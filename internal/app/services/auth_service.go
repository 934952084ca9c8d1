package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/rs/zerolog"

	"github.com/konaseema/zpportal/internal/app/models"
	"github.com/konaseema/zpportal/internal/app/models/dto"
	"github.com/konaseema/zpportal/internal/app/repositories"
	"github.com/konaseema/zpportal/internal/pkg/apperrors"
	"github.com/konaseema/zpportal/internal/pkg/auth"
	"github.com/konaseema/zpportal/internal/pkg/email"
	"github.com/konaseema/zpportal/internal/pkg/validation"
)

// TokenTypeBearer is reported with every issued access token.
const TokenTypeBearer = "bearer"

// AuthService handles registration, login and identity lookups.
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Me(ctx context.Context, userID string) (*models.User, error)
}

type authServiceImpl struct {
	userRepo     repositories.IUserRepository
	jwtService   *auth.JWTService
	emailService email.EmailService
	logger       zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo repositories.IUserRepository,
	jwtService *auth.JWTService,
	emailService email.EmailService,
	logger zerolog.Logger,
) AuthService {
	return &authServiceImpl{
		userRepo:     userRepo,
		jwtService:   jwtService,
		emailService: emailService,
		logger:       logger,
	}
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func (s *authServiceImpl) validateRegistration(req *dto.RegisterRequest) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", apperrors.ErrValidationFailed)
	}
	if !validation.IsEmail(req.Email) {
		return fmt.Errorf("%w: invalid email format", apperrors.ErrValidationFailed)
	}
	if len(req.Password) < validation.PasswordMinLength {
		return fmt.Errorf("%w: password must be at least %d characters long", apperrors.ErrValidationFailed, validation.PasswordMinLength)
	}
	if !validation.IsName(req.Name) {
		return fmt.Errorf("%w: name must be between %d and %d characters", apperrors.ErrValidationFailed, validation.NameMinLength, validation.NameMaxLength)
	}
	if req.Phone != nil && !validation.NewStringValidation(*req.Phone).WithRequired(false).WithPattern(validation.CompiledPatterns.Phone).Validate() {
		return fmt.Errorf("%w: invalid phone number", apperrors.ErrValidationFailed)
	}
	if req.Role != "" && !slices.Contains(models.SelfRegisterRoles, req.Role) {
		return fmt.Errorf("%w: role %q cannot be chosen at registration", apperrors.ErrValidationFailed, req.Role)
	}
	if req.BatchYear != nil && !validation.IsBatchYear(*req.BatchYear) {
		return fmt.Errorf("%w: batch year out of range", apperrors.ErrValidationFailed)
	}
	return nil
}

// Register creates an unapproved account. No token is issued; the caller
// logs in afterwards.
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	if err := s.validateRegistration(req); err != nil {
		return nil, err
	}

	emailAddr := normalizeEmail(req.Email)
	exists, err := s.userRepo.EmailExists(ctx, emailAddr)
	if err != nil {
		return nil, fmt.Errorf("error checking if email exists: %w", err)
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	role := req.Role
	if role == "" {
		role = models.RoleStudent
	}

	user := &models.User{
		ID:        newID(),
		Email:     emailAddr,
		Password:  hashedPassword,
		Name:      strings.TrimSpace(req.Name),
		Phone:     optionalText(req.Phone),
		Role:      role,
		SchoolID:  optionalText(req.SchoolID),
		MandalID:  optionalText(req.MandalID),
		BatchYear: req.BatchYear,
		Approved:  false,
	}

	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) || errors.Is(err, apperrors.ErrValidationFailed) {
			return nil, err
		}
		return nil, fmt.Errorf("user creation error: %w", err)
	}

	s.logger.Info().Str("userID", user.ID).Str("role", string(user.Role)).Msg("User registered")

	if err := s.emailService.SendWelcomeEmail(user.Email, user.Name); err != nil {
		s.logger.Warn().Err(err).Str("userID", user.ID).Msg("Failed to send welcome email")
	}

	return user, nil
}

// Login authenticates a user and issues a bearer token.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if req == nil || strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", apperrors.ErrValidationFailed)
	}

	user, err := s.userRepo.GetUserByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error loading user: %w", err)
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("error generating access token: %w", err)
	}

	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   TokenTypeBearer,
		ExpiresIn:   expiresIn,
		User:        user,
	}, nil
}

// Me returns the stored user behind a validated token.
func (s *authServiceImpl) Me(ctx context.Context, userID string) (*models.User, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, apperrors.ErrTokenInvalid
	}
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			// The account behind a still valid token is gone.
			return nil, apperrors.ErrTokenInvalid
		}
		return nil, fmt.Errorf("failed to get user information: %w", err)
	}
	return user, nil
}
