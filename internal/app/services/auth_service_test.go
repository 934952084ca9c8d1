package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/konaseema/zpportal/internal/app/models"
	"github.com/konaseema/zpportal/internal/app/models/dto"
	"github.com/konaseema/zpportal/internal/pkg/apperrors"
	"github.com/konaseema/zpportal/internal/pkg/auth"
)

func newTestAuthService(repo *fakeUserRepo, mailer *fakeMailer) (AuthService, *auth.JWTService) {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "zpportal-test",
	})
	return NewAuthService(repo, jwtService, mailer, zerolog.Nop()), jwtService
}

func TestRegisterCreatesUnapprovedUser(t *testing.T) {
	repo := newFakeUserRepo()
	mailer := &fakeMailer{}
	svc, _ := newTestAuthService(repo, mailer)

	user, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "  Ravi@Example.com ",
		Password: "secret1",
		Name:     "Ravi Kumar",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "ravi@example.com", user.Email)
	assert.Equal(t, models.RoleStudent, user.Role)
	assert.False(t, user.Approved)
	assert.NotEqual(t, "secret1", user.Password)
	assert.True(t, auth.CheckPassword(user.Password, "secret1"))

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "welcome", mailer.sent[0].kind)
}

func TestRegisterRejections(t *testing.T) {
	existing := &models.User{ID: "u-1", Email: "taken@example.com", Name: "Taken", Role: models.RoleDonor}
	tests := []struct {
		name string
		req  dto.RegisterRequest
		want error
	}{
		{
			name: "duplicate email",
			req:  dto.RegisterRequest{Email: "TAKEN@example.com", Password: "secret1", Name: "Someone"},
			want: apperrors.ErrEmailAlreadyExists,
		},
		{
			name: "admin role",
			req:  dto.RegisterRequest{Email: "a@example.com", Password: "secret1", Name: "Admin", Role: models.RoleAdmin},
			want: apperrors.ErrValidationFailed,
		},
		{
			name: "short password",
			req:  dto.RegisterRequest{Email: "b@example.com", Password: "12345", Name: "Bee"},
			want: apperrors.ErrValidationFailed,
		},
		{
			name: "bad email",
			req:  dto.RegisterRequest{Email: "nope", Password: "secret1", Name: "Nope"},
			want: apperrors.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestAuthService(newFakeUserRepo(existing), &fakeMailer{})
			_, err := svc.Register(context.Background(), &tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLoginThenMeYieldsSameUser(t *testing.T) {
	repo := newFakeUserRepo()
	svc, jwtService := newTestAuthService(repo, &fakeMailer{})
	ctx := context.Background()

	registered, err := svc.Register(ctx, &dto.RegisterRequest{
		Email:    "lakshmi@example.com",
		Password: "secret1",
		Name:     "Lakshmi",
		Role:     models.RoleAlumni,
	})
	require.NoError(t, err)

	resp, err := svc.Login(ctx, &dto.LoginRequest{Email: "lakshmi@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, TokenTypeBearer, resp.TokenType)
	assert.Equal(t, 3600, resp.ExpiresIn)
	assert.Equal(t, registered.ID, resp.User.ID)

	claims, err := jwtService.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAlumni, claims.Role)

	me, err := svc.Me(ctx, claims.UserID())
	require.NoError(t, err)
	assert.Equal(t, registered.ID, me.ID)
	assert.Equal(t, registered.Email, me.Email)
}

func TestLoginFailures(t *testing.T) {
	hash, err := auth.HashPassword("secret1")
	require.NoError(t, err)
	repo := newFakeUserRepo(&models.User{ID: "u-1", Email: "ravi@example.com", Password: hash, Role: models.RoleStudent})
	svc, _ := newTestAuthService(repo, &fakeMailer{})

	_, err = svc.Login(context.Background(), &dto.LoginRequest{Email: "ravi@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{Email: "nobody@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.Me(context.Background(), "missing")
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}
