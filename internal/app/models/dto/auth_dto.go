package dto

import "github.com/konaseema/zpportal/internal/app/models"

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest is the self-service sign up payload.
type RegisterRequest struct {
	Email     string          `json:"email" binding:"required,email"`
	Password  string          `json:"password" binding:"required,min=6"`
	Name      string          `json:"name" binding:"required,min=2,max=100"`
	Phone     *string         `json:"phone,omitempty" binding:"omitempty,max=20"`
	Role      models.RoleType `json:"role" binding:"omitempty,oneof=student alumni parent donor mentor teacher"`
	SchoolID  *string         `json:"school_id,omitempty"`
	MandalID  *string         `json:"mandal_id,omitempty"`
	BatchYear *int            `json:"batch_year,omitempty" binding:"omitempty,min=1950,max=2100"`
}

// LoginResponse carries the bearer token and the user snapshot.
type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type" example:"bearer"`
	ExpiresIn   int          `json:"expires_in" example:"604800"`
	User        *models.User `json:"user"`
}
