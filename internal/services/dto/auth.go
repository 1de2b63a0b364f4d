package dto

import "skillpilot_backend/internal/models"

type SignupRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=student recruiter"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResult carries both tokens to the handler layer, which decides what
// goes into cookies and what goes into the body.
type AuthResult struct {
	User         *models.User
	AccessToken  string
	RefreshToken string
}
