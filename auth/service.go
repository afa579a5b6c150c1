package auth

import (
	"context"
)

// LoginRequest authenticates a panel operator by email and password.
type LoginRequest struct {
	Email    string
	Password string
}

// Principal is the authenticated operator returned to the client, with
// freshly signed tokens attached.
type Principal struct {
	UserID       string `json:"user_id"`
	Email        string `json:"email"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Role         string `json:"role"`
	Token        string `json:"token,omitempty"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

// Service provides login/auth operations.
type Service interface {
	Login(ctx context.Context, req LoginRequest) (*Principal, error)
	Refresh(ctx context.Context, refreshToken string) (*Principal, error)
}
