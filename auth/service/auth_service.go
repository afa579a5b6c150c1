package service

import (
	"context"
	"errors"
	"os"
	"time"

	authpkg "github.com/abdhalim18/inventory-backend/auth"
	"github.com/abdhalim18/inventory-backend/entity"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	accessTTL  = 24 * time.Hour
	refreshTTL = 7 * 24 * time.Hour
)

// ErrInvalidCredentials is returned for unknown emails and wrong passwords alike.
var ErrInvalidCredentials = errors.New("invalid email or password")

type authService struct {
	repo authpkg.Repository
}

func NewAuthService(repo authpkg.Repository) authpkg.Service {
	return &authService{repo: repo}
}

func jwtSecret() string {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "dev-insecure-secret-change-me"
	}
	return secret
}

func principalFor(u *entity.User) *authpkg.Principal {
	return &authpkg.Principal{
		UserID:    u.ID.String(),
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
	}
}

func (s *authService) issueTokens(p *authpkg.Principal) error {
	secret := jwtSecret()
	access, err := authpkg.SignJWT(secret, p, accessTTL, "access")
	if err != nil {
		return err
	}
	refresh, err := authpkg.SignJWT(secret, p, refreshTTL, "refresh")
	if err != nil {
		return err
	}
	p.Token = access
	p.RefreshToken = refresh
	return nil
}

func (s *authService) Login(ctx context.Context, req authpkg.LoginRequest) (*authpkg.Principal, error) {
	if req.Email == "" || req.Password == "" {
		return nil, errors.New("email and password are required")
	}

	user, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.Active {
		return nil, errors.New("account is disabled")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	p := principalFor(user)
	if err := s.issueTokens(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*authpkg.Principal, error) {
	claims, err := authpkg.ParseAndValidate(jwtSecret(), refreshToken)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != "refresh" {
		return nil, errors.New("not a refresh token")
	}
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, errors.New("malformed token subject")
	}
	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !user.Active {
		return nil, errors.New("account is disabled")
	}

	p := principalFor(user)
	if err := s.issueTokens(p); err != nil {
		return nil, err
	}
	return p, nil
}
