package service

import (
	"context"
	"errors"

	"github.com/abdhalim18/inventory-backend/entity"
	userpkg "github.com/abdhalim18/inventory-backend/user"
	"golang.org/x/crypto/bcrypt"
)

// ErrDuplicateEmail is returned when the email is already registered.
var ErrDuplicateEmail = errors.New("user with this email already exists")

type userService struct {
	repo userpkg.UserRepository
}

// NewUserService constructs a UserService backed by the provided repository.
func NewUserService(repo userpkg.UserRepository) userpkg.UserService {
	return &userService{repo: repo}
}

func (s *userService) RegisterUser(ctx context.Context, req userpkg.RegisterUserRequest) (*entity.User, error) {
	if req.Email == "" || req.Password == "" {
		return nil, errors.New("email and password are required")
	}
	exists, err := s.repo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	role := req.Role
	if role == "" {
		role = entity.RoleStaff
	}
	u := &entity.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
		Active:       true,
	}
	return s.repo.StoreUser(ctx, u)
}

func (s *userService) ListUsers(ctx context.Context) ([]entity.User, error) {
	return s.repo.ListUsers(ctx)
}
