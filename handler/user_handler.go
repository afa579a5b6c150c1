package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	userpkg "github.com/abdhalim18/inventory-backend/user"
	usersvc "github.com/abdhalim18/inventory-backend/user/service"
	"github.com/gin-gonic/gin"
)

// UserHandler bundles dependencies for operator management handlers.
type UserHandler struct {
	service userpkg.UserService
}

// NewUserHandler constructs a UserHandler.
func NewUserHandler(svc userpkg.UserService) *UserHandler {
	return &UserHandler{service: svc}
}

type registerUserPayload struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required"`
	Role      string `json:"role"`
}

// RegisterUser creates a panel operator account. Admin only.
func (h *UserHandler) RegisterUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p registerUserPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		req := userpkg.RegisterUserRequest{
			FirstName: p.FirstName,
			LastName:  p.LastName,
			Email:     p.Email,
			Password:  p.Password,
			Role:      p.Role,
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		created, err := h.service.RegisterUser(ctx, req)
		if err != nil {
			if errors.Is(err, usersvc.ErrDuplicateEmail) {
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register user", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"user": created})
	}
}

func (h *UserHandler) ListUsers() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		list, err := h.service.ListUsers(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list users", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"users": list})
	}
}
