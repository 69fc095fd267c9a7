// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/aminenidae/braincoinz/internal/domain/entity"
)

// RegisterRequest represents the request body for parent registration.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required,min=1,max=100"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest represents the request body for parent login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse represents the response for authentication endpoints.
type AuthResponse struct {
	AccessToken string         `json:"access_token"`
	ExpiresAt   time.Time      `json:"expires_at"`
	Parent      ParentResponse `json:"parent"`
}

// ParentResponse represents the parent account data in API responses.
type ParentResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// ToParentResponse converts a domain Parent entity to a ParentResponse DTO.
func ToParentResponse(parent *entity.Parent) ParentResponse {
	return ParentResponse{
		ID:        parent.ID.String(),
		Email:     parent.Email,
		Name:      parent.Name,
		CreatedAt: parent.CreatedAt,
	}
}
