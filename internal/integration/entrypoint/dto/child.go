// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/aminenidae/braincoinz/internal/domain/entity"
)

// CreateChildRequest represents the request body for creating a child profile.
type CreateChildRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// ChildResponse represents a child profile in API responses.
type ChildResponse struct {
	ID        string    `json:"id"`
	ParentID  string    `json:"parent_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateChildResponse represents the response for child creation: the
// profile together with its freshly provisioned wallet.
type CreateChildResponse struct {
	Child  ChildResponse  `json:"child"`
	Wallet WalletResponse `json:"wallet"`
}

// ChildListResponse represents the response for listing child profiles.
type ChildListResponse struct {
	Children []ChildResponse `json:"children"`
}

// ToChildResponse converts a domain Child entity to a ChildResponse DTO.
func ToChildResponse(child *entity.Child) ChildResponse {
	return ChildResponse{
		ID:        child.ID.String(),
		ParentID:  child.ParentID.String(),
		Name:      child.Name,
		CreatedAt: child.CreatedAt,
	}
}
