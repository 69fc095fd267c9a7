// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Child represents a child profile. Exactly one wallet is provisioned when
// the profile is first established.
type Child struct {
	ID        uuid.UUID
	ParentID  uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewChild creates a new Child entity.
func NewChild(parentID uuid.UUID, name string) *Child {
	now := time.Now().UTC()

	return &Child{
		ID:        uuid.New(),
		ParentID:  parentID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
