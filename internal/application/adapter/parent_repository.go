// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/aminenidae/braincoinz/internal/domain/entity"
)

// ParentRepository defines the interface for parent account persistence.
type ParentRepository interface {
	// Create creates a new parent account.
	Create(ctx context.Context, parent *entity.Parent) error

	// FindByID retrieves a parent by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Parent, error)

	// FindByEmail retrieves a parent by email.
	FindByEmail(ctx context.Context, email string) (*entity.Parent, error)

	// ExistsByEmail checks whether a parent is registered with the email.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
