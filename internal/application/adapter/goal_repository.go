// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/aminenidae/braincoinz/internal/domain/entity"
)

// GoalRepository defines the interface for goal persistence operations.
// Progress updates driven by earn events are persisted through
// WalletRepository.Commit so they land atomically with the earn itself.
type GoalRepository interface {
	// Create creates a new goal.
	Create(ctx context.Context, goal *entity.Goal) error

	// FindByID retrieves a goal by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error)

	// FindByChildID retrieves all goals for a child.
	FindByChildID(ctx context.Context, childID uuid.UUID) ([]*entity.Goal, error)

	// FindActiveByChildID retrieves the child's active goals.
	FindActiveByChildID(ctx context.Context, childID uuid.UUID) ([]*entity.Goal, error)

	// Update updates an existing goal.
	Update(ctx context.Context, goal *entity.Goal) error

	// Delete removes a goal.
	Delete(ctx context.Context, id uuid.UUID) error
}
