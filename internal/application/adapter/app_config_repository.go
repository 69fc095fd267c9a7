// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/aminenidae/braincoinz/internal/domain/entity"
)

// AppConfigRepository defines the interface for the per-application
// configuration registry.
type AppConfigRepository interface {
	// Create stores a new app configuration.
	Create(ctx context.Context, config *entity.AppConfig) error

	// FindByID retrieves an app configuration by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.AppConfig, error)

	// FindByParentAndAppID retrieves a parent's configuration for an app
	// bundle identifier.
	FindByParentAndAppID(ctx context.Context, parentID uuid.UUID, appID string) (*entity.AppConfig, error)

	// ListByParent retrieves all app configurations for a parent.
	ListByParent(ctx context.Context, parentID uuid.UUID) ([]*entity.AppConfig, error)

	// ExistsByParentAndAppID checks whether a configuration exists for the
	// parent and app bundle identifier.
	ExistsByParentAndAppID(ctx context.Context, parentID uuid.UUID, appID string) (bool, error)

	// CountByParent returns how many configurations a parent has.
	CountByParent(ctx context.Context, parentID uuid.UUID) (int64, error)

	// Update updates an existing app configuration.
	Update(ctx context.Context, config *entity.AppConfig) error
}
