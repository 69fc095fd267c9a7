// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/aminenidae/braincoinz/internal/domain/entity"
)

// ChildRepository defines the interface for child profile persistence.
type ChildRepository interface {
	// CreateWithWallet stores a new child profile together with its freshly
	// provisioned wallet in one database transaction. A child never exists
	// without a wallet.
	CreateWithWallet(ctx context.Context, child *entity.Child, wallet *entity.Wallet) error

	// FindByID retrieves a child profile by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Child, error)

	// ListByParent retrieves all child profiles for a parent.
	ListByParent(ctx context.Context, parentID uuid.UUID) ([]*entity.Child, error)
}
