// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/aminenidae/braincoinz/internal/domain/entity"
)

// WalletRepository defines the interface for wallet persistence operations.
// The engine commits ledger operations in memory first; Commit then stores
// the resulting wallet state together with the transactions and goal updates
// produced by the same operation, atomically, so a crash can never leave a
// transaction recorded without the balance it explains (or vice versa).
type WalletRepository interface {
	// Create stores a freshly provisioned wallet.
	Create(ctx context.Context, wallet *entity.Wallet) error

	// FindByChildID retrieves the wallet for a child profile.
	FindByChildID(ctx context.Context, childID uuid.UUID) (*entity.Wallet, error)

	// Commit durably stores the outcome of one ledger operation: the updated
	// wallet, zero or more new transactions, and zero or more goal updates,
	// in a single database transaction. Commit is idempotent with respect to
	// wallet state: re-persisting an already-committed wallet writes the same
	// values again.
	Commit(ctx context.Context, wallet *entity.Wallet, transactions []*entity.Transaction, goals []*entity.Goal) error
}
