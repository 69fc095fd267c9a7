// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/aminenidae/braincoinz/internal/domain/entity"
)

// TransactionRepository defines read access to the append-only ledger
// history. Transactions are written only through WalletRepository.Commit
// and are never updated or truncated by the engine.
type TransactionRepository interface {
	// ListByWallet retrieves a wallet's history newest-first, paginated.
	ListByWallet(ctx context.Context, walletID uuid.UUID, page, limit int) (*entity.TransactionListResult, error)

	// SumValidAmounts returns the sum of Amount over all valid transactions
	// for a wallet. Used to audit the ledger sum invariant.
	SumValidAmounts(ctx context.Context, walletID uuid.UUID) (int, error)
}
