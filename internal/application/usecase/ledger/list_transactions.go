package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/aminenidae/braincoinz/internal/application/adapter"
	"github.com/aminenidae/braincoinz/internal/domain/entity"
)

const (
	defaultTransactionPageLimit = 50
	maxTransactionPageLimit     = 200
)

// ListTransactionsInput represents a paginated history request.
type ListTransactionsInput struct {
	ParentID uuid.UUID
	ChildID  uuid.UUID
	Page     int
	Limit    int
}

// ListTransactionsOutput represents one page of the wallet's history.
type ListTransactionsOutput struct {
	Result *entity.TransactionListResult
}

// ListTransactionsUseCase reads the append-only history newest-first. Display
// truncation is the caller's concern; the ledger itself keeps everything.
type ListTransactionsUseCase struct {
	walletRepo      adapter.WalletRepository
	transactionRepo adapter.TransactionRepository
	childRepo       adapter.ChildRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(
	walletRepo adapter.WalletRepository,
	transactionRepo adapter.TransactionRepository,
	childRepo adapter.ChildRepository,
) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		walletRepo:      walletRepo,
		transactionRepo: transactionRepo,
		childRepo:       childRepo,
	}
}

// Execute lists one page of transactions.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	if _, err := loadOwnedChild(ctx, uc.childRepo, input.ChildID, input.ParentID); err != nil {
		return nil, err
	}

	wallet, err := loadWallet(ctx, uc.walletRepo, input.ChildID)
	if err != nil {
		return nil, err
	}

	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 {
		limit = defaultTransactionPageLimit
	}
	if limit > maxTransactionPageLimit {
		limit = maxTransactionPageLimit
	}

	result, err := uc.transactionRepo.ListByWallet(ctx, wallet.ID, page, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return &ListTransactionsOutput{Result: result}, nil
}
