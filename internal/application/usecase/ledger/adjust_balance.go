package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/aminenidae/braincoinz/internal/application/adapter"
	"github.com/aminenidae/braincoinz/internal/domain/economy"
	"github.com/aminenidae/braincoinz/internal/domain/entity"
)

// AdjustBalanceInput represents a parent-initiated bonus, penalty, or
// correction.
type AdjustBalanceInput struct {
	ParentID uuid.UUID
	ChildID  uuid.UUID
	Delta    int
	Type     entity.TransactionType
	Reason   string
}

// AdjustBalanceOutput represents the outcome of the adjustment.
type AdjustBalanceOutput struct {
	Wallet      *entity.Wallet
	Transaction *entity.Transaction
}

// AdjustBalanceUseCase applies a signed balance delta outside the earn/spend
// flow. Penalties may drive the balance negative; nothing here is clamped.
type AdjustBalanceUseCase struct {
	walletRepo adapter.WalletRepository
	childRepo  adapter.ChildRepository
	locker     *WalletLocker
	clock      adapter.Clock
}

// NewAdjustBalanceUseCase creates a new AdjustBalanceUseCase instance.
func NewAdjustBalanceUseCase(
	walletRepo adapter.WalletRepository,
	childRepo adapter.ChildRepository,
	locker *WalletLocker,
	clock adapter.Clock,
) *AdjustBalanceUseCase {
	return &AdjustBalanceUseCase{
		walletRepo: walletRepo,
		childRepo:  childRepo,
		locker:     locker,
		clock:      clock,
	}
}

// Execute performs the adjustment.
func (uc *AdjustBalanceUseCase) Execute(ctx context.Context, input AdjustBalanceInput) (*AdjustBalanceOutput, error) {
	if _, err := loadOwnedChild(ctx, uc.childRepo, input.ChildID, input.ParentID); err != nil {
		return nil, err
	}

	unlock := uc.locker.Lock(input.ChildID)
	defer unlock()

	wallet, err := loadWallet(ctx, uc.walletRepo, input.ChildID)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	economy.RolloverIfNeeded(wallet, now)

	tx, err := economy.AdjustBalance(wallet, input.Delta, input.Type, input.Reason, now)
	if err != nil {
		return nil, err
	}

	if err := uc.walletRepo.Commit(ctx, wallet, []*entity.Transaction{tx}, nil); err != nil {
		return nil, fmt.Errorf("failed to commit adjustment: %w", err)
	}

	return &AdjustBalanceOutput{
		Wallet:      wallet,
		Transaction: tx,
	}, nil
}
