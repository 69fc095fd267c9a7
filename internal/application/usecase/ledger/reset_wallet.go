package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/aminenidae/braincoinz/internal/application/adapter"
	"github.com/aminenidae/braincoinz/internal/domain/economy"
	"github.com/aminenidae/braincoinz/internal/domain/entity"
)

// ResetWalletInput represents an explicit parent-initiated balance reset.
type ResetWalletInput struct {
	ParentID uuid.UUID
	ChildID  uuid.UUID
	// TargetBalance is clamped at zero; this is the one place the economy
	// clamps anything.
	TargetBalance int
	Reason        string
}

// ResetWalletOutput represents the outcome of the reset.
type ResetWalletOutput struct {
	Wallet      *entity.Wallet
	Transaction *entity.Transaction
}

// ResetWalletUseCase sets the balance to a parent-chosen value, logged as an
// adjustment transaction of the difference.
type ResetWalletUseCase struct {
	walletRepo adapter.WalletRepository
	childRepo  adapter.ChildRepository
	locker     *WalletLocker
	clock      adapter.Clock
}

// NewResetWalletUseCase creates a new ResetWalletUseCase instance.
func NewResetWalletUseCase(
	walletRepo adapter.WalletRepository,
	childRepo adapter.ChildRepository,
	locker *WalletLocker,
	clock adapter.Clock,
) *ResetWalletUseCase {
	return &ResetWalletUseCase{
		walletRepo: walletRepo,
		childRepo:  childRepo,
		locker:     locker,
		clock:      clock,
	}
}

// Execute performs the reset.
func (uc *ResetWalletUseCase) Execute(ctx context.Context, input ResetWalletInput) (*ResetWalletOutput, error) {
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

	tx := economy.ResetWallet(wallet, input.TargetBalance, input.Reason, now)

	if err := uc.walletRepo.Commit(ctx, wallet, []*entity.Transaction{tx}, nil); err != nil {
		return nil, fmt.Errorf("failed to commit reset: %w", err)
	}

	return &ResetWalletOutput{
		Wallet:      wallet,
		Transaction: tx,
	}, nil
}
