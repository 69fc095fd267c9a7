package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/aminenidae/braincoinz/internal/application/adapter"
	"github.com/aminenidae/braincoinz/internal/domain/economy"
	"github.com/aminenidae/braincoinz/internal/domain/entity"
)

// UpdateWalletSettingsInput carries the parent-tunable wallet settings.
type UpdateWalletSettingsInput struct {
	ParentID                    uuid.UUID
	ChildID                     uuid.UUID
	MinimumDailyLearningMinutes int
}

// UpdateWalletSettingsOutput returns the wallet after the change.
type UpdateWalletSettingsOutput struct {
	Wallet *entity.Wallet
}

// UpdateWalletSettingsUseCase lets a parent retune the learning-gate
// threshold. Settings changes hold the wallet lock like every other wallet
// mutation, so a concurrent purchase sees either the old or the new
// threshold, never a torn wallet.
type UpdateWalletSettingsUseCase struct {
	walletRepo adapter.WalletRepository
	childRepo  adapter.ChildRepository
	locker     *WalletLocker
	clock      adapter.Clock
}

// NewUpdateWalletSettingsUseCase creates a new UpdateWalletSettingsUseCase instance.
func NewUpdateWalletSettingsUseCase(
	walletRepo adapter.WalletRepository,
	childRepo adapter.ChildRepository,
	locker *WalletLocker,
	clock adapter.Clock,
) *UpdateWalletSettingsUseCase {
	return &UpdateWalletSettingsUseCase{
		walletRepo: walletRepo,
		childRepo:  childRepo,
		locker:     locker,
		clock:      clock,
	}
}

// Execute applies the settings change.
func (uc *UpdateWalletSettingsUseCase) Execute(ctx context.Context, input UpdateWalletSettingsInput) (*UpdateWalletSettingsOutput, error) {
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

	if err := economy.SetLearningRequirement(wallet, input.MinimumDailyLearningMinutes, now); err != nil {
		return nil, err
	}

	if err := uc.walletRepo.Commit(ctx, wallet, nil, nil); err != nil {
		return nil, fmt.Errorf("failed to commit settings change: %w", err)
	}

	return &UpdateWalletSettingsOutput{Wallet: wallet}, nil
}
