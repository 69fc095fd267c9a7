package purchase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/aminenidae/braincoinz/internal/application/adapter"
	"github.com/aminenidae/braincoinz/internal/application/usecase/ledger"
	"github.com/aminenidae/braincoinz/internal/domain/economy"
	"github.com/aminenidae/braincoinz/internal/domain/entity"
	domainerror "github.com/aminenidae/braincoinz/internal/domain/error"
)

// PurchaseRewardTimeInput requests unlocking reward-app minutes.
type PurchaseRewardTimeInput struct {
	ParentID uuid.UUID
	ChildID  uuid.UUID
	AppID    string
	Minutes  int
}

// PurchaseRewardTimeOutput represents a committed purchase.
type PurchaseRewardTimeOutput struct {
	Wallet      *entity.Wallet
	Transaction *entity.Transaction
	// UnlockedMinutes echoes the purchased minutes for the blocking
	// collaborator to grant.
	UnlockedMinutes int
}

// PurchaseRewardTimeUseCase runs gate-then-spend as one unit inside the
// wallet lock: a gate pass guarantees the spend cannot fail on balance.
type PurchaseRewardTimeUseCase struct {
	walletRepo adapter.WalletRepository
	appRepo    adapter.AppConfigRepository
	childRepo  adapter.ChildRepository
	locker     *ledger.WalletLocker
	clock      adapter.Clock
}

// NewPurchaseRewardTimeUseCase creates a new PurchaseRewardTimeUseCase instance.
func NewPurchaseRewardTimeUseCase(
	walletRepo adapter.WalletRepository,
	appRepo adapter.AppConfigRepository,
	childRepo adapter.ChildRepository,
	locker *ledger.WalletLocker,
	clock adapter.Clock,
) *PurchaseRewardTimeUseCase {
	return &PurchaseRewardTimeUseCase{
		walletRepo: walletRepo,
		appRepo:    appRepo,
		childRepo:  childRepo,
		locker:     locker,
		clock:      clock,
	}
}

// Execute performs the purchase.
func (uc *PurchaseRewardTimeUseCase) Execute(ctx context.Context, input PurchaseRewardTimeInput) (*PurchaseRewardTimeOutput, error) {
	if input.Minutes <= 0 {
		return nil, domainerror.NewPurchaseError(
			domainerror.ErrCodeInvalidPurchaseMinutes,
			"minutes must be positive",
			domainerror.ErrInvalidAmount,
		)
	}

	if _, err := loadOwnedChild(ctx, uc.childRepo, input.ChildID, input.ParentID); err != nil {
		return nil, err
	}

	app, err := loadEnabledRewardApp(ctx, uc.appRepo, input.ParentID, input.AppID)
	if err != nil {
		return nil, err
	}

	unlock := uc.locker.Lock(input.ChildID)
	defer unlock()

	wallet, err := uc.walletRepo.FindByChildID(ctx, input.ChildID)
	if err != nil {
		return nil, domainerror.NewWalletError(
			domainerror.ErrCodeWalletNotFound,
			"wallet not found",
			domainerror.ErrWalletNotFound,
		)
	}

	now := uc.clock.Now()
	economy.RolloverIfNeeded(wallet, now)

	if allowed, denial := economy.CanPurchase(wallet, app, input.Minutes); !allowed {
		return nil, denialError(denial)
	}

	tx, err := economy.Spend(wallet, app, input.Minutes, now)
	if err != nil {
		return nil, err
	}

	if err := uc.walletRepo.Commit(ctx, wallet, []*entity.Transaction{tx}, nil); err != nil {
		return nil, fmt.Errorf("failed to commit purchase: %w", err)
	}

	return &PurchaseRewardTimeOutput{
		Wallet:          wallet,
		Transaction:     tx,
		UnlockedMinutes: input.Minutes,
	}, nil
}
