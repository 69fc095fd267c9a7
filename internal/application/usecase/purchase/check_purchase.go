package purchase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/aminenidae/braincoinz/internal/application/adapter"
	"github.com/aminenidae/braincoinz/internal/application/usecase/ledger"
	"github.com/aminenidae/braincoinz/internal/domain/economy"
	domainerror "github.com/aminenidae/braincoinz/internal/domain/error"
)

// CheckPurchaseInput asks whether minutes of a reward app are affordable now.
type CheckPurchaseInput struct {
	ParentID uuid.UUID
	ChildID  uuid.UUID
	AppID    string
	Minutes  int
}

// CheckPurchaseOutput reports the gate decision without committing anything.
type CheckPurchaseOutput struct {
	Allowed bool
	// Denial is nil when Allowed. The reason distinguishes a fully consumed
	// daily limit from a partial remainder so the client can phrase the two
	// differently; both are rejections.
	Denial *economy.Denial
	// AffordableMinutes is the largest request that would pass right now.
	AffordableMinutes int
	// CostCoinz is what the requested minutes would cost.
	CostCoinz int
}

// CheckPurchaseUseCase evaluates the three-tier affordability gate against a
// rolled-over wallet snapshot. Read-only: the spend itself happens in
// PurchaseRewardTimeUseCase, which re-runs the gate inside the wallet lock.
type CheckPurchaseUseCase struct {
	walletRepo adapter.WalletRepository
	appRepo    adapter.AppConfigRepository
	childRepo  adapter.ChildRepository
	locker     *ledger.WalletLocker
	clock      adapter.Clock
}

// NewCheckPurchaseUseCase creates a new CheckPurchaseUseCase instance.
func NewCheckPurchaseUseCase(
	walletRepo adapter.WalletRepository,
	appRepo adapter.AppConfigRepository,
	childRepo adapter.ChildRepository,
	locker *ledger.WalletLocker,
	clock adapter.Clock,
) *CheckPurchaseUseCase {
	return &CheckPurchaseUseCase{
		walletRepo: walletRepo,
		appRepo:    appRepo,
		childRepo:  childRepo,
		locker:     locker,
		clock:      clock,
	}
}

// Execute evaluates the gate.
func (uc *CheckPurchaseUseCase) Execute(ctx context.Context, input CheckPurchaseInput) (*CheckPurchaseOutput, error) {
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
	if economy.RolloverIfNeeded(wallet, now) {
		if err := uc.walletRepo.Commit(ctx, wallet, nil, nil); err != nil {
			return nil, fmt.Errorf("failed to persist rollover: %w", err)
		}
	}

	allowed, denial := economy.CanPurchase(wallet, app, input.Minutes)

	return &CheckPurchaseOutput{
		Allowed:           allowed,
		Denial:            denial,
		AffordableMinutes: economy.AffordableMinutes(wallet, app),
		CostCoinz:         app.CostPerMinute() * input.Minutes,
	}, nil
}
