package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/aminenidae/braincoinz/internal/application/adapter"
	"github.com/aminenidae/braincoinz/internal/domain/economy"
	"github.com/aminenidae/braincoinz/internal/domain/entity"
)

// GetWalletInput identifies whose wallet to read.
type GetWalletInput struct {
	ParentID uuid.UUID
	ChildID  uuid.UUID
}

// AppAffordability is the affordable-minutes projection for one reward app.
type AppAffordability struct {
	App               *entity.AppConfig
	AffordableMinutes int
	UsedToday         int
}

// GetWalletOutput is the presentation collaborator's read surface: the
// wallet after rollover plus its derived projections.
type GetWalletOutput struct {
	Wallet           *entity.Wallet
	CarryoverBalance int
	HasCarryover     bool
	RewardApps       []AppAffordability
	RolledOver       bool
}

// GetWalletUseCase loads a wallet, applies the daily rollover if the stored
// day is stale, and computes the display projections. The rollover is
// persisted immediately so day-scoped state survives a restart.
type GetWalletUseCase struct {
	walletRepo adapter.WalletRepository
	appRepo    adapter.AppConfigRepository
	childRepo  adapter.ChildRepository
	locker     *WalletLocker
	clock      adapter.Clock
}

// NewGetWalletUseCase creates a new GetWalletUseCase instance.
func NewGetWalletUseCase(
	walletRepo adapter.WalletRepository,
	appRepo adapter.AppConfigRepository,
	childRepo adapter.ChildRepository,
	locker *WalletLocker,
	clock adapter.Clock,
) *GetWalletUseCase {
	return &GetWalletUseCase{
		walletRepo: walletRepo,
		appRepo:    appRepo,
		childRepo:  childRepo,
		locker:     locker,
		clock:      clock,
	}
}

// Execute loads the wallet snapshot.
func (uc *GetWalletUseCase) Execute(ctx context.Context, input GetWalletInput) (*GetWalletOutput, error) {
	if _, err := loadOwnedChild(ctx, uc.childRepo, input.ChildID, input.ParentID); err != nil {
		return nil, err
	}

	unlock := uc.locker.Lock(input.ChildID)
	defer unlock()

	wallet, err := loadWallet(ctx, uc.walletRepo, input.ChildID)
	if err != nil {
		return nil, err
	}

	rolledOver := economy.RolloverIfNeeded(wallet, uc.clock.Now())
	if rolledOver {
		if err := uc.walletRepo.Commit(ctx, wallet, nil, nil); err != nil {
			return nil, fmt.Errorf("failed to persist rollover: %w", err)
		}
	}

	apps, err := uc.appRepo.ListByParent(ctx, input.ParentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list apps: %w", err)
	}

	var rewardApps []AppAffordability
	for _, app := range apps {
		if app.Category != entity.AppCategoryReward || !app.IsEnabled {
			continue
		}
		rewardApps = append(rewardApps, AppAffordability{
			App:               app,
			AffordableMinutes: economy.AffordableMinutes(wallet, app),
			UsedToday:         wallet.RewardUsageToday(app.AppID),
		})
	}

	return &GetWalletOutput{
		Wallet:           wallet,
		CarryoverBalance: wallet.CarryoverBalance(),
		HasCarryover:     wallet.HasCarryover(),
		RewardApps:       rewardApps,
		RolledOver:       rolledOver,
	}, nil
}
