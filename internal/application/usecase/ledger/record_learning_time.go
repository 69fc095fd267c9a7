package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/aminenidae/braincoinz/internal/application/adapter"
	"github.com/aminenidae/braincoinz/internal/domain/economy"
	"github.com/aminenidae/braincoinz/internal/domain/entity"
	domainerror "github.com/aminenidae/braincoinz/internal/domain/error"
)

// RecordLearningTimeInput represents one usage report from the time-tracking
// collaborator: minutes already measured in the given app.
type RecordLearningTimeInput struct {
	ParentID uuid.UUID
	ChildID  uuid.UUID
	AppID    string
	Minutes  int
}

// RecordLearningTimeOutput represents the outcome of the earn.
type RecordLearningTimeOutput struct {
	Wallet      *entity.Wallet
	Transaction *entity.Transaction
	// CompletedGoals lists goals whose completion fired on this earn; the
	// bonus for each has already been issued and appears in BonusTransactions.
	CompletedGoals    []*entity.Goal
	BonusTransactions []*entity.Transaction
}

// RecordLearningTimeUseCase converts measured app minutes into an earn,
// feeds goal progress, and issues goal bonuses, all inside one wallet
// critical section so the earn and its goal effects commit as a unit.
type RecordLearningTimeUseCase struct {
	walletRepo adapter.WalletRepository
	appRepo    adapter.AppConfigRepository
	goalRepo   adapter.GoalRepository
	childRepo  adapter.ChildRepository
	locker     *WalletLocker
	clock      adapter.Clock
}

// NewRecordLearningTimeUseCase creates a new RecordLearningTimeUseCase instance.
func NewRecordLearningTimeUseCase(
	walletRepo adapter.WalletRepository,
	appRepo adapter.AppConfigRepository,
	goalRepo adapter.GoalRepository,
	childRepo adapter.ChildRepository,
	locker *WalletLocker,
	clock adapter.Clock,
) *RecordLearningTimeUseCase {
	return &RecordLearningTimeUseCase{
		walletRepo: walletRepo,
		appRepo:    appRepo,
		goalRepo:   goalRepo,
		childRepo:  childRepo,
		locker:     locker,
		clock:      clock,
	}
}

// Execute performs the earn.
func (uc *RecordLearningTimeUseCase) Execute(ctx context.Context, input RecordLearningTimeInput) (*RecordLearningTimeOutput, error) {
	if input.Minutes <= 0 {
		return nil, domainerror.NewWalletError(
			domainerror.ErrCodeInvalidAmount,
			"minutes must be positive",
			domainerror.ErrInvalidAmount,
		)
	}

	if _, err := loadOwnedChild(ctx, uc.childRepo, input.ChildID, input.ParentID); err != nil {
		return nil, err
	}

	app, err := loadEnabledApp(ctx, uc.appRepo, input.ParentID, input.AppID)
	if err != nil {
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

	// Only learning apps earn; other categories record zero-amount usage so
	// the history still documents the time.
	amount := 0
	if app.Category == entity.AppCategoryLearning {
		amount = app.CoinzRate * input.Minutes
	}

	tx, err := economy.Earn(wallet, app, input.Minutes, amount, now)
	if err != nil {
		return nil, err
	}

	output := &RecordLearningTimeOutput{
		Wallet:      wallet,
		Transaction: tx,
	}
	transactions := []*entity.Transaction{tx}
	var changedGoals []*entity.Goal

	if amount > 0 {
		goals, err := uc.goalRepo.FindActiveByChildID(ctx, input.ChildID)
		if err != nil {
			return nil, fmt.Errorf("failed to load active goals: %w", err)
		}

		for _, g := range goals {
			before := g.Progress
			completedNow := economy.UpdateProgress(g, app.AppID, amount, now)
			if g.Progress != before {
				changedGoals = append(changedGoals, g)
			}
			if !completedNow {
				continue
			}

			output.CompletedGoals = append(output.CompletedGoals, g)
			if g.BonusCoinz > 0 {
				bonusTx, err := economy.AdjustBalance(wallet, g.BonusCoinz, entity.TransactionTypeBonus, "goal completed: "+g.Title, now)
				if err != nil {
					return nil, err
				}
				transactions = append(transactions, bonusTx)
				output.BonusTransactions = append(output.BonusTransactions, bonusTx)
			}
		}
	}

	if err := uc.walletRepo.Commit(ctx, wallet, transactions, changedGoals); err != nil {
		return nil, fmt.Errorf("failed to commit earn: %w", err)
	}

	return output, nil
}
