// Package economy implements the pure rules of the Coinz economy: ledger
// mutations, the three-tier purchase gate, the daily rollover, and goal
// progress. Functions here perform no I/O and read no clocks; callers pass
// the current time in and are responsible for serializing access to a wallet
// and for persisting state after a successful in-memory commit.
package economy

import (
	"fmt"
	"time"

	"github.com/aminenidae/braincoinz/internal/domain/entity"
	domainerror "github.com/aminenidae/braincoinz/internal/domain/error"
)

// Earn credits the wallet for minutes spent in an app. The amount has been
// computed by the caller (rate * minutes). Learning apps additionally accrue
// daily and lifetime learning minutes. A zero-amount earn is still recorded
// so the transaction history replays to the exact balance.
//
// Validation happens before any field is written; on error the wallet is
// unchanged.
func Earn(w *entity.Wallet, app *entity.AppConfig, minutes, amount int, now time.Time) (*entity.Transaction, error) {
	if amount < 0 {
		return nil, domainerror.NewWalletError(
			domainerror.ErrCodeInvalidAmount,
			"earn amount cannot be negative",
			domainerror.ErrInvalidAmount,
		)
	}
	if minutes < 0 {
		return nil, domainerror.NewWalletError(
			domainerror.ErrCodeInvalidAmount,
			"earn minutes cannot be negative",
			domainerror.ErrInvalidAmount,
		)
	}

	w.Balance += amount
	w.TotalEarned += amount
	w.DailyEarned += amount
	if app.Category == entity.AppCategoryLearning {
		w.DailyLearningMinutes += minutes
		w.TotalLearningMinutes += minutes
	}
	w.LastModified = now

	return entity.NewTransaction(w.ID, app.AppID, app.DisplayName, entity.TransactionTypeEarned, amount, minutes, "", now), nil
}

// Spend debits the wallet for purchased reward minutes. The only balance
// check here is cost vs. balance; the three-tier purchase gate must have
// been evaluated by the caller beforehand.
func Spend(w *entity.Wallet, app *entity.AppConfig, minutes int, now time.Time) (*entity.Transaction, error) {
	if minutes <= 0 {
		return nil, domainerror.NewWalletError(
			domainerror.ErrCodeInvalidAmount,
			"spend minutes must be positive",
			domainerror.ErrInvalidAmount,
		)
	}

	cost := app.CostPerMinute() * minutes
	if cost > w.Balance {
		return nil, domainerror.NewWalletError(
			domainerror.ErrCodeInsufficientBalance,
			fmt.Sprintf("need %d coinz, have %d (short %d)", cost, w.Balance, cost-w.Balance),
			domainerror.ErrInsufficientBalance,
		)
	}

	w.Balance -= cost
	w.TotalSpent += cost
	w.DailySpent += cost
	if w.DailyRewardUsage == nil {
		w.DailyRewardUsage = make(map[string]int)
	}
	w.DailyRewardUsage[app.AppID] += minutes
	w.LastModified = now

	return entity.NewTransaction(w.ID, app.AppID, app.DisplayName, entity.TransactionTypeSpent, -cost, minutes, "", now), nil
}

// AdjustBalance applies a signed delta outside the earn/spend flow. Bonuses
// must credit and penalties must debit; penalties may drive the balance
// negative to represent a debt the child earns off. Lifetime and daily
// counters follow the type: bonus counts as earned, penalty as spent, and
// adjustment touches only the balance (it is a correction, not an economic
// event).
func AdjustBalance(w *entity.Wallet, delta int, txType entity.TransactionType, reason string, now time.Time) (*entity.Transaction, error) {
	switch txType {
	case entity.TransactionTypeBonus:
		if delta <= 0 {
			return nil, domainerror.NewWalletError(
				domainerror.ErrCodeInvalidAdjustmentDelta,
				"bonus delta must be positive",
				domainerror.ErrInvalidAdjustmentDelta,
			)
		}
		w.TotalEarned += delta
		w.DailyEarned += delta
	case entity.TransactionTypePenalty:
		if delta >= 0 {
			return nil, domainerror.NewWalletError(
				domainerror.ErrCodeInvalidAdjustmentDelta,
				"penalty delta must be negative",
				domainerror.ErrInvalidAdjustmentDelta,
			)
		}
		w.TotalSpent += -delta
		w.DailySpent += -delta
	case entity.TransactionTypeAdjustment:
		// balance only
	default:
		return nil, domainerror.NewWalletError(
			domainerror.ErrCodeInvalidAdjustmentType,
			"adjustment type must be bonus, penalty, or adjustment",
			domainerror.ErrInvalidAdjustmentType,
		)
	}

	w.Balance += delta
	w.LastModified = now

	return entity.NewTransaction(w.ID, "", "", txType, delta, 0, reason, now), nil
}

// ResetWallet sets the balance to a parent-chosen target, recorded as an
// adjustment transaction of the difference. The reset-to target is clamped
// at zero; bonuses, penalties, and adjustments are never clamped.
func ResetWallet(w *entity.Wallet, target int, reason string, now time.Time) *entity.Transaction {
	if target < 0 {
		target = 0
	}

	delta := target - w.Balance
	w.Balance = target
	w.LastModified = now

	return entity.NewTransaction(w.ID, "", "", entity.TransactionTypeAdjustment, delta, 0, reason, now)
}
