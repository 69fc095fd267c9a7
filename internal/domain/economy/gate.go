package economy

import (
	"fmt"
	"math"
	"time"

	"github.com/aminenidae/braincoinz/internal/domain/entity"
	domainerror "github.com/aminenidae/braincoinz/internal/domain/error"
)

// DenialReason identifies which gate rejected a purchase request.
type DenialReason string

const (
	DenialLearningRequirementNotMet DenialReason = "learning_requirement_not_met"
	DenialInsufficientBalance       DenialReason = "insufficient_balance"
	// DenialDailyLimitReached means no minutes remain today for the app.
	DenialDailyLimitReached DenialReason = "daily_limit_reached"
	// DenialDailyLimitPartial means some minutes remain today, but fewer
	// than requested. Both limit denials reject; the split is for UX.
	DenialDailyLimitPartial DenialReason = "daily_limit_partial"
)

// Denial describes why a purchase was rejected by the gate.
type Denial struct {
	Reason DenialReason
	// ShortfallCoinz is set for insufficient-balance denials.
	ShortfallCoinz int
	// RemainingMinutes is set for daily-limit denials.
	RemainingMinutes int
	Message          string
}

// CanPurchase evaluates the three-tier affordability check in fixed order:
// learning gate, then balance gate, then daily time gate. The first failing
// tier wins. A nil denial with allowed=true means a subsequent Spend for the
// same (app, minutes) cannot fail with insufficient balance.
func CanPurchase(w *entity.Wallet, app *entity.AppConfig, minutes int) (bool, *Denial) {
	if w.DailyLearningMinutes < w.MinimumDailyLearningMinutes {
		return false, &Denial{
			Reason: DenialLearningRequirementNotMet,
			Message: fmt.Sprintf("%d of %d learning minutes completed today",
				w.DailyLearningMinutes, w.MinimumDailyLearningMinutes),
		}
	}

	cost := app.CostPerMinute() * minutes
	if w.Balance < cost {
		shortfall := cost - w.Balance
		return false, &Denial{
			Reason:         DenialInsufficientBalance,
			ShortfallCoinz: shortfall,
			Message:        fmt.Sprintf("need %d coinz, have %d (short %d)", cost, w.Balance, shortfall),
		}
	}

	if app.DailyTimeLimit > 0 {
		remaining := app.DailyTimeLimit - w.RewardUsageToday(app.AppID)
		if remaining < 0 {
			remaining = 0
		}
		if minutes > remaining {
			reason := DenialDailyLimitPartial
			if remaining == 0 {
				reason = DenialDailyLimitReached
			}
			return false, &Denial{
				Reason:           reason,
				RemainingMinutes: remaining,
				Message:          fmt.Sprintf("%d of %d daily minutes remaining", remaining, app.DailyTimeLimit),
			}
		}
	}

	return true, nil
}

// SetLearningRequirement changes the learning-gate threshold. The new value
// takes effect immediately: today's already-completed minutes count against
// it, so lowering the threshold can open the gate mid-day and raising it can
// close the gate again.
func SetLearningRequirement(w *entity.Wallet, minutes int, now time.Time) error {
	if minutes < 0 {
		return domainerror.NewWalletError(
			domainerror.ErrCodeInvalidAmount,
			"minimum daily learning minutes cannot be negative",
			domainerror.ErrInvalidAmount,
		)
	}

	w.MinimumDailyLearningMinutes = minutes
	w.LastModified = now
	return nil
}

// AffordableMinutes returns the largest number of minutes that would
// currently pass the gate: zero while the learning gate fails, otherwise
// the lesser of what the balance buys and what the daily limit leaves.
func AffordableMinutes(w *entity.Wallet, app *entity.AppConfig) int {
	if w.DailyLearningMinutes < w.MinimumDailyLearningMinutes {
		return 0
	}

	rate := app.CostPerMinute()
	if rate == 0 {
		return 0
	}

	byBalance := 0
	if w.Balance > 0 {
		byBalance = w.Balance / rate
	}

	byLimit := math.MaxInt
	if app.DailyTimeLimit > 0 {
		byLimit = app.DailyTimeLimit - w.RewardUsageToday(app.AppID)
		if byLimit < 0 {
			byLimit = 0
		}
	}

	if byBalance < byLimit {
		return byBalance
	}
	return byLimit
}
