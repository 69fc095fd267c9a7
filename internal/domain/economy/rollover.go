package economy

import (
	"time"

	"github.com/aminenidae/braincoinz/internal/domain/entity"
)

// SameDay reports whether two instants fall on the same UTC calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

// RolloverIfNeeded resets the day-scoped counters when the wallet's stored
// day differs from today. Balance and lifetime counters are untouched: the
// carryover guarantee. Idempotent within a day; returns whether a rollover
// happened. Must run before any earn, spend, or gate evaluation that depends
// on day-scoped fields, which in practice means on every wallet load.
func RolloverIfNeeded(w *entity.Wallet, today time.Time) bool {
	if SameDay(w.LastResetDate, today) {
		return false
	}

	w.DailyEarned = 0
	w.DailySpent = 0
	w.DailyLearningMinutes = 0
	w.DailyRewardUsage = make(map[string]int)
	w.LastResetDate = today
	w.LastModified = today

	return true
}
