// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultMinimumDailyLearningMinutes is the learning gate threshold applied
// to newly provisioned wallets.
const DefaultMinimumDailyLearningMinutes = 15

// Wallet is the single source of truth for a child's Coinz economy. One
// wallet exists per child; all mutations go through the ledger operations.
type Wallet struct {
	ID                          uuid.UUID
	ChildID                     uuid.UUID
	Balance                     int
	TotalEarned                 int
	TotalSpent                  int
	DailyEarned                 int
	DailySpent                  int
	DailyLearningMinutes        int
	TotalLearningMinutes        int
	DailyRewardUsage            map[string]int // appID -> minutes purchased today
	MinimumDailyLearningMinutes int
	LastResetDate               time.Time
	LastModified                time.Time
	CreatedAt                   time.Time
}

// NewWallet creates a wallet for a newly established child profile.
// Balance starts at zero and daily counters are valid for the given day.
func NewWallet(childID uuid.UUID, today time.Time) *Wallet {
	now := time.Now().UTC()

	return &Wallet{
		ID:                          uuid.New(),
		ChildID:                     childID,
		DailyRewardUsage:            make(map[string]int),
		MinimumDailyLearningMinutes: DefaultMinimumDailyLearningMinutes,
		LastResetDate:               today,
		LastModified:                now,
		CreatedAt:                   now,
	}
}

// CarryoverBalance is the portion of the current balance attributable to
// days before today. Read-only projection for display, not ledger state.
func (w *Wallet) CarryoverBalance() int {
	return w.Balance - w.DailyEarned + w.DailySpent
}

// HasCarryover reports whether any balance was carried over from prior days.
func (w *Wallet) HasCarryover() bool {
	return w.CarryoverBalance() > 0
}

// RewardUsageToday returns the minutes already purchased today for the app.
func (w *Wallet) RewardUsageToday(appID string) int {
	if w.DailyRewardUsage == nil {
		return 0
	}
	return w.DailyRewardUsage[appID]
}
