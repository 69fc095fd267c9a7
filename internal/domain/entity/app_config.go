// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppCategory classifies how time in an application interacts with the economy.
type AppCategory string

const (
	AppCategoryLearning AppCategory = "learning"
	AppCategoryReward   AppCategory = "reward"
	AppCategoryNeutral  AppCategory = "neutral"
)

// AppConfig holds the per-application economy configuration. Wallets never
// reference it directly; ledger operations look it up by AppID.
type AppConfig struct {
	ID          uuid.UUID
	ParentID    uuid.UUID
	AppID       string // platform bundle identifier
	DisplayName string
	Category    AppCategory
	CoinzRate   int // signed Coinz per minute: positive earns, negative costs
	// DailyTimeLimit is the ceiling in minutes/day a reward app may be
	// purchased; 0 means unlimited.
	DailyTimeLimit int
	IsEnabled      bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewAppConfig creates a new AppConfig entity.
func NewAppConfig(parentID uuid.UUID, appID, displayName string, category AppCategory, coinzRate, dailyTimeLimit int) *AppConfig {
	now := time.Now().UTC()

	return &AppConfig{
		ID:             uuid.New(),
		ParentID:       parentID,
		AppID:          appID,
		DisplayName:    displayName,
		Category:       category,
		CoinzRate:      coinzRate,
		DailyTimeLimit: dailyTimeLimit,
		IsEnabled:      true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// RateMatchesCategory reports whether the rate sign encodes the category
// correctly: learning apps earn (rate > 0), reward apps cost (rate < 0),
// neutral apps neither (rate == 0).
func (a *AppConfig) RateMatchesCategory() bool {
	switch a.Category {
	case AppCategoryLearning:
		return a.CoinzRate > 0
	case AppCategoryReward:
		return a.CoinzRate < 0
	case AppCategoryNeutral:
		return a.CoinzRate == 0
	default:
		return false
	}
}

// CostPerMinute returns the magnitude of the per-minute rate.
func (a *AppConfig) CostPerMinute() int {
	if a.CoinzRate < 0 {
		return -a.CoinzRate
	}
	return a.CoinzRate
}
