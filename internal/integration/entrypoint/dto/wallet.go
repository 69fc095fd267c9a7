// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/aminenidae/braincoinz/internal/application/usecase/ledger"
	"github.com/aminenidae/braincoinz/internal/domain/entity"
)

// WalletResponse represents a wallet snapshot in API responses.
type WalletResponse struct {
	ID                          string         `json:"id"`
	ChildID                     string         `json:"child_id"`
	Balance                     int            `json:"balance"`
	TotalEarned                 int            `json:"total_earned"`
	TotalSpent                  int            `json:"total_spent"`
	DailyEarned                 int            `json:"daily_earned"`
	DailySpent                  int            `json:"daily_spent"`
	DailyLearningMinutes        int            `json:"daily_learning_minutes"`
	TotalLearningMinutes        int            `json:"total_learning_minutes"`
	DailyRewardUsage            map[string]int `json:"daily_reward_usage"`
	MinimumDailyLearningMinutes int            `json:"minimum_daily_learning_minutes"`
	LastResetDate               time.Time      `json:"last_reset_date"`
	LastModified                time.Time      `json:"last_modified"`
}

// AppAffordabilityResponse represents the affordable-minutes projection for
// one reward app.
type AppAffordabilityResponse struct {
	App               AppConfigResponse `json:"app"`
	AffordableMinutes int               `json:"affordable_minutes"`
	UsedToday         int               `json:"used_today"`
}

// WalletSnapshotResponse represents the full wallet read surface: the
// wallet plus its derived display projections.
type WalletSnapshotResponse struct {
	Wallet           WalletResponse             `json:"wallet"`
	CarryoverBalance int                        `json:"carryover_balance"`
	HasCarryover     bool                       `json:"has_carryover"`
	RewardApps       []AppAffordabilityResponse `json:"reward_apps"`
}

// AdjustBalanceRequest represents the request body for a manual balance
// adjustment. Type selects bonus, penalty, or adjustment semantics.
type AdjustBalanceRequest struct {
	Delta  int    `json:"delta" binding:"required"`
	Type   string `json:"type" binding:"required,oneof=bonus penalty adjustment"`
	Reason string `json:"reason" binding:"required,min=1,max=500"`
}

// UpdateWalletSettingsRequest retunes the learning-gate threshold. A pointer
// so that an explicit 0 (gate always open) binds.
type UpdateWalletSettingsRequest struct {
	MinimumDailyLearningMinutes *int `json:"minimum_daily_learning_minutes" binding:"required,gte=0"`
}

// ResetWalletRequest represents the request body for a wallet reset.
type ResetWalletRequest struct {
	TargetBalance int    `json:"target_balance"`
	Reason        string `json:"reason" binding:"required,min=1,max=500"`
}

// WalletMutationResponse represents the response for a ledger mutation: the
// updated wallet and the transaction that records it.
type WalletMutationResponse struct {
	Wallet      WalletResponse      `json:"wallet"`
	Transaction TransactionResponse `json:"transaction"`
}

// ToWalletResponse converts a domain Wallet entity to a WalletResponse DTO.
func ToWalletResponse(w *entity.Wallet) WalletResponse {
	usage := w.DailyRewardUsage
	if usage == nil {
		usage = map[string]int{}
	}

	return WalletResponse{
		ID:                          w.ID.String(),
		ChildID:                     w.ChildID.String(),
		Balance:                     w.Balance,
		TotalEarned:                 w.TotalEarned,
		TotalSpent:                  w.TotalSpent,
		DailyEarned:                 w.DailyEarned,
		DailySpent:                  w.DailySpent,
		DailyLearningMinutes:        w.DailyLearningMinutes,
		TotalLearningMinutes:        w.TotalLearningMinutes,
		DailyRewardUsage:            usage,
		MinimumDailyLearningMinutes: w.MinimumDailyLearningMinutes,
		LastResetDate:               w.LastResetDate,
		LastModified:                w.LastModified,
	}
}

// ToWalletSnapshotResponse converts a GetWalletOutput to a snapshot DTO.
func ToWalletSnapshotResponse(output *ledger.GetWalletOutput) WalletSnapshotResponse {
	rewardApps := make([]AppAffordabilityResponse, len(output.RewardApps))
	for i, ra := range output.RewardApps {
		rewardApps[i] = AppAffordabilityResponse{
			App:               ToAppConfigResponse(ra.App),
			AffordableMinutes: ra.AffordableMinutes,
			UsedToday:         ra.UsedToday,
		}
	}

	return WalletSnapshotResponse{
		Wallet:           ToWalletResponse(output.Wallet),
		CarryoverBalance: output.CarryoverBalance,
		HasCarryover:     output.HasCarryover,
		RewardApps:       rewardApps,
	}
}
