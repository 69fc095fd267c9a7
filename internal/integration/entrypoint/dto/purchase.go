// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/aminenidae/braincoinz/internal/application/usecase/purchase"
	"github.com/aminenidae/braincoinz/internal/domain/economy"
)

// PurchaseRequest represents the request body for checking or executing a
// reward-time purchase.
type PurchaseRequest struct {
	AppID   string `json:"app_id" binding:"required"`
	Minutes int    `json:"minutes" binding:"required,gt=0"`
}

// DenialResponse describes why a purchase was rejected.
type DenialResponse struct {
	Reason           string `json:"reason"`
	ShortfallCoinz   int    `json:"shortfall_coinz,omitempty"`
	RemainingMinutes int    `json:"remaining_minutes,omitempty"`
	Message          string `json:"message"`
}

// CheckPurchaseResponse represents the response for the read-only purchase
// check.
type CheckPurchaseResponse struct {
	Allowed           bool            `json:"allowed"`
	Denial            *DenialResponse `json:"denial,omitempty"`
	AffordableMinutes int             `json:"affordable_minutes"`
	CostCoinz         int             `json:"cost_coinz"`
}

// PurchaseResponse represents the response for an executed purchase.
type PurchaseResponse struct {
	Wallet          WalletResponse      `json:"wallet"`
	Transaction     TransactionResponse `json:"transaction"`
	UnlockedMinutes int                 `json:"unlocked_minutes"`
}

// ToDenialResponse converts an economy.Denial to its DTO.
func ToDenialResponse(d *economy.Denial) *DenialResponse {
	if d == nil {
		return nil
	}
	return &DenialResponse{
		Reason:           string(d.Reason),
		ShortfallCoinz:   d.ShortfallCoinz,
		RemainingMinutes: d.RemainingMinutes,
		Message:          d.Message,
	}
}

// ToCheckPurchaseResponse converts a CheckPurchaseOutput to its DTO.
func ToCheckPurchaseResponse(output *purchase.CheckPurchaseOutput) CheckPurchaseResponse {
	return CheckPurchaseResponse{
		Allowed:           output.Allowed,
		Denial:            ToDenialResponse(output.Denial),
		AffordableMinutes: output.AffordableMinutes,
		CostCoinz:         output.CostCoinz,
	}
}

// ToPurchaseResponse converts a PurchaseRewardTimeOutput to its DTO.
func ToPurchaseResponse(output *purchase.PurchaseRewardTimeOutput) PurchaseResponse {
	return PurchaseResponse{
		Wallet:          ToWalletResponse(output.Wallet),
		Transaction:     ToTransactionResponse(output.Transaction),
		UnlockedMinutes: output.UnlockedMinutes,
	}
}
