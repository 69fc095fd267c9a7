// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/aminenidae/braincoinz/internal/domain/entity"
)

// TransactionResponse represents one ledger entry in API responses.
type TransactionResponse struct {
	ID              string    `json:"id"`
	WalletID        string    `json:"wallet_id"`
	AppID           string    `json:"app_id,omitempty"`
	AppDisplayName  string    `json:"app_display_name,omitempty"`
	Type            string    `json:"type"`
	Amount          int       `json:"amount"`
	MinutesInvolved int       `json:"minutes_involved"`
	Reason          string    `json:"reason,omitempty"`
	Timestamp       time.Time `json:"timestamp"`
}

// TransactionListResponse represents the paginated history of a wallet.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int64                 `json:"total"`
	Page         int                   `json:"page"`
	Limit        int                   `json:"limit"`
	TotalPages   int                   `json:"total_pages"`
}

// ToTransactionResponse converts a domain Transaction entity to a
// TransactionResponse DTO.
func ToTransactionResponse(tx *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:              tx.ID.String(),
		WalletID:        tx.WalletID.String(),
		AppID:           tx.AppID,
		AppDisplayName:  tx.AppDisplayName,
		Type:            string(tx.Type),
		Amount:          tx.Amount,
		MinutesInvolved: tx.MinutesInvolved,
		Reason:          tx.Reason,
		Timestamp:       tx.Timestamp,
	}
}

// ToTransactionListResponse converts a TransactionListResult to its DTO.
func ToTransactionListResponse(result *entity.TransactionListResult) TransactionListResponse {
	transactions := make([]TransactionResponse, len(result.Transactions))
	for i, tx := range result.Transactions {
		transactions[i] = ToTransactionResponse(tx)
	}

	return TransactionListResponse{
		Transactions: transactions,
		Total:        result.Total,
		Page:         result.Page,
		Limit:        result.Limit,
		TotalPages:   result.TotalPages,
	}
}
