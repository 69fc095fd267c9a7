// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// TransactionType is the business reason for a ledger mutation.
type TransactionType string

const (
	TransactionTypeEarned     TransactionType = "earned"
	TransactionTypeSpent      TransactionType = "spent"
	TransactionTypeBonus      TransactionType = "bonus"
	TransactionTypePenalty    TransactionType = "penalty"
	TransactionTypeAdjustment TransactionType = "adjustment"
)

// Transaction is one immutable entry in the append-only ledger history.
// The ordered sum of Amount over all valid transactions for a wallet equals
// that wallet's balance.
type Transaction struct {
	ID              uuid.UUID
	WalletID        uuid.UUID
	AppID           string // empty for bonus/penalty/adjustment entries
	AppDisplayName  string
	Type            TransactionType
	Amount          int // signed: positive credits, negative debits
	MinutesInvolved int
	Reason          string
	Timestamp       time.Time
	IsValid         bool
}

// NewTransaction creates a new ledger entry.
func NewTransaction(walletID uuid.UUID, appID, appDisplayName string, txType TransactionType, amount, minutes int, reason string, timestamp time.Time) *Transaction {
	return &Transaction{
		ID:              uuid.New(),
		WalletID:        walletID,
		AppID:           appID,
		AppDisplayName:  appDisplayName,
		Type:            txType,
		Amount:          amount,
		MinutesInvolved: minutes,
		Reason:          reason,
		Timestamp:       timestamp,
		IsValid:         true,
	}
}

// TransactionListResult is the paginated result of listing a wallet's history.
type TransactionListResult struct {
	Transactions []*Transaction
	Total        int64
	Page         int
	Limit        int
	TotalPages   int
}
