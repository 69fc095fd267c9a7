// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/aminenidae/braincoinz/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
// Rows are append-only; the engine never updates or deletes them.
type TransactionModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	WalletID        uuid.UUID `gorm:"type:uuid;not null;index"`
	AppID           string    `gorm:"type:varchar(255)"`
	AppDisplayName  string    `gorm:"type:varchar(255)"`
	Type            string    `gorm:"type:varchar(20);not null"`
	Amount          int       `gorm:"not null"`
	MinutesInvolved int       `gorm:"not null;default:0"`
	Reason          string    `gorm:"type:text"`
	Timestamp       time.Time `gorm:"not null;index"`
	IsValid         bool      `gorm:"not null;default:true"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:              m.ID,
		WalletID:        m.WalletID,
		AppID:           m.AppID,
		AppDisplayName:  m.AppDisplayName,
		Type:            entity.TransactionType(m.Type),
		Amount:          m.Amount,
		MinutesInvolved: m.MinutesInvolved,
		Reason:          m.Reason,
		Timestamp:       m.Timestamp,
		IsValid:         m.IsValid,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(tx *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:              tx.ID,
		WalletID:        tx.WalletID,
		AppID:           tx.AppID,
		AppDisplayName:  tx.AppDisplayName,
		Type:            string(tx.Type),
		Amount:          tx.Amount,
		MinutesInvolved: tx.MinutesInvolved,
		Reason:          tx.Reason,
		Timestamp:       tx.Timestamp,
		IsValid:         tx.IsValid,
	}
}
