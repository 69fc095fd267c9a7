// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/aminenidae/braincoinz/internal/domain/entity"
)

// WalletModel represents the wallets table in the database.
type WalletModel struct {
	ID                          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ChildID                     uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex"`
	Balance                     int        `gorm:"not null;default:0"`
	TotalEarned                 int        `gorm:"not null;default:0"`
	TotalSpent                  int        `gorm:"not null;default:0"`
	DailyEarned                 int        `gorm:"not null;default:0"`
	DailySpent                  int        `gorm:"not null;default:0"`
	DailyLearningMinutes        int        `gorm:"not null;default:0"`
	TotalLearningMinutes        int        `gorm:"not null;default:0"`
	DailyRewardUsage            JSONIntMap `gorm:"type:text;not null"`
	MinimumDailyLearningMinutes int        `gorm:"not null"`
	LastResetDate               time.Time  `gorm:"not null"`
	LastModified                time.Time  `gorm:"not null"`
	CreatedAt                   time.Time  `gorm:"not null"`
}

// TableName returns the table name for the WalletModel.
func (WalletModel) TableName() string {
	return "wallets"
}

// ToEntity converts a WalletModel to a domain Wallet entity.
func (m *WalletModel) ToEntity() *entity.Wallet {
	usage := make(map[string]int, len(m.DailyRewardUsage))
	for appID, minutes := range m.DailyRewardUsage {
		usage[appID] = minutes
	}

	return &entity.Wallet{
		ID:                          m.ID,
		ChildID:                     m.ChildID,
		Balance:                     m.Balance,
		TotalEarned:                 m.TotalEarned,
		TotalSpent:                  m.TotalSpent,
		DailyEarned:                 m.DailyEarned,
		DailySpent:                  m.DailySpent,
		DailyLearningMinutes:        m.DailyLearningMinutes,
		TotalLearningMinutes:        m.TotalLearningMinutes,
		DailyRewardUsage:            usage,
		MinimumDailyLearningMinutes: m.MinimumDailyLearningMinutes,
		LastResetDate:               m.LastResetDate,
		LastModified:                m.LastModified,
		CreatedAt:                   m.CreatedAt,
	}
}

// WalletFromEntity creates a WalletModel from a domain Wallet entity.
func WalletFromEntity(wallet *entity.Wallet) *WalletModel {
	usage := make(JSONIntMap, len(wallet.DailyRewardUsage))
	for appID, minutes := range wallet.DailyRewardUsage {
		usage[appID] = minutes
	}

	return &WalletModel{
		ID:                          wallet.ID,
		ChildID:                     wallet.ChildID,
		Balance:                     wallet.Balance,
		TotalEarned:                 wallet.TotalEarned,
		TotalSpent:                  wallet.TotalSpent,
		DailyEarned:                 wallet.DailyEarned,
		DailySpent:                  wallet.DailySpent,
		DailyLearningMinutes:        wallet.DailyLearningMinutes,
		TotalLearningMinutes:        wallet.TotalLearningMinutes,
		DailyRewardUsage:            usage,
		MinimumDailyLearningMinutes: wallet.MinimumDailyLearningMinutes,
		LastResetDate:               wallet.LastResetDate,
		LastModified:                wallet.LastModified,
		CreatedAt:                   wallet.CreatedAt,
	}
}
