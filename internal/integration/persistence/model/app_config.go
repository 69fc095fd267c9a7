// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/aminenidae/braincoinz/internal/domain/entity"
)

// AppConfigModel represents the app_configs table in the database.
type AppConfigModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	ParentID       uuid.UUID `gorm:"type:uuid;not null;index:idx_app_configs_parent_app,unique"`
	AppID          string    `gorm:"type:varchar(255);not null;index:idx_app_configs_parent_app,unique"`
	DisplayName    string    `gorm:"type:varchar(255);not null"`
	Category       string    `gorm:"type:varchar(20);not null"`
	CoinzRate      int       `gorm:"not null"`
	DailyTimeLimit int       `gorm:"not null;default:0"`
	IsEnabled      bool      `gorm:"not null;default:true"`
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`
}

// TableName returns the table name for the AppConfigModel.
func (AppConfigModel) TableName() string {
	return "app_configs"
}

// ToEntity converts an AppConfigModel to a domain AppConfig entity.
func (m *AppConfigModel) ToEntity() *entity.AppConfig {
	return &entity.AppConfig{
		ID:             m.ID,
		ParentID:       m.ParentID,
		AppID:          m.AppID,
		DisplayName:    m.DisplayName,
		Category:       entity.AppCategory(m.Category),
		CoinzRate:      m.CoinzRate,
		DailyTimeLimit: m.DailyTimeLimit,
		IsEnabled:      m.IsEnabled,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// AppConfigFromEntity creates an AppConfigModel from a domain AppConfig entity.
func AppConfigFromEntity(config *entity.AppConfig) *AppConfigModel {
	return &AppConfigModel{
		ID:             config.ID,
		ParentID:       config.ParentID,
		AppID:          config.AppID,
		DisplayName:    config.DisplayName,
		Category:       string(config.Category),
		CoinzRate:      config.CoinzRate,
		DailyTimeLimit: config.DailyTimeLimit,
		IsEnabled:      config.IsEnabled,
		CreatedAt:      config.CreatedAt,
		UpdatedAt:      config.UpdatedAt,
	}
}
