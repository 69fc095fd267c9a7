// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/aminenidae/braincoinz/internal/domain/entity"
)

// CreateAppRequest represents the request body for registering an app in
// the economy.
type CreateAppRequest struct {
	AppID          string `json:"app_id" binding:"required,min=1,max=255"`
	DisplayName    string `json:"display_name" binding:"required,min=1,max=100"`
	Category       string `json:"category" binding:"required,oneof=learning reward neutral"`
	CoinzRate      int    `json:"coinz_rate"`
	DailyTimeLimit int    `json:"daily_time_limit" binding:"omitempty,gte=0"`
}

// UpdateAppRequest represents the request body for updating an app
// configuration. Absent fields are left unchanged.
type UpdateAppRequest struct {
	DisplayName    *string `json:"display_name,omitempty" binding:"omitempty,min=1,max=100"`
	Category       *string `json:"category,omitempty" binding:"omitempty,oneof=learning reward neutral"`
	CoinzRate      *int    `json:"coinz_rate,omitempty"`
	DailyTimeLimit *int    `json:"daily_time_limit,omitempty" binding:"omitempty,gte=0"`
	IsEnabled      *bool   `json:"is_enabled,omitempty"`
}

// AppConfigResponse represents an app configuration in API responses.
type AppConfigResponse struct {
	ID             string    `json:"id"`
	AppID          string    `json:"app_id"`
	DisplayName    string    `json:"display_name"`
	Category       string    `json:"category"`
	CoinzRate      int       `json:"coinz_rate"`
	DailyTimeLimit int       `json:"daily_time_limit"`
	IsEnabled      bool      `json:"is_enabled"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// AppConfigListResponse represents the response for listing app configurations.
type AppConfigListResponse struct {
	Apps []AppConfigResponse `json:"apps"`
}

// ToAppConfigResponse converts a domain AppConfig entity to its DTO.
func ToAppConfigResponse(app *entity.AppConfig) AppConfigResponse {
	return AppConfigResponse{
		ID:             app.ID.String(),
		AppID:          app.AppID,
		DisplayName:    app.DisplayName,
		Category:       string(app.Category),
		CoinzRate:      app.CoinzRate,
		DailyTimeLimit: app.DailyTimeLimit,
		IsEnabled:      app.IsEnabled,
		CreatedAt:      app.CreatedAt,
		UpdatedAt:      app.UpdatedAt,
	}
}

// ToAppConfigListResponse converts a list of app configurations to its DTO.
func ToAppConfigListResponse(apps []*entity.AppConfig) AppConfigListResponse {
	responses := make([]AppConfigResponse, len(apps))
	for i, app := range apps {
		responses[i] = ToAppConfigResponse(app)
	}
	return AppConfigListResponse{Apps: responses}
}
