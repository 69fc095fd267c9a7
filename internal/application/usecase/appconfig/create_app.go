// Package appconfig contains app registry usecases.
package appconfig

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/aminenidae/braincoinz/internal/application/adapter"
	"github.com/aminenidae/braincoinz/internal/domain/entity"
	domainerror "github.com/aminenidae/braincoinz/internal/domain/error"
)

// CreateAppInput represents the input for configuring a tracked app.
type CreateAppInput struct {
	ParentID       uuid.UUID
	AppID          string
	DisplayName    string
	Category       entity.AppCategory
	CoinzRate      int
	DailyTimeLimit int
}

// CreateAppOutput represents the output of app configuration.
type CreateAppOutput struct {
	App *entity.AppConfig
}

// CreateAppUseCase registers a new per-application configuration.
type CreateAppUseCase struct {
	appRepo adapter.AppConfigRepository
}

// NewCreateAppUseCase creates a new CreateAppUseCase instance.
func NewCreateAppUseCase(appRepo adapter.AppConfigRepository) *CreateAppUseCase {
	return &CreateAppUseCase{
		appRepo: appRepo,
	}
}

// Execute performs the app registration.
func (uc *CreateAppUseCase) Execute(ctx context.Context, input CreateAppInput) (*CreateAppOutput, error) {
	if err := validateAppConfig(input.Category, input.CoinzRate, input.DailyTimeLimit); err != nil {
		return nil, err
	}

	exists, err := uc.appRepo.ExistsByParentAndAppID(ctx, input.ParentID, input.AppID)
	if err != nil {
		return nil, fmt.Errorf("failed to check app existence: %w", err)
	}
	if exists {
		return nil, domainerror.NewAppConfigError(
			domainerror.ErrCodeAppAlreadyConfigured,
			fmt.Sprintf("app %q is already configured", input.AppID),
			domainerror.ErrAppAlreadyConfigured,
		)
	}

	app := entity.NewAppConfig(input.ParentID, input.AppID, input.DisplayName, input.Category, input.CoinzRate, input.DailyTimeLimit)

	if err := uc.appRepo.Create(ctx, app); err != nil {
		return nil, fmt.Errorf("failed to create app config: %w", err)
	}

	return &CreateAppOutput{App: app}, nil
}

// validateAppConfig enforces the category/rate sign convention and limit sign.
func validateAppConfig(category entity.AppCategory, coinzRate, dailyTimeLimit int) error {
	switch category {
	case entity.AppCategoryLearning, entity.AppCategoryReward, entity.AppCategoryNeutral:
	default:
		return domainerror.NewAppConfigError(
			domainerror.ErrCodeInvalidAppCategory,
			"category must be 'learning', 'reward', or 'neutral'",
			domainerror.ErrInvalidAppCategory,
		)
	}

	probe := entity.AppConfig{Category: category, CoinzRate: coinzRate}
	if !probe.RateMatchesCategory() {
		return domainerror.NewAppConfigError(
			domainerror.ErrCodeRateCategoryMismatch,
			fmt.Sprintf("rate %d does not match category %s", coinzRate, category),
			domainerror.ErrRateCategoryMismatch,
		)
	}

	if dailyTimeLimit < 0 {
		return domainerror.NewAppConfigError(
			domainerror.ErrCodeInvalidDailyTimeLimit,
			"daily time limit cannot be negative (0 means unlimited)",
			domainerror.ErrInvalidDailyTimeLimit,
		)
	}

	return nil
}
