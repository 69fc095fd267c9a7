package appconfig

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/aminenidae/braincoinz/internal/application/adapter"
	"github.com/aminenidae/braincoinz/internal/domain/entity"
	domainerror "github.com/aminenidae/braincoinz/internal/domain/error"
)

// UpdateAppInput represents a partial update to an app configuration.
// Nil pointers leave the field unchanged.
type UpdateAppInput struct {
	ParentID       uuid.UUID
	ID             uuid.UUID
	DisplayName    *string
	Category       *entity.AppCategory
	CoinzRate      *int
	DailyTimeLimit *int
	IsEnabled      *bool
}

// UpdateAppOutput represents the output of an app update.
type UpdateAppOutput struct {
	App *entity.AppConfig
}

// UpdateAppUseCase edits an existing app configuration.
type UpdateAppUseCase struct {
	appRepo adapter.AppConfigRepository
}

// NewUpdateAppUseCase creates a new UpdateAppUseCase instance.
func NewUpdateAppUseCase(appRepo adapter.AppConfigRepository) *UpdateAppUseCase {
	return &UpdateAppUseCase{
		appRepo: appRepo,
	}
}

// Execute performs the update.
func (uc *UpdateAppUseCase) Execute(ctx context.Context, input UpdateAppInput) (*UpdateAppOutput, error) {
	app, err := uc.appRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, domainerror.NewAppConfigError(
			domainerror.ErrCodeAppConfigNotFound,
			"app config not found",
			domainerror.ErrAppConfigNotFound,
		)
	}
	if app.ParentID != input.ParentID {
		return nil, domainerror.NewAppConfigError(
			domainerror.ErrCodeAppConfigNotFound,
			"app config not found",
			domainerror.ErrAppConfigNotFound,
		)
	}

	if input.DisplayName != nil {
		app.DisplayName = *input.DisplayName
	}
	if input.Category != nil {
		app.Category = *input.Category
	}
	if input.CoinzRate != nil {
		app.CoinzRate = *input.CoinzRate
	}
	if input.DailyTimeLimit != nil {
		app.DailyTimeLimit = *input.DailyTimeLimit
	}
	if input.IsEnabled != nil {
		app.IsEnabled = *input.IsEnabled
	}

	if err := validateAppConfig(app.Category, app.CoinzRate, app.DailyTimeLimit); err != nil {
		return nil, err
	}

	app.UpdatedAt = time.Now().UTC()

	if err := uc.appRepo.Update(ctx, app); err != nil {
		return nil, fmt.Errorf("failed to update app config: %w", err)
	}

	return &UpdateAppOutput{App: app}, nil
}
