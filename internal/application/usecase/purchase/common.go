// Package purchase contains the purchase gate and reward-spend usecases.
package purchase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/aminenidae/braincoinz/internal/application/adapter"
	"github.com/aminenidae/braincoinz/internal/domain/economy"
	"github.com/aminenidae/braincoinz/internal/domain/entity"
	domainerror "github.com/aminenidae/braincoinz/internal/domain/error"
)

func loadOwnedChild(ctx context.Context, repo adapter.ChildRepository, childID, parentID uuid.UUID) (*entity.Child, error) {
	child, err := repo.FindByID(ctx, childID)
	if err != nil {
		return nil, domainerror.NewChildError(
			domainerror.ErrCodeChildNotFound,
			"child not found",
			domainerror.ErrChildNotFound,
		)
	}
	if child.ParentID != parentID {
		return nil, domainerror.NewChildError(
			domainerror.ErrCodeChildNotOwned,
			"child does not belong to parent",
			domainerror.ErrChildNotOwned,
		)
	}
	return child, nil
}

func loadEnabledRewardApp(ctx context.Context, repo adapter.AppConfigRepository, parentID uuid.UUID, appID string) (*entity.AppConfig, error) {
	app, err := repo.FindByParentAndAppID(ctx, parentID, appID)
	if err != nil {
		return nil, domainerror.NewAppConfigError(
			domainerror.ErrCodeAppNotConfigured,
			fmt.Sprintf("no configuration for app %q", appID),
			domainerror.ErrAppNotConfigured,
		)
	}
	if !app.IsEnabled {
		return nil, domainerror.NewAppConfigError(
			domainerror.ErrCodeAppNotConfigured,
			fmt.Sprintf("app %q is disabled", appID),
			domainerror.ErrAppNotConfigured,
		)
	}
	if app.Category != entity.AppCategoryReward || !app.RateMatchesCategory() {
		return nil, domainerror.NewAppConfigError(
			domainerror.ErrCodeRateCategoryMismatch,
			fmt.Sprintf("app %q is not a purchasable reward app", appID),
			domainerror.ErrRateCategoryMismatch,
		)
	}
	return app, nil
}

// denialError maps a gate denial to the typed purchase error the API surfaces.
func denialError(d *economy.Denial) *domainerror.PurchaseError {
	switch d.Reason {
	case economy.DenialLearningRequirementNotMet:
		return domainerror.NewPurchaseError(
			domainerror.ErrCodeLearningRequirementNotMet,
			d.Message,
			domainerror.ErrLearningRequirementNotMet,
		)
	case economy.DenialInsufficientBalance:
		return domainerror.NewPurchaseError(
			domainerror.ErrCodePurchaseInsufficientBalance,
			d.Message,
			domainerror.ErrInsufficientBalance,
		)
	case economy.DenialDailyLimitPartial:
		return domainerror.NewPurchaseError(
			domainerror.ErrCodeDailyLimitPartial,
			d.Message,
			domainerror.ErrDailyLimitPartial,
		)
	default:
		return domainerror.NewPurchaseError(
			domainerror.ErrCodeDailyLimitReached,
			d.Message,
			domainerror.ErrDailyLimitReached,
		)
	}
}
