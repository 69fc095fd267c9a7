package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/aminenidae/braincoinz/internal/application/adapter"
	"github.com/aminenidae/braincoinz/internal/domain/entity"
	domainerror "github.com/aminenidae/braincoinz/internal/domain/error"
)

// loadOwnedChild fetches a child profile and verifies it belongs to the
// authenticated parent.
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

// loadEnabledApp fetches the parent's configuration for an app bundle
// identifier. Missing or disabled configs fail with AppNotConfigured; a
// rate/category mismatch is treated the same way, as a configuration error.
func loadEnabledApp(ctx context.Context, repo adapter.AppConfigRepository, parentID uuid.UUID, appID string) (*entity.AppConfig, error) {
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
	if !app.RateMatchesCategory() {
		return nil, domainerror.NewAppConfigError(
			domainerror.ErrCodeRateCategoryMismatch,
			fmt.Sprintf("app %q rate %d does not match category %s", appID, app.CoinzRate, app.Category),
			domainerror.ErrRateCategoryMismatch,
		)
	}
	return app, nil
}

// loadWallet fetches a child's wallet.
func loadWallet(ctx context.Context, repo adapter.WalletRepository, childID uuid.UUID) (*entity.Wallet, error) {
	wallet, err := repo.FindByChildID(ctx, childID)
	if err != nil {
		return nil, domainerror.NewWalletError(
			domainerror.ErrCodeWalletNotFound,
			"wallet not found",
			domainerror.ErrWalletNotFound,
		)
	}
	return wallet, nil
}
