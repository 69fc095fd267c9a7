package appconfig

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/aminenidae/braincoinz/internal/application/adapter"
	"github.com/aminenidae/braincoinz/internal/domain/entity"
)

// ListAppsInput represents the input for listing a parent's app registry.
type ListAppsInput struct {
	ParentID uuid.UUID
}

// ListAppsOutput represents the registry contents.
type ListAppsOutput struct {
	Apps []*entity.AppConfig
}

// ListAppsUseCase retrieves all app configurations for a parent.
type ListAppsUseCase struct {
	appRepo adapter.AppConfigRepository
}

// NewListAppsUseCase creates a new ListAppsUseCase instance.
func NewListAppsUseCase(appRepo adapter.AppConfigRepository) *ListAppsUseCase {
	return &ListAppsUseCase{
		appRepo: appRepo,
	}
}

// Execute lists the registry.
func (uc *ListAppsUseCase) Execute(ctx context.Context, input ListAppsInput) (*ListAppsOutput, error) {
	apps, err := uc.appRepo.ListByParent(ctx, input.ParentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list apps: %w", err)
	}

	return &ListAppsOutput{Apps: apps}, nil
}
