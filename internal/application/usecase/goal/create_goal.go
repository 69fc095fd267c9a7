// Package goal contains goal-related usecases.
package goal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/aminenidae/braincoinz/internal/application/adapter"
	"github.com/aminenidae/braincoinz/internal/domain/entity"
	domainerror "github.com/aminenidae/braincoinz/internal/domain/error"
)

// CreateGoalInput represents the input for goal creation.
type CreateGoalInput struct {
	ParentID       uuid.UUID
	ChildID        uuid.UUID
	Title          string
	TargetCoinz    int
	BonusCoinz     int
	EligibleAppIDs []string
	StartDate      time.Time
	EndDate        time.Time
}

// CreateGoalOutput represents the output of goal creation.
type CreateGoalOutput struct {
	Goal *entity.Goal
}

// CreateGoalUseCase handles goal creation logic.
type CreateGoalUseCase struct {
	goalRepo  adapter.GoalRepository
	childRepo adapter.ChildRepository
	appRepo   adapter.AppConfigRepository
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(goalRepo adapter.GoalRepository, childRepo adapter.ChildRepository, appRepo adapter.AppConfigRepository) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		goalRepo:  goalRepo,
		childRepo: childRepo,
		appRepo:   appRepo,
	}
}

// Execute performs the goal creation.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	if input.TargetCoinz <= 0 {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidTargetCoinz,
			"target coinz must be greater than zero",
			domainerror.ErrInvalidTargetCoinz,
		)
	}
	if input.BonusCoinz < 0 {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidBonusCoinz,
			"bonus coinz cannot be negative",
			domainerror.ErrInvalidBonusCoinz,
		)
	}
	if !input.EndDate.After(input.StartDate) {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalWindow,
			"end date must be after start date",
			domainerror.ErrInvalidGoalWindow,
		)
	}
	if len(input.EligibleAppIDs) == 0 {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeNoEligibleApps,
			"at least one eligible learning app is required",
			domainerror.ErrNoEligibleApps,
		)
	}

	child, err := uc.childRepo.FindByID(ctx, input.ChildID)
	if err != nil || child.ParentID != input.ParentID {
		return nil, domainerror.NewChildError(
			domainerror.ErrCodeChildNotFound,
			"child not found",
			domainerror.ErrChildNotFound,
		)
	}

	// Every eligible app must be a configured learning app.
	for _, appID := range input.EligibleAppIDs {
		app, err := uc.appRepo.FindByParentAndAppID(ctx, input.ParentID, appID)
		if err != nil {
			return nil, domainerror.NewAppConfigError(
				domainerror.ErrCodeAppNotConfigured,
				fmt.Sprintf("no configuration for app %q", appID),
				domainerror.ErrAppNotConfigured,
			)
		}
		if app.Category != entity.AppCategoryLearning {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeNoEligibleApps,
				fmt.Sprintf("app %q is not a learning app", appID),
				domainerror.ErrNoEligibleApps,
			)
		}
	}

	goal := entity.NewGoal(input.ChildID, input.Title, input.TargetCoinz, input.BonusCoinz, input.EligibleAppIDs, input.StartDate, input.EndDate)

	if err := uc.goalRepo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return &CreateGoalOutput{Goal: goal}, nil
}
