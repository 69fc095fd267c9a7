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

// UpdateGoalInput represents a partial goal update. Nil pointers leave the
// field unchanged. Completed goals cannot be edited.
type UpdateGoalInput struct {
	ParentID    uuid.UUID
	ChildID     uuid.UUID
	GoalID      uuid.UUID
	Title       *string
	TargetCoinz *int
	BonusCoinz  *int
	EndDate     *time.Time
	IsActive    *bool
}

// UpdateGoalOutput represents the output of a goal update.
type UpdateGoalOutput struct {
	Goal *entity.Goal
}

// UpdateGoalUseCase edits an existing goal.
type UpdateGoalUseCase struct {
	goalRepo  adapter.GoalRepository
	childRepo adapter.ChildRepository
}

// NewUpdateGoalUseCase creates a new UpdateGoalUseCase instance.
func NewUpdateGoalUseCase(goalRepo adapter.GoalRepository, childRepo adapter.ChildRepository) *UpdateGoalUseCase {
	return &UpdateGoalUseCase{
		goalRepo:  goalRepo,
		childRepo: childRepo,
	}
}

// Execute performs the update.
func (uc *UpdateGoalUseCase) Execute(ctx context.Context, input UpdateGoalInput) (*UpdateGoalOutput, error) {
	goal, err := uc.loadOwnedGoal(ctx, input.ParentID, input.ChildID, input.GoalID)
	if err != nil {
		return nil, err
	}

	if goal.IsCompleted {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalCompleted,
			"completed goals cannot be edited",
			domainerror.ErrGoalCompleted,
		)
	}

	if input.Title != nil {
		goal.Title = *input.Title
	}
	if input.TargetCoinz != nil {
		if *input.TargetCoinz <= 0 {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeInvalidTargetCoinz,
				"target coinz must be greater than zero",
				domainerror.ErrInvalidTargetCoinz,
			)
		}
		goal.TargetCoinz = *input.TargetCoinz
	}
	if input.BonusCoinz != nil {
		if *input.BonusCoinz < 0 {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeInvalidBonusCoinz,
				"bonus coinz cannot be negative",
				domainerror.ErrInvalidBonusCoinz,
			)
		}
		goal.BonusCoinz = *input.BonusCoinz
	}
	if input.EndDate != nil {
		if !input.EndDate.After(goal.StartDate) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeInvalidGoalWindow,
				"end date must be after start date",
				domainerror.ErrInvalidGoalWindow,
			)
		}
		goal.EndDate = *input.EndDate
	}
	if input.IsActive != nil {
		goal.IsActive = *input.IsActive
	}

	goal.UpdatedAt = time.Now().UTC()

	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	return &UpdateGoalOutput{Goal: goal}, nil
}

func (uc *UpdateGoalUseCase) loadOwnedGoal(ctx context.Context, parentID, childID, goalID uuid.UUID) (*entity.Goal, error) {
	child, err := uc.childRepo.FindByID(ctx, childID)
	if err != nil || child.ParentID != parentID {
		return nil, domainerror.NewChildError(
			domainerror.ErrCodeChildNotFound,
			"child not found",
			domainerror.ErrChildNotFound,
		)
	}

	goal, err := uc.goalRepo.FindByID(ctx, goalID)
	if err != nil || goal.ChildID != childID {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalNotFound,
			"goal not found",
			domainerror.ErrGoalNotFound,
		)
	}

	return goal, nil
}
