package goal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/aminenidae/braincoinz/internal/application/adapter"
	domainerror "github.com/aminenidae/braincoinz/internal/domain/error"
)

// DeleteGoalInput represents the input for goal deletion.
type DeleteGoalInput struct {
	ParentID uuid.UUID
	ChildID  uuid.UUID
	GoalID   uuid.UUID
}

// DeleteGoalUseCase removes a goal.
type DeleteGoalUseCase struct {
	goalRepo  adapter.GoalRepository
	childRepo adapter.ChildRepository
}

// NewDeleteGoalUseCase creates a new DeleteGoalUseCase instance.
func NewDeleteGoalUseCase(goalRepo adapter.GoalRepository, childRepo adapter.ChildRepository) *DeleteGoalUseCase {
	return &DeleteGoalUseCase{
		goalRepo:  goalRepo,
		childRepo: childRepo,
	}
}

// Execute performs the deletion.
func (uc *DeleteGoalUseCase) Execute(ctx context.Context, input DeleteGoalInput) error {
	child, err := uc.childRepo.FindByID(ctx, input.ChildID)
	if err != nil || child.ParentID != input.ParentID {
		return domainerror.NewChildError(
			domainerror.ErrCodeChildNotFound,
			"child not found",
			domainerror.ErrChildNotFound,
		)
	}

	goal, err := uc.goalRepo.FindByID(ctx, input.GoalID)
	if err != nil || goal.ChildID != input.ChildID {
		return domainerror.NewGoalError(
			domainerror.ErrCodeGoalNotFound,
			"goal not found",
			domainerror.ErrGoalNotFound,
		)
	}

	if err := uc.goalRepo.Delete(ctx, input.GoalID); err != nil {
		return fmt.Errorf("failed to delete goal: %w", err)
	}

	return nil
}
