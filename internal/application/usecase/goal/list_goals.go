package goal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/aminenidae/braincoinz/internal/application/adapter"
	"github.com/aminenidae/braincoinz/internal/domain/entity"
	domainerror "github.com/aminenidae/braincoinz/internal/domain/error"
)

// ListGoalsInput represents the input for listing a child's goals.
type ListGoalsInput struct {
	ParentID uuid.UUID
	ChildID  uuid.UUID
}

// ListGoalsOutput represents the child's goals.
type ListGoalsOutput struct {
	Goals []*entity.Goal
}

// ListGoalsUseCase retrieves all goals for a child.
type ListGoalsUseCase struct {
	goalRepo  adapter.GoalRepository
	childRepo adapter.ChildRepository
}

// NewListGoalsUseCase creates a new ListGoalsUseCase instance.
func NewListGoalsUseCase(goalRepo adapter.GoalRepository, childRepo adapter.ChildRepository) *ListGoalsUseCase {
	return &ListGoalsUseCase{
		goalRepo:  goalRepo,
		childRepo: childRepo,
	}
}

// Execute lists the goals.
func (uc *ListGoalsUseCase) Execute(ctx context.Context, input ListGoalsInput) (*ListGoalsOutput, error) {
	child, err := uc.childRepo.FindByID(ctx, input.ChildID)
	if err != nil || child.ParentID != input.ParentID {
		return nil, domainerror.NewChildError(
			domainerror.ErrCodeChildNotFound,
			"child not found",
			domainerror.ErrChildNotFound,
		)
	}

	goals, err := uc.goalRepo.FindByChildID(ctx, input.ChildID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	return &ListGoalsOutput{Goals: goals}, nil
}
