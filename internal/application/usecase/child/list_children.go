package child

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/aminenidae/braincoinz/internal/application/adapter"
	"github.com/aminenidae/braincoinz/internal/domain/entity"
)

// ListChildrenInput represents the input for listing a parent's children.
type ListChildrenInput struct {
	ParentID uuid.UUID
}

// ListChildrenOutput represents the parent's child profiles.
type ListChildrenOutput struct {
	Children []*entity.Child
}

// ListChildrenUseCase retrieves all child profiles for a parent.
type ListChildrenUseCase struct {
	childRepo adapter.ChildRepository
}

// NewListChildrenUseCase creates a new ListChildrenUseCase instance.
func NewListChildrenUseCase(childRepo adapter.ChildRepository) *ListChildrenUseCase {
	return &ListChildrenUseCase{
		childRepo: childRepo,
	}
}

// Execute lists the children.
func (uc *ListChildrenUseCase) Execute(ctx context.Context, input ListChildrenInput) (*ListChildrenOutput, error) {
	children, err := uc.childRepo.ListByParent(ctx, input.ParentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list children: %w", err)
	}

	return &ListChildrenOutput{Children: children}, nil
}
