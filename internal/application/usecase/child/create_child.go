// Package child contains child profile usecases.
package child

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/aminenidae/braincoinz/internal/application/adapter"
	"github.com/aminenidae/braincoinz/internal/domain/entity"
	domainerror "github.com/aminenidae/braincoinz/internal/domain/error"
)

// CreateChildInput represents the input for creating a child profile.
type CreateChildInput struct {
	ParentID uuid.UUID
	Name     string
}

// CreateChildOutput represents the output of profile creation.
type CreateChildOutput struct {
	Child  *entity.Child
	Wallet *entity.Wallet
}

// CreateChildUseCase establishes a child profile and provisions its wallet.
// The wallet starts at balance zero with the default learning gate; it is
// created exactly once with the profile and never recreated.
type CreateChildUseCase struct {
	childRepo adapter.ChildRepository
	clock     adapter.Clock
}

// NewCreateChildUseCase creates a new CreateChildUseCase instance.
func NewCreateChildUseCase(childRepo adapter.ChildRepository, clock adapter.Clock) *CreateChildUseCase {
	return &CreateChildUseCase{
		childRepo: childRepo,
		clock:     clock,
	}
}

// Execute performs the profile creation.
func (uc *CreateChildUseCase) Execute(ctx context.Context, input CreateChildInput) (*CreateChildOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewChildError(
			domainerror.ErrCodeMissingChildFields,
			"child name is required",
			nil,
		)
	}

	c := entity.NewChild(input.ParentID, name)
	w := entity.NewWallet(c.ID, uc.clock.Now())

	if err := uc.childRepo.CreateWithWallet(ctx, c, w); err != nil {
		return nil, fmt.Errorf("failed to create child profile: %w", err)
	}

	return &CreateChildOutput{
		Child:  c,
		Wallet: w,
	}, nil
}
