package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/aminenidae/braincoinz/internal/application/adapter"
	"github.com/aminenidae/braincoinz/internal/domain/entity"
	domainerror "github.com/aminenidae/braincoinz/internal/domain/error"
)

// LoginParentInput represents the input for parent login.
type LoginParentInput struct {
	Email    string
	Password string
}

// LoginParentOutput represents the output of parent login.
type LoginParentOutput struct {
	AccessToken string
	ExpiresAt   time.Time
	Parent      *entity.Parent
}

// LoginParentUseCase handles parent login.
type LoginParentUseCase struct {
	parentRepo      adapter.ParentRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
}

// NewLoginParentUseCase creates a new LoginParentUseCase instance.
func NewLoginParentUseCase(
	parentRepo adapter.ParentRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
) *LoginParentUseCase {
	return &LoginParentUseCase{
		parentRepo:      parentRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}

// Execute performs the login.
func (uc *LoginParentUseCase) Execute(ctx context.Context, input LoginParentInput) (*LoginParentOutput, error) {
	parent, err := uc.parentRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		// Same error as a wrong password so the response does not reveal
		// which accounts exist.
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidCredentials,
			"invalid email or password",
			domainerror.ErrInvalidCredentials,
		)
	}

	if err := uc.passwordService.VerifyPassword(parent.PasswordHash, input.Password); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidCredentials,
			"invalid email or password",
			domainerror.ErrInvalidCredentials,
		)
	}

	token, expiresAt, err := uc.tokenService.GenerateAccessToken(ctx, parent.ID, parent.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &LoginParentOutput{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		Parent:      parent,
	}, nil
}
