// Package auth contains authentication-related usecases.
package auth

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/aminenidae/braincoinz/internal/application/adapter"
	"github.com/aminenidae/braincoinz/internal/domain/entity"
	domainerror "github.com/aminenidae/braincoinz/internal/domain/error"
)

// RegisterParentInput represents the input for parent registration.
type RegisterParentInput struct {
	Email    string
	Name     string
	Password string
}

// RegisterParentOutput represents the output of parent registration.
type RegisterParentOutput struct {
	AccessToken string
	ExpiresAt   time.Time
	Parent      *entity.Parent
}

// RegisterParentUseCase handles parent account registration.
type RegisterParentUseCase struct {
	parentRepo      adapter.ParentRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
}

// NewRegisterParentUseCase creates a new RegisterParentUseCase instance.
func NewRegisterParentUseCase(
	parentRepo adapter.ParentRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
) *RegisterParentUseCase {
	return &RegisterParentUseCase{
		parentRepo:      parentRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}

// Execute performs the registration.
func (uc *RegisterParentUseCase) Execute(ctx context.Context, input RegisterParentInput) (*RegisterParentOutput, error) {
	if !isValidEmail(input.Email) {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidEmail,
			"invalid email format",
			domainerror.ErrInvalidEmail,
		)
	}

	if err := uc.passwordService.ValidatePasswordStrength(input.Password); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeWeakPassword,
			"password does not meet minimum requirements",
			domainerror.ErrWeakPassword,
		)
	}

	exists, err := uc.parentRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeEmailExists,
			"email already exists",
			domainerror.ErrEmailAlreadyExists,
		)
	}

	passwordHash, err := uc.passwordService.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	parent := entity.NewParent(input.Email, input.Name, passwordHash)

	if err := uc.parentRepo.Create(ctx, parent); err != nil {
		return nil, fmt.Errorf("failed to create parent: %w", err)
	}

	token, expiresAt, err := uc.tokenService.GenerateAccessToken(ctx, parent.ID, parent.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &RegisterParentOutput{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		Parent:      parent,
	}, nil
}

// isValidEmail validates email format using a simple regex.
func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}
