// Package user contains user-profile-related use cases.
package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// UpdateProfileInput represents the input for updating the authenticated
// user's profile. Nil fields are left unchanged. Changing the password
// requires the current one.
type UpdateProfileInput struct {
	UserID          uuid.UUID
	Name            *string
	Email           *string
	CurrentPassword *string
	NewPassword     *string
}

// UpdateProfileOutput represents the output of updating a profile.
type UpdateProfileOutput struct {
	User *entity.User
}

// UpdateProfileUseCase handles updating the authenticated user's profile.
type UpdateProfileUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
}

// NewUpdateProfileUseCase creates a new UpdateProfileUseCase instance.
func NewUpdateProfileUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
	}
}

// Execute performs the profile update.
func (uc *UpdateProfileUseCase) Execute(ctx context.Context, input UpdateProfileInput) (*UpdateProfileOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeUserNotFound,
				"user not found",
				domainerror.ErrUserNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if input.Name != nil {
		user.Name = strings.TrimSpace(*input.Name)
	}

	if input.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*input.Email))
		if email != user.Email {
			exists, err := uc.userRepo.ExistsByEmail(ctx, email)
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
			user.Email = email
		}
	}

	if input.NewPassword != nil {
		if input.CurrentPassword == nil {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeInvalidCredentials,
				"current password is required to set a new password",
				domainerror.ErrInvalidCredentials,
			)
		}
		if err := uc.passwordService.VerifyPassword(user.PasswordHash, *input.CurrentPassword); err != nil {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeInvalidCredentials,
				"current password is incorrect",
				domainerror.ErrInvalidCredentials,
			)
		}
		if err := uc.passwordService.ValidatePasswordStrength(*input.NewPassword); err != nil {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeWeakPassword,
				"password does not meet minimum requirements",
				domainerror.ErrWeakPassword,
			)
		}
		hash, err := uc.passwordService.HashPassword(*input.NewPassword)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = hash
	}

	user.UpdatedAt = time.Now().UTC()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return &UpdateProfileOutput{User: user}, nil
}
