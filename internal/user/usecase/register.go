package usecase

import (
	"context"
	"errors"
	"strings"

	"campus-assistant/internal/model"
	"campus-assistant/internal/user"
	"campus-assistant/internal/user/repository"
	"campus-assistant/pkg/supabase"
)

func (uc *implUseCase) Register(ctx context.Context, input user.RegisterInput) (user.RegisterOutput, error) {
	email := normalizeEmail(input.Email)
	if err := uc.checkEmailDomain(email); err != nil {
		return user.RegisterOutput{}, err
	}
	if len(input.Password) < user.MinPasswordLength {
		return user.RegisterOutput{}, user.ErrWeakPassword
	}
	username := strings.TrimSpace(input.Username)
	if len(username) < user.MinUsernameLength {
		return user.RegisterOutput{}, user.ErrInvalidUsername
	}

	signUp, err := uc.auth.SignUp(ctx, supabase.SignUpRequest{
		Email:    email,
		Password: input.Password,
		Data: map[string]any{
			"full_name": input.FullName,
			"username":  username,
		},
	})
	if err != nil {
		var apiErr *supabase.APIError
		if errors.As(err, &apiErr) {
			msg := strings.ToLower(apiErr.Message)
			if apiErr.StatusCode == 422 || strings.Contains(msg, "already registered") {
				return user.RegisterOutput{}, user.ErrEmailTaken
			}
			if strings.Contains(msg, "password") {
				return user.RegisterOutput{}, user.ErrWeakPassword
			}
		}
		uc.l.Errorf(ctx, "user.Register: SignUp: %v", err)
		return user.RegisterOutput{}, err
	}

	if err := uc.repo.Insert(ctx, repository.InsertUserOptions{
		Email:    email,
		FullName: input.FullName,
		Username: username,
	}); err != nil {
		if errors.Is(err, repository.ErrUniqueViolation) {
			return user.RegisterOutput{}, user.ErrUsernameTaken
		}
		// the auth user exists at this point; a missing profile row is
		// recoverable on first login, so don't fail the registration
		uc.l.Errorf(ctx, "user.Register: Insert: %v", err)
	}

	return user.RegisterOutput{
		NeedsConfirmation: signUp.Session == nil,
		User: model.User{
			Email:    email,
			FullName: input.FullName,
			Username: username,
			IsActive: true,
		},
	}, nil
}
