package usecase

import (
	"context"
	"errors"

	"campus-assistant/internal/model"
	"campus-assistant/internal/user"
	"campus-assistant/internal/user/repository"
	"campus-assistant/pkg/supabase"
)

func (uc *implUseCase) Login(ctx context.Context, input user.LoginInput) (user.LoginOutput, error) {
	email := normalizeEmail(input.Email)
	if err := uc.checkEmailDomain(email); err != nil {
		return user.LoginOutput{}, err
	}

	signIn, err := uc.auth.SignInWithPassword(ctx, email, input.Password)
	if err != nil {
		var apiErr *supabase.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode >= 400 && apiErr.StatusCode < 500 {
			return user.LoginOutput{}, user.ErrInvalidCredentials
		}
		uc.l.Errorf(ctx, "user.Login: SignInWithPassword: %v", err)
		return user.LoginOutput{}, err
	}

	sc := model.Scope{
		UserID:      signIn.User.ID,
		Email:       email,
		AccessToken: signIn.AccessToken,
	}

	profile, err := uc.repo.GetByEmail(ctx, sc, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return user.LoginOutput{}, user.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "user.Login: GetByEmail: %v", err)
		return user.LoginOutput{}, err
	}
	if !profile.IsActive {
		return user.LoginOutput{}, user.ErrAccountDeactivated
	}

	// best effort, the login itself succeeded
	if err := uc.repo.TouchLastLogin(ctx, sc, email); err != nil {
		uc.l.Warnf(ctx, "user.Login: TouchLastLogin: %v", err)
	}

	return user.LoginOutput{
		AccessToken:  signIn.AccessToken,
		RefreshToken: signIn.RefreshToken,
		ExpiresIn:    signIn.ExpiresIn,
		User:         profile,
	}, nil
}
