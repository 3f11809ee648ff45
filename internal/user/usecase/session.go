package usecase

import (
	"context"
	"errors"

	"campus-assistant/internal/model"
	"campus-assistant/internal/user"
	"campus-assistant/internal/user/repository"
)

// Session returns the profile backing the current access token. Used by the
// frontend to restore state after a page reload.
func (uc *implUseCase) Session(ctx context.Context, sc model.Scope) (user.SessionOutput, error) {
	profile, err := uc.repo.GetByEmail(ctx, sc, sc.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return user.SessionOutput{}, user.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "user.Session: GetByEmail: %v", err)
		return user.SessionOutput{}, err
	}
	if !profile.IsActive {
		return user.SessionOutput{}, user.ErrAccountDeactivated
	}
	return user.SessionOutput{User: profile}, nil
}

// Logout revokes the token server-side. Revocation failures are logged only;
// the client discards its token either way.
func (uc *implUseCase) Logout(ctx context.Context, sc model.Scope) error {
	if err := uc.auth.SignOut(ctx, sc.AccessToken); err != nil {
		uc.l.Warnf(ctx, "user.Logout: SignOut: %v", err)
	}
	return nil
}
