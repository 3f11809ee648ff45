package usecase

import (
	"context"
	"errors"
	"strings"

	"campus-assistant/internal/model"
	"campus-assistant/internal/user"
	"campus-assistant/internal/user/repository"
)

func (uc *implUseCase) GetProfile(ctx context.Context, sc model.Scope) (user.ProfileOutput, error) {
	profile, err := uc.repo.GetByEmail(ctx, sc, sc.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return user.ProfileOutput{}, user.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "user.GetProfile: GetByEmail: %v", err)
		return user.ProfileOutput{}, err
	}
	return user.ProfileOutput{User: profile}, nil
}

func (uc *implUseCase) UpdateProfile(ctx context.Context, sc model.Scope, input user.UpdateProfileInput) (user.ProfileOutput, error) {
	if input.Username != nil {
		trimmed := strings.TrimSpace(*input.Username)
		if len(trimmed) < user.MinUsernameLength {
			return user.ProfileOutput{}, user.ErrInvalidUsername
		}
		input.Username = &trimmed
	}
	if input.Avatar != nil && !user.ValidAvatar(*input.Avatar) {
		return user.ProfileOutput{}, user.ErrUnknownAvatar
	}

	err := uc.repo.UpdateProfile(ctx, sc, repository.UpdateProfileOptions{
		FullName: input.FullName,
		Username: input.Username,
		Bio:      input.Bio,
		Branch:   input.Branch,
		Year:     input.Year,
		Avatar:   input.Avatar,
	})
	if err != nil {
		if errors.Is(err, repository.ErrUniqueViolation) {
			return user.ProfileOutput{}, user.ErrUsernameTaken
		}
		uc.l.Errorf(ctx, "user.UpdateProfile: UpdateProfile: %v", err)
		return user.ProfileOutput{}, err
	}

	return uc.GetProfile(ctx, sc)
}
