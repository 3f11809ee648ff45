package user

import (
	"context"

	"campus-assistant/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Auth
	Login(ctx context.Context, input LoginInput) (LoginOutput, error)
	Register(ctx context.Context, input RegisterInput) (RegisterOutput, error)
	Logout(ctx context.Context, sc model.Scope) error
	Session(ctx context.Context, sc model.Scope) (SessionOutput, error)

	// Profile
	GetProfile(ctx context.Context, sc model.Scope) (ProfileOutput, error)
	UpdateProfile(ctx context.Context, sc model.Scope, input UpdateProfileInput) (ProfileOutput, error)
}
