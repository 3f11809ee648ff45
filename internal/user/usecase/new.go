package usecase

import (
	"context"

	"campus-assistant/config"
	"campus-assistant/internal/user"
	"campus-assistant/internal/user/repository"
	"campus-assistant/pkg/log"
	"campus-assistant/pkg/supabase"
)

// AuthProvider is the slice of the auth server API the use case needs.
// Satisfied by *supabase.Client.
type AuthProvider interface {
	SignInWithPassword(ctx context.Context, email, password string) (*supabase.SignInResponse, error)
	SignUp(ctx context.Context, req supabase.SignUpRequest) (*supabase.SignUpResponse, error)
	GetUser(ctx context.Context, accessToken string) (*supabase.AuthUser, error)
	SignOut(ctx context.Context, accessToken string) error
}

// implUseCase is the private implementation of user.UseCase.
type implUseCase struct {
	l    log.Logger
	repo repository.UserRepository
	auth AuthProvider
	cfg  config.AuthConfig
}

var _ user.UseCase = (*implUseCase)(nil)

// New creates a new user UseCase implementation.
func New(l log.Logger, repo repository.UserRepository, auth AuthProvider, cfg config.AuthConfig) *implUseCase {
	return &implUseCase{
		l:    l,
		repo: repo,
		auth: auth,
		cfg:  cfg,
	}
}
