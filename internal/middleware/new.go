package middleware

import (
	"context"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"campus-assistant/config"
	"campus-assistant/internal/model"
	"campus-assistant/pkg/log"
	"campus-assistant/pkg/supabase"
)

// TokenVerifier resolves an access token to the authenticated user.
// Satisfied by *supabase.Client.
type TokenVerifier interface {
	GetUser(ctx context.Context, accessToken string) (*supabase.AuthUser, error)
}

type Middleware struct {
	l        log.Logger
	verifier TokenVerifier
	config   *config.Config

	// verified tokens are cached so each request does not round-trip
	// to the auth server
	tokens   *expirable.LRU[string, model.Scope]
	limiters *expirable.LRU[string, *rate.Limiter]
}

func New(l log.Logger, verifier TokenVerifier, cfg *config.Config) Middleware {
	return Middleware{
		l:        l,
		verifier: verifier,
		config:   cfg,
		tokens:   expirable.NewLRU[string, model.Scope](cfg.Auth.TokenCacheSize, nil, cfg.Auth.TokenCacheTTL),
		limiters: expirable.NewLRU[string, *rate.Limiter](cfg.Auth.TokenCacheSize, nil, cfg.Auth.TokenCacheTTL),
	}
}
