package supabase

import (
	"time"

	"campus-assistant/internal/user/repository"
	"campus-assistant/pkg/log"
	pkgSupabase "campus-assistant/pkg/supabase"
)

type implRepository struct {
	client *pkgSupabase.Client
	l      log.Logger
	now    func() time.Time
}

var _ repository.UserRepository = (*implRepository)(nil)

// New creates a supabase-backed user repository.
func New(client *pkgSupabase.Client, l log.Logger) *implRepository {
	return &implRepository{
		client: client,
		l:      l,
		now:    time.Now,
	}
}
