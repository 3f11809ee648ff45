package supabase

import (
	"time"

	"campus-assistant/internal/chat/repository"
	pkgLog "campus-assistant/pkg/log"
	pkgSupabase "campus-assistant/pkg/supabase"
)

type implRepository struct {
	client *pkgSupabase.Client
	l      pkgLog.Logger
	now    func() time.Time
}

var _ repository.CampusRepository = (*implRepository)(nil)

// New creates a CampusRepository backed by the Supabase REST API.
func New(client *pkgSupabase.Client, l pkgLog.Logger) *implRepository {
	return &implRepository{
		client: client,
		l:      l,
		now:    time.Now,
	}
}
