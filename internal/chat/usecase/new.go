package usecase

import (
	"time"

	"campus-assistant/internal/chat"
	"campus-assistant/internal/chat/repository"
	"campus-assistant/pkg/gemini"
	pkgLog "campus-assistant/pkg/log"
)

type implUseCase struct {
	l    pkgLog.Logger
	repo repository.CampusRepository
	ai   gemini.IGemini
	now  func() time.Time
}

var _ chat.UseCase = (*implUseCase)(nil)

// New creates a new chat UseCase instance.
func New(l pkgLog.Logger, repo repository.CampusRepository, ai gemini.IGemini) *implUseCase {
	return &implUseCase{
		l:    l,
		repo: repo,
		ai:   ai,
		now:  time.Now,
	}
}
