package usecase

import (
	"context"
	"fmt"
	"math"

	"campus-assistant/internal/chat"
	"campus-assistant/internal/model"
)

// handleLibrary answers occupancy questions from the latest snapshot.
func (uc *implUseCase) handleLibrary(ctx context.Context, sc model.Scope) chat.QueryResult {
	snap, err := uc.repo.LibraryStatus(ctx, sc)
	if err != nil {
		uc.l.Errorf(ctx, "chat.handleLibrary: LibraryStatus failed: %v", err)
		return chat.Unanswered(MsgLibraryUnavailable)
	}
	if snap.TotalSeats <= 0 {
		uc.l.Warnf(ctx, "chat.handleLibrary: snapshot has no seats: %+v", snap)
		return chat.Unanswered(MsgLibraryUnavailable)
	}

	available := snap.TotalSeats - snap.OccupiedSeats
	percent := occupancyPercent(snap.OccupiedSeats, snap.TotalSeats)

	return chat.Answered(fmt.Sprintf(MsgLibraryStatus,
		snap.TotalSeats, available, percent, occupancyMessage(percent)))
}

func occupancyPercent(occupied, total int) int {
	return int(math.Round(float64(occupied) / float64(total) * 100))
}

// occupancyMessage selects the qualitative band. Thresholds are inclusive
// lower bounds checked in descending order.
func occupancyMessage(percent int) string {
	switch {
	case percent >= LibraryPackedThreshold:
		return MsgLibraryPacked
	case percent >= LibraryPrettyFullThreshold:
		return MsgLibraryPrettyFull
	case percent >= LibraryDecentThreshold:
		return MsgLibraryDecent
	default:
		return MsgLibraryChill
	}
}
