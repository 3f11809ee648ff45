package repository

import (
	"context"

	"campus-assistant/internal/model"
)

// CampusRepository is the narrow interface to the campus data endpoints.
// Implementations attach the caller's access token from the Scope so
// row-level security applies; the chatbot core never talks to a backend
// directly and is tested against fakes of this interface.
type CampusRepository interface {
	// FreeClassrooms returns the rooms currently free, computed server-side
	// from the current day of week and time. An empty slice is a valid
	// answer, not an error.
	FreeClassrooms(ctx context.Context, sc model.Scope) ([]model.Classroom, error)

	// LibraryStatus returns the single most recent occupancy snapshot.
	LibraryStatus(ctx context.Context, sc model.Scope) (model.LibrarySnapshot, error)

	// SearchFaculty returns faculty whose name contains the query,
	// case-insensitively. May contain duplicates; callers de-duplicate by ID.
	SearchFaculty(ctx context.Context, sc model.Scope, opt SearchFacultyOptions) ([]model.Faculty, error)
}
