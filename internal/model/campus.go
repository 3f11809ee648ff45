package model

import "time"

// Classroom is a currently free room as reported by the classroom data
// endpoint. AvailableUntil is a display-ready clock time ("04:00 PM").
type Classroom struct {
	RoomNumber     string
	Building       string
	AvailableUntil string
}

// LibrarySnapshot is the latest library occupancy reading.
type LibrarySnapshot struct {
	TotalSeats    int
	OccupiedSeats int
	LastUpdated   time.Time
}

// Faculty is one faculty record from the faculty search endpoint.
type Faculty struct {
	ID          string // stable faculty identifier, used for de-duplication
	Name        string
	Cabin       string
	Department  string
	Email       string
	IsAvailable bool
}
