package supabase

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"campus-assistant/internal/chat/repository"
	"campus-assistant/internal/model"
)

// row shapes as returned by PostgREST

type classroomRow struct {
	RoomNumber string        `json:"room_number"`
	Building   string        `json:"building"`
	Schedules  []scheduleRow `json:"schedules"`
}

type scheduleRow struct {
	DayOfWeek string    `json:"day_of_week"`
	EndTime   time.Time `json:"end_time"`
}

type libraryRow struct {
	TotalSeats    int       `json:"total_seats"`
	OccupiedSeats int       `json:"occupied_seats"`
	LastUpdated   time.Time `json:"last_updated"`
}

type facultyRow struct {
	FacultyID   string `json:"faculty_id"`
	Name        string `json:"name"`
	CabinNumber string `json:"cabin_number"`
	Department  string `json:"department"`
	Email       string `json:"email"`
	IsAvailable bool   `json:"is_available"`
}

// FreeClassrooms queries classrooms joined with today's schedule rows. A room
// is free when it is marked available and today's schedule block has not
// ended yet.
func (r *implRepository) FreeClassrooms(ctx context.Context, sc model.Scope) ([]model.Classroom, error) {
	now := r.now()

	q := url.Values{}
	q.Set("select", "room_number,building,schedules!inner(day_of_week,end_time)")
	q.Set("is_available", "eq.true")
	q.Set("schedules.day_of_week", "eq."+now.Format("Monday"))
	q.Set("schedules.end_time", "gte."+now.Format(time.RFC3339))

	var rows []classroomRow
	if err := r.client.Select(ctx, "classrooms", q, sc.AccessToken, &rows); err != nil {
		return nil, fmt.Errorf("failed to query free classrooms: %w", err)
	}

	rooms := make([]model.Classroom, 0, len(rows))
	for _, row := range rows {
		room := model.Classroom{
			RoomNumber: row.RoomNumber,
			Building:   row.Building,
		}
		if len(row.Schedules) > 0 {
			room.AvailableUntil = row.Schedules[0].EndTime.Local().Format("03:04 PM")
		}
		rooms = append(rooms, room)
	}
	return rooms, nil
}

// LibraryStatus fetches the most recent library_status row.
func (r *implRepository) LibraryStatus(ctx context.Context, sc model.Scope) (model.LibrarySnapshot, error) {
	q := url.Values{}
	q.Set("select", "total_seats,occupied_seats,last_updated")
	q.Set("order", "last_updated.desc")
	q.Set("limit", "1")

	var rows []libraryRow
	if err := r.client.Select(ctx, "library_status", q, sc.AccessToken, &rows); err != nil {
		return model.LibrarySnapshot{}, fmt.Errorf("failed to query library status: %w", err)
	}
	if len(rows) == 0 {
		return model.LibrarySnapshot{}, repository.ErrNoSnapshot
	}

	return model.LibrarySnapshot{
		TotalSeats:    rows[0].TotalSeats,
		OccupiedSeats: rows[0].OccupiedSeats,
		LastUpdated:   rows[0].LastUpdated,
	}, nil
}

// SearchFaculty runs a case-insensitive partial name match on the faculty
// table. Duplicate faculty_id rows are returned as-is; the usecase
// de-duplicates.
func (r *implRepository) SearchFaculty(ctx context.Context, sc model.Scope, opt repository.SearchFacultyOptions) ([]model.Faculty, error) {
	q := url.Values{}
	q.Set("select", "faculty_id,name,cabin_number,department,email,is_available")
	q.Set("name", fmt.Sprintf("ilike.*%s*", opt.Name))

	var rows []facultyRow
	if err := r.client.Select(ctx, "faculty", q, sc.AccessToken, &rows); err != nil {
		return nil, fmt.Errorf("failed to search faculty: %w", err)
	}

	records := make([]model.Faculty, 0, len(rows))
	for _, row := range rows {
		records = append(records, model.Faculty{
			ID:          row.FacultyID,
			Name:        row.Name,
			Cabin:       row.CabinNumber,
			Department:  row.Department,
			Email:       row.Email,
			IsAvailable: row.IsAvailable,
		})
	}
	return records, nil
}
