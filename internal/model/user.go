package model

import "time"

// User is a student profile row from the users table.
type User struct {
	Email     string
	FullName  string
	Username  string
	Bio       string
	Branch    string
	Year      string
	Avatar    string // avatar id from the fixed catalog, e.g. "avatar-3"
	IsActive  bool
	CreatedAt time.Time
	LastLogin time.Time
}
