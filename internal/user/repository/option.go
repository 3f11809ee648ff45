package repository

// InsertUserOptions holds parameters for creating a new profile row.
type InsertUserOptions struct {
	Email    string
	FullName string
	Username string
	Avatar   string
}

// UpdateProfileOptions holds the profile fields to change. Nil fields are
// left untouched.
type UpdateProfileOptions struct {
	FullName *string
	Username *string
	Bio      *string
	Branch   *string
	Year     *string
	Avatar   *string
}
