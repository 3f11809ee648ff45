package repository

// SearchFacultyOptions holds the parameters for a faculty search.
type SearchFacultyOptions struct {
	Name string // partial name, matched case-insensitively
}
