package repository

import "errors"

// ErrNoSnapshot means the library_status table has no rows yet.
var ErrNoSnapshot = errors.New("no library snapshot available")
