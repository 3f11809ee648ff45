package repository

import "errors"

var (
	ErrNotFound        = errors.New("user row not found")
	ErrUniqueViolation = errors.New("unique constraint violated")
)
