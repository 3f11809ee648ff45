package repository

import (
	"context"

	"campus-assistant/internal/model"
)

// UserRepository defines all data access methods for the user profile table.
type UserRepository interface {
	GetByEmail(ctx context.Context, sc model.Scope, email string) (model.User, error)
	Insert(ctx context.Context, opt InsertUserOptions) error
	UpdateProfile(ctx context.Context, sc model.Scope, opt UpdateProfileOptions) error
	TouchLastLogin(ctx context.Context, sc model.Scope, email string) error
}
