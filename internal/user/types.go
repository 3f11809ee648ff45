package user

import (
	"campus-assistant/internal/model"
)

// --- UseCase Inputs ---

type LoginInput struct {
	Email    string
	Password string
}

type RegisterInput struct {
	Email    string
	Password string
	FullName string
	Username string
}

type UpdateProfileInput struct {
	FullName *string
	Username *string
	Bio      *string
	Branch   *string
	Year     *string
	Avatar   *string
}

// --- UseCase Outputs ---

type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int
	User         model.User
}

type RegisterOutput struct {
	// NeedsConfirmation is set when the auth server requires the user to
	// confirm their email before the first login.
	NeedsConfirmation bool
	User              model.User
}

type SessionOutput struct {
	User model.User
}

type ProfileOutput struct {
	User model.User
}
