package user

import "errors"

var (
	ErrInvalidEmailDomain = errors.New("email must belong to the institution domain")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountDeactivated = errors.New("account is deactivated")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrUsernameTaken      = errors.New("username is already taken")
	ErrWeakPassword       = errors.New("password is too short")
	ErrInvalidUsername    = errors.New("username is too short")
	ErrUserNotFound       = errors.New("user not found")
	ErrUnknownAvatar      = errors.New("unknown avatar id")
)
