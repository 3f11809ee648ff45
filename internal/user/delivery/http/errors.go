package http

import (
	"campus-assistant/internal/user"
	pkgErrors "campus-assistant/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case user.ErrInvalidEmailDomain:
		return pkgErrors.NewHTTPError(400, "only institutional email addresses are allowed")
	case user.ErrWeakPassword:
		return pkgErrors.NewHTTPError(400, "password must be at least 6 characters")
	case user.ErrInvalidUsername:
		return pkgErrors.NewHTTPError(400, "username must be at least 3 characters")
	case user.ErrUnknownAvatar:
		return pkgErrors.NewHTTPError(400, "unknown avatar")
	case user.ErrInvalidCredentials:
		return pkgErrors.NewHTTPError(401, "invalid email or password")
	case user.ErrAccountDeactivated:
		return pkgErrors.NewHTTPError(403, "account is deactivated")
	case user.ErrUserNotFound:
		return pkgErrors.NewHTTPError(404, "user not found")
	case user.ErrEmailTaken:
		return pkgErrors.NewHTTPError(409, "email is already registered")
	case user.ErrUsernameTaken:
		return pkgErrors.NewHTTPError(409, "username is already taken")
	default:
		return pkgErrors.ErrInternalServer
	}
}
