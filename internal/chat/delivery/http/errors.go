package http

import (
	"campus-assistant/internal/chat"
	pkgErrors "campus-assistant/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
// The use case absorbs lookup failures into friendly replies, so the only
// error it surfaces is an empty message.
func (h *handler) mapError(err error) error {
	switch err {
	case chat.ErrEmptyMessage:
		return pkgErrors.NewHTTPError(400, "message must not be empty")
	default:
		return pkgErrors.ErrInternalServer
	}
}
