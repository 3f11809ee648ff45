package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "campus-assistant/pkg/errors"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		Success: true,
		Message: MessageSuccess,
		Data:    data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// OKWithMessage sends 200 JSON with data and a custom message.
func OKWithMessage(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, Resp{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Created sends 201 JSON with data.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, Resp{
		Success: true,
		Message: MessageSuccess,
		Data:    data,
	})
}

// Error sends an error response. The HTTP status is taken from the error when
// it is a pkg/errors.HTTPError, 400 otherwise.
func Error(c *gin.Context, err error) {
	c.JSON(pkgErrors.StatusOf(err), Resp{
		Success: false,
		Message: err.Error(),
	})
}

// InternalError sends 500 internal server error with the default message.
func InternalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Resp{
		Success: false,
		Message: DefaultErrorMessage,
	})
}

// Unauthorized sends 401 response.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Resp{
		Success: false,
		Message: "Unauthorized",
	})
}

// Forbidden sends 403 response.
func Forbidden(c *gin.Context, message string) {
	c.JSON(http.StatusForbidden, Resp{
		Success: false,
		Message: message,
	})
}

// TooManyRequests sends 429 response.
func TooManyRequests(c *gin.Context) {
	c.JSON(http.StatusTooManyRequests, Resp{
		Success: false,
		Message: "Too many requests, slow down",
	})
}
