package apperrors

import (
	"log/slog"

	"github.com/gin-gonic/gin"
)

// ErrorEnvelope is the wire format for every failed request:
// {success:false, message, errors?}.
type ErrorEnvelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Errors  interface{} `json:"errors,omitempty"`
}

// HandleError classifies err and writes the error envelope. Anything that is
// not an *AppError is treated as an internal error and its details are hidden
// from the client.
func HandleError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}

	if appErr.HTTPCode >= 500 {
		slog.Error("server error", "error", appErr.Error())
	}

	c.JSON(appErr.HTTPCode, ErrorEnvelope{
		Success: false,
		Message: appErr.Message,
		Errors:  appErr.Details,
	})
}

// AsAppError unwraps err into an *AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
