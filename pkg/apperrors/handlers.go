package apperrors

import (
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the standard error body. The top-level "message" field
// duplicates the error message for the frontend contract; "success" is
// always false on the error path.
type ErrorResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	Error   *AppError `json:"error"`
}

// HandleError renders any error into the taxonomy response and aborts
// the request. Non-AppError values are hidden behind a generic 500.
func HandleError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}

	c.AbortWithStatusJSON(appErr.HTTPCode, ErrorResponse{
		Success: false,
		Message: appErr.Message,
		Error:   appErr,
	})
}

// AsAppError attempts to convert an error into *AppError.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
