package apperrors

import (
	"github.com/gin-gonic/gin"

	"bienesraices/internal/logger"
)

// ErrorResponse is the JSON error envelope for API endpoints.
type ErrorResponse struct {
	Error *AppError `json:"error"`
}

// HandleError writes an AppError as JSON. Only the publication toggle
// endpoint speaks JSON; HTML handlers translate errors into redirects
// or re-rendered forms instead.
func HandleError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}

	if appErr.HTTPCode >= 500 {
		logger.CtxWithError(c.Request.Context(), "server error", appErr)
	}

	c.JSON(appErr.HTTPCode, ErrorResponse{Error: appErr})
}

// AsAppError attempts to unwrap err into an *AppError.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
