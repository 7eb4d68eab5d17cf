package apperrors

import (
	"log"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the failure side of the uniform envelope.
type ErrorResponse struct {
	Success bool      `json:"success"`
	Error   *AppError `json:"error"`
}

// GinErrorHandler renders AppErrors for gin.
type GinErrorHandler struct {
	Debug bool
}

func (h *GinErrorHandler) HandleGinError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
		// The wrapped cause reaches clients only in debug mode.
		if h.Debug && err != nil {
			appErr = appErr.WithDetails(err.Error())
		}
	}

	if appErr.HTTPCode >= 500 {
		log.Printf("Server error: %v", appErr.Unwrap())
	}

	c.JSON(appErr.HTTPCode, ErrorResponse{Success: false, Error: appErr})
}

// debugMode controls whether internal error details reach clients. The
// app sets it from the server environment at startup.
var debugMode = true

// SetDebug switches the redaction of internal errors. Off in production.
func SetDebug(debug bool) {
	debugMode = debug
}

// HandleError is the shorthand used by handlers and middleware.
func HandleError(c *gin.Context, err error) {
	handler := &GinErrorHandler{Debug: debugMode}
	handler.HandleGinError(c, err)
}

// AsAppError attempts to interpret err as an *AppError.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
