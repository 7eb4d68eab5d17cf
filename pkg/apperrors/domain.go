package apperrors

import (
	"net/http"
)

/*
Factories and predefined values for domain errors shared across services.
*/

// ErrNotFound converts a repository miss (gorm.ErrRecordNotFound and
// friends) into a 404.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists converts a storage uniqueness violation into a 409.
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrConflict is the general 409 factory.
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrInvalidOperation is the general 400 factory for business-rule breaks.
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// --- Auth ---

// ErrInvalidCredentials covers a wrong password on login. A missing user is
// reported separately as NotFound, which the login surface preserves.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid credentials",
	http.StatusUnauthorized,
)

// ErrInvalidUserRole rejects a requested role outside the declared set.
// This runs before persistence, independent of any role gate.
var ErrInvalidUserRole = New(
	CodeInvalidOperation,
	"auth",
	"Requested role is not a valid role",
	http.StatusBadRequest,
)

var ErrTokenExpired = New(
	CodeTokenExpired,
	"auth",
	"Session has expired, please sign in again",
	http.StatusUnauthorized,
)

var ErrTokenInvalid = New(
	CodeInvalidToken,
	"auth",
	"Authentication token is invalid",
	http.StatusUnauthorized,
)

var ErrTokenMissing = New(
	CodeUnauthorized,
	"auth",
	"Authentication token required",
	http.StatusUnauthorized,
)

// ErrAccountInactive maps a deactivated account to 401, not 403: a token
// for an inactive user must behave as unauthenticated.
var ErrAccountInactive = New(
	CodeUnauthorized,
	"auth",
	"Account has been deactivated",
	http.StatusUnauthorized,
)

var ErrInsufficientRole = New(
	CodeForbidden,
	"auth",
	"Insufficient role for this operation",
	http.StatusForbidden,
)

// --- Uploads ---

// ErrUnsupportedMediaType rejects anything that is not the expected
// content type for the endpoint (PDF for trabajos, images for fotos).
var ErrUnsupportedMediaType = New(
	CodeUnsupportedMedia,
	"upload",
	"The provided file type is not allowed",
	http.StatusBadRequest,
)

var ErrFileTooLarge = New(
	CodeFileTooLarge,
	"upload",
	"File size exceeds the allowed limit",
	http.StatusRequestEntityTooLarge,
)

var ErrFileMissing = New(
	CodeValidationFailed,
	"upload",
	"No file was attached to the request",
	http.StatusBadRequest,
)
