package apperrors

import "net/http"

// Factories wrapping repository errors.

// ErrNotFound converts a repository miss (gorm.ErrRecordNotFound and
// friends) into a 404 AppError.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists converts a uniqueness conflict into a 409 AppError.
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// Predefined errors for the frequent static cases.

var (
	// ErrUnknownUser is returned at login for an unregistered email.
	ErrUnknownUser = New(CodeInvalidCredentials, "auth", "El usuario no existe", http.StatusUnauthorized)

	// ErrWrongPassword is returned at login when the hash check fails.
	ErrWrongPassword = New(CodeInvalidCredentials, "auth", "El Password es incorrecto", http.StatusUnauthorized)

	// ErrAccountNotConfirmed rejects login before the email was confirmed.
	ErrAccountNotConfirmed = New(CodeNotConfirmed, "auth", "Tu cuenta no ha sido confirmada", http.StatusForbidden)

	// ErrInvalidToken rejects unknown confirmation or reset tokens.
	ErrInvalidToken = New(CodeInvalidToken, "auth", "Invalid token", http.StatusBadRequest)

	// ErrEmailAlreadyExists rejects duplicate registrations.
	ErrEmailAlreadyExists = New(CodeAlreadyExists, "auth", "Email is already registered", http.StatusConflict)

	// ErrWeakPassword rejects passwords below the minimum length.
	ErrWeakPassword = New(CodeValidationFailed, "auth", "Password must be at least 6 characters", http.StatusBadRequest)

	// ErrNotOwner rejects mutations on a listing the user does not own.
	ErrNotOwner = New(CodeForbidden, "propiedades", "Listing does not belong to this user", http.StatusForbidden)

	// ErrAlreadyPublished rejects attaching an image to a published listing.
	ErrAlreadyPublished = New(CodeInvalidOperation, "propiedades", "Listing is already published", http.StatusBadRequest)
)
