package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenNotFound      = errors.New("token not found")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// User errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Profile errors
var (
	ErrProfileNotFound      = errors.New("profile not found")
	ErrProfileAlreadyExists = errors.New("profile already exists")
	ErrMentorNotFound       = errors.New("mentor not found")
)

// Mentorship errors.
// A single "not found or unauthorized" sentinel covers both a missing row and
// a row the caller has no relationship to, so responses never leak whether
// another user's record exists.
var (
	ErrRequestNotFoundOrUnauthorized = errors.New("request not found or unauthorized")
	ErrSessionNotFoundOrUnauthorized = errors.New("session not found or unauthorized")
	ErrSlotNotAvailable              = errors.New("slot outside availability of one or both parties")
	ErrDateAlreadyBooked             = errors.New("date already has a scheduled session")
	ErrAlreadyRated                  = errors.New("session already rated by this user")
)

// Is returns whether target matches err or any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}
