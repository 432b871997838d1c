package auth

import (
	"errors"
)

// UnauthorizedError is returned for every authentication failure that must
// surface as 401. Reason is the short, client-visible explanation.
type UnauthorizedError struct {
	Reason string
}

func (e *UnauthorizedError) Error() string {
	return e.Reason
}

var (
	ErrInvalidCredentials = &UnauthorizedError{Reason: "Invalid credentials"}
	ErrMissingToken       = &UnauthorizedError{Reason: "Unauthorized"}
	ErrInvalidToken       = &UnauthorizedError{Reason: "Unauthorized"}
	ErrTokenExpired       = &UnauthorizedError{Reason: "Unauthorized"}
	ErrUserNotFound       = &UnauthorizedError{Reason: "User not found..."}
)

var (
	ErrEmptySecret         = errors.New("token signing secret must not be empty")
	ErrEmailRequired       = errors.New("email is required")
	ErrEmailInvalid        = errors.New("invalid email format")
	ErrPasswordRequired    = errors.New("password is required")
	ErrUnknownScheme       = errors.New("unknown password scheme")
	ErrIdentityUnavailable = errors.New("no authenticated identity on request")
)

// ValidationError wraps malformed request input rejected before any
// credential lookup takes place.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IsUnauthorized reports whether err should be answered with 401.
func IsUnauthorized(err error) bool {
	var ue *UnauthorizedError
	return errors.As(err, &ue)
}

// IsValidation reports whether err should be answered with 400.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Reason returns the client-visible reason for an authentication failure,
// or an empty string when err is not one.
func Reason(err error) string {
	var ue *UnauthorizedError
	if errors.As(err, &ue) {
		return ue.Reason
	}
	return ""
}
