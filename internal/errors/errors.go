package errors

import (
	"errors"
	"fmt"
)

// Common error types for the API client
var (
	// Request construction errors, raised before anything is dispatched
	ErrInvalidRequest   = errors.New("invalid request")
	ErrMissingParameter = errors.New("missing required parameter")

	// Session errors
	ErrSessionExpired = errors.New("session expired, please log in again")
	ErrTenantRequired = errors.New("tenant id is required")

	// Transport errors
	ErrTransport = errors.New("transport failure")
	ErrDecode    = errors.New("decode response")

	// Persistence errors
	ErrSessionMedium = errors.New("session medium unavailable")
)

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Missing reports a required parameter that was left empty.
func Missing(operation, name string) error {
	return fmt.Errorf("[%s] %s: %w", operation, name, ErrMissingParameter)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
