package executor

import (
	"errors"
	"fmt"

	"github.com/jrsteele09/ainote-client/apierrors"
	clienterrors "github.com/jrsteele09/ainote-client/internal/errors"
)

// Re-exported so callers outside the module can match construction and
// session failures with errors.Is.
var (
	ErrInvalidRequest   = clienterrors.ErrInvalidRequest
	ErrMissingParameter = clienterrors.ErrMissingParameter
	ErrSessionExpired   = clienterrors.ErrSessionExpired
	ErrTransport        = clienterrors.ErrTransport
	ErrDecode           = clienterrors.ErrDecode
)

// SessionExpiredError is the reauthenticate signal. By the time it is
// returned the session store has already been cleared.
type SessionExpiredError struct {
	Method Method
	Path   string
	Status int
	Cause  *apierrors.Error // set when the backend sent a structured body
}

func (e *SessionExpiredError) Error() string {
	return fmt.Sprintf("[%s %s] %v", e.Method, e.Path, ErrSessionExpired)
}

func (e *SessionExpiredError) Unwrap() error {
	return ErrSessionExpired
}

// TransportError covers network failures and non-2xx responses that do not
// carry a structured error body.
type TransportError struct {
	Method  Method
	Path    string
	Status  int    // 0 when no response was received
	Message string // server "message" field, if the body had one
	Err     error
}

func (e *TransportError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("[%s %s] %v: %v", e.Method, e.Path, ErrTransport, e.Err)
	case e.Message != "":
		return fmt.Sprintf("[%s %s] HTTP %d: %s", e.Method, e.Path, e.Status, e.Message)
	default:
		return fmt.Sprintf("[%s %s] HTTP %d", e.Method, e.Path, e.Status)
	}
}

func (e *TransportError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrTransport}
	}
	return []error{ErrTransport, e.Err}
}

// IsSessionExpired reports whether err is the reauthenticate signal.
func IsSessionExpired(err error) bool {
	return errors.Is(err, ErrSessionExpired)
}

// StatusOf returns the HTTP status attached to err, or 0.
func StatusOf(err error) int {
	var expired *SessionExpiredError
	if errors.As(err, &expired) {
		return expired.Status
	}
	if apiErr, ok := apierrors.As(err); ok {
		return apiErr.Status
	}
	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return transportErr.Status
	}
	return 0
}
