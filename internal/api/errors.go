package api

import (
	"errors"
	"fmt"
)

// ErrAuthExpired is returned on a 401 response. The forum path surfaces it so
// the caller can prompt a re-login; other repositories treat it like any
// other fetch failure.
var ErrAuthExpired = errors.New("session expired, please log in again")

// TransportError wraps failures where no HTTP response was received
// (timeouts, connection refused, DNS).
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("network unavailable: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ServerError is a non-2xx response, optionally carrying the API's
// machine-readable error code.
type ServerError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("server error %d", e.StatusCode)
}

// IsTransport reports whether err is a transport-level failure.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
