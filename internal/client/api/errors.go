package api

import "errors"

// ErrUnauthorized signals that the server rejected the bearer token on an
// authorized call. Callers match it with errors.Is and are expected to
// drop the session.
var ErrUnauthorized = errors.New("unauthorized")

// TransportError wraps a network-level failure (DNS, refused connection,
// broken transfer). The request may or may not have reached the server.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "transport failure: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error { return e.Err }

// ProtocolError reports a response that was not in the expected structured
// format: a non-JSON content type or a body that failed to decode.
type ProtocolError struct {
	Detail string
}

func (e *ProtocolError) Error() string {
	return "unexpected response format: " + e.Detail
}

// AuthenticationError carries the server-supplied message for a rejected
// login or registration attempt.
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string { return e.Message }

// LookupError carries the server-supplied message for a failed city search,
// e.g. an unknown city name.
type LookupError struct {
	Message string
}

func (e *LookupError) Error() string { return e.Message }

// DeletionError reports a failed history entry removal. The entry remains
// on the server.
type DeletionError struct {
	Message string
}

func (e *DeletionError) Error() string { return e.Message }
