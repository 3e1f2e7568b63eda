package api

import (
	"errors"
	"fmt"
)

// The closed set of failure kinds a client operation can produce. Callers
// should match sentinels with errors.Is and *ServerError with errors.As;
// no other error kind escapes the client.
var (
	// ErrInvalidResponse covers transport-level failures: no connectivity,
	// DNS errors, or anything that never yielded an HTTP status code.
	ErrInvalidResponse = errors.New("invalid response")

	// ErrUnauthorized is returned when an authenticated call gets 401/403.
	// The held token has already been cleared by the time callers see it.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrDecoding is returned when a 2xx body does not parse into the
	// expected payload type.
	ErrDecoding = errors.New("decoding error")
)

// ServerError is any other non-2xx outcome. Message carries the decoded
// {success, message} error body when the server sent one, otherwise an
// operation-specific default.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
}
