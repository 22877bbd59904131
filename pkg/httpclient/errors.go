package httpclient

import (
	"errors"
	"fmt"
)

// ErrUnsupportedMethod is returned when anything other than GET or POST
// reaches the request builder.
var ErrUnsupportedMethod = errors.New("method must be GET or POST")

// ErrBodyRead marks a failure draining the response body after the
// status line was already received. It always arrives wrapped inside a
// TransportError.
var ErrBodyRead = errors.New("read response body")

// TransportError wraps an engine failure (connection refused, DNS,
// timeout, stream interruption) together with the outbound request it
// belongs to. There is no partial success: a call either yields a full
// Response or a TransportError.
type TransportError struct {
	Request Sent
	Err     error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Request.Method, e.Request.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
