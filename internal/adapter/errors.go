package adapter

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgerrcode"
)

var (
	// ErrNotConfigured is returned when no API key is configured.
	ErrNotConfigured = errors.New("service role key is not configured")
	// ErrUnavailable wraps transport failures: DNS, connection, timeout.
	ErrUnavailable = errors.New("remote service unavailable")
	// ErrUpstream is matched by every non-2xx upstream response.
	ErrUpstream = errors.New("remote service returned an error")
	// ErrDuplicate is matched by upstream unique violations (SQLSTATE 23505).
	ErrDuplicate = errors.New("duplicate record")
	// ErrDecode is returned when a 2xx body cannot be decoded.
	ErrDecode = errors.New("unexpected remote response")
)

// UpstreamError is a non-2xx response from the remote service.
type UpstreamError struct {
	// StatusCode is the upstream HTTP status.
	StatusCode int
	// Body is the upstream response body, trimmed.
	Body string
	// Code is the PostgREST/Postgres error code from the JSON body, if any.
	Code string
}

func (e *UpstreamError) Error() string {
	body := e.Body
	if body == "" {
		body = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("upstream %d: %s", e.StatusCode, body)
}

// Unwrap lets callers match [ErrUpstream] or, for unique violations,
// [ErrDuplicate] with errors.Is.
func (e *UpstreamError) Unwrap() error {
	if e.Code == pgerrcode.UniqueViolation {
		return ErrDuplicate
	}
	return ErrUpstream
}

// Detail is the message mirrored to inbound clients.
func (e *UpstreamError) Detail() string {
	if e.Body == "" {
		return http.StatusText(e.StatusCode)
	}
	return e.Body
}
