package validators

import (
	"errors"
	"sort"
	"strings"
)

var (
	// ErrInvalidRequest is matched by every validation failure.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrPasswordMismatch is returned when a password and its confirmation differ.
	ErrPasswordMismatch = errors.New("passwords do not match")
	// ErrUnsupportedType is returned for values the validator has no rules for.
	ErrUnsupportedType = errors.New("unsupported type for validation")
)

// FieldErrors maps a JSON field name to a human readable problem.
type FieldErrors map[string]string

// ValidationError describes every invalid field of a request.
type ValidationError struct {
	Fields FieldErrors
}

// Error lists fields in a stable order: "birthday: must be a date (YYYY-MM-DD); email: ...".
func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+e.Fields[name])
	}
	return strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidRequest
}
