package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Closed set of domain errors. The HTTP error handler maps each of these to
// exactly one status code and client-facing message; anything outside this
// set surfaces as a generic server error.
var (
	ErrEmailTaken         = errors.New("user already exists with this email")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrUserNotFound       = errors.New("user not found")
	ErrNoteNotFound       = errors.New("note not found")
)

// FieldError describes a single violated input constraint.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError collects every violated field of a request, not just the
// first one.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}
