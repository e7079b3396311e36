package plain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoPayload reports a mutation response carrying neither a result object
// nor an error object. The envelope contract says exactly one is present;
// an empty envelope means the response did not match the query.
var ErrNoPayload = errors.New("response carried neither a result nor an error")

// FieldError is a per-field validation detail attached to a mutation error.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

// MutationError is the error half of Plain's mutation result envelope.
// Every mutation returns exactly one of a payload or a MutationError;
// representing "no error" as a nil pointer keeps the two cases distinct
// from a legitimately empty payload.
type MutationError struct {
	Message string       `json:"message"`
	Type    string       `json:"type"`
	Code    string       `json:"code"`
	Fields  []FieldError `json:"fields"`
}

// Error joins the remote message with any per-field validation details
// into one human-readable string.
func (e *MutationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	parts := make([]string, 0, len(e.Fields)+1)
	parts = append(parts, e.Message)
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return strings.Join(parts, "; ")
}

// AsError converts the envelope's error half into an error value. A nil
// receiver means the mutation succeeded.
func (e *MutationError) AsError() error {
	if e == nil {
		return nil
	}
	return e
}
