package schema

import (
	"errors"
	"fmt"
	"strings"
)

// ErrFieldNotFound is returned when a field name is not declared by the schema.
var ErrFieldNotFound = errors.New("field not found")

// ValidationError represents a single field validation failure.
type ValidationError struct {
	Field  string // Field name
	Reason string // Human-readable reason for failure
	Value  any    // The raw value that failed validation, nil when unset
}

func (e *ValidationError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("field %q: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("field %q: %s (got %v)", e.Field, e.Reason, e.Value)
}

// AggregateError represents multiple validation failures.
type AggregateError struct {
	Errors []error
}

func (e *AggregateError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d validation errors:", len(e.Errors))
	for i, err := range e.Errors {
		fmt.Fprintf(&b, "\n  %d. %s", i+1, err.Error())
	}
	return b.String()
}

func (e *AggregateError) Unwrap() []error { return e.Errors }

// ValidationErrors returns all validation errors if err is an AggregateError.
// Otherwise returns nil.
func ValidationErrors(err error) []error {
	var aggr *AggregateError
	if errors.As(err, &aggr) {
		return aggr.Errors
	}
	return nil
}

// SchemaError reports a malformed schema template or field declaration.
type SchemaError struct {
	Field  string // empty when the problem is not tied to one field
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Field == "" {
		return "schema: " + e.Reason
	}
	return fmt.Sprintf("schema: field %q: %s", e.Field, e.Reason)
}

// FormatError reports a data line whose token count does not match the schema.
type FormatError struct {
	Expected int
	Actual   int
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("incorrect number of fields: expected %d, actual %d", e.Expected, e.Actual)
}
