package errors

import (
	"errors"
	"fmt"
)

// FormatError means the byte stream cannot be decoded or tokenized into a
// rectangular table at all. It is terminal for the request; the caller must
// supply a different file. Detail carries enough context to fix the input
// (attempted encodings, attempted delimiters, a sample of the offending
// line).
type FormatError struct {
	Reason string
	Detail string
}

func (e *FormatError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("format error: %s", e.Reason)
	}
	return fmt.Sprintf("format error: %s (%s)", e.Reason, e.Detail)
}

// NewFormatError builds a FormatError with a formatted detail string.
func NewFormatError(reason, detailFormat string, args ...interface{}) *FormatError {
	return &FormatError{Reason: reason, Detail: fmt.Sprintf(detailFormat, args...)}
}

// SchemaError means the table decodes but the minimum identifying
// columns or rows (company, period, line item) cannot be located.
type SchemaError struct {
	Reason  string
	Columns []string
}

func (e *SchemaError) Error() string {
	if len(e.Columns) == 0 {
		return fmt.Sprintf("schema error: %s", e.Reason)
	}
	return fmt.Sprintf("schema error: %s (columns: %v)", e.Reason, e.Columns)
}

// As re-exports errors.As so callers need not import both packages.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// IsFormatError reports whether err wraps a FormatError.
func IsFormatError(err error) bool {
	var fe *FormatError
	return errors.As(err, &fe)
}

// IsSchemaError reports whether err wraps a SchemaError.
func IsSchemaError(err error) bool {
	var se *SchemaError
	return errors.As(err, &se)
}
