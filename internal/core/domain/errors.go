package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Every failure in the pipeline wraps exactly one of
// these, so call sites match with errors.Is instead of parsing text.
var (
	// ErrConfig indicates an invalid run configuration: no input
	// files, negative limit, unknown report, sort key or table
	// format, duplicate report registration.
	ErrConfig = errors.New("invalid configuration")

	// ErrSchema indicates a CSV header that is missing a required
	// column, carries an unexpected column, or cannot be read.
	ErrSchema = errors.New("invalid CSV schema")

	// ErrEncoding indicates a file that decodes under neither
	// UTF-8 nor CP1251.
	ErrEncoding = errors.New("unsupported encoding")

	// ErrData indicates a row that fails field-level validation.
	ErrData = errors.New("invalid data")

	// ErrAccess indicates a missing or unreadable input file.
	ErrAccess = errors.New("file access failed")
)

// Error is a pipeline failure with enough context for an actionable
// single-line message: the file and, where applicable, the 1-based
// data row and the field that failed.
type Error struct {
	// Kind is one of the sentinel errors above.
	Kind error

	// File is the input path, empty for configuration errors.
	File string

	// Row is the 1-based data row number, 0 when not row-scoped.
	Row int

	// Field names the offending column, empty when not field-scoped.
	Field string

	// Message describes what went wrong.
	Message string
}

func (e *Error) Error() string {
	switch {
	case e.File != "" && e.Row > 0 && e.Field != "":
		return fmt.Sprintf("%s: row %d: field %q: %s", e.File, e.Row, e.Field, e.Message)
	case e.File != "" && e.Row > 0:
		return fmt.Sprintf("%s: row %d: %s", e.File, e.Row, e.Message)
	case e.File != "":
		return fmt.Sprintf("%s: %s", e.File, e.Message)
	}
	return e.Message
}

// Unwrap exposes the kind for errors.Is matching.
func (e *Error) Unwrap() error {
	return e.Kind
}

// NewConfigError builds an ErrConfig with a formatted message.
func NewConfigError(format string, args ...any) *Error {
	return &Error{Kind: ErrConfig, Message: fmt.Sprintf(format, args...)}
}

// NewSchemaError builds an ErrSchema scoped to a file.
func NewSchemaError(file, format string, args ...any) *Error {
	return &Error{Kind: ErrSchema, File: file, Message: fmt.Sprintf(format, args...)}
}

// NewEncodingError builds an ErrEncoding scoped to a file.
func NewEncodingError(file, format string, args ...any) *Error {
	return &Error{Kind: ErrEncoding, File: file, Message: fmt.Sprintf(format, args...)}
}

// NewDataError builds an ErrData scoped to a file, row and field.
// Row is 1-based counting data rows; the header is not counted.
func NewDataError(file string, row int, field, format string, args ...any) *Error {
	return &Error{Kind: ErrData, File: file, Row: row, Field: field, Message: fmt.Sprintf(format, args...)}
}

// NewAccessError builds an ErrAccess scoped to a file.
func NewAccessError(file, format string, args ...any) *Error {
	return &Error{Kind: ErrAccess, File: file, Message: fmt.Sprintf(format, args...)}
}
