// Package dataerr defines the error kinds returned by the table, clean and
// stats packages.
//
// Every error returned by this module wraps exactly one of the sentinels
// below, so callers can classify failures with errors.Is:
//
//	out, err := clean.TrimStrings(t, []string{"name"})
//	switch {
//	case errors.Is(err, dataerr.ErrColumnNotFound):
//	    // unknown column name
//	case errors.Is(err, dataerr.ErrTypeMismatch):
//	    // column holds numbers, not text
//	}
package dataerr

import "github.com/pkg/errors"

var (
	// ErrColumnNotFound is returned when a named column does not exist.
	ErrColumnNotFound = errors.New("column not found")

	// ErrTypeMismatch is returned when a column or sequence has the wrong
	// logical type for an operation.
	ErrTypeMismatch = errors.New("wrong type")

	// ErrInvalidParameter is returned when a value has the right type but is
	// outside the domain an algorithm accepts.
	ErrInvalidParameter = errors.New("invalid parameter")
)

// ColumnNotFound wraps ErrColumnNotFound with the offending name.
func ColumnNotFound(name string) error {
	return errors.Wrapf(ErrColumnNotFound, "column %q", name)
}

// TypeMismatch wraps ErrTypeMismatch with a formatted message.
func TypeMismatch(format string, args ...interface{}) error {
	return errors.Wrapf(ErrTypeMismatch, format, args...)
}

// InvalidParameter wraps ErrInvalidParameter with a formatted message.
func InvalidParameter(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidParameter, format, args...)
}
