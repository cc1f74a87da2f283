// Package errors is the narrow error toolkit shared by the server infrastructure: pkg/errors
// annotations that record a stack, and chain matching from the standard library.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

// Is reports whether err or anything it wraps matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// Wrap prefixes err with message and records the caller's stack. Wrap(nil, ...) is nil.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

// WithStack records the caller's stack on err. WithStack(nil) is nil.
func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}
