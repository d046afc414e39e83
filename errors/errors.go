// Package errors provides error handling for webns.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging generator failures
//   - Error wrapping and context
//   - Hints and details that tell a vocabulary editor what to fix
//
// Usage:
//
//	// Create new error
//	err := errors.Newf("attribute %q has no property", name)
//
//	// Wrap a sentinel so callers can match on it
//	return errors.Wrapf(errors.ErrDuplicateName, "%q (#%d) and %q (#%d)", a, i, b, j)
//
//	// Add hints for users
//	return errors.WithHint(err, "remove one of the entries from the definition file")
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is             = crdb.Is
	IsAny          = crdb.IsAny
	As             = crdb.As
	Unwrap         = crdb.Unwrap
	UnwrapAll      = crdb.UnwrapAll
	GetAllHints    = crdb.GetAllHints
	GetAllDetails  = crdb.GetAllDetails
	FlattenHints   = crdb.FlattenHints
	FlattenDetails = crdb.FlattenDetails
)

// Assertions
var (
	AssertionFailedf = crdb.AssertionFailedf
)

// Sentinel errors for the build-time phase.
// Wrap these with errors.Wrapf() to name the offending entries while preserving the type.
var (
	// ErrInvalidDefinition indicates a malformed entry in a definition file
	ErrInvalidDefinition = New("invalid definition")

	// ErrDuplicateName indicates two names that are equal under ASCII case folding
	ErrDuplicateName = New("duplicate name")

	// ErrDuplicateProperty indicates two attributes mapping to the same property
	ErrDuplicateProperty = New("duplicate property")

	// ErrIdentifierCollision indicates two names normalizing to the same Go identifier
	ErrIdentifierCollision = New("identifier collision")

	// ErrPerfectHash indicates no perfect hash could be built for a key set
	ErrPerfectHash = New("perfect hash construction failed")

	// ErrUnsupportedFormat indicates a definition file whose format version or
	// encoding the loader does not accept
	ErrUnsupportedFormat = New("unsupported definition format")

	// ErrUnknownNamespace indicates a namespace name that is not configured
	ErrUnknownNamespace = New("unknown namespace")

	// ErrStale indicates generated files that no longer match their sources
	ErrStale = New("generated files are out of date")
)

// IsBuildError reports whether err is one of the vocabulary validation failures
// that must abort generation.
func IsBuildError(err error) bool {
	return err != nil && IsAny(err,
		ErrInvalidDefinition,
		ErrDuplicateName,
		ErrDuplicateProperty,
		ErrIdentifierCollision,
		ErrPerfectHash,
		ErrUnsupportedFormat,
	)
}

// IsStaleError checks if an error is or wraps ErrStale
func IsStaleError(err error) bool {
	return err != nil && Is(err, ErrStale)
}
