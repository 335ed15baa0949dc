// Package errors provides error handling for confgen.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - User-facing hints and details
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := doSomething(); err != nil {
//	    return errors.Wrap(err, "failed to do something")
//	}
//
//	// Check errors
//	if errors.Is(err, errors.ErrInconsistentConfig) {
//	    // handle structural mismatch
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	"strings"

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
	Is         = crdb.Is
	IsAny      = crdb.IsAny
	As         = crdb.As
	Unwrap     = crdb.Unwrap
	UnwrapOnce = crdb.UnwrapOnce
	UnwrapAll  = crdb.UnwrapAll
)

// Sentinel errors for use across confgen.
// Use these with errors.Is() for type-safe error checking.
// Wrap these with errors.Wrap() to add context while preserving the type.
var (
	// ErrInconsistentConfig indicates that non-default environment documents
	// disagree on the set of property paths they define
	ErrInconsistentConfig = New("inconsistent configuration structure")

	// ErrMissingConfigDir indicates the configuration directory does not exist
	ErrMissingConfigDir = New("configuration directory not found")

	// ErrEmptyConfigSet indicates the configuration directory contains no
	// eligible environment documents
	ErrEmptyConfigSet = New("no configuration files found")
)

// InconsistencyBanner prefixes the aggregated diagnostics of a structural
// inconsistency failure. Kept stable so callers and tests can match on it.
const InconsistencyBanner = "Environment configuration files are structurally inconsistent:"

// NewInconsistencyError builds the aggregated, user-facing error for a failed
// consistency validation. Every diagnostic is included, one per line, so a
// user can fix all mismatches in one pass.
func NewInconsistencyError(diagnostics []string) error {
	var sb strings.Builder
	sb.WriteString(InconsistencyBanner)
	for _, d := range diagnostics {
		sb.WriteString("\n")
		sb.WriteString(d)
	}
	return Wrap(ErrInconsistentConfig, sb.String())
}

// IsInconsistencyError checks if an error is or wraps ErrInconsistentConfig
func IsInconsistencyError(err error) bool {
	return err != nil && Is(err, ErrInconsistentConfig)
}

// IsMissingConfigDirError checks if an error is or wraps ErrMissingConfigDir
func IsMissingConfigDirError(err error) bool {
	return err != nil && Is(err, ErrMissingConfigDir)
}
