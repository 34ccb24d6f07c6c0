// SPDX-License-Identifier: MIT
// Package diamerr defines the error taxonomy shared across every package in
// this module (§7): ConfigError, IOError, FormatError, InvariantViolation,
// and RemoteFailure. Each is a small typed wrapper so a caller anywhere in
// the pipeline can classify an error with errors.As without caring which
// package produced it.
package diamerr

import (
	"errors"
	"fmt"
)

// Kind classifies an error into one of the five top-level categories.
type Kind int

const (
	// KindConfig covers malformed CLI input, unknown algorithms, and
	// out-of-range parameters — surfaced before any dataflow starts.
	KindConfig Kind = iota
	// KindIO covers missing/unreadable input, failed downloads, disk-full.
	KindIO
	// KindFormat covers corrupt blocks, non-monotonic codes, weights mismatch.
	KindFormat
	// KindInvariant covers bugs: empty collections where a value was
	// required, missing state for a node that should have one.
	KindInvariant
	// KindRemote covers a peer process exiting non-zero.
	KindRemote
)

// String renders the kind as the taxonomy name used in log output.
func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "ConfigError"
	case KindIO:
		return "IOError"
	case KindFormat:
		return "FormatError"
	case KindInvariant:
		return "InvariantViolation"
	case KindRemote:
		return "RemoteFailure"
	default:
		return "UnknownError"
	}
}

// Error is a classified, wrapped error. Op names the component/operation
// that raised it (e.g. "shard.Load", "vflow.Send"); Err is the underlying
// cause, unwrapped via errors.Unwrap.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Op)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Wrap constructs a classified *Error. err may be nil only if the caller
// wants a bare classification (rare; prefer a sentinel in that case).
func Wrap(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// Config wraps err as a ConfigError raised by op.
func Config(op string, err error) *Error { return Wrap(KindConfig, op, err) }

// IO wraps err as an IOError raised by op.
func IO(op string, err error) *Error { return Wrap(KindIO, op, err) }

// Format wraps err as a FormatError raised by op.
func Format(op string, err error) *Error { return Wrap(KindFormat, op, err) }

// Invariant wraps err as an InvariantViolation raised by op.
func Invariant(op string, err error) *Error { return Wrap(KindInvariant, op, err) }

// Remote wraps err as a RemoteFailure raised by op.
func Remote(op string, err error) *Error { return Wrap(KindRemote, op, err) }

// Is lets errors.Is(err, diamerr.KindFormat) work by comparing classified
// kinds rather than identity; callers more commonly use errors.As with a
// *Error and inspect .Kind directly, but this keeps errors.Is usable too.
func (e *Error) Is(target error) bool {
	var other *Error
	if errors.As(target, &other) {
		return e.Kind == other.Kind
	}
	return false
}
