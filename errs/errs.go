// Package errs defines the sentinel errors shared by the buffer, ascii, and
// timer packages. Call sites wrap one of these with fmt.Errorf("%w: ...", ...)
// so callers can test the error kind with errors.Is regardless of the
// specific message attached to it.
package errs

import "errors"

var (
	// ErrOutOfBounds is returned when an access range falls outside a
	// region's capacity (or, for an expandable region, outside its
	// declared maximum).
	ErrOutOfBounds = errors.New("out of bounds")

	// ErrNumberFormat is returned when parsing ASCII digits fails: a
	// non-digit byte, empty input, overflow, or insufficient width for a
	// padded write.
	ErrNumberFormat = errors.New("number format")

	// ErrIllegalArgument is returned for non-power-of-two alignment,
	// tick resolution, or spoke counts, and for other constructor
	// arguments that violate a documented precondition.
	ErrIllegalArgument = errors.New("illegal argument")

	// ErrIllegalState is returned when an operation is invoked while the
	// receiver is in a state that forbids it, e.g. resetting a timer
	// wheel's start time while timers are still scheduled.
	ErrIllegalState = errors.New("illegal state")

	// ErrNotSupported is returned for operations an implementation
	// deliberately does not allow, e.g. wrapping a sub-region of an
	// expandable buffer.
	ErrNotSupported = errors.New("not supported")

	// ErrAllocationFailure is returned when an off-heap or memory-mapped
	// allocation cannot be satisfied by the platform.
	ErrAllocationFailure = errors.New("allocation failure")
)
