package hedge

import (
	"errors"
	"fmt"
)

// Sentinel errors for half-edge arena operations. Callers branch with
// errors.Is; never compare error strings.
var (
	// ErrAlreadyLinked indicates InsertAfter was called with a half-edge
	// that is already spliced into some rotation other than itself.
	ErrAlreadyLinked = errors.New("hedge: half-edge already linked")

	// ErrAlreadyPaired indicates Pair was called on a half-edge that
	// already has an opposite.
	ErrAlreadyPaired = errors.New("hedge: half-edge already paired")

	// ErrUnpaired indicates an operation required a paired half-edge but
	// found an unpaired stub.
	ErrUnpaired = errors.New("hedge: half-edge is unpaired")

	// ErrOutOfRange indicates a HalfEdgeID does not belong to the arena.
	ErrOutOfRange = errors.New("hedge: half-edge id out of range")

	// ErrInvariantViolation indicates CheckInvariants found a broken
	// next/prior/opposite link. This always signals a bug in a bijection
	// or builder, never bad input data.
	ErrInvariantViolation = errors.New("hedge: invariant violation")
)

// wrapf wraps a sentinel with call-site context, matching the lvlath
// convention of "<Method>: <detail>: %w" so errors.Is keeps working.
func wrapf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("hedge: %s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
