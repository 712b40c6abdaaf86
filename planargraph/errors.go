package planargraph

import (
	"errors"
	"fmt"
)

// Sentinel errors, checkable with errors.Is per the rest of this
// module's house style.
var (
	ErrUnexpectedValue = errors.New("planargraph: unexpected value shape")
	ErrNilOracle       = errors.New("planargraph: nil oracle")
	ErrNilArena        = errors.New("planargraph: nil arena")
)

// wrapf builds a sentinel-wrapped error with call-site context, the
// same idiom package bijection and package boltzmann use.
func wrapf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("planargraph: %s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}

// wrapErr forwards an already-sentinel-wrapped error from a dependency
// package, adding call-site context without masking its errors.Is
// target.
func wrapErr(method string, err error) error {
	return fmt.Errorf("planargraph: %s: %w", method, err)
}
