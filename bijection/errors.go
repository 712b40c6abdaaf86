package bijection

import (
	"errors"
	"fmt"
)

// Sentinel errors for structural half-edge bijections. Callers branch
// with errors.Is; never compare error strings.
var (
	// ErrNilNetwork indicates a required *hedge.Network argument was nil.
	ErrNilNetwork = errors.New("bijection: network is nil")

	// ErrNilGraph indicates a required *hedge.Graph argument was nil.
	ErrNilGraph = errors.New("bijection: graph is nil")

	// ErrRootEdge indicates an operation was asked to substitute or
	// otherwise retire the graph's own root edge, which every bijection
	// in this package treats as immovable.
	ErrRootEdge = errors.New("bijection: edge is the graph's root edge")

	// ErrEmptyColorClass indicates PrimalMap found no edge whose both
	// endpoints carry the requested color.
	ErrEmptyColorClass = errors.New("bijection: color class induces no edges")

	// ErrRootNotInColorClass indicates PrimalMap's source root half-edge
	// does not belong to the requested color class, so the extracted
	// sub-map would have no natural root.
	ErrRootNotInColorClass = errors.New("bijection: root half-edge not in requested color class")

	// ErrUnclosedDissection indicates CloseIrreducibleDissection finished
	// its walk with stubs still unmatched; the color sequence supplied
	// was not a valid dissection tree.
	ErrUnclosedDissection = errors.New("bijection: dissection left unmatched stubs")
)

// wrapf wraps a sentinel with call-site context, matching the
// hedge/boltzmann convention of "<Method>: <detail>: %w" so errors.Is
// keeps working.
func wrapf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("bijection: %s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}

// wrapErr forwards an error returned by the hedge package (already a
// wrapped sentinel) with this package's call-site context, preserving
// errors.Is against the original hedge sentinel.
func wrapErr(method string, err error) error {
	return fmt.Errorf("bijection: %s: %w", method, err)
}
