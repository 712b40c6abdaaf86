package boltzmann

import (
	"errors"
	"fmt"
)

// Sentinel errors for grammar construction and sampling. Callers branch
// with errors.Is; messages are never matched as strings.
var (
	// ErrMissingOracleEntry indicates the oracle has no value for a
	// requested symbolic expression. Fatal: a programmer error in the
	// grammar or oracle table, never recoverable by the driver.
	ErrMissingOracleEntry = errors.New("boltzmann: missing oracle entry")

	// ErrDegenerateGrammar indicates a Sum sampler whose two branches
	// both evaluate to zero, making the branch probability undefined.
	ErrDegenerateGrammar = errors.New("boltzmann: degenerate grammar")

	// ErrUnknownAlias indicates an Alias (or a top-level Sample/Init
	// call) referenced a rule name absent from the grammar's table.
	ErrUnknownAlias = errors.New("boltzmann: unknown alias")

	// ErrGrammarNotInitialized indicates Sample was called before Init.
	ErrGrammarNotInitialized = errors.New("boltzmann: grammar not initialized")

	// ErrRecursionTooDeep indicates the configured depth budget was
	// exceeded. The rejection driver catches this and retries.
	ErrRecursionTooDeep = errors.New("boltzmann: recursion too deep")

	// ErrBudgetExhausted indicates the rejection driver exceeded its
	// configured maximum number of attempts without accepting a sample.
	ErrBudgetExhausted = errors.New("boltzmann: sampling budget exhausted")

	// ErrBadSeries indicates a Sequence or Cycle sampler whose inner
	// sampler evaluates to >= 1, where the geometric series diverges.
	ErrBadSeries = errors.New("boltzmann: bad series (A.eval >= 1)")

	// ErrCyclicEvaluation indicates Eval recursed back into a rule it
	// was already evaluating at the same (x, y) point without ever
	// bottoming out at an oracle lookup. Real recursive grammars break
	// such cycles by giving the recursive class its own precomputed
	// oracle expression (spec §4.3) rather than asking this engine to
	// solve a fixed point at sample time; this sentinel turns what
	// would otherwise be unrecoverable Go stack exhaustion into a
	// reportable error.
	ErrCyclicEvaluation = errors.New("boltzmann: cyclic evaluation with no oracle terminal")

	// ErrOracleLoadFailed indicates a YAML oracle table could not be
	// read or parsed. Distinct from ErrMissingOracleEntry, which is a
	// lookup miss against an already-loaded table.
	ErrOracleLoadFailed = errors.New("boltzmann: oracle table load failed")

	// ErrInvariantViolation indicates a sampler received a Value shape
	// it does not know how to handle (e.g. LDerFromUDerSampler fed a
	// value that isn't u-derived). Always a grammar construction bug.
	ErrInvariantViolation = errors.New("boltzmann: invariant violation")
)

// wrapf wraps a sentinel with call-site context: "<Method>: <detail>: %w".
func wrapf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("boltzmann: %s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
