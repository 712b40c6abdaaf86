package boltzmann

import (
	"errors"

	"github.com/google/uuid"
)

func isRecursionTooDeep(err error) bool {
	return errors.Is(err, ErrRecursionTooDeep)
}

// Metric selects which size the rejection driver measures against the
// target window (spec §4.6: "measure u_size (or l_size, per configured
// metric)").
type Metric int

const (
	// MetricUSize measures Value.USize().
	MetricUSize Metric = iota
	// MetricLSize measures Value.LSize().
	MetricLSize
)

// Stats records bookkeeping about one SampleClass call: how many
// attempts it took, and a UUID per attempt (domain-stack wiring of
// github.com/google/uuid, see SPEC_FULL.md) so a caller can correlate
// RecursionTooDeep retries and a final BudgetExhausted failure across
// a log line, without the driver itself doing any logging.
type Stats struct {
	Attempts   int
	AttemptIDs []uuid.UUID
}

// Driver repeatedly samples Grammar's RootName rule at the fixed
// symbolic point (X, Y) and accepts the first result whose measured
// size falls within the target window (spec §4.6).
type Driver struct {
	Grammar     *Grammar
	RootName    string
	X, Y        string
	Metric      Metric
	MaxAttempts int // <= 0 means unbounded
}

// NewDriver constructs a Driver for grammar's rootName rule, fixed at
// the symbolic point (x, y).
func NewDriver(grammar *Grammar, rootName, x, y string, metric Metric, maxAttempts int) *Driver {
	return &Driver{
		Grammar:     grammar,
		RootName:    rootName,
		X:           x,
		Y:           y,
		Metric:      metric,
		MaxAttempts: maxAttempts,
	}
}

// SampleClass repeatedly invokes the grammar's root sampler, discarding
// and retrying on ErrRecursionTooDeep, until the measured size falls in
// [targetSize*(1-tolerance), targetSize*(1+tolerance)] or MaxAttempts is
// exceeded (spec §4.6, §6's "sample_class(class_name, target_size,
// tolerance) -> object").
func (d *Driver) SampleClass(targetSize int, tolerance float64) (Value, Stats, error) {
	lo := float64(targetSize) * (1 - tolerance)
	hi := float64(targetSize) * (1 + tolerance)

	var stats Stats
	for d.MaxAttempts <= 0 || stats.Attempts < d.MaxAttempts {
		stats.Attempts++
		stats.AttemptIDs = append(stats.AttemptIDs, uuid.New())

		val, err := d.Grammar.Sample(d.RootName, d.X, d.Y)
		if err != nil {
			if isRecursionTooDeep(err) {
				continue // discard and retry, per spec §4.6
			}
			return nil, stats, err
		}

		size := val.USize()
		if d.Metric == MetricLSize {
			size = val.LSize()
		}
		if float64(size) >= lo && float64(size) <= hi {
			return val, stats, nil
		}
	}
	return nil, stats, wrapf("SampleClass", ErrBudgetExhausted, "rule %q, %d attempts", d.RootName, stats.Attempts)
}
