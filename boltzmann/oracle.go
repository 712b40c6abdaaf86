package boltzmann

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Oracle is a read-only mapping from symbolic expression strings (in
// parameters x, y — e.g. "x*G_1_dx(x,y)") to nonnegative floats,
// supplying the weights used for probabilistic branching (spec §4.3).
// Implementations may back this by a lookup table or a symbolic
// evaluator; the core only ever reads it.
type Oracle interface {
	Eval(expr string) (float64, error)
}

// MapOracle is the literal "mapping from symbolic expression strings to
// nonnegative floating-point values" contract from spec §4.3.
type MapOracle map[string]float64

// Eval looks up expr, returning ErrMissingOracleEntry on a miss.
func (m MapOracle) Eval(expr string) (float64, error) {
	v, ok := m[expr]
	if !ok {
		return 0, wrapf("MapOracle.Eval", ErrMissingOracleEntry, "expr %q", expr)
	}
	return v, nil
}

// LoadOracleYAML loads a MapOracle from a YAML file: a flat mapping of
// expression string to float. This is the loader for the "numerical
// oracle tables" spec.md §1 calls an external collaborator — kept
// minimal so the engine is runnable standalone in tests without a real
// evaluator (see SPEC_FULL.md, domain stack).
func LoadOracleYAML(path string) (MapOracle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, wrapf("LoadOracleYAML", ErrOracleLoadFailed, "read %q: %v", path, err)
	}
	var table map[string]float64
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, wrapf("LoadOracleYAML", ErrOracleLoadFailed, "parse %q: %v", path, err)
	}
	return MapOracle(table), nil
}

// ParseOracleYAML is like LoadOracleYAML but reads from an in-memory
// document, useful for tests and for embedding small tables.
func ParseOracleYAML(doc []byte) (MapOracle, error) {
	var table map[string]float64
	if err := yaml.Unmarshal(doc, &table); err != nil {
		return nil, wrapf("ParseOracleYAML", ErrOracleLoadFailed, "parse: %v", err)
	}
	return MapOracle(table), nil
}
