package boltzmann_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/lvlath/boltzmann"
)

// TestSequenceZeroEvalReturnsEmpty is spec §8 boundary: "Sequence
// sampler with A.eval = 0 always returns an empty product."
func TestSequenceZeroEvalReturnsEmpty(t *testing.T) {
	oracle := boltzmann.MapOracle{"x": 0, "y": 1}
	g := boltzmann.NewGrammar(oracle, boltzmann.WithSeed(9))
	g.AddRule("S", &boltzmann.SequenceSampler{A: boltzmann.LAtomSampler{}})
	if err := g.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}

	v, err := g.Sample("S", "x", "y")
	if err != nil {
		t.Fatalf("Sample: %v", err)
	}
	lv := v.(*boltzmann.ListValue)
	if len(lv.Elements) != 0 {
		t.Fatalf("len(Elements) = %d; want 0", len(lv.Elements))
	}
}

// TestSequenceBadSeries covers ErrBadSeries when A.eval >= 1.
func TestSequenceBadSeries(t *testing.T) {
	oracle := boltzmann.MapOracle{"x": 1, "y": 1}
	g := boltzmann.NewGrammar(oracle, boltzmann.WithSeed(10))
	g.AddRule("S", &boltzmann.SequenceSampler{A: boltzmann.LAtomSampler{}})
	if err := g.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if _, err := g.Sample("S", "x", "y"); !errors.Is(err, boltzmann.ErrBadSeries) {
		t.Fatalf("err = %v; want ErrBadSeries", err)
	}
}

// TestSetSamplerRespectsMinimum checks the Set sampler's truncation
// floor d against a Poisson draw with lambda=0 (degenerate but legal):
// every draw must still be >= d.
func TestSetSamplerRespectsMinimum(t *testing.T) {
	oracle := boltzmann.MapOracle{"x": 0, "y": 1}
	g := boltzmann.NewGrammar(oracle, boltzmann.WithSeed(11))
	g.AddRule("S", &boltzmann.SetSampler{D: 2, A: boltzmann.LAtomSampler{}})
	if err := g.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}

	v, err := g.Sample("S", "x", "y")
	if err != nil {
		t.Fatalf("Sample: %v", err)
	}
	lv := v.(*boltzmann.ListValue)
	if len(lv.Elements) != 2 {
		t.Fatalf("len(Elements) = %d; want exactly 2 (d=2, lambda=0)", len(lv.Elements))
	}
}

// TestLDerFromUDerFlipsKindOnAcceptance exercises the happy path: an
// always-accepting alpha (driven by a deterministic RNG via seed and an
// overwhelmingly large alpha) must flip the derivation kind.
func TestLDerFromUDerFlipsKindOnAcceptance(t *testing.T) {
	oracle := boltzmann.MapOracle{"x": 1, "y": 1}
	g := boltzmann.NewGrammar(oracle, boltzmann.WithSeed(12))

	inner := &boltzmann.TransformationSampler{
		A: boltzmann.LAtomSampler{},
		F: func(v boltzmann.Value) (boltzmann.Value, error) {
			return &boltzmann.DerivedValue{Kind: boltzmann.DerivedU, Inner: v}, nil
		},
		EvalTransform: func(e float64, _, _ string) (float64, error) { return e, nil },
	}
	g.AddRule("UDer", inner)
	g.AddRule("LDer", boltzmann.LDerFromUDer(boltzmann.Alias("UDer"), 1e9))
	if err := g.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}

	v, err := g.Sample("LDer", "x", "y")
	if err != nil {
		t.Fatalf("Sample: %v", err)
	}
	dv := v.(*boltzmann.DerivedValue)
	if dv.Kind != boltzmann.DerivedL {
		t.Fatalf("Kind = %c; want L", dv.Kind)
	}
}

// TestLDerFromUDerRejectsWrongShape checks the invariant-violation
// error path when fed a value that is not u-derived.
func TestLDerFromUDerRejectsWrongShape(t *testing.T) {
	oracle := boltzmann.MapOracle{"x": 1, "y": 1}
	g := boltzmann.NewGrammar(oracle, boltzmann.WithSeed(13))
	g.AddRule("NotDerived", boltzmann.LAtomSampler{})
	g.AddRule("LDer", boltzmann.LDerFromUDer(boltzmann.Alias("NotDerived"), 1.0))
	if err := g.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if _, err := g.Sample("LDer", "x", "y"); !errors.Is(err, boltzmann.ErrInvariantViolation) {
		t.Fatalf("err = %v; want ErrInvariantViolation", err)
	}
}
