package boltzmann_test

import (
	"testing"

	"github.com/katalvlaran/lvlath/boltzmann"
)

// TestSingleLAtomRule is spec §8 scenario 1: a grammar with one rule
// R = LAtom yields a single-vertex object with l_size=1, u_size=0.
func TestSingleLAtomRule(t *testing.T) {
	oracle := boltzmann.MapOracle{"x": 1, "y": 1}
	g := boltzmann.NewGrammar(oracle, boltzmann.WithSeed(1))
	g.AddRule("R", boltzmann.LAtomSampler{})
	if err := g.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}

	v, err := g.Sample("R", "x", "y")
	if err != nil {
		t.Fatalf("Sample: %v", err)
	}
	if v.LSize() != 1 || v.USize() != 0 {
		t.Fatalf("LSize/USize = %d/%d; want 1/0", v.LSize(), v.USize())
	}
}

// TestProductOfTwoLAtoms is spec §8 scenario 2: R = LAtom (x) LAtom
// yields l_size=2, u_size=0, with strictly increasing node ids.
func TestProductOfTwoLAtoms(t *testing.T) {
	oracle := boltzmann.MapOracle{"x": 1, "y": 1}
	g := boltzmann.NewGrammar(oracle, boltzmann.WithSeed(2))
	g.AddRule("R", &boltzmann.ProductSampler{A: boltzmann.LAtomSampler{}, B: boltzmann.LAtomSampler{}})
	if err := g.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}

	v, err := g.Sample("R", "x", "y")
	if err != nil {
		t.Fatalf("Sample: %v", err)
	}
	if v.LSize() != 2 || v.USize() != 0 {
		t.Fatalf("LSize/USize = %d/%d; want 2/0", v.LSize(), v.USize())
	}

	prod, ok := v.(*boltzmann.ProductValue)
	if !ok {
		t.Fatalf("Sample result is %T; want *ProductValue", v)
	}
	first := prod.First.(*boltzmann.AtomValue)
	second := prod.Second.(*boltzmann.AtomValue)
	if second.NodeNr <= first.NodeNr {
		t.Errorf("NodeNr not strictly increasing: first=%d second=%d", first.NodeNr, second.NodeNr)
	}
}

// TestSumAlwaysPicksZeroWeightOtherBranch is spec §8 scenario 3: with
// oracle {x:0, y:0.5}, S = Sum(LAtom, UAtom) selects UAtom with
// probability 1.
func TestSumAlwaysPicksZeroWeightOtherBranch(t *testing.T) {
	oracle := boltzmann.MapOracle{"x": 0, "y": 0.5}
	g := boltzmann.NewGrammar(oracle, boltzmann.WithSeed(3))
	g.AddRule("S", &boltzmann.SumSampler{A: boltzmann.LAtomSampler{}, B: boltzmann.UAtomSampler{}})
	if err := g.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}

	for i := 0; i < 20; i++ {
		v, err := g.Sample("S", "x", "y")
		if err != nil {
			t.Fatalf("Sample: %v", err)
		}
		sum := v.(*boltzmann.SumValue)
		if sum.Branch != 1 {
			t.Fatalf("Branch = %d; want 1 (UAtom) on attempt %d", sum.Branch, i)
		}
	}
}

// TestDegenerateGrammarBothBranchesZero covers the §7 failure mode:
// both Sum branches evaluating to zero is fatal.
func TestDegenerateGrammarBothBranchesZero(t *testing.T) {
	oracle := boltzmann.MapOracle{"x": 0, "y": 0}
	g := boltzmann.NewGrammar(oracle, boltzmann.WithSeed(4))
	g.AddRule("S", &boltzmann.SumSampler{A: boltzmann.LAtomSampler{}, B: boltzmann.UAtomSampler{}})
	if err := g.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}

	if _, err := g.Sample("S", "x", "y"); err == nil {
		t.Fatal("expected ErrDegenerateGrammar, got nil")
	}
}

// TestAliasChainResolves checks that Init permits a chain of Alias
// references (the structural-name-resolution cycle guard in
// validateAliases) and that Sample follows it end to end.
func TestAliasChainResolves(t *testing.T) {
	oracle := boltzmann.MapOracle{"x": 0.4, "y": 0.1}
	g := boltzmann.NewGrammar(oracle, boltzmann.WithSeed(5))
	g.AddRule("Leaf", boltzmann.LAtomSampler{})
	g.AddRule("Mid", boltzmann.Alias("Leaf"))
	g.AddRule("Root", boltzmann.Alias("Mid"))

	if err := g.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	v, err := g.Sample("Root", "x", "y")
	if err != nil {
		t.Fatalf("Sample: %v", err)
	}
	if v.LSize() != 1 {
		t.Fatalf("LSize() = %d; want 1", v.LSize())
	}
}

// TestCyclicAliasSampleHitsDepthGuard covers a grammar whose two rules
// reference each other with no terminal: Sample's explicit depth
// counter (not a real stack overflow, which Go cannot recover from)
// turns the runaway recursion into ErrRecursionTooDeep.
func TestCyclicAliasSampleHitsDepthGuard(t *testing.T) {
	oracle := boltzmann.MapOracle{"x": 0.4, "y": 0.1}
	g := boltzmann.NewGrammar(oracle, boltzmann.WithSeed(5), boltzmann.WithMaxDepth(64))
	g.AddRule("A", boltzmann.Alias("B"))
	g.AddRule("B", boltzmann.Alias("A"))
	if err := g.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}

	if _, err := g.Sample("A", "x", "y"); err == nil {
		t.Fatal("expected ErrRecursionTooDeep, got nil")
	}
}

// TestCyclicEvalReportsError covers a grammar whose two rules reference
// each other through Sum (forcing Eval) with no oracle-backed terminal:
// spec leaves GF fixed-point solving to the external oracle, so a live
// Eval cycle is reported as ErrCyclicEvaluation instead of exhausting
// the Go stack.
func TestCyclicEvalReportsError(t *testing.T) {
	oracle := boltzmann.MapOracle{"x": 0.4, "y": 0.1}
	g := boltzmann.NewGrammar(oracle, boltzmann.WithSeed(5))
	g.AddRule("A", &boltzmann.SumSampler{A: boltzmann.LAtomSampler{}, B: boltzmann.Alias("B")})
	g.AddRule("B", &boltzmann.SumSampler{A: boltzmann.UAtomSampler{}, B: boltzmann.Alias("A")})
	if err := g.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}

	if _, err := g.Sample("A", "x", "y"); err == nil {
		t.Fatal("expected ErrCyclicEvaluation, got nil")
	}
}

// TestInitRejectsUnknownAlias ensures Init fails fast on a dangling
// alias reference.
func TestInitRejectsUnknownAlias(t *testing.T) {
	oracle := boltzmann.MapOracle{"x": 1, "y": 1}
	g := boltzmann.NewGrammar(oracle)
	g.AddRule("R", boltzmann.Alias("Missing"))
	if err := g.Init(); err == nil {
		t.Fatal("expected ErrUnknownAlias, got nil")
	}
}

// TestBuilderDispatchAppliesOnNamedRule verifies that a builder
// registered for a rule is invoked even when reached through an Alias.
func TestBuilderDispatchAppliesOnNamedRule(t *testing.T) {
	oracle := boltzmann.MapOracle{"x": 1, "y": 1}
	g := boltzmann.NewGrammar(oracle, boltzmann.WithSeed(6))
	g.AddRule("Leaf", boltzmann.LAtomSampler{})
	g.AddRule("Root", boltzmann.Alias("Leaf"))

	called := false
	g.SetBuilder([]string{"Leaf"}, &boltzmann.HandlerBuilder{
		LAtom: func(a *boltzmann.AtomValue) (boltzmann.Value, error) {
			called = true
			return boltzmann.NewObjectValue("leaf-object", a), nil
		},
	})
	if err := g.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}

	v, err := g.Sample("Root", "x", "y")
	if err != nil {
		t.Fatalf("Sample: %v", err)
	}
	if !called {
		t.Fatal("builder was not invoked through Alias")
	}
	obj, ok := v.(*boltzmann.ObjectValue)
	if !ok || obj.Object != "leaf-object" {
		t.Fatalf("Sample result = %#v; want wrapped leaf-object", v)
	}
}
