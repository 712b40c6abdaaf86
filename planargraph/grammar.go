package planargraph

import (
	"github.com/katalvlaran/lvlath/boltzmann"
	"github.com/katalvlaran/lvlath/hedge"
)

// Grammar is a ready-to-sample two-connected-network grammar: rules
// ZeroNetwork, TrivialEdge, D, G_2_arrow, F, G_2_dy, and G_2_dx,
// grounded on original_source/.../two_connected_decomposition.py's
// rule table (see doc.go for what it supplements and why). Sample the
// root rule through the embedded *boltzmann.Grammar; inspect the
// result's ObjectValue.Object (a *hedge.Network or *hedge.Graph) via
// Arena.
type Grammar struct {
	*boltzmann.Grammar
	Arena *hedge.Arena
}

// New builds the grammar against oracle, which must supply entries for
// the x and y expressions later passed to Sample: the L/U atoms and
// G_2_arrow's divide-by-(1+y) transform look those up directly. The
// rules below never look up a composite expression; the evaluations of
// G_2_arrow, F, G_2_dy, and G_2_dx are computed from those two values.
func New(oracle boltzmann.Oracle, opts ...boltzmann.Option) (*Grammar, error) {
	if oracle == nil {
		return nil, wrapf("New", ErrNilOracle, "oracle is nil")
	}
	arena := hedge.NewArena()
	g := boltzmann.NewGrammar(oracle, opts...)

	zeroCounter := boltzmann.NewCounter()
	asm := &graphAssembler{Arena: arena, Counter: zeroCounter}

	// ZeroNetwork: the grammar's zero atom, built into the trivial
	// bare-edge network by ZeroAtomGraphBuilder.
	g.AddRule("ZeroNetwork", boltzmann.ZeroAtomSampler{})
	g.SetBuilder([]string{"ZeroNetwork"}, NewZeroAtomGraphBuilder(arena))

	// TrivialEdge: the leaf network for rule D's stand-in grammar.
	g.AddRule("TrivialEdge", boltzmann.UAtomSampler{})
	g.SetBuilder([]string{"TrivialEdge"}, NewTrivialEdgeBuilder(arena, zeroCounter))

	// D: a single TrivialEdge, or two TrivialEdge networks joined in
	// series by an explicit bridging l-atom — this package's stand-in
	// for network_decomposition.py's network_grammar() (see doc.go).
	g.AddRule("D", &boltzmann.SumSampler{
		A: boltzmann.Alias("TrivialEdge"),
		B: &boltzmann.ProductSampler{
			A: boltzmann.Alias("TrivialEdge"),
			B: &boltzmann.ProductSampler{
				A: boltzmann.LAtomSampler{},
				B: boltzmann.Alias("TrivialEdge"),
			},
		},
	})
	g.SetBuilder([]string{"D"}, NewDNetworkBuilder(arena))

	// G_2_arrow = Trans(Z() + D, to_G_2_arrow, divide_by_1_plus_y)
	g.AddRule("G_2_arrow", &boltzmann.TransformationSampler{
		A: &boltzmann.SumSampler{
			A: boltzmann.Alias("ZeroNetwork"),
			B: boltzmann.Alias("D"),
		},
		F:             asm.toG2Arrow,
		EvalTransform: divideBy1PlusY(oracle),
	})

	// F = Bij(L()**2 * G_2_arrow, to_G_2)
	g.AddRule("F", &boltzmann.BijectionSampler{
		A: &boltzmann.ProductSampler{
			A: &boltzmann.ProductSampler{A: boltzmann.LAtomSampler{}, B: boltzmann.LAtomSampler{}},
			B: boltzmann.Alias("G_2_arrow"),
		},
		F: asm.toG2,
	})

	// G_2_dy = Trans(F, to_u_derived_class, divide_by_2)
	g.AddRule("G_2_dy", &boltzmann.TransformationSampler{
		A:             boltzmann.Alias("F"),
		F:             toUDerivedClass,
		EvalTransform: divideBy2,
	})

	// G_2_dx = LDerFromUDer(G_2_dy, alpha_l_u=2.0) -- original_source's
	// "# see 5.5" comment on this derivation's acceptance weight.
	g.AddRule("G_2_dx", boltzmann.LDerFromUDer(boltzmann.Alias("G_2_dy"), 2.0))

	if err := g.Init(); err != nil {
		return nil, wrapErr("New", err)
	}
	return &Grammar{Grammar: g, Arena: arena}, nil
}

// toUDerivedClass wraps a value as one u-distinguished atom, the Go
// counterpart of original_source's to_u_derived_class.
func toUDerivedClass(v boltzmann.Value) (boltzmann.Value, error) {
	return &boltzmann.DerivedValue{Kind: boltzmann.DerivedU, Inner: v}, nil
}
