package boltzmann

// Sampler is the fixed, closed interface every algebraic variant from
// spec §4.2's table implements. New variants are added by extending
// this file's set, never by open-ended third-party implementations
// (DESIGN NOTES §9, "Polymorphism over sampler kinds").
type Sampler interface {
	// Sample draws one value, recursing through ctx.Grammar for any
	// nested Alias references.
	Sample(ctx *Context) (Value, error)
	// Eval returns this sampler's generating-function value at (x, y),
	// consulting g's oracle (through its memoizing cache) for leaves.
	Eval(g *Grammar, x, y string) (float64, error)
}

// ZeroAtomSampler emits the zero atom; its generating function is the
// constant 1.
type ZeroAtomSampler struct{}

func (ZeroAtomSampler) Sample(*Context) (Value, error) {
	return &AtomValue{Kind: AtomZero}, nil
}
func (ZeroAtomSampler) Eval(*Grammar, string, string) (float64, error) { return 1, nil }

// LAtomSampler emits a fresh labeled atom, drawing a new vertex id from
// the context's counter.
type LAtomSampler struct{}

func (LAtomSampler) Sample(ctx *Context) (Value, error) {
	return &AtomValue{Kind: AtomL, NodeNr: ctx.Counter.Next()}, nil
}
func (LAtomSampler) Eval(g *Grammar, x, _ string) (float64, error) {
	return g.oracleEval(x)
}

// UAtomSampler emits an unlabeled atom.
type UAtomSampler struct{}

func (UAtomSampler) Sample(*Context) (Value, error) {
	return &AtomValue{Kind: AtomU}, nil
}
func (UAtomSampler) Eval(g *Grammar, _, y string) (float64, error) {
	return g.oracleEval(y)
}

// SumSampler chooses between A and B with probability proportional to
// their evaluations, wrapping the result with a branch tag (spec
// §4.2's Sum row).
type SumSampler struct {
	A, B Sampler
}

func (s *SumSampler) Sample(ctx *Context) (Value, error) {
	ea, err := s.A.Eval(ctx.Grammar, ctx.X, ctx.Y)
	if err != nil {
		return nil, err
	}
	eb, err := s.B.Eval(ctx.Grammar, ctx.X, ctx.Y)
	if err != nil {
		return nil, err
	}
	total := ea + eb
	if total <= 0 {
		return nil, wrapf("SumSampler.Sample", ErrDegenerateGrammar, "both branches evaluate to 0 at x=%q y=%q", ctx.X, ctx.Y)
	}

	// A zero-weight branch is chosen with probability exactly 0 or 1;
	// decide deterministically rather than risk rng.Float64() landing
	// on an exact boundary (spec §8 boundary: "Sum with one branch of
	// zero weight deterministically chooses the other").
	p := ea / total
	chooseA := p >= 1 || (p > 0 && ctx.RNG.Float64() <= p)
	if chooseA {
		v, err := s.A.Sample(ctx)
		if err != nil {
			return nil, err
		}
		return &SumValue{Branch: 0, Chosen: v}, nil
	}
	v, err := s.B.Sample(ctx)
	if err != nil {
		return nil, err
	}
	return &SumValue{Branch: 1, Chosen: v}, nil
}

func (s *SumSampler) Eval(g *Grammar, x, y string) (float64, error) {
	ea, err := s.A.Eval(g, x, y)
	if err != nil {
		return 0, err
	}
	eb, err := s.B.Eval(g, x, y)
	if err != nil {
		return 0, err
	}
	return ea + eb, nil
}

// ProductSampler independently samples A then B; the builder installed
// on the owning rule (if any) is responsible for combining them — the
// sampler itself only produces the raw ProductValue pair.
type ProductSampler struct {
	A, B Sampler
}

func (p *ProductSampler) Sample(ctx *Context) (Value, error) {
	va, err := p.A.Sample(ctx)
	if err != nil {
		return nil, err
	}
	vb, err := p.B.Sample(ctx)
	if err != nil {
		return nil, err
	}
	return &ProductValue{First: va, Second: vb}, nil
}

func (p *ProductSampler) Eval(g *Grammar, x, y string) (float64, error) {
	ea, err := p.A.Eval(g, x, y)
	if err != nil {
		return 0, err
	}
	eb, err := p.B.Eval(g, x, y)
	if err != nil {
		return 0, err
	}
	return ea * eb, nil
}

// AliasSampler delegates to a named rule in the owning grammar, resolved
// lazily at sample/eval time rather than inlined — this is what lets
// AddRule accept a mutually recursive rule set (DESIGN NOTES §9,
// "Recursive grammar resolution": a stable name lookup, not eager
// inlining).
type AliasSampler struct {
	Name string
}

func Alias(name string) *AliasSampler { return &AliasSampler{Name: name} }

func (a *AliasSampler) Sample(ctx *Context) (Value, error) {
	return ctx.Grammar.sampleNamed(a.Name, ctx)
}

func (a *AliasSampler) Eval(g *Grammar, x, y string) (float64, error) {
	return g.evalNamed(a.Name, x, y)
}
