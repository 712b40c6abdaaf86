package boltzmann

// BijectionFunc maps one sampled Value onto another without changing
// its size — the structural operations in package bijection are
// typically wrapped this way when installed on a grammar rule.
type BijectionFunc func(Value) (Value, error)

// BijectionSampler samples A, then applies f to the result (spec
// §4.2's Bijection row). Its generating function equals A's.
type BijectionSampler struct {
	A Sampler
	F BijectionFunc
}

func (b *BijectionSampler) Sample(ctx *Context) (Value, error) {
	v, err := b.A.Sample(ctx)
	if err != nil {
		return nil, err
	}
	return b.F(v)
}

func (b *BijectionSampler) Eval(g *Grammar, x, y string) (float64, error) {
	return b.A.Eval(g, x, y)
}

// EvalTransformFunc rescales an inner evaluation into the owning
// Transformation's own generating-function value.
type EvalTransformFunc func(innerEval float64, x, y string) (float64, error)

// TransformationSampler samples A and applies f, with a caller-supplied
// eval transform standing in for the symbolic rewrite a concrete
// grammar encodes (spec §4.2's Transformation row — e.g.
// "divide_by_1_plus_y" / "divide_by_2" in
// original_source/.../two_connected_decomposition.py).
type TransformationSampler struct {
	A             Sampler
	F             BijectionFunc
	EvalTransform EvalTransformFunc
}

func (t *TransformationSampler) Sample(ctx *Context) (Value, error) {
	v, err := t.A.Sample(ctx)
	if err != nil {
		return nil, err
	}
	return t.F(v)
}

func (t *TransformationSampler) Eval(g *Grammar, x, y string) (float64, error) {
	inner, err := t.A.Eval(g, x, y)
	if err != nil {
		return 0, err
	}
	return t.EvalTransform(inner, x, y)
}

// LDerFromUDerSampler converts a u-derived value into an l-derived one
// by acceptance/rejection (spec §4.2's LDerFromUDer row). Alpha is the
// grammar-author-supplied acceptance weight alpha_l_u; its exact
// formula is rule-specific and deliberately left opaque by spec §9's
// "Open question" — callers pass whatever their grammar's combinatorial
// derivation requires (see planargraph, where G_2_dx uses alpha 2.0,
// grounded on original_source's "# see 5.5" comment).
type LDerFromUDerSampler struct {
	A     Sampler
	Alpha float64

	// maxRejections bounds the retry loop so a degenerate alpha cannot
	// spin forever; LDerFromUDer sets it to 100000, and a zero value
	// falls back to the same budget.
	maxRejections int
}

// LDerFromUDer constructs the sampler with the library's default
// rejection budget.
func LDerFromUDer(a Sampler, alpha float64) *LDerFromUDerSampler {
	return &LDerFromUDerSampler{A: a, Alpha: alpha, maxRejections: 100000}
}

func (s *LDerFromUDerSampler) Sample(ctx *Context) (Value, error) {
	budget := s.maxRejections
	if budget <= 0 {
		budget = 100000
	}
	for attempt := 0; attempt < budget; attempt++ {
		v, err := s.A.Sample(ctx)
		if err != nil {
			return nil, err
		}
		dv, ok := v.(*DerivedValue)
		if !ok || dv.Kind != DerivedU {
			return nil, wrapf("LDerFromUDerSampler.Sample", ErrInvariantViolation, "expected a u-derived value, got %T", v)
		}

		l := float64(dv.LSize())
		u := float64(dv.USize())
		denom := s.Alpha*l + u
		if denom <= 0 {
			continue // retry: no valid l-atom to distinguish yet
		}
		p := s.Alpha * l / denom
		if ctx.RNG.Float64() <= p {
			return &DerivedValue{Kind: DerivedL, Inner: dv.Inner}, nil
		}
		// rejected: discard and resample A from scratch
	}
	return nil, wrapf("LDerFromUDerSampler.Sample", ErrRecursionTooDeep, "exceeded %d rejections", budget)
}

// Eval delegates to A's evaluation. The precise l-from-u derivation
// formula is rule-specific (spec §9's open question); grammars that
// need an exact symbolic rewrite should wrap this sampler in a
// TransformationSampler instead of relying on this approximation.
func (s *LDerFromUDerSampler) Eval(g *Grammar, x, y string) (float64, error) {
	return s.A.Eval(g, x, y)
}
