package boltzmann

import "math"

// expTail computes the tail of the exponential series starting at d:
// e^x - sum_{i<d} x^i/i!. Needed by the Set sampler's Poisson draw and
// by its own Eval. Grounded on original_source/framework/utils.py's
// exp_tail.
func expTail(d int, x float64) float64 {
	result := math.Exp(x)
	term := 1.0 // x^0 / 0!
	for i := 0; i < d; i++ {
		result -= term
		term *= x / float64(i+1)
	}
	return result
}

// poisson draws k >= d from a Poisson(lambda) distribution truncated to
// the d-tail, following spec §4.2's "Poisson with cutoff" pseudocode
// (itself grounded on original_source/framework/utils.py's
// pois/pois_prob). When lambda is 0, or the tail evaluates to 0, all of
// the truncated mass sits on k == d and d is returned.
func poisson(rng randFloater, d int, lambda float64) int {
	u := rng.Float64()
	k := d
	tail := expTail(d, lambda)
	if lambda <= 0 || tail <= 0 {
		return d
	}
	p := poissonTerm(d, lambda) / tail
	s := 0.0
	for {
		s += p
		if s >= u {
			return k
		}
		k++
		p *= lambda / float64(k)
	}
}

// poissonTerm computes lambda^k / k! directly for k == d (the seed term
// poisson's loop then advances multiplicatively).
func poissonTerm(d int, lambda float64) float64 {
	term := 1.0
	for i := 1; i <= d; i++ {
		term *= lambda / float64(i)
	}
	return term
}

// randFloater is the minimal RNG surface the repetition samplers need;
// *rand.Rand satisfies it. Declared as an interface so poisson can be
// unit-tested with a deterministic stub.
type randFloater interface {
	Float64() float64
}

// SetSampler draws k from Poisson(A.eval) truncated to k >= d, then
// samples k independent copies of A (spec §4.2's Set row).
type SetSampler struct {
	D int
	A Sampler
}

func (s *SetSampler) Sample(ctx *Context) (Value, error) {
	lambda, err := s.A.Eval(ctx.Grammar, ctx.X, ctx.Y)
	if err != nil {
		return nil, err
	}
	k := poisson(ctx.RNG, s.D, lambda)
	elems := make([]Value, k)
	for i := 0; i < k; i++ {
		v, err := s.A.Sample(ctx)
		if err != nil {
			return nil, err
		}
		elems[i] = v
	}
	return &ListValue{Variant: ListSet, Elements: elems}, nil
}

func (s *SetSampler) Eval(g *Grammar, x, y string) (float64, error) {
	lambda, err := s.A.Eval(g, x, y)
	if err != nil {
		return 0, err
	}
	return expTail(s.D, lambda), nil
}

// SequenceSampler draws k copies of A with the geometric distribution
// implied by a generating function of 1/(1-A.eval) (spec §4.2's
// Sequence row). Requires A.eval < 1; BadSeries otherwise.
type SequenceSampler struct {
	A Sampler
}

func (s *SequenceSampler) Sample(ctx *Context) (Value, error) {
	a, err := s.A.Eval(ctx.Grammar, ctx.X, ctx.Y)
	if err != nil {
		return nil, err
	}
	if a >= 1 {
		return nil, wrapf("SequenceSampler.Sample", ErrBadSeries, "A.eval=%g", a)
	}
	if a == 0 {
		return &ListValue{Variant: ListSequence}, nil
	}

	// k ~ Geometric: P(k) = a^k * (1-a), drawn by repeated Bernoulli
	// continuation trials (equivalent to the closed form in spec §4.2).
	k := 0
	for ctx.RNG.Float64() < a {
		k++
	}
	elems := make([]Value, k)
	for i := 0; i < k; i++ {
		v, err := s.A.Sample(ctx)
		if err != nil {
			return nil, err
		}
		elems[i] = v
	}
	return &ListValue{Variant: ListSequence, Elements: elems}, nil
}

func (s *SequenceSampler) Eval(g *Grammar, x, y string) (float64, error) {
	a, err := s.A.Eval(g, x, y)
	if err != nil {
		return 0, err
	}
	if a >= 1 {
		return 0, wrapf("SequenceSampler.Eval", ErrBadSeries, "A.eval=%g", a)
	}
	return 1 / (1 - a), nil
}

// CycleSampler is like SequenceSampler but its builder identifies
// rotations of the drawn tuple into a single cycle (spec §4.2's Cycle
// row); its generating function is -log(1-A.eval).
type CycleSampler struct {
	A Sampler
}

func (c *CycleSampler) Sample(ctx *Context) (Value, error) {
	seq := &SequenceSampler{A: c.A}
	v, err := seq.Sample(ctx)
	if err != nil {
		return nil, err
	}
	lv := v.(*ListValue)
	lv.Variant = ListCycle
	return lv, nil
}

func (c *CycleSampler) Eval(g *Grammar, x, y string) (float64, error) {
	a, err := c.A.Eval(g, x, y)
	if err != nil {
		return 0, err
	}
	if a >= 1 {
		return 0, wrapf("CycleSampler.Eval", ErrBadSeries, "A.eval=%g", a)
	}
	return -math.Log(1 - a), nil
}
