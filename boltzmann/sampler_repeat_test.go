package boltzmann

import "testing"

// fixedFloat is a deterministic stub RNG for exercising poisson's
// boundary behavior without pulling in math/rand.
type fixedFloat struct{ v float64 }

func (f fixedFloat) Float64() float64 { return f.v }

// TestPoissonZeroLambdaZeroDAlwaysReturnsZero covers the literal
// boundary from spec §8: "Poisson sampler with d=0, lambda=0 always
// returns 0".
func TestPoissonZeroLambdaZeroDAlwaysReturnsZero(t *testing.T) {
	for _, u := range []float64{0, 0.3, 0.999} {
		if got := poisson(fixedFloat{u}, 0, 0); got != 0 {
			t.Errorf("poisson(d=0, lambda=0, u=%v) = %d; want 0", u, got)
		}
	}
}

// TestExpTailMatchesDirectSum sanity-checks exp_tail against a direct
// series evaluation at d=0, x=0, where the full series sums to 1.
func TestExpTailMatchesDirectSum(t *testing.T) {
	got := expTail(0, 0)
	if got != 1 {
		t.Errorf("expTail(0,0) = %v; want 1", got)
	}
}
