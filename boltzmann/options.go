package boltzmann

import "math/rand"

// Option configures a Grammar via functional arguments, following the
// lvlath convention (builder.BuilderOption, bfs.Option): option
// constructors validate and panic on meaningless input, while the
// grammar's own sampling methods never panic.
type Option func(*Grammar)

// WithRand attaches an explicit RNG. Panics on nil — prefer WithSeed
// for reproducible runs without managing a *rand.Rand yourself.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("boltzmann: WithRand(nil)")
	}
	return func(g *Grammar) { g.rng = r }
}

// WithSeed creates a new deterministic *rand.Rand from seed.
func WithSeed(seed int64) Option {
	return func(g *Grammar) { g.rng = rand.New(rand.NewSource(seed)) }
}

// WithMaxDepth overrides the recursion-depth budget that stands in for
// "RecursionTooDeep" (spec §7); the default is 100000. Panics on a
// non-positive value.
func WithMaxDepth(depth int) Option {
	if depth <= 0 {
		panic("boltzmann: WithMaxDepth(<=0)")
	}
	return func(g *Grammar) { g.maxDepth = depth }
}
