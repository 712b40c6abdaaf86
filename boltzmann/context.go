package boltzmann

import "math/rand"

// Context carries the per-attempt state threaded through one call to
// Grammar.Sample: the RNG stream, the vertex counter, the symbolic
// (x, y) point, and the recursion depth counter that stands in for the
// "RecursionTooDeep" failure mode (spec §7) since Go cannot recover
// from a genuine stack overflow.
type Context struct {
	Grammar  *Grammar
	RNG      *rand.Rand
	Counter  *Counter
	X, Y     string
	Depth    int
	MaxDepth int
}

// child returns a copy of ctx with Depth incremented, used each time a
// named rule (including via Alias) is entered.
func (ctx *Context) child() *Context {
	next := *ctx
	next.Depth = ctx.Depth + 1
	return &next
}
