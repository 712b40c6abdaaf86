package boltzmann

import (
	"fmt"
	"math/rand"
)

const defaultMaxDepth = 100000

// Grammar holds a name -> Sampler table with alias resolution and
// per-rule Builder dispatch (spec §4.4). It owns, as confined instance
// state rather than package globals, the RNG, the vertex counter, and
// a per-(x,y) evaluation cache that Init resets, so it lives from one
// Init call to the next (spec §4.3: "memoize derived evaluations ... for the duration of one
// grammar initialization").
type Grammar struct {
	oracle    Oracle
	rules     map[string]Sampler
	builders  map[string]Builder
	rng       *rand.Rand
	counter   *Counter
	maxDepth  int
	evalCache map[string]float64
	evalBusy  map[string]bool
	resolved  bool
}

// NewGrammar constructs an empty grammar reading from oracle. Rules are
// added with AddRule and must be finalized with Init before Sample is
// callable.
func NewGrammar(oracle Oracle, opts ...Option) *Grammar {
	g := &Grammar{
		oracle:    oracle,
		rules:     make(map[string]Sampler),
		builders:  make(map[string]Builder),
		counter:   NewCounter(),
		maxDepth:  defaultMaxDepth,
		evalCache: make(map[string]float64),
		evalBusy:  make(map[string]bool),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(1))
	}
	return g
}

// AddRule installs sampler under name. Calling AddRule after Init
// invalidates resolution; callers must call Init again.
func (g *Grammar) AddRule(name string, s Sampler) {
	g.rules[name] = s
	g.resolved = false
}

// SetBuilder registers b against every name in names; when one of those
// rules produces a value, b.Build is invoked on it (spec §4.4,
// "Builder dispatch").
func (g *Grammar) SetBuilder(names []string, b Builder) {
	for _, name := range names {
		g.builders[name] = b
	}
}

// Init walks every rule's Alias references and verifies they resolve
// against the rule table. Cycles are permitted — resolution is a name
// lookup at sample time, never eager inlining (DESIGN NOTES §9); Init
// only rejects references to names that do not exist anywhere in the
// table.
func (g *Grammar) Init() error {
	for name, s := range g.rules {
		if err := validateAliases(s, g.rules, map[string]bool{name: true}); err != nil {
			return err
		}
	}
	g.evalCache = make(map[string]float64)
	g.evalBusy = make(map[string]bool)
	g.resolved = true
	return nil
}

// validateAliases walks s's structure, recursing into composite
// samplers, and checks that every AliasSampler names a declared rule.
// path guards against infinite recursion on legitimate grammar cycles.
func validateAliases(s Sampler, rules map[string]Sampler, path map[string]bool) error {
	switch t := s.(type) {
	case *AliasSampler:
		next, ok := rules[t.Name]
		if !ok {
			return wrapf("Init", ErrUnknownAlias, "alias %q", t.Name)
		}
		if path[t.Name] {
			return nil // already validated this branch of the cycle
		}
		path[t.Name] = true
		return validateAliases(next, rules, path)
	case *SumSampler:
		if err := validateAliases(t.A, rules, path); err != nil {
			return err
		}
		return validateAliases(t.B, rules, path)
	case *ProductSampler:
		if err := validateAliases(t.A, rules, path); err != nil {
			return err
		}
		return validateAliases(t.B, rules, path)
	case *SetSampler:
		return validateAliases(t.A, rules, path)
	case *SequenceSampler:
		return validateAliases(t.A, rules, path)
	case *CycleSampler:
		return validateAliases(t.A, rules, path)
	case *BijectionSampler:
		return validateAliases(t.A, rules, path)
	case *TransformationSampler:
		return validateAliases(t.A, rules, path)
	case *LDerFromUDerSampler:
		return validateAliases(t.A, rules, path)
	default:
		// ZeroAtomSampler, LAtomSampler, UAtomSampler and any future
		// leaf variant: nothing to resolve.
		return nil
	}
}

// Sample delegates to the named root rule, propagating the symbolic
// (x, y) point to every nested rule and applying that rule's builder,
// if any (spec §4.4, "sample(name, x, y) -> value").
func (g *Grammar) Sample(name, x, y string) (Value, error) {
	if !g.resolved {
		return nil, ErrGrammarNotInitialized
	}
	ctx := &Context{
		Grammar:  g,
		RNG:      g.rng,
		Counter:  g.counter,
		X:        x,
		Y:        y,
		Depth:    0,
		MaxDepth: g.maxDepth,
	}
	return g.sampleNamed(name, ctx)
}

// sampleNamed resolves name against the rule table, samples it under a
// depth-incremented context, and applies the rule's builder. Every
// AliasSampler delegates here so builder dispatch is uniform regardless
// of nesting depth (spec §4.4, "Builder dispatch").
func (g *Grammar) sampleNamed(name string, ctx *Context) (Value, error) {
	rule, ok := g.rules[name]
	if !ok {
		return nil, wrapf("Sample", ErrUnknownAlias, "rule %q", name)
	}
	nested := ctx.child()
	if nested.Depth > nested.MaxDepth {
		return nil, wrapf("Sample", ErrRecursionTooDeep, "rule %q at depth %d", name, nested.Depth)
	}

	val, err := rule.Sample(nested)
	if err != nil {
		return nil, err
	}

	b, ok := g.builders[name]
	if !ok {
		return val, nil
	}
	return b.Build(val)
}

// evalNamed returns rule name's generating-function value at (x, y),
// memoized until the next Init call.
func (g *Grammar) evalNamed(name, x, y string) (float64, error) {
	key := name + "|" + x + "|" + y
	if v, ok := g.evalCache[key]; ok {
		return v, nil
	}
	if g.evalBusy[key] {
		return 0, wrapf("Eval", ErrCyclicEvaluation, "rule %q at x=%q y=%q", name, x, y)
	}
	rule, ok := g.rules[name]
	if !ok {
		return 0, wrapf("Eval", ErrUnknownAlias, "rule %q", name)
	}

	g.evalBusy[key] = true
	v, err := rule.Eval(g, x, y)
	delete(g.evalBusy, key)
	if err != nil {
		return 0, err
	}
	g.evalCache[key] = v
	return v, nil
}

// oracleEval is the leaf-level lookup LAtomSampler/UAtomSampler use.
func (g *Grammar) oracleEval(expr string) (float64, error) {
	key := fmt.Sprintf("@oracle|%s", expr)
	if v, ok := g.evalCache[key]; ok {
		return v, nil
	}
	v, err := g.oracle.Eval(expr)
	if err != nil {
		return 0, err
	}
	g.evalCache[key] = v
	return v, nil
}
