// Package boltzmann implements a symbolic Boltzmann-sampling engine: a
// grammar of mutually recursive rules, built from a small closed
// algebra of samplers (atoms, sums, products, sequences, sets, cycles,
// transformations, derivations), evaluated against a read-only oracle
// of generating-function values, and driven by rejection sampling to a
// target size window.
//
// What
//
//   - Value: the tagged union flowing through the grammar (atom,
//     product, sum, derived, or builder-produced domain object), each
//     knowing its own l_size/u_size.
//   - Sampler: the fixed set of algebraic variants (ZeroAtomSampler,
//     LAtomSampler, UAtomSampler, SumSampler, ProductSampler, SetSampler, SequenceSampler,
//     CycleSampler, BijectionSampler, TransformationSampler,
//     LDerFromUDerSampler, AliasSampler).
//   - Oracle: a lookup from symbolic expression strings to nonnegative
//     floats, supplying the weights used for probabilistic branching.
//   - Grammar: a name -> Sampler table with alias resolution and
//     per-rule Builder dispatch.
//   - Driver: repeatedly samples the grammar's root rule and accepts
//     the first result whose size falls in a target window.
//
// Why
//
//   - Decomposition grammars for combinatorial classes are naturally
//     mutually recursive; resolving them eagerly (inlining aliases)
//     would not terminate on cyclic rule sets. Representing Alias as a
//     lazy name lookup, resolved at sample time, sidesteps this (see
//     DESIGN NOTES "Recursive grammar resolution").
//
// Concurrency
//
//	A Grammar owns its RNG, its vertex counter, and its per-(x,y)
//	evaluation cache as confined instance state (never package
//	globals), the same explicit, non-shared *rand.Rand ownership the
//	teacher's own randomized algorithms use. A single Grammar must not
//	be used concurrently from multiple goroutines — sampling is
//	inherently sequential recursive descent (spec §5).
//
// Errors
//
//   - ErrMissingOracleEntry – oracle lacks a required expression (fatal).
//   - ErrDegenerateGrammar  – both Sum branches evaluate to zero (fatal).
//   - ErrUnknownAlias       – Alias references an undeclared rule name.
//   - ErrGrammarNotInitialized – Sample called before Init.
//   - ErrRecursionTooDeep   – depth budget exceeded; recoverable by the driver.
//   - ErrBudgetExhausted    – the rejection driver exceeded MaxAttempts.
//   - ErrBadSeries          – Sequence/Cycle sampler with A.Eval() >= 1.
package boltzmann
