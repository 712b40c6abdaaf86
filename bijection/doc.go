// Package bijection implements the structural half-edge operations that
// glue sampler sub-results into larger planar structures: series and
// parallel network composition, edge substitution, the primal-map
// extraction, and irreducible-dissection closure.
//
// What: every exported function takes a *hedge.Arena plus domain
// arguments. MergeInSeries and MergeInParallel mutate the arena and
// return the merged hedge.Network; SubstituteEdgeByNetwork and
// CloseIrreducibleDissection mutate the arena and return only an error;
// PrimalMap leaves the arena unchanged and returns a hedge.Graph built
// in a fresh arena. A nil graph or network, or the graph's own root
// edge passed for substitution, is reported through the package's
// sentinel errors; half-edge IDs are not checked for membership in the
// given map.
//
// Why: the sampler algebra in package boltzmann produces Value trees
// shaped like the combinatorial decomposition, but the actual planar
// structure — the thing with a u_size and an l_size worth counting —
// lives in the half-edge arena. A Builder (boltzmann.Builder) is the
// bridge: it calls into this package to assemble ObjectValues.
//
// Concurrency: none of these functions are safe for concurrent use on
// the same Arena, for the same reason *hedge.Arena itself is not: each
// belongs to a single in-flight sampling attempt.
//
// Errors: every function returns either one of the sentinels in
// errors.go wrapped via wrapf, or a hedge sentinel forwarded via
// wrapErr, so callers branch with errors.Is rather than string
// comparison.
package bijection
