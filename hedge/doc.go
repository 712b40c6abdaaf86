// Package hedge implements the half-edge planar-map primitive that the
// Boltzmann sampler's bijections operate on.
//
// A half-edge is one oriented half of an edge in an embedded graph: it
// carries a vertex (node_nr), a rotational successor/predecessor around
// that vertex (next/prior), and an opposite half-edge forming the other
// side of the same full edge. The cyclic next/prior/opposite links make
// this a natural flat arena of records addressed by stable integer IDs
// rather than a pointer-cyclic object graph (see DESIGN.md, "Cyclic
// half-edge graph").
//
// What
//
//   - Arena: owns a slice of half-edge records, allocates fresh ones,
//     splices them into rotations (InsertAfter), pairs them into edges
//     (Pair), and enumerates orbits/components (WalkOrbit, AllHalfEdges,
//     RelabelComponent).
//   - Graph / Network: thin wrappers that track a root half-edge plus
//     vertex/edge lists and expose the l_size/u_size accounting rules
//     used throughout the sampler.
//
// Why
//
//   - Every bijection in package bijection (merge-in-series,
//     merge-in-parallel, edge substitution, dissection closure) reads
//     and writes these links directly; centralizing them here keeps the
//     planarity-preserving invariants in one place.
//
// Concurrency
//
//	A single Arena is mutated by exactly one rejection-sampling attempt
//	at a time (see package boltzmann, §5 of the design: single-threaded,
//	no suspension points). Arena carries no internal locking — unlike
//	lvlath/core's Graph, which is shared across goroutines by design,
//	a sampler's half-edge arena is confined to the goroutine running one
//	sampling attempt and is discarded wholesale on rejection.
//
// Errors
//
//   - ErrAlreadyLinked    – InsertAfter on a half-edge already spliced in.
//   - ErrAlreadyPaired    – Pair on a half-edge that already has an opposite.
//   - ErrUnpaired         – an operation required a paired half-edge.
//   - ErrInvariantViolation – CheckInvariants found a broken link.
package hedge
