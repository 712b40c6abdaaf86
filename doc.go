// Package lvlath is a Boltzmann-sampling engine for the uniform random
// generation of combinatorial structures, built out of four
// subpackages:
//
//	hedge/       — the half-edge planar map: Arena, Graph, Network, and
//	               the structural invariants every other package relies on
//	boltzmann/   — the sampler algebra (Sum, Product, Set, Sequence,
//	               Cycle, Bijection, Transformation, LDerFromUDer), a
//	               Grammar driving it against a numerical oracle, and
//	               the Builder hook that turns sampled values into
//	               domain objects
//	bijection/   — the structural operations on hedge maps a grammar's
//	               builders call into: series/parallel network merges,
//	               edge substitution, primal-map extraction, and
//	               irreducible-dissection closure
//	planargraph/ — a worked, concrete grammar wiring the three packages
//	               above into one runnable example
//
// Dive into SPEC_FULL.md for the full specification this module
// implements and DESIGN.md for how each package is grounded.
package lvlath
