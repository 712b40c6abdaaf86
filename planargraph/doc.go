// Package planargraph wires packages hedge, boltzmann, and bijection
// into one small, concrete grammar: a worked subset of the
// two-connected-planar-graph decomposition grounded on
// original_source/planar_graph_sampler/grammar/two_connected_decomposition.py.
//
// What: New builds a *boltzmann.Grammar with rules
// ZeroNetwork, TrivialEdge, D, G_2_arrow, F, G_2_dy, and G_2_dx,
// reproducing that file's rule table (Z()+D, L()**2*G_2_arrow,
// u-derivation, l-from-u-derivation) closely enough to exercise every
// sampler variant (Sum, Product, Bijection, Transformation,
// LDerFromUDer) and at least one call into bijection.MergeInSeries and
// bijection.SubstituteEdgeByNetwork.
//
// Why: the original file delegates most of its structure to
// network_decomposition.py's network_grammar(), which this retrieval
// pack does not include. Rule D here is a deliberately small stand-in
// for that missing network grammar — a bare single edge or two such
// edges merged in series through an explicit bridging l-atom — built
// from hedge.Arena primitives rather than ported from a source file
// that was not available. See DESIGN.md for the exact correspondence
// and every place this package's grammar departs from the original's.
//
// Concurrency: a *boltzmann.Grammar built here owns one hedge.Arena;
// like every other package in this module, that confines a built
// grammar to one in-flight sampling attempt at a time.
package planargraph
