package bijection

import "github.com/katalvlaran/lvlath/hedge"

// SubstituteEdgeByNetwork replaces edge e (and its opposite) inside g
// with network n: n's zero pole is identified with e's tail vertex, n's
// infinity pole with e's head vertex, and e itself is retired.
//
// Grounded on the call pattern in
// original_source/planar_graph_sampler/combinatorial_classes/three_connected_graph.py's
// replace_u_atoms, which invokes
// "substitute_edge_by_network(edge_for_substitution, network)" once per
// non-root edge of a three-connected skeleton. That routine's own body
// lives in a bijections/networks.py not present in this pack; the
// splice below is built from the same primitive
// (hedge.Arena.SpliceOrbits) network_merge_in_series.py uses for the
// analogous "identify these two vertices" step, generalized to a
// mid-graph edge instead of a pair of network poles.
func SubstituteEdgeByNetwork(arena *hedge.Arena, g *hedge.Graph, e hedge.HalfEdgeID, n *hedge.Network) error {
	if g == nil {
		return wrapf("SubstituteEdgeByNetwork", ErrNilGraph, "graph is nil")
	}
	if n == nil {
		return wrapf("SubstituteEdgeByNetwork", ErrNilNetwork, "network is nil")
	}
	if e == g.RootHalfEdge || e == arena.Opposite(g.RootHalfEdge) {
		return wrapf("SubstituteEdgeByNetwork", ErrRootEdge, "half-edge %d", e)
	}

	tail, head := e, arena.Opposite(e)
	if err := arena.Unpair(e); err != nil {
		return wrapErr("SubstituteEdgeByNetwork", err)
	}

	oldZeroNodeNr := arena.NodeNr(n.ZeroPole)
	oldInfNodeNr := arena.NodeNr(n.InfPole)

	arena.SpliceOrbits(tail, n.ZeroPole)
	arena.RemoveFromOrbit(tail)

	arena.SpliceOrbits(head, n.InfPole)
	arena.RemoveFromOrbit(head)

	g.VerticesList = concatInts(g.VerticesList, withoutNodeNr(withoutNodeNr(n.VerticesList, oldZeroNodeNr), oldInfNodeNr))
	remaining := withoutHalfEdge(withoutHalfEdge(g.EdgesList, tail), head)
	g.EdgesList = concatHalfEdges(remaining, n.EdgesList)
	return nil
}
