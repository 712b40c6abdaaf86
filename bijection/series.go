package bijection

import "github.com/katalvlaran/lvlath/hedge"

// MergeInSeries identifies n1's infinity pole with n2's zero pole and
// roots the result on a freshly allocated edge between n1's zero pole
// and n2's infinity pole.
//
// Ported in semantics (not in Python idiom) from
// original_source/planar_graph_sampler/bijections/network_merge_in_series.py's
// merge_networks_in_series: the new root half-edge is spliced in right
// after n1's zero pole, its opposite right after n2's infinity pole, and
// the two networks' shared vertex is formed by splicing n1's old
// infinity-pole orbit together with n2's old zero-pole orbit.
func MergeInSeries(arena *hedge.Arena, n1, n2 *hedge.Network) (*hedge.Network, error) {
	if n1 == nil || n2 == nil {
		return nil, wrapf("MergeInSeries", ErrNilNetwork, "n1=%v n2=%v", n1, n2)
	}

	zero1, inf1 := n1.ZeroPole, n1.InfPole
	zero2, inf2 := n2.ZeroPole, n2.InfPole

	newRoot, newRootOpp := arena.AllocPair()
	if err := arena.InsertAfter(zero1, newRoot); err != nil {
		return nil, wrapErr("MergeInSeries", err)
	}
	if err := arena.InsertAfter(inf2, newRootOpp); err != nil {
		return nil, wrapErr("MergeInSeries", err)
	}

	oldZero2NodeNr := arena.NodeNr(zero2)
	arena.SpliceOrbits(inf1, zero2)

	merged := hedge.NewNetwork(arena, newRoot, newRootOpp)
	merged.VerticesList = concatInts(n1.VerticesList, withoutNodeNr(n2.VerticesList, oldZero2NodeNr))
	merged.EdgesList = concatHalfEdges([]hedge.HalfEdgeID{newRoot}, concatHalfEdges(n1.EdgesList, n2.EdgesList))
	return merged, nil
}
