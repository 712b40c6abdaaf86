package bijection

import "github.com/katalvlaran/lvlath/hedge"

// MergeInParallel identifies n1's zero pole with n2's zero pole and
// n1's infinity pole with n2's infinity pole, then roots the result on a
// freshly allocated edge between the now-shared zero and infinity poles
// (spec §4.5: symmetric with MergeInSeries, networks compose in parallel
// by pole identification plus a fresh root edge, not by reusing either
// operand's former root).
//
// There is no standalone original_source file for the parallel case
// (the Python retrieval folds it into the same bijection module as
// series merge); this is generalized from the same SpliceOrbits/
// InsertAfter primitives series.go uses.
func MergeInParallel(arena *hedge.Arena, n1, n2 *hedge.Network) (*hedge.Network, error) {
	if n1 == nil || n2 == nil {
		return nil, wrapf("MergeInParallel", ErrNilNetwork, "n1=%v n2=%v", n1, n2)
	}

	oldZero2 := arena.NodeNr(n2.ZeroPole)
	oldInf2 := arena.NodeNr(n2.InfPole)

	arena.SpliceOrbits(n1.ZeroPole, n2.ZeroPole)
	arena.SpliceOrbits(n1.InfPole, n2.InfPole)

	newRoot, newRootOpp := arena.AllocPair()
	if err := arena.InsertAfter(n1.ZeroPole, newRoot); err != nil {
		return nil, wrapErr("MergeInParallel", err)
	}
	if err := arena.InsertAfter(n1.InfPole, newRootOpp); err != nil {
		return nil, wrapErr("MergeInParallel", err)
	}

	merged := hedge.NewNetwork(arena, newRoot, newRootOpp)
	merged.VerticesList = concatInts(n1.VerticesList, withoutNodeNr(withoutNodeNr(n2.VerticesList, oldZero2), oldInf2))
	merged.EdgesList = concatHalfEdges([]hedge.HalfEdgeID{newRoot}, concatHalfEdges(n1.EdgesList, n2.EdgesList))
	return merged, nil
}
