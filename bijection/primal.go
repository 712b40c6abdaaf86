package bijection

import (
	"sort"

	"github.com/katalvlaran/lvlath/hedge"
)

// PrimalMap extracts the sub-map induced on one vertex color class
// (spec §4.5, GLOSSARY "Primal map"): given a rooted planar map whose
// vertices are two-colored, it keeps exactly the edges whose both
// endpoints carry color and rebuilds their rotations in a fresh arena,
// used to recover the three-connected skeleton from a colored
// decomposition.
//
// The result lives in its own hedge.Arena (returned as the Graph's
// Arena field) since the induced sub-map's rotations omit every
// half-edge of the other color and so cannot share storage with g's.
func PrimalMap(arena *hedge.Arena, g *hedge.Graph, color int) (*hedge.Graph, error) {
	if g == nil {
		return nil, wrapf("PrimalMap", ErrNilGraph, "graph is nil")
	}
	if arena.Color(g.RootHalfEdge) != color {
		return nil, wrapf("PrimalMap", ErrRootNotInColorClass, "root=%d color=%d", g.RootHalfEdge, color)
	}

	reachable := arena.AllHalfEdges(g.RootHalfEdge, true, true)
	keep := make(map[hedge.HalfEdgeID]bool, len(reachable))
	for h := range reachable {
		if arena.Color(h) != color || !arena.IsPaired(h) {
			continue
		}
		if arena.Color(arena.Opposite(h)) == color {
			keep[h] = true
		}
	}
	if len(keep) == 0 {
		return nil, wrapf("PrimalMap", ErrEmptyColorClass, "color=%d", color)
	}

	newArena := hedge.NewArena()
	idMap := make(map[hedge.HalfEdgeID]hedge.HalfEdgeID, len(keep))
	for h := range keep {
		nh := newArena.Alloc()
		idMap[h] = nh
		newArena.SetNodeNr(nh, arena.NodeNr(h))
		newArena.SetColor(nh, arena.Color(h))
	}

	visitedVertex := make(map[int]bool)
	for h := range keep {
		v := arena.NodeNr(h)
		if visitedVertex[v] {
			continue
		}
		visitedVertex[v] = true

		var ordered []hedge.HalfEdgeID
		for _, o := range arena.WalkOrbit(h) {
			if keep[o] {
				ordered = append(ordered, o)
			}
		}
		for i := 1; i < len(ordered); i++ {
			if err := newArena.InsertAfter(idMap[ordered[i-1]], idMap[ordered[i]]); err != nil {
				return nil, wrapErr("PrimalMap", err)
			}
		}
	}

	paired := make(map[hedge.HalfEdgeID]bool, len(keep))
	for h := range keep {
		opp := arena.Opposite(h)
		if paired[h] || paired[opp] {
			continue
		}
		if err := newArena.Pair(idMap[h], idMap[opp]); err != nil {
			return nil, wrapErr("PrimalMap", err)
		}
		paired[h] = true
		paired[opp] = true
	}

	out := hedge.NewGraph(newArena, idMap[g.RootHalfEdge])
	vertexSet := make(map[int]bool, len(visitedVertex))
	for v := range visitedVertex {
		vertexSet[v] = true
	}
	for v := range vertexSet {
		out.VerticesList = append(out.VerticesList, v)
	}
	sort.Ints(out.VerticesList)

	var edgeIDs []int
	for h := range keep {
		if int(h) < int(arena.Opposite(h)) {
			edgeIDs = append(edgeIDs, int(h))
		}
	}
	sort.Ints(edgeIDs)
	for _, id := range edgeIDs {
		out.EdgesList = append(out.EdgesList, idMap[hedge.HalfEdgeID(id)])
	}

	return out, nil
}
