package bijection

import "github.com/katalvlaran/lvlath/hedge"

// withoutNodeNr returns a copy of ids with the first occurrence of
// remove dropped. Used when two vertex lists are concatenated after a
// vertex identification, so the identified vertex is not double-counted.
func withoutNodeNr(ids []int, remove int) []int {
	out := make([]int, 0, len(ids))
	dropped := false
	for _, v := range ids {
		if !dropped && v == remove {
			dropped = true
			continue
		}
		out = append(out, v)
	}
	return out
}

// withoutHalfEdge returns a copy of ids with the first occurrence of
// remove dropped. Used to drop a root/pole edge from an edge list before
// it is folded into a larger structure.
func withoutHalfEdge(ids []hedge.HalfEdgeID, remove hedge.HalfEdgeID) []hedge.HalfEdgeID {
	out := make([]hedge.HalfEdgeID, 0, len(ids))
	dropped := false
	for _, h := range ids {
		if !dropped && h == remove {
			dropped = true
			continue
		}
		out = append(out, h)
	}
	return out
}

func concatInts(a, b []int) []int {
	out := make([]int, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}

func concatHalfEdges(a, b []hedge.HalfEdgeID) []hedge.HalfEdgeID {
	out := make([]hedge.HalfEdgeID, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}
