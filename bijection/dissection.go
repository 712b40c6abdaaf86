package bijection

import (
	"sort"

	"github.com/katalvlaran/lvlath/hedge"
)

// CloseIrreducibleDissection completes a binary tree of bicolored
// half-edges into an irreducible dissection of a polygon (spec §4.5,
// GLOSSARY "Irreducible-dissection closure"): it pairs each unmatched
// stub with the next admissible stub in its walk, where admissible
// means differently colored, using a color stack so nested and
// sequential stubs both resolve correctly. It reads color and writes
// only opposite — next and prior are never touched, matching the
// invariant carried from spec §4.5.
//
// Closing an already-closed map is a no-op: every half-edge is already
// paired, so the walk below never pushes anything onto the stack.
func CloseIrreducibleDissection(arena *hedge.Arena, root hedge.HalfEdgeID) error {
	reachable := arena.AllHalfEdges(root, true, true)
	ordered := make([]int, 0, len(reachable))
	for h := range reachable {
		ordered = append(ordered, int(h))
	}
	sort.Ints(ordered)

	var stack []hedge.HalfEdgeID
	for _, id := range ordered {
		h := hedge.HalfEdgeID(id)
		if arena.IsPaired(h) {
			continue
		}
		if len(stack) > 0 && arena.Color(stack[len(stack)-1]) != arena.Color(h) {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if err := arena.Pair(top, h); err != nil {
				return wrapErr("CloseIrreducibleDissection", err)
			}
			continue
		}
		stack = append(stack, h)
	}

	if len(stack) != 0 {
		return wrapf("CloseIrreducibleDissection", ErrUnclosedDissection, "%d stub(s) remain unmatched", len(stack))
	}
	return nil
}
