package hedge

// InsertAfter splices k into the rotation immediately after h. It fails
// with ErrAlreadyLinked if k is already part of a non-trivial rotation
// (i.e. k.next != k or k.prior != k), matching spec §4.1.
//
// Complexity: O(1).
func (a *Arena) InsertAfter(h, k HalfEdgeID) error {
	if !a.valid(h) || !a.valid(k) {
		return wrapf("InsertAfter", ErrOutOfRange, "h=%d k=%d", h, k)
	}
	if a.records[k].next != k || a.records[k].prior != k {
		return wrapf("InsertAfter", ErrAlreadyLinked, "half-edge %d", k)
	}

	hNext := a.records[h].next
	a.records[h].next = k
	a.records[k].prior = h
	a.records[k].next = hNext
	a.records[hNext].prior = k
	a.records[k].nodeNr = a.records[h].nodeNr

	return nil
}

// Pair sets h.opposite = k and k.opposite = h. Both half-edges must
// currently be unpaired (spec §4.1, §3 "Lifecycle").
//
// Complexity: O(1).
func (a *Arena) Pair(h, k HalfEdgeID) error {
	if !a.valid(h) || !a.valid(k) {
		return wrapf("Pair", ErrOutOfRange, "h=%d k=%d", h, k)
	}
	if a.records[h].opposite != Unpaired {
		return wrapf("Pair", ErrAlreadyPaired, "half-edge %d", h)
	}
	if a.records[k].opposite != Unpaired {
		return wrapf("Pair", ErrAlreadyPaired, "half-edge %d", k)
	}

	a.records[h].opposite = k
	a.records[k].opposite = h

	return nil
}

// Unpair clears h.opposite and its partner's opposite. This is the only
// unpaired<-paired transition allowed by the state machine in spec §4.6
// ("A half-edge that is paired may only become unpaired via
// substitute-edge-by-network's edge removal").
//
// Complexity: O(1).
func (a *Arena) Unpair(h HalfEdgeID) error {
	if !a.valid(h) {
		return wrapf("Unpair", ErrOutOfRange, "h=%d", h)
	}
	opp := a.records[h].opposite
	if opp == Unpaired {
		return wrapf("Unpair", ErrUnpaired, "half-edge %d", h)
	}
	a.records[h].opposite = Unpaired
	a.records[opp].opposite = Unpaired
	return nil
}

// WalkOrbit returns the rotation at h.node_nr in next-order, visiting
// each half-edge in the orbit exactly once starting from h.
//
// Complexity: O(degree(node_nr)).
func (a *Arena) WalkOrbit(h HalfEdgeID) []HalfEdgeID {
	orbit := []HalfEdgeID{h}
	for cur := a.records[h].next; cur != h; cur = a.records[cur].next {
		orbit = append(orbit, cur)
	}
	return orbit
}

// AllHalfEdges performs a breadth-first enumeration of every half-edge
// reachable from seed by following rotations (next) and edge pairings
// (opposite). Determinism of traversal order is not required by the
// caller contract (spec §4.1); only set membership is guaranteed.
//
//   - includeOpp: when two half-edges of a paired edge are both
//     reachable, include both in the result rather than a single
//     representative.
//   - includeUnpaired: include half-edges with no opposite.
//
// Complexity: O(V+E) over the reachable component.
func (a *Arena) AllHalfEdges(seed HalfEdgeID, includeOpp, includeUnpaired bool) map[HalfEdgeID]struct{} {
	visited := map[HalfEdgeID]struct{}{seed: {}}
	queue := []HalfEdgeID{seed}

	for len(queue) > 0 {
		h := queue[0]
		queue = queue[1:]

		neighbors := a.WalkOrbit(h)
		if opp := a.records[h].opposite; opp != Unpaired {
			neighbors = append(neighbors, opp)
		}
		for _, n := range neighbors {
			if _, seen := visited[n]; !seen {
				visited[n] = struct{}{}
				queue = append(queue, n)
			}
		}
	}

	result := make(map[HalfEdgeID]struct{}, len(visited))
	for h := range visited {
		opp := a.records[h].opposite
		if opp == Unpaired {
			if includeUnpaired {
				result[h] = struct{}{}
			}
			continue
		}
		if includeOpp {
			result[h] = struct{}{}
			continue
		}
		// One representative per edge; pick the lower id so membership
		// is deterministic regardless of BFS visitation order.
		if h < opp {
			result[h] = struct{}{}
		}
	}
	return result
}

// SpliceOrbits merges the rotations at h and k into one, identifying
// their vertices, and relabels every half-edge in the resulting orbit to
// h's node_nr. This is the half-edge-level primitive behind every
// "identify these two vertices" bijection (spec §4.5): it is the exact
// splice used by merge-networks-in-series, generalized so
// substitute-edge-by-network and merge-in-parallel can reuse it.
//
// Complexity: O(degree(h)+degree(k)).
func (a *Arena) SpliceOrbits(h, k HalfEdgeID) {
	hPrior := a.records[h].prior
	kPrior := a.records[k].prior

	a.records[h].prior = kPrior
	a.records[kPrior].next = h

	a.records[hPrior].next = k
	a.records[k].prior = hPrior

	newNodeNr := a.records[h].nodeNr
	for _, o := range a.WalkOrbit(h) {
		a.records[o].nodeNr = newNodeNr
	}
}

// RemoveFromOrbit excises h from its own rotation, reconnecting its
// former neighbors directly, and leaves h as a trivial one-element
// self-loop (next = prior = h). It does not touch h.opposite; callers
// that are retiring h entirely (spec §4.6, substitute-edge-by-network's
// edge removal) should Unpair it first.
//
// Complexity: O(1).
func (a *Arena) RemoveFromOrbit(h HalfEdgeID) {
	prior := a.records[h].prior
	next := a.records[h].next
	if prior == h {
		return
	}
	a.records[prior].next = next
	a.records[next].prior = prior
	a.records[h].next = h
	a.records[h].prior = h
}

// RelabelComponent overwrites node_nr on every half-edge in h's orbit,
// used when two vertices are identified by a bijection (spec §4.1).
//
// Complexity: O(degree).
func (a *Arena) RelabelComponent(h HalfEdgeID, newNodeNr int) {
	for _, o := range a.WalkOrbit(h) {
		a.records[o].nodeNr = newNodeNr
	}
}

// CheckInvariants verifies every property required of a half-edge map
// by spec §8 for all half-edges reachable from seed. It never mutates
// the arena; used by tests and, optionally, by callers that want an
// explicit post-condition check after a bijection.
//
// Complexity: O(V+E) over the reachable component.
func CheckInvariants(a *Arena, seed HalfEdgeID) error {
	reachable := a.AllHalfEdges(seed, true, true)
	perNode := make(map[int]int)
	for h := range reachable {
		perNode[a.records[h].nodeNr]++
	}

	for h := range reachable {
		rec := a.records[h]
		if a.records[rec.next].prior != h {
			return wrapf("CheckInvariants", ErrInvariantViolation, "h=%d: next.prior != h", h)
		}
		if a.records[rec.prior].next != h {
			return wrapf("CheckInvariants", ErrInvariantViolation, "h=%d: prior.next != h", h)
		}
		if rec.opposite != Unpaired {
			opp := a.records[rec.opposite]
			if opp.opposite != h {
				return wrapf("CheckInvariants", ErrInvariantViolation, "h=%d: opposite.opposite != h", h)
			}
			if opp.nodeNr == rec.nodeNr && rec.opposite != h {
				return wrapf("CheckInvariants", ErrInvariantViolation, "h=%d: opposite shares node_nr (loop)", h)
			}
		}
		// The orbit under next must be finite and must cover exactly
		// the half-edges sharing h's node_nr.
		orbit := a.WalkOrbit(h)
		for _, o := range orbit {
			if a.records[o].nodeNr != rec.nodeNr {
				return wrapf("CheckInvariants", ErrInvariantViolation, "h=%d: orbit member %d has different node_nr", h, o)
			}
		}
		if len(orbit) != perNode[rec.nodeNr] {
			return wrapf("CheckInvariants", ErrInvariantViolation, "h=%d: orbit has %d half-edges but %d reachable half-edges carry node_nr %d", h, len(orbit), perNode[rec.nodeNr], rec.nodeNr)
		}
	}
	return nil
}
