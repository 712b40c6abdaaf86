package hedge

// HalfEdgeID is a stable index into an Arena's half-edge records. It is
// the identity referred to throughout §3 of the design as "a stable
// integer identity".
type HalfEdgeID int

// Unpaired is the sentinel opposite value for a half-edge stub that has
// not yet been matched with a partner (spec §3: "absent for unpaired
// stubs during intermediate constructions").
const Unpaired HalfEdgeID = -1

// halfEdgeRecord is one half-edge's mutable state. Arena holds these by
// value in a slice; HalfEdgeID indexes into that slice.
type halfEdgeRecord struct {
	nodeNr   int
	color    int
	next     HalfEdgeID
	prior    HalfEdgeID
	opposite HalfEdgeID
}

// Arena owns a flat collection of half-edge records addressed by stable
// integer IDs. It has no internal locking: a single Arena belongs to
// exactly one in-flight sampling attempt (see doc.go, "Concurrency").
type Arena struct {
	records []halfEdgeRecord
}

// NewArena returns an empty arena ready for Alloc calls.
func NewArena() *Arena {
	return &Arena{}
}

// Alloc creates a fresh, unlinked half-edge: next = prior = itself,
// opposite = Unpaired, node_nr = 0, color = 0. This is the trivial
// one-element rotation every half-edge starts life as.
func (a *Arena) Alloc() HalfEdgeID {
	id := HalfEdgeID(len(a.records))
	a.records = append(a.records, halfEdgeRecord{
		next:     id,
		prior:    id,
		opposite: Unpaired,
	})
	return id
}

// AllocSelfConsistent creates the "self-consistent" singleton half-edge
// used as a zero-atom root (spec §3): next = prior = opposite = self.
func (a *Arena) AllocSelfConsistent() HalfEdgeID {
	id := a.Alloc()
	a.records[id].opposite = id
	return id
}

// AllocPair allocates two fresh, mutually unlinked half-edges and pairs
// them, returning (h, h.opposite). Each is its own trivial rotation
// until spliced with InsertAfter.
func (a *Arena) AllocPair() (HalfEdgeID, HalfEdgeID) {
	h := a.Alloc()
	k := a.Alloc()
	a.records[h].opposite = k
	a.records[k].opposite = h
	return h, k
}

func (a *Arena) valid(h HalfEdgeID) bool {
	return h >= 0 && int(h) < len(a.records)
}

// NodeNr returns the vertex id attached to h.
func (a *Arena) NodeNr(h HalfEdgeID) int { return a.records[h].nodeNr }

// SetNodeNr overwrites the vertex id attached to h. Prefer
// RelabelComponent to keep an entire orbit consistent.
func (a *Arena) SetNodeNr(h HalfEdgeID, n int) { a.records[h].nodeNr = n }

// Color returns h's color tag, used by the dissection closure (§4.5).
func (a *Arena) Color(h HalfEdgeID) int { return a.records[h].color }

// SetColor overwrites h's color tag.
func (a *Arena) SetColor(h HalfEdgeID, c int) { a.records[h].color = c }

// Next returns the successor of h around its vertex's rotation.
func (a *Arena) Next(h HalfEdgeID) HalfEdgeID { return a.records[h].next }

// Prior returns the predecessor of h around its vertex's rotation.
func (a *Arena) Prior(h HalfEdgeID) HalfEdgeID { return a.records[h].prior }

// Opposite returns h's paired half-edge, or Unpaired if h is a stub.
func (a *Arena) Opposite(h HalfEdgeID) HalfEdgeID { return a.records[h].opposite }

// IsPaired reports whether h currently has an opposite.
func (a *Arena) IsPaired(h HalfEdgeID) bool { return a.records[h].opposite != Unpaired }

// Len returns the number of half-edge records ever allocated (including
// ones logically "removed" by substitution, which are simply orphaned
// rather than compacted — callers track membership via Graph.EdgesList).
func (a *Arena) Len() int { return len(a.records) }
