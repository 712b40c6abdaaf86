package bijection_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/lvlath/bijection"
	"github.com/katalvlaran/lvlath/hedge"
)

// TestSubstituteEdgeByTrivialNetworkIsIdentity is the spec §8 law
// "substituting an edge with the trivial single-edge network is the
// identity": sizes must be unchanged after the substitution.
func TestSubstituteEdgeByTrivialNetworkIsIdentity(t *testing.T) {
	a := hedge.NewArena()
	e0, e0opp := a.AllocPair()
	e1, e1opp := a.AllocPair()
	a.SetNodeNr(e0, 0)
	a.SetNodeNr(e0opp, 1)
	a.SetNodeNr(e1, 0)
	a.SetNodeNr(e1opp, 1)
	if err := a.InsertAfter(e0, e1); err != nil {
		t.Fatalf("InsertAfter at A: %v", err)
	}
	if err := a.InsertAfter(e0opp, e1opp); err != nil {
		t.Fatalf("InsertAfter at B: %v", err)
	}

	g := hedge.NewGraph(a, e0)
	g.VerticesList = []int{0, 1}
	g.EdgesList = []hedge.HalfEdgeID{e0, e1}

	if got := g.LSize(); got != 2 {
		t.Fatalf("precondition LSize() = %d; want 2", got)
	}
	if got := g.USize(); got != 2 {
		t.Fatalf("precondition USize() = %d; want 2", got)
	}

	n := buildTrivialNetwork(a, 100, 101)
	if err := bijection.SubstituteEdgeByNetwork(a, g, e1, n); err != nil {
		t.Fatalf("SubstituteEdgeByNetwork: %v", err)
	}

	if got := g.LSize(); got != 2 {
		t.Errorf("LSize() = %d; want 2 (identity law)", got)
	}
	if got := g.USize(); got != 2 {
		t.Errorf("USize() = %d; want 2 (identity law)", got)
	}
	if err := hedge.CheckInvariants(a, g.RootHalfEdge); err != nil {
		t.Fatalf("CheckInvariants: %v", err)
	}
}

// TestSubstituteEdgeByNetworkRejectsRootEdge covers the immovable-root
// guard.
func TestSubstituteEdgeByNetworkRejectsRootEdge(t *testing.T) {
	a := hedge.NewArena()
	e0, e0opp := a.AllocPair()
	a.SetNodeNr(e0, 0)
	a.SetNodeNr(e0opp, 1)

	g := hedge.NewGraph(a, e0)
	g.VerticesList = []int{0, 1}
	g.EdgesList = []hedge.HalfEdgeID{e0}

	n := buildTrivialNetwork(a, 100, 101)
	if err := bijection.SubstituteEdgeByNetwork(a, g, e0, n); !errors.Is(err, bijection.ErrRootEdge) {
		t.Fatalf("err = %v; want ErrRootEdge", err)
	}
}
