package bijection_test

import (
	"testing"

	"github.com/katalvlaran/lvlath/bijection"
	"github.com/katalvlaran/lvlath/hedge"
)

// TestMergeInParallelTrivialNetworks merges two trivial single-edge
// networks in parallel: the two pole pairs are identified and a fresh
// root edge is added between them, giving l_size=0 (both poles pinned),
// u_size=2 (3 structural edges minus the 1 distinguished root).
func TestMergeInParallelTrivialNetworks(t *testing.T) {
	a := hedge.NewArena()
	n1 := buildTrivialNetwork(a, 0, 1)
	n2 := buildTrivialNetwork(a, 2, 3)

	merged, err := bijection.MergeInParallel(a, n1, n2)
	if err != nil {
		t.Fatalf("MergeInParallel: %v", err)
	}

	if got := merged.LSize(); got != 0 {
		t.Errorf("LSize() = %d; want 0", got)
	}
	if got := merged.USize(); got != 2 {
		t.Errorf("USize() = %d; want 2", got)
	}
	if len(merged.VerticesList) != 2 {
		t.Errorf("len(VerticesList) = %d; want 2", len(merged.VerticesList))
	}
	if len(merged.EdgesList) != 3 {
		t.Errorf("len(EdgesList) = %d; want 3", len(merged.EdgesList))
	}
	if a.NodeNr(n1.ZeroPole) != a.NodeNr(n2.ZeroPole) {
		t.Errorf("zero poles not identified: %d vs %d", a.NodeNr(n1.ZeroPole), a.NodeNr(n2.ZeroPole))
	}
	if a.NodeNr(n1.InfPole) != a.NodeNr(n2.InfPole) {
		t.Errorf("infinity poles not identified: %d vs %d", a.NodeNr(n1.InfPole), a.NodeNr(n2.InfPole))
	}
	if err := hedge.CheckInvariants(a, merged.ZeroPole); err != nil {
		t.Fatalf("CheckInvariants: %v", err)
	}
}
