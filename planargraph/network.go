package planargraph

import (
	"github.com/katalvlaran/lvlath/bijection"
	"github.com/katalvlaran/lvlath/boltzmann"
	"github.com/katalvlaran/lvlath/hedge"
)

// newBareNetwork builds the smallest possible network: two paired
// half-edges (the zero and inf poles), no interior structure. It is
// the shape original_source's ZeroAtomGraphBuilder.zero_atom() builds
// for the grammar's zero atom, and doubles here as the leaf network
// this package's "D" stand-in composes via bijection.MergeInSeries.
func newBareNetwork(arena *hedge.Arena, counter *boltzmann.Counter) *hedge.Network {
	zero, inf := arena.AllocPair()
	arena.SetNodeNr(zero, counter.Next())
	arena.SetNodeNr(inf, counter.Next())
	net := hedge.NewNetwork(arena, zero, inf)
	net.VerticesList = []int{arena.NodeNr(zero), arena.NodeNr(inf)}
	net.EdgesList = []hedge.HalfEdgeID{zero}
	return net
}

// ZeroAtomGraphBuilder is registered on rule ZeroNetwork. It is the
// direct port of original_source's ZeroAtomGraphBuilder: it keeps its
// own vertex counter, separate from the grammar's l-atom counter. That
// counter starts at 0 like every other Counter, so the pole ids it
// hands out can coincide in value with ids drawn from other counters.
type ZeroAtomGraphBuilder struct {
	Arena   *hedge.Arena
	Counter *boltzmann.Counter
}

// NewZeroAtomGraphBuilder returns a builder with a fresh counter.
func NewZeroAtomGraphBuilder(arena *hedge.Arena) *ZeroAtomGraphBuilder {
	return &ZeroAtomGraphBuilder{Arena: arena, Counter: boltzmann.NewCounter()}
}

func (b *ZeroAtomGraphBuilder) Build(v boltzmann.Value) (boltzmann.Value, error) {
	av, ok := v.(*boltzmann.AtomValue)
	if !ok || av.Kind != boltzmann.AtomZero {
		return nil, wrapf("ZeroAtomGraphBuilder.Build", ErrUnexpectedValue, "expected a zero atom, got %T", v)
	}
	net := newBareNetwork(b.Arena, b.Counter)
	return boltzmann.NewObjectValue(net, v), nil
}

// TrivialEdgeBuilder is registered on rule TrivialEdge, the minimal
// one-edge network standing in for network_decomposition.py's u-atom
// leaf (not present in this retrieval pack; see doc.go).
type TrivialEdgeBuilder struct {
	Arena   *hedge.Arena
	Counter *boltzmann.Counter
}

func NewTrivialEdgeBuilder(arena *hedge.Arena, counter *boltzmann.Counter) *TrivialEdgeBuilder {
	return &TrivialEdgeBuilder{Arena: arena, Counter: counter}
}

func (b *TrivialEdgeBuilder) Build(v boltzmann.Value) (boltzmann.Value, error) {
	av, ok := v.(*boltzmann.AtomValue)
	if !ok || av.Kind != boltzmann.AtomU {
		return nil, wrapf("TrivialEdgeBuilder.Build", ErrUnexpectedValue, "expected a u atom, got %T", v)
	}
	net := newBareNetwork(b.Arena, b.Counter)
	return boltzmann.NewObjectValue(net, v), nil
}

// DNetworkBuilder is registered on rule D, this package's stand-in for
// network_decomposition.py's network_grammar(): either a single
// TrivialEdge network, or two such networks joined in series through
// an explicit bridging l-atom (the vertex bijection.MergeInSeries
// introduces at the splice point). See doc.go for why the real
// network grammar could not be ported directly.
type DNetworkBuilder struct {
	Arena *hedge.Arena
}

func NewDNetworkBuilder(arena *hedge.Arena) *DNetworkBuilder {
	return &DNetworkBuilder{Arena: arena}
}

func (b *DNetworkBuilder) Build(v boltzmann.Value) (boltzmann.Value, error) {
	sv, ok := v.(*boltzmann.SumValue)
	if !ok {
		return nil, wrapf("DNetworkBuilder.Build", ErrUnexpectedValue, "expected a SumValue, got %T", v)
	}
	if sv.Branch == 0 {
		// Already an *ObjectValue, assembled by TrivialEdgeBuilder.
		return sv.Chosen, nil
	}

	pv, ok := sv.Chosen.(*boltzmann.ProductValue)
	if !ok {
		return nil, wrapf("DNetworkBuilder.Build", ErrUnexpectedValue, "expected a ProductValue in the series branch, got %T", sv.Chosen)
	}
	firstObj, ok := pv.First.(*boltzmann.ObjectValue)
	if !ok {
		return nil, wrapf("DNetworkBuilder.Build", ErrUnexpectedValue, "expected an ObjectValue, got %T", pv.First)
	}
	bridge, ok := pv.Second.(*boltzmann.ProductValue)
	if !ok {
		return nil, wrapf("DNetworkBuilder.Build", ErrUnexpectedValue, "expected a ProductValue (bridge l-atom x network), got %T", pv.Second)
	}
	secondObj, ok := bridge.Second.(*boltzmann.ObjectValue)
	if !ok {
		return nil, wrapf("DNetworkBuilder.Build", ErrUnexpectedValue, "expected an ObjectValue, got %T", bridge.Second)
	}

	n1, ok := firstObj.Object.(*hedge.Network)
	if !ok {
		return nil, wrapf("DNetworkBuilder.Build", ErrUnexpectedValue, "expected a *hedge.Network, got %T", firstObj.Object)
	}
	n2, ok := secondObj.Object.(*hedge.Network)
	if !ok {
		return nil, wrapf("DNetworkBuilder.Build", ErrUnexpectedValue, "expected a *hedge.Network, got %T", secondObj.Object)
	}

	merged, err := bijection.MergeInSeries(b.Arena, n1, n2)
	if err != nil {
		return nil, wrapErr("DNetworkBuilder.Build", err)
	}
	return boltzmann.NewObjectValue(merged, v), nil
}
