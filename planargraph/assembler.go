package planargraph

import (
	"github.com/katalvlaran/lvlath/bijection"
	"github.com/katalvlaran/lvlath/boltzmann"
	"github.com/katalvlaran/lvlath/hedge"
)

// graphAssembler holds the shared arena and counter the bijection
// functions below close over; it has no Builder of its own and is
// wired directly as BijectionFunc/EvalTransformFunc closures on rules
// G_2_arrow and F.
type graphAssembler struct {
	Arena   *hedge.Arena
	Counter *boltzmann.Counter
}

// toG2Arrow is original_source's to_G_2_arrow: rewrap the sampled
// network (from either the zero-atom or the D branch) as the
// G_2_arrow class, unchanged structurally.
func (a *graphAssembler) toG2Arrow(v boltzmann.Value) (boltzmann.Value, error) {
	sv, ok := v.(*boltzmann.SumValue)
	if !ok {
		return nil, wrapf("toG2Arrow", ErrUnexpectedValue, "expected a SumValue, got %T", v)
	}
	ov, ok := sv.Chosen.(*boltzmann.ObjectValue)
	if !ok {
		return nil, wrapf("toG2Arrow", ErrUnexpectedValue, "expected an ObjectValue, got %T", sv.Chosen)
	}
	if _, ok := ov.Object.(*hedge.Network); !ok {
		return nil, wrapf("toG2Arrow", ErrUnexpectedValue, "expected a *hedge.Network, got %T", ov.Object)
	}
	return boltzmann.NewObjectValue(ov.Object, v), nil
}

// toG2 is original_source's to_G_2: F = L()**2 * G_2_arrow closes the
// network into an ordinary two-connected planar graph. The two poles
// stop being pinned (the explicit L()**2 already counted them), so the
// result is assembled on a fresh hedge.Graph with no pinning.
//
// Along the way it exercises bijection.SubstituteEdgeByNetwork: if the
// sampled network carries any edge beyond its own root (only the
// series branch of rule D ever does), the first such edge in EdgesList
// is replaced by a freshly built bare network, demonstrating the bijection this
// package is scoped to wire in at least once.
func (a *graphAssembler) toG2(v boltzmann.Value) (boltzmann.Value, error) {
	pv, ok := v.(*boltzmann.ProductValue)
	if !ok {
		return nil, wrapf("toG2", ErrUnexpectedValue, "expected a ProductValue, got %T", v)
	}
	netObj, ok := pv.Second.(*boltzmann.ObjectValue)
	if !ok {
		return nil, wrapf("toG2", ErrUnexpectedValue, "expected an ObjectValue, got %T", pv.Second)
	}
	net, ok := netObj.Object.(*hedge.Network)
	if !ok {
		return nil, wrapf("toG2", ErrUnexpectedValue, "expected a *hedge.Network, got %T", netObj.Object)
	}

	rootOpp := a.Arena.Opposite(net.RootHalfEdge)
	for _, e := range net.EdgesList {
		if e == net.RootHalfEdge || e == rootOpp {
			continue
		}
		extra := newBareNetwork(a.Arena, a.Counter)
		if err := bijection.SubstituteEdgeByNetwork(a.Arena, net.Graph, e, extra); err != nil {
			return nil, wrapErr("toG2", err)
		}
		break
	}

	closed := hedge.NewGraph(a.Arena, net.RootHalfEdge)
	closed.VerticesList = net.VerticesList
	closed.EdgesList = net.EdgesList
	return boltzmann.NewObjectValue(closed, v), nil
}

// divideBy1PlusY is original_source's divide_by_1_plus_y, the eval
// transform for rule G_2_arrow.
func divideBy1PlusY(oracle boltzmann.Oracle) boltzmann.EvalTransformFunc {
	return func(inner float64, _, y string) (float64, error) {
		yv, err := oracle.Eval(y)
		if err != nil {
			return 0, err
		}
		return inner / (1 + yv), nil
	}
}

// divideBy2 is original_source's divide_by_2, the eval transform for
// rule F.
func divideBy2(inner float64, _, _ string) (float64, error) {
	return inner / 2, nil
}
