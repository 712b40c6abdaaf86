package boltzmann

// Builder is the external interface a grammar rule's assembled value
// passes through: "a builder exposes handlers named after algebraic
// variants it cares about" (spec §6). Build receives the
// already-sampled value for the rule it is registered against and
// returns the domain object (or, if it has no opinion, the value
// unchanged).
type Builder interface {
	Build(v Value) (Value, error)
}

// DefaultBuilder implements the spec's "Default builders return the
// algebraic value unchanged" contract; it is used implicitly whenever
// no Builder is registered for a rule.
type DefaultBuilder struct{}

func (DefaultBuilder) Build(v Value) (Value, error) { return v, nil }

// HandlerBuilder is a Builder assembled from per-variant callbacks,
// mirroring the "handlers named after algebraic variants" phrasing of
// spec §6 (l_atom, u_atom, zero_atom, product, set, ...). Any nil
// handler falls back to the identity passthrough for that variant.
type HandlerBuilder struct {
	ZeroAtom func(*AtomValue) (Value, error)
	LAtom    func(*AtomValue) (Value, error)
	UAtom    func(*AtomValue) (Value, error)
	Product  func(*ProductValue) (Value, error)
	Sum      func(*SumValue) (Value, error)
	Set      func(*ListValue) (Value, error)
	Sequence func(*ListValue) (Value, error)
	Cycle    func(*ListValue) (Value, error)
	Derived  func(*DerivedValue) (Value, error)
}

func (h *HandlerBuilder) Build(v Value) (Value, error) {
	switch t := v.(type) {
	case *AtomValue:
		switch t.Kind {
		case AtomZero:
			if h.ZeroAtom != nil {
				return h.ZeroAtom(t)
			}
		case AtomL:
			if h.LAtom != nil {
				return h.LAtom(t)
			}
		case AtomU:
			if h.UAtom != nil {
				return h.UAtom(t)
			}
		}
	case *ProductValue:
		if h.Product != nil {
			return h.Product(t)
		}
	case *SumValue:
		if h.Sum != nil {
			return h.Sum(t)
		}
	case *ListValue:
		switch t.Variant {
		case ListSet:
			if h.Set != nil {
				return h.Set(t)
			}
		case ListSequence:
			if h.Sequence != nil {
				return h.Sequence(t)
			}
		case ListCycle:
			if h.Cycle != nil {
				return h.Cycle(t)
			}
		}
	case *DerivedValue:
		if h.Derived != nil {
			return h.Derived(t)
		}
	}
	return v, nil
}
