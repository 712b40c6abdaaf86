package boltzmann

// Value is the closed tagged union flowing through the grammar: every
// algebraic variant in spec §3 ("Sampler objects") implements it. Model
// it as a fixed set of concrete types dispatched by the interpreter and
// by Builder.Build's type switch, not as an open interface hierarchy
// (DESIGN NOTES §9, "Polymorphism over sampler kinds").
type Value interface {
	// LSize is the labeled-atom count contributed by this value.
	LSize() int
	// USize is the unlabeled-atom count contributed by this value.
	USize() int

	// sealed restricts Value to the variants declared in this file.
	sealed()
}

// AtomKind distinguishes the three atom flavors from spec §3.
type AtomKind int

const (
	// AtomZero contributes nothing to either size.
	AtomZero AtomKind = iota
	// AtomL contributes 1 to l_size.
	AtomL
	// AtomU contributes 1 to u_size.
	AtomU
)

// AtomValue is a leaf value produced by ZeroAtom, LAtom, or UAtom.
type AtomValue struct {
	Kind AtomKind
	// NodeNr is the fresh vertex id assigned to an l-atom (meaningless
	// for zero/u atoms).
	NodeNr int
}

func (a *AtomValue) LSize() int {
	if a.Kind == AtomL {
		return 1
	}
	return 0
}
func (a *AtomValue) USize() int {
	if a.Kind == AtomU {
		return 1
	}
	return 0
}
func (*AtomValue) sealed() {}

// ProductValue is an ordered pair of values with additive sizes.
type ProductValue struct {
	First  Value
	Second Value
}

func (p *ProductValue) LSize() int { return p.First.LSize() + p.Second.LSize() }
func (p *ProductValue) USize() int { return p.First.USize() + p.Second.USize() }
func (*ProductValue) sealed()      {}

// SumValue tags which branch of a Sum was chosen; its size is the
// chosen branch's size.
type SumValue struct {
	// Branch is 0 for the left (A) operand, 1 for the right (B).
	Branch int
	Chosen Value
}

func (s *SumValue) LSize() int { return s.Chosen.LSize() }
func (s *SumValue) USize() int { return s.Chosen.USize() }
func (*SumValue) sealed()      {}

// DerivedKind distinguishes l-derived from u-derived wrappers.
type DerivedKind byte

const (
	// DerivedL marks one distinguished l-atom.
	DerivedL DerivedKind = 'L'
	// DerivedU marks one distinguished u-atom.
	DerivedU DerivedKind = 'U'
)

// DerivedValue wraps a value with one distinguished atom of the given
// kind, reducing the corresponding declared size by 1 (spec §3,
// "Derived (l- or u-)").
type DerivedValue struct {
	Kind  DerivedKind
	Inner Value
}

func (d *DerivedValue) LSize() int {
	n := d.Inner.LSize()
	if d.Kind == DerivedL {
		n--
	}
	return n
}
func (d *DerivedValue) USize() int {
	n := d.Inner.USize()
	if d.Kind == DerivedU {
		n--
	}
	return n
}
func (*DerivedValue) sealed() {}

// ListVariant distinguishes the three repetition samplers that all
// produce an ordered list of inner values.
type ListVariant int

const (
	// ListSet marks an unordered collection drawn by Set.
	ListSet ListVariant = iota
	// ListSequence marks an ordered tuple drawn by Sequence.
	ListSequence
	// ListCycle marks a sequence whose rotations are identified by Cycle.
	ListCycle
)

// ListValue holds the k independent draws made by Set, Sequence, or
// Cycle; size is the sum over elements.
type ListValue struct {
	Variant  ListVariant
	Elements []Value
}

func (l *ListValue) LSize() int {
	n := 0
	for _, e := range l.Elements {
		n += e.LSize()
	}
	return n
}
func (l *ListValue) USize() int {
	n := 0
	for _, e := range l.Elements {
		n += e.USize()
	}
	return n
}
func (*ListValue) sealed() {}

// ObjectValue wraps a domain object produced by a Builder. L and U are
// recorded explicitly at construction time and must equal the
// consumed algebraic value's sizes (spec §3 Invariant): a Builder is
// responsible for preserving this equality.
type ObjectValue struct {
	Object interface{}
	L, U   int
}

func (o *ObjectValue) LSize() int { return o.L }
func (o *ObjectValue) USize() int { return o.U }
func (*ObjectValue) sealed()      {}

// NewObjectValue wraps obj, copying sizes from the algebraic value it
// was built from — the idiom every Builder.Build implementation uses to
// satisfy the size-preservation invariant.
func NewObjectValue(obj interface{}, from Value) *ObjectValue {
	return &ObjectValue{Object: obj, L: from.LSize(), U: from.USize()}
}
