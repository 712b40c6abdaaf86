package boltzmann_test

import (
	"fmt"

	"github.com/katalvlaran/lvlath/boltzmann"
)

// ExampleGrammar_Sample builds the smallest possible grammar — a single
// labeled-atom rule — and samples it.
func ExampleGrammar_Sample() {
	oracle := boltzmann.MapOracle{"x": 1, "y": 1}
	g := boltzmann.NewGrammar(oracle, boltzmann.WithSeed(42))
	g.AddRule("R", boltzmann.LAtomSampler{})
	if err := g.Init(); err != nil {
		panic(err)
	}

	v, err := g.Sample("R", "x", "y")
	if err != nil {
		panic(err)
	}
	fmt.Println(v.LSize(), v.USize())
	// Output: 1 0
}
