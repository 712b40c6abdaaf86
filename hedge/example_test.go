package hedge_test

import (
	"fmt"

	"github.com/katalvlaran/lvlath/hedge"
)

// ExampleArena_WalkOrbit builds a 3-half-edge rotation around a single
// vertex and walks it.
func ExampleArena_WalkOrbit() {
	a := hedge.NewArena()
	center := a.Alloc()
	spoke1 := a.Alloc()
	spoke2 := a.Alloc()

	_ = a.InsertAfter(center, spoke1)
	_ = a.InsertAfter(spoke1, spoke2)

	orbit := a.WalkOrbit(center)
	fmt.Println(len(orbit))
	// Output: 3
}
