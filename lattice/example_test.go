// SPDX-License-Identifier: MIT

package lattice_test

import (
	"fmt"

	"github.com/katalvlaran/rcground/lattice"
)

// ExampleFromViewport sizes a lattice for a 330×100 pixel viewport with
// 32-pixel cells and prints the neighbour table row of a corner site.
func ExampleFromViewport() {
	l, _ := lattice.FromViewport(330, 100, 32, lattice.Open)
	fmt.Println(l)
	fmt.Println("N =", l.Size())
	fmt.Println("corner:", l.Neighbors(0))

	t, _ := lattice.FromViewport(330, 100, 32, lattice.Toroidal)
	fmt.Println("corner:", t.Neighbors(0))

	// Output:
	// 10x3 (open)
	// N = 30
	// corner: [-1 10 -1 1]
	// corner: [20 10 9 1]
}
