// SPDX-License-Identifier: MIT

package groundstate

import (
	"github.com/katalvlaran/rcground/gf2"
	"github.com/katalvlaran/rcground/lattice"
)

// Result is the outcome of the most recent solve. Spins is owned by the
// caller; later solves do not modify it.
type Result struct {
	Rows, Cols int
	Boundary   lattice.Boundary
	Mode       gf2.Mode

	// Spins holds one value per site, row-major.
	Spins []bool
	// Rank is the number of pivots found.
	Rank int
	// Degeneracy is N − Rank, the number of free binary choices.
	Degeneracy int
	// Frustrated is true when the site equations contradict each other.
	// Spins then satisfies the independent equations only.
	Frustrated bool
	// Violations counts site equations Spins does not satisfy; always 0
	// for a solved, unfrustrated lattice.
	Violations int
	// Solved is false when the lattice has no sites and nothing was solved.
	Solved bool
}

// N returns the number of sites.
func (r Result) N() int { return r.Rows * r.Cols }

// Spin returns the spin at (row, col); false outside the lattice.
func (r Result) Spin(row, col int) bool {
	if row < 0 || row >= r.Rows || col < 0 || col >= r.Cols || !r.Solved {
		return false
	}

	return r.Spins[row*r.Cols+col]
}

// Up counts sites with spin 1.
func (r Result) Up() int {
	n := 0
	for _, s := range r.Spins {
		if s {
			n++
		}
	}

	return n
}

// GroundStates returns 2^Degeneracy as a float64, the size of the solution
// manifold, or 0 for a frustrated lattice. Float keeps large degeneracies
// representable.
func (r Result) GroundStates() float64 {
	if r.Frustrated || !r.Solved {
		return 0
	}
	v := 1.0
	for i := 0; i < r.Degeneracy; i++ {
		v *= 2
	}

	return v
}
