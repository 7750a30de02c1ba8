// SPDX-License-Identifier: MIT

package constraint

import (
	"fmt"

	"github.com/katalvlaran/rcground/gf2"
	"github.com/katalvlaran/rcground/lattice"
)

// Build zeroes a and b and writes the site equations of lat under the
// coupling flags cp.
//
// For every site idx:
//   - a[idx][idx] = 1;
//   - coupled: b[idx] = 1 and nothing else in row idx;
//   - free: a[idx][nb] = 1 for each existing neighbour nb, b[idx] stays 0.
//
// Errors:
//   - ErrNilInput for nil arguments.
//   - ErrShapeMismatch unless a is N×N, b has N bits and cp has N flags.
//
// Complexity: O(N × ceil(N/32)) for the zero fill, O(N) for the equations.
func Build(lat *lattice.Lattice, cp *Couplings, a *gf2.Matrix, b *gf2.Vector) error {
	if lat == nil || cp == nil || a == nil || b == nil {
		return ErrNilInput
	}
	n := lat.Size()
	if a.Rows() != n || a.Cols() != n || b.Len() != n || cp.Len() != n {
		return fmt.Errorf("Build(N=%d, A=%dx%d, b=%d, flags=%d): %w",
			n, a.Rows(), a.Cols(), b.Len(), cp.Len(), ErrShapeMismatch)
	}
	a.Zero()
	b.Zero()

	for idx := 0; idx < n; idx++ {
		if err := a.Set(idx, idx, true); err != nil {
			return err
		}
		if cp.at(idx) {
			if err := b.Set(idx, true); err != nil {
				return err
			}
			continue
		}
		for _, nb := range lat.Neighbors(idx) {
			if nb == lattice.NoNeighbor {
				continue
			}
			if err := a.Set(idx, nb, true); err != nil {
				return err
			}
		}
	}

	return nil
}

// Residual returns the sites whose equation spins violates, in ascending
// order. An empty result means spins solves the system for cp exactly.
// Neighbours are counted once each, matching Build.
func Residual(lat *lattice.Lattice, cp *Couplings, spins []bool) ([]int, error) {
	if lat == nil || cp == nil {
		return nil, ErrNilInput
	}
	n := lat.Size()
	if len(spins) != n || cp.Len() != n {
		return nil, fmt.Errorf("Residual(N=%d, spins=%d, flags=%d): %w", n, len(spins), cp.Len(), ErrShapeMismatch)
	}

	var bad []int
	var buf [4]int
	for idx := 0; idx < n; idx++ {
		if cp.at(idx) {
			if !spins[idx] {
				bad = append(bad, idx)
			}
			continue
		}
		sum := spins[idx]
		for _, nb := range lat.Adjacent(idx, buf[:0]) {
			sum = sum != spins[nb]
		}
		if sum {
			bad = append(bad, idx)
		}
	}

	return bad, nil
}
