// SPDX-License-Identifier: MIT

package groundstate_test

import (
	"testing"

	"github.com/katalvlaran/rcground/constraint"
	"github.com/katalvlaran/rcground/groundstate"
	"github.com/katalvlaran/rcground/lattice"
	"github.com/stretchr/testify/require"
)

const cell = groundstate.DefaultCellSize

// newSolver builds a solver whose viewport holds exactly rows×cols cells.
func newSolver(t testing.TB, rows, cols int, opts ...groundstate.Option) *groundstate.Solver {
	t.Helper()
	s, err := groundstate.New(cols*cell, rows*cell, opts...)
	require.NoError(t, err)
	require.Equal(t, rows, s.Lattice().Rows)
	require.Equal(t, cols, s.Lattice().Cols)

	return s
}

// bruteForceCount enumerates every spin assignment of a small lattice and
// counts those satisfying all site equations.
func bruteForceCount(t testing.TB, lat *lattice.Lattice, cp *constraint.Couplings) int {
	t.Helper()
	n := lat.Size()
	require.LessOrEqual(t, n, 16, "brute force limited to 16 sites")
	spins := make([]bool, n)
	count := 0
	for mask := 0; mask < 1<<n; mask++ {
		for i := range spins {
			spins[i] = mask&(1<<i) != 0
		}
		bad, err := constraint.Residual(lat, cp, spins)
		require.NoError(t, err)
		if len(bad) == 0 {
			count++
		}
	}

	return count
}
