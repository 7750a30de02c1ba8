// SPDX-License-Identifier: MIT

package lattice_test

import (
	"testing"

	"github.com/katalvlaran/rcground/lattice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_InvalidInputs ensures negative shapes and unknown policies are rejected.
func TestNew_InvalidInputs(t *testing.T) {
	_, err := lattice.New(-1, 3, lattice.Open)
	require.ErrorIs(t, err, lattice.ErrBadShape)

	_, err = lattice.New(3, -1, lattice.Toroidal)
	require.ErrorIs(t, err, lattice.ErrBadShape)

	_, err = lattice.New(3, 3, lattice.Boundary(7))
	require.ErrorIs(t, err, lattice.ErrUnknownBoundary)
}

// TestFromViewport checks floor division and the empty-viewport guard.
func TestFromViewport(t *testing.T) {
	cases := []struct {
		name       string
		w, h, cell int
		rows, cols int
	}{
		{"exact", 320, 160, 32, 5, 10},
		{"floored", 350, 190, 32, 5, 10},
		{"zero width", 0, 500, 32, 0, 0},
		{"zero height", 500, 0, 32, 0, 0},
		{"smaller than a cell", 31, 31, 32, 0, 0},
		{"single cell", 32, 32, 32, 1, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l, err := lattice.FromViewport(tc.w, tc.h, tc.cell, lattice.Open)
			require.NoError(t, err)
			assert.Equal(t, tc.rows, l.Rows)
			assert.Equal(t, tc.cols, l.Cols)
			assert.Equal(t, tc.rows*tc.cols, l.Size())
			assert.Equal(t, tc.rows*tc.cols == 0, l.Empty())
		})
	}

	_, err := lattice.FromViewport(100, 100, 0, lattice.Open)
	require.ErrorIs(t, err, lattice.ErrBadCellSize)
	_, err = lattice.FromViewport(-5, 100, 10, lattice.Open)
	require.ErrorIs(t, err, lattice.ErrBadShape)
}

// TestNeighbors_Open verifies sentinels at every edge of a 3×4 open lattice.
//
//	0  1  2  3
//	4  5  6  7
//	8  9 10 11
func TestNeighbors_Open(t *testing.T) {
	l, err := lattice.New(3, 4, lattice.Open)
	require.NoError(t, err)

	nb := lattice.NoNeighbor
	assert.Equal(t, [4]int{nb, 4, nb, 1}, l.Neighbors(0))
	assert.Equal(t, [4]int{nb, 7, 2, nb}, l.Neighbors(3))
	assert.Equal(t, [4]int{1, 9, 4, 6}, l.Neighbors(5))
	assert.Equal(t, [4]int{7, nb, 10, nb}, l.Neighbors(11))

	assert.Equal(t, 2, l.Degree(0))
	assert.Equal(t, 3, l.Degree(1))
	assert.Equal(t, 4, l.Degree(5))
}

// TestNeighbors_Toroidal verifies wrap-around on both axes.
func TestNeighbors_Toroidal(t *testing.T) {
	l, err := lattice.New(3, 4, lattice.Toroidal)
	require.NoError(t, err)

	assert.Equal(t, [4]int{8, 4, 3, 1}, l.Neighbors(0))
	assert.Equal(t, [4]int{7, 3, 10, 8}, l.Neighbors(11))
	assert.Equal(t, 11, l.Neighbor(8, lattice.Left))
	assert.Equal(t, 0, l.Neighbor(8, lattice.Down))

	for idx := 0; idx < l.Size(); idx++ {
		assert.Equal(t, 4, l.Degree(idx), "site %d", idx)
	}
}

// TestNeighbors_ToroidalNarrow covers sides shorter than three, where the
// wrapped slots collapse onto the same site or onto the site itself.
func TestNeighbors_ToroidalNarrow(t *testing.T) {
	l, err := lattice.New(2, 2, lattice.Toroidal)
	require.NoError(t, err)
	assert.Equal(t, [4]int{2, 2, 1, 1}, l.Neighbors(0))
	assert.Equal(t, 2, l.Degree(0))

	one, err := lattice.New(1, 1, lattice.Toroidal)
	require.NoError(t, err)
	assert.Equal(t, [4]int{0, 0, 0, 0}, one.Neighbors(0))
	assert.Equal(t, 0, one.Degree(0))
}

// TestIndexCoordinate checks the row-major round trip.
func TestIndexCoordinate(t *testing.T) {
	l, err := lattice.New(5, 7, lattice.Open)
	require.NoError(t, err)
	for idx := 0; idx < l.Size(); idx++ {
		r, c := l.Coordinate(idx)
		require.True(t, l.InBounds(r, c))
		require.Equal(t, idx, l.Index(r, c))
	}
	assert.True(t, l.Contains(34))
	assert.False(t, l.Contains(35))
	assert.False(t, l.Contains(-1))
}

func TestBoundaryParseAndString(t *testing.T) {
	b, err := lattice.ParseBoundary("toroidal")
	require.NoError(t, err)
	assert.Equal(t, lattice.Toroidal, b)
	assert.Equal(t, "open", lattice.Open.String())

	_, err = lattice.ParseBoundary("mobius")
	require.ErrorIs(t, err, lattice.ErrUnknownBoundary)

	l, _ := lattice.New(2, 3, lattice.Toroidal)
	assert.Equal(t, "3x2 (toroidal)", l.String())
}

// TestAdjacent deduplicates collapsed toroidal slots and drops self-references.
func TestAdjacent(t *testing.T) {
	l, err := lattice.New(1, 3, lattice.Toroidal)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1}, l.Adjacent(0, nil))

	open, err := lattice.New(2, 2, lattice.Open)
	require.NoError(t, err)
	dst := []int{99}
	assert.Equal(t, []int{99, 2, 1}, open.Adjacent(0, dst), "appends after existing entries")
}
