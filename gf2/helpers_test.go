// SPDX-License-Identifier: MIT

package gf2_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/rcground/gf2"
	"github.com/stretchr/testify/require"
)

// mustMatrix builds a matrix from rows of '0'/'1' characters.
func mustMatrix(tb testing.TB, rows []string) *gf2.Matrix {
	tb.Helper()
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	m, err := gf2.NewMatrix(len(rows), cols)
	require.NoError(tb, err)
	for r, line := range rows {
		require.Len(tb, line, cols)
		for c, ch := range line {
			if ch == '1' {
				require.NoError(tb, m.Set(r, c, true))
			}
		}
	}

	return m
}

// randomSystem fills a rows×cols matrix and rhs with density p.
func randomSystem(tb testing.TB, rng *rand.Rand, rows, cols int, p float64) (*gf2.Matrix, *gf2.Vector) {
	tb.Helper()
	a, err := gf2.NewMatrix(rows, cols)
	require.NoError(tb, err)
	b, err := gf2.NewVector(rows)
	require.NoError(tb, err)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if rng.Float64() < p {
				require.NoError(tb, a.Set(r, c, true))
			}
		}
		if rng.Intn(2) == 1 {
			require.NoError(tb, b.Set(r, true))
		}
	}

	return a, b
}

// denseRank is an unpacked reference rank over GF(2), one bool per entry.
func denseRank(a *gf2.Matrix) int {
	rows, cols := a.Rows(), a.Cols()
	m := make([][]bool, rows)
	for r := range m {
		m[r] = make([]bool, cols)
		for c := range m[r] {
			m[r][c], _ = a.Get(r, c)
		}
	}
	rank := 0
	for c := 0; c < cols && rank < rows; c++ {
		p := -1
		for r := rank; r < rows; r++ {
			if m[r][c] {
				p = r
				break
			}
		}
		if p < 0 {
			continue
		}
		m[rank], m[p] = m[p], m[rank]
		for r := 0; r < rows; r++ {
			if r != rank && m[r][c] {
				for k := range m[r] {
					m[r][k] = m[r][k] != m[rank][k]
				}
			}
		}
		rank++
	}

	return rank
}

// countSolutions enumerates all 2^cols assignments and counts those with A·x = b.
func countSolutions(tb testing.TB, a *gf2.Matrix, b *gf2.Vector) int {
	tb.Helper()
	cols := a.Cols()
	require.LessOrEqual(tb, cols, 16, "brute force limited to 16 unknowns")
	count := 0
	x, _ := gf2.NewVector(cols)
	for mask := 0; mask < 1<<cols; mask++ {
		if cols > 0 {
			x.Words()[0] = uint32(mask)
		}
		y, err := gf2.MulVec(a, x)
		require.NoError(tb, err)
		if y.Equal(b) {
			count++
		}
	}

	return count
}
