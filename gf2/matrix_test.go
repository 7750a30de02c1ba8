// SPDX-License-Identifier: MIT

package gf2_test

import (
	"testing"

	"github.com/katalvlaran/rcground/gf2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewMatrix_Shapes covers stride rounding at word boundaries and the
// rejection of negative shapes.
func TestNewMatrix_Shapes(t *testing.T) {
	cases := []struct{ cols, stride int }{
		{0, 0}, {1, 1}, {31, 1}, {32, 1}, {33, 2}, {64, 2}, {65, 3},
	}
	for _, tc := range cases {
		m, err := gf2.NewMatrix(3, tc.cols)
		require.NoError(t, err)
		assert.Equal(t, tc.stride, m.Stride(), "cols=%d", tc.cols)
		assert.Equal(t, tc.stride, gf2.Words(tc.cols))
		assert.Len(t, m.Row(2), tc.stride)
	}

	_, err := gf2.NewMatrix(-1, 3)
	require.ErrorIs(t, err, gf2.ErrBadShape)
	_, err = gf2.NewMatrix(3, -1)
	require.ErrorIs(t, err, gf2.ErrBadShape)
}

// TestMatrix_OutOfRange ensures public indexers return ErrOutOfRange instead of panicking.
func TestMatrix_OutOfRange(t *testing.T) {
	m, err := gf2.NewMatrix(2, 40)
	require.NoError(t, err)

	_, err = m.Get(-1, 0)
	require.ErrorIs(t, err, gf2.ErrOutOfRange)
	_, err = m.Get(0, 40)
	require.ErrorIs(t, err, gf2.ErrOutOfRange)
	require.ErrorIs(t, m.Set(2, 0, true), gf2.ErrOutOfRange)
	require.ErrorIs(t, m.Flip(0, -1), gf2.ErrOutOfRange)
	require.ErrorIs(t, m.SwapRows(0, 2), gf2.ErrOutOfRange)
	require.ErrorIs(t, m.XorRow(-1, 0), gf2.ErrOutOfRange)
}

// TestMatrix_SetGetFlip writes bits on both sides of a word boundary.
func TestMatrix_SetGetFlip(t *testing.T) {
	m, err := gf2.NewMatrix(2, 40)
	require.NoError(t, err)

	for _, c := range []int{0, 31, 32, 39} {
		require.NoError(t, m.Set(1, c, true))
		v, err := m.Get(1, c)
		require.NoError(t, err)
		assert.True(t, v, "col %d", c)
	}
	assert.Equal(t, []uint32{1 | 1<<31, 1 | 1<<7}, m.Row(1))
	assert.Equal(t, 4, m.RowOnes(1))

	require.NoError(t, m.Set(1, 31, true)) // idempotent
	assert.Equal(t, 4, m.RowOnes(1))

	require.NoError(t, m.Flip(1, 31))
	v, _ := m.Get(1, 31)
	assert.False(t, v)

	require.NoError(t, m.Set(1, 0, false))
	assert.Equal(t, 2, m.RowOnes(1))

	m.Zero()
	assert.Equal(t, 0, m.RowOnes(1))
}

// TestMatrix_RowOps verifies SwapRows and XorRow over GF(2).
func TestMatrix_RowOps(t *testing.T) {
	m := mustMatrix(t, []string{
		"1100",
		"0110",
	})
	require.NoError(t, m.XorRow(0, 1))
	assert.Equal(t, "1010\n0110\n", m.String())

	require.NoError(t, m.XorRow(0, 1))
	assert.Equal(t, "1100\n0110\n", m.String(), "adding a row twice cancels")

	require.NoError(t, m.SwapRows(0, 1))
	assert.Equal(t, "0110\n1100\n", m.String())
}

func TestMatrix_CloneEqual(t *testing.T) {
	m := mustMatrix(t, []string{"101", "010"})
	c := m.Clone()
	require.True(t, m.Equal(c))

	require.NoError(t, c.Flip(0, 0))
	assert.False(t, m.Equal(c))
	v, _ := m.Get(0, 0)
	assert.True(t, v, "clone must not share storage")
}

// TestMulVec checks A·x on a small system and the length guard.
func TestMulVec(t *testing.T) {
	a := mustMatrix(t, []string{
		"110",
		"011",
		"111",
	})
	x := gf2.VectorFromBools([]bool{true, true, false})
	y, err := gf2.MulVec(a, x)
	require.NoError(t, err)
	assert.Equal(t, "010", y.String())

	_, err = gf2.MulVec(a, gf2.VectorFromBools([]bool{true}))
	require.ErrorIs(t, err, gf2.ErrDimensionMismatch)
	_, err = gf2.MulVec(nil, x)
	require.ErrorIs(t, err, gf2.ErrNilMatrix)
}

func TestParity(t *testing.T) {
	assert.Equal(t, uint32(0), gf2.Parity(0))
	assert.Equal(t, uint32(1), gf2.Parity(1<<31))
	assert.Equal(t, uint32(0), gf2.Parity(0x6996))
	assert.Equal(t, uint32(1), gf2.Parity(0x7))

	assert.Equal(t, uint32(1), gf2.DotParity([]uint32{0b1011, 1}, []uint32{0b0001, 0}))
	assert.Equal(t, uint32(0), gf2.DotParity([]uint32{0b1011, 1}, []uint32{0b0011, 0}))
	assert.Equal(t, uint32(1), gf2.DotParity([]uint32{0b1011, 1}, []uint32{0b0011, 1}))
	assert.Equal(t, uint32(0), gf2.DotParity([]uint32{0b11, 1}, []uint32{0b11}), "extra words ignored")
}
