// SPDX-License-Identifier: MIT

package gf2

import (
	"slices"
	"strings"
)

// Matrix is a rows×cols bit matrix over GF(2), packed row-major into a
// single []uint32 arena of rows*stride words.
type Matrix struct {
	rows, cols int      // shape
	stride     int      // words per row, ceil(cols/32)
	data       []uint32 // flat backing storage, length == rows*stride
}

// NewMatrix allocates a zero rows×cols matrix.
// Stage 1 (Validate): rows, cols ≥ 0; an empty shape is allowed.
// Stage 2 (Prepare): allocate one contiguous arena.
// Complexity: O(rows × ceil(cols/32)) time and memory.
func NewMatrix(rows, cols int) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, gf2Errorf("NewMatrix", rows, cols, ErrBadShape)
	}
	stride := Words(cols)

	return &Matrix{rows: rows, cols: cols, stride: stride, data: make([]uint32, rows*stride)}, nil
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// Stride returns the number of packed words per row.
func (m *Matrix) Stride() int { return m.stride }

// Row returns the packed words of row r as a view into the arena.
// Writes through the view modify the matrix. r must be in [0, Rows()).
func (m *Matrix) Row(r int) []uint32 {
	return m.data[r*m.stride : (r+1)*m.stride : (r+1)*m.stride]
}

// check validates (r,c) for the public indexers.
func (m *Matrix) check(method string, r, c int) error {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		return gf2Errorf(method, r, c, ErrOutOfRange)
	}

	return nil
}

// bit returns bit (r,c) as 0 or 1 without bounds checks.
func (m *Matrix) bit(r, c int) uint32 {
	return (m.data[r*m.stride+c>>wordShift] >> uint(c&wordMask)) & 1
}

// Get reports whether entry (r,c) is 1.
// Returns ErrOutOfRange for an invalid index.
func (m *Matrix) Get(r, c int) (bool, error) {
	if err := m.check("Get", r, c); err != nil {
		return false, err
	}

	return m.bit(r, c) == 1, nil
}

// Set writes entry (r,c). Setting an entry that is already 1 keeps it 1.
func (m *Matrix) Set(r, c int, v bool) error {
	if err := m.check("Set", r, c); err != nil {
		return err
	}
	w := &m.data[r*m.stride+c>>wordShift]
	mask := uint32(1) << uint(c&wordMask)
	if v {
		*w |= mask
	} else {
		*w &^= mask
	}

	return nil
}

// Flip toggles entry (r,c), i.e. adds 1 to it over GF(2).
func (m *Matrix) Flip(r, c int) error {
	if err := m.check("Flip", r, c); err != nil {
		return err
	}
	m.data[r*m.stride+c>>wordShift] ^= uint32(1) << uint(c&wordMask)

	return nil
}

// Zero clears every entry in place without reallocating.
func (m *Matrix) Zero() {
	clear(m.data)
}

// SwapRows exchanges rows i and j.
func (m *Matrix) SwapRows(i, j int) error {
	if i < 0 || i >= m.rows || j < 0 || j >= m.rows {
		return gf2Errorf("SwapRows", i, j, ErrOutOfRange)
	}
	m.swapRows(i, j, 0)

	return nil
}

// swapRows exchanges rows i and j from word `from` onward.
func (m *Matrix) swapRows(i, j, from int) {
	if i == j {
		return
	}
	a := m.data[i*m.stride+from : (i+1)*m.stride]
	b := m.data[j*m.stride+from : (j+1)*m.stride]
	for k := range a {
		a[k], b[k] = b[k], a[k]
	}
}

// XorRow adds row src into row dst: dst ^= src.
func (m *Matrix) XorRow(dst, src int) error {
	if dst < 0 || dst >= m.rows || src < 0 || src >= m.rows {
		return gf2Errorf("XorRow", dst, src, ErrOutOfRange)
	}
	m.xorRow(dst, src, 0)

	return nil
}

// xorRow computes row dst ^= row src from word `from` onward.
func (m *Matrix) xorRow(dst, src, from int) {
	xorInto(m.data[dst*m.stride+from:(dst+1)*m.stride], m.data[src*m.stride+from:(src+1)*m.stride])
}

// RowOnes counts the 1-entries of row r.
func (m *Matrix) RowOnes(r int) int {
	n := 0
	for _, w := range m.Row(r) {
		n += onesCount(w)
	}

	return n
}

// Clone returns a deep copy.
func (m *Matrix) Clone() *Matrix {
	return &Matrix{rows: m.rows, cols: m.cols, stride: m.stride, data: slices.Clone(m.data)}
}

// Equal reports whether o has the same shape and entries.
func (m *Matrix) Equal(o *Matrix) bool {
	if m == nil || o == nil {
		return m == o
	}

	return m.rows == o.rows && m.cols == o.cols && slices.Equal(m.data, o.data)
}

// String renders one line per row with '1' and '0' per column.
func (m *Matrix) String() string {
	var sb strings.Builder
	sb.Grow(m.rows * (m.cols + 1))
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			sb.WriteByte('0' + byte(m.bit(r, c)))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// MulVec returns A·x over GF(2): bit r of the result is parity(row r AND x).
// Returns ErrDimensionMismatch if x.Len() != a.Cols().
// Complexity: O(rows × stride).
func MulVec(a *Matrix, x *Vector) (*Vector, error) {
	if a == nil || x == nil {
		return nil, ErrNilMatrix
	}
	if x.n != a.cols {
		return nil, gf2Errorf("MulVec", a.cols, x.n, ErrDimensionMismatch)
	}
	out, _ := NewVector(a.rows)
	for r := 0; r < a.rows; r++ {
		if DotParity(a.Row(r), x.words) == 1 {
			out.set(r)
		}
	}

	return out, nil
}
