// SPDX-License-Identifier: MIT

package lattice

import "fmt"

// New constructs a rows×cols lattice under boundary policy b.
// Zero rows or cols give an empty lattice, which is valid.
// Returns ErrBadShape for negative dimensions and ErrUnknownBoundary
// for an unsupported policy.
// Complexity: O(rows×cols) time and memory.
func New(rows, cols int, b Boundary) (*Lattice, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("New(%d,%d): %w", rows, cols, ErrBadShape)
	}
	if !b.Valid() {
		return nil, fmt.Errorf("New(%d,%d): %w", rows, cols, ErrUnknownBoundary)
	}
	if rows == 0 || cols == 0 {
		// an empty lattice has no sites, keep both sides at zero
		rows, cols = 0, 0
	}
	l := &Lattice{Rows: rows, Cols: cols, Boundary: b}
	l.nbr = make([]int, 4*rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			base := 4 * l.Index(r, c)
			l.nbr[base+int(Up)] = l.resolve(r-1, c)
			l.nbr[base+int(Down)] = l.resolve(r+1, c)
			l.nbr[base+int(Left)] = l.resolve(r, c-1)
			l.nbr[base+int(Right)] = l.resolve(r, c+1)
		}
	}

	return l, nil
}

// FromViewport sizes a lattice to fit a width×height viewport with square
// cells of cellSize: rows = floor(height/cellSize), cols = floor(width/cellSize).
// A viewport smaller than one cell yields an empty lattice.
func FromViewport(width, height, cellSize int, b Boundary) (*Lattice, error) {
	if cellSize <= 0 {
		return nil, fmt.Errorf("FromViewport(cell=%d): %w", cellSize, ErrBadCellSize)
	}
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("FromViewport(%d,%d): %w", width, height, ErrBadShape)
	}

	return New(height/cellSize, width/cellSize, b)
}

// resolve maps a possibly out-of-range (r,c) to a site index under the
// lattice boundary policy.
func (l *Lattice) resolve(r, c int) int {
	if l.Boundary == Toroidal {
		return l.Index((r+l.Rows)%l.Rows, (c+l.Cols)%l.Cols)
	}
	if !l.InBounds(r, c) {
		return NoNeighbor
	}

	return l.Index(r, c)
}

// Size returns the number of sites N = Rows*Cols.
func (l *Lattice) Size() int {
	return l.Rows * l.Cols
}

// Empty reports whether the lattice has no sites.
func (l *Lattice) Empty() bool {
	return l.Size() == 0
}

// Index returns the row-major index of (r,c). No bounds check.
func (l *Lattice) Index(r, c int) int {
	return r*l.Cols + c
}

// Coordinate converts a row-major index back to (r,c).
func (l *Lattice) Coordinate(idx int) (r, c int) {
	return idx / l.Cols, idx % l.Cols
}

// InBounds reports whether (r,c) lies within the lattice.
func (l *Lattice) InBounds(r, c int) bool {
	return r >= 0 && r < l.Rows && c >= 0 && c < l.Cols
}

// Contains reports whether idx is a valid site index.
func (l *Lattice) Contains(idx int) bool {
	return idx >= 0 && idx < l.Size()
}

// Neighbor returns the neighbour of idx in direction d, or NoNeighbor.
// Complexity: O(1).
func (l *Lattice) Neighbor(idx int, d Direction) int {
	return l.nbr[4*idx+int(d)]
}

// Neighbors returns the [up, down, left, right] table row of idx.
// Under Toroidal on a lattice with a side shorter than three, entries may
// repeat or equal idx itself.
func (l *Lattice) Neighbors(idx int) [4]int {
	base := 4 * idx

	return [4]int{l.nbr[base], l.nbr[base+1], l.nbr[base+2], l.nbr[base+3]}
}

// Adjacent appends the distinct existing neighbours of idx, excluding idx
// itself, to dst and returns it. Slots that collapse on narrow toroidal
// lattices are reported once.
func (l *Lattice) Adjacent(idx int, dst []int) []int {
	base := len(dst)
	for _, v := range l.Neighbors(idx) {
		if v == NoNeighbor || v == idx {
			continue
		}
		dup := false
		for _, u := range dst[base:] {
			if u == v {
				dup = true
				break
			}
		}
		if !dup {
			dst = append(dst, v)
		}
	}

	return dst
}

// Degree counts the distinct neighbours of idx other than idx itself.
func (l *Lattice) Degree(idx int) int {
	var buf [4]int

	return len(l.Adjacent(idx, buf[:0]))
}

// String formats the lattice as "{cols}x{rows} (boundary)".
func (l *Lattice) String() string {
	return fmt.Sprintf("%dx%d (%s)", l.Cols, l.Rows, l.Boundary)
}
