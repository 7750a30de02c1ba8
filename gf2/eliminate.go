// SPDX-License-Identifier: MIT

package gf2

import "fmt"

// Mode selects how far each pivot column is cleared.
type Mode int

const (
	// GaussJordan clears the pivot column in all other rows (reduced form).
	GaussJordan Mode = iota
	// ForwardOnly clears the pivot column only below the pivot (echelon form).
	ForwardOnly
)

// String returns the mode name used in flags and logs.
func (m Mode) String() string {
	switch m {
	case GaussJordan:
		return "gauss-jordan"
	case ForwardOnly:
		return "forward"
	default:
		return "unknown"
	}
}

// Valid reports whether m is a supported mode.
func (m Mode) Valid() bool {
	return m == GaussJordan || m == ForwardOnly
}

// ParseMode maps "gauss-jordan" or "forward" to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "gauss-jordan", "gj":
		return GaussJordan, nil
	case "forward", "forward-only":
		return ForwardOnly, nil
	default:
		return GaussJordan, fmt.Errorf("ParseMode(%q): %w", s, ErrUnknownMode)
	}
}

// NoPivot marks a row without pivot column or a column without pivot row.
const NoPivot = -1

// Echelon records the outcome of one elimination. It doubles as a reusable
// workspace: passing it back into Eliminate reuses its slices.
type Echelon struct {
	// Mode is the elimination style that produced this record.
	Mode Mode
	// Rank is the number of pivots found.
	Rank int
	// PivotCol maps row → pivot column; NoPivot for rows at or after Rank.
	PivotCol []int
	// PivotRow maps column → pivot row; NoPivot for free columns.
	PivotRow []int
}

// NewEchelon allocates a workspace for a rows×cols system.
func NewEchelon(rows, cols int) *Echelon {
	e := &Echelon{}
	e.reset(rows, cols)

	return e
}

// reset resizes the maps, reusing capacity, and fills them with NoPivot.
func (e *Echelon) reset(rows, cols int) {
	if cap(e.PivotCol) < rows {
		e.PivotCol = make([]int, rows)
	}
	if cap(e.PivotRow) < cols {
		e.PivotRow = make([]int, cols)
	}
	e.PivotCol = e.PivotCol[:rows]
	e.PivotRow = e.PivotRow[:cols]
	for i := range e.PivotCol {
		e.PivotCol[i] = NoPivot
	}
	for i := range e.PivotRow {
		e.PivotRow[i] = NoPivot
	}
	e.Rank = 0
}

// Nullity returns cols − rank, the number of free columns.
func (e *Echelon) Nullity() int {
	return len(e.PivotRow) - e.Rank
}

// IsFree reports whether column c has no pivot.
func (e *Echelon) IsFree(c int) bool {
	return e.PivotRow[c] == NoPivot
}

// FreeColumns returns the free column indices in ascending order.
func (e *Echelon) FreeColumns() []int {
	free := make([]int, 0, e.Nullity())
	for c, r := range e.PivotRow {
		if r == NoPivot {
			free = append(free, c)
		}
	}

	return free
}

// Eliminate reduces the augmented system (A|b) in place over GF(2).
//
// Implementation:
//   - Stage 1: validate operands; reset ws (allocated if nil).
//   - Stage 2: for each column, pick the first row at or below the current
//     pivot row with a 1; a column with none is free.
//   - Stage 3: swap that row into place (matrix words and rhs bit), record
//     the pivot, then XOR it into every row that has a 1 in the column:
//     rows below only (ForwardOnly) or all other rows (GaussJordan).
//   - Stage 4: stop when columns are exhausted or every row holds a pivot;
//     the pivot count is the rank.
//
// Behavior highlights:
//   - Only row swaps and row XORs; no scaling exists over GF(2).
//   - Swaps and XORs start at the pivot's word: rows at or below the pivot
//     row are zero left of the current column, and the pivot row is zero
//     there too, so earlier words are never changed.
//   - Deterministic: the same input always yields the same pivots.
//
// Errors:
//   - ErrNilMatrix for nil a or b, ErrDimensionMismatch if b.Len() != a.Rows(),
//     ErrUnknownMode for an unsupported mode.
//
// Complexity:
//   - Time O(rows × cols × stride) word operations worst case; Space O(1)
//     beyond ws.
func Eliminate(a *Matrix, b *Vector, mode Mode, ws *Echelon) (*Echelon, error) {
	if a == nil || b == nil {
		return nil, ErrNilMatrix
	}
	if b.n != a.rows {
		return nil, gf2Errorf("Eliminate", a.rows, b.n, ErrDimensionMismatch)
	}
	if !mode.Valid() {
		return nil, fmt.Errorf("Eliminate(mode=%d): %w", int(mode), ErrUnknownMode)
	}
	if ws == nil {
		ws = &Echelon{}
	}
	ws.reset(a.rows, a.cols)
	ws.Mode = mode

	rows, stride, data := a.rows, a.stride, a.data
	pr := 0
	for col := 0; col < a.cols && pr < rows; col++ {
		w := col >> wordShift
		mask := uint32(1) << uint(col&wordMask)

		// find pivot
		sel := NoPivot
		for r := pr; r < rows; r++ {
			if data[r*stride+w]&mask != 0 {
				sel = r
				break
			}
		}
		if sel == NoPivot {
			continue // free column
		}

		if sel != pr {
			a.swapRows(pr, sel, w)
			b.swap(pr, sel)
		}
		ws.PivotCol[pr] = col
		ws.PivotRow[col] = pr

		start := pr + 1
		if mode == GaussJordan {
			start = 0
		}
		pivot := data[pr*stride+w : (pr+1)*stride]
		pb := b.bit(pr)
		for r := start; r < rows; r++ {
			off := r * stride
			if r == pr || data[off+w]&mask == 0 {
				continue
			}
			xorInto(data[off+w:off+stride], pivot)
			if pb != 0 {
				b.flip(r)
			}
		}
		pr++
	}
	ws.Rank = pr

	return ws, nil
}
