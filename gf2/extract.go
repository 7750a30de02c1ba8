// SPDX-License-Identifier: MIT

package gf2

import "fmt"

// Extract reads a particular solution x of A·x = b from a system reduced by
// Eliminate, with every free column set to 0.
//
// GaussJordan: each pivot row holds a single pivot bit plus free-column bits,
// so x[PivotCol[i]] = b[i].
// ForwardOnly: rows are processed from the last pivot row up; the unknown is
// b[i] XOR parity(row i AND x), where x so far only holds columns right of
// the pivot.
//
// Rows at or after ech.Rank are all-zero in A; a 1 in b on such a row means
// the system is inconsistent and the returned x satisfies the consistent
// rows only. Use Consistent to detect that case.
//
// dst is reused when it has cols bits; otherwise a new vector is allocated.
//
// Errors:
//   - ErrNilMatrix for nil operands, ErrDimensionMismatch when ech does not
//     describe a.
func Extract(a *Matrix, b *Vector, ech *Echelon, dst *Vector) (*Vector, error) {
	if a == nil || b == nil || ech == nil {
		return nil, ErrNilMatrix
	}
	if b.n != a.rows || len(ech.PivotCol) != a.rows || len(ech.PivotRow) != a.cols {
		return nil, fmt.Errorf("Extract(%dx%d): %w", a.rows, a.cols, ErrDimensionMismatch)
	}
	if dst == nil || dst.n != a.cols {
		dst, _ = NewVector(a.cols)
	} else {
		dst.Zero()
	}

	switch ech.Mode {
	case GaussJordan:
		for i := 0; i < ech.Rank; i++ {
			if b.bit(i) == 1 {
				dst.set(ech.PivotCol[i])
			}
		}
	case ForwardOnly:
		for i := ech.Rank - 1; i >= 0; i-- {
			if b.bit(i)^DotParity(a.Row(i), dst.words) == 1 {
				dst.set(ech.PivotCol[i])
			}
		}
	default:
		return nil, fmt.Errorf("Extract(mode=%d): %w", int(ech.Mode), ErrUnknownMode)
	}

	return dst, nil
}

// Consistent reports whether the reduced system has a solution: every row
// without a pivot must have a zero rhs bit.
func Consistent(b *Vector, ech *Echelon) bool {
	for i := ech.Rank; i < b.n; i++ {
		if b.bit(i) == 1 {
			return false
		}
	}

	return true
}

// Solve copies (A|b), eliminates with mode and extracts the free=0 solution.
// The inputs are left untouched; use Eliminate and Extract directly to
// reduce in place without allocating.
func Solve(a *Matrix, b *Vector, mode Mode) (*Vector, *Echelon, error) {
	if a == nil || b == nil {
		return nil, nil, ErrNilMatrix
	}
	ac, bc := a.Clone(), b.Clone()
	ech, err := Eliminate(ac, bc, mode, nil)
	if err != nil {
		return nil, nil, err
	}
	x, err := Extract(ac, bc, ech, nil)
	if err != nil {
		return nil, nil, err
	}

	return x, ech, nil
}
