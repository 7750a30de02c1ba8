// SPDX-License-Identifier: MIT

// Package gf2 implements bit-packed linear algebra over GF(2), the field
// {0,1} with addition = XOR and multiplication = AND.
//
// Representation:
//
//   - Matrix stores rows×cols bits in one contiguous []uint32 arena.
//     Row r occupies Stride() = ceil(cols/32) words; column c of row r is bit
//     c&31 of word r*Stride() + c>>5.
//   - Vector stores n bits in ceil(n/32) words with the same bit order.
//
// Elimination:
//
//   - Eliminate reduces (A|b) in place with row swaps and row XORs only.
//     There is no scaling step: the sole non-zero scalar is 1.
//   - Columns are scanned left to right; the first row at or below the
//     current pivot row with a 1 becomes the pivot. Columns without one are
//     free variables.
//   - GaussJordan clears the pivot column in every other row, so Extract reads
//     x[pivotCol] = b[row] directly. ForwardOnly clears only rows below the
//     pivot and Extract back-substitutes by parity.
//   - Row XORs are word-wise and start at the pivot's word: every row the
//     eliminator touches is already zero to the left of the pivot column.
//
// Free-variable policy:
//
//   - Extract assigns 0 to every free column. The result is one fixed
//     representative of the 2^Nullity solutions; other representatives are
//     obtained by choosing the free columns differently.
//
// Complexity:
//
//   - Eliminate: O(rows × cols × ceil(cols/32)) word operations worst case.
//   - Extract:   O(rank) for GaussJordan, O(rank × ceil(cols/32)) for ForwardOnly.
//   - MulVec:    O(rows × ceil(cols/32)).
//
// Errors:
//
//   - ErrBadShape, ErrOutOfRange, ErrDimensionMismatch, ErrNilMatrix, ErrUnknownMode.
package gf2
