// SPDX-License-Identifier: MIT
// Package gf2: sentinel error set.
// Algorithms return these sentinels (optionally wrapped with method context
// via %w) and never panic on user-triggered conditions.

package gf2

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a requested shape is negative.
	ErrBadShape = errors.New("gf2: invalid shape")

	// ErrOutOfRange indicates a row, column or bit index outside valid bounds.
	ErrOutOfRange = errors.New("gf2: index out of range")

	// ErrDimensionMismatch indicates incompatible operand sizes, e.g. a rhs
	// whose length differs from the matrix row count.
	ErrDimensionMismatch = errors.New("gf2: dimension mismatch")

	// ErrNilMatrix indicates a nil *Matrix, *Vector or *Echelon argument.
	ErrNilMatrix = errors.New("gf2: nil operand")

	// ErrUnknownMode indicates an elimination Mode outside the supported set.
	ErrUnknownMode = errors.New("gf2: unknown elimination mode")
)

// gf2Errorf attaches method and index context to a sentinel.
func gf2Errorf(method string, i, j int, err error) error {
	return fmt.Errorf("%s(%d,%d): %w", method, i, j, err)
}
