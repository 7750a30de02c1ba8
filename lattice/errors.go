// SPDX-License-Identifier: MIT

package lattice

import "errors"

var (
	// ErrBadShape indicates negative rows, cols or viewport dimensions.
	ErrBadShape = errors.New("lattice: shape must be non-negative")
	// ErrBadCellSize indicates a non-positive target cell size.
	ErrBadCellSize = errors.New("lattice: cell size must be > 0")
	// ErrUnknownBoundary indicates a Boundary value outside the supported set.
	ErrUnknownBoundary = errors.New("lattice: unknown boundary policy")
	// ErrLengthMismatch indicates a per-site slice whose length is not Size().
	ErrLengthMismatch = errors.New("lattice: per-site slice length mismatch")
)
