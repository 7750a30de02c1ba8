// SPDX-License-Identifier: MIT

package constraint

import "errors"

var (
	// ErrSiteIndex indicates a site index outside [0, N).
	ErrSiteIndex = errors.New("constraint: site index out of range")
	// ErrShapeMismatch indicates storage not sized for the lattice.
	ErrShapeMismatch = errors.New("constraint: storage shape does not match lattice")
	// ErrNilInput indicates a nil lattice, coupling set, matrix or vector.
	ErrNilInput = errors.New("constraint: nil input")
)
