// SPDX-License-Identifier: MIT

package groundstate

import (
	"errors"

	"github.com/katalvlaran/rcground/constraint"
)

var (
	// ErrSiteIndex indicates a toggle outside the current lattice.
	// It is the same sentinel the coupling set returns.
	ErrSiteIndex = constraint.ErrSiteIndex

	// ErrUnsatisfied indicates a solution that violates a site equation of a
	// consistent system. It signals a solver defect, never a user error.
	ErrUnsatisfied = errors.New("groundstate: solution violates a site equation")

	// ErrFrustrated indicates a coupling pattern whose equations contradict
	// each other, so no spin assignment satisfies all of them.
	ErrFrustrated = errors.New("groundstate: coupling pattern is frustrated")
)
