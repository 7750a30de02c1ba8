// SPDX-License-Identifier: MIT

package groundstate

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/rcground/constraint"
	"github.com/katalvlaran/rcground/gf2"
	"github.com/katalvlaran/rcground/lattice"
	"github.com/sirupsen/logrus"
)

// Solver owns one lattice, its coupling flags and every buffer the solve
// pipeline needs. It is not safe for concurrent use.
type Solver struct {
	opts Options
	log  logrus.FieldLogger

	width, height int // last viewport
	lat           *lattice.Lattice
	cp            *constraint.Couplings

	// per-solve storage, zeroed and rebuilt on every solve
	a     *gf2.Matrix
	b     *gf2.Vector
	ech   *gf2.Echelon
	x     *gf2.Vector
	spins []bool

	res Result
}

// New sizes a solver for a width×height viewport and solves the uncoupled
// lattice once. A viewport smaller than one cell is accepted; the solver
// then waits for a Resize before anything is solved.
//
// Errors: lattice.ErrBadShape for a negative viewport.
func New(width, height int, opts ...Option) (*Solver, error) {
	o := gatherOptions(opts...)
	s := &Solver{opts: o, log: o.logger}
	if _, err := s.Resize(width, height); err != nil {
		return nil, err
	}

	return s, nil
}

// Options returns the resolved configuration.
func (s *Solver) Options() Options { return s.opts }

// Lattice returns the current lattice geometry.
func (s *Solver) Lattice() *lattice.Lattice { return s.lat }

// Couplings returns the live coupling flags. Changes made through it take
// effect on the next Solve.
func (s *Solver) Couplings() *constraint.Couplings { return s.cp }

// Result returns the outcome of the most recent solve.
func (s *Solver) Result() Result {
	r := s.res
	r.Spins = slices.Clone(s.res.Spins)

	return r
}

// Resize recomputes the geometry for a new viewport, reallocates all storage,
// drops every coupling and solves.
func (s *Solver) Resize(width, height int) (Result, error) {
	lat, err := lattice.FromViewport(width, height, s.opts.cellSize, s.opts.boundary)
	if err != nil {
		return s.Result(), fmt.Errorf("Resize(%d,%d): %w", width, height, err)
	}
	if err = s.allocate(lat); err != nil {
		return s.Result(), fmt.Errorf("Resize(%d,%d): %w", width, height, err)
	}
	s.width, s.height = width, height

	s.log.WithFields(logrus.Fields{
		"width": width, "height": height, "cell": s.opts.cellSize,
		"rows": lat.Rows, "cols": lat.Cols, "boundary": lat.Boundary.String(),
	}).Info("lattice sized")

	return s.Solve()
}

// allocate replaces the lattice and sizes one arena per structure for it.
func (s *Solver) allocate(lat *lattice.Lattice) error {
	n := lat.Size()
	a, err := gf2.NewMatrix(n, n)
	if err != nil {
		return err
	}
	b, err := gf2.NewVector(n)
	if err != nil {
		return err
	}
	x, err := gf2.NewVector(n)
	if err != nil {
		return err
	}
	s.lat = lat
	s.cp = constraint.NewCouplings(n)
	s.a, s.b, s.x = a, b, x
	s.ech = gf2.NewEchelon(n, n)
	s.spins = make([]bool, n)

	return nil
}

// Solve runs build → eliminate → extract on the current couplings.
// An empty lattice yields a Result with Solved == false and no error.
func (s *Solver) Solve() (Result, error) {
	s.res = Result{
		Rows:     s.lat.Rows,
		Cols:     s.lat.Cols,
		Boundary: s.lat.Boundary,
		Mode:     s.opts.mode,
	}
	if s.lat.Empty() {
		s.log.WithFields(logrus.Fields{"width": s.width, "height": s.height}).
			Debug("empty lattice, no solve performed")

		return s.Result(), nil
	}

	if err := constraint.Build(s.lat, s.cp, s.a, s.b); err != nil {
		return s.Result(), fmt.Errorf("Solve: %w", err)
	}
	ech, err := gf2.Eliminate(s.a, s.b, s.opts.mode, s.ech)
	if err != nil {
		return s.Result(), fmt.Errorf("Solve: %w", err)
	}
	if _, err = gf2.Extract(s.a, s.b, ech, s.x); err != nil {
		return s.Result(), fmt.Errorf("Solve: %w", err)
	}
	s.spins = s.x.Bools(s.spins)
	bad, err := constraint.Residual(s.lat, s.cp, s.spins)
	if err != nil {
		return s.Result(), fmt.Errorf("Solve: %w", err)
	}

	s.res.Spins = s.spins
	s.res.Rank = ech.Rank
	s.res.Degeneracy = s.lat.Size() - ech.Rank
	s.res.Frustrated = !gf2.Consistent(s.b, ech)
	s.res.Violations = len(bad)
	s.res.Solved = true

	entry := s.log.WithFields(logrus.Fields{
		"rows": s.res.Rows, "cols": s.res.Cols, "coupled": s.cp.Count(),
		"rank": s.res.Rank, "degeneracy": s.res.Degeneracy, "mode": s.opts.mode.String(),
	})
	if s.res.Frustrated {
		entry.WithField("violations", s.res.Violations).Debug("solved, frustrated")
	} else {
		entry.Debug("solved")
	}

	if s.opts.verify && !s.res.Frustrated && s.res.Violations > 0 {
		entry.WithField("sites", bad).Error("solution violates site equations")

		return s.Result(), fmt.Errorf("Solve: %d sites: %w", len(bad), ErrUnsatisfied)
	}

	return s.Result(), nil
}

// Toggle flips the coupling of site idx and re-solves.
// An index outside [0, N) is rejected with ErrSiteIndex; nothing changes.
func (s *Solver) Toggle(idx int) (Result, error) {
	on, err := s.cp.Toggle(idx)
	if err != nil {
		s.log.WithFields(logrus.Fields{"index": idx, "n": s.lat.Size()}).Warn("toggle rejected")

		return s.Result(), fmt.Errorf("Toggle: %w", err)
	}
	s.log.WithFields(logrus.Fields{"index": idx, "coupled": on}).Debug("toggle")

	return s.Solve()
}

// ToggleAt flips the coupling of the site at (row, col) and re-solves.
func (s *Solver) ToggleAt(row, col int) (Result, error) {
	if !s.lat.InBounds(row, col) {
		s.log.WithFields(logrus.Fields{"row": row, "col": col}).Warn("toggle rejected")

		return s.Result(), fmt.Errorf("ToggleAt(%d,%d): %w", row, col, ErrSiteIndex)
	}

	return s.Toggle(s.lat.Index(row, col))
}

// Reset clears every coupling and re-solves.
func (s *Solver) Reset() (Result, error) {
	s.cp.Reset()
	s.log.Debug("couplings reset")

	return s.Solve()
}

// Verify checks the last solution against the site equations.
// Returns ErrFrustrated when the couplings admit no exact solution and
// ErrUnsatisfied when a consistent system was solved incorrectly.
// An unsolved (empty) lattice verifies trivially.
func (s *Solver) Verify() error {
	if !s.res.Solved {
		return nil
	}
	if s.res.Frustrated {
		return fmt.Errorf("Verify: %w", ErrFrustrated)
	}
	bad, err := constraint.Residual(s.lat, s.cp, s.res.Spins)
	if err != nil {
		return fmt.Errorf("Verify: %w", err)
	}
	if len(bad) > 0 {
		return fmt.Errorf("Verify: sites %v: %w", bad, ErrUnsatisfied)
	}

	return nil
}
