// SPDX-License-Identifier: MIT

package groundstate

import (
	"io"

	"github.com/katalvlaran/rcground/gf2"
	"github.com/katalvlaran/rcground/lattice"
	"github.com/sirupsen/logrus"
)

// Defaults, the single source of truth for zero-option behaviour.
const (
	// DefaultCellSize is the target cell edge in viewport pixels.
	DefaultCellSize = 32

	// DefaultBoundary keeps edge sites with fewer neighbours.
	DefaultBoundary = lattice.Open

	// DefaultMode reads the solution straight off the reduced system.
	DefaultMode = gf2.GaussJordan

	// DefaultVerify skips the post-solve residual check.
	DefaultVerify = false
)

const (
	panicCellSizeInvalid = "groundstate: WithCellSize: size must be > 0"
	panicBoundaryInvalid = "groundstate: WithBoundary: unknown boundary policy"
	panicModeInvalid     = "groundstate: WithMode: unknown elimination mode"
	panicLoggerNil       = "groundstate: WithLogger(nil)"
)

// Option mutates solver options. Constructors panic on nonsensical values
// (programmer error); solver operations never panic.
type Option func(*Options)

// Options is the resolved solver configuration.
type Options struct {
	cellSize int
	boundary lattice.Boundary
	mode     gf2.Mode
	verify   bool
	logger   logrus.FieldLogger
}

// CellSize returns the target cell edge in pixels.
func (o Options) CellSize() int { return o.cellSize }

// Boundary returns the lattice boundary policy.
func (o Options) Boundary() lattice.Boundary { return o.boundary }

// Mode returns the elimination style.
func (o Options) Mode() gf2.Mode { return o.mode }

// Verify reports whether every solve is followed by a residual check.
func (o Options) Verify() bool { return o.verify }

// WithCellSize sets the target cell edge used to derive rows and cols from
// the viewport. Panics if px <= 0.
func WithCellSize(px int) Option {
	if px <= 0 {
		panic(panicCellSizeInvalid)
	}

	return func(o *Options) { o.cellSize = px }
}

// WithBoundary fixes the boundary policy for every lattice the solver builds.
// Panics on an unknown policy.
func WithBoundary(b lattice.Boundary) Option {
	if !b.Valid() {
		panic(panicBoundaryInvalid)
	}

	return func(o *Options) { o.boundary = b }
}

// WithMode selects Gauss–Jordan or forward elimination with back-substitution.
// Both yield the same free=0 solution; the choice only moves work between
// elimination and extraction. Panics on an unknown mode.
func WithMode(m gf2.Mode) Option {
	if !m.Valid() {
		panic(panicModeInvalid)
	}

	return func(o *Options) { o.mode = m }
}

// WithVerify re-checks every site equation after each solve and turns a
// violation of a consistent system into ErrUnsatisfied.
func WithVerify() Option {
	return func(o *Options) { o.verify = true }
}

// WithLogger routes solver logs to l. Panics on nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
}

// DefaultOptions returns the configuration used when no Option is given.
// The default logger discards everything so library use stays silent.
func DefaultOptions() Options {
	silent := logrus.New()
	silent.SetOutput(io.Discard)

	return Options{
		cellSize: DefaultCellSize,
		boundary: DefaultBoundary,
		mode:     DefaultMode,
		verify:   DefaultVerify,
		logger:   silent,
	}
}

// gatherOptions applies opts over the defaults; last writer wins.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
