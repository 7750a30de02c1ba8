// SPDX-License-Identifier: MIT

// Command rcdemo sizes a lattice from a viewport, applies a run of random
// coupling toggles and prints the final ground state with its degeneracy
// history, or opens an interactive board with -i.
//
//	rcdemo -width 640 -height 320 -toggles 12 -seed 7 -boundary toroidal
package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/katalvlaran/rcground/gf2"
	"github.com/katalvlaran/rcground/groundstate"
	"github.com/katalvlaran/rcground/lattice"
	"github.com/katalvlaran/rcground/render"
	"github.com/sirupsen/logrus"
)

type config struct {
	width, height, cell int
	boundary            string
	mode                string
	toggles             int
	seed                int64
	dark, plain         bool
	interactive         bool
	verbose             bool
}

func parseFlags(args []string) (config, error) {
	var c config
	fs := flag.NewFlagSet("rcdemo", flag.ContinueOnError)
	fs.IntVar(&c.width, "width", 640, "viewport width in pixels")
	fs.IntVar(&c.height, "height", 320, "viewport height in pixels")
	fs.IntVar(&c.cell, "cell", groundstate.DefaultCellSize, "cell size in pixels")
	fs.StringVar(&c.boundary, "boundary", groundstate.DefaultBoundary.String(), "open or toroidal")
	fs.StringVar(&c.mode, "mode", groundstate.DefaultMode.String(), "gauss-jordan or forward")
	fs.IntVar(&c.toggles, "toggles", 10, "number of random coupling toggles")
	fs.Int64Var(&c.seed, "seed", 1, "random seed for toggles")
	fs.BoolVar(&c.dark, "dark", false, "dark palette")
	fs.BoolVar(&c.plain, "plain", false, "plain glyphs instead of colour")
	fs.BoolVar(&c.interactive, "i", false, "interactive terminal board")
	fs.BoolVar(&c.verbose, "v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return c, err
	}
	if c.cell <= 0 {
		return c, fmt.Errorf("rcdemo: -cell must be positive, got %d", c.cell)
	}
	if c.toggles < 0 {
		return c, fmt.Errorf("rcdemo: -toggles must be non-negative, got %d", c.toggles)
	}

	return c, nil
}

func run(c config, log *logrus.Logger) error {
	b, err := lattice.ParseBoundary(c.boundary)
	if err != nil {
		return err
	}
	m, err := gf2.ParseMode(c.mode)
	if err != nil {
		return err
	}

	s, err := groundstate.New(c.width, c.height,
		groundstate.WithCellSize(c.cell),
		groundstate.WithBoundary(b),
		groundstate.WithMode(m),
		groundstate.WithLogger(log),
	)
	if err != nil {
		return err
	}
	th := render.Light
	if c.dark {
		th = render.Dark
	}
	if c.interactive {
		return interactive(s, c, th, log)
	}

	res := s.Result()
	if !res.Solved {
		fmt.Println(render.Status(res))
		return nil
	}

	rng := rand.New(rand.NewSource(c.seed))
	history := []int{res.Degeneracy}
	for i := 0; i < c.toggles; i++ {
		idx := rng.Intn(res.N())
		if res, err = s.Toggle(idx); err != nil {
			return err
		}
		log.WithFields(logrus.Fields{"step": i + 1, "site": idx}).Debug("toggled")
		history = append(history, res.Degeneracy)
	}

	coupled := func(i int) bool { on, _ := s.Couplings().Get(i); return on }
	if c.plain {
		fmt.Print(render.Text(res, coupled))
	} else {
		fmt.Println(render.Styled(res, coupled, th))
	}
	fmt.Println(render.Status(res))
	doms, err := s.Lattice().Domains(res.Spins)
	if err != nil {
		return err
	}
	fmt.Printf("spin domains: %d\n", len(doms))
	if plot := render.DegeneracyPlot(history, 6); plot != "" {
		fmt.Println(plot)
	}

	return nil
}

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	log.SetOutput(os.Stderr)

	c, err := parseFlags(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}
	if c.verbose {
		log.SetLevel(logrus.DebugLevel)
	} else if c.interactive {
		log.SetOutput(io.Discard)
	}
	if err := run(c, log); err != nil {
		log.WithError(err).Fatal("rcdemo failed")
	}
}
