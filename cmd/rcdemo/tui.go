// SPDX-License-Identifier: MIT

package main

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/katalvlaran/rcground/groundstate"
	"github.com/katalvlaran/rcground/render"
	"github.com/sirupsen/logrus"
)

// Terminal cells are two columns wide and one row tall; footerLines rows
// are kept for the status and help lines.
const (
	cellChars   = 2
	footerLines = 2
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))

const helpText = "arrows/hjkl move  space toggle  click toggle  r reset  q quit"

// board is the interactive host: key presses and clicks become Toggle,
// Reset and Resize calls on the solver.
type board struct {
	s      *groundstate.Solver
	cell   int
	theme  render.Theme
	log    logrus.FieldLogger
	res    groundstate.Result
	cursor int
	err    error
}

func newBoard(s *groundstate.Solver, cell int, th render.Theme, log logrus.FieldLogger) board {
	return board{s: s, cell: cell, theme: th, log: log, res: s.Result()}
}

func (b board) Init() tea.Cmd { return nil }

func (b board) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		rows := msg.Height - footerLines
		if rows < 0 {
			rows = 0
		}
		b.res, b.err = b.s.Resize(msg.Width/cellChars*b.cell, rows*b.cell)
		b.cursor = 0
	case tea.KeyMsg:
		return b.key(msg)
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			row, col := msg.Y, msg.X/cellChars
			if b.s.Lattice().InBounds(row, col) {
				b.cursor = b.s.Lattice().Index(row, col)
				b.res, b.err = b.s.ToggleAt(row, col)
			}
		}
	}

	return b, nil
}

func (b board) key(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	lat := b.s.Lattice()
	if lat.Empty() {
		if s := msg.String(); s == "q" || s == "ctrl+c" {
			return b, tea.Quit
		}
		return b, nil
	}
	r, c := lat.Coordinate(b.cursor)
	switch msg.String() {
	case "q", "ctrl+c":
		return b, tea.Quit
	case "up", "k":
		r = (r - 1 + lat.Rows) % lat.Rows
	case "down", "j":
		r = (r + 1) % lat.Rows
	case "left", "h":
		c = (c - 1 + lat.Cols) % lat.Cols
	case "right", "l":
		c = (c + 1) % lat.Cols
	case " ", "space", "enter":
		b.res, b.err = b.s.Toggle(b.cursor)
		b.log.WithField("site", b.cursor).Debug("toggled")
	case "r":
		b.res, b.err = b.s.Reset()
	}
	b.cursor = lat.Index(r, c)

	return b, nil
}

func (b board) View() string {
	var sb strings.Builder
	coupled := func(i int) bool { on, _ := b.s.Couplings().Get(i); return on }
	if grid := render.StyledAt(b.res, coupled, b.theme, b.cursor); grid != "" {
		sb.WriteString(grid)
		sb.WriteByte('\n')
	}
	status := render.Status(b.res)
	if b.err != nil {
		status += "  error: " + b.err.Error()
	}
	sb.WriteString(status)
	sb.WriteByte('\n')
	sb.WriteString(helpStyle.Render(helpText))

	return sb.String()
}

func interactive(s *groundstate.Solver, c config, th render.Theme, log logrus.FieldLogger) error {
	p := tea.NewProgram(newBoard(s, c.cell, th, log), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()

	return err
}
