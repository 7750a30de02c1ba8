// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/katalvlaran/rcground/groundstate"
)

// Theme is a palette for Styled.
type Theme struct {
	Up, Down, Marker lipgloss.Color
}

var (
	// Light mirrors the light page palette.
	Light = Theme{Up: "#2563eb", Down: "#f0f4f8", Marker: "#ef4444"}
	// Dark mirrors the dark page palette.
	Dark = Theme{Up: "#60a5fa", Down: "#1e232d", Marker: "#ef4444"}
)

// Coupled reports whether a site is coupled; a nil func means none are.
type Coupled func(idx int) bool

func glyph(up, coupled bool) byte {
	switch {
	case coupled && up:
		return '@'
	case coupled:
		return 'o'
	case up:
		return '#'
	default:
		return '.'
	}
}

// Text renders res as one line per lattice row. An unsolved result renders
// as an empty string.
func Text(res groundstate.Result, coupled Coupled) string {
	if !res.Solved {
		return ""
	}
	var sb strings.Builder
	sb.Grow(res.N() + res.Rows)
	for r := 0; r < res.Rows; r++ {
		for c := 0; c < res.Cols; c++ {
			idx := r*res.Cols + c
			sb.WriteByte(glyph(res.Spins[idx], coupled != nil && coupled(idx)))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// Styled renders res as two-character coloured cells; coupled sites carry a
// marker in th.Marker.
func Styled(res groundstate.Result, coupled Coupled, th Theme) string {
	return StyledAt(res, coupled, th, -1)
}

// StyledAt is Styled with a highlighted cursor cell at index cursor; a
// cursor outside the lattice draws none.
func StyledAt(res groundstate.Result, coupled Coupled, th Theme, cursor int) string {
	if !res.Solved {
		return ""
	}
	up := lipgloss.NewStyle().Background(th.Up)
	down := lipgloss.NewStyle().Background(th.Down)
	markUp := up.Foreground(th.Marker)
	markDown := down.Foreground(th.Marker)

	rows := make([]string, res.Rows)
	var sb strings.Builder
	for r := 0; r < res.Rows; r++ {
		sb.Reset()
		for c := 0; c < res.Cols; c++ {
			idx := r*res.Cols + c
			spin, mark := res.Spins[idx], coupled != nil && coupled(idx)
			face := "  "
			if mark {
				face = "()"
			}
			if idx == cursor {
				face = "[]"
				mark = true
			}
			switch {
			case mark && spin:
				sb.WriteString(markUp.Render(face))
			case mark:
				sb.WriteString(markDown.Render(face))
			case spin:
				sb.WriteString(up.Render(face))
			default:
				sb.WriteString(down.Render(face))
			}
		}
		rows[r] = sb.String()
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// Status summarises res in one line.
func Status(res groundstate.Result) string {
	if !res.Solved {
		return fmt.Sprintf("System Size: %dx%d  (no solve performed)", res.Cols, res.Rows)
	}
	s := fmt.Sprintf("System Size: %dx%d  degeneracy=%d  rank=%d  up=%d",
		res.Cols, res.Rows, res.Degeneracy, res.Rank, res.Up())
	if res.Frustrated {
		s += fmt.Sprintf("  frustrated (%d violated)", res.Violations)
	}

	return s
}

// DegeneracyPlot draws the degeneracy after each step of a toggle history.
// Fewer than two points yield an empty string.
func DegeneracyPlot(history []int, height int) string {
	if len(history) < 2 {
		return ""
	}
	if height < 1 {
		height = 1
	}
	data := make([]float64, len(history))
	for i, d := range history {
		data[i] = float64(d)
	}

	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Precision(0),
		asciigraph.Caption("degeneracy per toggle"),
	)
}
