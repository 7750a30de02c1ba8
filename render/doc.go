// SPDX-License-Identifier: MIT

// Package render draws solved lattices for terminals: a plain character
// grid, a lipgloss-coloured grid in light or dark palettes, a status line
// and an asciigraph plot of degeneracy over a toggle history.
//
// Glyphs (plain):
//
//	#  spin up        .  spin down
//	@  coupled, up    o  coupled, down (only on frustrated lattices)
package render
