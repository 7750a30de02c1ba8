// SPDX-License-Identifier: MIT

// Package lattice describes the rectangular spin lattice: its shape, the
// row-major site numbering and the four-neighbour relation under a chosen
// boundary policy.
//
// What:
//
//   - Lattice is an immutable rows×cols grid; sites are numbered idx = r*cols + c.
//   - Every site has up, down, left and right neighbours, precomputed once.
//   - Boundary selects the physics at the edges: Open (no neighbour past the
//     edge) or Toroidal (wrap-around on both axes).
//   - Domains groups equal-valued sites into connected spin domains.
//
// Why:
//
//   - The constraint builder reads one neighbour table row per site; keeping
//     the table flat ([up,down,left,right] per site) avoids branching on the
//     hot path.
//   - The boundary policy changes the rank of the constraint system, so it
//     is a construction parameter and never inferred.
//
// Sizing:
//
//   - FromViewport derives rows = floor(height/cellSize) and
//     cols = floor(width/cellSize). A viewport smaller than one cell yields an
//     empty lattice (Size() == 0); callers treat that as "nothing to solve".
//
// Complexity:
//
//   - New / FromViewport: O(N) time and memory for the neighbour table.
//   - Neighbor / Neighbors / Degree: O(1).
//   - Domains: O(N) time and memory.
//
// Errors:
//
//   - ErrBadShape: negative rows, cols or viewport size.
//   - ErrBadCellSize: cell size ≤ 0.
//   - ErrUnknownBoundary: boundary value outside {Open, Toroidal}.
//   - ErrLengthMismatch: per-site slice length differs from Size().
package lattice
