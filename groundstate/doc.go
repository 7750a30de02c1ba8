// SPDX-License-Identifier: MIT

// Package groundstate owns one random-coupling spin lattice and recomputes
// its ground state after every change.
//
// What:
//
//   - Solver sizes a lattice from a viewport, keeps the coupling flags and
//     all solve storage (matrix, rhs, pivot maps, solution) for that lattice.
//   - Toggle, ToggleAt, Reset and Resize each run the full pipeline
//     (build → eliminate → extract) before returning a fresh Result.
//   - Result carries the spins, rank, degeneracy N − rank and whether the
//     coupling pattern is frustrated (no exact solution exists).
//
// Policies:
//
//   - Free variables are 0. The returned spins are one fixed representative
//     of the 2^Degeneracy equally valid ground states.
//   - Resize discards every coupling; Reset clears them on the same lattice.
//   - A lattice with no sites is "no solve performed" (Result.Solved false),
//     never an error.
//   - Out-of-range toggles are rejected with ErrSiteIndex and change nothing.
//
// Concurrency:
//
//   - A Solver is single-threaded: every call runs to completion and the
//     instance must not be shared between goroutines without external locking.
//
// Options:
//
//   - WithCellSize, WithBoundary, WithMode, WithVerify, WithLogger.
package groundstate
