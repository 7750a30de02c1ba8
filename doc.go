// SPDX-License-Identifier: MIT

// Package rcground finds ground states of a square spin lattice with
// random couplings by solving the site constraints as a linear system over
// GF(2).
//
// Every site carries a binary spin. A site's equation says the XOR of its
// own spin and its neighbours' spins equals 1 for an uncoupled site and 0
// for a coupled one. Stacking one equation per site gives A·x = b, which is
// reduced by bit-packed Gaussian elimination; the free columns left over
// are the degeneracy of the ground state.
//
// Packages:
//
//	lattice      grid geometry, boundaries, neighbour tables, domains
//	gf2          packed GF(2) matrices, vectors, elimination, extraction
//	constraint   coupling flags and the A·x = b builder
//	groundstate  Solver: resize, toggle, reset, solve, verify
//	render       terminal grids, status line, degeneracy plot
//
// The rcdemo command under cmd/ ties them together.
package rcground
