// SPDX-License-Identifier: MIT

// Package constraint turns a lattice and its coupling flags into the GF(2)
// system A·x = b, one equation per site:
//
//	coupled site i:  x_i = 1
//	free site i:     x_i + Σ x_nb = 0   (nb over the existing neighbours of i)
//
// Build zero-fills and repopulates caller-owned storage, so the solve path
// allocates nothing after the initial sizing. Neighbour slots that repeat a
// site (possible on toroidal lattices narrower than three) or point back at
// the site itself set the same bit again and add nothing.
package constraint
