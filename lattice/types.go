// SPDX-License-Identifier: MIT

package lattice

// Boundary selects how neighbours are resolved at the lattice edge.
type Boundary int

const (
	// Open drops neighbours past the edge; edge sites have fewer than four.
	Open Boundary = iota
	// Toroidal wraps both axes, so every site has exactly four neighbour slots.
	Toroidal
)

// String returns the lower-case policy name.
func (b Boundary) String() string {
	switch b {
	case Open:
		return "open"
	case Toroidal:
		return "toroidal"
	default:
		return "unknown"
	}
}

// Valid reports whether b is one of the supported policies.
func (b Boundary) Valid() bool {
	return b == Open || b == Toroidal
}

// ParseBoundary maps "open" or "toroidal" to a Boundary.
func ParseBoundary(s string) (Boundary, error) {
	switch s {
	case "open":
		return Open, nil
	case "toroidal", "torus":
		return Toroidal, nil
	default:
		return Open, ErrUnknownBoundary
	}
}

// Direction names a slot in the per-site neighbour table.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists the table slots in storage order.
var Directions = [4]Direction{Up, Down, Left, Right}

// NoNeighbor marks an absent neighbour under the Open policy.
const NoNeighbor = -1

// Lattice is an immutable rows×cols site grid with a precomputed
// four-neighbour table. Recreate it to change shape or boundary.
type Lattice struct {
	Rows, Cols int
	Boundary   Boundary
	// nbr holds [up, down, left, right] for every site, NoNeighbor if absent.
	nbr []int
}
