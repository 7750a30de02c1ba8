// SPDX-License-Identifier: MIT

package lattice

import "fmt"

// Domains partitions the lattice into connected regions of equal spin,
// following the lattice's own neighbour relation (so Toroidal domains may
// wrap around the edges). Each domain lists its site indices in BFS order;
// domains are ordered by their smallest index.
//
// Returns ErrLengthMismatch if len(spins) != Size().
// Time: O(N). Memory: O(N) for visited flags and output.
func (l *Lattice) Domains(spins []bool) ([][]int, error) {
	n := l.Size()
	if len(spins) != n {
		return nil, fmt.Errorf("Domains(len=%d, want %d): %w", len(spins), n, ErrLengthMismatch)
	}
	seen := make([]bool, n)
	var domains [][]int

	for i0 := 0; i0 < n; i0++ {
		if seen[i0] {
			continue
		}
		// BFS to collect domain
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, v := range l.Neighbors(u) {
				if v == NoNeighbor || seen[v] || spins[v] != spins[i0] {
					continue
				}
				seen[v] = true
				queue = append(queue, v)
			}
		}
		domains = append(domains, queue)
	}

	return domains, nil
}
