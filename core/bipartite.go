// SPDX-License-Identifier: MIT
//
// File: bipartite.go
// Role: Exact 2-colorability test by breadth-first two-coloring.
//
// The sides computed here are scratch state; vertex colors are never touched.

package core

// side values for the two-coloring walk.
const (
	sideNone int8 = iota
	sideLeft
	sideRight
)

// Bipartite reports whether the graph can be colored with two colors, i.e.
// whether it contains no odd cycle. Unlike ChromaticNumber this answer is
// exact and independent of insertion order. An empty or edgeless graph is
// bipartite.
//
// Implementation:
//   - Stage 1: start a BFS from every vertex not yet reached, in insertion order.
//   - Stage 2: put each newly reached neighbor on the side opposite its parent.
//   - Stage 3: an edge between two vertices on the same side proves an odd cycle.
//
// Complexity:
//   - Time O(V²) (adjacency rows are scanned from the matrix), Space O(V).
func (g *Graph[T]) Bipartite() bool {
	n := len(g.vertices)
	side := make([]int8, n)
	queue := make([]int, 0, n)

	for s := 0; s < n; s++ {
		if side[s] != sideNone {
			continue
		}
		side[s] = sideLeft
		queue = append(queue[:0], s)

		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]

			for _, v := range g.neighbors(u) {
				switch side[v] {
				case sideNone:
					side[v] = opposite(side[u])
					queue = append(queue, v)
				case side[u]:
					return false
				}
			}
		}
	}

	return true
}

func opposite(s int8) int8 {
	if s == sideLeft {
		return sideRight
	}

	return sideLeft
}
