// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex store insertion & payload lookup.
//
// Determinism:
//   - Vertices() returns payloads in insertion order.
//   - Lookups resolve to the first vertex carrying an equal payload.

package core

import "fmt"

// indexOf returns the position of the first vertex whose payload equals data.
// The index map is only written when a payload is seen for the first time, so
// it answers exactly what a front-to-back scan with == would.
func (g *Graph[T]) indexOf(data T) (int, bool) {
	i, ok := g.index[data]

	return i, ok
}

// AddVertex appends a new uncolored vertex carrying data.
//
// Implementation:
//   - Stage 1: reject the insert with ErrCapacityExceeded when the store is full.
//   - Stage 2: append the vertex; record its position if the payload is new.
//
// Behavior highlights:
//   - Equal payloads may be inserted more than once; each insert uses a slot.
//   - A failed insert leaves the graph untouched.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph[T]) AddVertex(data T) error {
	if len(g.vertices) >= g.maxVertices {
		return fmt.Errorf("%s(%v): %d/%d vertices: %w",
			methodAddVertex, data, len(g.vertices), g.maxVertices, ErrCapacityExceeded)
	}

	pos := len(g.vertices)
	g.vertices = append(g.vertices, vertex[T]{data: data})
	if _, seen := g.index[data]; !seen {
		g.index[data] = pos
	}

	return nil
}

// HasVertex reports whether some vertex carries a payload equal to data.
// Complexity: O(1).
func (g *Graph[T]) HasVertex(data T) bool {
	_, ok := g.indexOf(data)

	return ok
}

// NumVertices returns the number of vertices inserted so far.
// Complexity: O(1).
func (g *Graph[T]) NumVertices() int { return len(g.vertices) }

// Vertices returns a copy of all payloads in insertion order.
// Complexity: O(V).
func (g *Graph[T]) Vertices() []T {
	out := make([]T, len(g.vertices))
	for i := range g.vertices {
		out[i] = g.vertices[i].data
	}

	return out
}

// mustFind resolves data to a vertex position or returns ErrVertexNotFound
// tagged with method.
func (g *Graph[T]) mustFind(method string, data T) (int, error) {
	i, ok := g.indexOf(data)
	if !ok {
		return 0, fmt.Errorf("%s(%v): %w", method, data, ErrVertexNotFound)
	}

	return i, nil
}
