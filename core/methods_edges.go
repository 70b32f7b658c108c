// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge insertion & adjacency queries over the symmetric matrix.
//
// Determinism:
//   - AdjacentData() lists neighbors in insertion order of the vertex store.
//   - NumEdges() is recomputed from the matrix on every call.

package core

import "fmt"

// AddEdge joins the vertices carrying a and b with an undirected edge.
//
// Implementation:
//   - Stage 1: resolve both payloads; either missing ⇒ ErrVertexNotFound.
//   - Stage 2: reject a == b (same vertex) with ErrLoopNotAllowed.
//   - Stage 3: set both mirrored matrix entries.
//
// Behavior highlights:
//   - Idempotent: adding an existing edge again changes nothing.
//   - A failed call leaves the graph untouched.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph[T]) AddEdge(a, b T) error {
	i, err := g.mustFind(methodAddEdge, a)
	if err != nil {
		return err
	}
	j, err := g.mustFind(methodAddEdge, b)
	if err != nil {
		return err
	}
	if i == j {
		return fmt.Errorf("%s(%v,%v): %w", methodAddEdge, a, b, ErrLoopNotAllowed)
	}

	if err = g.adj.Link(i, j); err != nil {
		return fmt.Errorf("%s(%v,%v): %w", methodAddEdge, a, b, err)
	}

	return nil
}

// HasEdge reports whether the vertices carrying a and b are adjacent.
// Missing payloads simply yield false.
func (g *Graph[T]) HasEdge(a, b T) bool {
	i, okA := g.indexOf(a)
	j, okB := g.indexOf(b)
	if !okA || !okB {
		return false
	}
	linked, err := g.adj.At(i, j)

	return err == nil && linked
}

// neighbors returns the positions adjacent to vertex i, ascending.
func (g *Graph[T]) neighbors(i int) []int {
	// i always comes from the store, so Row cannot fail.
	cols, _ := g.adj.Row(i, len(g.vertices))

	return cols
}

// AdjacentData returns the payloads of every vertex adjacent to the vertex
// carrying data, in vertex-store order. An isolated vertex yields an empty,
// non-nil slice.
//
// Errors:
//   - ErrVertexNotFound if no vertex carries data.
//
// Complexity:
//   - Time O(V), Space O(deg).
func (g *Graph[T]) AdjacentData(data T) ([]T, error) {
	i, err := g.mustFind(methodAdjacentData, data)
	if err != nil {
		return nil, err
	}

	cols := g.neighbors(i)
	out := make([]T, 0, len(cols))
	for _, j := range cols {
		out = append(out, g.vertices[j].data)
	}

	return out, nil
}

// Degree returns the number of vertices adjacent to the vertex carrying data.
func (g *Graph[T]) Degree(data T) (int, error) {
	i, err := g.mustFind(methodDegree, data)
	if err != nil {
		return 0, err
	}

	return g.adj.Degree(i, len(g.vertices))
}

// NumEdges returns the number of undirected edges: the set entries of the
// active V×V submatrix divided by two.
// Complexity: O(V²).
func (g *Graph[T]) NumEdges() int {
	return g.adj.CountLinks(len(g.vertices))
}
