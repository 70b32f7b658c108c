// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Copies of a Graph for independent coloring attempts.
//
// A failed ChromaticNumber leaves partial colors behind; cloning before the
// run keeps a clean graph to retry on.

package core

import "maps"

// CloneEmpty returns a graph with the same capacities and the same vertices
// in the same order, uncolored and without edges.
// Complexity: O(maxVertices²) for the fresh matrix.
func (g *Graph[T]) CloneEmpty() *Graph[T] {
	// Capacities were validated when g was built, so NewGraph cannot fail.
	clone, _ := NewGraph[T](g.maxVertices, g.maxColors)
	for i := range g.vertices {
		clone.vertices = append(clone.vertices, vertex[T]{data: g.vertices[i].data})
	}
	clone.index = maps.Clone(g.index)

	return clone
}

// Clone returns a deep copy of g: vertices, colors and edges. Later changes
// to either graph are not visible in the other.
// Complexity: O(maxVertices²).
func (g *Graph[T]) Clone() *Graph[T] {
	clone := &Graph[T]{
		maxVertices: g.maxVertices,
		maxColors:   g.maxColors,
		vertices:    make([]vertex[T], len(g.vertices), g.maxVertices),
		index:       maps.Clone(g.index),
		adj:         g.adj.Clone(),
	}
	copy(clone.vertices, g.vertices)

	return clone
}
