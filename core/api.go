// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only summary of a Graph for diagnostics and assertions.

package core

// GraphStats is a snapshot of capacities, sizes and coloring progress.
type GraphStats struct {
	MaxVertices int // vertex capacity fixed at construction
	MaxColors   int // color budget fixed at construction
	VertexCount int // vertices inserted so far
	EdgeCount   int // undirected edges
	Colored     int // vertices currently holding a color
	ColorsInUse int // highest color index held + 1 (0 if none)
}

// Stats produces a snapshot of g.
//
// Behavior highlights:
//   - Pure query: never colors or mutates anything.
//   - ColorsInUse equals the value the last successful ChromaticNumber returned,
//     as long as no vertex was added or precolored since.
//
// Complexity:
//   - Time O(V²) (edge count scan), Space O(1).
func (g *Graph[T]) Stats() *GraphStats {
	stats := GraphStats{
		MaxVertices: g.maxVertices,
		MaxColors:   g.maxColors,
		VertexCount: len(g.vertices),
		EdgeCount:   g.NumEdges(),
		ColorsInUse: g.colorsInUse(),
	}
	for i := range g.vertices {
		if g.vertices[i].color.set {
			stats.Colored++
		}
	}

	return &stats
}
