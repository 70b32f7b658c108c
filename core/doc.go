// Package core provides Graph, a fixed-capacity undirected, unweighted graph
// with a greedy vertex-coloring engine.
//
// A Graph[T] is created with two capacities that never change:
//
//   - MaxVertices: how many vertices the store can ever hold.
//   - MaxColors:   how many colors (indices 0..MaxColors-1) coloring may use.
//
// Vertices carry an arbitrary comparable payload T and are addressed by it.
// Internally each vertex is identified by its insertion position, which is
// also its row/column in a MaxVertices×MaxVertices symmetric adjacency matrix
// (see package matrix). Vertices are never removed and edges are never
// deleted.
//
// Core Methods:
//
//	// Vertex store
//	AddVertex(data T) error                 // O(1); ErrCapacityExceeded when full
//	HasVertex(data T) bool                  // O(1)
//	NumVertices() int                       // O(1)
//	Vertices() []T                          // O(V), insertion order
//
//	// Edges & adjacency
//	AddEdge(a, b T) error                   // O(1); ErrVertexNotFound, ErrLoopNotAllowed
//	HasEdge(a, b T) bool                    // O(1)
//	AdjacentData(data T) ([]T, error)       // O(V), insertion order
//	Degree(data T) (int, error)             // O(V)
//	NumEdges() int                          // O(V²)
//
//	// Coloring
//	ChromaticNumber() (int, error)          // greedy first-fit; ErrColorCapacityExceeded
//	Precolor(data T, color int) error       // pin a color before a run
//	ColorOf(data T) (Color, error)
//	Coloring() []Assignment[T]
//	ValidateColoring() error                // ErrColorConflict
//	ResetColors()
//	Bipartite() bool                        // exact 2-colorability
//
//	// Copies & diagnostics
//	Clone() *Graph[T]                       // deep copy: vertices, colors, edges
//	CloneEmpty() *Graph[T]                  // same vertices, no edges, uncolored
//	Stats() *GraphStats                     // counts and coloring progress
//
// Greedy coloring:
//
// ChromaticNumber visits vertices in insertion order and gives each uncolored
// vertex the smallest color index not used by its already-colored neighbors.
// The count it reports is an upper bound on the chromatic number; a different
// insertion order can yield a different (equally valid) count. For example a
// star inserted center-first needs 2 colors, and so does a path 0-1-2-3, but
// the path inserted as 0,3,1,2 needs 3.
//
// Colors live on the vertices. A run skips vertices that already hold a color
// and a failed run does not roll back what it assigned, so call ResetColors
// before retrying.
//
// Errors:
//
//	ErrCapacityExceeded      – AddVertex on a full store
//	ErrVertexNotFound        – payload not present
//	ErrColorCapacityExceeded – no free color for some vertex
//	ErrLoopNotAllowed        – AddEdge(x, x)
//	ErrInvalidCapacity       – negative capacity in NewGraph
//	ErrColorOutOfRange       – Precolor outside [0, MaxColors)
//	ErrColorConflict         – ValidateColoring found equal colors on an edge
//
// Concurrency: Graph does no locking. Serialize access if it is shared.
package core
