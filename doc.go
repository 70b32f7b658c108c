// Package lvcolor is a small in-memory toolkit for fixed-capacity undirected
// graphs and greedy vertex coloring.
//
// What is in the box?
//
//	core/    — Graph[T]: vertex store, adjacency queries, greedy coloring
//	matrix/  — Symmetric: the fixed-size boolean adjacency matrix behind Graph
//	builder/ — deterministic topologies (Star, Cycle, Wheel, Complete, Grid, G(n,p), …)
//
// A Graph is sized once: NewGraph(maxVertices, maxColors). Vertices carry any
// comparable payload and are appended up to capacity; edges join existing
// vertices and are never removed. ChromaticNumber colors vertices in
// insertion order with the smallest color their colored neighbors leave free
// and reports how many colors were used. That number is an upper bound on the
// true chromatic number: greedy coloring is fast and deterministic, not
// optimal.
//
// Quick ASCII example:
//
//	    A───B
//	     \ /
//	      C───D
//
// Inserted A, B, C, D this needs 3 colors: A=0, B=1, C=2, D=0.
//
// The library is pure Go with no locking; share a Graph across goroutines only
// under your own synchronization.
//
//	go get github.com/katalvlaran/lvcolor
package lvcolor
