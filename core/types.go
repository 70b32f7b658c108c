// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph, vertex record and Color declarations plus the NewGraph constructor.
// Policy:
//   - Capacities are fixed at construction and never change.
//   - Storage (vertex slots, adjacency cells) is sized once and never reallocated.

package core

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/lvcolor/matrix"
)

// Method tags used as error context prefixes.
const (
	methodNewGraph         = "NewGraph"
	methodAddVertex        = "AddVertex"
	methodAddEdge          = "AddEdge"
	methodAdjacentData     = "AdjacentData"
	methodDegree           = "Degree"
	methodChromaticNumber  = "ChromaticNumber"
	methodPrecolor         = "Precolor"
	methodColorOf          = "ColorOf"
	methodValidateColoring = "ValidateColoring"
)

// Color is a vertex color assignment: either a color index or "uncolored".
// The zero value is uncolored, so color 0 is never confused with "no color yet".
type Color struct {
	value int
	set   bool
}

// Uncolored returns the "no color yet" state.
func Uncolored() Color { return Color{} }

// ColorIndex returns the assigned state holding color index c.
func ColorIndex(c int) Color { return Color{value: c, set: true} }

// Value returns the color index and true, or (0, false) when uncolored.
func (c Color) Value() (int, bool) { return c.value, c.set }

// IsSet reports whether a color has been assigned.
func (c Color) IsSet() bool { return c.set }

// String renders the color index, or "uncolored".
func (c Color) String() string {
	if !c.set {
		return "uncolored"
	}

	return strconv.Itoa(c.value)
}

// vertex is one slot of the vertex store. Its position in Graph.vertices is
// also its row/column in the adjacency matrix.
type vertex[T comparable] struct {
	data  T
	color Color
}

// Assignment pairs a vertex payload with its current color.
type Assignment[T comparable] struct {
	Data  T
	Color Color
}

// Graph is a fixed-capacity undirected, unweighted graph whose vertices carry
// payloads of type T and a color.
//
// Vertices are identified by insertion position. Payloads are compared with
// ==; when several vertices carry equal payloads every lookup resolves to the
// first of them. Graph performs no locking: callers sharing a Graph across
// goroutines must serialize access themselves.
type Graph[T comparable] struct {
	maxVertices int
	maxColors   int

	// vertices in insertion order; cap == maxVertices.
	vertices []vertex[T]

	// index maps a payload to the position of the first vertex carrying it.
	index map[T]int

	// adj is the maxVertices×maxVertices symmetric adjacency matrix.
	adj *matrix.Symmetric
}

// NewGraph creates an empty graph able to hold maxVertices vertices and to
// color them with at most maxColors colors.
//
// Implementation:
//   - Stage 1: reject negative capacities with ErrInvalidCapacity.
//   - Stage 2: allocate the vertex store, the payload index and the adjacency matrix once.
//
// Behavior highlights:
//   - Zero is a legal value for either capacity.
//
// Complexity:
//   - Time O(maxVertices²), Space O(maxVertices²).
func NewGraph[T comparable](maxVertices, maxColors int) (*Graph[T], error) {
	if maxVertices < 0 || maxColors < 0 {
		return nil, fmt.Errorf("%s(%d,%d): %w", methodNewGraph, maxVertices, maxColors, ErrInvalidCapacity)
	}

	adj, err := matrix.NewSymmetric(maxVertices)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodNewGraph, err)
	}

	return &Graph[T]{
		maxVertices: maxVertices,
		maxColors:   maxColors,
		vertices:    make([]vertex[T], 0, maxVertices),
		index:       make(map[T]int, maxVertices),
		adj:         adj,
	}, nil
}

// MaxVertices returns the vertex capacity fixed at construction.
func (g *Graph[T]) MaxVertices() int { return g.maxVertices }

// MaxColors returns the color budget fixed at construction.
func (g *Graph[T]) MaxColors() int { return g.maxColors }
