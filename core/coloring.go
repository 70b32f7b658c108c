// SPDX-License-Identifier: MIT
//
// File: coloring.go
// Role: Greedy (first-fit) coloring engine and color state accessors.
//
// Determinism:
//   - Vertices are visited in insertion order; each gets the smallest color
//     index its colored neighbors do not use. No randomness, no tie-breaks.
//
// State:
//   - Colors persist on the vertices between calls. ChromaticNumber skips
//     vertices that already hold a color, and a failed run keeps whatever it
//     assigned before failing. ResetColors returns every vertex to uncolored.

package core

import "fmt"

// ChromaticNumber colors every uncolored vertex greedily and returns the
// number of colors in use (highest color index + 1). The result is an upper
// bound on the true chromatic number, not necessarily the minimum.
//
// Implementation:
//   - Stage 1: visit vertices in insertion order, skipping colored ones.
//   - Stage 2: mark the colors of already-colored neighbors.
//   - Stage 3: assign the lowest unmarked color in [0, MaxColors), or fail
//     with ErrColorCapacityExceeded if all are marked.
//   - Stage 4: return the highest color index held by any vertex, plus one.
//
// Behavior highlights:
//   - An empty graph returns 0.
//   - Pre-colored vertices count toward the result, so a second run on a
//     fully colored graph returns the same number.
//   - On failure, colors assigned to earlier vertices stay assigned; call
//     ResetColors before retrying.
//
// Complexity:
//   - Time O(V² + V·C), Space O(C) where C = MaxColors.
func (g *Graph[T]) ChromaticNumber() (int, error) {
	used := make([]bool, g.maxColors)

	for i := range g.vertices {
		if g.vertices[i].color.set {
			continue
		}

		c, ok := g.firstFreeColor(i, used)
		if !ok {
			return 0, fmt.Errorf("%s: vertex %v: all %d colors used by neighbors: %w",
				methodChromaticNumber, g.vertices[i].data, g.maxColors, ErrColorCapacityExceeded)
		}
		g.vertices[i].color = ColorIndex(c)
	}

	return g.colorsInUse(), nil
}

// firstFreeColor returns the smallest color not held by any colored neighbor
// of vertex i. used is scratch space of length MaxColors.
func (g *Graph[T]) firstFreeColor(i int, used []bool) (int, bool) {
	clear(used)
	for _, j := range g.neighbors(i) {
		if c := g.vertices[j].color; c.set {
			used[c.value] = true
		}
	}

	for c := range used {
		if !used[c] {
			return c, true
		}
	}

	return 0, false
}

// colorsInUse returns the highest assigned color index plus one (0 if none).
func (g *Graph[T]) colorsInUse() int {
	highest := -1
	for i := range g.vertices {
		if c := g.vertices[i].color; c.set && c.value > highest {
			highest = c.value
		}
	}

	return highest + 1
}

// Precolor pins color on the vertex carrying data before a coloring run.
// ChromaticNumber will keep it and color the remaining vertices around it.
// No adjacency check is made; use ValidateColoring to detect conflicts.
//
// Errors:
//   - ErrVertexNotFound if no vertex carries data.
//   - ErrColorOutOfRange unless 0 <= color < MaxColors.
func (g *Graph[T]) Precolor(data T, color int) error {
	i, err := g.mustFind(methodPrecolor, data)
	if err != nil {
		return err
	}
	if color < 0 || color >= g.maxColors {
		return fmt.Errorf("%s(%v,%d): budget %d: %w", methodPrecolor, data, color, g.maxColors, ErrColorOutOfRange)
	}

	g.vertices[i].color = ColorIndex(color)

	return nil
}

// ResetColors returns every vertex to the uncolored state.
func (g *Graph[T]) ResetColors() {
	for i := range g.vertices {
		g.vertices[i].color = Uncolored()
	}
}

// ColorOf returns the current color of the vertex carrying data.
func (g *Graph[T]) ColorOf(data T) (Color, error) {
	i, err := g.mustFind(methodColorOf, data)
	if err != nil {
		return Color{}, err
	}

	return g.vertices[i].color, nil
}

// Coloring returns a snapshot of every vertex and its color in insertion order.
func (g *Graph[T]) Coloring() []Assignment[T] {
	out := make([]Assignment[T], len(g.vertices))
	for i := range g.vertices {
		out[i] = Assignment[T]{Data: g.vertices[i].data, Color: g.vertices[i].color}
	}

	return out
}

// ValidateColoring checks that no edge joins two vertices holding the same
// color. Uncolored vertices never conflict. The first conflict found, scanning
// rows in insertion order, is reported.
//
// Errors:
//   - ErrColorConflict naming the two payloads and the shared color.
func (g *Graph[T]) ValidateColoring() error {
	for i := range g.vertices {
		ci := g.vertices[i].color
		if !ci.set {
			continue
		}
		for _, j := range g.neighbors(i) {
			if j <= i {
				continue
			}
			if cj := g.vertices[j].color; cj.set && cj.value == ci.value {
				return fmt.Errorf("%s: %v and %v share color %d: %w",
					methodValidateColoring, g.vertices[i].data, g.vertices[j].data, ci.value, ErrColorConflict)
			}
		}
	}

	return nil
}
