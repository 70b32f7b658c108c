// SPDX-License-Identifier: MIT
// Package core_test verifies the greedy coloring engine of core.Graph.

package core_test

import (
	"testing"

	"github.com/katalvlaran/lvcolor/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// addEdges adds every pair, failing the test on error.
func addEdges(t *testing.T, g *core.Graph[string], pairs ...[2]string) {
	t.Helper()
	for _, p := range pairs {
		require.NoError(t, g.AddEdge(p[0], p[1]), "AddEdge(%s,%s)", p[0], p[1])
	}
}

// requireProperColoring asserts that every vertex is colored within budget
// and no edge joins equal colors.
func requireProperColoring(t *testing.T, g *core.Graph[string]) {
	t.Helper()
	require.NoError(t, g.ValidateColoring())
	for _, a := range g.Coloring() {
		c, ok := a.Color.Value()
		require.True(t, ok, "vertex %s left uncolored", a.Data)
		require.GreaterOrEqual(t, c, 0)
		require.Less(t, c, g.MaxColors())

		adj, err := g.AdjacentData(a.Data)
		require.NoError(t, err)
		for _, nb := range adj {
			nc, err := g.ColorOf(nb)
			require.NoError(t, err)
			require.NotEqual(t, a.Color, nc, "edge %s-%s shares a color", a.Data, nb)
		}
	}
}

func TestChromaticNumber_Scenarios(t *testing.T) {
	triangle := [][2]string{{"A", "B"}, {"B", "C"}, {"A", "C"}}
	star := [][2]string{{"C", "L1"}, {"C", "L2"}, {"C", "L3"}, {"C", "L4"}}

	cases := []struct {
		name        string
		maxVertices int
		maxColors   int
		vertices    []string
		edges       [][2]string
		want        int
		wantErr     error
	}{
		{name: "empty graph", maxVertices: 5, maxColors: 3, want: 0},
		{name: "triangle", maxVertices: 3, maxColors: 3, vertices: []string{"A", "B", "C"}, edges: triangle, want: 3},
		{name: "two disjoint vertices", maxVertices: 2, maxColors: 1, vertices: []string{"A", "B"}, want: 1},
		{name: "star center first", maxVertices: 5, maxColors: 2,
			vertices: []string{"C", "L1", "L2", "L3", "L4"}, edges: star, want: 2},
		{name: "triangle over budget", maxVertices: 3, maxColors: 2,
			vertices: []string{"A", "B", "C"}, edges: triangle, wantErr: core.ErrColorCapacityExceeded},
		{name: "single vertex no colors", maxVertices: 1, maxColors: 0,
			vertices: []string{"A"}, wantErr: core.ErrColorCapacityExceeded},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := newStringGraph(t, tc.maxVertices, tc.maxColors, tc.vertices...)
			addEdges(t, g, tc.edges...)

			got, err := g.ChromaticNumber()
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.LessOrEqual(t, got, tc.maxColors)
			requireProperColoring(t, g)
		})
	}
}

func TestChromaticNumber_FirstFitAssignment(t *testing.T) {
	g := newStringGraph(t, 5, 3, "C", "L1", "L2", "L3", "L4")
	addEdges(t, g, [2]string{"C", "L1"}, [2]string{"C", "L2"}, [2]string{"C", "L3"}, [2]string{"C", "L4"})

	_, err := g.ChromaticNumber()
	require.NoError(t, err)

	want := []core.Assignment[string]{
		{Data: "C", Color: core.ColorIndex(0)},
		{Data: "L1", Color: core.ColorIndex(1)},
		{Data: "L2", Color: core.ColorIndex(1)},
		{Data: "L3", Color: core.ColorIndex(1)},
		{Data: "L4", Color: core.ColorIndex(1)},
	}
	assert.Equal(t, want, g.Coloring())
}

func TestChromaticNumber_OrderSensitive(t *testing.T) {
	path := [][2]string{{"0", "1"}, {"1", "2"}, {"2", "3"}}

	inOrder := newStringGraph(t, 4, 4, "0", "1", "2", "3")
	addEdges(t, inOrder, path...)
	n, err := inOrder.ChromaticNumber()
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	// Same path, endpoints first: greedy is forced into a third color.
	shuffled := newStringGraph(t, 4, 4, "0", "3", "1", "2")
	addEdges(t, shuffled, path...)
	n, err = shuffled.ChromaticNumber()
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	requireProperColoring(t, shuffled)
}

func TestChromaticNumber_FailureKeepsPartialColoring(t *testing.T) {
	g := newStringGraph(t, 4, 2, "A", "B", "C", "D")
	addEdges(t, g, [2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"A", "C"})

	_, err := g.ChromaticNumber()
	require.ErrorIs(t, err, core.ErrColorCapacityExceeded)
	assert.Contains(t, err.Error(), "vertex C")

	// A and B were colored before C failed; C and D were never reached.
	colors := g.Coloring()
	assert.Equal(t, core.ColorIndex(0), colors[0].Color)
	assert.Equal(t, core.ColorIndex(1), colors[1].Color)
	assert.False(t, colors[2].Color.IsSet())
	assert.False(t, colors[3].Color.IsSet())
}

func TestChromaticNumber_RerunIsStable(t *testing.T) {
	g := newStringGraph(t, 3, 3, "A", "B", "C")
	addEdges(t, g, [2]string{"A", "B"}, [2]string{"B", "C"})

	first, err := g.ChromaticNumber()
	require.NoError(t, err)
	snapshot := g.Coloring()

	second, err := g.ChromaticNumber()
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, snapshot, g.Coloring())
}

func TestChromaticNumber_ColorsNewVerticesOnly(t *testing.T) {
	g := newStringGraph(t, 3, 3, "A", "B")
	addEdges(t, g, [2]string{"A", "B"})

	n, err := g.ChromaticNumber()
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	require.NoError(t, g.AddVertex("C"))
	addEdges(t, g, [2]string{"C", "A"}, [2]string{"C", "B"})

	n, err = g.ChromaticNumber()
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	requireProperColoring(t, g)
}

func TestResetColors_AllowsRetry(t *testing.T) {
	g := newStringGraph(t, 3, 3, "A", "B", "C")
	addEdges(t, g, [2]string{"A", "B"}, [2]string{"B", "C"})

	// Pin A to a wasteful color, color around it, then reset.
	require.NoError(t, g.Precolor("A", 2))
	n, err := g.ChromaticNumber()
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	g.ResetColors()
	for _, a := range g.Coloring() {
		assert.False(t, a.Color.IsSet())
	}

	n, err = g.ChromaticNumber()
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestPrecolor_SkippedAndRespected(t *testing.T) {
	g := newStringGraph(t, 3, 3, "A", "B", "C")
	addEdges(t, g, [2]string{"A", "B"}, [2]string{"B", "C"})

	require.NoError(t, g.Precolor("B", 0))

	n, err := g.ChromaticNumber()
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	c, err := g.ColorOf("B")
	require.NoError(t, err)
	assert.Equal(t, core.ColorIndex(0), c, "pinned color must survive the run")

	c, err = g.ColorOf("A")
	require.NoError(t, err)
	assert.Equal(t, core.ColorIndex(1), c)
	requireProperColoring(t, g)
}

func TestPrecolor_OutOfRange(t *testing.T) {
	g := newStringGraph(t, 1, 2, "A")

	require.ErrorIs(t, g.Precolor("A", -1), core.ErrColorOutOfRange)
	require.ErrorIs(t, g.Precolor("A", 2), core.ErrColorOutOfRange)

	c, err := g.ColorOf("A")
	require.NoError(t, err)
	assert.Equal(t, core.Uncolored(), c)
}

func TestValidateColoring_DetectsConflict(t *testing.T) {
	g := newStringGraph(t, 3, 3, "A", "B", "C")
	addEdges(t, g, [2]string{"A", "B"})

	require.NoError(t, g.ValidateColoring(), "uncolored graph has no conflicts")

	require.NoError(t, g.Precolor("A", 1))
	require.NoError(t, g.Precolor("B", 1))
	require.NoError(t, g.Precolor("C", 1))

	err := g.ValidateColoring()
	require.ErrorIs(t, err, core.ErrColorConflict)
	assert.Contains(t, err.Error(), "A and B share color 1")
}

func TestColor_States(t *testing.T) {
	var zero core.Color
	assert.Equal(t, core.Uncolored(), zero)
	assert.False(t, zero.IsSet())
	assert.Equal(t, "uncolored", zero.String())

	v, ok := zero.Value()
	assert.False(t, ok)
	assert.Equal(t, 0, v)

	c := core.ColorIndex(0)
	assert.True(t, c.IsSet())
	assert.NotEqual(t, zero, c, "color 0 must differ from uncolored")
	assert.Equal(t, "0", c.String())

	v, ok = core.ColorIndex(4).Value()
	assert.True(t, ok)
	assert.Equal(t, 4, v)
}

func TestBipartite(t *testing.T) {
	evenCycle := newStringGraph(t, 4, 2, "A", "B", "C", "D")
	addEdges(t, evenCycle, [2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "D"}, [2]string{"D", "A"})
	assert.True(t, evenCycle.Bipartite())

	oddCycle := newStringGraph(t, 5, 3, "A", "B", "C", "D", "E")
	addEdges(t, oddCycle, [2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "D"}, [2]string{"D", "E"}, [2]string{"E", "A"})
	assert.False(t, oddCycle.Bipartite())

	// Components are checked independently; an odd cycle anywhere decides.
	mixed := newStringGraph(t, 5, 3, "P", "Q", "X", "Y", "Z")
	addEdges(t, mixed, [2]string{"P", "Q"}, [2]string{"X", "Y"}, [2]string{"Y", "Z"}, [2]string{"Z", "X"})
	assert.False(t, mixed.Bipartite())

	empty := newStringGraph(t, 3, 1)
	assert.True(t, empty.Bipartite())

	// Bipartite never touches vertex colors.
	for _, a := range evenCycle.Coloring() {
		assert.False(t, a.Color.IsSet())
	}
}

func TestBipartite_GreedyMayExceedTwo(t *testing.T) {
	// A bipartite path whose insertion order pushes greedy to 3 colors.
	g := newStringGraph(t, 4, 4, "0", "3", "1", "2")
	addEdges(t, g, [2]string{"0", "1"}, [2]string{"1", "2"}, [2]string{"2", "3"})

	assert.True(t, g.Bipartite())
	n, err := g.ChromaticNumber()
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}
