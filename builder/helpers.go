// SPDX-License-Identifier: MIT
// Package: lvcolor/builder
//
// helpers.go — shared insertion helpers for constructors.
//
// core.Graph keeps duplicate payloads as separate vertices, so constructors go
// through ensureVertex, which inserts an ID only once. This keeps composed
// constructors (Wheel over Cycle, Star next to Path, ...) on shared vertices.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvcolor/core"
)

// ensureVertex inserts id unless a vertex already carries it.
func ensureVertex(method string, g *core.Graph[string], id string) error {
	if g.HasVertex(id) {
		return nil
	}
	if err := g.AddVertex(id); err != nil {
		return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
	}

	return nil
}

// ensureVertices inserts cfg.idFn(0..n-1) in index order and returns the IDs.
func ensureVertices(method string, g *core.Graph[string], cfg builderConfig, n int) ([]string, error) {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.idFn(i)
		if err := ensureVertex(method, g, ids[i]); err != nil {
			return nil, err
		}
	}

	return ids, nil
}

// link adds the undirected edge u—v.
func link(method string, g *core.Graph[string], u, v string) error {
	if err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%s—%s): %w", method, u, v, err)
	}

	return nil
}
