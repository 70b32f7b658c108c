// SPDX-License-Identifier: MIT
// Package: lvcolor/builder
//
// impl_star.go - Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Inserts the hub "Center" first, then leaves cfg.idFn(1..n-1) in index order.
//   - Emits spokes Center—leaf[i] by increasing i.
//
// Coloring: the hub takes color 0 and every leaf color 1.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvcolor/core"
)

const (
	methodStar     = "Star"
	minStarNodes   = 2
	centerVertexID = "Center"
)

// Star returns a Constructor that builds a star with n vertices:
// one hub "Center" and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		// The hub goes in first so greedy coloring visits it before any leaf.
		if err := ensureVertex(methodStar, g, centerVertexID); err != nil {
			return err
		}

		var leafID string
		for i := 1; i < n; i++ {
			leafID = cfg.idFn(i)
			if err := ensureVertex(methodStar, g, leafID); err != nil {
				return err
			}
			if err := link(methodStar, g, centerVertexID, leafID); err != nil {
				return err
			}
		}

		return nil
	}
}
