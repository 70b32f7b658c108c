// SPDX-License-Identifier: MIT
// Package: lvcolor/builder
//
// impl_bipartite.go - CompleteBipartite(n1, n2) constructor.
//
// Contract:
//   - n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   - Inserts the left side "<left>0".."<left>n1-1" first, then the right side
//     "<right>0".."<right>n2-1" (prefixes from WithPartitionPrefix, default L/R).
//   - Emits every cross edge, left index outer, right index inner.
//
// Coloring: the left side takes color 0 and the right side color 1.

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/lvcolor/core"
)

const (
	methodCompleteBipartite = "CompleteBipartite"
	minPartitionSize        = 1
)

// CompleteBipartite returns a Constructor for the complete bipartite graph K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				methodCompleteBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
		}

		left := make([]string, n1)
		for i := range left {
			left[i] = cfg.leftPrefix + strconv.Itoa(i)
			if err := ensureVertex(methodCompleteBipartite, g, left[i]); err != nil {
				return err
			}
		}
		right := make([]string, n2)
		for j := range right {
			right[j] = cfg.rightPrefix + strconv.Itoa(j)
			if err := ensureVertex(methodCompleteBipartite, g, right[j]); err != nil {
				return err
			}
		}

		for _, u := range left {
			for _, v := range right {
				if err := link(methodCompleteBipartite, g, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
