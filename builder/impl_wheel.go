// SPDX-License-Identifier: MIT
// Package: lvcolor/builder
//
// impl_wheel.go - Wheel(n) constructor.
//
// Contract:
//   - n ≥ 4 (else ErrTooFewVertices); the rim is C_{n-1}.
//   - Builds the rim via Cycle(n-1) (IDs cfg.idFn(0..n-2)), then inserts the
//     hub "Center" last and emits spokes Center—rim[i] by increasing i.
//
// Coloring: the rim takes 2 or 3 colors and the hub one more.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvcolor/core"
)

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that builds a wheel W_n = C_{n-1} + "Center".
func Wheel(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}

		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: rim C_%d: %w", methodWheel, n-1, err)
		}
		if err := ensureVertex(methodWheel, g, centerVertexID); err != nil {
			return err
		}
		for i := 0; i < n-1; i++ {
			if err := link(methodWheel, g, centerVertexID, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
