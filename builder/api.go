// SPDX-License-Identifier: MIT
// Package: lvcolor/builder
//
// api.go - public entry point of the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(maxVertices, maxColors, bopts, cons...).
//   - Factories live in impl_*.go; each returns a Constructor closure.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical
//     graphs with identical insertion order.
//   - Safety: constructors never panic; they return wrapped sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvcolor/core"
)

// Constructor applies a deterministic mutation to g using the resolved
// builderConfig. Constructors validate parameters before touching g and
// return sentinel errors (wrapped with method context) instead of panicking.
type Constructor func(g *core.Graph[string], cfg builderConfig) error

// BuildGraph creates a core.Graph[string] with the given capacities, resolves
// the builder configuration from bopts, and applies all constructors in order.
// The first constructor error is returned wrapped as "BuildGraph: %w"; no
// partial cleanup is attempted.
//
// Errors:
//   - core.ErrInvalidCapacity for negative capacities.
//   - ErrConstructFailed for a nil constructor.
//   - Any constructor error, e.g. ErrTooFewVertices or core.ErrCapacityExceeded
//     when the topology does not fit into maxVertices.
func BuildGraph(maxVertices, maxColors int, bopts []BuilderOption, cons ...Constructor) (*core.Graph[string], error) {
	g, err := core.NewGraph[string](maxVertices, maxColors)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err = fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}
