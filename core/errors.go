// SPDX-License-Identifier: MIT
// Package core: sentinel error set.
//
// Error policy:
//   - Only package-level sentinels are exposed; callers branch with errors.Is.
//   - Methods attach context with fmt.Errorf("<Method>: ...: %w", ErrX).
//   - No method panics on caller input. A payload type whose dynamic values
//     are not comparable (e.g. a slice stored in an interface) is a programmer
//     error and panics inside the runtime's map lookup.

package core

import "errors"

var (
	// ErrCapacityExceeded indicates AddVertex was called on a store that
	// already holds MaxVertices vertices. The graph is left unmodified.
	ErrCapacityExceeded = errors.New("core: vertex capacity exceeded")

	// ErrVertexNotFound indicates an operation referenced a payload that no
	// stored vertex carries. The graph is left unmodified.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrColorCapacityExceeded indicates the coloring engine found a vertex
	// whose colored neighbors already use every color in [0, MaxColors).
	// Colors assigned before the failing vertex stay assigned.
	ErrColorCapacityExceeded = errors.New("core: color capacity exceeded")

	// ErrLoopNotAllowed indicates AddEdge was asked to join a vertex to itself.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrInvalidCapacity indicates NewGraph received a negative capacity.
	ErrInvalidCapacity = errors.New("core: capacity must be >= 0")

	// ErrColorOutOfRange indicates Precolor received a color outside [0, MaxColors).
	ErrColorOutOfRange = errors.New("core: color out of range")

	// ErrColorConflict indicates two adjacent vertices carry the same color.
	ErrColorConflict = errors.New("core: adjacent vertices share a color")
)
