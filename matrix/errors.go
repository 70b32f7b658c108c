// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every exported method returns one of these sentinels (possibly wrapped with
// call-site context); tests match them via errors.Is. No method panics on
// caller-supplied indices.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions indicates a negative matrix size was requested.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrOutOfRange indicates a row or column index outside [0, Size()).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDiagonal indicates an attempt to set a diagonal entry.
	// The adjacency diagonal stays zero for the lifetime of the matrix.
	ErrDiagonal = errors.New("matrix: diagonal entries are fixed at zero")

	// ErrNilMatrix indicates a method was called on a nil *Symmetric.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)

// symErrorf wraps err with the method tag and coordinates, e.g.
// "Symmetric.Link(3,7): matrix: index out of range".
func symErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Symmetric.%s(%d,%d): %w", method, row, col, err)
}
