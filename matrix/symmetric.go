// SPDX-License-Identifier: MIT

// Package matrix - Symmetric boolean storage (row-major) & safe accessors.
//
// Purpose:
//   - Keep adjacency in one flat buffer with the explicit index formula i*n + j.
//   - Guarantee safety at the public surface: At/Link return errors instead of panicking.
//   - Keep loop orders fixed (ascending row, ascending column) so every query is deterministic.
//
// Complexity quicksheet:
//   - NewSymmetric, Clone: O(n²); At/Link: O(1); Row/Degree: O(active); CountLinks: O(active²).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"
	ctxLink   = "Link"
	ctxRow    = "Row"
	ctxDegree = "Degree"
)

// Symmetric is a fixed n×n boolean matrix with a zero diagonal.
//   - n is the side length chosen at construction.
//   - data is a flat buffer of length n*n in row-major order.
type Symmetric struct {
	n    int
	data []bool
}

var _ fmt.Stringer = (*Symmetric)(nil)

// NewSymmetric creates an n×n matrix with every entry unset.
//
// Implementation:
//   - Stage 1: validate n >= 0; else ErrInvalidDimensions.
//   - Stage 2: allocate a zero-filled buffer of n*n cells.
//
// Behavior highlights:
//   - n == 0 is legal and yields a matrix on which every index is out of range.
//   - The buffer is never reallocated afterwards.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func NewSymmetric(n int) (*Symmetric, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewSymmetric(%d): %w", n, ErrInvalidDimensions)
	}

	return &Symmetric{n: n, data: make([]bool, n*n)}, nil
}

// Size returns the side length n fixed at construction.
func (m *Symmetric) Size() int {
	if m == nil {
		return 0
	}

	return m.n
}

// Clone returns an independent copy of m.
// Complexity: O(n²).
func (m *Symmetric) Clone() *Symmetric {
	if m == nil {
		return nil
	}
	data := make([]bool, len(m.data))
	copy(data, m.data)

	return &Symmetric{n: m.n, data: data}
}

// inRange reports whether both indices address a cell of m.
func (m *Symmetric) inRange(i, j int) bool {
	return i >= 0 && i < m.n && j >= 0 && j < m.n
}

// At reports whether entry [i][j] is set.
// Returns ErrOutOfRange if either index lies outside [0, Size()).
func (m *Symmetric) At(i, j int) (bool, error) {
	if m == nil {
		return false, ErrNilMatrix
	}
	if !m.inRange(i, j) {
		return false, symErrorf(ctxAt, i, j, ErrOutOfRange)
	}

	return m.data[i*m.n+j], nil
}

// Link sets entries [i][j] and [j][i].
//
// Behavior highlights:
//   - Idempotent: linking an already linked pair changes nothing.
//   - Entries are only ever set; there is no Unlink.
//
// Errors:
//   - ErrOutOfRange if either index lies outside [0, Size()).
//   - ErrDiagonal if i == j.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Symmetric) Link(i, j int) error {
	if m == nil {
		return ErrNilMatrix
	}
	if !m.inRange(i, j) {
		return symErrorf(ctxLink, i, j, ErrOutOfRange)
	}
	if i == j {
		return symErrorf(ctxLink, i, j, ErrDiagonal)
	}

	m.data[i*m.n+j] = true
	m.data[j*m.n+i] = true

	return nil
}

// checkRow validates a row index together with its active bound.
func (m *Symmetric) checkRow(method string, i, active int) error {
	if m == nil {
		return ErrNilMatrix
	}
	if active < 0 || active > m.n || i < 0 || i >= active {
		return symErrorf(method, i, active, ErrOutOfRange)
	}

	return nil
}

// Row returns, in ascending order, every column j < active with [i][j] set.
// The result is never nil; an isolated row yields an empty slice.
//
// Errors:
//   - ErrOutOfRange unless 0 <= i < active <= Size().
//
// Complexity:
//   - Time O(active), Space O(deg(i)).
func (m *Symmetric) Row(i, active int) ([]int, error) {
	if err := m.checkRow(ctxRow, i, active); err != nil {
		return nil, err
	}

	base := i * m.n
	cols := make([]int, 0)
	for j := 0; j < active; j++ {
		if m.data[base+j] {
			cols = append(cols, j)
		}
	}

	return cols, nil
}

// Degree counts the set entries of row i among the first active columns.
func (m *Symmetric) Degree(i, active int) (int, error) {
	if err := m.checkRow(ctxDegree, i, active); err != nil {
		return 0, err
	}

	base := i * m.n
	deg := 0
	for j := 0; j < active; j++ {
		if m.data[base+j] {
			deg++
		}
	}

	return deg, nil
}

// CountLinks returns the number of undirected links inside the leading
// active×active submatrix: the count of set entries divided by two.
// Symmetry makes the division exact. active is clamped to [0, Size()].
//
// Complexity:
//   - Time O(active²), Space O(1).
func (m *Symmetric) CountLinks(active int) int {
	if m == nil {
		return 0
	}
	if active > m.n {
		active = m.n
	}

	set := 0
	for i := 0; i < active; i++ {
		base := i * m.n
		for j := 0; j < active; j++ {
			if m.data[base+j] {
				set++
			}
		}
	}

	return set / 2
}

// String renders the matrix as rows of 0/1 cells, one row per line.
func (m *Symmetric) String() string {
	if m == nil {
		return "<nil>"
	}

	var sb strings.Builder
	for i := 0; i < m.n; i++ {
		sb.WriteString("[")
		for j := 0; j < m.n; j++ {
			if j > 0 {
				sb.WriteString(" ")
			}
			if m.data[i*m.n+j] {
				sb.WriteString("1")
			} else {
				sb.WriteString("0")
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
