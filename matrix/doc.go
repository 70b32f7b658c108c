// Package matrix provides the fixed-size adjacency storage behind core.Graph.
//
// Symmetric is an n×n boolean matrix kept in a single row-major buffer
// (offset = i*n + j). It is allocated once at construction and never grows.
// Writes go through Link, which sets [i][j] and [j][i] together, so the
// matrix is symmetric by construction and its diagonal is always zero.
//
// Most queries take an "active" bound: only indices below it are inspected.
// core.Graph passes its current vertex count, so rows and columns reserved
// for vertices that were never inserted are ignored.
//
// Complexity quicksheet:
//   - NewSymmetric: O(n²) zero-init.
//   - At, Link: O(1).
//   - Row, Degree: O(active).
//   - CountLinks: O(active²).
package matrix
