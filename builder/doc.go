// Package builder populates core.Graph[string] instances with well-known
// topologies, so that coloring behavior can be exercised on graphs whose
// chromatic numbers are known in advance.
//
// The package offers:
//
//   - BuildGraph: creates a graph with the given capacities and applies
//     Constructors in order.
//   - Constructors: Star, Path, Cycle, Wheel, Complete, CompleteBipartite,
//     Grid, RandomSparse.
//   - Vertex-ID schemes (IDFn): DefaultIDFn ("0","1",…), SymbolIDFn ("A"…"Z"),
//     ExcelColumnIDFn ("A","Z","AA",…), SymbolNumberIDFn(prefix) ("v0","v1",…).
//   - Options (BuilderOption): WithIDScheme, WithSeed, WithRand,
//     WithPartitionPrefix, and shorthands for the ID schemes.
//
// Insertion order matters to greedy coloring, so every constructor documents
// the order in which it adds vertices. Vertices that already exist are reused
// rather than inserted twice, which lets constructors share IDs when composed.
//
// Reference chromatic numbers of the built topologies:
//
//	Star(n)               2 (n ≥ 2)
//	Path(n)               2
//	Cycle(n)              2 if n even, 3 if n odd
//	Wheel(n)              3 if n-1 even, 4 if n-1 odd
//	Complete(n)           n
//	CompleteBipartite     2
//	Grid(r,c)             2 (1 if r = c = 1)
//
// Greedy coloring in each constructor's insertion order attains these values.
//
// Errors: ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource,
// ErrConstructFailed; capacity and lookup errors from core are wrapped and
// pass through unchanged for errors.Is.
package builder
