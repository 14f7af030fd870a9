// Package builder constructs the graphs the rest of evcent is tested
// and exercised with: a well-known social-network fixture, a seeded
// R-MAT generator, and a Matrix Market edge-list reader.
//
// What
//
//   - Karate: Zachary's karate club — 34 vertices, 78 undirected
//     edges. The canonical small fixture for centrality checks.
//   - RMAT: recursive-matrix random graphs parameterized by scale
//     (log2 vertex count), average edge factor, quadrant probabilities
//     a, b, c (d = 1−a−b−c), seed, directedness, self-loop policy and
//     an optional uniform-random weighting.
//   - ReadMatrixMarket: coordinate-format Matrix Market input
//     (pattern or real, general or symmetric), 1-indexed vertex pairs
//     with an optional weight per line.
//
// Determinism
//
//	RMAT draws from a private rand.Source seeded from the config, so
//	the same config always yields the same graph. Karate and
//	ReadMatrixMarket are deterministic by construction.
//
// Errors
//
//   - ErrScale        R-MAT scale below 1.
//   - ErrEdgeFactor   R-MAT edge factor below 1.
//   - ErrProbability  quadrant probabilities negative or summing past 1.
//   - ErrFormat       malformed Matrix Market input.
//   - ErrNotSquare    Matrix Market matrix is not square.
package builder
