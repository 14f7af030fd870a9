// Package graph provides the generic data model shared by every evcent
// component: a compact, edge-list based Graph over parametric vertex-id
// and weight types, an in-edge CSR view for sparse matrix-vector
// kernels, and the RenumberMap bijection between original and
// partition-local vertex ids.
//
// What
//
//   - Graph[V, W]: a vertex range [0, NumVertices) plus a list of
//     (from, to, weight) edges. Directedness, weights and self-loops
//     are opt-in via functional options, mirroring how the flags are
//     validated on every AddEdge call.
//   - InCSR[V, W]: the in-neighbor view of a contiguous destination
//     range, built once per partition. For undirected graphs each edge
//     contributes both orientations; unweighted edges count as 1.
//   - RenumberMap[V]: the bijection original id ↔ compact local id for
//     one owned range. Stable for the lifetime of a computation.
//
// Why
//
//	Eigenvector centrality is one sparse matrix-vector product per
//	iteration. Keeping the model as flat slices (rather than nested
//	maps) makes the per-partition kernel a tight loop over RowPtr/Src,
//	and makes gather/scatter of sub-vectors trivial.
//
// Determinism
//
//	Edges are stored in insertion order and CSR construction is a fixed
//	two-pass counting sort, so identical inputs always produce
//	identical views.
//
// Concurrency
//
//	A Graph is mutable only while it is being built. Once a computation
//	starts the graph and every view derived from it are read-only, so
//	partitions may share them across goroutines without locking.
//
// Errors
//
//   - ErrBadVertexCount  negative vertex count passed to New.
//   - ErrVertexRange     edge endpoint outside [0, NumVertices).
//   - ErrLoopNotAllowed  self-loop without WithLoops.
//   - ErrBadWeight       non-zero weight on an unweighted graph.
package graph
