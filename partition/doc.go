// Package partition maps a process group onto a 2-D grid and splits a
// graph into per-rank partitions: every vertex is owned by exactly one
// rank, partitions are disjoint, and their union covers the graph.
//
// Grid factorization
//
//	For a group of size N the grid has rows = the largest integer
//	≤ √N that divides N evenly (degrading by one until divisibility
//	holds) and cols = N/rows. rows falls back to 1, so every N has a
//	valid grid; a non-trivial factorization simply may not exist.
//
// Ownership
//
//	The vertex range [0, V) is cut into Size() balanced contiguous
//	chunks. Chunks are assigned in column-major grid order while ranks
//	enumerate row-major, so for a non-square grid the rank-ordered
//	gather of owned ranges is not globally sorted — which is exactly
//	why aggregation must sort by original id before comparing runs
//	with different partition counts.
//
// Each partition carries the in-edge CSR view of its owned
// destinations (sources remain global ids, since adjacency spans
// partition boundaries) and the RenumberMap for its owned range.
//
// Errors
//
//   - ErrGridSize  group size below 1.
//   - ErrRank      rank outside [0, grid size).
package partition
