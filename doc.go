// Package evcent computes eigenvector centrality — the dominant
// eigenvector of a graph's (optionally weighted) adjacency relation —
// for graphs partitioned across a 2-D grid of parallel workers, and
// verifies the distributed result against a single-partition reference
// run within numerical tolerance.
//
// 🚀 What is evcent?
//
//	A pure-Go library that brings together:
//		• Generic graph primitives: compact edge lists over parametric
//		  vertex-id and weight types, with in-edge CSR views
//		• Collective communication: barrier, all-reduce, gatherv and
//		  broadcast over an in-process cluster of workers
//		• 2-D grid partitioning with locality-preserving renumbering
//		• A distributed power-iteration engine with per-iteration hooks
//		• Id-aware aggregation and magnitude-aware tolerance comparison
//
// ✨ Why choose evcent?
//
//   - Partition-count invariance – one partition or sixteen, the same
//     answer within tolerance
//   - Deterministic – fixed rank-ordered reductions, seeded generators
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – iteration hooks (OnIteration) for custom observation
//
// Everything is organized under five subpackages:
//
//	graph/      — generic Graph, Edge, RenumberMap and CSR views
//	builder/    — deterministic fixtures: Karate, R-MAT, Matrix Market
//	comms/      — collective channel & in-process cluster
//	partition/  — 2-D process grids and per-rank graph partitions
//	centrality/ — power iteration, aggregation, verification
//
// Quick example:
//
//	g, _ := builder.Karate[int32, float64]()
//	scores, stats, _ := centrality.Single(context.Background(), g,
//	    centrality.WithEpsilon[float64](1e-6),
//	    centrality.WithMaxIterations[float64](500),
//	)
//	fmt.Println(stats.Converged, scores[0])
//
// See each subpackage's doc.go for details, invariants, and complexity.
package evcent
