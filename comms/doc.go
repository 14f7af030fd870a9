// Package comms provides the collective communication channel used to
// synchronize graph partitions: barrier, all-reduce (sum),
// variable-length gather-to-root, and broadcast — plus an in-process
// Cluster that runs one goroutine per rank.
//
// What
//
//   - Comms: one handle per rank, carrying Rank/Size and the Barrier
//     primitive.
//   - AllReduceSum, Gatherv, Broadcast: generic collectives as free
//     functions (a Go interface cannot carry per-method type
//     parameters, so the element type is bound at the call site).
//   - Cluster: builds the shared transport for a group of ranks and
//     runs a worker function on every rank concurrently.
//
// Semantics
//
//	Every collective blocks the calling rank until all ranks of the
//	group have entered the same operation; no partial results are ever
//	visible. Collectives issued by one group therefore establish a
//	total order across iterations. All-reduce results are bitwise
//	identical on every rank because the root accumulates contributions
//	in fixed rank order (0, 1, 2, …), which also makes a run
//	deterministic for a fixed cluster size.
//
//	A cluster of size 1 degenerates every collective to a local no-op,
//	so the same calling code serves both the distributed run and the
//	single-partition reference run.
//
// Cancellation
//
//	Every blocking point selects on ctx.Done(). A stalled peer stalls
//	the group (classic collective semantics); cancelling the context is
//	the only way out, and Cluster.Run cancels the whole group as soon
//	as any rank returns an error.
//
// Errors
//
//   - ErrClusterSize         group size below 1.
//   - ErrRankRange           rank outside [0, size).
//   - ErrCollectiveMismatch  ranks disagree on the operation or element
//     type of the collective being issued.
//   - ErrVectorLength        all-reduce vectors differ in length.
package comms
