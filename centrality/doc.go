// Package centrality computes eigenvector centrality by distributed
// power iteration, aggregates per-partition results into a canonical
// order, and verifies a distributed run against a single-partition
// reference within a magnitude-aware tolerance.
//
// Algorithm
//
//	Starting from a uniform (or supplied) estimate normalized to unit
//	L2 norm, each iteration computes the local slice of the in-weighted
//	matrix-vector product, sums partial products across ranks with an
//	all-reduce, normalizes by the globally reduced L2 norm, and
//	measures convergence as the L1 distance between successive
//	iterates. Iteration stops when that distance falls below
//	epsilon · V or the iteration budget runs out; running out is not an
//	error — the best estimate is returned and Stats.Converged reports
//	the outcome.
//
// Determinism & partition invariance
//
//	For a fixed graph, initial vector and grid, a run reproduces the
//	same estimate bit for bit: reductions accumulate in fixed rank
//	order. Across different partition counts only the reduction order
//	changes, so results agree within the Compare tolerance rule rather
//	than exactly — which is precisely what Compare is for.
//
// Degeneracy
//
//	A zero-norm product (edgeless graph, isolated range) skips
//	normalization and leaves the iterate unchanged, so an empty graph
//	converges immediately to the uniform vector instead of dividing by
//	zero.
//
// Aggregation
//
//	Aggregate gathers every rank's renumber map and sub-vector to rank
//	0 and sorts the concatenation by original vertex id. Partitions are
//	gathered in rank order, not id order, so without this sort results
//	from different partition counts are not comparable.
//
// Verification
//
//	Compare treats ref value a and candidate value b as equal iff
//	|a−b| < max(max(a,b)·epsilon, maxRef·epsilon). The global floor
//	deliberately relaxes comparison for low-centrality vertices and the
//	pairwise term tightens it proportionally for high-centrality ones.
//	The first ten offending indices are reported for diagnostics.
//
// Errors
//
//   - ErrInitialLength  supplied initial vector is not global-length.
//   - ErrLocalLength    aggregate input does not match the owned range.
//   - ErrSizeMismatch   reference and candidate vector sizes differ.
//   - ErrOptionViolation invalid option value (epsilon, budget).
//   - ErrEigenFailed    the dense reference factorization failed.
package centrality
