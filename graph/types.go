// Package graph defines the generic type constraints, options and
// sentinel errors for the evcent data model.
package graph

import "errors"

// Sentinel errors for graph construction.
var (
	// ErrBadVertexCount is returned when New receives a negative vertex count.
	ErrBadVertexCount = errors.New("graph: vertex count must be non-negative")

	// ErrVertexRange is returned when an edge endpoint lies outside [0, NumVertices).
	ErrVertexRange = errors.New("graph: vertex id out of range")

	// ErrLoopNotAllowed is returned for a self-loop when loops are disabled.
	ErrLoopNotAllowed = errors.New("graph: self-loop not allowed")

	// ErrBadWeight is returned for a non-zero weight on an unweighted graph.
	ErrBadWeight = errors.New("graph: bad weight for unweighted graph")
)

// ID constrains the vertex identifier type. Signed and unsigned integer
// ids cover every instantiation the engine is specialized for.
type ID interface {
	~int | ~int32 | ~int64 | ~uint32 | ~uint64
}

// Weight constrains the edge weight / centrality score type.
type Weight interface {
	~float32 | ~float64
}

// Edge is a single (from, to, weight) triple. For unweighted graphs the
// stored Weight is zero and views substitute the unit weight.
type Edge[V ID, W Weight] struct {
	From   V
	To     V
	Weight W
}

// Option configures a Graph before any edges are added.
type Option func(*config)

// config collects the flags resolved from Options.
type config struct {
	directed   bool
	weighted   bool
	allowLoops bool
}

// WithDirected makes every edge one-way (from → to).
// The default is undirected: each edge contributes both orientations.
func WithDirected() Option {
	return func(c *config) { c.directed = true }
}

// WithWeighted allows non-zero edge weights.
func WithWeighted() Option {
	return func(c *config) { c.weighted = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() Option {
	return func(c *config) { c.allowLoops = true }
}
