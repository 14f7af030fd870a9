package graph

import "fmt"

// Graph is a compact edge-list graph over the vertex range
// [0, NumVertices). It is built once with New/AddEdge and treated as
// read-only for the lifetime of a computation.
type Graph[V ID, W Weight] struct {
	numVertices int
	directed    bool
	weighted    bool
	allowLoops  bool
	edges       []Edge[V, W]
}

// New creates an empty Graph with numVertices vertices and the given
// options. By default the graph is undirected, unweighted and rejects
// self-loops.
// Complexity: O(1).
func New[V ID, W Weight](numVertices int, opts ...Option) (*Graph[V, W], error) {
	if numVertices < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadVertexCount, numVertices)
	}
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	return &Graph[V, W]{
		numVertices: numVertices,
		directed:    c.directed,
		weighted:    c.weighted,
		allowLoops:  c.allowLoops,
	}, nil
}

// AddEdge appends one edge after validating it against the graph flags.
// On an unweighted graph w must be zero; views substitute unit weight.
// Complexity: amortized O(1).
func (g *Graph[V, W]) AddEdge(from, to V, w W) error {
	n := V(g.numVertices)
	if from < 0 || from >= n || to < 0 || to >= n {
		return fmt.Errorf("%w: (%d, %d) with %d vertices", ErrVertexRange, int64(from), int64(to), g.numVertices)
	}
	if from == to && !g.allowLoops {
		return fmt.Errorf("%w: vertex %d", ErrLoopNotAllowed, int64(from))
	}
	if !g.weighted && w != 0 {
		return fmt.Errorf("%w: weight %v on edge (%d, %d)", ErrBadWeight, w, int64(from), int64(to))
	}
	g.edges = append(g.edges, Edge[V, W]{From: from, To: to, Weight: w})
	return nil
}

// NumVertices returns the size of the vertex range.
func (g *Graph[V, W]) NumVertices() int { return g.numVertices }

// NumEdges returns the number of stored edges.
func (g *Graph[V, W]) NumEdges() int { return len(g.edges) }

// Directed reports whether edges are one-way.
func (g *Graph[V, W]) Directed() bool { return g.directed }

// Weighted reports whether non-zero edge weights are allowed.
func (g *Graph[V, W]) Weighted() bool { return g.weighted }

// LoopsAllowed reports whether self-loops are permitted.
func (g *Graph[V, W]) LoopsAllowed() bool { return g.allowLoops }

// Edges returns the stored edge list in insertion order.
// The returned slice is shared; callers must not mutate it.
func (g *Graph[V, W]) Edges() []Edge[V, W] { return g.edges }

// weightOf returns the effective weight of e: the stored weight on a
// weighted graph, unit weight otherwise.
func (g *Graph[V, W]) weightOf(e Edge[V, W]) W {
	if g.weighted {
		return e.Weight
	}
	return 1
}
