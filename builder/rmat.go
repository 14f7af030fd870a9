package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/evcent/graph"
)

// RMATConfig parameterizes the recursive-matrix generator. The three
// quadrant probabilities A, B, C (with D = 1−A−B−C) steer each edge
// into a quadrant of the recursively halved adjacency matrix, Scale
// fixes the vertex count at 2^Scale, and EdgeFactor the average
// out-degree. The same config always generates the same graph.
type RMATConfig struct {
	Scale      int   // log2 of the vertex count; must be ≥ 1
	EdgeFactor int   // edges per vertex; must be ≥ 1
	A, B, C    float64
	Seed       int64
	Directed   bool
	AllowLoops bool // keep self-loops instead of resampling them
	Weighted   bool // draw uniform [0, 1) edge weights
}

// RMAT generates a recursive-matrix random graph from cfg.
// Complexity: O(Scale · 2^Scale · EdgeFactor).
func RMAT[V graph.ID, W graph.Weight](cfg RMATConfig) (*graph.Graph[V, W], error) {
	if cfg.Scale < 1 {
		return nil, fmt.Errorf("%w: %d", ErrScale, cfg.Scale)
	}
	if cfg.EdgeFactor < 1 {
		return nil, fmt.Errorf("%w: %d", ErrEdgeFactor, cfg.EdgeFactor)
	}
	if cfg.A < 0 || cfg.B < 0 || cfg.C < 0 || cfg.A+cfg.B+cfg.C > 1 {
		return nil, fmt.Errorf("%w: a=%g b=%g c=%g", ErrProbability, cfg.A, cfg.B, cfg.C)
	}
	// With b = c = 0 every level picks a diagonal quadrant, so every
	// pair is a self-loop and resampling can never produce anything else.
	if !cfg.AllowLoops && cfg.B == 0 && cfg.C == 0 {
		return nil, fmt.Errorf("%w: b=0 and c=0 admit only self-loop pairs", ErrProbability)
	}

	opts := []graph.Option{}
	if cfg.Directed {
		opts = append(opts, graph.WithDirected())
	}
	if cfg.AllowLoops {
		opts = append(opts, graph.WithLoops())
	}
	if cfg.Weighted {
		opts = append(opts, graph.WithWeighted())
	}
	n := 1 << cfg.Scale
	g, err := graph.New[V, W](n, opts...)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	numEdges := n * cfg.EdgeFactor
	for i := 0; i < numEdges; i++ {
		from, to := rmatPair(rng, cfg)
		for from == to && !cfg.AllowLoops {
			from, to = rmatPair(rng, cfg)
		}
		var w W
		if cfg.Weighted {
			w = W(rng.Float64())
		}
		if err = g.AddEdge(V(from), V(to), w); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// rmatPair draws one (from, to) pair by descending Scale levels of the
// recursively partitioned adjacency matrix.
func rmatPair(rng *rand.Rand, cfg RMATConfig) (from, to int) {
	for level := 0; level < cfg.Scale; level++ {
		r := rng.Float64()
		switch {
		case r < cfg.A:
			// top-left: neither bit set
		case r < cfg.A+cfg.B:
			to |= 1 << level
		case r < cfg.A+cfg.B+cfg.C:
			from |= 1 << level
		default:
			from |= 1 << level
			to |= 1 << level
		}
	}
	return from, to
}
