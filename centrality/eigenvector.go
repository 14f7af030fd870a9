package centrality

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/evcent/comms"
	"github.com/katalvlaran/evcent/graph"
	"github.com/katalvlaran/evcent/partition"
)

// Eigenvector runs distributed power iteration on rank c.Rank()'s
// partition and returns the centrality scores of the owned vertex
// range in local order, plus the iteration Stats. Every rank of the
// group must call it with the same options; collectives inside the
// loop keep the ranks in lockstep, one iteration at a time.
//
// Exhausting the iteration budget is not an error: the best estimate
// is returned and Stats.Converged reports false.
func Eigenvector[V graph.ID, W graph.Weight](
	ctx context.Context,
	c *comms.Comms,
	p *partition.Partition[V, W],
	opts ...Option[W],
) ([]W, Stats, error) {
	o := DefaultOptions[W]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, Stats{}, o.err
	}

	n := p.NumVertices
	if n == 0 {
		if len(o.Initial) != 0 {
			return nil, Stats{}, fmt.Errorf("%w: got %d, graph has 0", ErrInitialLength, len(o.Initial))
		}
		return []W{}, Stats{Converged: true}, nil
	}
	loV, hiV := p.Renumber.Range()
	lo, hi := int(loV), int(hiV)

	// The estimate is replicated: every rank holds the full vector and
	// owns the [lo, hi) slice of it. Start uniform unless supplied.
	cur := make([]W, n)
	if o.Initial != nil {
		if len(o.Initial) != n {
			return nil, Stats{}, fmt.Errorf("%w: got %d, graph has %d", ErrInitialLength, len(o.Initial), n)
		}
		copy(cur, o.Initial)
	} else {
		for i := range cur {
			cur[i] = 1
		}
	}
	// Share rank 0's bits so every rank iterates from the same start.
	if err := comms.Broadcast(ctx, c, cur); err != nil {
		return nil, Stats{}, err
	}
	if _, err := normalizeL2(ctx, c, cur, lo, hi); err != nil {
		return nil, Stats{}, err
	}

	next := make([]W, n)
	var st Stats
	for iter := 1; iter <= o.MaxIterations; iter++ {
		select {
		case <-ctx.Done():
			return nil, st, ctx.Err()
		default:
		}

		// Local slice of the matrix-vector product: each owned vertex
		// sums its weighted in-neighbors against the current estimate.
		clear(next)
		for r := 0; r < p.In.Rows(); r++ {
			var sum W
			for k := p.In.RowPtr[r]; k < p.In.RowPtr[r+1]; k++ {
				sum += p.In.Wgt[k] * cur[p.In.Src[k]]
			}
			next[lo+r] = sum
		}
		// Adjacency spans partition boundaries, so partial products
		// must be combined before anyone may normalize.
		if err := comms.AllReduceSum(ctx, c, next); err != nil {
			return nil, st, err
		}
		norm, err := normalizeL2(ctx, c, next, lo, hi)
		if err != nil {
			return nil, st, err
		}
		if norm == 0 {
			// Degenerate product (no in-edges anywhere): keep the
			// previous iterate instead of dividing by zero.
			copy(next, cur)
		}

		delta, err := reduceL1Delta(ctx, c, cur, next, lo, hi)
		if err != nil {
			return nil, st, err
		}
		st.Iterations, st.Delta = iter, delta
		o.OnIteration(iter, delta)

		cur, next = next, cur
		if delta < o.Epsilon*float64(n) {
			st.Converged = true
			break
		}
	}

	out := make([]W, hi-lo)
	copy(out, cur[lo:hi])
	if o.Normalize {
		rescaleMax(out, cur)
	}
	return out, st, nil
}

// Single computes eigenvector centrality of an unpartitioned graph on
// a group of one: the reference path for verifying distributed runs.
// The returned vector is global-length, indexed by original vertex id.
func Single[V graph.ID, W graph.Weight](
	ctx context.Context,
	g *graph.Graph[V, W],
	opts ...Option[W],
) ([]W, Stats, error) {
	cl, err := comms.NewCluster(1)
	if err != nil {
		return nil, Stats{}, err
	}
	grid, err := partition.NewGrid(1)
	if err != nil {
		return nil, Stats{}, err
	}
	var (
		out []W
		st  Stats
	)
	err = cl.Run(ctx, func(ctx context.Context, c *comms.Comms) error {
		p, splitErr := partition.Split(g, grid, 0)
		if splitErr != nil {
			return splitErr
		}
		out, st, splitErr = Eigenvector(ctx, c, p, opts...)
		return splitErr
	})
	if err != nil {
		return nil, Stats{}, err
	}
	return out, st, nil
}

// normalizeL2 divides vec by its global L2 norm, computed from the
// owned [lo, hi) partials via an all-reduce so every rank derives the
// same norm. A zero norm leaves vec unchanged and is reported to the
// caller.
func normalizeL2[W graph.Weight](ctx context.Context, c *comms.Comms, vec []W, lo, hi int) (float64, error) {
	var ss float64
	for _, x := range vec[lo:hi] {
		ss += float64(x) * float64(x)
	}
	buf := []float64{ss}
	if err := comms.AllReduceSum(ctx, c, buf); err != nil {
		return 0, err
	}
	norm := math.Sqrt(buf[0])
	if norm == 0 {
		return 0, nil
	}
	for i := range vec {
		vec[i] /= W(norm)
	}
	return norm, nil
}

// reduceL1Delta returns the global L1 distance between successive
// iterates, reduced from the owned [lo, hi) partials.
func reduceL1Delta[W graph.Weight](ctx context.Context, c *comms.Comms, prev, next []W, lo, hi int) (float64, error) {
	var d float64
	for v := lo; v < hi; v++ {
		d += math.Abs(float64(next[v]) - float64(prev[v]))
	}
	buf := []float64{d}
	if err := comms.AllReduceSum(ctx, c, buf); err != nil {
		return 0, err
	}
	return buf[0], nil
}

// rescaleMax scales out so the largest score of the full vector is 1.
// A non-positive maximum leaves out unchanged.
func rescaleMax[W graph.Weight](out, full []W) {
	var maxScore W
	for _, x := range full {
		if x > maxScore {
			maxScore = x
		}
	}
	if maxScore <= 0 {
		return
	}
	for i := range out {
		out[i] /= maxScore
	}
}
