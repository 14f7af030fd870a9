package partition

import (
	"fmt"

	"github.com/katalvlaran/evcent/graph"
)

// Partition is the slice of a graph owned by one rank: the renumbering
// of its owned vertex range plus the in-edge view feeding the local
// matrix-vector kernel. Read-only once built.
type Partition[V graph.ID, W graph.Weight] struct {
	Grid        Grid
	Rank        int
	NumVertices int // global vertex count
	Renumber    graph.RenumberMap[V]
	In          *graph.InCSR[V, W]
}

// Split builds rank's partition of g on grid. Chunk boundaries are
// balanced: the first NumVertices mod Size chunks carry one extra
// vertex. Deterministic for fixed inputs.
// Complexity: O(E + V/Size).
func Split[V graph.ID, W graph.Weight](g *graph.Graph[V, W], grid Grid, rank int) (*Partition[V, W], error) {
	if rank < 0 || rank >= grid.Size() {
		return nil, fmt.Errorf("%w: %d of %d", ErrRank, rank, grid.Size())
	}
	lo, hi := chunkRange[V](g.NumVertices(), grid.Size(), grid.ChunkOf(rank))
	return &Partition[V, W]{
		Grid:        grid,
		Rank:        rank,
		NumVertices: g.NumVertices(),
		Renumber:    graph.NewRenumberMap(lo, hi),
		In:          graph.BuildInCSR(g, lo, hi),
	}, nil
}

// chunkRange returns the original-id range [lo, hi) of chunk c when n
// vertices are cut into p balanced contiguous chunks.
func chunkRange[V graph.ID](n, p, c int) (lo, hi V) {
	base, rem := n/p, n%p
	start := c*base + min(c, rem)
	size := base
	if c < rem {
		size++
	}
	return V(start), V(start + size)
}
