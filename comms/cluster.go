package comms

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Element constrains the element types a reduction can sum.
type Element interface {
	~int | ~int32 | ~int64 | ~uint32 | ~uint64 | ~float32 | ~float64
}

// Cluster owns the shared transport for a group of ranks. One Cluster
// backs exactly one process group; its Comms handles must not be mixed
// with handles from another Cluster.
type Cluster struct {
	ranks []*Comms
}

// NewCluster builds the in-process transport for size ranks.
func NewCluster(size int) (*Cluster, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %d", ErrClusterSize, size)
	}
	up := make([]chan envelope, size)
	down := make([]chan envelope, size)
	for r := 0; r < size; r++ {
		up[r] = make(chan envelope)
		down[r] = make(chan envelope)
	}
	cl := &Cluster{ranks: make([]*Comms, size)}
	for r := 0; r < size; r++ {
		cl.ranks[r] = &Comms{rank: r, size: size, up: up, down: down}
	}
	return cl, nil
}

// Size returns the number of ranks in the group.
func (cl *Cluster) Size() int { return len(cl.ranks) }

// Comms returns the handle for one rank.
func (cl *Cluster) Comms(rank int) (*Comms, error) {
	if rank < 0 || rank >= len(cl.ranks) {
		return nil, fmt.Errorf("%w: %d of %d", ErrRankRange, rank, len(cl.ranks))
	}
	return cl.ranks[rank], nil
}

// Run executes fn concurrently on every rank of the group and waits
// for all of them. The first error cancels the derived context, which
// unblocks any rank stuck inside a collective; that first error is
// returned.
func (cl *Cluster) Run(ctx context.Context, fn func(ctx context.Context, c *Comms) error) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, c := range cl.ranks {
		c := c
		g.Go(func() error { return fn(ctx, c) })
	}
	return g.Wait()
}
