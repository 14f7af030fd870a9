package comms

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for collective operations.
var (
	// ErrClusterSize is returned when a cluster is created with size < 1.
	ErrClusterSize = errors.New("comms: cluster size must be at least 1")

	// ErrRankRange is returned when a rank lies outside [0, size).
	ErrRankRange = errors.New("comms: rank out of range")

	// ErrCollectiveMismatch is returned when ranks issue different
	// collectives, or the same collective with different element types.
	ErrCollectiveMismatch = errors.New("comms: mismatched collective operation")

	// ErrVectorLength is returned when all-reduce vectors differ in length.
	ErrVectorLength = errors.New("comms: all-reduce vector lengths differ")
)

// opKind tags the collective being issued so that protocol confusion
// between ranks is detected instead of silently corrupting data.
type opKind uint8

const (
	opBarrier opKind = iota
	opAllReduce
	opGatherv
	opBroadcast
)

// String names the operation for error messages.
func (k opKind) String() string {
	switch k {
	case opBarrier:
		return "barrier"
	case opAllReduce:
		return "allreduce"
	case opGatherv:
		return "gatherv"
	case opBroadcast:
		return "broadcast"
	}
	return "unknown"
}

// envelope is the unit of exchange between a rank and the root.
type envelope struct {
	kind    opKind
	payload any
}

// Comms is one rank's handle on the collective channel. All handles of
// a group share the same underlying channels; rank 0 acts as the
// rendezvous root for every collective.
type Comms struct {
	rank int
	size int
	up   []chan envelope // up[r]: rank r → root
	down []chan envelope // down[r]: root → rank r
}

// Rank returns this handle's rank in [0, Size).
func (c *Comms) Rank() int { return c.rank }

// Size returns the number of ranks in the group.
func (c *Comms) Size() int { return c.size }

// collectToRoot delivers payload to rank 0. On rank 0 it returns every
// rank's payload indexed by rank; on other ranks it returns nil.
// Blocks until all ranks have entered the collective.
func (c *Comms) collectToRoot(ctx context.Context, kind opKind, payload any) ([]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if c.size == 1 {
		return []any{payload}, nil
	}
	if c.rank != 0 {
		select {
		case c.up[c.rank] <- envelope{kind: kind, payload: payload}:
			return nil, nil
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	all := make([]any, c.size)
	all[0] = payload
	for r := 1; r < c.size; r++ {
		select {
		case env := <-c.up[r]:
			if env.kind != kind {
				return nil, fmt.Errorf("%w: rank %d issued %s, root expected %s",
					ErrCollectiveMismatch, r, env.kind, kind)
			}
			all[r] = env.payload
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return all, nil
}

// replyFromRoot distributes the per-rank results computed on rank 0.
// Rank 0 passes results (indexed by rank) and receives results[0];
// other ranks pass nil and receive their entry. Blocks until the root
// has delivered to every rank.
func (c *Comms) replyFromRoot(ctx context.Context, kind opKind, results []any) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if c.size == 1 {
		return results[0], nil
	}
	if c.rank != 0 {
		select {
		case env := <-c.down[c.rank]:
			if env.kind != kind {
				return nil, fmt.Errorf("%w: root replied %s, rank %d expected %s",
					ErrCollectiveMismatch, env.kind, c.rank, kind)
			}
			return env.payload, nil
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	for r := 1; r < c.size; r++ {
		select {
		case c.down[r] <- envelope{kind: kind, payload: results[r]}:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return results[0], nil
}

// Barrier blocks until every rank of the group has reached it.
func (c *Comms) Barrier(ctx context.Context) error {
	if _, err := c.collectToRoot(ctx, opBarrier, nil); err != nil {
		return err
	}
	_, err := c.replyFromRoot(ctx, opBarrier, make([]any, c.size))
	return err
}

// AllReduceSum sums vec element-wise across all ranks and stores the
// result back into vec on every rank. The accumulation happens on the
// root in fixed rank order, so every rank observes the same bits and
// repeated runs are deterministic for a fixed group size.
// All ranks must pass vectors of the same length.
func AllReduceSum[T Element](ctx context.Context, c *Comms, vec []T) error {
	all, err := c.collectToRoot(ctx, opAllReduce, vec)
	if err != nil {
		return err
	}
	var results []any
	if c.rank == 0 {
		acc := make([]T, len(vec))
		copy(acc, vec)
		for r := 1; r < c.size; r++ {
			in, ok := all[r].([]T)
			if !ok {
				return fmt.Errorf("%w: allreduce element type differs on rank %d", ErrCollectiveMismatch, r)
			}
			if len(in) != len(acc) {
				return fmt.Errorf("%w: rank %d sent %d, root has %d", ErrVectorLength, r, len(in), len(acc))
			}
			for i := range acc {
				acc[i] += in[i]
			}
		}
		results = make([]any, c.size)
		for r := range results {
			results[r] = acc
		}
	}
	out, err := c.replyFromRoot(ctx, opAllReduce, results)
	if err != nil {
		return err
	}
	res, ok := out.([]T)
	if !ok {
		return fmt.Errorf("%w: allreduce element type differs on rank %d", ErrCollectiveMismatch, c.rank)
	}
	copy(vec, res)
	return nil
}

// Gatherv gathers each rank's local vector to rank 0. Vectors may
// differ in length per rank. Rank 0 receives the per-rank vectors
// indexed by rank; every other rank receives nil.
func Gatherv[T any](ctx context.Context, c *Comms, local []T) ([][]T, error) {
	all, err := c.collectToRoot(ctx, opGatherv, local)
	if err != nil {
		return nil, err
	}
	var results []any
	if c.rank == 0 {
		results = make([]any, c.size)
	}
	if _, err = c.replyFromRoot(ctx, opGatherv, results); err != nil {
		return nil, err
	}
	if c.rank != 0 {
		return nil, nil
	}
	gathered := make([][]T, c.size)
	for r, payload := range all {
		in, ok := payload.([]T)
		if !ok {
			return nil, fmt.Errorf("%w: gatherv element type differs on rank %d", ErrCollectiveMismatch, r)
		}
		gathered[r] = in
	}
	return gathered, nil
}

// Broadcast copies rank 0's vec into every rank's vec. All ranks must
// pass vectors of the same length.
func Broadcast[T any](ctx context.Context, c *Comms, vec []T) error {
	all, err := c.collectToRoot(ctx, opBroadcast, vec)
	if err != nil {
		return err
	}
	var results []any
	if c.rank == 0 {
		results = make([]any, c.size)
		for r := range results {
			results[r] = all[0]
		}
	}
	out, err := c.replyFromRoot(ctx, opBroadcast, results)
	if err != nil {
		return err
	}
	src, ok := out.([]T)
	if !ok {
		return fmt.Errorf("%w: broadcast element type differs on rank %d", ErrCollectiveMismatch, c.rank)
	}
	if len(src) != len(vec) {
		return fmt.Errorf("%w: broadcast got %d, rank %d has %d", ErrVectorLength, len(src), c.rank, len(vec))
	}
	if c.rank != 0 {
		copy(vec, src)
	}
	return nil
}
