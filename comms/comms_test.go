package comms_test

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/evcent/comms"
)

// TestNewCluster_Validation rejects empty groups and bad ranks.
func TestNewCluster_Validation(t *testing.T) {
	_, err := comms.NewCluster(0)
	assert.ErrorIs(t, err, comms.ErrClusterSize)

	cl, err := comms.NewCluster(2)
	require.NoError(t, err)
	_, err = cl.Comms(2)
	assert.ErrorIs(t, err, comms.ErrRankRange)
	_, err = cl.Comms(-1)
	assert.ErrorIs(t, err, comms.ErrRankRange)
}

// TestAllReduceSum checks that every rank observes the rank-ordered
// sum of all contributions.
func TestAllReduceSum(t *testing.T) {
	const size = 4
	cl, err := comms.NewCluster(size)
	require.NoError(t, err)

	results := make([][]float64, size)
	err = cl.Run(context.Background(), func(ctx context.Context, c *comms.Comms) error {
		vec := []float64{float64(c.Rank()), 2 * float64(c.Rank()), 1}
		if err := comms.AllReduceSum(ctx, c, vec); err != nil {
			return err
		}
		results[c.Rank()] = vec
		return nil
	})
	require.NoError(t, err)

	want := []float64{6, 12, 4} // 0+1+2+3, twice that, one per rank
	for rank, got := range results {
		assert.Equal(t, want, got, "rank %d result", rank)
	}
}

// TestAllReduceSum_LengthMismatch surfaces differing vector lengths.
func TestAllReduceSum_LengthMismatch(t *testing.T) {
	cl, err := comms.NewCluster(2)
	require.NoError(t, err)

	err = cl.Run(context.Background(), func(ctx context.Context, c *comms.Comms) error {
		vec := make([]float64, 1+c.Rank())
		return comms.AllReduceSum(ctx, c, vec)
	})
	assert.ErrorIs(t, err, comms.ErrVectorLength)
}

// TestGatherv checks root-only delivery of variable-length vectors in
// rank order.
func TestGatherv(t *testing.T) {
	const size = 4
	cl, err := comms.NewCluster(size)
	require.NoError(t, err)

	var rootParts [][]int32
	err = cl.Run(context.Background(), func(ctx context.Context, c *comms.Comms) error {
		local := make([]int32, c.Rank()+1)
		for i := range local {
			local[i] = int32(c.Rank())
		}
		parts, err := comms.Gatherv(ctx, c, local)
		if err != nil {
			return err
		}
		if c.Rank() == 0 {
			rootParts = parts
		} else if parts != nil {
			t.Errorf("rank %d: non-root must receive nil", c.Rank())
		}
		return nil
	})
	require.NoError(t, err)

	require.Len(t, rootParts, size)
	for rank, part := range rootParts {
		require.Len(t, part, rank+1, "rank %d contributed %d elements", rank, rank+1)
		for _, v := range part {
			assert.Equal(t, int32(rank), v)
		}
	}
}

// TestBroadcast copies rank 0's vector into every rank.
func TestBroadcast(t *testing.T) {
	const size = 3
	cl, err := comms.NewCluster(size)
	require.NoError(t, err)

	results := make([][]float64, size)
	err = cl.Run(context.Background(), func(ctx context.Context, c *comms.Comms) error {
		vec := make([]float64, 3)
		if c.Rank() == 0 {
			copy(vec, []float64{3, 1, 4})
		}
		if err := comms.Broadcast(ctx, c, vec); err != nil {
			return err
		}
		results[c.Rank()] = vec
		return nil
	})
	require.NoError(t, err)

	for rank, got := range results {
		assert.Equal(t, []float64{3, 1, 4}, got, "rank %d", rank)
	}
}

// TestBarrier verifies that no rank passes the barrier before every
// rank has arrived.
func TestBarrier(t *testing.T) {
	const size = 4
	cl, err := comms.NewCluster(size)
	require.NoError(t, err)

	var arrived atomic.Int32
	err = cl.Run(context.Background(), func(ctx context.Context, c *comms.Comms) error {
		arrived.Add(1)
		if err := c.Barrier(ctx); err != nil {
			return err
		}
		if n := arrived.Load(); n != size {
			t.Errorf("rank %d passed the barrier with only %d arrivals", c.Rank(), n)
		}
		return nil
	})
	require.NoError(t, err)
}

// TestCollective_Mismatch detects ranks issuing different operations.
func TestCollective_Mismatch(t *testing.T) {
	cl, err := comms.NewCluster(2)
	require.NoError(t, err)

	err = cl.Run(context.Background(), func(ctx context.Context, c *comms.Comms) error {
		if c.Rank() == 0 {
			return c.Barrier(ctx)
		}
		return comms.AllReduceSum(ctx, c, []float64{1})
	})
	assert.ErrorIs(t, err, comms.ErrCollectiveMismatch)
}

// TestCollective_Cancelled unblocks a collective when the context is
// cancelled.
func TestCollective_Cancelled(t *testing.T) {
	cl, err := comms.NewCluster(2)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = cl.Run(ctx, func(ctx context.Context, c *comms.Comms) error {
		return c.Barrier(ctx)
	})
	assert.ErrorIs(t, err, context.Canceled)
}

// TestSizeOne_Local verifies that a group of one runs every collective
// without any peer.
func TestSizeOne_Local(t *testing.T) {
	cl, err := comms.NewCluster(1)
	require.NoError(t, err)

	err = cl.Run(context.Background(), func(ctx context.Context, c *comms.Comms) error {
		require.Equal(t, 0, c.Rank())
		require.Equal(t, 1, c.Size())

		if err := c.Barrier(ctx); err != nil {
			return err
		}
		vec := []float64{1, 2}
		if err := comms.AllReduceSum(ctx, c, vec); err != nil {
			return err
		}
		assert.Equal(t, []float64{1, 2}, vec, "reducing with yourself is the identity")

		parts, err := comms.Gatherv(ctx, c, []int32{7})
		if err != nil {
			return err
		}
		assert.Equal(t, [][]int32{{7}}, parts)
		return comms.Broadcast(ctx, c, vec)
	})
	require.NoError(t, err)
}
