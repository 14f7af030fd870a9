package centrality_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/evcent/builder"
	"github.com/katalvlaran/evcent/centrality"
	"github.com/katalvlaran/evcent/comms"
	"github.com/katalvlaran/evcent/partition"
)

// BenchmarkSingle_RMAT measures a full single-partition run on an
// R-MAT graph of 2^10 vertices.
// Complexity: O(iterations × E)
func BenchmarkSingle_RMAT(b *testing.B) {
	cfg := builder.RMATConfig{Scale: 10, EdgeFactor: 16, A: 0.57, B: 0.19, C: 0.19, Seed: 42}
	g, err := builder.RMAT[int32, float64](cfg)
	if err != nil {
		b.Fatalf("setup RMAT failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = centrality.Single(context.Background(), g)
	}
}

// BenchmarkDistributed_RMAT measures the same run split over four
// in-process ranks, collectives included.
func BenchmarkDistributed_RMAT(b *testing.B) {
	const parts = 4
	cfg := builder.RMATConfig{Scale: 10, EdgeFactor: 16, A: 0.57, B: 0.19, C: 0.19, Seed: 42}
	g, err := builder.RMAT[int32, float64](cfg)
	if err != nil {
		b.Fatalf("setup RMAT failed: %v", err)
	}
	grid, err := partition.NewGrid(parts)
	if err != nil {
		b.Fatalf("setup grid failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cl, err := comms.NewCluster(parts)
		if err != nil {
			b.Fatalf("setup cluster failed: %v", err)
		}
		err = cl.Run(context.Background(), func(ctx context.Context, c *comms.Comms) error {
			p, err := partition.Split(g, grid, c.Rank())
			if err != nil {
				return err
			}
			local, _, err := centrality.Eigenvector(ctx, c, p)
			if err != nil {
				return err
			}
			_, _, err = centrality.Aggregate(ctx, c, p, local)
			return err
		})
		if err != nil {
			b.Fatalf("distributed run failed: %v", err)
		}
	}
}
