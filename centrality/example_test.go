package centrality_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/evcent/builder"
	"github.com/katalvlaran/evcent/centrality"
)

// ExampleSingle demonstrates the single-partition reference path on
// Zachary's karate club. The administrator (vertex 33) narrowly beats
// the instructor (vertex 0) on eigenvector centrality.
//
// Complexity: O(iterations · E)
func ExampleSingle() {
	g, _ := builder.Karate[int32, float64]()

	scores, stats, _ := centrality.Single(context.Background(), g)

	best := 0
	for v, s := range scores {
		if s > scores[best] {
			best = v
		}
	}
	fmt.Println("converged:", stats.Converged)
	fmt.Println("most central vertex:", best)

	// Output:
	// converged: true
	// most central vertex: 33
}

// ExampleCompare demonstrates the magnitude-aware tolerance rule: the
// near-zero entry passes under the global floor while the large entry
// is held to its proportional bound.
func ExampleCompare() {
	ref := []float64{1.0, 1e-9}
	got := []float64{1.0 + 5e-6, 4e-7}

	count, diags, _ := centrality.Compare(ref, got, 1e-6)
	fmt.Println("mismatches:", count)
	fmt.Println("first offender:", diags[0].Index)

	// Output:
	// mismatches: 1
	// first offender: 0
}
