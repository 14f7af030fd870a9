package centrality

import (
	"fmt"
	"math"

	"github.com/katalvlaran/evcent/graph"
)

// Compare counts the indices at which candidate got violates the
// magnitude-aware tolerance against reference ref, retaining the first
// MaxMismatchDiags offenders for diagnostics. A zero count means the
// runs agree.
//
// With maxRef the largest reference score, values a and b are equal
// iff |a−b| < max(max(a,b)·epsilon, maxRef·epsilon). The global floor
// intentionally relaxes comparison for low-centrality vertices; the
// pairwise term (deliberately max, not |max|) tightens it in
// proportion for high-centrality ones. Keep the formula as is: its
// asymmetry near zero is load-bearing.
//
// Differing lengths are a precondition violation, not a tolerance
// mismatch.
func Compare[W graph.Weight](ref, got []W, epsilon W) (int, []Mismatch[W], error) {
	if len(ref) != len(got) {
		return 0, nil, fmt.Errorf("%w: reference %d, candidate %d", ErrSizeMismatch, len(ref), len(got))
	}
	var maxRef W
	for i, x := range ref {
		if i == 0 || x > maxRef {
			maxRef = x
		}
	}
	threshold := maxRef * epsilon

	var (
		count int
		diags []Mismatch[W]
	)
	for i := range ref {
		a, b := ref[i], got[i]
		limit := a
		if b > limit {
			limit = b
		}
		limit *= epsilon
		if threshold > limit {
			limit = threshold
		}
		if math.Abs(float64(a)-float64(b)) < float64(limit) {
			continue
		}
		if len(diags) < MaxMismatchDiags {
			diags = append(diags, Mismatch[W]{Index: i, Ref: a, Got: b})
		}
		count++
	}
	return count, diags, nil
}
