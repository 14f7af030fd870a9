package centrality

import (
	"fmt"
	"math/cmplx"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/evcent/graph"
)

// DenseReference computes the dominant eigenvector of g's in-weighted
// adjacency matrix by dense eigendecomposition, as an independent
// cross-check for the power-iteration engine on small graphs. The
// result is L2-normalized, sign-fixed so its largest-magnitude entry
// is positive, and indexed by original vertex id.
//
// Dense storage is O(V²); keep this to test-sized graphs.
func DenseReference[V graph.ID, W graph.Weight](g *graph.Graph[V, W]) ([]float64, error) {
	n := g.NumVertices()
	if n == 0 {
		return nil, nil
	}

	// Row v of a holds the in-weights of v, so a·x is the same product
	// the engine computes per partition.
	a := mat.NewDense(n, n, nil)
	for _, e := range g.Edges() {
		w := float64(e.Weight)
		if !g.Weighted() {
			w = 1
		}
		from, to := int(e.From), int(e.To)
		a.Set(to, from, a.At(to, from)+w)
		if !g.Directed() && from != to {
			a.Set(from, to, a.At(from, to)+w)
		}
	}

	var eig mat.Eigen
	if ok := eig.Factorize(a, mat.EigenRight); !ok {
		return nil, fmt.Errorf("%w: %d×%d adjacency", ErrEigenFailed, n, n)
	}
	values := eig.Values(nil)
	dominant := 0
	for i, v := range values {
		if cmplx.Abs(v) > cmplx.Abs(values[dominant]) {
			dominant = i
		}
	}
	var vectors mat.CDense
	eig.VectorsTo(&vectors)

	out := make([]float64, n)
	for i := range out {
		out[i] = real(vectors.At(i, dominant))
	}
	// Fix the sign so the Perron direction is positive, then normalize.
	peak := 0
	for i := range out {
		if out[i]*out[i] > out[peak]*out[peak] {
			peak = i
		}
	}
	if out[peak] < 0 {
		floats.Scale(-1, out)
	}
	if norm := floats.Norm(out, 2); norm > 0 {
		floats.Scale(1/norm, out)
	}
	return out, nil
}
