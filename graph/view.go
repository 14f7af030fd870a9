package graph

// InCSR is the in-neighbor view of the destination range [lo, hi):
// row r lists the global source ids and effective weights of all edges
// whose destination is lo+r. Undirected edges appear once per
// orientation; a self-loop appears once.
//
// Edge offsets are plain ints, so one view addresses up to the platform
// edge capacity regardless of the vertex-id instantiation.
type InCSR[V ID, W Weight] struct {
	Lo     V   // first owned destination (inclusive)
	Hi     V   // last owned destination (exclusive)
	RowPtr []int
	Src    []V
	Wgt    []W
}

// Rows returns the number of destination rows in the view.
func (c *InCSR[V, W]) Rows() int { return len(c.RowPtr) - 1 }

// BuildInCSR assembles the in-edge view of g for destinations in
// [lo, hi) using a two-pass counting sort over the edge list.
// Deterministic: identical inputs yield identical views.
// Complexity: O(E + (hi-lo)) time, O(E_local) space.
func BuildInCSR[V ID, W Weight](g *Graph[V, W], lo, hi V) *InCSR[V, W] {
	rows := int(hi - lo)
	if rows < 0 {
		rows = 0
	}
	view := &InCSR[V, W]{Lo: lo, Hi: hi, RowPtr: make([]int, rows+1)}

	// Pass 1: count in-edges per owned destination.
	for _, e := range g.edges {
		if e.To >= lo && e.To < hi {
			view.RowPtr[int(e.To-lo)+1]++
		}
		if !g.directed && e.From != e.To && e.From >= lo && e.From < hi {
			view.RowPtr[int(e.From-lo)+1]++
		}
	}
	for r := 0; r < rows; r++ {
		view.RowPtr[r+1] += view.RowPtr[r]
	}

	nnz := view.RowPtr[rows]
	view.Src = make([]V, nnz)
	view.Wgt = make([]W, nnz)

	// Pass 2: fill rows, reusing a cursor per row.
	cursor := make([]int, rows)
	place := func(dst, src V, w W) {
		r := int(dst - lo)
		at := view.RowPtr[r] + cursor[r]
		view.Src[at] = src
		view.Wgt[at] = w
		cursor[r]++
	}
	for _, e := range g.edges {
		w := g.weightOf(e)
		if e.To >= lo && e.To < hi {
			place(e.To, e.From, w)
		}
		if !g.directed && e.From != e.To && e.From >= lo && e.From < hi {
			place(e.From, e.To, w)
		}
	}
	return view
}
