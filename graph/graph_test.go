package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/evcent/graph"
)

// TestNew_Validation verifies that a negative vertex count is rejected.
func TestNew_Validation(t *testing.T) {
	_, err := graph.New[int32, float64](-1)
	assert.ErrorIs(t, err, graph.ErrBadVertexCount, "negative vertex count must error")

	g, err := graph.New[int32, float64](0)
	require.NoError(t, err, "empty graphs are legal")
	assert.Equal(t, 0, g.NumVertices())
}

// TestAddEdge_Validation covers range, loop and weight policy checks.
func TestAddEdge_Validation(t *testing.T) {
	g, err := graph.New[int32, float64](3)
	require.NoError(t, err)

	assert.ErrorIs(t, g.AddEdge(0, 3, 0), graph.ErrVertexRange, "endpoint past the range must error")
	assert.ErrorIs(t, g.AddEdge(1, 1, 0), graph.ErrLoopNotAllowed, "self-loop without WithLoops must error")
	assert.ErrorIs(t, g.AddEdge(0, 1, 2.5), graph.ErrBadWeight, "non-zero weight on unweighted graph must error")
	assert.NoError(t, g.AddEdge(0, 1, 0))

	gl, err := graph.New[int32, float64](2, graph.WithLoops(), graph.WithWeighted())
	require.NoError(t, err)
	assert.NoError(t, gl.AddEdge(1, 1, 2.0), "loop allowed with WithLoops")
	assert.Equal(t, 1, gl.NumEdges())
}

// TestBuildInCSR_Directed checks rows, sources and weights of the
// in-edge view on a small weighted digraph.
func TestBuildInCSR_Directed(t *testing.T) {
	g, err := graph.New[int32, float64](3, graph.WithDirected(), graph.WithWeighted())
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 2))
	require.NoError(t, g.AddEdge(2, 1, 3))
	require.NoError(t, g.AddEdge(1, 0, 1))

	view := graph.BuildInCSR(g, 0, 3)
	require.Equal(t, 3, view.Rows())
	assert.Equal(t, []int{0, 1, 3, 3}, view.RowPtr, "vertex 0 has one in-edge, vertex 1 two, vertex 2 none")
	assert.Equal(t, []int32{1, 0, 2}, view.Src, "sources appear in edge insertion order")
	assert.Equal(t, []float64{1, 2, 3}, view.Wgt)
}

// TestBuildInCSR_Undirected verifies that each undirected edge
// contributes both orientations with unit weight, and that a self-loop
// contributes exactly once.
func TestBuildInCSR_Undirected(t *testing.T) {
	g, err := graph.New[int32, float64](3, graph.WithLoops())
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 0))
	require.NoError(t, g.AddEdge(2, 2, 0))

	view := graph.BuildInCSR(g, 0, 3)
	assert.Equal(t, []int{0, 1, 2, 3}, view.RowPtr)
	assert.Equal(t, []int32{1, 0, 2}, view.Src)
	assert.Equal(t, []float64{1, 1, 1}, view.Wgt, "unweighted edges count as 1")
}

// TestBuildInCSR_OwnedRange checks that a partial destination range
// only collects in-edges of owned vertices, with global source ids.
func TestBuildInCSR_OwnedRange(t *testing.T) {
	g, err := graph.New[int32, float64](4, graph.WithDirected())
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 2, 0))
	require.NoError(t, g.AddEdge(3, 2, 0))
	require.NoError(t, g.AddEdge(1, 0, 0))

	view := graph.BuildInCSR(g, 2, 4)
	require.Equal(t, 2, view.Rows())
	assert.Equal(t, []int{0, 2, 2}, view.RowPtr, "only vertex 2's in-edges are owned")
	assert.Equal(t, []int32{0, 3}, view.Src, "sources stay global")
}

// TestRenumberMap_Bijection round-trips local and original ids.
func TestRenumberMap_Bijection(t *testing.T) {
	m := graph.NewRenumberMap[int32](10, 14)
	require.Equal(t, 4, m.Count())

	lo, hi := m.Range()
	assert.Equal(t, int32(10), lo)
	assert.Equal(t, int32(14), hi)

	for local := 0; local < m.Count(); local++ {
		orig := m.Original(local)
		back, ok := m.Local(orig)
		require.True(t, ok, "owned id %d must map back", orig)
		assert.Equal(t, local, back)
	}
	if _, ok := m.Local(9); ok {
		t.Error("id 9 is not owned")
	}
	if _, ok := m.Local(14); ok {
		t.Error("id 14 is not owned")
	}
	assert.Equal(t, []int32{10, 11, 12, 13}, m.Originals())
}

// TestGraph_Float32 exercises the float32 weight instantiation.
func TestGraph_Float32(t *testing.T) {
	g, err := graph.New[uint32, float32](2, graph.WithWeighted())
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 0.5))

	view := graph.BuildInCSR(g, 0, 2)
	assert.Equal(t, []float32{0.5, 0.5}, view.Wgt, "undirected edge appears in both rows")
}
