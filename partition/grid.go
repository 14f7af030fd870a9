package partition

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for partitioning.
var (
	// ErrGridSize is returned when a grid is requested for size < 1.
	ErrGridSize = errors.New("partition: grid size must be at least 1")

	// ErrRank is returned when a rank lies outside the grid.
	ErrRank = errors.New("partition: rank out of range")
)

// Grid is the 2-D arrangement of a process group. Ranks enumerate the
// grid row-major: rank = row*Cols + col.
type Grid struct {
	Rows int
	Cols int
}

// NewGrid factorizes size into Rows×Cols with Rows the largest integer
// ≤ √size dividing size evenly, degrading by one until divisibility
// holds. Rows falls back to 1, so every size ≥ 1 has a grid.
func NewGrid(size int) (Grid, error) {
	if size < 1 {
		return Grid{}, fmt.Errorf("%w: %d", ErrGridSize, size)
	}
	rows := int(math.Sqrt(float64(size)))
	for size%rows != 0 {
		rows--
	}
	return Grid{Rows: rows, Cols: size / rows}, nil
}

// Size returns the number of ranks in the grid.
func (g Grid) Size() int { return g.Rows * g.Cols }

// Coord returns the (row, col) position of rank.
func (g Grid) Coord(rank int) (row, col int) { return rank / g.Cols, rank % g.Cols }

// ChunkOf returns the vertex-chunk index owned by rank. Chunks follow
// column-major grid order, so rank order and chunk order differ
// whenever the grid is not a single row or column.
func (g Grid) ChunkOf(rank int) int {
	row, col := g.Coord(rank)
	return col*g.Rows + row
}
