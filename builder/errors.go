package builder

import "errors"

var (
	// ErrScale indicates an R-MAT scale below 1.
	ErrScale = errors.New("builder: rmat scale must be at least 1")

	// ErrEdgeFactor indicates an R-MAT edge factor below 1.
	ErrEdgeFactor = errors.New("builder: rmat edge factor must be at least 1")

	// ErrProbability indicates invalid R-MAT quadrant probabilities.
	ErrProbability = errors.New("builder: rmat probabilities must be non-negative and sum to at most 1")

	// ErrFormat indicates malformed Matrix Market input.
	ErrFormat = errors.New("builder: malformed matrix market input")

	// ErrNotSquare indicates a non-square Matrix Market matrix.
	ErrNotSquare = errors.New("builder: matrix market matrix is not square")
)
