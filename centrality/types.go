// Package centrality defines options, results and error definitions
// for the power-iteration engine.
package centrality

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/evcent/graph"
)

// Engine defaults, matching the reference usecases.
const (
	// DefaultEpsilon is the relative convergence threshold.
	DefaultEpsilon = 1e-6

	// DefaultMaxIterations is the iteration budget.
	DefaultMaxIterations = 500

	// MaxMismatchDiags bounds the diagnostic list Compare retains.
	MaxMismatchDiags = 10
)

// Sentinel errors for centrality computation and verification.
var (
	// ErrInitialLength is returned when the initial vector is not global-length.
	ErrInitialLength = errors.New("centrality: initial vector length differs from vertex count")

	// ErrLocalLength is returned when a local vector does not match the owned range.
	ErrLocalLength = errors.New("centrality: local vector length differs from owned range")

	// ErrSizeMismatch is returned when reference and candidate sizes differ.
	ErrSizeMismatch = errors.New("centrality: vector sizes differ between runs")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("centrality: invalid option supplied")

	// ErrEigenFailed is returned when the dense eigendecomposition fails.
	ErrEigenFailed = errors.New("centrality: dense eigendecomposition failed")
)

// Option configures the engine via functional arguments. An invalid
// Option is recorded internally and surfaced as ErrOptionViolation
// when the engine is invoked.
type Option[W graph.Weight] func(*Options[W])

// Options holds parameters and callbacks of one engine run.
type Options[W graph.Weight] struct {
	// Initial is the starting estimate, indexed by original vertex id
	// over the whole graph. Nil selects the uniform vector. Rank 0's
	// copy is broadcast so every rank iterates from the same bits.
	Initial []W

	// Epsilon is the relative convergence threshold: iteration stops
	// once the L1 distance between successive iterates drops below
	// Epsilon · NumVertices.
	Epsilon float64

	// MaxIterations is the iteration budget. Exhausting it is not an
	// error; Stats.Converged reports false.
	MaxIterations int

	// Normalize rescales the final vector so its largest score is 1.
	// Iterates always keep unit L2 norm regardless.
	Normalize bool

	// OnIteration is called after each iteration with the 1-based
	// iteration number and the global L1 delta of that iteration.
	OnIteration func(iter int, delta float64)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the reference defaults:
// uniform start, Epsilon 1e-6, 500 iterations, no final rescaling,
// no-op hook.
func DefaultOptions[W graph.Weight]() Options[W] {
	return Options[W]{
		Epsilon:       DefaultEpsilon,
		MaxIterations: DefaultMaxIterations,
		OnIteration:   func(int, float64) {},
	}
}

// WithInitial sets the starting estimate (global-length, by original id).
func WithInitial[W graph.Weight](v []W) Option[W] {
	return func(o *Options[W]) { o.Initial = v }
}

// WithEpsilon sets the convergence threshold. Must be positive.
func WithEpsilon[W graph.Weight](eps float64) Option[W] {
	return func(o *Options[W]) {
		if eps <= 0 {
			o.err = fmt.Errorf("%w: epsilon must be positive (%g)", ErrOptionViolation, eps)
			return
		}
		o.Epsilon = eps
	}
}

// WithMaxIterations sets the iteration budget. Must be positive.
func WithMaxIterations[W graph.Weight](n int) Option[W] {
	return func(o *Options[W]) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: max iterations must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxIterations = n
	}
}

// WithNormalize rescales the final vector so its largest score is 1.
func WithNormalize[W graph.Weight]() Option[W] {
	return func(o *Options[W]) { o.Normalize = true }
}

// WithOnIteration registers a per-iteration observation hook.
func WithOnIteration[W graph.Weight](fn func(iter int, delta float64)) Option[W] {
	return func(o *Options[W]) {
		if fn != nil {
			o.OnIteration = fn
		}
	}
}

// Stats reports how one engine run ended.
type Stats struct {
	// Iterations is the number of iterations performed.
	Iterations int

	// Delta is the last global L1 distance between successive iterates.
	Delta float64

	// Converged reports whether Delta dropped below Epsilon · V within
	// the budget.
	Converged bool
}

// Mismatch is one index where Compare found reference and candidate
// outside tolerance.
type Mismatch[W graph.Weight] struct {
	Index int
	Ref   W
	Got   W
}
