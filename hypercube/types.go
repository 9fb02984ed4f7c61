// Package hypercube defines options and sentinel errors for lattice
// construction.
package hypercube

import (
	"errors"
	"fmt"
)

// Sentinel errors for lattice construction.
var (
	// ErrDimension indicates a dimension count < 1.
	ErrDimension = errors.New("hypercube: dimension must be ≥ 1")

	// ErrSideLength indicates a missing or non-positive side length, or a
	// per-axis length list whose size does not match the dimension.
	ErrSideLength = errors.New("hypercube: invalid side length")

	// ErrBoundaryCount indicates periodic flags matching neither one (all
	// axes) nor the full dimension count.
	ErrBoundaryCount = errors.New("hypercube: boundary flag count mismatch")
)

// Option configures lattice construction via functional arguments.
// An invalid option is recorded internally and surfaced by New.
type Option func(*latticeOptions)

type latticeOptions struct {
	lengths     []int  // resolved per-axis in New
	uniform     int    // 0 = unset
	periodic    []bool // nil = all periodic (the common lattice-model default)
	reflections bool

	// internal error recorded during option parsing
	err error
}

// WithLength sets one side length for every axis.
func WithLength(l int) Option {
	return func(o *latticeOptions) {
		if l < 1 {
			o.err = fmt.Errorf("%w: %d", ErrSideLength, l)
			return
		}
		o.uniform = l
		o.lengths = nil
	}
}

// WithLengths sets a side length per axis; the count must equal the
// dimension passed to New.
func WithLengths(lengths ...int) Option {
	return func(o *latticeOptions) {
		for _, l := range lengths {
			if l < 1 {
				o.err = fmt.Errorf("%w: %d", ErrSideLength, l)
				return
			}
		}
		o.lengths = append([]int(nil), lengths...)
		o.uniform = 0
	}
}

// WithPeriodic sets the boundary condition per axis: true wraps the axis
// onto itself, false leaves it open. Pass a single flag to apply it to every
// axis, or exactly one flag per axis.
func WithPeriodic(flags ...bool) Option {
	return func(o *latticeOptions) {
		if len(flags) == 0 {
			o.err = fmt.Errorf("%w: WithPeriodic needs at least one flag", ErrBoundaryCount)
			return
		}
		o.periodic = append([]bool(nil), flags...)
	}
}

// WithReflections additionally includes per-axis reflections (and their
// compositions with the translations) in the symmetry table. Useful for
// fully open lattices, where translations reduce to the identity alone.
func WithReflections() Option {
	return func(o *latticeOptions) {
		o.reflections = true
	}
}
