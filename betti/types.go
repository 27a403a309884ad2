// Package betti defines the Result type, sentinel errors, and functional
// options for invariant computation.
package betti

import "errors"

// ErrNilComplex is returned when a nil *simplex.Complex is passed to Compute.
var ErrNilComplex = errors.New("betti: complex is nil")

// Result holds the computed invariants of a 1-dimensional complex.
// Chi == Beta0 - Beta1 holds by construction for every Result.
type Result struct {
	// Beta0 is the number of connected components. Never negative.
	Beta0 int

	// Beta1 is the number of independent 1-cycles: E − V + Beta0.
	// Zero for forests; positive as soon as any component carries a cycle.
	Beta1 int

	// Chi is the Euler characteristic, Beta0 − Beta1.
	Chi int
}

// Option configures Compute via functional arguments.
type Option func(*ComputeOptions)

// ComputeOptions holds observation hooks for invariant computation.
// Hooks are read-only: they cannot alter or abort the computation.
type ComputeOptions struct {
	// OnComponent fires once per discovered connected component, with the
	// vertex the traversal started from and the component's vertex count.
	OnComponent func(root string, size int)
}

// DefaultOptions returns ComputeOptions with a no-op component hook.
func DefaultOptions() ComputeOptions {
	return ComputeOptions{
		OnComponent: func(string, int) {},
	}
}

// WithOnComponent registers a callback fired once per connected component.
func WithOnComponent(fn func(root string, size int)) Option {
	return func(o *ComputeOptions) {
		if fn != nil {
			o.OnComponent = fn
		}
	}
}
