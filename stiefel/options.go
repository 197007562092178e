// SPDX-License-Identifier: MIT

// Package stiefel: functional options for the validators.
//
// A residual r passes when r ≤ atol + rtol·scale, where scale is the size of
// the quantity being checked (‖pᴴp‖ vs ‖I‖ for points, ‖X‖ for vectors).
// Option constructors panic on nonsensical values (programmer error).
package stiefel

import "math"

// Defaults (single source of truth).
const (
	// DefaultRelTol is √ε for float64.
	DefaultRelTol = 1.4901161193847656e-08

	// DefaultAbsTol is the absolute slack added to every bound.
	DefaultAbsTol = 0.0
)

const (
	panicRelTolInvalid = "stiefel: WithRelTol: tolerance must be finite, non-negative"
	panicAbsTolInvalid = "stiefel: WithAbsTol: tolerance must be finite, non-negative"
)

// Option mutates validator options.
type Option func(*Options)

// Options is the resolved validator configuration.
type Options struct {
	rtol       float64
	atol       float64
	checkPoint bool
}

// WithRelTol sets the relative tolerance.
// Panics when tol is negative, NaN or infinite.
func WithRelTol(tol float64) Option {
	if !validTol(tol) {
		panic(panicRelTolInvalid)
	}

	return func(o *Options) { o.rtol = tol }
}

// WithAbsTol sets the absolute tolerance.
// Panics when tol is negative, NaN or infinite.
func WithAbsTol(tol float64) Option {
	if !validTol(tol) {
		panic(panicAbsTolInvalid)
	}

	return func(o *Options) { o.atol = tol }
}

// WithPointCheck makes CheckVector validate its base point first.
func WithPointCheck() Option {
	return func(o *Options) { o.checkPoint = true }
}

// gatherOptions applies opts over the defaults. Nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := Options{rtol: DefaultRelTol, atol: DefaultAbsTol}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// bound returns atol + rtol·scale.
func (o Options) bound(scale float64) float64 {
	return o.atol + o.rtol*scale
}

func validTol(tol float64) bool {
	return tol >= 0 && !math.IsInf(tol, 0) && !math.IsNaN(tol)
}
