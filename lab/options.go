// SPDX-License-Identifier: MIT

// Package lab: functional options shared by states and comparisons.
// Each state carries the options it was built with and passes them on to the
// states gates derive from it.
package lab

import (
	"math"

	"github.com/katalvlaran/mustard/matrix"
)

const (
	// DefaultHbar is the ħ convention: vacuum covariance (ħ/2)·I = I.
	DefaultHbar = 2.0

	// DefaultTolerance is the absolute and relative tolerance of Equal.
	DefaultTolerance = 1e-8

	// DefaultCutoff is the Fock cutoff used when none is given.
	DefaultCutoff = 40

	// PurityTolerance bounds |Tr ρ² − 1| for a state ToFock accepts as pure.
	// It is independent of the Equal tolerance, so WithTolerance(0) does not
	// turn determinant rounding into ErrNotPure.
	PurityTolerance = matrix.DefaultEpsilon
)

const (
	panicHbarInvalid      = "lab: WithHbar: hbar must be finite and > 0"
	panicToleranceInvalid = "lab: WithTolerance: tol must be finite and >= 0"
	panicCutoffInvalid    = "lab: WithCutoff: cutoff must be > 0"
)

// Option configures a State.
type Option func(*Options)

// Options is the effective configuration after applying Option setters.
type Options struct {
	hbar   float64
	tol    float64
	cutoff int
}

// WithHbar sets the ħ convention. Panics on non-finite or non-positive values.
func WithHbar(hbar float64) Option {
	if math.IsNaN(hbar) || math.IsInf(hbar, 0) || hbar <= 0 {
		panic(panicHbarInvalid)
	}

	return func(o *Options) { o.hbar = hbar }
}

// WithTolerance sets the tolerance used by Equal.
// Panics on negative or non-finite values.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithCutoff sets the default Fock cutoff. Panics when cutoff <= 0.
func WithCutoff(cutoff int) Option {
	if cutoff <= 0 {
		panic(panicCutoffInvalid)
	}

	return func(o *Options) { o.cutoff = cutoff }
}

func defaultOptions() Options {
	return Options{hbar: DefaultHbar, tol: DefaultTolerance, cutoff: DefaultCutoff}
}

// gatherOptions applies opts in order over the defaults. Nil entries are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
