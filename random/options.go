// SPDX-License-Identifier: MIT

// Package random: sampler options.
package random

import (
	"math"

	"github.com/katalvlaran/mustard/lab"
)

const (
	// DefaultMagnitude bounds vector entries: values lie in [−m, m].
	DefaultMagnitude = 1.0

	// DefaultMaxSqueezing bounds the squeezing parameter of random symplectics.
	DefaultMaxSqueezing = 0.5

	panicMagnitudeInvalid = "random: WithMagnitude: m must be finite and >= 0"
	panicSqueezingInvalid = "random: WithMaxSqueezing: r must be finite and >= 0"
)

// Option configures a sampler or generator.
type Option func(*Options)

// Options is the effective sampler configuration.
type Options struct {
	magnitude    float64
	maxSqueezing float64
	stateOpts    []lab.Option
}

// WithMagnitude bounds vector entries to [−m, m]. Small m gives weak states.
// Panics on negative or non-finite m.
func WithMagnitude(m float64) Option {
	if math.IsNaN(m) || math.IsInf(m, 0) || m < 0 {
		panic(panicMagnitudeInvalid)
	}

	return func(o *Options) { o.magnitude = m }
}

// WithMaxSqueezing bounds the squeezing r drawn for random symplectics.
// Panics on negative or non-finite r.
func WithMaxSqueezing(r float64) Option {
	if math.IsNaN(r) || math.IsInf(r, 0) || r < 0 {
		panic(panicSqueezingInvalid)
	}

	return func(o *Options) { o.maxSqueezing = r }
}

// WithStateOptions forwards lab options to the states PureState builds.
func WithStateOptions(opts ...lab.Option) Option {
	return func(o *Options) { o.stateOpts = append(o.stateOpts, opts...) }
}

func gatherOptions(opts ...Option) Options {
	o := Options{magnitude: DefaultMagnitude, maxSqueezing: DefaultMaxSqueezing}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
