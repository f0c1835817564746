// SPDX-License-Identifier: MIT

// Package random - samplers for vectors, symplectic matrices and pure states.
package random

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/mustard/gaussian"
	"github.com/katalvlaran/mustard/lab"
	"github.com/katalvlaran/mustard/matrix"
)

// ErrModes indicates a non-positive mode count.
var ErrModes = errors.New("random: mode count must be > 0")

func randomErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

func orDefault(rng *rand.Rand) *rand.Rand {
	if rng == nil {
		return New(0)
	}

	return rng
}

// uniform returns n draws from [lo, hi).
func uniform(rng *rand.Rand, n int, lo, hi float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = lo + (hi-lo)*rng.Float64()
	}

	return out
}

// Vector returns n values drawn uniformly from [−m, m) with m from
// WithMagnitude (DefaultMagnitude otherwise). n <= 0 returns nil.
// A nil rng uses New(0).
func Vector(rng *rand.Rand, n int, opts ...Option) []float64 {
	if n <= 0 {
		return nil
	}
	o := gatherOptions(opts...)

	return uniform(orDefault(rng), n, -o.magnitude, o.magnitude)
}

// Symplectic returns a random 2n×2n symplectic matrix, the product (applied
// right to left) of
//   - a layer of random rotations,
//   - a layer of squeezers with r in [0, WithMaxSqueezing) and random phase,
//   - for n ≥ 2, beam splitters with random angles on every neighbouring pair,
//   - a second layer of random rotations.
//
// Errors: ErrModes for n <= 0.
// Complexity: O(n⁴) for the layer products.
func Symplectic(rng *rand.Rand, n int, opts ...Option) (*matrix.Dense, error) {
	if n <= 0 {
		return nil, randomErrorf("Symplectic", ErrModes)
	}
	o := gatherOptions(opts...)
	rng = orDefault(rng)

	layers := make([]matrix.Matrix, 0, n+2)
	first, err := gaussian.RotationSymplectic(uniform(rng, n, -math.Pi, math.Pi))
	if err != nil {
		return nil, randomErrorf("Symplectic", err)
	}
	layers = append(layers, first)
	sq, err := gaussian.SqueezingSymplectic(uniform(rng, n, 0, o.maxSqueezing), uniform(rng, n, -math.Pi, math.Pi))
	if err != nil {
		return nil, randomErrorf("Symplectic", err)
	}
	layers = append(layers, sq)
	for i := 0; i+1 < n; i++ {
		bs, err := gaussian.BeamsplitterSymplectic(
			-math.Pi+2*math.Pi*rng.Float64(),
			-math.Pi+2*math.Pi*rng.Float64(),
		)
		if err != nil {
			return nil, randomErrorf("Symplectic", err)
		}
		full, err := matrix.EmbedModes(bs, []int{i, i + 1}, n)
		if err != nil {
			return nil, randomErrorf("Symplectic", err)
		}
		layers = append(layers, full)
	}
	last, err := gaussian.RotationSymplectic(uniform(rng, n, -math.Pi, math.Pi))
	if err != nil {
		return nil, randomErrorf("Symplectic", err)
	}
	layers = append(layers, last)

	var acc matrix.Matrix = layers[0]
	for _, l := range layers[1:] {
		if acc, err = matrix.Mul(l, acc); err != nil {
			return nil, randomErrorf("Symplectic", err)
		}
	}

	return acc.(*matrix.Dense), nil
}

// PureState returns Dgate(x, y)·Ggate(S)|0⟩ for a random symplectic S (see
// Symplectic) and random displacement vectors x, y (see Vector).
//
// Errors: ErrModes for n <= 0.
func PureState(rng *rand.Rand, n int, opts ...Option) (lab.State, error) {
	if n <= 0 {
		return lab.State{}, randomErrorf("PureState", ErrModes)
	}
	rng = orDefault(rng)
	s, err := Symplectic(rng, n, opts...)
	if err != nil {
		return lab.State{}, randomErrorf("PureState", err)
	}
	x := Vector(rng, n, opts...)
	y := Vector(rng, n, opts...)

	st, err := pureState(s, x, y, gatherOptions(opts...))
	if err != nil {
		return lab.State{}, randomErrorf("PureState", err)
	}

	return st, nil
}

func pureState(s matrix.Matrix, x, y []float64, o Options) (lab.State, error) {
	vac, err := lab.Vacuum(s.Rows()/2, o.stateOpts...)
	if err != nil {
		return lab.State{}, err
	}
	g, err := lab.Ggate(s)
	if err != nil {
		return lab.State{}, err
	}
	squeezed, err := g.Apply(vac)
	if err != nil {
		return lab.State{}, err
	}

	return lab.Dgate(x, y).Apply(squeezed)
}
