// SPDX-License-Identifier: MIT

// Package lab - the displacement gate.
package lab

import (
	"github.com/katalvlaran/mustard/fock"
	"github.com/katalvlaran/mustard/gaussian"
	"github.com/katalvlaran/mustard/matrix"
)

// DisplacementGate is D(α) with αk = x[k] + i·y[k] on each target mode.
type DisplacementGate struct {
	x, y  []float64
	modes []int
}

// Dgate returns the displacement gate. x and y hold either one value, which is
// broadcast to every target mode, or one value per target mode. Parameter
// lengths are checked against the state in Apply.
func Dgate(x, y []float64, opts ...GateOption) *DisplacementGate {
	o := gatherGateOptions(opts...)

	return &DisplacementGate{x: cloneFloats(x), y: cloneFloats(y), modes: o.modes}
}

// Name returns "Dgate".
func (g *DisplacementGate) Name() string { return "Dgate" }

// Params returns copies of the x and y parameters.
func (g *DisplacementGate) Params() (x, y []float64) {
	return cloneFloats(g.x), cloneFloats(g.y)
}

// Inverse returns Dgate(−x, −y) on the same modes.
func (g *DisplacementGate) Inverse() Gate {
	return &DisplacementGate{x: negated(g.x), y: negated(g.y), modes: append([]int(nil), g.modes...)}
}

// Apply shifts the means by sqrt(2ħ)·(x, y) on the target modes and leaves the
// covariance untouched. On a Fock state it applies the truncated D(α) matrix;
// an amplitude too large for the cutoff leaves no ket and is rejected.
//
// Errors: ErrEmptyState, ErrModeMismatch, ErrBadParameters.
func (g *DisplacementGate) Apply(s State) (State, error) {
	if err := s.validate(); err != nil {
		return State{}, labErrorf("Dgate", err)
	}
	targets, err := resolveModes(g.modes, s.modes)
	if err != nil {
		return State{}, labErrorf("Dgate", err)
	}
	xs, err := broadcast(g.x, len(targets))
	if err != nil {
		return State{}, labErrorf("Dgate", err)
	}
	ys, err := broadcast(g.y, len(targets))
	if err != nil {
		return State{}, labErrorf("Dgate", err)
	}

	if s.IsFock() {
		op, err := fock.Displacement(complex(xs[0], ys[0]), len(s.ket))
		if err != nil {
			return State{}, labErrorf("Dgate", err)
		}
		k, err := fock.Apply(op, s.ket)
		if err != nil {
			return State{}, labErrorf("Dgate", err)
		}

		return s.withNonzeroKet("Dgate", k)
	}

	d, err := gaussian.DisplacementVector(xs, ys, s.opts.hbar)
	if err != nil {
		return State{}, paramErrorf("Dgate", err)
	}
	full, err := matrix.EmbedVector(d, targets, s.modes)
	if err != nil {
		return State{}, labErrorf("Dgate", err)
	}
	means, err := gaussian.Displace(s.means, full)
	if err != nil {
		return State{}, labErrorf("Dgate", err)
	}

	return s.withGaussian(s.cov.Clone().(*matrix.Dense), means), nil
}
