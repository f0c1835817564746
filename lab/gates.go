// SPDX-License-Identifier: MIT

// Package lab: the Gate contract and helpers shared by all gates.
// This file defines:
//   - Gate, the interface every gate and Circuit implement,
//   - GateOption / OnModes for targeting modes,
//   - mode resolution, parameter broadcasting and symplectic lifting.
//
// Purpose:
//   - Keep per-gate files down to building one block and its inverse.
//
// Notes:
//   - Mode-wise gates act on every mode unless OnModes is given; two-mode
//     gates default to modes (0, 1).
//   - A parameter slice holds one value (broadcast) or one value per target.
//     Lengths are checked at Apply time, against the state.
//   - Gates never mutate their input State or the caller's parameter slices.
//   - On Fock states only Dgate and Rgate have a form; the rest return
//     ErrNoFockRepresentation.
package lab

import (
	"math"

	"github.com/katalvlaran/mustard/gaussian"
	"github.com/katalvlaran/mustard/matrix"
)

// Gate is a unitary operation on a State.
//
// Apply is pure: it returns a new State and never mutates its input.
// Inverse returns the gate that undoes this one on every state it accepts.
type Gate interface {
	Name() string
	Apply(s State) (State, error)
	Inverse() Gate
}

// GateOption configures a gate at construction.
type GateOption func(*gateOptions)

type gateOptions struct {
	modes []int
}

// OnModes targets the listed modes. Without it, mode-wise gates act on every
// mode and two-mode gates act on modes 0 and 1.
func OnModes(modes ...int) GateOption {
	return func(o *gateOptions) {
		if len(modes) == 0 {
			o.modes = nil
			return
		}
		o.modes = append([]int(nil), modes...)
	}
}

func gatherGateOptions(opts ...GateOption) gateOptions {
	var o gateOptions
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// resolveModes returns the target modes of a mode-wise gate on an n-mode state.
// Errors: ErrModeMismatch for out-of-range or repeated targets.
func resolveModes(modes []int, n int) ([]int, error) {
	if modes == nil {
		out := make([]int, n)
		for i := range out {
			out[i] = i
		}

		return out, nil
	}
	seen := make(map[int]struct{}, len(modes))
	for _, m := range modes {
		if m < 0 || m >= n {
			return nil, ErrModeMismatch
		}
		if _, dup := seen[m]; dup {
			return nil, ErrModeMismatch
		}
		seen[m] = struct{}{}
	}

	return modes, nil
}

// resolvePair returns the two target modes of a two-mode gate.
// Errors: ErrModeMismatch.
func resolvePair(modes []int, n int) ([]int, error) {
	if modes == nil {
		modes = []int{0, 1}
	}
	if len(modes) != 2 {
		return nil, ErrModeMismatch
	}

	return resolveModes(modes, n)
}

// broadcast expands a parameter to k entries: one value is repeated, k values
// are copied.
// Errors: ErrBadParameters for any other length or non-finite entries.
func broadcast(p []float64, k int) ([]float64, error) {
	for _, v := range p {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ErrBadParameters
		}
	}
	switch len(p) {
	case k:
		out := make([]float64, k)
		copy(out, p)

		return out, nil
	case 1:
		out := make([]float64, k)
		for i := range out {
			out[i] = p[0]
		}

		return out, nil
	default:
		return nil, ErrBadParameters
	}
}

func negated(p []float64) []float64 {
	if p == nil {
		return nil
	}
	out := make([]float64, len(p))
	for i, v := range p {
		out[i] = -v
	}

	return out
}

func cloneFloats(p []float64) []float64 {
	if p == nil {
		return nil
	}

	return append([]float64(nil), p...)
}

// applySymplectic lifts a 2k×2k block acting on targets into the full phase
// space of s and applies it to (Σ, μ).
func applySymplectic(s State, block matrix.Matrix, targets []int) (State, error) {
	full, err := matrix.EmbedModes(block, targets, s.modes)
	if err != nil {
		return State{}, err
	}
	cov, means, err := gaussian.ApplyUnitary(s.cov, s.means, full, nil)
	if err != nil {
		return State{}, err
	}

	return s.withGaussian(cov, means), nil
}
