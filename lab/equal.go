// SPDX-License-Identifier: MIT

// Package lab - tolerance-based state equality.
package lab

import (
	"math"

	"github.com/katalvlaran/mustard/fock"
	"github.com/katalvlaran/mustard/matrix"
)

// Equal reports whether a and b describe the same physical state within the
// tolerance carried by a. See ApproxEqual.
func Equal(a, b State) bool {
	return ApproxEqual(a, b, a.opts.tol)
}

// ApproxEqual reports whether a and b describe the same physical state.
//
// Policy:
//   - Empty states and states with different mode counts are never equal.
//   - Gaussian vs Gaussian: covariances and means agree element-wise with
//     |a−b| ≤ tol + tol·|b|. States built with different ħ are compared after
//     rescaling b into a's convention.
//   - Fock vs Fock: 1 − F ≤ tol for the fidelity F of the kets, the shorter
//     ket being zero-padded.
//   - Mixed: the Gaussian side is converted to Fock at the Fock side's cutoff.
//     A Gaussian side without a Fock form (mixed or multi-mode) is not equal.
func ApproxEqual(a, b State, tol float64) bool {
	if a.validate() != nil || b.validate() != nil || a.modes != b.modes {
		return false
	}
	if math.IsNaN(tol) || tol < 0 {
		return false
	}
	switch {
	case a.IsGaussian() && b.IsGaussian():
		return gaussianClose(a, b, tol)
	case a.IsFock() && b.IsFock():
		return ketsClose(a.ket, b.ket, tol)
	case a.IsFock():
		bf, err := b.ToFock(len(a.ket))
		if err != nil {
			return false
		}

		return ketsClose(a.ket, bf.ket, tol)
	default:
		af, err := a.ToFock(len(b.ket))
		if err != nil {
			return false
		}

		return ketsClose(af.ket, b.ket, tol)
	}
}

func gaussianClose(a, b State, tol float64) bool {
	bcov, bmeans := matrix.Matrix(b.cov), b.means
	if a.opts.hbar != b.opts.hbar {
		ratio := a.opts.hbar / b.opts.hbar
		scaled, err := matrix.Scale(b.cov, ratio)
		if err != nil {
			return false
		}
		bcov = scaled
		bmeans = make([]float64, len(b.means))
		for i, v := range b.means {
			bmeans[i] = v * math.Sqrt(ratio)
		}
	}
	ok, err := matrix.AllClose(a.cov, bcov, tol, tol)
	if err != nil || !ok {
		return false
	}
	ok, err = matrix.VecAllClose(a.means, bmeans, tol, tol)

	return err == nil && ok
}

func ketsClose(a, b fock.Ket, tol float64) bool {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	pa, pb := make(fock.Ket, n), make(fock.Ket, n)
	copy(pa, a)
	copy(pb, b)
	f, err := fock.Fidelity(pa, pb)
	if err != nil {
		return false
	}

	return 1-f <= tol
}
