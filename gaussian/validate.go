// SPDX-License-Identifier: MIT

// Package gaussian: physicality checks and single-mode decomposition.
// This file defines:
//   - ValidateState, the shape, symmetry and uncertainty-principle check,
//   - SingleModeParameters, which recovers (α, r, φ) from a pure state.
//
// Purpose:
//   - Give lab one place that decides whether (Σ, μ) is a quantum state.
//   - Feed the Fock conversion with the exact parameters of D(α)S(r, φ)|0⟩.
//
// Notes:
//   - A covariance is physical iff Σ + i(ħ/2)Ω ⪰ 0. The Hermitian matrix
//     H = A + iB is checked through its real 4n×4n embedding
//     [[A, −B], [B, A]], whose eigenvalues are those of H, each twice.
//   - Eigenvalues may dip below zero by rounding; eps absorbs that.
//   - Purity in SingleModeParameters is compared against eps as well. Callers
//     pass a structural epsilon here, not an equality tolerance.
package gaussian

import (
	"math"

	"github.com/katalvlaran/mustard/matrix"
)

// eigenConvergence is the Jacobi off-diagonal threshold used by ValidateState.
// It sits well below any user eps so that eigenvalue error does not leak into
// the physicality verdict.
const eigenConvergence = 1e-13

// ValidateState checks that (Σ, μ) describe a physical N-mode Gaussian state:
//   - Σ is square with even size 2N and len(μ) = 2N,
//   - Σ is symmetric within eps,
//   - Σ + i(ħ/2)Ω ⪰ 0, using the real symmetric 4N×4N matrix
//     [[Σ, −(ħ/2)Ω], [(ħ/2)Ω, Σ]] whose spectrum is that of the Hermitian form
//     (each eigenvalue doubled).
//
// Errors: ErrBadHbar, ErrShape, ErrUnphysical, matrix.ErrAsymmetry and shape sentinels.
// Complexity: O(N³) per Jacobi sweep on a 4N×4N matrix.
func ValidateState(cov matrix.Matrix, means []float64, hbar, eps float64) error {
	if err := validateHbar(hbar); err != nil {
		return gaussianErrorf("ValidateState", err)
	}
	if err := matrix.ValidatePhaseSpace(cov); err != nil {
		return gaussianErrorf("ValidateState", err)
	}
	dim := cov.Rows()
	if len(means) != dim {
		return gaussianErrorf("ValidateState", ErrShape)
	}
	for _, v := range means {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return gaussianErrorf("ValidateState", ErrNonFiniteParam)
		}
	}
	if err := matrix.ValidateSymmetric(cov, eps); err != nil {
		return gaussianErrorf("ValidateState", err)
	}

	n := dim / 2
	big, err := matrix.NewDense(2*dim, 2*dim)
	if err != nil {
		return gaussianErrorf("ValidateState", err)
	}
	var (
		i, j   int
		a, b   float64
		omegaV float64
	)
	for i = 0; i < dim; i++ {
		for j = 0; j < dim; j++ {
			if a, err = cov.At(i, j); err != nil {
				return gaussianErrorf("ValidateState", err)
			}
			if b, err = cov.At(j, i); err != nil {
				return gaussianErrorf("ValidateState", err)
			}
			sym := (a + b) / 2
			omegaV = (hbar / 2) * omegaEntry(i, j, n)
			if err = setAll(big,
				cell{i, j, sym},
				cell{dim + i, dim + j, sym},
				cell{i, dim + j, -omegaV},
				cell{dim + i, j, omegaV},
			); err != nil {
				return gaussianErrorf("ValidateState", err)
			}
		}
	}
	vals, _, err := matrix.EigenSym(big, matrix.WithEpsilon(eigenConvergence))
	if err != nil {
		return gaussianErrorf("ValidateState", err)
	}
	for _, v := range vals {
		if v < -eps {
			return gaussianErrorf("ValidateState", ErrUnphysical)
		}
	}

	return nil
}

// omegaEntry returns Ω[i,j] for the xxpp symplectic form of n modes.
func omegaEntry(i, j, n int) float64 {
	switch {
	case i < n && j == n+i:
		return 1
	case i >= n && j == i-n:
		return -1
	default:
		return 0
	}
}

type cell struct {
	r, c int
	v    float64
}

// setAll writes each cell, stopping at the first failure.
func setAll(m *matrix.Dense, cells ...cell) error {
	for _, c := range cells {
		if err := m.Set(c.r, c.c, c.v); err != nil {
			return err
		}
	}

	return nil
}

// SingleModeParameters decomposes a pure single-mode Gaussian state into the
// displaced squeezed vacuum D(α)S(r, φ)|0⟩:
//
//	cosh 2r       = (Σxx + Σpp)/ħ
//	sinh 2r cos φ = (Σpp − Σxx)/ħ
//	sinh 2r sin φ = −2Σxp/ħ
//	α             = (μx + i·μp)/sqrt(2ħ)
//
// Errors: ErrShape (not one mode), ErrNotPure (|purity−1| > eps), ErrBadHbar.
func SingleModeParameters(cov matrix.Matrix, means []float64, hbar, eps float64) (alpha complex128, r, phi float64, err error) {
	if err = matrix.ValidatePhaseSpace(cov); err != nil {
		return 0, 0, 0, gaussianErrorf("SingleModeParameters", err)
	}
	if cov.Rows() != 2 || len(means) != 2 {
		return 0, 0, 0, gaussianErrorf("SingleModeParameters", ErrShape)
	}
	p, err := Purity(cov, hbar)
	if err != nil {
		return 0, 0, 0, gaussianErrorf("SingleModeParameters", err)
	}
	if math.Abs(p-1) > eps {
		return 0, 0, 0, gaussianErrorf("SingleModeParameters", ErrNotPure)
	}
	cxx, _ := cov.At(0, 0)
	cxp, _ := cov.At(0, 1)
	cpp, _ := cov.At(1, 1)

	r = math.Acosh(math.Max(1, (cxx+cpp)/hbar)) / 2
	phi = math.Atan2(-2*cxp, cpp-cxx)
	scale := 1 / math.Sqrt(2*hbar)
	alpha = complex(means[0]*scale, means[1]*scale)

	return alpha, r, phi, nil
}
