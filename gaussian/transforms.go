// SPDX-License-Identifier: MIT

// Package gaussian - action of Gaussian unitaries and standard moments.
package gaussian

import (
	"math"

	"github.com/katalvlaran/mustard/matrix"
)

// ApplyUnitary returns (S Σ Sᵀ, S μ + d). A nil d means no displacement.
//
// Implementation:
//   - Stage 1: validate Σ square/even, len(μ) = dim, S same shape as Σ, len(d) = dim.
//   - Stage 2: two products for Σ, a mat-vec and a vector add for μ.
//
// Errors:
//   - ErrShape (disagreeing sizes), plus matrix sentinels from validation.
//
// Complexity: O(n³) for n = 2N.
func ApplyUnitary(cov matrix.Matrix, means []float64, s matrix.Matrix, d []float64) (*matrix.Dense, []float64, error) {
	if err := matrix.ValidatePhaseSpace(cov); err != nil {
		return nil, nil, gaussianErrorf("ApplyUnitary", err)
	}
	dim := cov.Rows()
	if len(means) != dim {
		return nil, nil, gaussianErrorf("ApplyUnitary", ErrShape)
	}
	if err := matrix.ValidateNotNil(s); err != nil {
		return nil, nil, gaussianErrorf("ApplyUnitary", err)
	}
	if s.Rows() != dim || s.Cols() != dim {
		return nil, nil, gaussianErrorf("ApplyUnitary", ErrShape)
	}
	if d != nil && len(d) != dim {
		return nil, nil, gaussianErrorf("ApplyUnitary", ErrShape)
	}

	sc, err := matrix.Mul(s, cov)
	if err != nil {
		return nil, nil, gaussianErrorf("ApplyUnitary", err)
	}
	st, err := matrix.Transpose(s)
	if err != nil {
		return nil, nil, gaussianErrorf("ApplyUnitary", err)
	}
	out, err := matrix.Mul(sc, st)
	if err != nil {
		return nil, nil, gaussianErrorf("ApplyUnitary", err)
	}
	mu, err := matrix.MatVec(s, means)
	if err != nil {
		return nil, nil, gaussianErrorf("ApplyUnitary", err)
	}
	if d != nil {
		if mu, err = matrix.AddVec(mu, d); err != nil {
			return nil, nil, gaussianErrorf("ApplyUnitary", err)
		}
	}

	return out.(*matrix.Dense), mu, nil
}

// Displace returns μ + d. Covariance is untouched by displacements, so the
// caller keeps Σ as-is.
// Errors: ErrShape.
func Displace(means, d []float64) ([]float64, error) {
	if len(means) != len(d) {
		return nil, gaussianErrorf("Displace", ErrShape)
	}
	out, err := matrix.AddVec(means, d)
	if err != nil {
		return nil, gaussianErrorf("Displace", err)
	}

	return out, nil
}

// Purity returns Tr ρ² = 1/sqrt(det(2Σ/ħ)).
// Errors: ErrBadHbar, ErrUnphysical (det <= 0), matrix sentinels.
func Purity(cov matrix.Matrix, hbar float64) (float64, error) {
	if err := validateHbar(hbar); err != nil {
		return 0, gaussianErrorf("Purity", err)
	}
	if err := matrix.ValidatePhaseSpace(cov); err != nil {
		return 0, gaussianErrorf("Purity", err)
	}
	scaled, err := matrix.Scale(cov, 2/hbar)
	if err != nil {
		return 0, gaussianErrorf("Purity", err)
	}
	det, err := matrix.Det(scaled)
	if err != nil {
		return 0, gaussianErrorf("Purity", err)
	}
	if det <= 0 {
		return 0, gaussianErrorf("Purity", ErrUnphysical)
	}

	return 1 / math.Sqrt(det), nil
}

// MeanPhotonNumbers returns ⟨n̂k⟩ = (Tr Σk + |μk|²)/(2ħ) − 1/2 for each mode k.
// Errors: ErrBadHbar, ErrShape, matrix sentinels.
func MeanPhotonNumbers(cov matrix.Matrix, means []float64, hbar float64) ([]float64, error) {
	if err := validateHbar(hbar); err != nil {
		return nil, gaussianErrorf("MeanPhotonNumbers", err)
	}
	if err := matrix.ValidatePhaseSpace(cov); err != nil {
		return nil, gaussianErrorf("MeanPhotonNumbers", err)
	}
	if len(means) != cov.Rows() {
		return nil, gaussianErrorf("MeanPhotonNumbers", ErrShape)
	}
	n := cov.Rows() / 2
	out := make([]float64, n)
	var cxx, cpp float64
	var err error
	for k := 0; k < n; k++ {
		if cxx, err = cov.At(k, k); err != nil {
			return nil, gaussianErrorf("MeanPhotonNumbers", err)
		}
		if cpp, err = cov.At(n+k, n+k); err != nil {
			return nil, gaussianErrorf("MeanPhotonNumbers", err)
		}
		mx, mp := means[k], means[n+k]
		out[k] = (cxx+cpp+mx*mx+mp*mp)/(2*hbar) - 0.5
	}

	return out, nil
}

// FieldExpectations returns ⟨ak⟩ = (μxk + i·μpk)/sqrt(2ħ) for each mode.
// Errors: ErrBadHbar, ErrShape (odd length).
func FieldExpectations(means []float64, hbar float64) ([]complex128, error) {
	if err := validateHbar(hbar); err != nil {
		return nil, gaussianErrorf("FieldExpectations", err)
	}
	if len(means) == 0 || len(means)%2 != 0 {
		return nil, gaussianErrorf("FieldExpectations", ErrShape)
	}
	n := len(means) / 2
	scale := 1 / math.Sqrt(2*hbar)
	out := make([]complex128, n)
	for k := 0; k < n; k++ {
		out[k] = complex(means[k]*scale, means[n+k]*scale)
	}

	return out, nil
}
