// SPDX-License-Identifier: MIT

// Package gaussian - standard state moments and displacement vectors.
package gaussian

import (
	"math"

	"github.com/katalvlaran/mustard/matrix"
)

// VacuumCov returns the N-mode vacuum covariance (ħ/2)·I_{2N}.
// Errors: ErrBadHbar, matrix.ErrInvalidDimensions for n <= 0.
func VacuumCov(n int, hbar float64) (*matrix.Dense, error) {
	if err := validateHbar(hbar); err != nil {
		return nil, gaussianErrorf("VacuumCov", err)
	}
	id, err := matrix.NewIdentity(2 * n)
	if err != nil {
		return nil, gaussianErrorf("VacuumCov", err)
	}
	cov, err := matrix.Scale(id, hbar/2)
	if err != nil {
		return nil, gaussianErrorf("VacuumCov", err)
	}

	return cov.(*matrix.Dense), nil
}

// VacuumMeans returns the zero mean vector of length 2N.
func VacuumMeans(n int) []float64 {
	if n <= 0 {
		return nil
	}

	return make([]float64, 2*n)
}

// DisplacementVector returns sqrt(2ħ)·(x1..xN, y1..yN), the phase-space shift
// of the complex displacement αk = xk + i·yk.
// Errors: ErrBadHbar, ErrParamLength, ErrNonFiniteParam.
func DisplacementVector(x, y []float64, hbar float64) ([]float64, error) {
	if err := validateHbar(hbar); err != nil {
		return nil, gaussianErrorf("DisplacementVector", err)
	}
	if err := validateParams(x, y); err != nil {
		return nil, gaussianErrorf("DisplacementVector", err)
	}
	n := len(x)
	scale := math.Sqrt(2 * hbar)
	d := make([]float64, 2*n)
	for i := 0; i < n; i++ {
		d[i] = scale * x[i]
		d[n+i] = scale * y[i]
	}

	return d, nil
}

// CoherentMeans is the mean vector of the coherent state |α⟩, αk = xk + i·yk.
// It equals the displacement of the vacuum.
func CoherentMeans(x, y []float64, hbar float64) ([]float64, error) {
	return DisplacementVector(x, y, hbar)
}

// SqueezedVacuumCov returns (ħ/2)·S Sᵀ for the per-mode squeezer S(r, φ).
// Errors: ErrBadHbar, ErrParamLength, ErrNonFiniteParam.
func SqueezedVacuumCov(r, phi []float64, hbar float64) (*matrix.Dense, error) {
	if err := validateHbar(hbar); err != nil {
		return nil, gaussianErrorf("SqueezedVacuumCov", err)
	}
	s, err := SqueezingSymplectic(r, phi)
	if err != nil {
		return nil, gaussianErrorf("SqueezedVacuumCov", err)
	}
	vac, err := VacuumCov(len(r), hbar)
	if err != nil {
		return nil, gaussianErrorf("SqueezedVacuumCov", err)
	}
	cov, _, err := ApplyUnitary(vac, VacuumMeans(len(r)), s, nil)
	if err != nil {
		return nil, gaussianErrorf("SqueezedVacuumCov", err)
	}

	return cov, nil
}

// ThermalCov returns ⊕_k (ħ/2)(2·n̄k + 1)·I_2 for mean occupations n̄k ≥ 0.
// Errors: ErrBadHbar, ErrParamLength, ErrNonFiniteParam, ErrNegativeOccupation.
func ThermalCov(nbar []float64, hbar float64) (*matrix.Dense, error) {
	if err := validateHbar(hbar); err != nil {
		return nil, gaussianErrorf("ThermalCov", err)
	}
	if err := validateParams(nbar); err != nil {
		return nil, gaussianErrorf("ThermalCov", err)
	}
	n := len(nbar)
	diag := make([]float64, n)
	zero := make([]float64, n)
	for i, v := range nbar {
		if v < 0 {
			return nil, gaussianErrorf("ThermalCov", ErrNegativeOccupation)
		}
		diag[i] = (hbar / 2) * (2*v + 1)
	}
	cov, err := quadratureBlocks(diag, zero, zero, diag)
	if err != nil {
		return nil, gaussianErrorf("ThermalCov", err)
	}

	return cov, nil
}
