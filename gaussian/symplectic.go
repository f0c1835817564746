// SPDX-License-Identifier: MIT

// Package gaussian - symplectic generators of Gaussian unitaries (xxpp ordering).
//
// Single-mode generators accept one parameter per mode and return a 2N×2N
// matrix acting on all N modes. Two-mode generators return a 4×4 matrix on
// (x1, x2, p1, p2); lift it with matrix.EmbedModes to act on a larger system.
package gaussian

import (
	"fmt"
	"math"

	"github.com/katalvlaran/mustard/matrix"
)

const (
	opRotation         = "RotationSymplectic"
	opSqueezing        = "SqueezingSymplectic"
	opBeamsplitter     = "BeamsplitterSymplectic"
	opTwoModeSqueezing = "TwoModeSqueezingSymplectic"
)

// quadratureBlocks assembles a 2N×2N matrix from four diagonal N×N blocks
// [[diag(xx), diag(xp)], [diag(px), diag(pp)]].
func quadratureBlocks(xx, xp, px, pp []float64) (*matrix.Dense, error) {
	n := len(xx)
	out, err := matrix.NewDense(2*n, 2*n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for _, e := range [4]struct {
			r, c int
			v    float64
		}{
			{i, i, xx[i]},
			{i, n + i, xp[i]},
			{n + i, i, px[i]},
			{n + i, n + i, pp[i]},
		} {
			if err = out.Set(e.r, e.c, e.v); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// fromRows builds a Dense from literal rows, tagging failures with op.
func fromRows(op string, rows [][]float64) (*matrix.Dense, error) {
	m, err := matrix.NewFromRows(rows)
	if err != nil {
		return nil, gaussianErrorf(op, err)
	}

	return m, nil
}

// RotationSymplectic returns ⊕_k [[cos θk, −sin θk], [sin θk, cos θk]].
// Errors: ErrParamLength, ErrNonFiniteParam.
func RotationSymplectic(theta []float64) (*matrix.Dense, error) {
	if err := validateParams(theta); err != nil {
		return nil, gaussianErrorf(opRotation, err)
	}
	n := len(theta)
	c, s, ns := make([]float64, n), make([]float64, n), make([]float64, n)
	for i, t := range theta {
		c[i], s[i] = math.Cos(t), math.Sin(t)
		ns[i] = -s[i]
	}
	m, err := quadratureBlocks(c, ns, s, c)
	if err != nil {
		return nil, gaussianErrorf(opRotation, err)
	}

	return m, nil
}

// SqueezingSymplectic returns the per-mode squeezer S(r, φ):
//
//	[[cosh r − cos φ sinh r, −sin φ sinh r],
//	 [−sin φ sinh r,         cosh r + cos φ sinh r]]
//
// Errors: ErrParamLength, ErrNonFiniteParam (including cosh overflow).
func SqueezingSymplectic(r, phi []float64) (*matrix.Dense, error) {
	if err := validateParams(r, phi); err != nil {
		return nil, gaussianErrorf(opSqueezing, err)
	}
	n := len(r)
	xx, off, pp := make([]float64, n), make([]float64, n), make([]float64, n)
	var ch, sh float64
	for i := range r {
		ch, sh = math.Cosh(r[i]), math.Sinh(r[i])
		xx[i] = ch - math.Cos(phi[i])*sh
		pp[i] = ch + math.Cos(phi[i])*sh
		off[i] = -math.Sin(phi[i]) * sh
	}
	m, err := quadratureBlocks(xx, off, off, pp)
	if err != nil {
		return nil, gaussianErrorf(opSqueezing, fmt.Errorf("%w: %w", ErrNonFiniteParam, err))
	}

	return m, nil
}

// BeamsplitterSymplectic returns the 4×4 symplectic of a beam splitter with
// transmissivity angle θ and phase φ on (x1, x2, p1, p2). It is the real
// form [[Re U, −Im U], [Im U, Re U]] of U = [[cos θ, −e^{−iφ} sin θ], [e^{iφ} sin θ, cos θ]].
// Errors: ErrNonFiniteParam.
func BeamsplitterSymplectic(theta, phi float64) (*matrix.Dense, error) {
	if err := validateParams([]float64{theta, phi}); err != nil {
		return nil, gaussianErrorf(opBeamsplitter, err)
	}
	ct, st := math.Cos(theta), math.Sin(theta)
	cp, sp := math.Cos(phi), math.Sin(phi)

	return fromRows(opBeamsplitter, [][]float64{
		{ct, -cp * st, 0, -sp * st},
		{cp * st, ct, -sp * st, 0},
		{0, sp * st, ct, -cp * st},
		{sp * st, 0, cp * st, ct},
	})
}

// TwoModeSqueezingSymplectic returns the 4×4 symplectic of S2(r, φ) on (x1, x2, p1, p2).
// Errors: ErrNonFiniteParam.
func TwoModeSqueezingSymplectic(r, phi float64) (*matrix.Dense, error) {
	if err := validateParams([]float64{r, phi}); err != nil {
		return nil, gaussianErrorf(opTwoModeSqueezing, err)
	}
	ch, sh := math.Cosh(r), math.Sinh(r)
	cp, sp := math.Cos(phi), math.Sin(phi)

	return fromRows(opTwoModeSqueezing, [][]float64{
		{ch, cp * sh, 0, sp * sh},
		{cp * sh, ch, sp * sh, 0},
		{0, sp * sh, ch, -cp * sh},
		{sp * sh, 0, -cp * sh, ch},
	})
}

// InverseSymplectic returns S⁻¹ = −Ω Sᵀ Ω, which is exact for symplectic S
// and avoids a numerical inversion.
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrOddDimension.
func InverseSymplectic(s matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidatePhaseSpace(s); err != nil {
		return nil, gaussianErrorf("InverseSymplectic", err)
	}
	omega, err := matrix.SymplecticForm(s.Rows() / 2)
	if err != nil {
		return nil, gaussianErrorf("InverseSymplectic", err)
	}
	st, err := matrix.Transpose(s)
	if err != nil {
		return nil, gaussianErrorf("InverseSymplectic", err)
	}
	ost, err := matrix.Mul(omega, st)
	if err != nil {
		return nil, gaussianErrorf("InverseSymplectic", err)
	}
	osto, err := matrix.Mul(ost, omega)
	if err != nil {
		return nil, gaussianErrorf("InverseSymplectic", err)
	}
	inv, err := matrix.Scale(osto, -1)
	if err != nil {
		return nil, gaussianErrorf("InverseSymplectic", err)
	}

	return inv.(*matrix.Dense), nil
}
