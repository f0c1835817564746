// SPDX-License-Identifier: MIT

// Package matrix - phase-space layout helpers.
//
// Purpose:
//   - Build the symplectic form Ω for N modes in xxpp ordering.
//   - Lift k-mode blocks (gates acting on a subset of modes) into the full
//     2N-dimensional space, and extract k-mode blocks back out.
//
// Index mapping (xxpp): local index a of a k-mode block maps to global
//
//	g(a) = modes[a]         for a <  k   (x quadratures)
//	g(a) = N + modes[a-k]   for a >= k   (p quadratures)
package matrix

import "fmt"

const (
	opSymplecticForm = "SymplecticForm"
	opDirectSum      = "DirectSum"
	opEmbedModes     = "EmbedModes"
	opEmbedVector    = "EmbedVector"
	opSubmatrixModes = "SubmatrixModes"
	opSubvectorModes = "SubvectorModes"
)

// SymplecticForm returns Ω = [[0, I_N], [−I_N, 0]] for n modes.
// Errors: ErrInvalidDimensions for n <= 0.
func SymplecticForm(n int) (*Dense, error) {
	if n <= 0 {
		return nil, matrixErrorf(opSymplecticForm, ErrInvalidDimensions)
	}
	dim := 2 * n
	omega, err := NewDense(dim, dim)
	if err != nil {
		return nil, matrixErrorf(opSymplecticForm, err)
	}
	for i := 0; i < n; i++ {
		omega.data[i*dim+(n+i)] = 1
		omega.data[(n+i)*dim+i] = -1
	}

	return omega, nil
}

// DirectSum returns the block-diagonal matrix diag(blocks...). Blocks need
// not be square.
// Errors: ErrInvalidDimensions (no blocks), ErrNilMatrix.
func DirectSum(blocks ...Matrix) (*Dense, error) {
	if len(blocks) == 0 {
		return nil, matrixErrorf(opDirectSum, ErrInvalidDimensions)
	}
	var rows, cols int
	dense := make([]*Dense, len(blocks))
	for idx, b := range blocks {
		if err := ValidateNotNil(b); err != nil {
			return nil, matrixErrorf(opDirectSum, err)
		}
		d, err := toDense(b)
		if err != nil {
			return nil, matrixErrorf(opDirectSum, err)
		}
		dense[idx] = d
		rows += d.r
		cols += d.c
	}
	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opDirectSum, err)
	}
	var r0, c0, i, j int
	for _, d := range dense {
		for i = 0; i < d.r; i++ {
			for j = 0; j < d.c; j++ {
				out.data[(r0+i)*cols+(c0+j)] = d.data[i*d.c+j]
			}
		}
		r0 += d.r
		c0 += d.c
	}

	return out, nil
}

// validateModes checks that modes is non-empty, unique and within [0, n).
func validateModes(modes []int, n int) error {
	if len(modes) == 0 || len(modes) > n {
		return ErrBadModes
	}
	seen := make([]bool, n)
	for _, m := range modes {
		if m < 0 || m >= n || seen[m] {
			return fmt.Errorf("mode %d: %w", m, ErrBadModes)
		}
		seen[m] = true
	}

	return nil
}

// globalIndex maps a local xxpp index of a k-mode block into the N-mode space.
func globalIndex(a int, modes []int, n int) int {
	k := len(modes)
	if a < k {
		return modes[a]
	}

	return n + modes[a-k]
}

// EmbedModes lifts a 2k×2k xxpp block acting on `modes` into a 2n×2n matrix
// that acts as the identity on every other mode.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrOddDimension (block shape).
//   - ErrDimensionMismatch (block size != 2*len(modes)).
//   - ErrBadModes (empty, duplicate or out-of-range modes).
//
// Complexity: O(n² + k²).
func EmbedModes(block Matrix, modes []int, n int) (*Dense, error) {
	if err := ValidatePhaseSpace(block); err != nil {
		return nil, matrixErrorf(opEmbedModes, err)
	}
	if block.Rows() != 2*len(modes) {
		return nil, matrixErrorf(opEmbedModes, ErrDimensionMismatch)
	}
	if err := validateModes(modes, n); err != nil {
		return nil, matrixErrorf(opEmbedModes, err)
	}
	b, err := toDense(block)
	if err != nil {
		return nil, matrixErrorf(opEmbedModes, err)
	}
	out, err := NewIdentity(2 * n)
	if err != nil {
		return nil, matrixErrorf(opEmbedModes, err)
	}
	dim, k2 := 2*n, b.r
	var a, c int
	for a = 0; a < k2; a++ {
		ga := globalIndex(a, modes, n)
		for c = 0; c < k2; c++ {
			out.data[ga*dim+globalIndex(c, modes, n)] = b.data[a*k2+c]
		}
	}

	return out, nil
}

// EmbedVector places a 2k xxpp vector for `modes` into a zero 2n vector.
// Errors: ErrDimensionMismatch, ErrBadModes.
func EmbedVector(v []float64, modes []int, n int) ([]float64, error) {
	if err := ValidateVecLen(v, 2*len(modes)); err != nil {
		return nil, matrixErrorf(opEmbedVector, err)
	}
	if err := validateModes(modes, n); err != nil {
		return nil, matrixErrorf(opEmbedVector, err)
	}
	out := make([]float64, 2*n)
	for a := range v {
		out[globalIndex(a, modes, n)] = v[a]
	}

	return out, nil
}

// SubmatrixModes extracts the 2k×2k xxpp block of a 2n×2n matrix for `modes`.
// Errors: ErrNilMatrix, ErrNonSquare, ErrOddDimension, ErrBadModes.
func SubmatrixModes(m Matrix, modes []int) (*Dense, error) {
	if err := ValidatePhaseSpace(m); err != nil {
		return nil, matrixErrorf(opSubmatrixModes, err)
	}
	n := m.Rows() / 2
	if err := validateModes(modes, n); err != nil {
		return nil, matrixErrorf(opSubmatrixModes, err)
	}
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opSubmatrixModes, err)
	}
	k2 := 2 * len(modes)
	out, err := NewDense(k2, k2)
	if err != nil {
		return nil, matrixErrorf(opSubmatrixModes, err)
	}
	dim := 2 * n
	var a, c int
	for a = 0; a < k2; a++ {
		ga := globalIndex(a, modes, n)
		for c = 0; c < k2; c++ {
			out.data[a*k2+c] = d.data[ga*dim+globalIndex(c, modes, n)]
		}
	}

	return out, nil
}

// SubvectorModes extracts the 2k xxpp entries of a 2n vector for `modes`.
// Errors: ErrOddDimension, ErrBadModes.
func SubvectorModes(v []float64, modes []int) ([]float64, error) {
	if len(v) == 0 || len(v)%2 != 0 {
		return nil, matrixErrorf(opSubvectorModes, ErrOddDimension)
	}
	n := len(v) / 2
	if err := validateModes(modes, n); err != nil {
		return nil, matrixErrorf(opSubvectorModes, err)
	}
	out := make([]float64, 2*len(modes))
	for a := range out {
		out[a] = v[globalIndex(a, modes, n)]
	}

	return out, nil
}
