package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/mustard/matrix"
	"github.com/stretchr/testify/require"
)

func TestSymplecticForm_Layout(t *testing.T) {
	omega, err := matrix.SymplecticForm(2)
	require.NoError(t, err)
	want := MustFromRows(t, [][]float64{
		{0, 0, 1, 0},
		{0, 0, 0, 1},
		{-1, 0, 0, 0},
		{0, -1, 0, 0},
	})
	RequireClose(t, want, omega, 0)

	_, err = matrix.SymplecticForm(0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestDirectSum(t *testing.T) {
	a := MustFromRows(t, [][]float64{{1}})
	b := MustFromRows(t, [][]float64{{2, 3}, {4, 5}})
	got, err := matrix.DirectSum(a, b)
	require.NoError(t, err)
	want := MustFromRows(t, [][]float64{
		{1, 0, 0},
		{0, 2, 3},
		{0, 4, 5},
	})
	RequireClose(t, want, got, 0)

	_, err = matrix.DirectSum()
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestEmbedModes_SingleModeIntoTwo(t *testing.T) {
	block := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	got, err := matrix.EmbedModes(block, []int{1}, 2)
	require.NoError(t, err)
	// Mode 1 occupies rows/cols {1, 3} in xxpp ordering.
	want := MustFromRows(t, [][]float64{
		{1, 0, 0, 0},
		{0, 1, 0, 2},
		{0, 0, 1, 0},
		{0, 3, 0, 4},
	})
	RequireClose(t, want, got, 0)
}

func TestEmbedModes_RoundTripsWithSubmatrix(t *testing.T) {
	block := MustFromRows(t, [][]float64{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
		{13, 14, 15, 16},
	})
	modes := []int{2, 0}
	big, err := matrix.EmbedModes(block, modes, 3)
	require.NoError(t, err)
	back, err := matrix.SubmatrixModes(big, modes)
	require.NoError(t, err)
	RequireClose(t, block, back, 0)

	untouched, err := matrix.SubmatrixModes(big, []int{1})
	require.NoError(t, err)
	RequireClose(t, MustFromRows(t, [][]float64{{1, 0}, {0, 1}}), untouched, 0)
}

func TestEmbedModes_Errors(t *testing.T) {
	block := MustFromRows(t, [][]float64{{1, 0}, {0, 1}})
	_, err := matrix.EmbedModes(block, []int{2}, 2)
	require.ErrorIs(t, err, matrix.ErrBadModes)
	_, err = matrix.EmbedModes(block, []int{0, 1}, 2)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.EmbedModes(MustDense(t, 3, 3), []int{0}, 2)
	require.ErrorIs(t, err, matrix.ErrOddDimension)

	dup := MustFromRows(t, [][]float64{
		{1, 0, 0, 0}, {0, 1, 0, 0}, {0, 0, 1, 0}, {0, 0, 0, 1},
	})
	_, err = matrix.EmbedModes(dup, []int{0, 0}, 2)
	require.ErrorIs(t, err, matrix.ErrBadModes)
}

func TestEmbedAndSubvector(t *testing.T) {
	v, err := matrix.EmbedVector([]float64{7, 9}, []int{1}, 3)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 7, 0, 0, 9, 0}, v)

	sub, err := matrix.SubvectorModes(v, []int{1})
	require.NoError(t, err)
	require.Equal(t, []float64{7, 9}, sub)

	_, err = matrix.SubvectorModes([]float64{1, 2, 3}, []int{0})
	require.ErrorIs(t, err, matrix.ErrOddDimension)
}

func TestValidateSymplectic(t *testing.T) {
	r := 0.3
	squeeze := MustFromRows(t, [][]float64{{math.Exp(-r), 0}, {0, math.Exp(r)}})
	require.NoError(t, matrix.ValidateSymplectic(squeeze, 1e-12))

	notSymp := MustFromRows(t, [][]float64{{2, 0}, {0, 2}})
	require.ErrorIs(t, matrix.ValidateSymplectic(notSymp, 1e-12), matrix.ErrNotSymplectic)
}

func TestValidateSymmetric(t *testing.T) {
	require.NoError(t, matrix.ValidateSymmetric(MustFromRows(t, [][]float64{{1, 2}, {2, 1}}), 0))
	require.ErrorIs(t,
		matrix.ValidateSymmetric(MustFromRows(t, [][]float64{{1, 2}, {2.1, 1}}), 1e-3),
		matrix.ErrAsymmetry)
	require.ErrorIs(t, matrix.ValidateSymmetric(MustDense(t, 2, 3), 0), matrix.ErrNonSquare)
	require.ErrorIs(t, matrix.ValidateNotNil((*matrix.Dense)(nil)), matrix.ErrNilMatrix)
}
