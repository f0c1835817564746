package fock_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/mustard/fock"
	"github.com/stretchr/testify/require"
)

func TestFidelity(t *testing.T) {
	one, err := fock.Number(1, 4)
	require.NoError(t, err)
	two, err := fock.Number(2, 4)
	require.NoError(t, err)

	f, err := fock.Fidelity(one, two)
	require.NoError(t, err)
	require.Zero(t, f)

	phased := fock.Ket{0, 1i, 0, 0}
	f, err = fock.Fidelity(one, phased)
	require.NoError(t, err)
	require.Equal(t, 1.0, f)

	_, err = fock.Fidelity(one, fock.Ket{0, 0, 0, 0})
	require.ErrorIs(t, err, fock.ErrZeroNorm)
	_, err = fock.Fidelity(one, fock.Ket{1})
	require.ErrorIs(t, err, fock.ErrDimension)
}

func TestNormalize(t *testing.T) {
	k, err := fock.Normalize(fock.Ket{3, 4i})
	require.NoError(t, err)
	require.InDelta(t, 1.0, fock.Norm(k), 1e-15)
	require.InDelta(t, 0.6, real(k[0]), 1e-15)
	require.InDelta(t, 0.8, imag(k[1]), 1e-15)

	_, err = fock.Normalize(fock.Ket{0, 0})
	require.ErrorIs(t, err, fock.ErrZeroNorm)
	_, err = fock.Normalize(fock.Ket{complex(math.Inf(1), 0)})
	require.ErrorIs(t, err, fock.ErrNonFinite)
}

func TestMoments_NumberState(t *testing.T) {
	k, err := fock.Number(3, 6)
	require.NoError(t, err)
	n, err := fock.MeanPhotonNumber(k)
	require.NoError(t, err)
	require.Equal(t, 3.0, n)
	a, err := fock.Annihilation(k)
	require.NoError(t, err)
	require.Zero(t, a)
}

func TestTailProbability(t *testing.T) {
	// |α|² = 4: a cutoff of 3 keeps e^{-4}(1 + 4 + 8).
	k, err := fock.Coherent(2, 3)
	require.NoError(t, err)
	require.InDelta(t, 1-13*math.Exp(-4), fock.TailProbability(k), 1e-14)

	require.Zero(t, fock.TailProbability(fock.Ket{1}))
}
