package fock_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/katalvlaran/mustard/fock"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

const cutoff = 40

// drawAlpha draws a weak complex amplitude with |Re|, |Im| ≤ 1.
func drawAlpha(t *rapid.T, label string) complex128 {
	re := rapid.Float64Range(-1, 1).Draw(t, label+"_re")
	im := rapid.Float64Range(-1, 1).Draw(t, label+"_im")

	return complex(re, im)
}

func TestNumber(t *testing.T) {
	k, err := fock.Number(3, 5)
	require.NoError(t, err)
	require.Equal(t, fock.Ket{0, 0, 0, 1, 0}, k)

	_, err = fock.Number(5, 5)
	require.ErrorIs(t, err, fock.ErrNumberOutOfRange)
	_, err = fock.Number(-1, 5)
	require.ErrorIs(t, err, fock.ErrNumberOutOfRange)
	_, err = fock.Vacuum(0)
	require.ErrorIs(t, err, fock.ErrCutoff)
}

func TestCoherent_Moments(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		alpha := drawAlpha(t, "alpha")
		k, err := fock.Coherent(alpha, cutoff)
		require.NoError(t, err)

		require.InDelta(t, 1.0, fock.Norm(k), 1e-12)
		require.Less(t, fock.TailProbability(k), 1e-12)

		n, err := fock.MeanPhotonNumber(k)
		require.NoError(t, err)
		abs := cmplx.Abs(alpha)
		require.InDelta(t, abs*abs, n, 1e-10)

		a, err := fock.Annihilation(k)
		require.NoError(t, err)
		require.InDelta(t, 0.0, cmplx.Abs(a-alpha), 1e-10)
	})
}

func TestSqueezedVacuum_OddAmplitudesVanish(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		r := rapid.Float64Range(0, 0.5).Draw(t, "r")
		phi := rapid.Float64Range(-math.Pi, math.Pi).Draw(t, "phi")
		k, err := fock.SqueezedVacuum(r, phi, 60)
		require.NoError(t, err)

		for n := 1; n < len(k); n += 2 {
			require.Zero(t, k[n])
		}
		require.InDelta(t, 1.0, fock.Norm(k), 1e-12)

		n, err := fock.MeanPhotonNumber(k)
		require.NoError(t, err)
		require.InDelta(t, math.Pow(math.Sinh(r), 2), n, 1e-10)
	})
}

func TestSqueezedVacuum_SecondAmplitude(t *testing.T) {
	r, phi := 0.3, 0.8
	k, err := fock.SqueezedVacuum(r, phi, 4)
	require.NoError(t, err)

	c0 := complex(1/math.Sqrt(math.Cosh(r)), 0)
	want := c0 * -cmplx.Exp(complex(0, phi)) * complex(math.Tanh(r)/math.Sqrt2, 0)
	require.InDelta(t, real(c0), real(k[0]), 1e-15)
	require.InDelta(t, 0.0, cmplx.Abs(k[2]-want), 1e-15)
}

func TestDisplacedSqueezed_MatchesOperatorProduct(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		alpha := drawAlpha(t, "alpha")
		r := rapid.Float64Range(0, 0.5).Draw(t, "r")
		phi := rapid.Float64Range(-math.Pi, math.Pi).Draw(t, "phi")

		direct, err := fock.DisplacedSqueezed(alpha, r, phi, cutoff)
		require.NoError(t, err)

		// Build at a larger cutoff so that the truncated operator sees the
		// whole squeezed vacuum, then keep the leading amplitudes.
		const padded = 2 * cutoff
		sq, err := fock.SqueezedVacuum(r, phi, padded)
		require.NoError(t, err)
		d, err := fock.Displacement(alpha, padded)
		require.NoError(t, err)
		viaOp, err := fock.Apply(d, sq)
		require.NoError(t, err)

		for n := 0; n < cutoff; n++ {
			require.InDelta(t, 0.0, cmplx.Abs(direct[n]-viaOp[n]), 1e-12, "n=%d", n)
		}
	})
}

func TestKets_RejectNonFinite(t *testing.T) {
	_, err := fock.Coherent(complex(math.NaN(), 0), 4)
	require.ErrorIs(t, err, fock.ErrNonFinite)
	_, err = fock.SqueezedVacuum(math.Inf(1), 0, 4)
	require.ErrorIs(t, err, fock.ErrNonFinite)
}

func TestKet_Clone(t *testing.T) {
	k := fock.Ket{1, 2i}
	c := k.Clone()
	c[0] = 5
	require.Equal(t, complex128(1), k[0])
	require.Equal(t, 2, k.Cutoff())
	require.Nil(t, fock.Ket(nil).Clone())
}
