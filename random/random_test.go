package random_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/mustard/lab"
	"github.com/katalvlaran/mustard/matrix"
	"github.com/katalvlaran/mustard/random"
	"github.com/stretchr/testify/require"
)

func TestNew_Deterministic(t *testing.T) {
	a, b := random.New(7), random.New(7)
	for i := 0; i < 5; i++ {
		require.Equal(t, a.Float64(), b.Float64())
	}
	require.Equal(t, random.New(1).Int63(), random.New(0).Int63())
}

func TestDerive_IndependentStreams(t *testing.T) {
	base := random.New(3)
	s1 := random.Derive(base, 1)
	s2 := random.Derive(base, 1)
	require.NotEqual(t, s1.Int63(), s2.Int63())
	require.NotNil(t, random.Derive(nil, 0))
}

func TestVector_Range(t *testing.T) {
	rng := random.New(11)
	v := random.Vector(rng, 100, random.WithMagnitude(0.25))
	require.Len(t, v, 100)
	for _, x := range v {
		require.LessOrEqual(t, math.Abs(x), 0.25)
	}
	require.Nil(t, random.Vector(rng, 0))
}

func TestSymplectic_IsSymplectic(t *testing.T) {
	for n := 1; n <= 3; n++ {
		for seed := int64(1); seed <= 5; seed++ {
			s, err := random.Symplectic(random.New(seed), n)
			require.NoError(t, err)
			require.Equal(t, 2*n, s.Rows())
			require.NoError(t, matrix.ValidateSymplectic(s, 1e-9), "n=%d seed=%d", n, seed)
		}
	}
	_, err := random.Symplectic(nil, 0)
	require.ErrorIs(t, err, random.ErrModes)
}

func TestPureState_IsPureAndPhysical(t *testing.T) {
	for n := 1; n <= 3; n++ {
		s, err := random.PureState(random.New(int64(n)), n)
		require.NoError(t, err)
		require.Equal(t, n, s.Modes())
		require.True(t, s.IsGaussian())

		p, err := s.Purity()
		require.NoError(t, err)
		require.InDelta(t, 1.0, p, 1e-9)

		_, err = lab.NewGaussianState(s.Cov(), s.Means())
		require.NoError(t, err)
	}
	_, err := random.PureState(nil, -1)
	require.ErrorIs(t, err, random.ErrModes)
}

func TestPureState_ForwardsStateOptions(t *testing.T) {
	s, err := random.PureState(random.New(5), 1, random.WithStateOptions(lab.WithHbar(1)))
	require.NoError(t, err)
	require.Equal(t, 1.0, s.Hbar())
	p, err := s.Purity()
	require.NoError(t, err)
	require.InDelta(t, 1.0, p, 1e-9)
}

func TestOptions_PanicOnNonsense(t *testing.T) {
	require.Panics(t, func() { random.WithMagnitude(-1) })
	require.Panics(t, func() { random.WithMaxSqueezing(math.NaN()) })
}
