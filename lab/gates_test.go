package lab_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/katalvlaran/mustard/fock"
	"github.com/katalvlaran/mustard/lab"
	"github.com/katalvlaran/mustard/matrix"
	"github.com/katalvlaran/mustard/random"
	"github.com/stretchr/testify/require"
)

func TestDgate_ZeroIsExactIdentity(t *testing.T) {
	vac := MustVacuum(t, 1)
	out := MustApply(t, lab.Dgate(f(0), f(0)), vac)

	require.Equal(t, vac.Means(), out.Means())
	require.Equal(t, vac.Cov().RawCopy(), out.Cov().RawCopy())
	require.True(t, lab.ApproxEqual(vac, out, 0))
}

func TestDgate_VacuumRoundTrip(t *testing.T) {
	vac := MustVacuum(t, 1)
	mid := MustApply(t, lab.Dgate(f(1.5), f(-0.7)), vac)
	out := MustApply(t, lab.Dgate(f(-1.5), f(0.7)), mid)

	n, err := out.MeanPhotonNumbers()
	require.NoError(t, err)
	require.InDelta(t, 0.0, n[0], 1e-6)
	a, err := out.FieldExpectations()
	require.NoError(t, err)
	require.InDelta(t, 0.0, cmplx.Abs(a[0]), 1e-6)
	require.True(t, lab.Equal(vac, out))

	n, err = mid.MeanPhotonNumbers()
	require.NoError(t, err)
	require.InDelta(t, 1.5*1.5+0.7*0.7, n[0], 1e-12)
}

func TestDgate_WrongSecondDisplacementDoesNotRecover(t *testing.T) {
	s, err := random.PureState(random.New(42), 1)
	require.NoError(t, err)
	mid := MustApply(t, lab.Dgate(f(0.8), f(0.3)), s)

	for _, tc := range []struct {
		name string
		x, y float64
	}{
		{"same sign", 0.8, 0.3},
		{"x only", -0.8, 0},
		{"off by a little", -0.79, -0.3},
	} {
		t.Run(tc.name, func(t *testing.T) {
			out := MustApply(t, lab.Dgate(f(tc.x), f(tc.y)), mid)
			require.False(t, lab.Equal(s, out))
		})
	}
}

func TestDgate_BroadcastAndPerMode(t *testing.T) {
	vac := MustVacuum(t, 2)

	out := MustApply(t, lab.Dgate(f(0.5), f(-0.5)), vac)
	require.Equal(t, []float64{1, 1, -1, -1}, out.Means())

	out = MustApply(t, lab.Dgate(f(0.5, 1), f(0, 0.25)), vac)
	require.Equal(t, []float64{1, 2, 0, 0.5}, out.Means())

	out = MustApply(t, lab.Dgate(f(1), f(1), lab.OnModes(1)), vac)
	require.Equal(t, []float64{0, 2, 0, 2}, out.Means())

	_, err := lab.Dgate(f(1, 2, 3), f(0)).Apply(vac)
	require.ErrorIs(t, err, lab.ErrBadParameters)
	_, err = lab.Dgate(nil, f(0)).Apply(vac)
	require.ErrorIs(t, err, lab.ErrBadParameters)
	_, err = lab.Dgate(f(math.Inf(1)), f(0)).Apply(vac)
	require.ErrorIs(t, err, lab.ErrBadParameters)
	_, err = lab.Dgate(f(1), f(1), lab.OnModes(2)).Apply(vac)
	require.ErrorIs(t, err, lab.ErrModeMismatch)
	_, err = lab.Dgate(f(1), f(1), lab.OnModes(0, 0)).Apply(vac)
	require.ErrorIs(t, err, lab.ErrModeMismatch)
	_, err = lab.Dgate(f(1), f(1)).Apply(lab.State{})
	require.ErrorIs(t, err, lab.ErrEmptyState)
}

func TestDgate_DoesNotMutateInputOrParams(t *testing.T) {
	vac := MustVacuum(t, 1)
	x, y := f(1), f(2)
	g := lab.Dgate(x, y)
	x[0] = 100
	_ = MustApply(t, g, vac)

	require.Equal(t, []float64{0, 0}, vac.Means())
	gx, gy := g.Params()
	require.Equal(t, []float64{1}, gx)
	require.Equal(t, []float64{2}, gy)
}

func TestGates_InverseRecoversRandomState(t *testing.T) {
	s2, err := random.PureState(random.New(9), 2)
	require.NoError(t, err)
	sym, err := random.Symplectic(random.New(10), 2)
	require.NoError(t, err)
	gg, err := lab.Ggate(sym)
	require.NoError(t, err)

	for _, g := range []lab.Gate{
		lab.Dgate(f(0.3, -1.2), f(0.9, 0.1)),
		lab.Sgate(f(0.4), f(1.1)),
		lab.Sgate(f(0.2, 0.5), f(0, -2), lab.OnModes(1, 0)),
		lab.Rgate(f(2.5, -0.4)),
		lab.BSgate(0.7, -1.3),
		lab.BSgate(0.7, -1.3, lab.OnModes(1, 0)),
		lab.S2gate(0.45, 0.6),
		gg,
	} {
		t.Run(g.Name(), func(t *testing.T) {
			mid := MustApply(t, g, s2)
			require.False(t, lab.Equal(s2, mid))
			out := MustApply(t, g.Inverse(), mid)
			require.True(t, lab.Equal(s2, out))

			p, err := mid.Purity()
			require.NoError(t, err)
			require.InDelta(t, 1.0, p, 1e-9)
		})
	}
}

func TestSgate_SqueezesVacuum(t *testing.T) {
	r := 0.3
	out := MustApply(t, lab.Sgate(f(r), f(0)), MustVacuum(t, 1))
	want, err := lab.SqueezedVacuum(f(r), f(0))
	require.NoError(t, err)
	require.True(t, lab.Equal(want, out))
}

func TestTwoModeGates_Modes(t *testing.T) {
	one := MustVacuum(t, 1)
	_, err := lab.BSgate(0.1, 0).Apply(one)
	require.ErrorIs(t, err, lab.ErrModeMismatch)
	_, err = lab.S2gate(0.1, 0, lab.OnModes(0, 1, 2)).Apply(MustVacuum(t, 3))
	require.ErrorIs(t, err, lab.ErrModeMismatch)
	_, err = lab.BSgate(math.NaN(), 0).Apply(MustVacuum(t, 2))
	require.ErrorIs(t, err, lab.ErrBadParameters)

	// A beam splitter on two vacua is the identity.
	three := MustVacuum(t, 3)
	out := MustApply(t, lab.BSgate(0.8, 0.2, lab.OnModes(0, 2)), three)
	require.True(t, lab.Equal(three, out))

	// Two-mode squeezing populates both modes with sinh² r photons.
	r := 0.5
	tms := MustApply(t, lab.S2gate(r, 0), MustVacuum(t, 2))
	n, err := tms.MeanPhotonNumbers()
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{math.Pow(math.Sinh(r), 2), math.Pow(math.Sinh(r), 2)}, n, 1e-12)
}

func TestGgate_Validation(t *testing.T) {
	notSymplectic, err := matrix.NewFromRows([][]float64{{2, 0}, {0, 2}})
	require.NoError(t, err)
	_, err = lab.Ggate(notSymplectic)
	require.ErrorIs(t, err, lab.ErrBadParameters)
	require.ErrorIs(t, err, matrix.ErrNotSymplectic)

	sym, err := random.Symplectic(random.New(3), 1)
	require.NoError(t, err)
	_, err = lab.Ggate(sym, lab.OnModes(0, 1))
	require.ErrorIs(t, err, lab.ErrModeMismatch)

	g, err := lab.Ggate(sym)
	require.NoError(t, err)
	_, err = g.Apply(MustVacuum(t, 2))
	require.ErrorIs(t, err, lab.ErrModeMismatch)

	out := MustApply(t, mustGgate(t, sym, lab.OnModes(1)), MustVacuum(t, 2))
	require.Equal(t, 2, out.Modes())
	require.Equal(t, sym.RawCopy(), g.Symplectic().RawCopy())
}

func mustGgate(t *testing.T, s matrix.Matrix, opts ...lab.GateOption) lab.Gate {
	t.Helper()
	g, err := lab.Ggate(s, opts...)
	require.NoError(t, err)

	return g
}

func TestGates_OnFockStates(t *testing.T) {
	k, err := fock.Coherent(complex(0.2, 0.1), 30)
	require.NoError(t, err)
	s, err := lab.NewFockState(k)
	require.NoError(t, err)

	out := MustApply(t, lab.Dgate(f(0.3), f(-0.1)), s)
	a, err := out.FieldExpectations()
	require.NoError(t, err)
	require.InDelta(t, 0.0, cmplx.Abs(a[0]-complex(0.5, 0)), 1e-12)

	rot := MustApply(t, lab.Rgate(f(math.Pi/2)), out)
	a, err = rot.FieldExpectations()
	require.NoError(t, err)
	require.InDelta(t, 0.0, cmplx.Abs(a[0]-complex(0, 0.5)), 1e-12)

	for _, g := range []lab.Gate{
		lab.Sgate(f(0.1), f(0)),
		lab.BSgate(0.1, 0),
		lab.S2gate(0.1, 0),
		mustGgate(t, mustIdentity(t, 2)),
	} {
		_, err := g.Apply(s)
		require.ErrorIs(t, err, lab.ErrNoFockRepresentation, g.Name())
	}
}

func mustIdentity(t *testing.T, n int) *matrix.Dense {
	t.Helper()
	id, err := matrix.NewIdentity(n)
	require.NoError(t, err)

	return id
}

func TestDgate_FockAmplitudeBeyondCutoff(t *testing.T) {
	vac, err := fock.Vacuum(40)
	require.NoError(t, err)
	s, err := lab.NewFockState(vac)
	require.NoError(t, err)

	_, err = lab.Dgate(f(40), f(0)).Apply(s)
	require.ErrorIs(t, err, lab.ErrBadParameters)
	require.ErrorIs(t, err, fock.ErrZeroNorm)

	out := MustApply(t, lab.Dgate(f(2), f(0)), s)
	require.True(t, lab.Equal(out, out))
	n, err := out.MeanPhotonNumbers()
	require.NoError(t, err)
	require.Greater(t, n[0], 0.0)
}
