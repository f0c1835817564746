package lab_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/mustard/lab"
	"github.com/stretchr/testify/require"
)

func TestOptions_Defaults(t *testing.T) {
	s := MustVacuum(t, 1)
	require.Equal(t, lab.DefaultHbar, s.Hbar())
	require.Equal(t, lab.DefaultTolerance, s.Tolerance())
	require.Equal(t, lab.DefaultCutoff, s.Cutoff())

	s = MustVacuum(t, 1, lab.WithHbar(1), lab.WithTolerance(1e-3), lab.WithCutoff(12), nil)
	require.Equal(t, 1.0, s.Hbar())
	require.Equal(t, 1e-3, s.Tolerance())
	require.Equal(t, 12, s.Cutoff())
}

func TestOptions_PanicOnNonsense(t *testing.T) {
	require.Panics(t, func() { lab.WithHbar(0) })
	require.Panics(t, func() { lab.WithHbar(math.Inf(1)) })
	require.Panics(t, func() { lab.WithTolerance(-1) })
	require.Panics(t, func() { lab.WithTolerance(math.NaN()) })
	require.Panics(t, func() { lab.WithCutoff(0) })
}
