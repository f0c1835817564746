package lab_test

import (
	"testing"

	"github.com/katalvlaran/mustard/lab"
	"github.com/stretchr/testify/require"
)

// MustApply applies g to s and fails the test on error.
func MustApply(t *testing.T, g lab.Gate, s lab.State) lab.State {
	t.Helper()
	out, err := g.Apply(s)
	require.NoError(t, err)

	return out
}

// MustVacuum returns the n-mode vacuum.
func MustVacuum(t *testing.T, n int, opts ...lab.Option) lab.State {
	t.Helper()
	s, err := lab.Vacuum(n, opts...)
	require.NoError(t, err)

	return s
}

func f(v ...float64) []float64 { return v }
