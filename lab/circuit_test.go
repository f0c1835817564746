package lab_test

import (
	"testing"

	"github.com/katalvlaran/mustard/lab"
	"github.com/katalvlaran/mustard/random"
	"github.com/stretchr/testify/require"
)

func TestCircuit_InverseRecovers(t *testing.T) {
	s, err := random.PureState(random.New(21), 2)
	require.NoError(t, err)

	c := lab.NewCircuit(
		lab.Sgate(f(0.3), f(0.2)),
		lab.BSgate(0.6, 0.1),
		nil,
		lab.Dgate(f(1, -1), f(0.5, 0)),
	).Then(lab.Rgate(f(0.7)))
	require.Equal(t, 4, c.Len())
	require.Len(t, c.Gates(), 4)

	mid := MustApply(t, c, s)
	require.False(t, lab.Equal(s, mid))
	out := MustApply(t, c.Inverse(), mid)
	require.True(t, lab.Equal(s, out))
}

func TestCircuit_OrderMatters(t *testing.T) {
	vac := MustVacuum(t, 1)
	d := lab.Dgate(f(1), f(0))
	sq := lab.Sgate(f(0.5), f(0))

	ds := MustApply(t, lab.NewCircuit(d, sq), vac)
	sd := MustApply(t, lab.NewCircuit(sq, d), vac)
	require.False(t, lab.Equal(ds, sd))
}

func TestCircuit_EmptyAndErrors(t *testing.T) {
	vac := MustVacuum(t, 1)
	out := MustApply(t, lab.NewCircuit(), vac)
	require.True(t, lab.ApproxEqual(vac, out, 0))

	_, err := lab.NewCircuit(lab.Dgate(f(1), f(0)), lab.BSgate(0.1, 0)).Apply(vac)
	require.ErrorIs(t, err, lab.ErrModeMismatch)
	require.Contains(t, err.Error(), "gate 1 (BSgate)")

	_, err = lab.NewCircuit().Apply(lab.State{})
	require.ErrorIs(t, err, lab.ErrEmptyState)
}
