// SPDX-License-Identifier: MIT

// Package lab - ordered composition of gates.
package lab

import "fmt"

// Circuit applies its gates in order. A Circuit is itself a Gate.
type Circuit struct {
	gates []Gate
}

// NewCircuit returns a circuit of the given gates. Nil gates are skipped.
func NewCircuit(gates ...Gate) *Circuit {
	c := &Circuit{gates: make([]Gate, 0, len(gates))}
	for _, g := range gates {
		if g != nil {
			c.gates = append(c.gates, g)
		}
	}

	return c
}

// Then returns a new circuit with g appended.
func (c *Circuit) Then(g Gate) *Circuit {
	return NewCircuit(append(append([]Gate(nil), c.gates...), g)...)
}

// Len returns the number of gates.
func (c *Circuit) Len() int { return len(c.gates) }

// Gates returns a copy of the gate list.
func (c *Circuit) Gates() []Gate { return append([]Gate(nil), c.gates...) }

// Name returns "Circuit".
func (c *Circuit) Name() string { return "Circuit" }

// Apply runs every gate in order. An empty circuit returns s unchanged.
// Errors: the first gate failure, tagged with its position and name.
func (c *Circuit) Apply(s State) (State, error) {
	if err := s.validate(); err != nil {
		return State{}, labErrorf("Circuit", err)
	}
	var err error
	for i, g := range c.gates {
		if s, err = g.Apply(s); err != nil {
			return State{}, fmt.Errorf("Circuit: gate %d (%s): %w", i, g.Name(), err)
		}
	}

	return s, nil
}

// Inverse returns the circuit of inverted gates in reverse order.
func (c *Circuit) Inverse() Gate {
	inv := &Circuit{gates: make([]Gate, len(c.gates))}
	for i, g := range c.gates {
		inv.gates[len(c.gates)-1-i] = g.Inverse()
	}

	return inv
}
