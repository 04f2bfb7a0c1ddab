package model

import (
	"fmt"

	"rlcsim/pkg/circuit"
	"rlcsim/pkg/solver"
)

// Composite is a "3rd order" topology that reduces algebraically to a 2-state
// model. The reduction runs once through circuit.Reduce and the reduced R/L/C
// triple is handed to the inner 2nd-order model.
type Composite struct {
	ID    string
	Inner Model
}

var _ Model = (*Composite)(nil)

func (m *Composite) reduced(p circuit.Params) (circuit.Params, error) {
	t, err := circuit.Lookup(m.ID)
	if err != nil {
		return nil, err
	}
	eq, err := circuit.Reduce(t, p)
	if err != nil {
		return nil, err
	}
	rp := p.Clone()
	rp["R"], rp["L"], rp["C"] = eq.R, eq.L, eq.C
	return rp, nil
}

func (m *Composite) Validate(p circuit.Params) error {
	rp, err := m.reduced(p)
	if err != nil {
		return fmt.Errorf("composite model %s: %v", m.ID, err)
	}
	return m.Inner.Validate(rp)
}

func (m *Composite) InitialState(p circuit.Params) []float64 {
	return m.Inner.InitialState(p)
}

func (m *Composite) Derivative(w circuit.Waveform, p circuit.Params) solver.DerivFunc {
	rp, err := m.reduced(p)
	if err != nil {
		// Validate runs first; an unreduced parameter set cannot reach here.
		return func(t float64, y []float64, dy []float64) {
			for i := range dy {
				dy[i] = 0
			}
		}
	}
	return m.Inner.Derivative(w, rp)
}

func (m *Composite) MapOutputs(times []float64, states [][]float64, w circuit.Waveform, p circuit.Params) map[string][]float64 {
	rp, err := m.reduced(p)
	if err != nil {
		return map[string][]float64{}
	}
	out := m.Inner.MapOutputs(times, states, w, rp)

	// The composite topology promises a subset of the inner model's traces.
	t, lerr := circuit.Lookup(m.ID)
	if lerr != nil {
		return out
	}
	kept := make(map[string][]float64, len(t.Traces))
	for _, name := range t.Traces {
		if tr, ok := out[name]; ok {
			kept[name] = tr
		}
	}
	return kept
}
