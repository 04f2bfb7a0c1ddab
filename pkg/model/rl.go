package model

import (
	"fmt"

	"rlcsim/pkg/circuit"
	"rlcsim/pkg/solver"
)

// RL is the first-order series RL circuit. State: [il].
// diL/dt = (Vin(t) - iL*R) / L
type RL struct {
	Seeded bool // initial inductor current from I0
}

var _ Model = (*RL)(nil)

func (m *RL) Validate(p circuit.Params) error {
	if p.Get("L") == 0 {
		return fmt.Errorf("rl model: L must be non-zero")
	}
	return nil
}

func (m *RL) InitialState(p circuit.Params) []float64 {
	if m.Seeded {
		return []float64{p.Get("I0")}
	}
	return []float64{0}
}

func (m *RL) Derivative(w circuit.Waveform, p circuit.Params) solver.DerivFunc {
	r, l := p.Get("R"), p.Get("L")
	return func(t float64, y []float64, dy []float64) {
		dy[0] = (w.Value(t) - y[0]*r) / l
	}
}

func (m *RL) MapOutputs(times []float64, states [][]float64, w circuit.Waveform, p circuit.Params) map[string][]float64 {
	r := p.Get("R")
	il := make([]float64, len(times))
	vr := make([]float64, len(times))
	vl := make([]float64, len(times))
	for k, t := range times {
		il[k] = states[k][0]
		vr[k] = il[k] * r
		vl[k] = w.Value(t) - vr[k] // KVL
	}
	return map[string][]float64{"il": il, "vr": vr, "vl": vl}
}
