package model

import (
	"fmt"

	"rlcsim/pkg/circuit"
	"rlcsim/pkg/solver"
)

// RC is the first-order series RC circuit. State: [vc].
// dVc/dt = (Vin(t) - Vc) / (R*C)
type RC struct {
	Seeded bool // initial capacitor voltage from V0
}

var _ Model = (*RC)(nil)

func (m *RC) Validate(p circuit.Params) error {
	if p.Get("R")*p.Get("C") == 0 {
		return fmt.Errorf("rc model: R*C must be non-zero (R=%g, C=%g)", p.Get("R"), p.Get("C"))
	}
	return nil
}

func (m *RC) InitialState(p circuit.Params) []float64 {
	if m.Seeded {
		return []float64{p.Get("V0")}
	}
	return []float64{0}
}

func (m *RC) Derivative(w circuit.Waveform, p circuit.Params) solver.DerivFunc {
	rc := p.Get("R") * p.Get("C")
	return func(t float64, y []float64, dy []float64) {
		dy[0] = (w.Value(t) - y[0]) / rc
	}
}

func (m *RC) MapOutputs(times []float64, states [][]float64, w circuit.Waveform, p circuit.Params) map[string][]float64 {
	r := p.Get("R")
	vc := make([]float64, len(times))
	vr := make([]float64, len(times))
	i := make([]float64, len(times))
	for k, t := range times {
		vc[k] = states[k][0]
		vr[k] = w.Value(t) - vc[k] // KVL
		i[k] = vr[k] / r
	}
	return map[string][]float64{"vc": vc, "vr": vr, "i": i}
}
