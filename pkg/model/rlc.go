package model

import (
	"fmt"

	"rlcsim/pkg/circuit"
	"rlcsim/pkg/solver"
)

// SeriesRLC is the driven series RLC circuit. State: [vc, il].
// dVc/dt = iL/C
// diL/dt = (Vin(t) - Vc - iL*R) / L
type SeriesRLC struct{}

var _ Model = (*SeriesRLC)(nil)

func (m *SeriesRLC) Validate(p circuit.Params) error {
	if p.Get("L") == 0 {
		return fmt.Errorf("series rlc model: L must be non-zero")
	}
	if p.Get("C") == 0 {
		return fmt.Errorf("series rlc model: C must be non-zero")
	}
	return nil
}

func (m *SeriesRLC) InitialState(p circuit.Params) []float64 {
	return []float64{0, 0}
}

func (m *SeriesRLC) Derivative(w circuit.Waveform, p circuit.Params) solver.DerivFunc {
	r, l, c := p.Get("R"), p.Get("L"), p.Get("C")
	return func(t float64, y []float64, dy []float64) {
		vc, il := y[0], y[1]
		dy[0] = il / c
		dy[1] = (w.Value(t) - vc - il*r) / l
	}
}

func (m *SeriesRLC) MapOutputs(times []float64, states [][]float64, w circuit.Waveform, p circuit.Params) map[string][]float64 {
	r := p.Get("R")
	vc := make([]float64, len(times))
	il := make([]float64, len(times))
	vr := make([]float64, len(times))
	vl := make([]float64, len(times))
	for k, t := range times {
		vc[k] = states[k][0]
		il[k] = states[k][1]
		vr[k] = il[k] * r
		vl[k] = w.Value(t) - vc[k] - vr[k] // KVL
	}
	return map[string][]float64{"vc": vc, "il": il, "vr": vr, "vl": vl}
}

// ParallelRLC is the current-driven parallel RLC circuit. State: [vc, il].
// dVc/dt = (Iin(t) - Vc/R - iL) / C
// diL/dt = Vc/L
type ParallelRLC struct{}

var _ Model = (*ParallelRLC)(nil)

func (m *ParallelRLC) Validate(p circuit.Params) error {
	if p.Get("R") == 0 {
		return fmt.Errorf("parallel rlc model: R must be non-zero")
	}
	if p.Get("L") == 0 {
		return fmt.Errorf("parallel rlc model: L must be non-zero")
	}
	if p.Get("C") == 0 {
		return fmt.Errorf("parallel rlc model: C must be non-zero")
	}
	return nil
}

func (m *ParallelRLC) InitialState(p circuit.Params) []float64 {
	return []float64{0, 0}
}

func (m *ParallelRLC) Derivative(w circuit.Waveform, p circuit.Params) solver.DerivFunc {
	r, l, c := p.Get("R"), p.Get("L"), p.Get("C")
	return func(t float64, y []float64, dy []float64) {
		vc, il := y[0], y[1]
		dy[0] = (w.Value(t) - vc/r - il) / c
		dy[1] = vc / l
	}
}

func (m *ParallelRLC) MapOutputs(times []float64, states [][]float64, w circuit.Waveform, p circuit.Params) map[string][]float64 {
	r := p.Get("R")
	vc := make([]float64, len(times))
	il := make([]float64, len(times))
	ir := make([]float64, len(times))
	for k := range times {
		vc[k] = states[k][0]
		il[k] = states[k][1]
		ir[k] = vc[k] / r
	}
	return map[string][]float64{"vc": vc, "il": il, "ir": ir}
}
