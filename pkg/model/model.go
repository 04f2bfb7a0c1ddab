// Package model holds the state-space models of the supported topologies.
// Each model supplies the circuit equations as a derivative function, an
// initial-state provider, and an output mapping from raw integrator state to
// the named physical traces the topology promises.
package model

import (
	"rlcsim/pkg/circuit"
	"rlcsim/pkg/solver"
)

type Model interface {
	// Validate rejects parameter combinations that would divide by zero in
	// the circuit equations, before any integration starts.
	Validate(p circuit.Params) error
	// InitialState returns the state vector at t=0. Zero for driven circuits,
	// seeded from V0/I0 for discharge and de-energize scenarios.
	InitialState(p circuit.Params) []float64
	// Derivative closes over the waveform and parameters and returns the
	// state-space equations for the integrator.
	Derivative(w circuit.Waveform, p circuit.Params) solver.DerivFunc
	// MapOutputs derives every named trace from the raw state trajectory.
	MapOutputs(times []float64, states [][]float64, w circuit.Waveform, p circuit.Params) map[string][]float64
}

var registry = map[string]Model{}

func register(id string, m Model) {
	registry[id] = m
}

// Lookup returns the model registered for a topology ID. A topology without
// a model is reported as unimplemented by the router, not as an error.
func Lookup(id string) (Model, bool) {
	m, ok := registry[id]
	return m, ok
}

func init() {
	register("rc_lowpass", &RC{})
	register("rc_discharge", &RC{Seeded: true})
	register("rl_energize", &RL{})
	register("rl_deenergize", &RL{Seeded: true})
	register("rlc_series", &SeriesRLC{})
	register("rlc_parallel", &ParallelRLC{})
	register("rlc_series_ll", &Composite{ID: "rlc_series_ll", Inner: &SeriesRLC{}})
	register("rlc_parallel_cc", &Composite{ID: "rlc_parallel_cc", Inner: &ParallelRLC{}})
	// rlc_ladder intentionally has no model.
}
