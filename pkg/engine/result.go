package engine

import (
	"fmt"

	"rlcsim/pkg/analysis"
	"rlcsim/pkg/circuit"
)

// Status tags the outcome of a simulation run.
type Status string

const (
	StatusComplete      Status = "complete"
	StatusError         Status = "error"
	StatusUnimplemented Status = "unimplemented"
)

// TimeSeries is the state trajectory mapped to named physical traces over a
// monotonically increasing fixed-length time grid.
type TimeSeries struct {
	Time   []float64            `json:"time"`
	Traces map[string][]float64 `json:"traces"`
}

// Trace returns the named output sequence.
func (ts *TimeSeries) Trace(name string) ([]float64, error) {
	tr, ok := ts.Traces[name]
	if !ok {
		return nil, fmt.Errorf("no trace %q in time series", name)
	}
	return tr, nil
}

// SecondOrder carries the standard 2nd-order characterization derived from
// the reduced R/L/C values.
type SecondOrder struct {
	Zeta   float64 `json:"zeta"`
	Alpha  float64 `json:"alpha"`  // neper frequency, 1/s
	Omega0 float64 `json:"omega0"` // natural angular frequency, rad/s
	F0     float64 `json:"f0"`     // natural frequency, Hz
	Class  string  `json:"class"`  // overdamped / critically damped / underdamped / undamped
}

// Result is the aggregate record of one simulation run. It is created fresh
// per run and never mutated after being returned.
type Result struct {
	Status    Status           `json:"status"`
	Message   string           `json:"message,omitempty"`
	CircuitID string           `json:"circuitId"`
	Input     circuit.WaveKind `json:"inputType"`

	Series *TimeSeries     `json:"series,omitempty"`
	Sweep  *analysis.Sweep `json:"sweep,omitempty"`

	Poles     []analysis.Complex `json:"poles,omitempty"`
	Zeros     []analysis.Complex `json:"zeros,omitempty"`
	Stability analysis.Stability `json:"stability"`

	Transfer     string       `json:"transfer,omitempty"`
	SecondOrder  *SecondOrder `json:"secondOrder,omitempty"`
	TimeConstant float64      `json:"timeConstant,omitempty"`

	FinalValue float64 `json:"finalValue"`
	HasFinal   bool    `json:"hasFinal"`
}

func errorResult(id string, kind circuit.WaveKind, format string, args ...any) *Result {
	return &Result{
		Status:    StatusError,
		Message:   fmt.Sprintf(format, args...),
		CircuitID: id,
		Input:     kind,
	}
}
