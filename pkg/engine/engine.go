// Package engine orchestrates one full simulation: parameter validation,
// model lookup, time-domain integration, frequency sweep, pole/zero and
// stability analysis, and assembly of the combined result record.
package engine

import (
	"math"

	"rlcsim/internal/consts"
	"rlcsim/internal/logging"
	"rlcsim/pkg/analysis"
	"rlcsim/pkg/circuit"
	"rlcsim/pkg/model"
	"rlcsim/pkg/solver"
)

// Simulate is the single entry point. Parameters must carry every name the
// topology declares, in base units; tEnd is always required and Freq for
// sine input. Any computational failure is surfaced on the result record,
// never as a partial result.
func Simulate(id string, p circuit.Params, kind circuit.WaveKind, log *logging.Logger) *Result {
	if log == nil {
		log = logging.Default
	}

	topo, err := circuit.Lookup(id)
	if err != nil {
		return errorResult(id, kind, "%v", err)
	}
	if !topo.SupportsInput(kind) {
		return errorResult(id, kind, "circuit %q does not support %s input", id, kind)
	}
	if err := p.Validate(topo.RequiredParams(kind)); err != nil {
		return errorResult(id, kind, "%v", err)
	}

	m, ok := model.Lookup(id)
	if !ok {
		return &Result{Status: StatusUnimplemented, CircuitID: id, Input: kind,
			Message: "no solver registered for this circuit yet"}
	}
	if err := m.Validate(p); err != nil {
		return errorResult(id, kind, "%v", err)
	}

	w, err := circuit.NewWaveform(kind, p)
	if err != nil {
		return errorResult(id, kind, "%v", err)
	}

	times, states, err := solver.Integrate(m.Derivative(w, p), m.InitialState(p), 0, p.Get("tEnd"), consts.TransientPoints)
	if err != nil {
		return errorResult(id, kind, "integration failed: %v", err)
	}

	series := &TimeSeries{Time: times, Traces: m.MapOutputs(times, states, w, p)}
	if bad, trace := firstNonFinite(series); bad {
		return errorResult(id, kind, "simulation produced a non-finite value in trace %q", trace)
	}

	res := &Result{
		Status:    StatusComplete,
		CircuitID: id,
		Input:     kind,
		Series:    series,
		Sweep:     analysis.EvaluateSweepDefault(topo.Transfer, p, log),
	}

	if topo.Order >= 2 {
		poles, zeros, stab, err := analysis.PoleZero(topo, p)
		if err != nil {
			return errorResult(id, kind, "pole analysis failed: %v", err)
		}
		res.Poles, res.Zeros, res.Stability = poles, zeros, stab
		res.SecondOrder = characterize(topo, p)
	} else {
		res.TimeConstant = timeConstant(topo, p)
		res.Stability = analysis.Stability{
			Verdict: analysis.Stable,
			Reason:  "first-order lag with a single real pole",
		}
	}

	res.Transfer = renderTransfer(topo, p)
	res.FinalValue, res.HasFinal = steadyState(topo, p, kind)
	return res
}

// GenerateLocus sweeps one component value and recomputes poles at each
// sample. Only topologies of order 2 or 3 have loci.
func GenerateLocus(id string, p circuit.Params, param string, min, max float64, samples int) (*analysis.Locus, error) {
	topo, err := circuit.Lookup(id)
	if err != nil {
		return nil, err
	}
	if samples <= 0 {
		samples = consts.LocusSamples
	}
	return analysis.GenerateLocus(topo, p, param, min, max, samples)
}

// CalculateMetrics post-processes one trace against a known final value.
func CalculateMetrics(ts *TimeSeries, trace string, final float64, kinds []circuit.MetricKind) (analysis.Metrics, error) {
	signal, err := ts.Trace(trace)
	if err != nil {
		return nil, err
	}
	return analysis.CalculateMetrics(ts.Time, signal, trace, final, kinds)
}

func firstNonFinite(ts *TimeSeries) (bool, string) {
	for name, tr := range ts.Traces {
		for _, v := range tr {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return true, name
			}
		}
	}
	return false, ""
}

// characterize derives damping ratio, neper and natural frequencies from the
// reduced R/L/C triple. Nil when the values make the 2nd-order form ill-posed.
func characterize(t *circuit.Topology, p circuit.Params) *SecondOrder {
	eq, err := circuit.Reduce(t, p)
	if err != nil || eq.L <= 0 || eq.C <= 0 {
		return nil
	}

	var alpha float64
	if t.Parallel {
		if eq.R <= 0 {
			return nil
		}
		alpha = 1 / (2 * eq.R * eq.C)
	} else {
		alpha = eq.R / (2 * eq.L)
	}
	omega0 := 1 / math.Sqrt(eq.L*eq.C)
	zeta := alpha / omega0

	so := &SecondOrder{
		Zeta:   zeta,
		Alpha:  alpha,
		Omega0: omega0,
		F0:     omega0 / (2 * math.Pi),
	}
	switch {
	case zeta == 0:
		so.Class = "undamped"
	case math.Abs(zeta-1) < 1e-9:
		so.Class = "critically damped"
	case zeta > 1:
		so.Class = "overdamped"
	default:
		so.Class = "underdamped"
	}
	return so
}

func timeConstant(t *circuit.Topology, p circuit.Params) float64 {
	switch t.Transfer {
	case circuit.TFRCLowPass:
		return p.Get("R") * p.Get("C")
	case circuit.TFRLLowPass:
		if r := p.Get("R"); r != 0 {
			return p.Get("L") / r
		}
	}
	return 0
}

// steadyState returns the final value of the primary trace. Only defined for
// step input.
func steadyState(t *circuit.Topology, p circuit.Params, kind circuit.WaveKind) (float64, bool) {
	if kind != circuit.WaveStep {
		return 0, false
	}
	v := p.Get("V")
	switch t.ID {
	case "rc_lowpass", "rc_discharge", "rlc_series", "rlc_series_ll":
		return v, true
	case "rl_energize", "rl_deenergize":
		if r := p.Get("R"); r != 0 {
			return v / r, true
		}
		return 0, false
	case "rlc_parallel", "rlc_parallel_cc":
		return v * p.Get("R"), true
	default:
		return 0, false
	}
}
