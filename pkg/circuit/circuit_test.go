package circuit

import (
	"math"
	"strings"
	"testing"
)

func TestValidateMissingParameter(t *testing.T) {
	p := Params{"R": 1000, "V": 10}
	err := p.Validate([]string{"R", "C", "V"})
	if err == nil {
		t.Fatal("expected error for missing C")
	}
	if !strings.Contains(err.Error(), `"C"`) {
		t.Errorf("error %q does not name the offending parameter", err)
	}
}

func TestValidateNonFinite(t *testing.T) {
	p := Params{"R": math.NaN()}
	if err := p.Validate([]string{"R"}); err == nil {
		t.Error("expected error for NaN parameter")
	}
	p["R"] = math.Inf(1)
	if err := p.Validate([]string{"R"}); err == nil {
		t.Error("expected error for Inf parameter")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	p := Params{"R": 1}
	q := p.Clone()
	q["R"] = 2
	if p.Get("R") != 1 {
		t.Error("mutating the clone changed the original")
	}
}

func TestWaveformValues(t *testing.T) {
	p := Params{"V": 10, "Freq": 50}

	step, err := NewWaveform(WaveStep, p)
	if err != nil {
		t.Fatalf("step: %v", err)
	}
	if step.Value(0) != 10 || step.Value(1) != 10 {
		t.Error("step input must be constant V for t >= 0")
	}

	ramp, err := NewWaveform(WaveRamp, p)
	if err != nil {
		t.Fatalf("ramp: %v", err)
	}
	if ramp.Value(0.5) != 5 {
		t.Errorf("ramp at t=0.5: got %g, want 5", ramp.Value(0.5))
	}

	sine, err := NewWaveform(WaveSine, p)
	if err != nil {
		t.Fatalf("sine: %v", err)
	}
	want := 10 * math.Sin(2*math.Pi*50*0.003)
	if math.Abs(sine.Value(0.003)-want) > 1e-12 {
		t.Errorf("sine at t=0.003: got %g, want %g", sine.Value(0.003), want)
	}
}

func TestSineRequiresFreq(t *testing.T) {
	if _, err := NewWaveform(WaveSine, Params{"V": 10}); err == nil {
		t.Error("expected error for sine input without Freq")
	}
}

func TestUnknownWaveKind(t *testing.T) {
	if _, err := NewWaveform(WaveKind("square"), Params{"V": 1}); err == nil {
		t.Error("expected error for unknown waveform kind")
	}
}

func TestLookup(t *testing.T) {
	topo, err := Lookup("rlc_series")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if topo.Order != 2 {
		t.Errorf("rlc_series order %d, want 2", topo.Order)
	}
	if _, err := Lookup("nonsense"); err == nil {
		t.Error("expected error for unknown circuit")
	}
}

func TestRequiredParamsAlwaysIncludeTEnd(t *testing.T) {
	topo, _ := Lookup("rc_lowpass")

	req := topo.RequiredParams(WaveStep)
	if !contains(req, "tEnd") {
		t.Error("tEnd must always be required")
	}
	if contains(req, "Freq") {
		t.Error("Freq must not be required for step input")
	}

	req = topo.RequiredParams(WaveSine)
	if !contains(req, "Freq") {
		t.Error("Freq must be required for sine input")
	}
}

func TestReduceSeriesInductors(t *testing.T) {
	topo, _ := Lookup("rlc_series_ll")
	eq, err := Reduce(topo, Params{"R": 100, "L1": 0.01, "L2": 0.02, "C": 1e-6})
	if err != nil {
		t.Fatalf("Reduce failed: %v", err)
	}
	if eq.L != 0.03 {
		t.Errorf("Leq = %g, want 0.03", eq.L)
	}
	if eq.R != 100 || eq.C != 1e-6 {
		t.Errorf("R/C must pass through unchanged, got %+v", eq)
	}
}

func TestReduceSeriesCapacitors(t *testing.T) {
	topo, _ := Lookup("rlc_parallel_cc")
	eq, err := Reduce(topo, Params{"R": 100, "L": 0.01, "C1": 2e-6, "C2": 2e-6})
	if err != nil {
		t.Fatalf("Reduce failed: %v", err)
	}
	if math.Abs(eq.C-1e-6) > 1e-18 {
		t.Errorf("Ceq = %g, want 1e-6", eq.C)
	}
}

func TestReduceCapacitorGuard(t *testing.T) {
	topo, _ := Lookup("rlc_parallel_cc")
	if _, err := Reduce(topo, Params{"R": 100, "L": 0.01, "C1": 1e-6, "C2": -1e-6}); err == nil {
		t.Error("expected error when C1+C2 = 0")
	}
}

func TestReduceFirstOrderRejected(t *testing.T) {
	topo, _ := Lookup("rc_lowpass")
	if _, err := Reduce(topo, Params{"R": 1, "C": 1}); err == nil {
		t.Error("expected error reducing a first-order topology")
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
