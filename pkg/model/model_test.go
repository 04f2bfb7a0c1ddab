package model

import (
	"math"
	"testing"

	"rlcsim/pkg/circuit"
)

func mustWave(t *testing.T, kind circuit.WaveKind, p circuit.Params) circuit.Waveform {
	t.Helper()
	w, err := circuit.NewWaveform(kind, p)
	if err != nil {
		t.Fatalf("NewWaveform: %v", err)
	}
	return w
}

func TestRegistryCoversEveryModeledTopology(t *testing.T) {
	for _, id := range []string{
		"rc_lowpass", "rc_discharge", "rl_energize", "rl_deenergize",
		"rlc_series", "rlc_parallel", "rlc_series_ll", "rlc_parallel_cc",
	} {
		if _, ok := Lookup(id); !ok {
			t.Errorf("no model registered for %q", id)
		}
	}
	if _, ok := Lookup("rlc_ladder"); ok {
		t.Error("rlc_ladder must stay unimplemented")
	}
}

func TestSeededInitialStates(t *testing.T) {
	p := circuit.Params{"V0": 5, "I0": 0.25}

	m, _ := Lookup("rc_discharge")
	if s := m.InitialState(p); s[0] != 5 {
		t.Errorf("rc_discharge initial state %g, want V0=5", s[0])
	}
	m, _ = Lookup("rl_deenergize")
	if s := m.InitialState(p); s[0] != 0.25 {
		t.Errorf("rl_deenergize initial state %g, want I0=0.25", s[0])
	}
	m, _ = Lookup("rc_lowpass")
	if s := m.InitialState(p); s[0] != 0 {
		t.Errorf("driven circuit must start at rest, got %g", s[0])
	}
}

func TestModelValidation(t *testing.T) {
	cases := []struct {
		id string
		p  circuit.Params
	}{
		{"rc_lowpass", circuit.Params{"R": 0, "C": 1e-6}},
		{"rc_lowpass", circuit.Params{"R": 1000, "C": 0}},
		{"rl_energize", circuit.Params{"R": 10, "L": 0}},
		{"rlc_series", circuit.Params{"R": 50, "L": 0, "C": 1e-6}},
		{"rlc_series", circuit.Params{"R": 50, "L": 0.01, "C": 0}},
		{"rlc_parallel", circuit.Params{"R": 0, "L": 0.01, "C": 1e-6}},
		{"rlc_parallel_cc", circuit.Params{"R": 100, "L": 0.01, "C1": 1e-6, "C2": -1e-6}},
	}
	for _, tc := range cases {
		m, ok := Lookup(tc.id)
		if !ok {
			t.Fatalf("no model for %q", tc.id)
		}
		if err := m.Validate(tc.p); err == nil {
			t.Errorf("%s: expected validation error for %v", tc.id, tc.p)
		}
	}
}

func TestSeriesRLCDerivative(t *testing.T) {
	m, _ := Lookup("rlc_series")
	p := circuit.Params{"R": 50, "L": 0.01, "C": 1e-6, "V": 10}
	w := mustWave(t, circuit.WaveStep, p)

	f := m.Derivative(w, p)
	y := []float64{2, 0.1} // vc=2V, il=0.1A
	dy := make([]float64, 2)
	f(0, y, dy)

	if want := 0.1 / 1e-6; dy[0] != want {
		t.Errorf("dVc/dt = %g, want iL/C = %g", dy[0], want)
	}
	if want := (10 - 2 - 0.1*50) / 0.01; dy[1] != want {
		t.Errorf("diL/dt = %g, want %g", dy[1], want)
	}
}

func TestParallelRLCDerivative(t *testing.T) {
	m, _ := Lookup("rlc_parallel")
	p := circuit.Params{"R": 100, "L": 0.01, "C": 1e-6, "V": 0.1}
	w := mustWave(t, circuit.WaveStep, p)

	f := m.Derivative(w, p)
	y := []float64{2, 0.01} // vc=2V, il=10mA
	dy := make([]float64, 2)
	f(0, y, dy)

	if want := (0.1 - 2.0/100 - 0.01) / 1e-6; dy[0] != want {
		t.Errorf("dVc/dt = %g, want %g", dy[0], want)
	}
	if want := 2.0 / 0.01; dy[1] != want {
		t.Errorf("diL/dt = %g, want Vc/L = %g", dy[1], want)
	}
}

// TestCompositeDerivativeMatchesReduced: the series-LL model must produce the
// same derivatives as a plain series model evaluated at Leq = L1+L2.
func TestCompositeDerivativeMatchesReduced(t *testing.T) {
	comp, _ := Lookup("rlc_series_ll")
	plain, _ := Lookup("rlc_series")

	cp := circuit.Params{"R": 50, "L1": 0.004, "L2": 0.006, "C": 1e-6, "V": 10}
	pp := circuit.Params{"R": 50, "L": 0.01, "C": 1e-6, "V": 10}
	w := mustWave(t, circuit.WaveStep, cp)

	fc := comp.Derivative(w, cp)
	fp := plain.Derivative(w, pp)

	y := []float64{3, 0.05}
	dc := make([]float64, 2)
	dp := make([]float64, 2)
	fc(0, y, dc)
	fp(0, y, dp)

	for i := range dc {
		if math.Abs(dc[i]-dp[i]) > 1e-12*math.Abs(dp[i]) {
			t.Errorf("state %d: composite %g vs reduced %g", i, dc[i], dp[i])
		}
	}
}

func TestCompositeOutputsKeepDeclaredTraces(t *testing.T) {
	m, _ := Lookup("rlc_parallel_cc")
	p := circuit.Params{"R": 100, "L": 0.01, "C1": 2e-6, "C2": 2e-6, "V": 0.1}
	w := mustWave(t, circuit.WaveStep, p)

	topo, _ := circuit.Lookup("rlc_parallel_cc")
	times := []float64{0, 1e-4}
	states := [][]float64{{0, 0}, {1, 0.001}}

	out := m.MapOutputs(times, states, w, p)
	if len(out) != len(topo.Traces) {
		t.Fatalf("got %d traces, want %d", len(out), len(topo.Traces))
	}
	for _, name := range topo.Traces {
		if _, ok := out[name]; !ok {
			t.Errorf("missing declared trace %q", name)
		}
	}
}

// TestRCOutputsSatisfyKVL: vc + vr must equal the source at every sample.
func TestRCOutputsSatisfyKVL(t *testing.T) {
	m, _ := Lookup("rc_lowpass")
	p := circuit.Params{"R": 1000, "C": 1e-6, "V": 10}
	w := mustWave(t, circuit.WaveStep, p)

	times := []float64{0, 1e-3, 2e-3}
	states := [][]float64{{0}, {6.3}, {8.6}}

	out := m.MapOutputs(times, states, w, p)
	for k := range times {
		if math.Abs(out["vc"][k]+out["vr"][k]-10) > 1e-12 {
			t.Errorf("sample %d: vc+vr = %g, want 10", k, out["vc"][k]+out["vr"][k])
		}
		if math.Abs(out["i"][k]-out["vr"][k]/1000) > 1e-15 {
			t.Errorf("sample %d: i inconsistent with vr/R", k)
		}
	}
}

func TestRLOutputsSatisfyKVL(t *testing.T) {
	m, _ := Lookup("rl_energize")
	p := circuit.Params{"R": 10, "L": 0.01, "V": 10}
	w := mustWave(t, circuit.WaveStep, p)

	times := []float64{0, 1e-3}
	states := [][]float64{{0}, {0.63}}

	out := m.MapOutputs(times, states, w, p)
	for k := range times {
		if math.Abs(out["vr"][k]+out["vl"][k]-10) > 1e-12 {
			t.Errorf("sample %d: vr+vl = %g, want 10", k, out["vr"][k]+out["vl"][k])
		}
	}
}
