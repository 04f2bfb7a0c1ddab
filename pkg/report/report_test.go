package report

import (
	"bytes"
	"strings"
	"testing"

	"rlcsim/pkg/circuit"
	"rlcsim/pkg/engine"
)

func TestRenderFullReport(t *testing.T) {
	p := circuit.Params{"R": 50, "L": 0.01, "C": 1e-6, "V": 10, "tEnd": 0.005}

	res := engine.Simulate("rlc_series", p, circuit.WaveStep, nil)
	if res.Status != engine.StatusComplete {
		t.Fatalf("simulation failed: %s", res.Message)
	}

	locus, err := engine.GenerateLocus("rlc_series", p, "R", 1, 1000, 25)
	if err != nil {
		t.Fatalf("locus failed: %v", err)
	}
	metrics, err := engine.CalculateMetrics(res.Series, "vc", res.FinalValue,
		[]circuit.MetricKind{circuit.MetricOvershoot, circuit.MetricPeakValue})
	if err != nil {
		t.Fatalf("metrics failed: %v", err)
	}

	var buf bytes.Buffer
	if err := Render(&buf, res, locus, metrics); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	body := buf.String()
	for _, want := range []string{"echarts", "Transient Response", "Bode Magnitude", "Bode Phase", "Pole-Zero Map", "Root Locus"} {
		if !strings.Contains(body, want) {
			t.Errorf("report does not contain %q", want)
		}
	}
}

func TestRenderWithoutOptionalSections(t *testing.T) {
	p := circuit.Params{"R": 1000, "C": 1e-6, "V": 10, "tEnd": 0.005}

	res := engine.Simulate("rc_lowpass", p, circuit.WaveStep, nil)
	if res.Status != engine.StatusComplete {
		t.Fatalf("simulation failed: %s", res.Message)
	}

	var buf bytes.Buffer
	if err := Render(&buf, res, nil, nil); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if strings.Contains(buf.String(), "Root Locus") {
		t.Error("first-order report must not include a locus chart")
	}
}
