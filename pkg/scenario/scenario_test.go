package scenario

import (
	"bytes"
	"encoding/csv"
	"path/filepath"
	"strings"
	"testing"

	"rlcsim/pkg/analysis"
	"rlcsim/pkg/circuit"
	"rlcsim/pkg/engine"
)

func TestParse(t *testing.T) {
	s, err := Parse([]byte(`{
		"circuitId": "rlc_series",
		"inputType": "step",
		"params": {"R": 50, "L": 0.01, "C": 1e-6, "V": 10, "tEnd": 0.005}
	}`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if s.CircuitID != "rlc_series" || s.Wave() != circuit.WaveStep {
		t.Errorf("parsed %q/%q", s.CircuitID, s.InputType)
	}
	if s.ParamSet().Get("C") != 1e-6 {
		t.Errorf("C = %g, want 1e-6", s.ParamSet().Get("C"))
	}
}

func TestParseRejectsIncompleteDocuments(t *testing.T) {
	cases := []string{
		`not json`,
		`{"inputType": "step", "params": {}}`,
		`{"circuitId": "rc_lowpass", "params": {}}`,
		`{"circuitId": "rc_lowpass", "inputType": "step"}`,
	}
	for _, doc := range cases {
		if _, err := Parse([]byte(doc)); err == nil {
			t.Errorf("expected error for %q", doc)
		}
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.json")

	in := &Scenario{
		CircuitID: "rc_lowpass",
		InputType: "sine",
		Params:    map[string]float64{"R": 1000, "C": 1e-6, "V": 10, "Freq": 50, "tEnd": 0.02},
	}
	if err := in.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	out, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if out.CircuitID != in.CircuitID || out.InputType != in.InputType {
		t.Errorf("round trip changed identity: %+v", out)
	}
	for k, v := range in.Params {
		if out.Params[k] != v {
			t.Errorf("param %s: %g, want %g", k, out.Params[k], v)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("expected error for a missing file")
	}
}

func TestWriteCSVLayout(t *testing.T) {
	res := &engine.Result{
		Status: engine.StatusComplete,
		Series: &engine.TimeSeries{
			Time: []float64{0, 1, 2},
			Traces: map[string][]float64{
				"vc": {0, 5, 8},
				"i":  {0.01, 0.005, 0.002},
			},
		},
		Sweep: &analysis.Sweep{
			Freqs:    []float64{1, 10},
			MagDB:    []float64{0, -3},
			PhaseDeg: []float64{0, -45},
		},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, res); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	rows, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}

	wantHeader := []string{"t", "i", "vc", "freq", "mag_db", "phase_deg"}
	if len(rows[0]) != len(wantHeader) {
		t.Fatalf("header %v, want %v", rows[0], wantHeader)
	}
	for j, name := range wantHeader {
		if rows[0][j] != name {
			t.Errorf("column %d is %q, want %q", j, rows[0][j], name)
		}
	}

	// 3 time samples vs 2 sweep samples: 3 data rows, sweep cells blank in
	// the last one.
	if len(rows) != 4 {
		t.Fatalf("got %d rows, want header + 3", len(rows))
	}
	last := rows[3]
	if last[0] != "2" || last[2] != "8" {
		t.Errorf("last time row wrong: %v", last)
	}
	if last[3] != "" || last[4] != "" || last[5] != "" {
		t.Errorf("sweep cells past the end must be blank: %v", last)
	}
	if rows[1][3] != "1" || rows[2][4] != "-3" {
		t.Errorf("sweep columns misplaced: %v / %v", rows[1], rows[2])
	}
}

func TestWriteCSVSweepOnly(t *testing.T) {
	res := &engine.Result{
		Sweep: &analysis.Sweep{
			Freqs:    []float64{1},
			MagDB:    []float64{0},
			PhaseDeg: []float64{0},
		},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, res); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}
	rows, _ := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	if len(rows) != 2 || len(rows[0]) != 3 {
		t.Errorf("sweep-only layout wrong: %v", rows)
	}
}
