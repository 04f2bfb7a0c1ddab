// Package scenario persists and restores simulation setups as flat JSON
// documents and exports simulation results as tabular text. It is the file
// front end around the engine; the engine itself never touches the
// filesystem.
package scenario

import (
	"encoding/json"
	"fmt"
	"os"

	"rlcsim/pkg/circuit"
)

// Scenario is the on-disk form of a topology choice, input waveform kind,
// and parameter set in base units.
type Scenario struct {
	CircuitID string             `json:"circuitId"`
	InputType string             `json:"inputType"`
	Params    map[string]float64 `json:"params"`
}

// Parse decodes and sanity-checks a scenario document.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing scenario: %v", err)
	}
	if s.CircuitID == "" {
		return nil, fmt.Errorf("scenario is missing circuitId")
	}
	if s.InputType == "" {
		return nil, fmt.Errorf("scenario is missing inputType")
	}
	if s.Params == nil {
		return nil, fmt.Errorf("scenario is missing params")
	}
	return &s, nil
}

// Load reads a scenario JSON file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file: %v", err)
	}
	return Parse(data)
}

// Save writes the scenario as indented JSON.
func (s *Scenario) Save(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding scenario: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing scenario file: %v", err)
	}
	return nil
}

// ParamSet converts the stored parameter map to the engine's type.
func (s *Scenario) ParamSet() circuit.Params {
	p := make(circuit.Params, len(s.Params))
	for k, v := range s.Params {
		p[k] = v
	}
	return p
}

// Wave returns the stored input waveform kind.
func (s *Scenario) Wave() circuit.WaveKind {
	return circuit.WaveKind(s.InputType)
}
