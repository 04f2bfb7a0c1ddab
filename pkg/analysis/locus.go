package analysis

import (
	"fmt"

	"rlcsim/pkg/circuit"

	"gonum.org/v1/gonum/floats"
)

// Locus traces the two pole branches while one component value sweeps across
// a range. Branch indexing is consistent across samples so callers can draw
// continuous curves with start/end markers.
type Locus struct {
	Param    string       `json:"param"`
	Values   []float64    `json:"values"`
	Branches [2][]Complex `json:"branches"`
}

// GenerateLocus re-invokes the pole analyzer at evenly spaced values of the
// swept parameter, holding all other parameters fixed. Degenerate samples
// (non-positive L or C) produce placeholder origin points so every branch
// keeps the full sample count.
func GenerateLocus(t *circuit.Topology, p circuit.Params, param string, min, max float64, samples int) (*Locus, error) {
	if t.Order < 2 {
		return nil, fmt.Errorf("root locus requires a 2nd-order topology, %q is order %d", t.ID, t.Order)
	}
	if samples < 2 {
		return nil, fmt.Errorf("root locus requires at least 2 samples, got %d", samples)
	}
	if !sweepable(t, param) {
		return nil, fmt.Errorf("parameter %q is not a component of topology %q", param, t.ID)
	}

	lc := &Locus{
		Param:  param,
		Values: floats.Span(make([]float64, samples), min, max),
	}
	lc.Branches[0] = make([]Complex, samples)
	lc.Branches[1] = make([]Complex, samples)

	sp := p.Clone()
	for i, v := range lc.Values {
		sp[param] = v
		poles, _, stab, err := PoleZero(t, sp)
		if err != nil || stab.Verdict == NotDefined || len(poles) != 2 {
			// Placeholder keeps the sequence length stable.
			continue
		}
		lc.Branches[0][i] = poles[0]
		lc.Branches[1][i] = poles[1]
	}
	return lc, nil
}

func sweepable(t *circuit.Topology, param string) bool {
	for _, name := range t.Params {
		if name == param && name != "V" {
			return true
		}
	}
	return false
}
