package engine

import (
	"fmt"

	"rlcsim/pkg/circuit"
	"rlcsim/pkg/util"
)

// renderTransfer builds the human-readable H(s) expression for the topology,
// with coefficients formatted to avoid exponential notation for typical
// magnitudes.
func renderTransfer(t *circuit.Topology, p circuit.Params) string {
	switch t.Transfer {
	case circuit.TFRCLowPass:
		tau := p.Get("R") * p.Get("C")
		return fmt.Sprintf("H(s) = 1 / (%s s + 1)", util.FormatCoeff(tau))

	case circuit.TFRLLowPass:
		r := p.Get("R")
		if r == 0 {
			return "H(s) = 1 / (s L/R), R = 0"
		}
		tau := p.Get("L") / r
		return fmt.Sprintf("H(s) = 1 / (%s s + 1)", util.FormatCoeff(tau))

	case circuit.TFSeriesBandPass, circuit.TFSeriesLL, circuit.TFParallelRLC, circuit.TFParallelCC:
		eq, err := circuit.Reduce(t, p)
		if err != nil || eq.L == 0 || eq.C == 0 {
			return ""
		}
		c := 1 / (eq.L * eq.C)
		switch t.Transfer {
		case circuit.TFSeriesBandPass:
			b := eq.R / eq.L
			return fmt.Sprintf("H(s) = %s s / (s^2 + %s s + %s)",
				util.FormatCoeff(b), util.FormatCoeff(b), util.FormatCoeff(c))
		case circuit.TFSeriesLL:
			b := eq.R / eq.L
			return fmt.Sprintf("H(s) = %s / (s^2 + %s s + %s)",
				util.FormatCoeff(c), util.FormatCoeff(b), util.FormatCoeff(c))
		default: // parallel impedance forms
			if eq.R == 0 {
				return ""
			}
			b := 1 / (eq.R * eq.C)
			num := 1 / eq.C
			return fmt.Sprintf("H(s) = %s s / (s^2 + %s s + %s)",
				util.FormatCoeff(num), util.FormatCoeff(b), util.FormatCoeff(c))
		}

	default:
		return ""
	}
}
