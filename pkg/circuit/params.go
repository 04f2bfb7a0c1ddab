package circuit

import (
	"fmt"
	"math"
)

// Params maps a parameter name to its value in base physical units
// (ohms, henries, farads, volts, amps, seconds, hertz).
type Params map[string]float64

func (p Params) Get(name string) float64 {
	return p[name]
}

func (p Params) Has(name string) bool {
	_, ok := p[name]
	return ok
}

// Clone returns an independent copy. Sweeps mutate the copy, never the original.
func (p Params) Clone() Params {
	out := make(Params, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Validate checks that every required parameter is present and finite.
// Absence or NaN/Inf is a validation error naming the offending parameter,
// never a silent default.
func (p Params) Validate(required []string) error {
	for _, name := range required {
		v, ok := p[name]
		if !ok {
			return fmt.Errorf("missing required parameter %q", name)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("parameter %q is not a finite number", name)
		}
	}
	return nil
}
