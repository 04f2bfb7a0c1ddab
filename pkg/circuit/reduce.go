package circuit

import "fmt"

// Equivalent is the reduced (R, L, C) triple of a 2nd-order or composite
// topology. Composite "3rd order" circuits reduce algebraically before any
// downstream component sees them, so the reduction happens here exactly once.
type Equivalent struct {
	R, L, C float64
}

// Reduce computes the equivalent series or parallel R/L/C values for a
// topology of order 2 or 3. Series inductances add; series capacitances
// combine via C1*C2/(C1+C2).
func Reduce(t *Topology, p Params) (Equivalent, error) {
	switch t.ID {
	case "rlc_series", "rlc_parallel", "rlc_ladder":
		return Equivalent{R: p.Get("R"), L: p.Get("L"), C: p.Get("C")}, nil
	case "rlc_series_ll":
		return Equivalent{R: p.Get("R"), L: p.Get("L1") + p.Get("L2"), C: p.Get("C")}, nil
	case "rlc_parallel_cc":
		c1, c2 := p.Get("C1"), p.Get("C2")
		if c1+c2 == 0 {
			return Equivalent{}, fmt.Errorf("cannot combine capacitors: C1+C2 = 0")
		}
		return Equivalent{R: p.Get("R"), L: p.Get("L"), C: c1 * c2 / (c1 + c2)}, nil
	default:
		return Equivalent{}, fmt.Errorf("topology %q has no second-order equivalent", t.ID)
	}
}
