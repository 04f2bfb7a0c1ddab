package analysis

import (
	"fmt"
	"math"

	"rlcsim/internal/consts"
	"rlcsim/pkg/circuit"
)

// Complex is a point in the Laplace s-plane.
type Complex struct {
	Re float64 `json:"re"`
	Im float64 `json:"im"`
}

// Verdict classifies pole locations.
type Verdict string

const (
	Stable     Verdict = "stable"
	Unstable   Verdict = "unstable"
	Marginal   Verdict = "marginally stable"
	NotDefined Verdict = "n/a"
)

// Stability pairs a verdict with its justification.
type Stability struct {
	Verdict Verdict `json:"verdict"`
	Reason  string  `json:"reason"`
}

// CharacteristicPoles solves s^2 + b*s + c = 0. Root order is fixed so that
// locus branches keep their identity across adjacent sweep samples:
// (-b+sqrt(D))/2 first for real roots, positive imaginary part first for a
// conjugate pair.
func CharacteristicPoles(b, c float64) [2]Complex {
	disc := b*b - 4*c
	if disc >= 0 {
		sq := math.Sqrt(disc)
		return [2]Complex{
			{Re: (-b + sq) / 2},
			{Re: (-b - sq) / 2},
		}
	}
	sq := math.Sqrt(-disc)
	return [2]Complex{
		{Re: -b / 2, Im: sq / 2},
		{Re: -b / 2, Im: -sq / 2},
	}
}

// PoleZero computes poles, zeros, and the stability verdict for a 2nd-order
// or composite topology. Non-positive L or C makes the pole analysis
// ill-posed: no poles and an N/A verdict, not an error, since time- and
// frequency-domain results may still be meaningful.
func PoleZero(t *circuit.Topology, p circuit.Params) ([]Complex, []Complex, Stability, error) {
	eq, err := circuit.Reduce(t, p)
	if err != nil {
		return nil, nil, Stability{Verdict: NotDefined, Reason: err.Error()}, err
	}

	if eq.L <= 0 || eq.C <= 0 {
		return nil, nil, Stability{
			Verdict: NotDefined,
			Reason:  fmt.Sprintf("pole analysis requires positive L and C (L=%g, C=%g)", eq.L, eq.C),
		}, nil
	}
	if t.Parallel && eq.R <= 0 {
		return nil, nil, Stability{
			Verdict: NotDefined,
			Reason:  fmt.Sprintf("parallel damping requires positive R (R=%g)", eq.R),
		}, nil
	}

	var b float64
	if t.Parallel {
		b = 1 / (eq.R * eq.C)
	} else {
		b = eq.R / eq.L
	}
	c := 1 / (eq.L * eq.C)

	pair := CharacteristicPoles(b, c)
	poles := []Complex{pair[0], pair[1]}
	return poles, Zeros(t.Transfer), Classify(poles), nil
}

// Zeros is a lookup against the topology's transfer-function tag: a single
// zero at the origin when the numerator is proportional to s, otherwise none.
func Zeros(tag circuit.TransferTag) []Complex {
	switch tag {
	case circuit.TFSeriesBandPass, circuit.TFParallelRLC, circuit.TFParallelCC:
		return []Complex{{}}
	default:
		return nil
	}
}

// Classify derives the stability verdict from pole locations with tolerance
// consts.PoleAxisTol on the real part.
func Classify(poles []Complex) Stability {
	eps := consts.PoleAxisTol

	for _, p := range poles {
		if p.Re > eps {
			return Stability{Verdict: Unstable, Reason: "at least one pole with positive real part"}
		}
	}

	var axis []Complex
	for _, p := range poles {
		if math.Abs(p.Re) <= eps {
			axis = append(axis, p)
		}
	}
	if len(axis) > 0 {
		// A repeated pole on the imaginary axis grows without bound.
		// Conjugate pairs +-jw are distinct and merely oscillate.
		for i := range axis {
			for j := i + 1; j < len(axis); j++ {
				if math.Abs(axis[i].Im-axis[j].Im) <= eps {
					return Stability{Verdict: Unstable, Reason: "repeated poles on imaginary axis"}
				}
			}
		}
		return Stability{Verdict: Marginal, Reason: "poles on imaginary axis, oscillatory"}
	}

	return Stability{Verdict: Stable, Reason: "all poles in the left half-plane"}
}
