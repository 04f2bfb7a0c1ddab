// Package analysis holds the algebraic side of the engine: closed-form
// frequency response, pole/zero and stability classification, root loci, and
// the time-series performance metrics.
package analysis

import (
	"math"
	"math/cmplx"

	"rlcsim/internal/consts"
	"rlcsim/internal/logging"
	"rlcsim/pkg/circuit"
)

// Sweep is a log-spaced frequency sweep with parallel magnitude and phase
// sequences. It is computed analytically and has no relation to the
// time-domain integration.
type Sweep struct {
	Freqs    []float64 `json:"freqs"`
	MagDB    []float64 `json:"magDb"`
	PhaseDeg []float64 `json:"phaseDeg"`
}

// EvaluateSweep evaluates the closed-form transfer function selected by tag
// over a log-uniform frequency grid. An unimplemented tag yields an all-zero
// sweep with a logged warning so callers can still render empty plots.
func EvaluateSweep(tag circuit.TransferTag, p circuit.Params, fStart, fStop float64, points int, log *logging.Logger) *Sweep {
	sw := &Sweep{
		Freqs:    generateFrequencyPoints(fStart, fStop, points),
		MagDB:    make([]float64, points),
		PhaseDeg: make([]float64, points),
	}

	h, ok := transferFunc(tag, p)
	if !ok {
		if log == nil {
			log = logging.Default
		}
		log.Warnf("no frequency response registered for transfer tag %q; returning zero sweep", tag)
		return sw
	}

	for i, f := range sw.Freqs {
		omega := 2.0 * math.Pi * f
		v := h(omega)
		mag := cmplx.Abs(v)
		if mag > 0 {
			sw.MagDB[i] = 20.0 * math.Log10(mag)
		}
		sw.PhaseDeg[i] = math.Atan2(imag(v), real(v)) * 180.0 / math.Pi
	}
	return sw
}

// EvaluateSweepDefault runs the standard 500-point, 1 Hz - 1 MHz sweep.
func EvaluateSweepDefault(tag circuit.TransferTag, p circuit.Params, log *logging.Logger) *Sweep {
	return EvaluateSweep(tag, p, consts.SweepStartHz, consts.SweepStopHz, consts.SweepPoints, log)
}

func generateFrequencyPoints(fStart, fStop float64, points int) []float64 {
	freqs := make([]float64, points)
	logStart := math.Log10(fStart)
	logStop := math.Log10(fStop)
	step := (logStop - logStart) / float64(points-1)
	for i := 0; i < points; i++ {
		freqs[i] = math.Pow(10, logStart+float64(i)*step)
	}
	return freqs
}

// transferFunc returns H(jw) for the tag, or false when the tag has no
// closed form registered.
func transferFunc(tag circuit.TransferTag, p circuit.Params) (func(omega float64) complex128, bool) {
	r, l, c := p.Get("R"), p.Get("L"), p.Get("C")

	switch tag {
	case circuit.TFRCLowPass:
		// H = 1 / (1 + jwRC)
		return func(omega float64) complex128 {
			return cdiv(1, complex(1, omega*r*c))
		}, true

	case circuit.TFRLLowPass:
		// H = R / (R + jwL)
		return func(omega float64) complex128 {
			return cdiv(complex(r, 0), complex(r, omega*l))
		}, true

	case circuit.TFSeriesBandPass:
		// Vr/Vin: H = jwRC / (1 - w^2 LC + jwRC)
		return func(omega float64) complex128 {
			num := complex(0, omega*r*c)
			den := complex(1-omega*omega*l*c, omega*r*c)
			return cdiv(num, den)
		}, true

	case circuit.TFParallelRLC:
		// Impedance of the parallel admittance Y = 1/R + jwC + 1/(jwL)
		return parallelImpedance(r, l, c), true

	case circuit.TFSeriesLL:
		eq, err := reduceTag("rlc_series_ll", p)
		if err != nil {
			return nil, false
		}
		// Vc/Vin low-pass: H = (1/LC) / ((jw)^2 + jwR/L + 1/LC)
		return func(omega float64) complex128 {
			w0sq := 1 / (eq.L * eq.C)
			den := complex(w0sq-omega*omega, omega*eq.R/eq.L)
			return cdiv(complex(w0sq, 0), den)
		}, true

	case circuit.TFParallelCC:
		eq, err := reduceTag("rlc_parallel_cc", p)
		if err != nil {
			return nil, false
		}
		return parallelImpedance(eq.R, eq.L, eq.C), true

	default:
		return nil, false
	}
}

func parallelImpedance(r, l, c float64) func(omega float64) complex128 {
	return func(omega float64) complex128 {
		if r == 0 || l == 0 || omega == 0 {
			return 0
		}
		y := complex(1/r, omega*c-1/(omega*l))
		return cdiv(1, y)
	}
}

func reduceTag(id string, p circuit.Params) (circuit.Equivalent, error) {
	t, err := circuit.Lookup(id)
	if err != nil {
		return circuit.Equivalent{}, err
	}
	return circuit.Reduce(t, p)
}

// cdiv divides via conjugate-multiply with an explicit zero-denominator
// guard returning (0,0).
func cdiv(n, d complex128) complex128 {
	den := real(d)*real(d) + imag(d)*imag(d)
	if den == 0 {
		return 0
	}
	re := (real(n)*real(d) + imag(n)*imag(d)) / den
	im := (imag(n)*real(d) - real(n)*imag(d)) / den
	return complex(re, im)
}
