package circuit

import (
	"fmt"
	"math"
)

// WaveKind selects the excitation function shape.
type WaveKind string

const (
	WaveStep WaveKind = "step"
	WaveRamp WaveKind = "ramp"
	WaveSine WaveKind = "sine"
)

// Waveform is the excitation applied to a circuit. The same function drives
// voltage inputs and, for current-driven topologies, the source current.
type Waveform struct {
	Kind      WaveKind
	Amplitude float64 // V for step/sine, slope V/s for ramp
	Freq      float64 // Hz, sine only
}

// NewWaveform derives a waveform from a parameter set. Amplitude comes from V;
// sine additionally requires Freq.
func NewWaveform(kind WaveKind, p Params) (Waveform, error) {
	w := Waveform{Kind: kind, Amplitude: p.Get("V")}
	switch kind {
	case WaveStep, WaveRamp:
	case WaveSine:
		if !p.Has("Freq") {
			return Waveform{}, fmt.Errorf("sine input requires parameter %q", "Freq")
		}
		w.Freq = p.Get("Freq")
	default:
		return Waveform{}, fmt.Errorf("unknown input waveform %q", kind)
	}
	return w, nil
}

// Value returns the excitation at time t.
func (w Waveform) Value(t float64) float64 {
	switch w.Kind {
	case WaveStep:
		return w.Amplitude
	case WaveRamp:
		return w.Amplitude * t
	case WaveSine:
		return w.Amplitude * math.Sin(2.0*math.Pi*w.Freq*t)
	default:
		return 0
	}
}
