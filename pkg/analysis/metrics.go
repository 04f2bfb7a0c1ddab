package analysis

import (
	"fmt"
	"math"
	"strings"

	"rlcsim/internal/consts"
	"rlcsim/pkg/circuit"

	"gonum.org/v1/gonum/floats"
)

// MetricValue is a computed metric with its display unit.
type MetricValue struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// Metrics maps the requested metric kinds to their values. Kinds that are
// undefined for the given signal (no crossing, near-zero final value, no peak
// beyond final) are simply absent from the map.
type Metrics map[circuit.MetricKind]MetricValue

// CalculateMetrics post-processes one trace of a time series against a known
// steady-state value. times and signal must be parallel sequences.
func CalculateMetrics(times, signal []float64, trace string, final float64, kinds []circuit.MetricKind) (Metrics, error) {
	if len(times) != len(signal) {
		return nil, fmt.Errorf("metrics: time and %q sequences differ in length (%d vs %d)", trace, len(times), len(signal))
	}
	if len(times) == 0 {
		return nil, fmt.Errorf("metrics: empty time series")
	}

	out := make(Metrics, len(kinds))
	unit := traceUnit(trace)

	peakIdx := floats.MaxIdx(signal) // first occurrence wins on ties
	peak := signal[peakIdx]

	for _, kind := range kinds {
		switch kind {
		case circuit.MetricPeakValue:
			out[kind] = MetricValue{Value: peak, Unit: unit}
		case circuit.MetricPeakTime:
			out[kind] = MetricValue{Value: times[peakIdx], Unit: "s"}
		case circuit.MetricOvershoot:
			if math.Abs(final) < consts.OvershootGate {
				continue
			}
			os := (peak - final) / final * 100.0
			if os <= 0 {
				continue // no peak beyond final: overshoot undefined
			}
			out[kind] = MetricValue{Value: os, Unit: "%"}
		case circuit.MetricRiseTime:
			if rt, ok := riseTime(times, signal, final); ok {
				out[kind] = MetricValue{Value: rt, Unit: "s"}
			}
		case circuit.MetricSettlingTime:
			if st, ok := settlingTime(times, signal, final); ok {
				out[kind] = MetricValue{Value: st, Unit: "s"}
			}
		default:
			return nil, fmt.Errorf("metrics: unknown metric kind %q", kind)
		}
	}
	return out, nil
}

// riseTime is the 10%-to-90% crossing interval. Crossings are detected
// scanning time-ascending; a falling signal uses the symmetric case.
func riseTime(times, signal []float64, final float64) (float64, bool) {
	rising := final >= signal[0]
	t10, ok10 := crossing(times, signal, 0.1*final, rising)
	t90, ok90 := crossing(times, signal, 0.9*final, rising)
	if !ok10 || !ok90 {
		return 0, false
	}
	return t90 - t10, true
}

// crossing returns the time of the first index where the signal transitions
// from below to at/above the threshold (falling: above to at/below).
func crossing(times, signal []float64, threshold float64, rising bool) (float64, bool) {
	for i := 1; i < len(signal); i++ {
		if rising && signal[i-1] < threshold && signal[i] >= threshold {
			return times[i], true
		}
		if !rising && signal[i-1] > threshold && signal[i] <= threshold {
			return times[i], true
		}
	}
	return 0, false
}

// settlingTime scans backward for the last sample still outside the +-2%
// band around final and reports the next sample after it: the earliest time
// after which the signal stays inside the band for the rest of the record.
func settlingTime(times, signal []float64, final float64) (float64, bool) {
	band := consts.SettleBand * math.Abs(final)
	last := -1
	for i := len(signal) - 1; i >= 0; i-- {
		if math.Abs(signal[i]-final) > band {
			last = i
			break
		}
	}
	switch {
	case last < 0:
		return times[0], true // inside the band from the start
	case last == len(signal)-1:
		return 0, false // never settles within the record
	default:
		return times[last+1], true
	}
}

// traceUnit derives the display unit from the trace naming convention:
// v-prefixed traces are volts, i-prefixed are amps.
func traceUnit(trace string) string {
	switch {
	case strings.HasPrefix(trace, "v"):
		return "V"
	case strings.HasPrefix(trace, "i"):
		return "A"
	default:
		return ""
	}
}
