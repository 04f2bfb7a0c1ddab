// Package solver provides a fixed-step explicit RK4 integrator over a vector
// ODE. It knows nothing about circuits; accuracy is entirely a function of the
// point count relative to the system's time constants.
package solver

import "fmt"

// DerivFunc computes the state derivative at time t, writing into dy.
// It may depend arbitrarily on t (sine/ramp drives close over their waveform).
type DerivFunc func(t float64, y []float64, dy []float64)

// Integrate advances y0 from t0 to t1 with classical 4th-order Runge-Kutta at
// a fixed step h = (t1-t0)/(points-1). It produces exactly points samples and
// never resamples or adapts. The returned state slices are fresh copies.
func Integrate(f DerivFunc, y0 []float64, t0, t1 float64, points int) ([]float64, [][]float64, error) {
	if points < 2 {
		return nil, nil, fmt.Errorf("integrate: need at least 2 points, got %d", points)
	}
	if t1 <= t0 {
		return nil, nil, fmt.Errorf("integrate: end time %g must be after start time %g", t1, t0)
	}

	n := len(y0)
	h := (t1 - t0) / float64(points-1)

	times := make([]float64, points)
	states := make([][]float64, points)

	y := make([]float64, n)
	copy(y, y0)

	k1 := make([]float64, n)
	k2 := make([]float64, n)
	k3 := make([]float64, n)
	k4 := make([]float64, n)
	tmp := make([]float64, n)

	for i := 0; i < points; i++ {
		t := t0 + float64(i)*h
		times[i] = t
		snapshot := make([]float64, n)
		copy(snapshot, y)
		states[i] = snapshot

		if i == points-1 {
			break
		}

		f(t, y, k1)
		for j := 0; j < n; j++ {
			tmp[j] = y[j] + 0.5*h*k1[j]
		}
		f(t+0.5*h, tmp, k2)
		for j := 0; j < n; j++ {
			tmp[j] = y[j] + 0.5*h*k2[j]
		}
		f(t+0.5*h, tmp, k3)
		for j := 0; j < n; j++ {
			tmp[j] = y[j] + h*k3[j]
		}
		f(t+h, tmp, k4)

		for j := 0; j < n; j++ {
			y[j] += h / 6.0 * (k1[j] + 2.0*k2[j] + 2.0*k3[j] + k4[j])
		}
	}

	return times, states, nil
}
