package solver

import (
	"math"
	"testing"
)

// TestRK4AgainstRCAnalytic integrates dVc/dt = (V - Vc)/(RC) and compares the
// trajectory against Vc(t) = V(1 - exp(-t/RC)).
func TestRK4AgainstRCAnalytic(t *testing.T) {
	const (
		v   = 10.0
		r   = 1000.0
		c   = 1e-6
		end = 0.005
	)
	rc := r * c

	f := func(tt float64, y, dy []float64) {
		dy[0] = (v - y[0]) / rc
	}

	times, states, err := Integrate(f, []float64{0}, 0, end, 1000)
	if err != nil {
		t.Fatalf("Integrate failed: %v", err)
	}
	if len(times) != 1000 || len(states) != 1000 {
		t.Fatalf("expected 1000 samples, got %d times and %d states", len(times), len(states))
	}

	// Check at the sample nearest t = RC (one time constant).
	h := end / 999.0
	idx := int(math.Round(rc / h))
	want := v * (1 - math.Exp(-times[idx]/rc))
	got := states[idx][0]
	if relErr := math.Abs(got-want) / want; relErr > 1e-3 {
		t.Errorf("Vc(t=%g) = %g, want %g (rel err %g)", times[idx], got, want, relErr)
	}

	// Whole-trajectory check at a looser tolerance.
	for i, tt := range times {
		want := v * (1 - math.Exp(-tt/rc))
		if math.Abs(states[i][0]-want) > 1e-2 {
			t.Fatalf("sample %d: Vc=%g, want %g", i, states[i][0], want)
		}
	}
}

func TestIntegrateTimeGrid(t *testing.T) {
	f := func(tt float64, y, dy []float64) { dy[0] = 0 }

	times, _, err := Integrate(f, []float64{1}, 0, 1, 101)
	if err != nil {
		t.Fatalf("Integrate failed: %v", err)
	}

	h := 1.0 / 100.0
	for i := 1; i < len(times); i++ {
		if times[i] <= times[i-1] {
			t.Fatalf("time grid not strictly increasing at %d", i)
		}
		if math.Abs((times[i]-times[i-1])-h) > 1e-12 {
			t.Fatalf("step at %d is %g, want %g", i, times[i]-times[i-1], h)
		}
	}
	if times[len(times)-1] != 1.0 {
		t.Errorf("final time %g, want 1.0", times[len(times)-1])
	}
}

func TestIntegrateRejectsBadArguments(t *testing.T) {
	f := func(tt float64, y, dy []float64) { dy[0] = 0 }

	if _, _, err := Integrate(f, []float64{0}, 0, 1, 1); err == nil {
		t.Error("expected error for points < 2")
	}
	if _, _, err := Integrate(f, []float64{0}, 1, 1, 10); err == nil {
		t.Error("expected error for tEnd == tStart")
	}
	if _, _, err := Integrate(f, []float64{0}, 2, 1, 10); err == nil {
		t.Error("expected error for tEnd < tStart")
	}
}

// TestRK4TimeDependence exercises a derivative that depends on t directly:
// dy/dt = cos(t) integrates to sin(t).
func TestRK4TimeDependence(t *testing.T) {
	f := func(tt float64, y, dy []float64) {
		dy[0] = math.Cos(tt)
	}
	times, states, err := Integrate(f, []float64{0}, 0, math.Pi, 1000)
	if err != nil {
		t.Fatalf("Integrate failed: %v", err)
	}
	for i, tt := range times {
		if math.Abs(states[i][0]-math.Sin(tt)) > 1e-6 {
			t.Fatalf("y(%g) = %g, want %g", tt, states[i][0], math.Sin(tt))
		}
	}
}
