package circuit

import (
	"fmt"
	"sort"
)

// TransferTag selects the closed-form frequency response and pole/zero
// formulas for a topology. The set is closed; the frequency evaluator
// switches over it at exactly one point.
type TransferTag string

const (
	TFRCLowPass      TransferTag = "rc_lowpass"
	TFRLLowPass      TransferTag = "rl_lowpass"
	TFSeriesBandPass TransferTag = "series_bandpass"
	TFParallelRLC    TransferTag = "parallel_rlc"
	TFSeriesLL       TransferTag = "series_ll"
	TFParallelCC     TransferTag = "parallel_cc"
	TFLadder         TransferTag = "rlc_ladder" // no closed form registered
)

// MetricKind names a performance metric a topology supports.
type MetricKind string

const (
	MetricRiseTime     MetricKind = "rise_time"
	MetricSettlingTime MetricKind = "settling_time"
	MetricPeakValue    MetricKind = "peak_value"
	MetricPeakTime     MetricKind = "peak_time"
	MetricOvershoot    MetricKind = "overshoot"
)

// Topology is one fixed circuit configuration. Instances are defined once at
// process start and looked up by ID; they are never built from user input.
type Topology struct {
	ID       string
	Name     string
	Order    int // 1, 2, or 3 (3 always reduces to an equivalent 2nd-order pair)
	Params   []string
	Transfer TransferTag
	Traces   []string
	Primary  string // trace used for steady-state value and default metrics
	Inputs   []WaveKind
	Metrics  []MetricKind
	Parallel bool // parallel damping form (alpha = 1/(2RC))
	Current  bool // driven by a current source (V reinterpreted as amps)
}

// RequiredParams lists every parameter a simulation of this topology needs.
// tEnd is always required; sine input additionally requires Freq.
func (t *Topology) RequiredParams(kind WaveKind) []string {
	req := make([]string, 0, len(t.Params)+2)
	req = append(req, t.Params...)
	req = append(req, "tEnd")
	if kind == WaveSine {
		req = append(req, "Freq")
	}
	return req
}

// SupportsInput reports whether the topology accepts the waveform kind.
func (t *Topology) SupportsInput(kind WaveKind) bool {
	for _, k := range t.Inputs {
		if k == kind {
			return true
		}
	}
	return false
}

var registry = map[string]*Topology{}

func register(t *Topology) {
	if _, dup := registry[t.ID]; dup {
		panic(fmt.Sprintf("duplicate topology %q", t.ID))
	}
	registry[t.ID] = t
}

// Lookup returns the topology registered under id.
func Lookup(id string) (*Topology, error) {
	t, ok := registry[id]
	if !ok {
		return nil, fmt.Errorf("unknown circuit %q", id)
	}
	return t, nil
}

// All returns every registered topology, ordered by ID.
func All() []*Topology {
	out := make([]*Topology, 0, len(registry))
	for _, t := range registry {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
