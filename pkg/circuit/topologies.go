package circuit

var allInputs = []WaveKind{WaveStep, WaveRamp, WaveSine}

var firstOrderMetrics = []MetricKind{MetricRiseTime, MetricSettlingTime}

var secondOrderMetrics = []MetricKind{
	MetricRiseTime, MetricSettlingTime,
	MetricPeakValue, MetricPeakTime, MetricOvershoot,
}

func init() {
	register(&Topology{
		ID:       "rc_lowpass",
		Name:     "RC Low-Pass (Charging)",
		Order:    1,
		Params:   []string{"R", "C", "V"},
		Transfer: TFRCLowPass,
		Traces:   []string{"vc", "vr", "i"},
		Primary:  "vc",
		Inputs:   allInputs,
		Metrics:  firstOrderMetrics,
	})
	register(&Topology{
		ID:       "rc_discharge",
		Name:     "RC Discharge",
		Order:    1,
		Params:   []string{"R", "C", "V", "V0"},
		Transfer: TFRCLowPass,
		Traces:   []string{"vc", "vr", "i"},
		Primary:  "vc",
		Inputs:   []WaveKind{WaveStep},
		Metrics:  firstOrderMetrics,
	})
	register(&Topology{
		ID:       "rl_energize",
		Name:     "RL Energize",
		Order:    1,
		Params:   []string{"R", "L", "V"},
		Transfer: TFRLLowPass,
		Traces:   []string{"il", "vr", "vl"},
		Primary:  "il",
		Inputs:   allInputs,
		Metrics:  firstOrderMetrics,
	})
	register(&Topology{
		ID:       "rl_deenergize",
		Name:     "RL De-Energize",
		Order:    1,
		Params:   []string{"R", "L", "V", "I0"},
		Transfer: TFRLLowPass,
		Traces:   []string{"il", "vr", "vl"},
		Primary:  "il",
		Inputs:   []WaveKind{WaveStep},
		Metrics:  firstOrderMetrics,
	})
	register(&Topology{
		ID:       "rlc_series",
		Name:     "Series RLC",
		Order:    2,
		Params:   []string{"R", "L", "C", "V"},
		Transfer: TFSeriesBandPass,
		Traces:   []string{"vc", "il", "vr", "vl"},
		Primary:  "vc",
		Inputs:   allInputs,
		Metrics:  secondOrderMetrics,
	})
	register(&Topology{
		ID:       "rlc_parallel",
		Name:     "Parallel RLC",
		Order:    2,
		Params:   []string{"R", "L", "C", "V"},
		Transfer: TFParallelRLC,
		Traces:   []string{"vc", "il", "ir"},
		Primary:  "vc",
		Inputs:   allInputs,
		Metrics:  secondOrderMetrics,
		Parallel: true,
		Current:  true,
	})
	register(&Topology{
		ID:       "rlc_series_ll",
		Name:     "Series R-L1-L2-C",
		Order:    3,
		Params:   []string{"R", "L1", "L2", "C", "V"},
		Transfer: TFSeriesLL,
		Traces:   []string{"vc", "il", "vr"},
		Primary:  "vc",
		Inputs:   allInputs,
		Metrics:  secondOrderMetrics,
	})
	register(&Topology{
		ID:       "rlc_parallel_cc",
		Name:     "Parallel R-L-C1-C2",
		Order:    3,
		Params:   []string{"R", "L", "C1", "C2", "V"},
		Transfer: TFParallelCC,
		Traces:   []string{"vc", "il", "ir"},
		Primary:  "vc",
		Inputs:   allInputs,
		Metrics:  secondOrderMetrics,
		Parallel: true,
		Current:  true,
	})
	// Declared but without a registered state-space model. Simulating it
	// reports the unimplemented status rather than an error.
	register(&Topology{
		ID:       "rlc_ladder",
		Name:     "RLC Ladder (3rd order)",
		Order:    3,
		Params:   []string{"R", "L", "C", "V"},
		Transfer: TFLadder,
		Traces:   []string{"vc"},
		Primary:  "vc",
		Inputs:   []WaveKind{WaveStep},
		Metrics:  secondOrderMetrics,
	})
}
