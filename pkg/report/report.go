// Package report renders a simulation result as a self-contained HTML page
// of echarts plots: transient traces, Bode magnitude and phase, the pole-zero
// map, and optionally a root locus.
package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"rlcsim/pkg/analysis"
	"rlcsim/pkg/circuit"
	"rlcsim/pkg/engine"
	"rlcsim/pkg/util"
)

// Render writes the full report page. locus and metrics may be nil.
func Render(w io.Writer, res *engine.Result, locus *analysis.Locus, metrics analysis.Metrics) error {
	page := components.NewPage()
	page.SetPageTitle("RLC Workbench Report")

	if res.Series != nil {
		page.AddCharts(transientChart(res, metrics))
	}
	if res.Sweep != nil {
		page.AddCharts(bodeChart(res.Sweep, "Bode Magnitude", "dB", res.Sweep.MagDB))
		page.AddCharts(bodeChart(res.Sweep, "Bode Phase", "deg", res.Sweep.PhaseDeg))
	}
	if len(res.Poles) > 0 {
		page.AddCharts(poleZeroChart(res))
	}
	if locus != nil {
		page.AddCharts(locusChart(locus))
	}

	return page.Render(w)
}

func transientChart(res *engine.Result, metrics analysis.Metrics) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: types.ThemeWesteros}),
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("Transient Response: %s (%s input)", res.CircuitID, res.Input),
			Subtitle: transientSubtitle(res, metrics),
		}),
		charts.WithLegendOpts(opts.Legend{Type: "scroll", Orient: "vertical", Right: "10", Top: "20"}),
		charts.WithYAxisOpts(opts.YAxis{Scale: opts.Bool(true)}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "inside", Start: 0, End: 100, XAxisIndex: []int{0}}),
	)

	xs := make([]string, len(res.Series.Time))
	for i, t := range res.Series.Time {
		xs[i] = util.FormatValueFactor(t, "s")
	}
	line.SetXAxis(xs)

	names := make([]string, 0, len(res.Series.Traces))
	for name := range res.Series.Traces {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		tr := res.Series.Traces[name]
		data := make([]opts.LineData, len(tr))
		for i, v := range tr {
			data[i] = opts.LineData{Value: v}
		}
		line.AddSeries(name, data)
	}
	return line
}

func transientSubtitle(res *engine.Result, metrics analysis.Metrics) string {
	sub := res.Transfer
	if res.Stability.Verdict != "" {
		sub += fmt.Sprintf("  |  %s (%s)", res.Stability.Verdict, res.Stability.Reason)
	}
	if res.HasFinal {
		sub += fmt.Sprintf("  |  final = %s", util.FormatCoeff(res.FinalValue))
	}
	for _, kind := range []circuit.MetricKind{
		circuit.MetricRiseTime, circuit.MetricSettlingTime,
		circuit.MetricPeakValue, circuit.MetricPeakTime, circuit.MetricOvershoot,
	} {
		if mv, ok := metrics[kind]; ok {
			sub += fmt.Sprintf("  |  %s = %s %s", kind, util.FormatCoeff(mv.Value), mv.Unit)
		}
	}
	return sub
}

func bodeChart(sw *analysis.Sweep, title, unit string, ys []float64) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: types.ThemeWesteros}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: "log-spaced sweep, 1 Hz - 1 MHz"}),
		charts.WithYAxisOpts(opts.YAxis{Name: unit, Scale: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{SplitNumber: 20}),
	)

	xs := make([]string, len(sw.Freqs))
	for i, f := range sw.Freqs {
		xs[i] = util.FormatFrequency(f)
	}
	data := make([]opts.LineData, len(ys))
	for i, v := range ys {
		data[i] = opts.LineData{Value: v}
	}
	line.SetXAxis(xs).AddSeries(unit, data)
	return line
}

func poleZeroChart(res *engine.Result) *charts.Scatter {
	sc := charts.NewScatter()
	sc.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: types.ThemeWesteros}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Pole-Zero Map",
			Subtitle: fmt.Sprintf("%s: %s", res.Stability.Verdict, res.Stability.Reason),
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Re", Type: "value", Scale: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Im", Scale: opts.Bool(true)}),
	)
	sc.AddSeries("poles", scatterData(res.Poles))
	if len(res.Zeros) > 0 {
		sc.AddSeries("zeros", scatterData(res.Zeros))
	}
	return sc
}

func locusChart(locus *analysis.Locus) *charts.Scatter {
	sc := charts.NewScatter()
	sc.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: types.ThemeWesteros}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Root Locus",
			Subtitle: fmt.Sprintf("sweeping %s over [%g, %g]", locus.Param, locus.Values[0], locus.Values[len(locus.Values)-1]),
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Re", Type: "value", Scale: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Im", Scale: opts.Bool(true)}),
	)
	sc.AddSeries("branch 1", scatterData(locus.Branches[0]))
	sc.AddSeries("branch 2", scatterData(locus.Branches[1]))
	return sc
}

func scatterData(points []analysis.Complex) []opts.ScatterData {
	data := make([]opts.ScatterData, len(points))
	for i, p := range points {
		data[i] = opts.ScatterData{Value: []float64{p.Re, p.Im}}
	}
	return data
}
