// Package plotpng renders simulation results to PNG files for the CLI.
package plotpng

import (
	"fmt"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"rlcsim/pkg/engine"
)

// SaveTransient writes every trace of the time series to one chart.
func SaveTransient(res *engine.Result, path string) error {
	if res.Series == nil {
		return fmt.Errorf("result has no time series to plot")
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Transient Response: %s", res.CircuitID)
	p.X.Label.Text = "t (s)"
	p.Y.Label.Text = "V / A"

	names := make([]string, 0, len(res.Series.Traces))
	for name := range res.Series.Traces {
		names = append(names, name)
	}
	sort.Strings(names)

	args := make([]any, 0, 2*len(names))
	for _, name := range names {
		args = append(args, name, toXYs(res.Series.Time, res.Series.Traces[name]))
	}
	if err := plotutil.AddLines(p, args...); err != nil {
		return fmt.Errorf("building transient plot: %v", err)
	}

	return p.Save(8*vg.Inch, 5*vg.Inch, path)
}

// SaveBode writes the magnitude response on a log frequency axis.
func SaveBode(res *engine.Result, path string) error {
	if res.Sweep == nil {
		return fmt.Errorf("result has no frequency sweep to plot")
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Bode Magnitude: %s", res.CircuitID)
	p.X.Label.Text = "f (Hz)"
	p.Y.Label.Text = "|H| (dB)"
	p.X.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}

	line, err := plotter.NewLine(toXYs(res.Sweep.Freqs, res.Sweep.MagDB))
	if err != nil {
		return fmt.Errorf("building bode plot: %v", err)
	}
	p.Add(line)
	p.Add(plotter.NewGrid())

	return p.Save(8*vg.Inch, 5*vg.Inch, path)
}

func toXYs(xs, ys []float64) plotter.XYs {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	pts := make(plotter.XYs, n)
	for i := range pts {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}
	return pts
}
