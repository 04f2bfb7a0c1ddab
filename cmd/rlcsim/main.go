package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"

	"rlcsim/internal/logging"
	"rlcsim/pkg/analysis"
	"rlcsim/pkg/circuit"
	"rlcsim/pkg/engine"
	"rlcsim/pkg/plotpng"
	"rlcsim/pkg/report"
	"rlcsim/pkg/scenario"
	"rlcsim/pkg/util"
	"rlcsim/pkg/web"
)

var (
	flagCSV   = flag.String("csv", "", "write result arrays as CSV to this file")
	flagHTML  = flag.String("html", "", "write echarts HTML report to this file")
	flagPNG   = flag.String("png", "", "write PNG plots with this path prefix")
	flagLocus = flag.String("locus", "", "root locus sweep, e.g. R:1:1000 or R:1:1000:50")
	flagTable = flag.String("table", "", "print the full sample table for this trace")
	flagServe = flag.String("serve", "", "serve the HTTP API on this address instead of running a scenario")
	flagVerb  = flag.Bool("v", false, "verbose logging")
)

func main() {
	flag.Parse()

	logger := logging.New(logging.LevelWarn, "rlcsim ")
	if *flagVerb {
		logger.SetLevel(logging.LevelDebug)
	}

	if *flagServe != "" {
		srv := web.NewServer(*flagServe, logger)
		log.Fatal(srv.ListenAndServe())
	}

	if flag.NArg() != 1 {
		log.Fatal("Usage: rlcsim [flags] <scenario.json>")
	}

	sc, err := scenario.Load(flag.Arg(0))
	if err != nil {
		log.Fatalf("Error loading scenario: %v", err)
	}

	res := engine.Simulate(sc.CircuitID, sc.ParamSet(), sc.Wave(), logger)
	printResult(res)

	var locus *analysis.Locus
	if *flagLocus != "" {
		locus = runLocus(sc, *flagLocus)
	}

	if res.Status != engine.StatusComplete {
		os.Exit(1)
	}

	metrics := runMetrics(sc, res)
	printMetrics(metrics)

	if *flagTable != "" {
		printTable(res, *flagTable)
	}
	if *flagCSV != "" {
		writeCSV(res, *flagCSV)
	}
	if *flagHTML != "" {
		writeHTML(res, locus, metrics, *flagHTML)
	}
	if *flagPNG != "" {
		writePNGs(res, *flagPNG)
	}
}

func printResult(res *engine.Result) {
	fmt.Println("\nSimulation Results:")
	fmt.Println("===================")
	fmt.Printf("Circuit: %s, input: %s, status: %s\n", res.CircuitID, res.Input, res.Status)

	if res.Status != engine.StatusComplete {
		fmt.Printf("Message: %s\n", res.Message)
		return
	}

	if res.Transfer != "" {
		fmt.Printf("Transfer function: %s\n", res.Transfer)
	}
	if res.TimeConstant > 0 {
		fmt.Printf("Time constant: %s\n", util.FormatValueFactor(res.TimeConstant, "s"))
	}
	if so := res.SecondOrder; so != nil {
		fmt.Printf("Damping: zeta=%.4g (%s), f0=%s\n", so.Zeta, so.Class, util.FormatFrequency(so.F0))
	}
	for i, p := range res.Poles {
		fmt.Printf("Pole %d: %.6g %+.6gj\n", i+1, p.Re, p.Im)
	}
	for i, z := range res.Zeros {
		fmt.Printf("Zero %d: %.6g %+.6gj\n", i+1, z.Re, z.Im)
	}
	fmt.Printf("Stability: %s (%s)\n", res.Stability.Verdict, res.Stability.Reason)
	if res.HasFinal {
		fmt.Printf("Steady-state value: %s\n", util.FormatCoeff(res.FinalValue))
	}
}

func runMetrics(sc *scenario.Scenario, res *engine.Result) analysis.Metrics {
	if !res.HasFinal {
		return nil
	}
	topo, err := circuit.Lookup(sc.CircuitID)
	if err != nil {
		return nil
	}
	metrics, err := engine.CalculateMetrics(res.Series, topo.Primary, res.FinalValue, topo.Metrics)
	if err != nil {
		log.Printf("Metrics failed: %v", err)
		return nil
	}
	return metrics
}

func printMetrics(metrics analysis.Metrics) {
	if len(metrics) == 0 {
		return
	}
	fmt.Println("\nPerformance Metrics:")
	kinds := make([]string, 0, len(metrics))
	for kind := range metrics {
		kinds = append(kinds, string(kind))
	}
	sort.Strings(kinds)
	for _, kind := range kinds {
		mv := metrics[circuit.MetricKind(kind)]
		fmt.Printf("%-15s %s %s\n", kind, util.FormatCoeff(mv.Value), mv.Unit)
	}
}

func printTable(res *engine.Result, trace string) {
	signal, err := res.Series.Trace(trace)
	if err != nil {
		log.Fatalf("Error printing table: %v", err)
	}

	unit := "V"
	if strings.HasPrefix(trace, "i") {
		unit = "A"
	}

	fmt.Printf("\nTransient samples (%d points):\n", len(res.Series.Time))
	fmt.Println("Time        " + trace)
	fmt.Println("------------------------")
	for i, t := range res.Series.Time {
		fmt.Printf("%9s  %s=%s\n", util.FormatValueFactor(t, "s"), trace, util.FormatValueFactor(signal[i], unit))
	}
}

// runLocus parses param:min:max[:samples] and generates the locus.
func runLocus(sc *scenario.Scenario, spec string) *analysis.Locus {
	parts := strings.Split(spec, ":")
	if len(parts) != 3 && len(parts) != 4 {
		log.Fatalf("Invalid locus spec %q, want param:min:max[:samples]", spec)
	}
	min, err1 := strconv.ParseFloat(parts[1], 64)
	max, err2 := strconv.ParseFloat(parts[2], 64)
	if err1 != nil || err2 != nil {
		log.Fatalf("Invalid locus range in %q", spec)
	}
	samples := 0
	if len(parts) == 4 {
		samples, err1 = strconv.Atoi(parts[3])
		if err1 != nil {
			log.Fatalf("Invalid locus sample count in %q", spec)
		}
	}

	locus, err := engine.GenerateLocus(sc.CircuitID, sc.ParamSet(), parts[0], min, max, samples)
	if err != nil {
		log.Fatalf("Locus generation failed: %v", err)
	}

	fmt.Printf("\nRoot locus: %s swept over [%g, %g], %d samples per branch\n",
		locus.Param, min, max, len(locus.Values))
	return locus
}

func writeCSV(res *engine.Result, path string) {
	f, err := os.Create(path)
	if err != nil {
		log.Fatalf("Error creating CSV file: %v", err)
	}
	defer f.Close()
	if err := scenario.WriteCSV(f, res); err != nil {
		log.Fatalf("Error writing CSV: %v", err)
	}
	fmt.Printf("Wrote %s\n", path)
}

func writeHTML(res *engine.Result, locus *analysis.Locus, metrics analysis.Metrics, path string) {
	f, err := os.Create(path)
	if err != nil {
		log.Fatalf("Error creating report file: %v", err)
	}
	defer f.Close()
	if err := report.Render(f, res, locus, metrics); err != nil {
		log.Fatalf("Error rendering report: %v", err)
	}
	fmt.Printf("Wrote %s\n", path)
}

func writePNGs(res *engine.Result, prefix string) {
	if err := plotpng.SaveTransient(res, prefix+"_transient.png"); err != nil {
		log.Fatalf("Error writing transient plot: %v", err)
	}
	if err := plotpng.SaveBode(res, prefix+"_bode.png"); err != nil {
		log.Fatalf("Error writing bode plot: %v", err)
	}
	fmt.Printf("Wrote %s_transient.png, %s_bode.png\n", prefix, prefix)
}
