package scenario

import (
	"encoding/csv"
	"io"
	"sort"
	"strconv"

	"rlcsim/pkg/engine"
)

// WriteCSV serializes every array-valued field of a result to one table:
// columns are the arrays, rows are sample indices, missing values are blank.
// The time grid and the frequency sweep have different lengths, so the
// shorter columns simply run out.
func WriteCSV(w io.Writer, res *engine.Result) error {
	cols, header := resultColumns(res)

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}

	rows := 0
	for _, col := range cols {
		if len(col) > rows {
			rows = len(col)
		}
	}

	record := make([]string, len(cols))
	for i := 0; i < rows; i++ {
		for j, col := range cols {
			if i < len(col) {
				record[j] = strconv.FormatFloat(col[i], 'g', -1, 64)
			} else {
				record[j] = ""
			}
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func resultColumns(res *engine.Result) ([][]float64, []string) {
	var cols [][]float64
	var header []string

	if res.Series != nil {
		header = append(header, "t")
		cols = append(cols, res.Series.Time)

		names := make([]string, 0, len(res.Series.Traces))
		for name := range res.Series.Traces {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			header = append(header, name)
			cols = append(cols, res.Series.Traces[name])
		}
	}

	if res.Sweep != nil {
		header = append(header, "freq", "mag_db", "phase_deg")
		cols = append(cols, res.Sweep.Freqs, res.Sweep.MagDB, res.Sweep.PhaseDeg)
	}

	return cols, header
}
