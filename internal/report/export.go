package report

import (
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/compostops/vermicast/internal/analysis"
)

// MonteCarloSummaryRow is the flat export record of an uncertainty run.
type MonteCarloSummaryRow struct {
	RunID    string  `csv:"run_id"`
	Samples  int     `csv:"samples"`
	Seed     uint64  `csv:"seed"`
	Mean     float64 `csv:"mean_tco2eq"`
	Median   float64 `csv:"median_tco2eq"`
	StdDev   float64 `csv:"stddev_tco2eq"`
	CI90Low  float64 `csv:"ci90_low_tco2eq"`
	CI90High float64 `csv:"ci90_high_tco2eq"`
	CI95Low  float64 `csv:"ci95_low_tco2eq"`
	CI95High float64 `csv:"ci95_high_tco2eq"`
}

// NewMonteCarloSummaryRow flattens a Monte Carlo result for export.
func NewMonteCarloSummaryRow(runID string, seed uint64, r analysis.MonteCarloResult) MonteCarloSummaryRow {
	return MonteCarloSummaryRow{
		RunID:    runID,
		Samples:  len(r.Outcomes),
		Seed:     seed,
		Mean:     r.Mean,
		Median:   r.Median,
		StdDev:   r.StdDev,
		CI90Low:  r.CI90.Low,
		CI90High: r.CI90.High,
		CI95Low:  r.CI95.Low,
		CI95High: r.CI95.High,
	}
}

// OutcomeRow is a single Monte Carlo draw in the per-sample export.
type OutcomeRow struct {
	Sample int     `csv:"sample"`
	TCO2eq float64 `csv:"avoided_tco2eq"`
}

// OutcomeRows numbers the raw outcome array for export, preserving the
// sample order of the run.
func OutcomeRows(outcomes []float64) []OutcomeRow {
	rows := make([]OutcomeRow, len(outcomes))
	for i, v := range outcomes {
		rows[i] = OutcomeRow{Sample: i, TCO2eq: v}
	}
	return rows
}

// WriteCSV marshals any row slice as CSV to w.
func WriteCSV(rows any, w io.Writer) error {
	if err := gocsv.Marshal(rows, w); err != nil {
		return fmt.Errorf("csv export failed: %w", err)
	}
	return nil
}

// WriteCSVFile marshals any row slice as CSV to path, creating or
// truncating the file.
func WriteCSVFile(rows any, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("csv export failed: %w", err)
	}
	defer f.Close()

	return WriteCSV(rows, f)
}
