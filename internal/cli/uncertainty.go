package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/compostops/vermicast/internal/analysis"
	"github.com/compostops/vermicast/internal/report"
	"github.com/compostops/vermicast/internal/simulation"
)

// UncertaintyParams holds the flag values of the uncertainty command.
// Exported for testing.
type UncertaintyParams struct {
	Samples     int
	Workers     int
	SummaryCSV  string
	OutcomesCSV string
}

// newUncertaintyCmd creates the "uncertainty" subcommand: Monte Carlo
// propagation of the scenario's input distributions through the
// avoided-emission model.
func newUncertaintyCmd() *cobra.Command {
	var params UncertaintyParams

	cmd := &cobra.Command{
		Use:   "uncertainty",
		Short: "Propagate input uncertainty with Monte Carlo sampling",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeUncertainty(cmd, params)
		},
	}

	cmd.Flags().IntVar(&params.Samples, "samples", 0, "number of Monte Carlo draws (0 = scenario value)")
	cmd.Flags().IntVar(&params.Workers, "workers", 0, "parallel simulation workers (0 = GOMAXPROCS)")
	cmd.Flags().StringVar(&params.SummaryCSV, "summary-csv", "", "write the summary statistics to this path")
	cmd.Flags().StringVar(&params.OutcomesCSV, "outcomes-csv", "", "write the per-sample outcomes to this path")

	return cmd
}

func executeUncertainty(cmd *cobra.Command, params UncertaintyParams) error {
	ctx := cmd.Context()

	scenario, err := loadScenario(cmd)
	if err != nil {
		return err
	}

	cfg, err := scenario.SimulationConfig()
	if err != nil {
		return err
	}
	pathway, err := scenario.TreatmentPathway()
	if err != nil {
		return err
	}

	samples := scenario.Uncertainty.Samples
	if params.Samples > 0 {
		samples = params.Samples
	}
	seed := scenario.Uncertainty.Seed

	sim := simulation.NewSimulator(cfg)
	result, err := analysis.MonteCarlo(ctx,
		analysis.AvoidedModel(sim, pathway),
		scenario.SimulationParameters(),
		scenario.UncertaintyInputs(),
		analysis.MonteCarloOptions{
			Samples: samples,
			Seed:    seed,
			Workers: params.Workers,
		})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Avoided emissions over %d samples (seed %d), tCO2eq:\n", samples, seed)
	fmt.Fprintf(out, "  mean    %.4f\n", result.Mean)
	fmt.Fprintf(out, "  median  %.4f\n", result.Median)
	fmt.Fprintf(out, "  stddev  %.4f\n", result.StdDev)
	fmt.Fprintf(out, "  CI90    [%.4f, %.4f]\n", result.CI90.Low, result.CI90.High)
	fmt.Fprintf(out, "  CI95    [%.4f, %.4f]\n", result.CI95.Low, result.CI95.High)

	if params.SummaryCSV != "" {
		rows := []report.MonteCarloSummaryRow{report.NewMonteCarloSummaryRow(runID, seed, result)}
		if err := report.WriteCSVFile(&rows, params.SummaryCSV); err != nil {
			return err
		}
		logger.Info().Str("path", params.SummaryCSV).Msg("uncertainty summary exported")
	}

	if params.OutcomesCSV != "" {
		rows := report.OutcomeRows(result.Outcomes)
		if err := report.WriteCSVFile(&rows, params.OutcomesCSV); err != nil {
			return err
		}
		logger.Info().Str("path", params.OutcomesCSV).Msg("per-sample outcomes exported")
	}

	return nil
}
