package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/compostops/vermicast/internal/report"
	"github.com/compostops/vermicast/internal/simulation"
)

// SimulateParams holds the flag values of the simulate command. Exported for
// testing.
type SimulateParams struct {
	DailyCSV  string
	AnnualCSV string
}

// newSimulateCmd creates the "simulate" subcommand: one deterministic run
// over the scenario parameters, printed as an avoided-emission and
// credit-value summary with optional CSV export of the daily and annual
// tables.
func newSimulateCmd() *cobra.Command {
	var params SimulateParams

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run one emission simulation and value the avoided emissions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeSimulate(cmd, params)
		},
	}

	cmd.Flags().StringVar(&params.DailyCSV, "daily-csv", "", "write the daily time-series table to this path")
	cmd.Flags().StringVar(&params.AnnualCSV, "annual-csv", "", "write the annual roll-up table to this path")

	return cmd
}

func executeSimulate(cmd *cobra.Command, params SimulateParams) error {
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

	sim := simulation.NewSimulator(cfg)
	p := scenario.SimulationParameters()

	tables, err := report.BuildTables(ctx, sim, p)
	if err != nil {
		return err
	}

	avoided, err := sim.AvoidedEmissions(ctx, p, pathway)
	if err != nil {
		return err
	}

	credit, err := report.NewCreditValue(
		avoided.AvoidedTCO2eq,
		scenario.Market.CarbonPricePerTonne,
		scenario.Market.ExchangeRate,
		scenario.Market.QuoteCurrency,
		scenario.Market.DisplayCurrency,
	)
	if err != nil {
		return err
	}

	fmtr := report.NewFormatter(scenario.Market.DisplayLocale)
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Pathway:               %s (%s variant)\n", pathway, cfg.Variant)
	fmt.Fprintf(out, "Horizon:               %d years, %s kg/day\n",
		scenario.Run.HorizonYears, fmtr.Decimal(scenario.Run.DailyWasteKg, 0))
	fmt.Fprintf(out, "Landfill baseline:     %s tCO2eq\n", fmtr.Decimal(avoided.BaselineTCO2eq, 2))
	fmt.Fprintf(out, "Treatment alternative: %s tCO2eq\n", fmtr.Decimal(avoided.AlternativeTCO2eq, 2))
	fmt.Fprintf(out, "Avoided emissions:     %s tCO2eq (%s tCO2eq/year)\n",
		fmtr.Decimal(avoided.AvoidedTCO2eq, 2), fmtr.Decimal(avoided.AnnualizedTCO2eq, 2))
	fmt.Fprintf(out, "Avoided NH3:           %s kg\n", fmtr.Decimal(avoided.AvoidedNH3Kg, 2))
	fmt.Fprintf(out, "Credit value:          %s", fmtr.Money(credit.QuoteCurrency, credit.QuoteValue()))
	if credit.ExchangeRate != 1 {
		fmt.Fprintf(out, " (%s)", fmtr.Money(credit.DisplayCurrency, credit.DisplayValue()))
	}
	fmt.Fprintln(out)

	if params.DailyCSV != "" {
		if err := report.WriteCSVFile(&tables.Daily, params.DailyCSV); err != nil {
			return err
		}
		logger.Info().Str("path", params.DailyCSV).Int("rows", len(tables.Daily)).Msg("daily table exported")
	}
	if params.AnnualCSV != "" {
		if err := report.WriteCSVFile(&tables.Annual, params.AnnualCSV); err != nil {
			return err
		}
		logger.Info().Str("path", params.AnnualCSV).Int("rows", len(tables.Annual)).Msg("annual table exported")
	}

	return nil
}
