// Package report builds the tabular outputs of a simulation run: the daily
// time-series table, the annual roll-up, the sensitivity-index table and the
// Monte Carlo summary, plus the carbon-credit valuation of avoided
// emissions. All tables are flat row/column numeric records exportable as
// delimited text.
package report

import (
	"context"

	"github.com/compostops/vermicast/internal/analysis"
	"github.com/compostops/vermicast/internal/simulation"
)

// DailyRow is one simulated day across all pathways. Mass flows are kg/day;
// CO2eq columns are tonnes.
type DailyRow struct {
	Day int `csv:"day"`

	LandfillCH4Kg float64 `csv:"landfill_ch4_kg"`
	LandfillN2OKg float64 `csv:"landfill_n2o_kg"`
	LandfillNH3Kg float64 `csv:"landfill_nh3_kg"`

	VermicompostCH4Kg float64 `csv:"vermicompost_ch4_kg"`
	VermicompostN2OKg float64 `csv:"vermicompost_n2o_kg"`
	VermicompostNH3Kg float64 `csv:"vermicompost_nh3_kg"`

	ThermophilicCH4Kg float64 `csv:"thermophilic_ch4_kg"`
	ThermophilicN2OKg float64 `csv:"thermophilic_n2o_kg"`
	ThermophilicNH3Kg float64 `csv:"thermophilic_nh3_kg"`

	LandfillTCO2eq     float64 `csv:"landfill_tco2eq"`
	VermicompostTCO2eq float64 `csv:"vermicompost_tco2eq"`
	ThermophilicTCO2eq float64 `csv:"thermophilic_tco2eq"`

	LandfillCumTCO2eq     float64 `csv:"landfill_cum_tco2eq"`
	VermicompostCumTCO2eq float64 `csv:"vermicompost_cum_tco2eq"`
	ThermophilicCumTCO2eq float64 `csv:"thermophilic_cum_tco2eq"`

	AvoidedVermicompostTCO2eq float64 `csv:"avoided_vermicompost_tco2eq"`
	AvoidedThermophilicTCO2eq float64 `csv:"avoided_thermophilic_tco2eq"`
}

// AnnualRow is the per-year roll-up of the daily table.
type AnnualRow struct {
	Year int `csv:"year"`

	LandfillTCO2eq     float64 `csv:"landfill_tco2eq"`
	VermicompostTCO2eq float64 `csv:"vermicompost_tco2eq"`
	ThermophilicTCO2eq float64 `csv:"thermophilic_tco2eq"`

	AvoidedVermicompostTCO2eq float64 `csv:"avoided_vermicompost_tco2eq"`
	AvoidedThermophilicTCO2eq float64 `csv:"avoided_thermophilic_tco2eq"`

	AvoidedVermicompostNH3Kg float64 `csv:"avoided_vermicompost_nh3_kg"`
	AvoidedThermophilicNH3Kg float64 `csv:"avoided_thermophilic_nh3_kg"`
}

// SensitivityRow is one parameter's Sobol indices.
type SensitivityRow struct {
	Parameter  string  `csv:"parameter"`
	FirstOrder float64 `csv:"s1_first_order"`
	TotalOrder float64 `csv:"st_total_order"`
}

// Tables bundles every table built from one full simulation run.
type Tables struct {
	Daily  []DailyRow
	Annual []AnnualRow
}

// BuildTables runs all three pathways over the same parameters and
// assembles the daily and annual tables.
func BuildTables(ctx context.Context, sim *simulation.Simulator, p simulation.Parameters) (Tables, error) {
	landfill, err := sim.Landfill(ctx, p)
	if err != nil {
		return Tables{}, err
	}
	vermi, err := sim.Vermicompost(ctx, p)
	if err != nil {
		return Tables{}, err
	}
	thermo, err := sim.Thermophilic(ctx, p)
	if err != nil {
		return Tables{}, err
	}

	landfillEq := simulation.CO2eqTonnesDaily(landfill)
	vermiEq := simulation.CO2eqTonnesDaily(vermi)
	thermoEq := simulation.CO2eqTonnesDaily(thermo)

	landfillCum := simulation.Cumulative(landfillEq)
	vermiCum := simulation.Cumulative(vermiEq)
	thermoCum := simulation.Cumulative(thermoEq)

	daily := make([]DailyRow, p.HorizonDays)
	for i := range daily {
		daily[i] = DailyRow{
			Day: i + 1,

			LandfillCH4Kg: landfill.CH4[i],
			LandfillN2OKg: landfill.N2O[i],
			LandfillNH3Kg: landfill.NH3[i],

			VermicompostCH4Kg: vermi.CH4[i],
			VermicompostN2OKg: vermi.N2O[i],
			VermicompostNH3Kg: vermi.NH3[i],

			ThermophilicCH4Kg: thermo.CH4[i],
			ThermophilicN2OKg: thermo.N2O[i],
			ThermophilicNH3Kg: thermo.NH3[i],

			LandfillTCO2eq:     landfillEq[i],
			VermicompostTCO2eq: vermiEq[i],
			ThermophilicTCO2eq: thermoEq[i],

			LandfillCumTCO2eq:     landfillCum[i],
			VermicompostCumTCO2eq: vermiCum[i],
			ThermophilicCumTCO2eq: thermoCum[i],

			AvoidedVermicompostTCO2eq: landfillCum[i] - vermiCum[i],
			AvoidedThermophilicTCO2eq: landfillCum[i] - thermoCum[i],
		}
	}

	return Tables{
		Daily:  daily,
		Annual: rollUpAnnual(daily, landfill, vermi, thermo),
	}, nil
}

// rollUpAnnual sums the daily table into calendar-year buckets of 365 days
// (day 1 opens year 1).
func rollUpAnnual(daily []DailyRow, landfill, vermi, thermo simulation.GasSeries) []AnnualRow {
	years := (len(daily) + 364) / 365
	annual := make([]AnnualRow, years)
	for y := range annual {
		annual[y].Year = y + 1
	}

	for i, row := range daily {
		y := i / 365
		annual[y].LandfillTCO2eq += row.LandfillTCO2eq
		annual[y].VermicompostTCO2eq += row.VermicompostTCO2eq
		annual[y].ThermophilicTCO2eq += row.ThermophilicTCO2eq
		annual[y].AvoidedVermicompostNH3Kg += landfill.NH3[i] - vermi.NH3[i]
		annual[y].AvoidedThermophilicNH3Kg += landfill.NH3[i] - thermo.NH3[i]
	}

	for y := range annual {
		annual[y].AvoidedVermicompostTCO2eq = annual[y].LandfillTCO2eq - annual[y].VermicompostTCO2eq
		annual[y].AvoidedThermophilicTCO2eq = annual[y].LandfillTCO2eq - annual[y].ThermophilicTCO2eq
	}

	return annual
}

// SensitivityRows converts analysis indices to exportable rows.
func SensitivityRows(indices []analysis.SensitivityIndex) []SensitivityRow {
	rows := make([]SensitivityRow, len(indices))
	for i, idx := range indices {
		rows[i] = SensitivityRow{
			Parameter:  idx.Name,
			FirstOrder: idx.FirstOrder,
			TotalOrder: idx.TotalOrder,
		}
	}
	return rows
}
