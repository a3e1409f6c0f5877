package simulation

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gonum.org/v1/gonum/floats"
)

func TestLandfillCH4(t *testing.T) {
	sim := NewSimulator(Config{})
	p := validParameters()

	series, err := sim.Landfill(context.Background(), p)
	require.NoError(t, err)
	require.Len(t, series.CH4, p.HorizonDays)

	docf := DOCfSlope*p.TemperatureC + DOCfIntercept
	dailyPotential := p.DailyWasteKg * p.DegradableCarbonFraction * docf *
		MethaneCorrectionFactor * MethaneFraction * MolarRatioCH4C *
		(1 - RecoveryFraction) * (1 - OxidationFactor)

	t.Run("first day releases one-day decay of one batch", func(t *testing.T) {
		want := dailyPotential * (1 - math.Exp(-p.DecayRatePerYear/DaysPerYear))
		assert.InDelta(t, want, series.CH4[0], 1e-12)
	})

	t.Run("flow grows toward saturation", func(t *testing.T) {
		// Each day adds a fresh batch while old ones still emit, so the
		// daily flow is strictly increasing over the horizon.
		for d := 1; d < p.HorizonDays; d++ {
			assert.Greater(t, series.CH4[d], series.CH4[d-1])
		}
	})

	t.Run("horizon total stays below injected potential", func(t *testing.T) {
		injected := float64(p.HorizonDays) * dailyPotential
		assert.Less(t, floats.Sum(series.CH4), injected)
	})
}

func TestLandfillN2OSteadyState(t *testing.T) {
	sim := NewSimulator(Config{})
	p := validParameters()

	series, err := sim.Landfill(context.Background(), p)
	require.NoError(t, err)

	openFraction := WorkingFaceHoursPerDay / 24.0
	avgRate := openFraction*N2OOpenFaceRate + (1-openFraction)*N2OClosedRate
	moistureAdj := (1 - p.MoistureFraction) / (1 - ReferenceMoistureFraction)
	wantDaily := avgRate * moistureAdj * MolarRatioN2ON / GramsPerTonne * p.DailyWasteKg

	// The 5-day pulse profile plateaus from day 5 on.
	for d := 5; d < p.HorizonDays; d++ {
		assert.InDelta(t, wantDaily, series.N2O[d], 1e-15)
	}
	assert.Less(t, series.N2O[0], wantDaily)
}

func TestLandfillN2OMoistureResponse(t *testing.T) {
	sim := NewSimulator(Config{})

	wet := validParameters()
	wet.MoistureFraction = 0.90
	dry := validParameters()
	dry.MoistureFraction = 0.60

	wetSeries, err := sim.Landfill(context.Background(), wet)
	require.NoError(t, err)
	drySeries, err := sim.Landfill(context.Background(), dry)
	require.NoError(t, err)

	// Wetter waste suppresses the nitrification pulse.
	assert.Less(t, floats.Sum(wetSeries.N2O), floats.Sum(drySeries.N2O))
}

func TestLandfillNH3SteadyState(t *testing.T) {
	sim := NewSimulator(Config{})
	p := validParameters()

	series, err := sim.Landfill(context.Background(), p)
	require.NoError(t, err)

	wantDaily := p.DailyWasteKg * TotalNitrogenFraction * LandfillNH3NitrogenFraction * MolarRatioNH3N
	for d := 5; d < p.HorizonDays; d++ {
		assert.InDelta(t, wantDaily, series.NH3[d], 1e-12)
	}
}

func TestLandfillPreDisposal(t *testing.T) {
	p := validParameters()

	plain, err := NewSimulator(Config{}).Landfill(context.Background(), p)
	require.NoError(t, err)
	withHold, err := NewSimulator(Config{PreDisposal: true}).Landfill(context.Background(), p)
	require.NoError(t, err)

	t.Run("adds holding-area CH4 and N2O", func(t *testing.T) {
		// The 3-day holding profile plateaus from day 3 on.
		for d := 3; d < p.HorizonDays; d++ {
			assert.InDelta(t, plain.CH4[d]+p.DailyWasteKg*PreDisposalCH4PerKg, withHold.CH4[d], 1e-12)
			assert.InDelta(t, plain.N2O[d]+p.DailyWasteKg*PreDisposalN2OPerKg, withHold.N2O[d], 1e-15)
		}
	})

	t.Run("NH3 unaffected", func(t *testing.T) {
		for d := 0; d < p.HorizonDays; d++ {
			assert.Equal(t, plain.NH3[d], withHold.NH3[d])
		}
	})
}

func TestLandfillZeroWaste(t *testing.T) {
	sim := NewSimulator(Config{PreDisposal: true})
	p := validParameters()
	p.DailyWasteKg = 0

	series, err := sim.Landfill(context.Background(), p)
	require.NoError(t, err)

	assert.InDelta(t, 0, floats.Sum(series.CH4), 1e-15)
	assert.InDelta(t, 0, floats.Sum(series.N2O), 1e-15)
	assert.InDelta(t, 0, floats.Sum(series.NH3), 1e-15)
}

func TestLandfillRejectsInvalidParameters(t *testing.T) {
	sim := NewSimulator(Config{})
	p := validParameters()
	p.DecayRatePerYear = 0

	_, err := sim.Landfill(context.Background(), p)
	assert.ErrorIs(t, err, ErrNonPositiveDecayRate)
}
