package analysis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/compostops/vermicast/internal/simulation"
)

func baseParameters() simulation.Parameters {
	return simulation.Parameters{
		MoistureFraction:         0.85,
		TemperatureC:             25,
		DegradableCarbonFraction: 0.15,
		DecayRatePerYear:         0.06,
		DailyWasteKg:             100,
		HorizonDays:              365,
	}
}

func TestApplyParameter(t *testing.T) {
	base := baseParameters()

	tests := []struct {
		name  string
		param string
		value float64
		check func(t *testing.T, p simulation.Parameters)
	}{
		{
			name:  "decay rate",
			param: ParamDecayRate,
			value: 0.18,
			check: func(t *testing.T, p simulation.Parameters) {
				assert.Equal(t, 0.18, p.DecayRatePerYear)
			},
		},
		{
			name:  "temperature",
			param: ParamTemperature,
			value: 35,
			check: func(t *testing.T, p simulation.Parameters) {
				assert.Equal(t, 35.0, p.TemperatureC)
			},
		},
		{
			name:  "degradable carbon",
			param: ParamDegradableCarbon,
			value: 0.25,
			check: func(t *testing.T, p simulation.Parameters) {
				assert.Equal(t, 0.25, p.DegradableCarbonFraction)
			},
		},
		{
			name:  "moisture",
			param: ParamMoisture,
			value: 0.60,
			check: func(t *testing.T, p simulation.Parameters) {
				assert.Equal(t, 0.60, p.MoistureFraction)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := applyParameter(base, tt.param, tt.value)
			require.NoError(t, err)
			tt.check(t, p)
		})
	}

	t.Run("unknown parameter", func(t *testing.T) {
		_, err := applyParameter(base, "porosity", 0.5)
		assert.ErrorIs(t, err, ErrUnknownParameter)
	})

	t.Run("base is not mutated", func(t *testing.T) {
		_, err := applyParameter(base, ParamMoisture, 0.42)
		require.NoError(t, err)
		assert.Equal(t, 0.85, base.MoistureFraction)
	})
}

func TestApplyVector(t *testing.T) {
	base := baseParameters()

	p, err := applyVector(base, []string{ParamMoisture, ParamTemperature}, []float64{0.5, 30})
	require.NoError(t, err)
	assert.Equal(t, 0.5, p.MoistureFraction)
	assert.Equal(t, 30.0, p.TemperatureC)
	assert.Equal(t, base.DecayRatePerYear, p.DecayRatePerYear)

	_, err = applyVector(base, []string{"porosity"}, []float64{0.5})
	assert.ErrorIs(t, err, ErrUnknownParameter)
}

func TestAvoidedModel(t *testing.T) {
	sim := simulation.NewSimulator(simulation.Config{Variant: simulation.VariantYang2017})
	model := AvoidedModel(sim, simulation.PathwayVermicompost)

	ctx := context.Background()
	p := baseParameters()

	got, err := model(ctx, p)
	require.NoError(t, err)

	want, err := sim.AvoidedEmissions(ctx, p, simulation.PathwayVermicompost)
	require.NoError(t, err)
	assert.Equal(t, want.AvoidedTCO2eq, got)

	t.Run("propagates simulation errors", func(t *testing.T) {
		bad := p
		bad.HorizonDays = 0
		_, err := model(ctx, bad)
		assert.ErrorIs(t, err, simulation.ErrNonPositiveHorizon)
	})
}
