package analysis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/compostops/vermicast/internal/simulation"
)

func sensitivityProblem() Problem {
	return Problem{Parameters: []Bound{
		{Name: ParamMoisture, Min: 0.45, Max: 0.95},
		{Name: ParamTemperature, Min: 15, Max: 45},
	}}
}

func TestSobolIndicesAdditiveModel(t *testing.T) {
	// An additive model has no interactions: S1 and ST coincide up to
	// sampling noise, and the heavier term dominates both rankings.
	model := func(_ context.Context, p simulation.Parameters) (float64, error) {
		return 10*p.MoistureFraction + 0.05*p.TemperatureC, nil
	}

	indices, err := SobolIndices(context.Background(), model, baseParameters(),
		sensitivityProblem(), SobolOptions{Samples: 512, Seed: 7})
	require.NoError(t, err)
	require.Len(t, indices, 2)

	moisture, temperature := indices[0], indices[1]
	assert.Equal(t, ParamMoisture, moisture.Name)
	assert.Equal(t, ParamTemperature, temperature.Name)

	// Analytic variance shares: Var(10*U(0.45,0.95)) = 100*0.5^2/12,
	// Var(0.05*U(15,45)) = 0.0025*30^2/12; moisture explains ~92%.
	assert.Greater(t, moisture.FirstOrder, temperature.FirstOrder)
	assert.Greater(t, moisture.TotalOrder, temperature.TotalOrder)
	assert.InDelta(t, 0.92, moisture.TotalOrder, 0.15)
	assert.InDelta(t, 0.08, temperature.TotalOrder, 0.15)

	// The first-order estimator must recover the same shares: an output
	// mean far above the stddev must not leak into S1.
	assert.InDelta(t, 0.92, moisture.FirstOrder, 0.15)
	assert.InDelta(t, 0.08, temperature.FirstOrder, 0.15)

	for _, idx := range indices {
		assert.LessOrEqual(t, idx.FirstOrder, idx.TotalOrder+indexTolerance)
		assert.GreaterOrEqual(t, idx.TotalOrder, -indexTolerance)
		assert.LessOrEqual(t, idx.TotalOrder, 1+indexTolerance)
	}
}

func TestSobolIndicesReproducible(t *testing.T) {
	model := func(_ context.Context, p simulation.Parameters) (float64, error) {
		return p.MoistureFraction * p.TemperatureC, nil
	}

	opts := SobolOptions{Samples: 128, Seed: 50, Workers: 4}

	a, err := SobolIndices(context.Background(), model, baseParameters(), sensitivityProblem(), opts)
	require.NoError(t, err)
	b, err := SobolIndices(context.Background(), model, baseParameters(), sensitivityProblem(), opts)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestSobolIndicesSeedChangesSamples(t *testing.T) {
	model := func(_ context.Context, p simulation.Parameters) (float64, error) {
		return p.MoistureFraction * p.TemperatureC, nil
	}

	a, err := SobolIndices(context.Background(), model, baseParameters(),
		sensitivityProblem(), SobolOptions{Samples: 64, Seed: 1})
	require.NoError(t, err)
	b, err := SobolIndices(context.Background(), model, baseParameters(),
		sensitivityProblem(), SobolOptions{Samples: 64, Seed: 2})
	require.NoError(t, err)

	assert.NotEqual(t, a[0].FirstOrder, b[0].FirstOrder)
}

func TestSobolIndicesConstantModel(t *testing.T) {
	model := func(_ context.Context, _ simulation.Parameters) (float64, error) {
		return 42, nil
	}

	indices, err := SobolIndices(context.Background(), model, baseParameters(),
		sensitivityProblem(), SobolOptions{Samples: 32, Seed: 3})
	require.NoError(t, err)

	// Zero output variance yields zero indices instead of NaN.
	for _, idx := range indices {
		assert.Zero(t, idx.FirstOrder)
		assert.Zero(t, idx.TotalOrder)
	}
}

func TestSobolIndicesValidation(t *testing.T) {
	model := func(_ context.Context, _ simulation.Parameters) (float64, error) {
		return 0, nil
	}
	ctx := context.Background()

	t.Run("no samples", func(t *testing.T) {
		_, err := SobolIndices(ctx, model, baseParameters(), sensitivityProblem(), SobolOptions{})
		assert.ErrorIs(t, err, ErrNoSamples)
	})

	t.Run("no parameters", func(t *testing.T) {
		_, err := SobolIndices(ctx, model, baseParameters(), Problem{}, SobolOptions{Samples: 8})
		assert.ErrorIs(t, err, ErrNoParameters)
	})

	t.Run("inverted bounds", func(t *testing.T) {
		problem := Problem{Parameters: []Bound{{Name: ParamMoisture, Min: 0.9, Max: 0.5}}}
		_, err := SobolIndices(ctx, model, baseParameters(), problem, SobolOptions{Samples: 8})
		assert.ErrorIs(t, err, ErrInvalidBounds)
	})
}

func TestSobolIndicesOverSimulation(t *testing.T) {
	sim := simulation.NewSimulator(simulation.Config{Variant: simulation.VariantYang2017})
	base := baseParameters()
	base.HorizonDays = 730

	problem := Problem{Parameters: []Bound{
		{Name: ParamDecayRate, Min: 0.06, Max: 0.40},
		{Name: ParamDegradableCarbon, Min: 0.10, Max: 0.30},
		{Name: ParamMoisture, Min: 0.45, Max: 0.95},
		{Name: ParamTemperature, Min: 15, Max: 45},
	}}

	indices, err := SobolIndices(context.Background(),
		AvoidedModel(sim, simulation.PathwayVermicompost), base, problem,
		SobolOptions{Samples: 64, Seed: 50, Workers: 4})
	require.NoError(t, err)
	require.Len(t, indices, 4)

	for _, idx := range indices {
		assert.False(t, idx.FirstOrder != idx.FirstOrder, "S1 must not be NaN")
		assert.False(t, idx.TotalOrder != idx.TotalOrder, "ST must not be NaN")
	}
}
