// Package analysis provides global sensitivity analysis (Sobol variance
// decomposition) and Monte Carlo uncertainty propagation over the emission
// simulation. Both drivers treat the simulation as a black-box scalar model
// and fan evaluations out over a bounded worker pool; results are collected
// in sample order so identical seeds reproduce identical output arrays.
package analysis

import (
	"context"
	"fmt"

	"github.com/compostops/vermicast/internal/simulation"
)

// Model maps a parameter tuple to the scalar under study. Both drivers
// evaluate it once per sample; it must be a pure function of its inputs.
type Model func(ctx context.Context, p simulation.Parameters) (float64, error)

// AvoidedModel adapts the avoided-emissions composite into a Model returning
// total avoided tCO2eq at the horizon.
func AvoidedModel(sim *simulation.Simulator, pathway simulation.Pathway) Model {
	return func(ctx context.Context, p simulation.Parameters) (float64, error) {
		result, err := sim.AvoidedEmissions(ctx, p, pathway)
		if err != nil {
			return 0, err
		}
		return result.AvoidedTCO2eq, nil
	}
}

// Names of the simulation parameters the drivers can vary.
const (
	ParamDecayRate        = "decay_rate"
	ParamTemperature      = "temperature"
	ParamDegradableCarbon = "degradable_carbon"
	ParamMoisture         = "moisture"
)

// applyParameter returns a copy of base with the named parameter replaced.
func applyParameter(base simulation.Parameters, name string, value float64) (simulation.Parameters, error) {
	switch name {
	case ParamDecayRate:
		base.DecayRatePerYear = value
	case ParamTemperature:
		base.TemperatureC = value
	case ParamDegradableCarbon:
		base.DegradableCarbonFraction = value
	case ParamMoisture:
		base.MoistureFraction = value
	default:
		return base, fmt.Errorf("%w: %q", ErrUnknownParameter, name)
	}
	return base, nil
}

// applyVector applies the named values of one sample row onto base.
func applyVector(base simulation.Parameters, names []string, values []float64) (simulation.Parameters, error) {
	p := base
	var err error
	for i, name := range names {
		p, err = applyParameter(p, name, values[i])
		if err != nil {
			return p, err
		}
	}
	return p, nil
}
