// Package config loads and validates YAML scenario files describing one
// simulation run: the waste-stream parameters, the model variant, the
// carbon-market inputs and the analysis settings. The documented input
// ranges are enforced here, at the boundary, before anything reaches the
// simulation core.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/compostops/vermicast/internal/analysis"
	"github.com/compostops/vermicast/internal/simulation"
)

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Scenario validation errors.
var (
	// ErrOutOfDocumentedRange indicates a user parameter outside the
	// documented input ranges.
	ErrOutOfDocumentedRange = constError("parameter outside documented range")

	// ErrUnknownVariant indicates an unrecognized model variant name.
	ErrUnknownVariant = constError("unknown model variant")

	// ErrUnknownPathway indicates an unrecognized treatment pathway name.
	ErrUnknownPathway = constError("unknown treatment pathway")
)

// Documented input ranges enforced at the configuration boundary.
const (
	MinTemperatureC = 15.0
	MaxTemperatureC = 45.0

	MinMoisture = 0.40
	MaxMoisture = 0.95

	MinDegradableCarbon = 0.10
	MaxDegradableCarbon = 0.30

	MinDecayRate = 0.06
	MaxDecayRate = 0.40

	// Short horizons are excluded: within the first few years the slow
	// landfill decay has released too little methane for the avoided
	// totals to be meaningful.
	MinHorizonYears = 5
	MaxHorizonYears = 50
)

// RunConfig sets the waste stream and the simulated duration.
type RunConfig struct {
	DailyWasteKg float64 `yaml:"daily_waste_kg"`
	HorizonYears int     `yaml:"horizon_years"`
}

// ParameterConfig sets the environmental and substrate parameters.
type ParameterConfig struct {
	Moisture         float64 `yaml:"moisture"`
	TemperatureC     float64 `yaml:"temperature_c"`
	DegradableCarbon float64 `yaml:"degradable_carbon"`
	DecayRatePerYear float64 `yaml:"decay_rate_per_year"`
}

// MarketConfig carries the caller-supplied carbon-market numbers. The tool
// never fetches quotes itself; these values come from the operator or an
// external collaborator.
type MarketConfig struct {
	CarbonPricePerTonne float64 `yaml:"carbon_price_per_tonne"`
	ExchangeRate        float64 `yaml:"exchange_rate"`
	QuoteCurrency       string  `yaml:"quote_currency"`
	DisplayCurrency     string  `yaml:"display_currency"`
	DisplayLocale       string  `yaml:"display_locale"`
}

// BoundConfig declares a varied parameter range for sensitivity analysis.
type BoundConfig struct {
	Name string  `yaml:"name"`
	Min  float64 `yaml:"min"`
	Max  float64 `yaml:"max"`
}

// SensitivityConfig configures the Sobol driver.
type SensitivityConfig struct {
	Samples    int           `yaml:"samples"`
	Seed       uint64        `yaml:"seed"`
	Parameters []BoundConfig `yaml:"parameters"`
}

// InputConfig declares a varied parameter distribution for Monte Carlo.
type InputConfig struct {
	Name         string  `yaml:"name"`
	Distribution string  `yaml:"distribution"`
	Min          float64 `yaml:"min"`
	Max          float64 `yaml:"max"`
	Mean         float64 `yaml:"mean"`
	StdDev       float64 `yaml:"stddev"`
	Mode         float64 `yaml:"mode"`
}

// UncertaintyConfig configures the Monte Carlo driver.
type UncertaintyConfig struct {
	Samples int           `yaml:"samples"`
	Seed    uint64        `yaml:"seed"`
	Inputs  []InputConfig `yaml:"inputs"`
}

// Scenario is the root of a scenario file.
type Scenario struct {
	Run         RunConfig         `yaml:"run"`
	Parameters  ParameterConfig   `yaml:"parameters"`
	Variant     string            `yaml:"variant"`
	PreDisposal bool              `yaml:"pre_disposal"`
	Pathway     string            `yaml:"pathway"`
	Market      MarketConfig      `yaml:"market"`
	Sensitivity SensitivityConfig `yaml:"sensitivity"`
	Uncertainty UncertaintyConfig `yaml:"uncertainty"`
}

// DefaultScenario returns the reference scenario: 100 kg/day over 20 years
// at 25 °C, 85% moisture, IPCC slow-decay landfill.
func DefaultScenario() Scenario {
	return Scenario{
		Run: RunConfig{
			DailyWasteKg: 100,
			HorizonYears: 20,
		},
		Parameters: ParameterConfig{
			Moisture:         0.85,
			TemperatureC:     25,
			DegradableCarbon: 0.15,
			DecayRatePerYear: 0.06,
		},
		Variant: "yang2017",
		Pathway: "vermicompost",
		Market: MarketConfig{
			CarbonPricePerTonne: 85.50,
			ExchangeRate:        1.0,
			QuoteCurrency:       "EUR",
			DisplayCurrency:     "EUR",
			DisplayLocale:       "en-US",
		},
		Sensitivity: SensitivityConfig{
			Samples: 128,
			Seed:    50,
			Parameters: []BoundConfig{
				{Name: analysis.ParamDecayRate, Min: 0.06, Max: 0.40},
				{Name: analysis.ParamTemperature, Min: 25, Max: 45},
				{Name: analysis.ParamDegradableCarbon, Min: 0.15, Max: 0.25},
			},
		},
		Uncertainty: UncertaintyConfig{
			Samples: 500,
			Seed:    50,
			Inputs: []InputConfig{
				{Name: analysis.ParamDecayRate, Distribution: "uniform", Min: 0.06, Max: 0.40},
				{Name: analysis.ParamTemperature, Distribution: "uniform", Min: 25, Max: 45},
				{Name: analysis.ParamDegradableCarbon, Distribution: "uniform", Min: 0.15, Max: 0.25},
			},
		},
	}
}

// Load reads a scenario file, layering it over the defaults so omitted
// sections keep their documented values.
func Load(path string) (Scenario, error) {
	s := DefaultScenario()

	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("reading scenario: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parsing scenario: %w", err)
	}
	return s, nil
}

// Validate enforces the documented input ranges before the scenario touches
// the simulation core.
func (s Scenario) Validate() error {
	p := s.Parameters
	checks := []struct {
		name     string
		value    float64
		min, max float64
	}{
		{"temperature_c", p.TemperatureC, MinTemperatureC, MaxTemperatureC},
		{"moisture", p.Moisture, MinMoisture, MaxMoisture},
		{"degradable_carbon", p.DegradableCarbon, MinDegradableCarbon, MaxDegradableCarbon},
		{"decay_rate_per_year", p.DecayRatePerYear, MinDecayRate, MaxDecayRate},
	}
	for _, c := range checks {
		if c.value < c.min || c.value > c.max {
			return fmt.Errorf("%w: %s=%v not in [%v,%v]", ErrOutOfDocumentedRange, c.name, c.value, c.min, c.max)
		}
	}

	if s.Run.DailyWasteKg < 0 {
		return fmt.Errorf("%w: daily_waste_kg=%v must not be negative", ErrOutOfDocumentedRange, s.Run.DailyWasteKg)
	}
	if s.Run.HorizonYears < MinHorizonYears || s.Run.HorizonYears > MaxHorizonYears {
		return fmt.Errorf("%w: horizon_years=%d not in [%d,%d]", ErrOutOfDocumentedRange, s.Run.HorizonYears, MinHorizonYears, MaxHorizonYears)
	}

	if _, err := s.SimulationVariant(); err != nil {
		return err
	}
	if _, err := s.TreatmentPathway(); err != nil {
		return err
	}
	return nil
}

// SimulationParameters converts the scenario to the core parameter tuple.
func (s Scenario) SimulationParameters() simulation.Parameters {
	return simulation.Parameters{
		MoistureFraction:         s.Parameters.Moisture,
		TemperatureC:             s.Parameters.TemperatureC,
		DegradableCarbonFraction: s.Parameters.DegradableCarbon,
		DecayRatePerYear:         s.Parameters.DecayRatePerYear,
		DailyWasteKg:             s.Run.DailyWasteKg,
		HorizonDays:              s.Run.HorizonYears * 365,
	}
}

// SimulationVariant parses the variant name.
func (s Scenario) SimulationVariant() (simulation.Variant, error) {
	switch s.Variant {
	case "", "yang2017":
		return simulation.VariantYang2017, nil
	case "baseline":
		return simulation.VariantBaseline, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownVariant, s.Variant)
	}
}

// TreatmentPathway parses the pathway name.
func (s Scenario) TreatmentPathway() (simulation.Pathway, error) {
	switch s.Pathway {
	case "", "vermicompost":
		return simulation.PathwayVermicompost, nil
	case "thermophilic":
		return simulation.PathwayThermophilic, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPathway, s.Pathway)
	}
}

// SimulationConfig converts the scenario to the core model configuration.
func (s Scenario) SimulationConfig() (simulation.Config, error) {
	variant, err := s.SimulationVariant()
	if err != nil {
		return simulation.Config{}, err
	}
	return simulation.Config{Variant: variant, PreDisposal: s.PreDisposal}, nil
}

// SensitivityProblem converts the sensitivity section to an analysis
// problem definition.
func (s Scenario) SensitivityProblem() analysis.Problem {
	bounds := make([]analysis.Bound, len(s.Sensitivity.Parameters))
	for i, b := range s.Sensitivity.Parameters {
		bounds[i] = analysis.Bound{Name: b.Name, Min: b.Min, Max: b.Max}
	}
	return analysis.Problem{Parameters: bounds}
}

// UncertaintyInputs converts the uncertainty section to analysis input
// distributions.
func (s Scenario) UncertaintyInputs() []analysis.InputDistribution {
	inputs := make([]analysis.InputDistribution, len(s.Uncertainty.Inputs))
	for i, in := range s.Uncertainty.Inputs {
		inputs[i] = analysis.InputDistribution{
			Name:   in.Name,
			Kind:   analysis.DistributionKind(in.Distribution),
			Min:    in.Min,
			Max:    in.Max,
			Mean:   in.Mean,
			StdDev: in.StdDev,
			Mode:   in.Mode,
		}
	}
	return inputs
}
