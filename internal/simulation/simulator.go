// Package simulation implements the emission models comparing landfill
// disposal of organic waste against vermicomposting and thermophilic
// composting. Each pathway turns a parameter tuple into daily CH4/N2O/NH3
// mass-flow series via convolution of a daily-input stream with a fixed
// temporal emission profile; the aggregation layer converts the series to
// CO2-equivalent and computes avoided emissions.
//
// All simulation entry points are pure functions of their inputs: the fixed
// emission factors, profiles and GWPs are process-wide read-only
// configuration, so concurrent invocations over independent parameter sets
// are safe without synchronization.
package simulation

import "fmt"

// Variant selects between the raw emission-factor model and the model with
// Yang et al. 2017 temperature/moisture corrections applied.
type Variant int

const (
	// VariantBaseline applies the base emission factors unmodified.
	VariantBaseline Variant = iota

	// VariantYang2017 scales composting emission totals by the combined
	// temperature and moisture correction factors.
	VariantYang2017
)

// String returns a human-readable representation of the Variant.
func (v Variant) String() string {
	switch v {
	case VariantBaseline:
		return "baseline"
	case VariantYang2017:
		return "yang2017"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// Pathway identifies a biological treatment alternative to landfilling.
type Pathway int

const (
	// PathwayVermicompost is the 50-day earthworm-mediated treatment.
	PathwayVermicompost Pathway = iota

	// PathwayThermophilic is the 50-day self-heating windrow treatment.
	PathwayThermophilic
)

// String returns a human-readable representation of the Pathway.
func (p Pathway) String() string {
	switch p {
	case PathwayVermicompost:
		return "vermicompost"
	case PathwayThermophilic:
		return "thermophilic"
	default:
		return fmt.Sprintf("Pathway(%d)", int(p))
	}
}

// GasSeries holds one pathway's daily emission mass flows in kg/day, one
// entry per simulated day. NH3 is tracked as an air-quality co-benefit and
// is never converted to CO2-equivalent.
type GasSeries struct {
	CH4 []float64
	N2O []float64
	NH3 []float64
}

// PathwayFactors is the immutable emission-factor set of one composting
// pathway: lifetime release fractions of the reference carbon/nitrogen pools
// plus the redistribution profiles. Factor sets are source-specific and must
// not be mixed between pathways.
type PathwayFactors struct {
	// CH4CarbonFraction is the share of initial carbon emitted as CH4-C
	// over the batch lifetime.
	CH4CarbonFraction float64

	// N2ONitrogenFraction is the share of initial nitrogen emitted as
	// N2O-N over the batch lifetime.
	N2ONitrogenFraction float64

	// NH3NitrogenFraction is the share of initial nitrogen volatilized as
	// NH3-N over the batch lifetime.
	NH3NitrogenFraction float64

	CH4Profile Profile
	N2OProfile Profile
	NH3Profile Profile
}

// Emission factor sets (Yang et al. 2017, Table 3).
var (
	//nolint:gochecknoglobals // immutable process configuration
	vermicompostFactors = PathwayFactors{
		CH4CarbonFraction:   0.13 / 100,
		N2ONitrogenFraction: 0.92 / 100,
		NH3NitrogenFraction: 12.3 / 100,
		CH4Profile:          vermicompostCH4Profile,
		N2OProfile:          vermicompostN2OProfile,
		NH3Profile:          vermicompostNH3Profile,
	}

	//nolint:gochecknoglobals // immutable process configuration
	thermophilicFactors = PathwayFactors{
		CH4CarbonFraction:   0.60 / 100,
		N2ONitrogenFraction: 1.96 / 100,
		NH3NitrogenFraction: 24.9 / 100,
		CH4Profile:          thermophilicCH4Profile,
		N2OProfile:          thermophilicN2OProfile,
		NH3Profile:          thermophilicNH3Profile,
	}
)

// FactorsFor returns the emission-factor set of the given pathway.
func FactorsFor(pathway Pathway) (PathwayFactors, error) {
	switch pathway {
	case PathwayVermicompost:
		return vermicompostFactors, nil
	case PathwayThermophilic:
		return thermophilicFactors, nil
	default:
		return PathwayFactors{}, fmt.Errorf("%w: %d", ErrUnknownPathway, int(pathway))
	}
}

// Config selects the model variant and optional components. The zero value
// is the baseline variant without the pre-disposal component.
type Config struct {
	// Variant chooses baseline or Yang-corrected emission totals.
	Variant Variant

	// PreDisposal adds the short holding-area emission component to the
	// landfill pathway.
	PreDisposal bool
}

// Simulator evaluates the pathway models under a fixed Config. Simulators
// are stateless and safe for concurrent use.
type Simulator struct {
	cfg Config
}

// NewSimulator returns a Simulator for the given configuration.
func NewSimulator(cfg Config) *Simulator {
	return &Simulator{cfg: cfg}
}

// correctionFor returns the per-gas factors for the configured variant.
func (s *Simulator) correctionFor(p Parameters) CorrectionFactors {
	if s.cfg.Variant == VariantYang2017 {
		return CombinedCorrectionFactors(p.MoistureFraction, p.TemperatureC)
	}
	return unitCorrectionFactors()
}
