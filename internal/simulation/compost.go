package simulation

import (
	"context"

	"github.com/compostops/vermicast/internal/logging"
)

// Vermicompost models the 50-day earthworm-mediated treatment batch process.
func (s *Simulator) Vermicompost(ctx context.Context, p Parameters) (GasSeries, error) {
	return s.compost(ctx, p, PathwayVermicompost)
}

// Thermophilic models the 50-day self-heating windrow treatment batch
// process. It shares the vermicomposting structure with a more intense
// emission-factor set and an earlier, sharper release peak.
func (s *Simulator) Thermophilic(ctx context.Context, p Parameters) (GasSeries, error) {
	return s.compost(ctx, p, PathwayThermophilic)
}

// compost computes the batch-process emission series for either composting
// pathway. Each day's incoming batch carries a lifetime emission total
//
//	dailyWasteKg * referenceFraction * emissionFactor * molarRatio * dryMatter
//
// optionally scaled by the combined correction factor (Yang variant), and
// releases it along the pathway's fixed 50-day profile. Overlapping batches
// sum per calendar day, so the series is the convolution of a constant
// daily-input stream with the profile, truncated to the horizon. Batches
// entering within the last 49 days have not finished emitting inside the
// observed window; the truncation systematically undercounts late-horizon
// totals and is intentional.
func (s *Simulator) compost(ctx context.Context, p Parameters, pathway Pathway) (GasSeries, error) {
	if err := p.Validate(); err != nil {
		return GasSeries{}, err
	}

	factors, err := FactorsFor(pathway)
	if err != nil {
		return GasSeries{}, err
	}

	log := logging.FromContext(ctx)
	log.Debug().
		Str("component", "simulation").
		Str("pathway", pathway.String()).
		Str("variant", s.cfg.Variant.String()).
		Int("horizon_days", p.HorizonDays).
		Msg("computing compost emissions")

	correction := s.correctionFor(p)
	dry := p.DryMatterFraction()

	ch4Total := p.DailyWasteKg * TotalOrganicCarbonFraction * factors.CH4CarbonFraction * MolarRatioCH4C * dry * correction.CH4
	n2oTotal := p.DailyWasteKg * TotalNitrogenFraction * factors.N2ONitrogenFraction * MolarRatioN2ON * dry * correction.N2O
	nh3Total := p.DailyWasteKg * TotalNitrogenFraction * factors.NH3NitrogenFraction * MolarRatioNH3N * dry * correction.NH3

	n := p.HorizonDays
	return GasSeries{
		CH4: Convolve(constantSeries(ch4Total, n), factors.CH4Profile, n),
		N2O: Convolve(constantSeries(n2oTotal, n), factors.N2OProfile, n),
		NH3: Convolve(constantSeries(nh3Total, n), factors.NH3Profile, n),
	}, nil
}

// BatchTotals returns the lifetime per-batch emission totals in kg for one
// day's waste intake, before profile redistribution. Exposed for mass
// conservation checks and reporting.
func (s *Simulator) BatchTotals(p Parameters, pathway Pathway) (ch4, n2o, nh3 float64, err error) {
	if err = p.Validate(); err != nil {
		return 0, 0, 0, err
	}

	factors, err := FactorsFor(pathway)
	if err != nil {
		return 0, 0, 0, err
	}

	correction := s.correctionFor(p)
	dry := p.DryMatterFraction()

	ch4 = p.DailyWasteKg * TotalOrganicCarbonFraction * factors.CH4CarbonFraction * MolarRatioCH4C * dry * correction.CH4
	n2o = p.DailyWasteKg * TotalNitrogenFraction * factors.N2ONitrogenFraction * MolarRatioN2ON * dry * correction.N2O
	nh3 = p.DailyWasteKg * TotalNitrogenFraction * factors.NH3NitrogenFraction * MolarRatioNH3N * dry * correction.NH3
	return ch4, n2o, nh3, nil
}
