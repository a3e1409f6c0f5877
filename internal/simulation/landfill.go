package simulation

import (
	"context"
	"math"

	"github.com/compostops/vermicast/internal/logging"
)

// Landfill models gas release from waste decomposing in a landfill. CH4
// follows the IPCC first-order decay model: every day's delivery injects a
// methane potential that decays independently along the same exponential
// kernel, so the total series is the convolution of a constant daily-input
// stream with the FOD kernel. N2O and NH3 are delivery-driven surface pulses
// redistributed over a short fixed profile.
func (s *Simulator) Landfill(ctx context.Context, p Parameters) (GasSeries, error) {
	if err := p.Validate(); err != nil {
		return GasSeries{}, err
	}

	log := logging.FromContext(ctx)
	log.Debug().
		Str("component", "simulation").
		Str("pathway", "landfill").
		Float64("decay_rate", p.DecayRatePerYear).
		Int("horizon_days", p.HorizonDays).
		Msg("computing landfill emissions")

	ch4 := s.landfillCH4(p)
	n2o := s.landfillN2O(p)
	nh3 := s.landfillNH3(p)

	if s.cfg.PreDisposal {
		addPreDisposal(ch4, n2o, p)
	}

	return GasSeries{CH4: ch4, N2O: n2o, NH3: nh3}, nil
}

// landfillCH4 computes the FOD methane series in kg/day.
func (s *Simulator) landfillCH4(p Parameters) []float64 {
	docf := DOCfSlope*p.TemperatureC + DOCfIntercept

	potentialPerKg := p.DegradableCarbonFraction * docf *
		MethaneCorrectionFactor * MethaneFraction * MolarRatioCH4C *
		(1 - RecoveryFraction) * (1 - OxidationFactor)
	dailyPotential := p.DailyWasteKg * potentialPerKg

	kernel := FODKernel(p.DecayRatePerYear, p.HorizonDays)
	series := Convolve(constantSeries(1, p.HorizonDays), kernel, p.HorizonDays)
	for i := range series {
		series[i] *= dailyPotential
	}
	return series
}

// landfillN2O computes the delivery-driven nitrous oxide series in kg/day.
// The average of the open-working-face and covered-surface rates, weighted
// by daily exposure, is adjusted for moisture and spread over the 5-day
// release profile.
func (s *Simulator) landfillN2O(p Parameters) []float64 {
	openFraction := clamp01(WorkingFaceHoursPerDay / 24.0)
	avgRate := openFraction*N2OOpenFaceRate + (1-openFraction)*N2OClosedRate

	moistureAdj := (1 - p.MoistureFraction) / (1 - ReferenceMoistureFraction)
	adjRate := avgRate * moistureAdj

	dailyMass := adjRate * MolarRatioN2ON / GramsPerTonne * p.DailyWasteKg

	return Convolve(constantSeries(dailyMass, p.HorizonDays), landfillN2OProfile, p.HorizonDays)
}

// landfillNH3 estimates ammonia volatilized from the working face, spread
// over the same short release profile as N2O.
func (s *Simulator) landfillNH3(p Parameters) []float64 {
	dailyMass := p.DailyWasteKg * TotalNitrogenFraction * LandfillNH3NitrogenFraction * MolarRatioNH3N

	return Convolve(constantSeries(dailyMass, p.HorizonDays), landfillN2OProfile, p.HorizonDays)
}

// addPreDisposal adds holding-area emissions released while deliveries wait
// for burial. The per-kg lifetime rates are spread over the 3-day holding
// profile and summed into the landfill series in place.
func addPreDisposal(ch4, n2o []float64, p Parameters) {
	n := len(ch4)
	ch4Hold := Convolve(constantSeries(p.DailyWasteKg*PreDisposalCH4PerKg, n), preDisposalProfile, n)
	n2oHold := Convolve(constantSeries(p.DailyWasteKg*PreDisposalN2OPerKg, n), preDisposalProfile, n)

	for i := 0; i < n; i++ {
		ch4[i] += ch4Hold[i]
		n2o[i] += n2oHold[i]
	}
}

func clamp01(v float64) float64 {
	return math.Min(math.Max(v, 0), 1)
}
