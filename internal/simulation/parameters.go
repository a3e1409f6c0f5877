package simulation

import "fmt"

// Parameters is the immutable input tuple for one simulation run. All three
// pathway models and the avoided-emissions composite consume the same tuple.
type Parameters struct {
	// MoistureFraction is the wet-basis water content of the waste, in
	// (0,1) exclusive.
	MoistureFraction float64

	// TemperatureC is the ambient treatment temperature in °C.
	TemperatureC float64

	// DegradableCarbonFraction (DOC) is the degradable organic carbon
	// fraction of the waste, in (0,1) exclusive.
	DegradableCarbonFraction float64

	// DecayRatePerYear is the landfill first-order decay constant k
	// (1/year), strictly positive.
	DecayRatePerYear float64

	// DailyWasteKg is the mass of waste entering treatment each day.
	// Zero is allowed and yields all-zero series; negative is rejected.
	DailyWasteKg float64

	// HorizonDays is the simulated duration in days, strictly positive.
	HorizonDays int
}

// Validate rejects any parameter outside its valid domain. It returns the
// first violation found, wrapped with the offending value.
func (p Parameters) Validate() error {
	if p.MoistureFraction <= 0 || p.MoistureFraction >= 1 {
		return fmt.Errorf("%w: got %v", ErrMoistureOutOfRange, p.MoistureFraction)
	}
	if p.DegradableCarbonFraction <= 0 || p.DegradableCarbonFraction >= 1 {
		return fmt.Errorf("%w: got %v", ErrCarbonFractionOutOfRange, p.DegradableCarbonFraction)
	}
	if p.DecayRatePerYear <= 0 {
		return fmt.Errorf("%w: got %v", ErrNonPositiveDecayRate, p.DecayRatePerYear)
	}
	if p.DailyWasteKg < 0 {
		return fmt.Errorf("%w: got %v", ErrNegativeWaste, p.DailyWasteKg)
	}
	if p.HorizonDays <= 0 {
		return fmt.Errorf("%w: got %d", ErrNonPositiveHorizon, p.HorizonDays)
	}
	return nil
}

// DryMatterFraction returns the dry-matter share of the waste (1 - moisture).
func (p Parameters) DryMatterFraction() float64 {
	return 1 - p.MoistureFraction
}

// HorizonYears returns the simulated duration in fractional years.
func (p Parameters) HorizonYears() float64 {
	return float64(p.HorizonDays) / DaysPerYear
}
