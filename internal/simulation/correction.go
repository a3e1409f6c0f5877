package simulation

import "math"

// Environmental correction functions (Yang et al. 2017). Each returns a
// multiplicative factor applied to a pathway's base lifetime emission total
// before profile redistribution. Factors are only applied in the
// Yang-corrected variant; the baseline variant uses the raw factors.

// TemperatureFactorCH4 doubles per 10 °C around the 25 °C reference (Q10=2).
func TemperatureFactorCH4(tempC float64) float64 {
	return math.Pow(Q10CH4, (tempC-ReferenceTemperatureC)/10)
}

// TemperatureFactorN2O is an empirical step response peaking at 30-35 °C.
func TemperatureFactorN2O(tempC float64) float64 {
	switch {
	case tempC <= 10:
		return 0.1
	case tempC <= 20:
		return 0.5
	case tempC <= 30:
		return 1.0
	case tempC <= 35:
		return 1.2
	case tempC <= 40:
		return 1.0
	default:
		return 0.8
	}
}

// TemperatureFactorNH3 grows exponentially with temperature.
func TemperatureFactorNH3(tempC float64) float64 {
	return math.Exp(NH3TemperatureCoefficient * (tempC - ReferenceTemperatureC))
}

// MoistureFactorCH4 increases with moisture; wet piles favor the anaerobic
// pathway.
func MoistureFactorCH4(moisture float64) float64 {
	switch {
	case moisture < 0.40:
		return 0.1
	case moisture < 0.60:
		return 0.5
	case moisture < 0.80:
		return 1.0
	default:
		return 1.2
	}
}

// MoistureFactorN2O peaks at 60-70% moisture where aerobic and anaerobic
// zones alternate.
func MoistureFactorN2O(moisture float64) float64 {
	switch {
	case moisture < 0.40:
		return 0.3
	case moisture < 0.60:
		return 0.8
	case moisture < 0.70:
		return 1.0
	default:
		return 0.7
	}
}

// MoistureFactorNH3 decreases with moisture; dry material volatilizes more
// ammonia.
func MoistureFactorNH3(moisture float64) float64 {
	switch {
	case moisture < 0.40:
		return 1.5
	case moisture < 0.60:
		return 1.0
	case moisture < 0.80:
		return 0.8
	default:
		return 0.6
	}
}

// CorrectionFactors holds the combined temperature x moisture factor per gas.
type CorrectionFactors struct {
	CH4 float64
	N2O float64
	NH3 float64
}

// CombinedCorrectionFactors computes the per-gas products of the independent
// temperature and moisture responses.
func CombinedCorrectionFactors(moisture, tempC float64) CorrectionFactors {
	return CorrectionFactors{
		CH4: TemperatureFactorCH4(tempC) * MoistureFactorCH4(moisture),
		N2O: TemperatureFactorN2O(tempC) * MoistureFactorN2O(moisture),
		NH3: TemperatureFactorNH3(tempC) * MoistureFactorNH3(moisture),
	}
}

// unitCorrectionFactors is the identity applied in the baseline variant.
func unitCorrectionFactors() CorrectionFactors {
	return CorrectionFactors{CH4: 1, N2O: 1, NH3: 1}
}
