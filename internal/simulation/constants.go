package simulation

// Molar mass ratios used to convert elemental mass flows into gas mass flows.
const (
	// MolarRatioCH4C converts kg of carbon to kg of methane (16/12).
	MolarRatioCH4C = 16.0 / 12.0

	// MolarRatioN2ON converts kg of nitrogen to kg of nitrous oxide (44/28).
	MolarRatioN2ON = 44.0 / 28.0

	// MolarRatioNH3N converts kg of nitrogen to kg of ammonia (17/14).
	MolarRatioNH3N = 17.0 / 14.0
)

// Global Warming Potentials on the 20-year horizon basis (IPCC AR6).
const (
	// GWP20CH4 is kg CO2eq per kg CH4 over 20 years.
	GWP20CH4 = 79.7

	// GWP20N2O is kg CO2eq per kg N2O over 20 years.
	GWP20N2O = 273.0
)

// Substrate reference composition (Yang et al. 2017, municipal organic waste).
const (
	// TotalOrganicCarbonFraction is the total organic carbon fraction of
	// fresh substrate (kg C per kg dry matter).
	TotalOrganicCarbonFraction = 0.436

	// TotalNitrogenFraction is the total nitrogen fraction of fresh
	// substrate (kg N per kg dry matter, 14.2 g/kg).
	TotalNitrogenFraction = 14.2 / 1000.0
)

// Composting process constants.
const (
	// CompostingDays is the fixed batch treatment duration for both
	// composting pathways (Yang et al. 2017).
	CompostingDays = 50
)

// Landfill first-order decay (FOD) model constants (IPCC 2006 Waste Model).
const (
	// DaysPerYear converts the annual decay rate to a daily basis.
	DaysPerYear = 365.0

	// DOCfSlope and DOCfIntercept give the temperature-dependent fraction
	// of degradable organic carbon that actually decomposes:
	// DOCf = DOCfSlope*T + DOCfIntercept.
	DOCfSlope     = 0.0147
	DOCfIntercept = 0.28

	// MethaneCorrectionFactor (MCF) for managed anaerobic landfills.
	MethaneCorrectionFactor = 1.0

	// MethaneFraction (F) is the CH4 fraction of generated landfill gas.
	MethaneFraction = 0.5

	// RecoveryFraction is the captured CH4 fraction (none assumed).
	RecoveryFraction = 0.0

	// OxidationFactor is the CH4 fraction oxidized in the cover layer.
	OxidationFactor = 0.1
)

// Landfill N2O constants (Wang et al. 2017).
const (
	// N2OOpenFaceRate and N2OClosedRate are N2O-N emission rates for the
	// open working face and the covered surface, in g N per Mg of waste.
	N2OOpenFaceRate = 1.91
	N2OClosedRate   = 2.15

	// WorkingFaceHoursPerDay is the daily duration the working face stays
	// open, used to weight the open and closed rates.
	WorkingFaceHoursPerDay = 8.0

	// ReferenceMoistureFraction anchors the landfill N2O moisture
	// adjustment (1-moisture)/(1-ReferenceMoistureFraction).
	ReferenceMoistureFraction = 0.55

	// GramsPerTonne converts the per-Mg gram rates to kg per kg.
	GramsPerTonne = 1_000_000.0
)

// Landfill NH3 constants (simplified volatilization estimate).
const (
	// LandfillNH3NitrogenFraction is the share of total substrate nitrogen
	// lost as NH3-N from the working face.
	LandfillNH3NitrogenFraction = 0.05
)

// Pre-disposal holding-area constants. Waste awaiting collection emits for a
// short period before entering the landfill; rates are empirical per-kg
// lifetime totals released over the 3-day holding profile.
const (
	// PreDisposalCH4PerKg is kg CH4 emitted per kg of waste while held.
	PreDisposalCH4PerKg = 2.0e-4

	// PreDisposalN2OPerKg is kg N2O emitted per kg of waste while held.
	PreDisposalN2OPerKg = 1.0e-5
)

// Environmental correction constants (Yang et al. 2017).
const (
	// ReferenceTemperatureC anchors the exponential temperature responses.
	ReferenceTemperatureC = 25.0

	// Q10CH4 is the CH4 temperature sensitivity (rate doubles per 10 °C).
	Q10CH4 = 2.0

	// NH3TemperatureCoefficient drives the exponential NH3 response
	// exp(NH3TemperatureCoefficient * (T - ReferenceTemperatureC)).
	NH3TemperatureCoefficient = 0.06
)

// Unit conversion constants.
const (
	// KgPerTonne converts kilograms to metric tonnes.
	KgPerTonne = 1000.0
)
