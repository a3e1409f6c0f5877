package simulation

// Fixed daily emission profiles. The 50-day composting profiles follow the
// measured emission courses of Yang et al. 2017 (Figure 1); the short
// landfill profiles reflect fast near-surface release per waste delivery.
// All batch-redistribution profiles are normalized to sum to 1 at init; the
// FOD kernel is generated per run in FODKernel and is never normalized.

// vermicompostCH4Profile: gradual ramp over the first ten days, peak around
// days 11-20, slow decline, residual emissions through day 50.
var vermicompostCH4Profile = mustNormalize([]float64{ //nolint:gochecknoglobals // immutable process configuration
	0.01, 0.02, 0.03, 0.04, 0.05, 0.06, 0.07, 0.08, 0.09, 0.10,
	0.11, 0.12, 0.13, 0.14, 0.15, 0.14, 0.13, 0.12, 0.11, 0.10,
	0.09, 0.08, 0.07, 0.06, 0.05, 0.04, 0.03, 0.02, 0.02, 0.02,
	0.01, 0.01, 0.01, 0.01, 0.01, 0.01, 0.01, 0.01, 0.01, 0.01,
	0.005, 0.005, 0.005, 0.005, 0.005, 0.005, 0.005, 0.005, 0.005, 0.005,
})

// vermicompostN2OProfile: main peak days 11-20 with a broad shoulder into
// the third decade.
var vermicompostN2OProfile = mustNormalize([]float64{ //nolint:gochecknoglobals // immutable process configuration
	0.05, 0.06, 0.07, 0.08, 0.09, 0.10, 0.11, 0.12, 0.13, 0.14,
	0.15, 0.16, 0.17, 0.18, 0.19, 0.18, 0.17, 0.16, 0.15, 0.14,
	0.13, 0.12, 0.11, 0.10, 0.09, 0.08, 0.07, 0.06, 0.05, 0.04,
	0.03, 0.03, 0.02, 0.02, 0.02, 0.01, 0.01, 0.01, 0.01, 0.01,
	0.005, 0.005, 0.005, 0.005, 0.005, 0.005, 0.005, 0.005, 0.005, 0.005,
})

// vermicompostNH3Profile: volatilization peaks immediately and decays fast.
var vermicompostNH3Profile = mustNormalize([]float64{ //nolint:gochecknoglobals // immutable process configuration
	0.15, 0.14, 0.13, 0.12, 0.11, 0.10, 0.09, 0.08, 0.07, 0.06,
	0.05, 0.05, 0.04, 0.04, 0.03, 0.03, 0.02, 0.02, 0.02, 0.02,
	0.01, 0.01, 0.01, 0.01, 0.01, 0.01, 0.01, 0.01, 0.01, 0.01,
	0.005, 0.005, 0.005, 0.005, 0.005, 0.005, 0.005, 0.005, 0.005, 0.005,
	0.005, 0.005, 0.005, 0.005, 0.005, 0.005, 0.005, 0.005, 0.005, 0.005,
})

// Thermophilic profiles carry the same lifetime totals but release them
// earlier: the self-heating thermophilic phase drives a sharper peak over
// days 6-15 followed by a quick decline once the pile cools.

var thermophilicCH4Profile = mustNormalize([]float64{ //nolint:gochecknoglobals // immutable process configuration
	0.03, 0.05, 0.08, 0.12, 0.16,
	0.20, 0.23, 0.25, 0.25, 0.24, 0.22, 0.20, 0.17, 0.14, 0.12,
	0.10, 0.08, 0.07, 0.06, 0.05, 0.04, 0.03, 0.03, 0.02, 0.02,
	0.01, 0.01, 0.01, 0.01, 0.01, 0.01, 0.01, 0.01, 0.01, 0.01,
	0.01, 0.01, 0.01, 0.01, 0.01,
	0.005, 0.005, 0.005, 0.005, 0.005, 0.005, 0.005, 0.005, 0.005, 0.005,
})

var thermophilicN2OProfile = mustNormalize([]float64{ //nolint:gochecknoglobals // immutable process configuration
	0.06, 0.09, 0.13, 0.17, 0.21,
	0.25, 0.28, 0.30, 0.30, 0.28, 0.26, 0.23, 0.20, 0.17, 0.14,
	0.11, 0.09, 0.07, 0.06, 0.05, 0.04, 0.03, 0.02, 0.02, 0.01,
	0.01, 0.01, 0.01, 0.01, 0.01, 0.01, 0.01, 0.01, 0.01, 0.01,
	0.01, 0.01, 0.01, 0.01, 0.01,
	0.005, 0.005, 0.005, 0.005, 0.005, 0.005, 0.005, 0.005, 0.005, 0.005,
})

var thermophilicNH3Profile = mustNormalize([]float64{ //nolint:gochecknoglobals // immutable process configuration
	0.30, 0.27, 0.24, 0.20, 0.17,
	0.14, 0.12, 0.10, 0.08, 0.07, 0.06, 0.05, 0.04, 0.03, 0.03,
	0.02, 0.02, 0.01, 0.01, 0.01, 0.01, 0.01, 0.01, 0.01, 0.01,
	0.005, 0.005, 0.005, 0.005, 0.005, 0.005, 0.005, 0.005, 0.005, 0.005,
	0.005, 0.005, 0.005, 0.005, 0.005, 0.005, 0.005, 0.005, 0.005, 0.005,
	0.005, 0.005, 0.005, 0.005, 0.005,
})

// landfillN2OProfile spreads each day's delivery-driven N2O pulse over five
// days, front-loaded on days 2-3.
var landfillN2OProfile = mustNormalize([]float64{ //nolint:gochecknoglobals // immutable process configuration
	0.10, 0.30, 0.40, 0.15, 0.05,
})

// preDisposalProfile spreads holding-area emissions over the three days a
// delivery typically waits before burial.
var preDisposalProfile = mustNormalize([]float64{ //nolint:gochecknoglobals // immutable process configuration
	0.50, 0.30, 0.20,
})
