package simulation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validParameters() Parameters {
	return Parameters{
		MoistureFraction:         0.85,
		TemperatureC:             25,
		DegradableCarbonFraction: 0.15,
		DecayRatePerYear:         0.06,
		DailyWasteKg:             100,
		HorizonDays:              365,
	}
}

func TestParametersValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Parameters)
		wantErr error
	}{
		{
			name:    "valid reference tuple",
			mutate:  func(*Parameters) {},
			wantErr: nil,
		},
		{
			name:    "zero waste is allowed",
			mutate:  func(p *Parameters) { p.DailyWasteKg = 0 },
			wantErr: nil,
		},
		{
			name:    "moisture zero",
			mutate:  func(p *Parameters) { p.MoistureFraction = 0 },
			wantErr: ErrMoistureOutOfRange,
		},
		{
			name:    "moisture one",
			mutate:  func(p *Parameters) { p.MoistureFraction = 1 },
			wantErr: ErrMoistureOutOfRange,
		},
		{
			name:    "moisture above one",
			mutate:  func(p *Parameters) { p.MoistureFraction = 1.2 },
			wantErr: ErrMoistureOutOfRange,
		},
		{
			name:    "carbon fraction zero",
			mutate:  func(p *Parameters) { p.DegradableCarbonFraction = 0 },
			wantErr: ErrCarbonFractionOutOfRange,
		},
		{
			name:    "carbon fraction one",
			mutate:  func(p *Parameters) { p.DegradableCarbonFraction = 1 },
			wantErr: ErrCarbonFractionOutOfRange,
		},
		{
			name:    "zero decay rate",
			mutate:  func(p *Parameters) { p.DecayRatePerYear = 0 },
			wantErr: ErrNonPositiveDecayRate,
		},
		{
			name:    "negative decay rate",
			mutate:  func(p *Parameters) { p.DecayRatePerYear = -0.06 },
			wantErr: ErrNonPositiveDecayRate,
		},
		{
			name:    "negative waste",
			mutate:  func(p *Parameters) { p.DailyWasteKg = -1 },
			wantErr: ErrNegativeWaste,
		},
		{
			name:    "zero horizon",
			mutate:  func(p *Parameters) { p.HorizonDays = 0 },
			wantErr: ErrNonPositiveHorizon,
		},
		{
			name:    "negative horizon",
			mutate:  func(p *Parameters) { p.HorizonDays = -10 },
			wantErr: ErrNonPositiveHorizon,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validParameters()
			tt.mutate(&p)

			err := p.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestParametersDerived(t *testing.T) {
	p := validParameters()

	assert.InDelta(t, 0.15, p.DryMatterFraction(), 1e-12)
	assert.InDelta(t, 1.0, p.HorizonYears(), 1e-12)

	p.HorizonDays = 7300
	assert.InDelta(t, 20.0, p.HorizonYears(), 1e-12)
}
