package simulation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTemperatureFactorCH4(t *testing.T) {
	tests := []struct {
		name  string
		tempC float64
		want  float64
	}{
		{"reference temperature", 25, 1.0},
		{"ten degrees warmer doubles", 35, 2.0},
		{"ten degrees cooler halves", 15, 0.5},
		{"twenty degrees warmer quadruples", 45, 4.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, TemperatureFactorCH4(tt.tempC), 1e-12)
		})
	}
}

func TestTemperatureFactorN2O(t *testing.T) {
	tests := []struct {
		tempC float64
		want  float64
	}{
		{5, 0.1},
		{10, 0.1},
		{15, 0.5},
		{20, 0.5},
		{25, 1.0},
		{30, 1.0},
		{33, 1.2},
		{35, 1.2},
		{38, 1.0},
		{40, 1.0},
		{45, 0.8},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, TemperatureFactorN2O(tt.tempC), 1e-12, "at %v °C", tt.tempC)
	}
}

func TestTemperatureFactorNH3(t *testing.T) {
	assert.InDelta(t, 1.0, TemperatureFactorNH3(25), 1e-12)
	assert.InDelta(t, math.Exp(0.06*10), TemperatureFactorNH3(35), 1e-12)
	assert.Greater(t, TemperatureFactorNH3(40), TemperatureFactorNH3(30))
}

func TestMoistureFactors(t *testing.T) {
	tests := []struct {
		name     string
		moisture float64
		wantCH4  float64
		wantN2O  float64
		wantNH3  float64
	}{
		{"dry", 0.30, 0.1, 0.3, 1.5},
		{"lower boundary", 0.40, 0.5, 0.8, 1.0},
		{"moderate", 0.55, 0.5, 0.8, 1.0},
		{"N2O optimum", 0.65, 1.0, 1.0, 0.8},
		{"wet", 0.75, 1.0, 0.7, 0.8},
		{"saturated", 0.90, 1.2, 0.7, 0.6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.wantCH4, MoistureFactorCH4(tt.moisture), 1e-12)
			assert.InDelta(t, tt.wantN2O, MoistureFactorN2O(tt.moisture), 1e-12)
			assert.InDelta(t, tt.wantNH3, MoistureFactorNH3(tt.moisture), 1e-12)
		})
	}
}

func TestCombinedCorrectionFactors(t *testing.T) {
	t.Run("reference conditions are near unity", func(t *testing.T) {
		// 25 °C, 65% moisture: temperature responses are all 1.
		f := CombinedCorrectionFactors(0.65, 25)
		assert.InDelta(t, 1.0, f.CH4, 1e-12)
		assert.InDelta(t, 1.0, f.N2O, 1e-12)
		assert.InDelta(t, 0.8, f.NH3, 1e-12)
	})

	t.Run("factors multiply independently", func(t *testing.T) {
		f := CombinedCorrectionFactors(0.85, 35)
		assert.InDelta(t, TemperatureFactorCH4(35)*MoistureFactorCH4(0.85), f.CH4, 1e-12)
		assert.InDelta(t, TemperatureFactorN2O(35)*MoistureFactorN2O(0.85), f.N2O, 1e-12)
		assert.InDelta(t, TemperatureFactorNH3(35)*MoistureFactorNH3(0.85), f.NH3, 1e-12)
	})

	t.Run("identity factors", func(t *testing.T) {
		f := unitCorrectionFactors()
		assert.Equal(t, CorrectionFactors{CH4: 1, N2O: 1, NH3: 1}, f)
	})
}
