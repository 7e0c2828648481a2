package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWeatherImpact(t *testing.T) {
	e := NewEngine()

	tests := []struct {
		name        string
		irradiance  float64
		windSpeed   float64
		ambientTemp float64
		want        float64
	}{
		{"ideal conditions", 1000, 3, 25, 100},
		{"reference case", 915, 2.3, 32, 92.1},
		{"irradiance capped at STC", 1400, 3, 25, 100},
		{"calm air loses wind score", 1000, 0, 25, 60 + 0.2*70 + 20},
		{"hot day penalty", 1000, 3, 45, 60 + 20 + 0.2*60},
		{"night", 0, 3, 25, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.weatherImpact(tt.irradiance, tt.windSpeed, tt.ambientTemp)
			assert.InDelta(t, tt.want, got, 0.01)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 100.0)
		})
	}
}

func TestWeatherImpactBounded(t *testing.T) {
	e := NewEngine()

	for _, wind := range []float64{0, 1.9, 2, 3, 4, 4.1, 15, 40} {
		for _, temp := range []float64{-30, 0, 25, 60, 90} {
			got := e.weatherImpact(500, wind, temp)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 100.0)
		}
	}
}

func TestBatteryHealthBuckets(t *testing.T) {
	e := NewEngine()

	tests := []struct {
		soc  float64
		want float64
	}{
		{0, 85},
		{5, 85},
		{19.9, 85},
		{20, 95},
		{29.9, 95},
		{30, 100},
		{55, 100},
		{80, 100},
		{80.1, 95},
		{90, 95},
		{90.1, 85},
		{100, 85},
	}

	for _, tt := range tests {
		got := e.batteryHealth(tt.soc)
		assert.Equalf(t, tt.want, got, "soc=%g", tt.soc)
		assert.Contains(t, []float64{85, 95, 100}, got)
	}
}
