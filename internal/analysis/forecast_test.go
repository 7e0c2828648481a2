package analysis

import (
	"math/rand"
	"testing"
	"time"

	"solar_analysis/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hourlySeries(n int, acKw float64) []domain.TimeSeriesPoint {
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	series := make([]domain.TimeSeriesPoint, n)
	for i := range series {
		series[i] = domain.TimeSeriesPoint{
			TS:       start.Add(time.Duration(i) * time.Hour),
			GHIWm2:   600,
			AirTempC: 22,
			WindMs:   3,
			ACKw:     acKw,
		}
	}
	return series
}

func TestForecastFlatDay(t *testing.T) {
	e := NewEngineWithRand(rand.New(rand.NewSource(1)))

	series := hourlySeries(24, 5.0)
	result, err := e.Forecast(series, 7)
	require.NoError(t, err)

	assert.Equal(t, 0.78, result.Confidence)
	assert.Equal(t, "seasonal_pattern", result.ModelUsed)
	require.Len(t, result.Forecast, 7)

	// Flat 5 kW profile → daily total 120; each day is scaled by a draw
	// from [0.95, 1.05).
	for _, p := range result.Forecast {
		assert.GreaterOrEqual(t, p.ACKwHat, 114.0)
		assert.LessOrEqual(t, p.ACKwHat, 126.0)
		assert.InDelta(t, p.ACKwHat*0.85, p.LowerBound, 0.02)
		assert.InDelta(t, p.ACKwHat*1.15, p.UpperBound, 0.02)
		assert.LessOrEqual(t, p.LowerBound, p.ACKwHat)
		assert.LessOrEqual(t, p.ACKwHat, p.UpperBound)
	}

	// Dates start the day after the last sample.
	assert.Equal(t, "2024-06-02", result.Forecast[0].Date)
	assert.Equal(t, "2024-06-08", result.Forecast[6].Date)
}

func TestForecastSeededReproducible(t *testing.T) {
	series := hourlySeries(48, 4.0)

	first, err := NewEngineWithRand(rand.New(rand.NewSource(42))).Forecast(series, 5)
	require.NoError(t, err)
	second, err := NewEngineWithRand(rand.New(rand.NewSource(42))).Forecast(series, 5)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestForecastAveragesAcrossDays(t *testing.T) {
	e := NewEngineWithRand(rand.New(rand.NewSource(7)))

	// Two days: 2 kW then 6 kW for every hour → hourly mean 4, total 96.
	series := append(hourlySeries(24, 2.0), hourlySeries(24, 6.0)...)
	for i := 24; i < 48; i++ {
		series[i].TS = series[23].TS.Add(time.Duration(i-23) * time.Hour)
	}

	result, err := e.Forecast(series, 1)
	require.NoError(t, err)
	require.Len(t, result.Forecast, 1)

	p := result.Forecast[0]
	assert.GreaterOrEqual(t, p.ACKwHat, 96.0*0.95)
	assert.LessOrEqual(t, p.ACKwHat, 96.0*1.05)
}

func TestForecastMinimumSeriesLength(t *testing.T) {
	e := NewEngine()

	_, err := e.Forecast(hourlySeries(23, 5.0), 7)
	require.Error(t, err)

	var dataErr *domain.InsufficientDataError
	require.ErrorAs(t, err, &dataErr)
	assert.Equal(t, 24, dataErr.Required)
	assert.Equal(t, 23, dataErr.Got)

	_, err = e.Forecast(hourlySeries(24, 5.0), 7)
	assert.NoError(t, err)
}

func TestForecastNonNegative(t *testing.T) {
	e := NewEngineWithRand(rand.New(rand.NewSource(3)))

	result, err := e.Forecast(hourlySeries(24, 0), 3)
	require.NoError(t, err)

	for _, p := range result.Forecast {
		assert.GreaterOrEqual(t, p.ACKwHat, 0.0)
		assert.GreaterOrEqual(t, p.LowerBound, 0.0)
	}
}
