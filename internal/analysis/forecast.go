// internal/analysis/forecast.go

package analysis

import (
	"math"

	"solar_analysis/internal/domain"
)

const (
	// MinForecastPoints is the minimum series length: one full day of
	// hourly samples.
	MinForecastPoints = 24

	forecastConfidence = 0.78
	forecastModelName  = "seasonal_pattern"

	// Per-day adjustment is drawn uniformly from
	// [1-forecastAdjustmentSpread/2, 1+forecastAdjustmentSpread/2).
	forecastAdjustmentSpread = 0.10

	forecastLowerBoundRatio = 0.85
	forecastUpperBoundRatio = 1.15
)

// Forecast predicts daily power output for the given horizon from an
// hour-of-day average profile of the series. Dates start the day after the
// last sample. The per-day adjustment draw makes repeated calls differ
// unless the engine was built with a seeded source.
func (e *Engine) Forecast(series []domain.TimeSeriesPoint, days int) (*domain.ForecastSeries, error) {
	if len(series) < MinForecastPoints {
		return nil, &domain.InsufficientDataError{
			What:     "hourly data points",
			Required: MinForecastPoints,
			Got:      len(series),
		}
	}

	// Average each hour-of-day slot across all available days.
	pattern := make([]float64, MinForecastPoints)
	for hour := range pattern {
		sum, count := 0.0, 0
		for i := hour; i < len(series); i += 24 {
			sum += series[i].ACKw
			count++
		}
		if count > 0 {
			pattern[hour] = sum / float64(count)
		}
	}

	dailyTotal := 0.0
	for _, v := range pattern {
		dailyTotal += v
	}

	baseDate := series[len(series)-1].TS
	forecast := make([]domain.ForecastPoint, 0, days)
	for day := 0; day < days; day++ {
		adjustment := 1 - forecastAdjustmentSpread/2 + e.randFloat()*forecastAdjustmentSpread
		predicted := dailyTotal * adjustment

		forecast = append(forecast, domain.ForecastPoint{
			Date:       baseDate.AddDate(0, 0, day+1).Format("2006-01-02"),
			ACKwHat:    round(math.Max(0, predicted), 2),
			LowerBound: round(math.Max(0, predicted*forecastLowerBoundRatio), 2),
			UpperBound: round(predicted*forecastUpperBoundRatio, 2),
		})
	}

	return &domain.ForecastSeries{
		Forecast:   forecast,
		Confidence: forecastConfidence,
		ModelUsed:  forecastModelName,
	}, nil
}
