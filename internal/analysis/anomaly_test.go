package analysis

import (
	"testing"
	"time"

	"solar_analysis/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func residualSeries(magnitudes ...float64) []domain.ResidualPoint {
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	points := make([]domain.ResidualPoint, len(magnitudes))
	for i, m := range magnitudes {
		points[i] = domain.ResidualPoint{
			TS:        start.Add(time.Duration(i) * time.Hour),
			Actual:    50 + m,
			Predicted: 50,
		}
	}
	return points
}

func TestDetectAnomaliesSingleOutlier(t *testing.T) {
	e := NewEngine()

	report, err := e.DetectAnomalies(residualSeries(1, 1, 1, 1, 1, 1, 10))
	require.NoError(t, err)

	assert.Equal(t, "iqr_statistical", report.Method)
	require.Len(t, report.Anomalies, 1)

	a := report.Anomalies[0]
	// Q1 = Q3 = 1 → fence at 1; the 10 overshoots fivefold, so the score
	// saturates.
	assert.Equal(t, 1.0, a.Score)
	assert.Equal(t, domain.AnomalyTypeStatisticalOutlier, a.Type)
	assert.InDelta(t, 10.0, a.Magnitude, 0.0001)
	assert.Equal(t, a.Start, a.End)
	assert.InDelta(t, 0.143, report.AnomalyRate, 0.0001)
}

func TestDetectAnomaliesNegativeResidual(t *testing.T) {
	e := NewEngine()

	points := residualSeries(1, 1, 1, 1, 1, 1, 1)
	// Underproduction is as anomalous as overproduction: magnitude only.
	points[3].Actual = points[3].Predicted - 12

	report, err := e.DetectAnomalies(points)
	require.NoError(t, err)
	require.Len(t, report.Anomalies, 1)
	assert.InDelta(t, 12.0, report.Anomalies[0].Magnitude, 0.0001)
}

func TestDetectAnomaliesCleanSeries(t *testing.T) {
	e := NewEngine()

	report, err := e.DetectAnomalies(residualSeries(1, 1.2, 0.9, 1.1, 1, 0.8, 1.05))
	require.NoError(t, err)

	assert.Empty(t, report.Anomalies)
	assert.NotNil(t, report.Anomalies)
	assert.Equal(t, 0.0, report.AnomalyRate)
}

func TestDetectAnomaliesScoreScaling(t *testing.T) {
	e := NewEngine()

	// Magnitudes 0..6 plus a mild outlier: Q1 = 1.75, Q3 = 5.25,
	// IQR = 3.5, fence = 10.5.
	report, err := e.DetectAnomalies(residualSeries(0, 1, 2, 3, 4, 5, 6, 14))
	require.NoError(t, err)
	require.Len(t, report.Anomalies, 1)

	// score = 14 / (10.5 × 2)
	assert.InDelta(t, 0.667, report.Anomalies[0].Score, 0.0005)
	assert.InDelta(t, 0.125, report.AnomalyRate, 0.0001)
}

func TestDetectAnomaliesMinimumPoints(t *testing.T) {
	e := NewEngine()

	_, err := e.DetectAnomalies(residualSeries(1, 1, 1, 1, 1, 1))
	require.Error(t, err)

	var dataErr *domain.InsufficientDataError
	require.ErrorAs(t, err, &dataErr)
	assert.Equal(t, 7, dataErr.Required)
	assert.Equal(t, 6, dataErr.Got)

	_, err = e.DetectAnomalies(residualSeries(1, 1, 1, 1, 1, 1, 1))
	assert.NoError(t, err)
}

func TestPercentileInterpolation(t *testing.T) {
	values := []float64{1, 2, 3, 4}

	assert.InDelta(t, 1.75, percentile(values, 25), 0.0001)
	assert.InDelta(t, 2.5, percentile(values, 50), 0.0001)
	assert.InDelta(t, 3.25, percentile(values, 75), 0.0001)
	assert.InDelta(t, 1.0, percentile(values, 0), 0.0001)
	assert.InDelta(t, 4.0, percentile(values, 100), 0.0001)
}
