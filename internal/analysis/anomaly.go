// internal/analysis/anomaly.go

package analysis

import (
	"math"
	"sort"

	"solar_analysis/internal/domain"
)

const (
	// MinResidualPoints is the minimum residual count for a meaningful
	// quartile estimate.
	MinResidualPoints = 7

	anomalyMethodName = "iqr_statistical"
	iqrFenceFactor    = 1.5
)

// DetectAnomalies flags residuals above the upper Tukey fence
// Q3 + 1.5×IQR. Residual magnitudes are non-negative, so only the upper
// fence applies. The anomaly score scales the overshoot against twice the
// fence, capped at 1.
func (e *Engine) DetectAnomalies(residuals []domain.ResidualPoint) (*domain.AnomalyReport, error) {
	if len(residuals) < MinResidualPoints {
		return nil, &domain.InsufficientDataError{
			What:     "residual points",
			Required: MinResidualPoints,
			Got:      len(residuals),
		}
	}

	magnitudes := make([]float64, len(residuals))
	for i, p := range residuals {
		magnitudes[i] = math.Abs(p.Actual - p.Predicted)
	}

	q1 := percentile(magnitudes, 25)
	q3 := percentile(magnitudes, 75)
	threshold := q3 + iqrFenceFactor*(q3-q1)

	anomalies := make([]domain.AnomalyRecord, 0)
	for i, p := range residuals {
		r := magnitudes[i]
		if r <= threshold {
			continue
		}
		anomalies = append(anomalies, domain.AnomalyRecord{
			Start:     p.TS,
			End:       p.TS,
			Score:     round(math.Min(1.0, r/(threshold*2)), 3),
			Type:      domain.AnomalyTypeStatisticalOutlier,
			Magnitude: round(r, 2),
		})
	}

	rate := float64(len(anomalies)) / float64(len(residuals))
	return &domain.AnomalyReport{
		Anomalies:   anomalies,
		AnomalyRate: round(rate, 3),
		Method:      anomalyMethodName,
	}, nil
}

// percentile computes the p-th percentile of values using linear
// interpolation between closest ranks, matching numpy's default.
func percentile(values []float64, p float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	rank := p / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo]
	}
	frac := rank - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}
