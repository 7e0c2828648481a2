// internal/analysis/fault.go

package analysis

import "math"

// Fault score increments. Categories are independent and accumulate; the
// branches within one category are mutually exclusive.
const (
	faultDeviationCritical = 0.4
	faultDeviationWarning  = 0.2
	faultPanelTempCritical = 0.3
	faultPanelTempHigh     = 0.1
	faultSoilingHeavy      = 0.2
	faultInverterEffLow    = 0.1
)

// faultProbability maps telemetry and deviation onto a fault probability in
// [0, 1] by summing fixed increments for each exceeded threshold.
func (e *Engine) faultProbability(vals inputs, deviation float64) float64 {
	t := e.thresholds
	score := 0.0

	switch {
	case math.Abs(deviation) > t.DeviationCritical:
		score += faultDeviationCritical
	case math.Abs(deviation) > t.DeviationWarning:
		score += faultDeviationWarning
	}

	switch {
	case vals.panelTemp > t.PanelTempCritical:
		score += faultPanelTempCritical
	case vals.panelTemp > t.PanelTempHigh:
		score += faultPanelTempHigh
	}

	if vals.soilingIndex > t.SoilingCritical {
		score += faultSoilingHeavy
	}

	if vals.inverterEff < t.InverterEffLow {
		score += faultInverterEffLow
	}

	return math.Min(1.0, score)
}
