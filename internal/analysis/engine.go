// internal/analysis/engine.go

// Package analysis implements the performance analysis engine: a physics
// based output predictor, threshold driven fault and health scoring,
// prioritized maintenance recommendations, a seasonal power forecaster and a
// statistical residual anomaly detector. The engine is a stateless value,
// safe for concurrent use; the only non-determinism is the forecaster's
// adjustment draw, which is injectable for reproducible tests.
package analysis

import (
	"math"
	"math/rand"

	"solar_analysis/internal/domain"
)

// Thresholds holds every tunable numeric limit used by the fault scorer and
// the recommendation rules. Kept as data so limits can be tuned or tested
// independently of the logic consuming them.
type Thresholds struct {
	PanelTempHigh       float64 `json:"panel_temp_high"`       // °C
	PanelTempCritical   float64 `json:"panel_temp_critical"`   // °C
	SoilingModerate     float64 `json:"soiling_moderate"`      // %
	SoilingCritical     float64 `json:"soiling_critical"`      // %
	InverterEffLow      float64 `json:"inverter_eff_low"`      // %
	InverterEffBaseline float64 `json:"inverter_eff_baseline"` // %
	BatterySocLow       float64 `json:"battery_soc_low"`       // %
	BatterySocCritical  float64 `json:"battery_soc_critical"`  // %
	DeviationWarning    float64 `json:"deviation_warning"`     // %
	DeviationCritical   float64 `json:"deviation_critical"`    // %
	IrradianceLow       float64 `json:"irradiance_low"`        // W/m²
}

// DefaultThresholds returns the hand-tuned fault and maintenance limits.
func DefaultThresholds() Thresholds {
	return Thresholds{
		PanelTempHigh:       65,
		PanelTempCritical:   75,
		SoilingModerate:     4.0,
		SoilingCritical:     8.0,
		InverterEffLow:      94.0,
		InverterEffBaseline: 96.5,
		BatterySocLow:       20,
		BatterySocCritical:  10,
		DeviationWarning:    10,
		DeviationCritical:   20,
		IrradianceLow:       200,
	}
}

// FeatureWeight pairs a telemetry feature with its static importance weight.
type FeatureWeight struct {
	Name   string  `json:"feature"`
	Weight float64 `json:"importance"`
}

// DefaultFeatureImportance returns the static importance table. Order
// matters: ties in ranking are broken by position in this slice.
func DefaultFeatureImportance() []FeatureWeight {
	return []FeatureWeight{
		{"irradiance", 0.35},
		{"panel_temp", 0.22},
		{"inverter_eff", 0.15},
		{"soiling_index", 0.12},
		{"battery_soc", 0.08},
		{"ambient_temp", 0.04},
		{"wind_speed", 0.02},
		{"tilt", 0.01},
		{"azimuth", 0.01},
		{"pr_baseline", 0.0},
	}
}

// Engine holds the static tables and the forecast randomness source. It has
// no mutable fields, so a single Engine may serve concurrent requests.
type Engine struct {
	thresholds Thresholds
	features   []FeatureWeight
	// randFloat returns a value in [0, 1) for the forecast adjustment.
	randFloat func() float64
}

// NewEngine builds an engine with the default tables and the shared
// math/rand source (safe for concurrent use).
func NewEngine() *Engine {
	return &Engine{
		thresholds: DefaultThresholds(),
		features:   DefaultFeatureImportance(),
		randFloat:  rand.Float64,
	}
}

// NewEngineWithRand builds an engine whose forecast adjustment draws come
// from rng. Use a seeded source for reproducible forecasts in tests.
func NewEngineWithRand(rng *rand.Rand) *Engine {
	e := NewEngine()
	e.randFloat = rng.Float64
	return e
}

// Thresholds returns a copy of the active threshold table.
func (e *Engine) Thresholds() Thresholds {
	return e.thresholds
}

// Features returns the static feature importance table in ranking order.
func (e *Engine) Features() []FeatureWeight {
	out := make([]FeatureWeight, len(e.features))
	copy(out, e.features)
	return out
}

// FeatureNames returns all known feature names in table order.
func (e *Engine) FeatureNames() []string {
	names := make([]string, len(e.features))
	for i, f := range e.features {
		names[i] = f.Name
	}
	return names
}

// Analyze runs the full single-snapshot pipeline: prediction, deviation,
// fault probability, influence ranking, recommendations and the weather and
// battery scores. It is deterministic for a fixed input.
func (e *Engine) Analyze(in domain.TelemetryInput) (*domain.PredictionResult, error) {
	vals, err := resolveInputs(in)
	if err != nil {
		return nil, err
	}

	predicted, metrics := e.predictOutput(vals)
	deviation := deviationPercent(vals.actualOutput, predicted)

	actual := predicted
	if vals.actualOutput != nil {
		actual = *vals.actualOutput
	}

	return &domain.PredictionResult{
		PredictedOutput:    round(predicted, 2),
		ActualOutput:       actual,
		Deviation:          round(deviation, 2),
		FaultProb:          round(e.faultProbability(vals, deviation), 3),
		TopFactors:         e.topFactors(3),
		Recommendations:    e.recommendations(vals, deviation),
		WeatherImpactScore: e.weatherImpact(vals.irradiance, vals.windSpeed, vals.ambientTemp),
		BatteryHealthScore: e.batteryHealth(vals.batterySoc),
		PerformanceMetrics: domain.PerformanceMetrics{
			TempCorrection:   round(metrics.TempCorrection, 3),
			SoilingFactor:    round(metrics.SoilingFactor, 3),
			InverterFactor:   round(metrics.InverterFactor, 3),
			IrradianceFactor: round(metrics.IrradianceFactor, 3),
		},
	}, nil
}

// round rounds v to the given number of decimal places.
func round(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
