// internal/domain/models.go

package domain

import "time"

// TelemetryInput is a single telemetry snapshot for one site. Fields are
// pointers so that absent JSON keys can be told apart from zero values:
// Irradiance, AmbientTemp and PanelTemp are required, everything else falls
// back to fixed defaults when nil.
type TelemetryInput struct {
	Irradiance     *float64 `json:"irradiance"`      // W/m²
	AmbientTemp    *float64 `json:"ambient_temp"`    // °C
	PanelTemp      *float64 `json:"panel_temp"`      // °C
	BatterySoc     *float64 `json:"battery_soc"`     // %
	InverterEff    *float64 `json:"inverter_eff"`    // %
	SoilingIndex   *float64 `json:"soiling_index"`   // % loss
	Tilt           *float64 `json:"tilt"`            // degrees
	Azimuth        *float64 `json:"azimuth"`         // degrees
	WindSpeed      *float64 `json:"wind_speed"`      // m/s
	PRBaseline     *float64 `json:"pr_baseline"`     // performance ratio
	SystemCapacity *float64 `json:"system_capacity"` // kWp
	ActualOutput   *float64 `json:"actual_output"`   // kW, optional
}

// PerformanceMetrics are the intermediate correction factors behind a
// prediction, reported for transparency.
type PerformanceMetrics struct {
	TempCorrection   float64 `json:"temp_correction"`
	SoilingFactor    float64 `json:"soiling_factor"`
	InverterFactor   float64 `json:"inverter_factor"`
	IrradianceFactor float64 `json:"irradiance_factor"`
}

// PredictionResult is the full analysis output for one telemetry snapshot.
type PredictionResult struct {
	PredictedOutput    float64            `json:"predicted_output"`
	ActualOutput       float64            `json:"actual_output"`
	Deviation          float64            `json:"deviation"`
	FaultProb          float64            `json:"fault_prob"`
	TopFactors         []string           `json:"top_factors"`
	Recommendations    []Recommendation   `json:"recommendations"`
	WeatherImpactScore float64            `json:"weather_impact_score"`
	BatteryHealthScore float64            `json:"battery_health_score"`
	PerformanceMetrics PerformanceMetrics `json:"performance_metrics"`
}

// Priority of a maintenance recommendation.
type Priority string

const (
	PriorityCritical Priority = "Critical"
	PriorityHigh     Priority = "High"
	PriorityMedium   Priority = "Medium"
	PriorityInfo     Priority = "Info"
)

// Rank returns the sort rank for a priority, Critical first. Unknown
// priorities sort last.
func (p Priority) Rank() int {
	switch p {
	case PriorityCritical:
		return 0
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityInfo:
		return 3
	}
	return 4
}

// Recommendation is one actionable maintenance finding.
type Recommendation struct {
	Priority Priority `json:"priority"`
	Message  string   `json:"msg"`
	Action   string   `json:"action"`
}

// TimeSeriesPoint is one hourly sample of site telemetry used for
// forecasting. The series is assumed chronological with no gaps.
type TimeSeriesPoint struct {
	TS       time.Time `json:"ts"`
	GHIWm2   float64   `json:"ghi_wm2"`
	AirTempC float64   `json:"air_temp_c"`
	WindMs   float64   `json:"wind_ms"`
	ACKw     float64   `json:"ac_kw"`
}

// ForecastPoint is one forecast day with uncertainty bounds
// (lower ≤ predicted ≤ upper).
type ForecastPoint struct {
	Date       string  `json:"date"`
	ACKwHat    float64 `json:"ac_kw_hat"`
	LowerBound float64 `json:"lower_bound"`
	UpperBound float64 `json:"upper_bound"`
}

// ForecastSeries is a multi-day power forecast.
type ForecastSeries struct {
	Forecast   []ForecastPoint `json:"forecast"`
	Confidence float64         `json:"confidence"`
	ModelUsed  string          `json:"model_used"`
}

// ResidualPoint pairs an actual and a predicted output at one timestamp.
type ResidualPoint struct {
	TS        time.Time `json:"ts"`
	Actual    float64   `json:"actual"`
	Predicted float64   `json:"predicted"`
}

// AnomalyTypeStatisticalOutlier tags points flagged by the IQR fence.
const AnomalyTypeStatisticalOutlier = "statistical_outlier"

// AnomalyRecord is one flagged residual. Start equals End for point
// anomalies.
type AnomalyRecord struct {
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Score     float64   `json:"score"`
	Type      string    `json:"type"`
	Magnitude float64   `json:"magnitude"`
}

// AnomalyReport is the outcome of residual anomaly detection.
type AnomalyReport struct {
	Anomalies   []AnomalyRecord `json:"anomalies"`
	AnomalyRate float64         `json:"anomaly_rate"`
	Method      string          `json:"method"`
}

// AnalysisRequest is a single-site analysis request from the boundary layer.
type AnalysisRequest struct {
	SiteID string          `json:"site_id"`
	Inputs *TelemetryInput `json:"inputs"`
}

// SiteResult is a per-site analysis outcome. The embedded result is nil for
// failed batch items; its fields flatten into the JSON object on success.
type SiteResult struct {
	*PredictionResult
	SiteID string `json:"site_id"`
	Status string `json:"status,omitempty"`
	Error  string `json:"error,omitempty"`
}

// ImageFinding is the rule-table image classification outcome.
type ImageFinding struct {
	Type            string                   `json:"type"`
	Confidence      float64                  `json:"confidence"`
	OcclusionRatio  *float64                 `json:"occlusion_ratio"`
	MaskURL         *string                  `json:"mask_url"`
	DetectedObjects []map[string]interface{} `json:"detected_objects"`
}
