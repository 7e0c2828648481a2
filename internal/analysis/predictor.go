// internal/analysis/predictor.go

package analysis

import "solar_analysis/internal/domain"

// Fallback values applied when an optional telemetry field is absent.
const (
	defaultBatterySoc     = 70.0
	defaultInverterEff    = 96.0
	defaultSoilingIndex   = 2.0
	defaultTilt           = 30.0
	defaultAzimuth        = 180.0
	defaultWindSpeed      = 2.0
	defaultPRBaseline     = 0.80
	defaultSystemCapacity = 100.0 // kWp
)

// stcIrradiance is the Standard Test Condition reference, 1000 W/m².
const stcIrradiance = 1000.0

// tempDeratePerDegree is the output loss per °C of panel temperature above
// 25 °C, floored at tempCorrectionFloor.
const (
	tempDeratePerDegree = 0.004
	tempCorrectionFloor = 0.7
	tempReferenceC      = 25.0
)

// inputs is a telemetry snapshot with defaults resolved. All fields except
// actualOutput are concrete values from here on.
type inputs struct {
	irradiance     float64
	ambientTemp    float64
	panelTemp      float64
	batterySoc     float64
	inverterEff    float64
	soilingIndex   float64
	tilt           float64
	azimuth        float64
	windSpeed      float64
	prBaseline     float64
	systemCapacity float64
	actualOutput   *float64
}

// resolveInputs validates the three required fields and applies defaults to
// the rest.
func resolveInputs(in domain.TelemetryInput) (inputs, error) {
	if in.Irradiance == nil {
		return inputs{}, &domain.ValidationError{Field: "irradiance"}
	}
	if in.AmbientTemp == nil {
		return inputs{}, &domain.ValidationError{Field: "ambient_temp"}
	}
	if in.PanelTemp == nil {
		return inputs{}, &domain.ValidationError{Field: "panel_temp"}
	}

	return inputs{
		irradiance:     *in.Irradiance,
		ambientTemp:    *in.AmbientTemp,
		panelTemp:      *in.PanelTemp,
		batterySoc:     orDefault(in.BatterySoc, defaultBatterySoc),
		inverterEff:    orDefault(in.InverterEff, defaultInverterEff),
		soilingIndex:   orDefault(in.SoilingIndex, defaultSoilingIndex),
		tilt:           orDefault(in.Tilt, defaultTilt),
		azimuth:        orDefault(in.Azimuth, defaultAzimuth),
		windSpeed:      orDefault(in.WindSpeed, defaultWindSpeed),
		prBaseline:     orDefault(in.PRBaseline, defaultPRBaseline),
		systemCapacity: orDefault(in.SystemCapacity, defaultSystemCapacity),
		actualOutput:   in.ActualOutput,
	}, nil
}

func orDefault(v *float64, fallback float64) float64 {
	if v != nil {
		return *v
	}
	return fallback
}

// predictOutput computes the expected output in kW as a product of the
// nameplate capacity and four correction factors:
//
//	output = capacity × irradiance/STC × PR × tempCorrection × soiling × inverter
//
// Only the temperature correction is clamped ([0.7, 1.0]); the other factors
// pass through so out-of-range inputs stay visible in the metrics.
func (e *Engine) predictOutput(vals inputs) (float64, domain.PerformanceMetrics) {
	tempCorrection := clamp(1-(vals.panelTemp-tempReferenceC)*tempDeratePerDegree,
		tempCorrectionFloor, 1.0)
	soilingFactor := 1 - vals.soilingIndex/100
	inverterFactor := vals.inverterEff / 100
	irradianceFactor := vals.irradiance / stcIrradiance

	predicted := vals.systemCapacity *
		irradianceFactor *
		vals.prBaseline *
		tempCorrection *
		soilingFactor *
		inverterFactor

	return predicted, domain.PerformanceMetrics{
		TempCorrection:   tempCorrection,
		SoilingFactor:    soilingFactor,
		InverterFactor:   inverterFactor,
		IrradianceFactor: irradianceFactor,
	}
}

// deviationPercent returns the percentage deviation of actual from predicted
// output. Without an actual reading, or with a non-positive prediction, the
// deviation is defined as zero rather than an error.
func deviationPercent(actual *float64, predicted float64) float64 {
	if actual == nil || predicted <= 0 {
		return 0
	}
	return (*actual - predicted) / predicted * 100
}
