// internal/analysis/scores.go

package analysis

import "math"

// Weather score blend weights.
const (
	weatherIrradianceWeight = 0.6
	weatherWindWeight       = 0.2
	weatherTempWeight       = 0.2
)

// weatherImpact scores current weather conditions 0-100. Irradiance
// dominates; wind contributes a cooling benefit peaking at 2-4 m/s and
// ambient temperature is penalized as it moves away from 25 °C.
func (e *Engine) weatherImpact(irradiance, windSpeed, ambientTemp float64) float64 {
	irradianceScore := math.Min(100, irradiance/stcIrradiance*100)

	windScore := 100.0
	if windSpeed < 2 || windSpeed > 4 {
		windScore = math.Max(0, 100-math.Abs(windSpeed-3)*10)
	}

	tempScore := math.Max(0, 100-math.Abs(ambientTemp-tempReferenceC)*2)

	score := irradianceScore*weatherIrradianceWeight +
		windScore*weatherWindWeight +
		tempScore*weatherTempWeight
	return round(score, 1)
}

// batteryHealth scores the battery 0-100 from its state of charge. Discrete
// buckets: 100 in the optimal 30-80% band, 95 just outside it, 85 for deep
// discharge or near-full operation.
func (e *Engine) batteryHealth(soc float64) float64 {
	switch {
	case soc >= 30 && soc <= 80:
		return 100
	case (soc >= 20 && soc < 30) || (soc > 80 && soc <= 90):
		return 95
	default:
		return 85
	}
}
