// internal/analysis/recommend.go

package analysis

import (
	"fmt"
	"sort"

	"solar_analysis/internal/domain"
)

// maxRecommendations caps the returned list after priority sorting.
const maxRecommendations = 6

// recommendations evaluates the maintenance rule list in fixed order. Each
// rule appends at most one finding; rules are independent, so several can
// co-fire (e.g. both temperature and soiling issues). The result is stably
// sorted by priority and truncated to maxRecommendations.
func (e *Engine) recommendations(vals inputs, deviation float64) []domain.Recommendation {
	t := e.thresholds
	recs := make([]domain.Recommendation, 0, 8)

	// Rule 1: panel temperature.
	if vals.panelTemp > t.PanelTempCritical {
		recs = append(recs, domain.Recommendation{
			Priority: domain.PriorityCritical,
			Message: fmt.Sprintf("Panel over-temperature detected (%g°C). Immediate inspection required - possible hotspot or cooling issue.",
				vals.panelTemp),
			Action: "Inspect panels for hotspots, check ventilation, consider tilt adjustment",
		})
	} else if vals.panelTemp > t.PanelTempHigh {
		recs = append(recs, domain.Recommendation{
			Priority: domain.PriorityHigh,
			Message: fmt.Sprintf("Panel temperature elevated (%g°C vs ambient %g°C). Monitor for efficiency loss.",
				vals.panelTemp, vals.ambientTemp),
			Action: "Check for adequate airflow, clean panels if soiled",
		})
	}

	// Rule 2: soiling.
	if vals.soilingIndex > t.SoilingCritical {
		recs = append(recs, domain.Recommendation{
			Priority: domain.PriorityHigh,
			Message: fmt.Sprintf("Heavy soiling detected (%g%% loss). Cleaning recommended to restore efficiency.",
				vals.soilingIndex),
			Action: "Schedule panel cleaning service",
		})
	} else if vals.soilingIndex > t.SoilingModerate {
		recs = append(recs, domain.Recommendation{
			Priority: domain.PriorityMedium,
			Message: fmt.Sprintf("Moderate soiling detected (%g%% loss). Plan cleaning maintenance.",
				vals.soilingIndex),
			Action: "Add to maintenance schedule",
		})
	}

	// Rule 3: inverter efficiency against the fixed baseline.
	if vals.inverterEff < t.InverterEffLow {
		gap := t.InverterEffBaseline - vals.inverterEff
		recs = append(recs, domain.Recommendation{
			Priority: domain.PriorityMedium,
			Message: fmt.Sprintf("Inverter efficiency below baseline (%g%% vs %g%%, -%.1f%%).",
				vals.inverterEff, t.InverterEffBaseline, gap),
			Action: "Check inverter logs, inspect connections, verify AC voltage",
		})
	}

	// Rule 4: battery state of charge. Exactly one branch always fires.
	if vals.batterySoc < t.BatterySocCritical {
		recs = append(recs, domain.Recommendation{
			Priority: domain.PriorityCritical,
			Message: fmt.Sprintf("Battery critically low (%g%%). Risk of deep discharge damage.",
				vals.batterySoc),
			Action: "Reduce load immediately or connect to grid if available",
		})
	} else if vals.batterySoc < t.BatterySocLow {
		recs = append(recs, domain.Recommendation{
			Priority: domain.PriorityMedium,
			Message: fmt.Sprintf("Battery SoC low (%g%%). Monitor charging conditions.",
				vals.batterySoc),
			Action: "Check solar generation and load management",
		})
	} else {
		recs = append(recs, domain.Recommendation{
			Priority: domain.PriorityInfo,
			Message: fmt.Sprintf("Battery SoC stable (%g%%). System operating normally.",
				vals.batterySoc),
			Action: "Continue monitoring",
		})
	}

	// Rule 5: underperformance. Only fires when an actual reading exists;
	// overperformance is never flagged here.
	if vals.actualOutput != nil && deviation < -t.DeviationCritical {
		recs = append(recs, domain.Recommendation{
			Priority: domain.PriorityHigh,
			Message: fmt.Sprintf("Significant underperformance detected (%.1f%% below expected). Multiple factors may be contributing.",
				deviation),
			Action: "Comprehensive system inspection recommended",
		})
	} else if vals.actualOutput != nil && deviation < -t.DeviationWarning {
		recs = append(recs, domain.Recommendation{
			Priority: domain.PriorityMedium,
			Message: fmt.Sprintf("Output below expected (%.1f%%). Monitor for persistent issues.",
				deviation),
			Action: "Review system logs and sensor calibration",
		})
	}

	// Rule 6: low light is informational, not a fault.
	if vals.irradiance < t.IrradianceLow {
		recs = append(recs, domain.Recommendation{
			Priority: domain.PriorityInfo,
			Message: fmt.Sprintf("Low irradiance conditions (%g W/m²). Limited generation expected.",
				vals.irradiance),
			Action: "Normal for low-light conditions (dawn/dusk/cloudy)",
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Priority.Rank() < recs[j].Priority.Rank()
	})

	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}
