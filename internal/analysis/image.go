// internal/analysis/image.go

package analysis

import (
	"strings"

	"solar_analysis/internal/domain"
)

// ClassifyImage is a stand-in defect classifier: a substring rule table over
// the image URL, not a vision model. Rules are checked in order; the first
// match wins and anything else is reported as a clear panel.
func (e *Engine) ClassifyImage(imageURL string) *domain.ImageFinding {
	url := strings.ToLower(imageURL)

	switch {
	case strings.Contains(url, "shadow") || strings.Contains(url, "shade"):
		occlusion := 0.25
		return &domain.ImageFinding{
			Type:           "shading",
			Confidence:     0.82,
			OcclusionRatio: &occlusion,
			DetectedObjects: []map[string]interface{}{
				{"class": "shadow", "confidence": 0.82, "area_ratio": 0.25},
			},
		}
	case strings.Contains(url, "dirt") || strings.Contains(url, "soil"):
		occlusion := 0.15
		return &domain.ImageFinding{
			Type:           "soiling",
			Confidence:     0.79,
			OcclusionRatio: &occlusion,
			DetectedObjects: []map[string]interface{}{
				{"class": "dirt", "confidence": 0.79, "coverage": 0.15},
			},
		}
	case strings.Contains(url, "crack"):
		return &domain.ImageFinding{
			Type:       "crack",
			Confidence: 0.88,
			DetectedObjects: []map[string]interface{}{
				{"class": "crack", "confidence": 0.88, "severity": "medium"},
			},
		}
	default:
		return &domain.ImageFinding{
			Type:       "clear",
			Confidence: 0.92,
			DetectedObjects: []map[string]interface{}{
				{"class": "solar_panel", "confidence": 0.92, "condition": "good"},
			},
		}
	}
}
