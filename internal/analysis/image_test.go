package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyImage(t *testing.T) {
	e := NewEngine()

	tests := []struct {
		url            string
		wantType       string
		wantConfidence float64
		wantOcclusion  *float64
	}{
		{"https://cdn.example.com/site1/shadow_east.jpg", "shading", 0.82, fp(0.25)},
		{"https://cdn.example.com/site1/SHADE-row3.jpg", "shading", 0.82, fp(0.25)},
		{"https://cdn.example.com/site2/dirt_buildup.jpg", "soiling", 0.79, fp(0.15)},
		{"https://cdn.example.com/site2/soiled-array.jpg", "soiling", 0.79, fp(0.15)},
		{"https://cdn.example.com/site3/crack_cell.jpg", "crack", 0.88, nil},
		{"https://cdn.example.com/site4/array_overview.jpg", "clear", 0.92, nil},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			finding := e.ClassifyImage(tt.url)

			assert.Equal(t, tt.wantType, finding.Type)
			assert.Equal(t, tt.wantConfidence, finding.Confidence)
			require.Len(t, finding.DetectedObjects, 1)

			if tt.wantOcclusion == nil {
				assert.Nil(t, finding.OcclusionRatio)
			} else {
				require.NotNil(t, finding.OcclusionRatio)
				assert.Equal(t, *tt.wantOcclusion, *finding.OcclusionRatio)
			}
		})
	}
}
