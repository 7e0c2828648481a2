package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFeatureImportanceSumsToOne(t *testing.T) {
	sum := 0.0
	for _, f := range DefaultFeatureImportance() {
		sum += f.Weight
	}
	assert.InDelta(t, 1.0, sum, 0.0001)
}

func TestTopFactors(t *testing.T) {
	e := NewEngine()

	assert.Equal(t, []string{"irradiance", "panel_temp", "inverter_eff"}, e.topFactors(3))
	assert.Equal(t, []string{"irradiance"}, e.topFactors(1))

	// Asking for more factors than exist returns the whole table: the
	// tilt/azimuth tie keeps table order.
	all := e.topFactors(100)
	assert.Len(t, all, 10)
	assert.Equal(t, "tilt", all[7])
	assert.Equal(t, "azimuth", all[8])
	assert.Equal(t, "pr_baseline", all[9])
}
