// internal/analysis/features.go

package analysis

import "sort"

// topFactors returns the n highest-weighted feature names in descending
// weight order. The sort is stable so ties keep the importance table's
// insertion order.
func (e *Engine) topFactors(n int) []string {
	ranked := make([]FeatureWeight, len(e.features))
	copy(ranked, e.features)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Weight > ranked[j].Weight
	})

	if n > len(ranked) {
		n = len(ranked)
	}
	names := make([]string, n)
	for i := 0; i < n; i++ {
		names[i] = ranked[i].Name
	}
	return names
}
