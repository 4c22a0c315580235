package mapreduce

import (
	"sort"

	"github.com/dtnitsch/doclang/models"
)

// WorstOffenders returns a copy of stats ordered by wrong count, highest
// first. Locales with equal counts keep their traversal order.
func WorstOffenders(stats []models.LocaleStats) []models.LocaleStats {
	sorted := make([]models.LocaleStats, len(stats))
	copy(sorted, stats)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Wrong > sorted[j].Wrong
	})
	return sorted
}
