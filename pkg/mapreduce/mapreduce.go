package mapreduce

import "github.com/dtnitsch/doclang/models"

// Map counts the outcomes of one shard of documents.
func Map(outcomes []models.Outcome) models.Tally {
	var t models.Tally
	for _, o := range outcomes {
		t.Add(o)
	}
	return t
}

// Reduce aggregates per-shard tallies into a single tally.
func Reduce(intermediate []models.Tally) models.Tally {
	var final models.Tally
	for _, t := range intermediate {
		final.Merge(t)
	}
	return final
}

// Totals sums the tallies of every locale.
func Totals(stats []models.LocaleStats) models.Tally {
	tallies := make([]models.Tally, len(stats))
	for i, s := range stats {
		tallies[i] = s.Tally
	}
	return Reduce(tallies)
}
