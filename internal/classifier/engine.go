package classifier

import (
	"fmt"

	"github.com/nbluto/wolfvue-go/internal/taxonomy"
)

// decide applies the classification rules in fixed priority order, first
// match wins. It is a pure function of the aggregate statistics, the
// catalog and the configured thresholds.
func decide(stats AggregateStats, catalog *taxonomy.Catalog, cfg Config) Verdict {
	verdict := Verdict{
		DominantSpeciesID: -1,
		Stats:             stats,
	}

	// Rule 1: zero qualifying detections. Nothing may override this.
	if stats.TotalDetections == 0 {
		verdict.Category = CategoryNoAnimal
		verdict.Reasoning = []string{"zero qualifying detections"}
		return verdict
	}

	verdict.Reasoning = append(verdict.Reasoning, fmt.Sprintf(
		"%d qualifying detections across %d species, %d transitions",
		stats.TotalDetections, len(stats.SpeciesPresent), stats.Transitions))

	// Rule 2: too many detections with species ids missing from the
	// catalog. Unknown species cannot win dominance, so a large unknown
	// share means the verdict would be built on a minority of the
	// evidence; send the video to manual review instead.
	unknownCount := 0
	for _, id := range stats.SpeciesPresent {
		if catalog.CategoryOf(id) == taxonomy.CategoryUnknown {
			unknownCount += stats.Counts[id]
		}
	}
	if unknownShare := float64(unknownCount) / float64(stats.TotalDetections); unknownShare > cfg.UnknownShareThreshold {
		verdict.Category = CategoryUnsorted
		verdict.Reasoning = append(verdict.Reasoning, fmt.Sprintf(
			"unknown species ids account for %.1f%% of detections, above the %.1f%% limit",
			unknownShare*100, cfg.UnknownShareThreshold*100))
		return verdict
	}

	// Rule 3: predator-prey conflict. Checked before dominance so a high
	// dominance ratio for either side cannot hide the conflict.
	// SpeciesPresent is ordered by id, so the reported pair is stable.
	for i, a := range stats.SpeciesPresent {
		for _, b := range stats.SpeciesPresent[i+1:] {
			catA, catB := catalog.CategoryOf(a), catalog.CategoryOf(b)
			if catalog.InConflict(catA, catB) {
				verdict.Category = CategoryUnsorted
				verdict.Reasoning = append(verdict.Reasoning, fmt.Sprintf(
					"predator-prey conflict: %s (%s) and %s (%s) both present",
					catalog.Name(a), catA, catalog.Name(b), catB))
				return verdict
			}
		}
	}

	// Rule 4: too many species transitions.
	if stats.Transitions > cfg.MaxSpeciesTransitions {
		verdict.Category = CategoryUnsorted
		verdict.Reasoning = append(verdict.Reasoning, fmt.Sprintf(
			"%d species transitions exceed the limit of %d",
			stats.Transitions, cfg.MaxSpeciesTransitions))
		return verdict
	}

	// Rule 5: dominance test. Unknown species stay in the denominator but
	// can never win; ties break to the lowest species id.
	best := -1
	for _, id := range stats.SpeciesPresent {
		if catalog.CategoryOf(id) == taxonomy.CategoryUnknown {
			continue
		}
		if best == -1 || stats.Counts[id] > stats.Counts[best] {
			best = id
		}
	}
	if best != -1 {
		if ratio := stats.DominanceRatio(best); ratio > cfg.DominantSpeciesThreshold {
			verdict.Category = catalog.Name(best)
			verdict.DominantSpeciesID = best
			verdict.DominantSpecies = catalog.Name(best)
			verdict.Reasoning = append(verdict.Reasoning, fmt.Sprintf(
				"%s dominance ratio %.2f exceeds threshold %.2f",
				catalog.Name(best), ratio, cfg.DominantSpeciesThreshold))
			return verdict
		}
	}

	// Rule 6: fallback.
	verdict.Category = CategoryUnsorted
	verdict.Reasoning = append(verdict.Reasoning,
		"no single species meets the dominance threshold")
	return verdict
}
