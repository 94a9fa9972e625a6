package classifier

import (
	"sort"

	"github.com/nbluto/wolfvue-go/internal/frames"
)

// AggregateStats is the per-video reduction of the filtered detections and
// the cluster list. Immutable after ComputeStats.
type AggregateStats struct {
	// TotalDetections is the number of qualifying detections in the video.
	TotalDetections int
	// Counts maps species id to its qualifying detection count. Counts
	// cover every filtered detection, not only cluster-dominant frames,
	// so transient secondary species surface for conflict detection.
	Counts map[int]int
	// FrameCoverage maps species id to the fraction of non-empty frames
	// in which the species appears at all.
	FrameCoverage map[int]float64
	// Transitions is the number of cluster boundaries.
	Transitions int
	// SpeciesPresent lists every species id with at least one qualifying
	// detection, ordered ascending for determinism.
	SpeciesPresent []int
}

// ComputeStats reduces the filtered frame sequence and cluster list into
// aggregate statistics. It performs no temporal reasoning of its own.
func ComputeStats(frameRecords []frames.FrameRecord, clusters []Cluster) AggregateStats {
	stats := AggregateStats{
		Counts:        make(map[int]int),
		FrameCoverage: make(map[int]float64),
	}

	nonEmptyFrames := 0
	framesWith := make(map[int]int)

	for i := range frameRecords {
		detections := frameRecords[i].Detections
		if len(detections) == 0 {
			continue
		}
		nonEmptyFrames++

		seen := make(map[int]bool, 4)
		for _, det := range detections {
			stats.TotalDetections++
			stats.Counts[det.SpeciesID]++
			if !seen[det.SpeciesID] {
				seen[det.SpeciesID] = true
				framesWith[det.SpeciesID]++
			}
		}
	}

	if nonEmptyFrames > 0 {
		for id, n := range framesWith {
			stats.FrameCoverage[id] = float64(n) / float64(nonEmptyFrames)
		}
	}

	if len(clusters) > 0 {
		stats.Transitions = len(clusters) - 1
	}

	stats.SpeciesPresent = make([]int, 0, len(stats.Counts))
	for id := range stats.Counts {
		stats.SpeciesPresent = append(stats.SpeciesPresent, id)
	}
	sort.Ints(stats.SpeciesPresent)

	return stats
}

// DominanceRatio returns the species' share of total qualifying detections,
// or 0 when the video has no detections.
func (s *AggregateStats) DominanceRatio(speciesID int) float64 {
	if s.TotalDetections == 0 {
		return 0
	}
	return float64(s.Counts[speciesID]) / float64(s.TotalDetections)
}
