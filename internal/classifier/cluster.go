package classifier

import (
	"github.com/nbluto/wolfvue-go/internal/frames"
)

// Cluster is a maximal run of frames dominated by one species, possibly
// bridging short detection gaps. Clusters are derived per video and never
// persisted.
type Cluster struct {
	SpeciesID  int // frame-dominant species of the run
	StartFrame int // first frame index of the run
	EndFrame   int // last frame index with a qualifying detection
	Detections int // detections of the run's species within its frames
	Frames     int // frames where the species was dominant, gaps excluded
}

// frameDominant returns the frame-level dominant species: the species with
// the highest confidence sum within the frame, ties broken by the lowest
// species id for determinism. ok is false for an empty frame.
func frameDominant(record *frames.FrameRecord) (speciesID int, ok bool) {
	if len(record.Detections) == 0 {
		return 0, false
	}

	sums := make(map[int]float64, 4)
	for _, det := range record.Detections {
		sums[det.SpeciesID] += det.Confidence
	}

	best := -1
	bestSum := 0.0
	for id, sum := range sums {
		if best == -1 || sum > bestSum || (sum == bestSum && id < best) {
			best = id
			bestSum = sum
		}
	}
	return best, true
}

// speciesDetections counts the detections of one species within a frame.
func speciesDetections(record *frames.FrameRecord, speciesID int) int {
	count := 0
	for _, det := range record.Detections {
		if det.SpeciesID == speciesID {
			count++
		}
	}
	return count
}

// BuildClusters converts a filtered, index-ordered frame sequence into an
// ordered list of species runs. A gap shorter than gapTolerance frames keeps
// the active cluster open without extending its counted coverage; a gap that
// reaches gapTolerance, or a change of the frame-dominant species, closes it.
// Gaps are measured from frame indices, so frames missing from the sequence
// and frames with zero qualifying detections behave identically.
func BuildClusters(frameRecords []frames.FrameRecord, gapTolerance int) []Cluster {
	var clusters []Cluster
	var active *Cluster

	for i := range frameRecords {
		record := &frameRecords[i]

		dominant, ok := frameDominant(record)
		if !ok {
			continue
		}

		if active != nil {
			gap := record.Index - active.EndFrame - 1
			if dominant == active.SpeciesID && gap < gapTolerance {
				active.EndFrame = record.Index
				active.Frames++
				active.Detections += speciesDetections(record, dominant)
				continue
			}
			clusters = append(clusters, *active)
		}

		active = &Cluster{
			SpeciesID:  dominant,
			StartFrame: record.Index,
			EndFrame:   record.Index,
			Detections: speciesDetections(record, dominant),
			Frames:     1,
		}
	}

	if active != nil {
		clusters = append(clusters, *active)
	}
	return clusters
}
