// Package classifier implements the temporal detection classifier: it turns
// a noisy per-frame stream of species detections into a single video-level
// verdict with a human-readable reasoning trail.
//
// The pipeline is a strict one-way flow: raw frames are confidence-filtered,
// clustered into species runs, reduced to aggregate statistics, and finally
// judged by the decision engine. Classify is a pure function; videos can be
// classified concurrently with a shared read-only catalog.
package classifier

import (
	"github.com/nbluto/wolfvue-go/internal/errors"
	"github.com/nbluto/wolfvue-go/internal/frames"
	"github.com/nbluto/wolfvue-go/internal/taxonomy"
)

// Verdict categories that are not species names.
const (
	CategoryNoAnimal = "No_Animal"
	CategoryUnsorted = "Unsorted"
)

// Config holds the classifier thresholds for one run. It is passed
// explicitly into Classify so concurrent classifications and tests can use
// differing parameters.
type Config struct {
	// ConfidenceThreshold drops detections below this confidence, 0.0-1.0.
	ConfidenceThreshold float64
	// DominantSpeciesThreshold is the share of total detections a species
	// must strictly exceed to name the video.
	DominantSpeciesThreshold float64
	// MaxSpeciesTransitions is the number of cluster transitions tolerated
	// before the video is sent to manual review.
	MaxSpeciesTransitions int
	// ConsecutiveEmptyFrames is the empty-frame gap length at which an
	// active cluster closes instead of bridging the gap.
	ConsecutiveEmptyFrames int
	// UnknownShareThreshold is the share of detections with catalog-unknown
	// species ids at which the video is sent to manual review.
	UnknownShareThreshold float64
}

// DefaultConfig returns the default classifier thresholds.
func DefaultConfig() Config {
	return Config{
		ConfidenceThreshold:      0.25,
		DominantSpeciesThreshold: 0.7,
		MaxSpeciesTransitions:    5,
		ConsecutiveEmptyFrames:   30,
		UnknownShareThreshold:    0.10,
	}
}

// Validate reports configuration errors. Classify rejects an invalid config
// before touching any frame data; thresholds are never clamped.
func (c Config) Validate() error {
	var errs []string

	if c.ConfidenceThreshold < 0 || c.ConfidenceThreshold > 1 {
		errs = append(errs, "confidence threshold must be between 0 and 1")
	}
	if c.DominantSpeciesThreshold < 0 || c.DominantSpeciesThreshold > 1 {
		errs = append(errs, "dominant species threshold must be between 0 and 1")
	}
	if c.MaxSpeciesTransitions < 0 {
		errs = append(errs, "max species transitions must not be negative")
	}
	if c.ConsecutiveEmptyFrames < 1 {
		errs = append(errs, "consecutive empty frames must be at least 1")
	}
	if c.UnknownShareThreshold < 0 || c.UnknownShareThreshold > 1 {
		errs = append(errs, "unknown share threshold must be between 0 and 1")
	}

	if len(errs) > 0 {
		return errors.Newf("invalid classifier config: %v", errs).
			Component("classifier").
			Category(errors.CategoryConfiguration).
			Build()
	}
	return nil
}

// Verdict is the immutable classification result for one video.
type Verdict struct {
	// Category is the species display name, CategoryUnsorted or
	// CategoryNoAnimal.
	Category string
	// DominantSpeciesID is the winning species id, or -1 when no species
	// won the dominance test.
	DominantSpeciesID int
	// DominantSpecies is the display name of the winning species, empty
	// when none.
	DominantSpecies string
	// Reasoning is the ordered, human-readable justification trail.
	// Always contains at least one line.
	Reasoning []string
	// Stats carries the aggregate statistics the decision was based on.
	Stats AggregateStats
	// Clusters is the ordered species-run list the stats derive from.
	Clusters []Cluster
}

// Classify evaluates one video's detection sequence against the catalog and
// config and returns its verdict. A sequence with no frames at all is valid
// and classifies as No_Animal.
func Classify(seq *frames.Sequence, catalog *taxonomy.Catalog, cfg Config) (Verdict, error) {
	if err := cfg.Validate(); err != nil {
		return Verdict{}, err
	}
	if catalog == nil {
		return Verdict{}, errors.Newf("catalog must not be nil").
			Component("classifier").
			Category(errors.CategoryConfiguration).
			Build()
	}

	var frameRecords []frames.FrameRecord
	if seq != nil {
		frameRecords = seq.Frames
	}

	filtered := FilterFrames(frameRecords, cfg.ConfidenceThreshold)
	clusters := BuildClusters(filtered, cfg.ConsecutiveEmptyFrames)
	stats := ComputeStats(filtered, clusters)

	verdict := decide(stats, catalog, cfg)
	verdict.Clusters = clusters
	return verdict, nil
}
