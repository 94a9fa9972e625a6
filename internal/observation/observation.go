// Package observation turns classifier verdicts into durable records and
// human- or machine-readable reports.
package observation

import (
	"strings"
	"time"

	"github.com/nbluto/wolfvue-go/internal/classifier"
)

// Record is one classified video, flattened for persistence and reporting.
type Record struct {
	ID                uint          `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	RunID             string        `gorm:"index" json:"run_id"`
	Video             string        `gorm:"index" json:"video"`
	Date              string        `gorm:"index" json:"date"`
	Time              string        `json:"time"`
	Category          string        `gorm:"index" json:"category"`
	DominantSpeciesID int           `json:"dominant_species_id"`
	DominantSpecies   string        `json:"dominant_species,omitempty"`
	TotalDetections   int           `json:"total_detections"`
	FrameCoverage     float64       `json:"frame_coverage"`
	Transitions       int           `json:"transitions"`
	Reasoning         string        `json:"reasoning"`
	ProcessingTime    time.Duration `json:"processing_time_ns"`
}

// New flattens a verdict into a Record stamped with the run id and the
// current date and time. FrameCoverage is the dominant species' coverage,
// zero when no species won.
func New(video, runID string, verdict *classifier.Verdict, elapsed time.Duration) Record {
	now := time.Now()
	coverage := 0.0
	if verdict.DominantSpeciesID >= 0 {
		coverage = verdict.Stats.FrameCoverage[verdict.DominantSpeciesID]
	}
	return Record{
		RunID:             runID,
		Video:             video,
		Date:              now.Format("2006-01-02"),
		Time:              now.Format("15:04:05"),
		Category:          verdict.Category,
		DominantSpeciesID: verdict.DominantSpeciesID,
		DominantSpecies:   verdict.DominantSpecies,
		TotalDetections:   verdict.Stats.TotalDetections,
		FrameCoverage:     coverage,
		Transitions:       verdict.Stats.Transitions,
		Reasoning:         strings.Join(verdict.Reasoning, "; "),
		ProcessingTime:    elapsed,
	}
}
