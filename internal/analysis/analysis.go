// Package analysis orchestrates classification runs: it loads the catalog,
// feeds detector export files through the classifier and routes the verdicts
// to reports and the datastore.
package analysis

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/nbluto/wolfvue-go/internal/classifier"
	"github.com/nbluto/wolfvue-go/internal/conf"
	"github.com/nbluto/wolfvue-go/internal/datastore"
	"github.com/nbluto/wolfvue-go/internal/errors"
	"github.com/nbluto/wolfvue-go/internal/frames"
	"github.com/nbluto/wolfvue-go/internal/observation"
	"github.com/nbluto/wolfvue-go/internal/taxonomy"
)

// classifierConfig maps the loaded settings onto an explicit classifier
// config.
func classifierConfig(settings *conf.Settings) classifier.Config {
	return classifier.Config{
		ConfidenceThreshold:      settings.Classifier.ConfidenceThreshold,
		DominantSpeciesThreshold: settings.Classifier.DominantSpeciesThreshold,
		MaxSpeciesTransitions:    settings.Classifier.MaxSpeciesTransitions,
		ConsecutiveEmptyFrames:   settings.Classifier.ConsecutiveEmptyFrames,
		UnknownShareThreshold:    settings.Classifier.UnknownShareThreshold,
	}
}

// analyzeFile classifies one detector export file into a record.
func analyzeFile(path, runID string, catalog *taxonomy.Catalog, cfg classifier.Config) (observation.Record, error) {
	start := time.Now()

	seq, err := frames.ReadFile(path)
	if err != nil {
		return observation.Record{}, err
	}

	verdict, err := classifier.Classify(seq, catalog, cfg)
	if err != nil {
		return observation.Record{}, err
	}

	record := observation.New(seq.Video, runID, &verdict, time.Since(start))
	GetLogger().Info("classified video",
		"video", seq.Video,
		"category", record.Category,
		"detections", record.TotalDetections,
		"transitions", record.Transitions)
	return record, nil
}

// writeResults routes records to stdout, the optional report file and the
// optional datastore.
func writeResults(settings *conf.Settings, runID string, records []observation.Record) error {
	format := settings.Output.File.Format
	if format == "" {
		format = observation.FormatTable
	}

	if err := observation.WriteRecords(records, "", observation.FormatTable); err != nil {
		return err
	}
	if err := observation.WriteSummary(os.Stdout, records); err != nil {
		return err
	}

	if settings.Output.File.Enabled {
		path := resultsPath(settings.Output.File.Path, format)
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return errors.New(err).
					Component("analysis").
					Category(errors.CategoryFileIO).
					FileContext(path, 0).
					Build()
			}
		}
		if err := observation.WriteRecords(records, path, format); err != nil {
			return err
		}
		fmt.Println("Results written to", path)
	}

	store := datastore.New(settings)
	if store == nil {
		return nil
	}
	if err := store.Open(); err != nil {
		return err
	}
	defer store.Close()
	for i := range records {
		if err := store.Save(&records[i]); err != nil {
			return err
		}
	}
	GetLogger().Info("saved records", "run_id", runID, "count", len(records))
	return nil
}

// resultsPath names the combined report file inside the output directory.
func resultsPath(outputDir, format string) string {
	ext := map[string]string{
		observation.FormatTable: "txt",
		observation.FormatCSV:   "csv",
		observation.FormatJSON:  "json",
	}[format]
	if ext == "" {
		ext = "txt"
	}
	return filepath.Join(outputDir, "verdicts."+ext)
}
