package analysis

import (
	"os"

	"github.com/google/uuid"

	"github.com/nbluto/wolfvue-go/internal/conf"
	"github.com/nbluto/wolfvue-go/internal/errors"
	"github.com/nbluto/wolfvue-go/internal/frames"
	"github.com/nbluto/wolfvue-go/internal/observation"
	"github.com/nbluto/wolfvue-go/internal/taxonomy"
)

// FileAnalysis classifies a single detector export file and outputs the
// verdict.
func FileAnalysis(settings *conf.Settings) error {
	if err := validateInputFile(settings.Input.Path); err != nil {
		return err
	}

	catalog, err := taxonomy.Load(settings.Taxonomy.Path)
	if err != nil {
		return err
	}

	runID := uuid.New().String()
	record, err := analyzeFile(settings.Input.Path, runID, catalog, classifierConfig(settings))
	if err != nil {
		return err
	}

	return writeResults(settings, runID, []observation.Record{record})
}

// validateInputFile checks that the path is a readable, non-empty detector
// export in a supported format.
func validateInputFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return errors.New(err).
			Component("analysis").
			Category(errors.CategoryFileIO).
			FileContext(path, 0).
			Build()
	}
	if info.IsDir() {
		return errors.Newf("%s is a directory, not a file", path).
			Component("analysis").
			Category(errors.CategoryValidation).
			Build()
	}
	if info.Size() == 0 {
		return errors.Newf("%s is empty", path).
			Component("analysis").
			Category(errors.CategoryValidation).
			FileContext(path, 0).
			Build()
	}
	if !frames.IsSupported(path) {
		return errors.Newf("%s is not a supported detector export", path).
			Component("analysis").
			Category(errors.CategoryValidation).
			Build()
	}
	return nil
}
