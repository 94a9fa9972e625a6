package analysis

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/nbluto/wolfvue-go/internal/conf"
	"github.com/nbluto/wolfvue-go/internal/errors"
	"github.com/nbluto/wolfvue-go/internal/frames"
	"github.com/nbluto/wolfvue-go/internal/observation"
	"github.com/nbluto/wolfvue-go/internal/taxonomy"
)

// DirectoryAnalysis classifies every supported detector export under the
// input directory. A file that fails to parse is logged and skipped; it never
// aborts the run.
func DirectoryAnalysis(ctx context.Context, settings *conf.Settings) error {
	files, err := collectInputFiles(settings.Input.Path, settings.Input.Recursive)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return errors.Newf("no supported detector exports found in %s", settings.Input.Path).
			Component("analysis").
			Category(errors.CategoryValidation).
			Build()
	}

	catalog, err := taxonomy.Load(settings.Taxonomy.Path)
	if err != nil {
		return err
	}

	runID := uuid.New().String()
	cfg := classifierConfig(settings)
	workers := settings.Processing.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	GetLogger().Info("starting directory analysis",
		"run_id", runID,
		"directory", settings.Input.Path,
		"files", len(files),
		"workers", workers)

	jobs := make(chan string)
	var (
		mu      sync.Mutex
		records []observation.Record
		failed  int
	)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				record, err := analyzeFile(path, runID, catalog, cfg)
				mu.Lock()
				if err != nil {
					failed++
					GetLogger().Warn("skipping file", "path", path, "error", err)
				} else {
					records = append(records, record)
				}
				mu.Unlock()
			}
		}()
	}

feed:
	for _, path := range files {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- path:
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return errors.New(err).
			Component("analysis").
			Category(errors.CategoryGeneric).
			Context("run_id", runID).
			Build()
	}

	// Worker completion order is nondeterministic; sort for stable reports.
	sort.Slice(records, func(i, j int) bool {
		return records[i].Video < records[j].Video
	})

	GetLogger().Info("directory analysis complete",
		"run_id", runID,
		"classified", len(records),
		"failed", failed)

	return writeResults(settings, runID, records)
}

// collectInputFiles lists the supported detector exports under root, sorted
// by path. Subdirectories are only entered when recursive is set.
func collectInputFiles(root string, recursive bool) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if !recursive && path != root {
				return fs.SkipDir
			}
			return nil
		}
		if frames.IsSupported(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.New(err).
			Component("analysis").
			Category(errors.CategoryFileIO).
			FileContext(root, 0).
			Build()
	}
	sort.Strings(files)
	return files, nil
}
