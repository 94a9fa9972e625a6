package frames

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nbluto/wolfvue-go/internal/errors"
)

// SupportedExtensions lists the detector export formats ReadFile accepts.
var SupportedExtensions = []string{".json", ".csv"}

// IsSupported reports whether the file extension is a readable detector export.
func IsSupported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, supported := range SupportedExtensions {
		if ext == supported {
			return true
		}
	}
	return false
}

// ReadFile reads a detector export file into a Sequence, dispatching on the
// file extension. Frames are returned ordered by frame index.
func ReadFile(path string) (*Sequence, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.New(err).
			Component("frames").
			Category(errors.CategoryFileIO).
			FileContext(path, 0).
			Build()
	}
	defer file.Close()

	var seq *Sequence
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		seq, err = ReadJSON(file)
	case ".csv":
		seq, err = ReadCSV(file)
	default:
		return nil, errors.Newf("unsupported detector export format: %s", filepath.Ext(path)).
			Component("frames").
			Category(errors.CategoryFileParsing).
			Context("path", path).
			Build()
	}
	if err != nil {
		return nil, err
	}

	if seq.Video == "" {
		// CSV exports carry no video name, derive it from the file name.
		base := filepath.Base(path)
		seq.Video = strings.TrimSuffix(base, filepath.Ext(base))
	}
	seq.SortFrames()
	return seq, nil
}

// ReadJSON decodes a JSON detector export:
//
//	{"video": "clip.mp4", "frames": [{"frame": 0, "detections": [...]}]}
func ReadJSON(r io.Reader) (*Sequence, error) {
	var seq Sequence
	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&seq); err != nil {
		return nil, errors.New(err).
			Component("frames").
			Category(errors.CategoryFileParsing).
			Context("format", "json").
			Build()
	}
	return &seq, nil
}

// ReadCSV decodes a CSV detector export with a "frame,species_id,confidence"
// header. Only rows with detections appear in the file; frame indices absent
// from it are gaps, which the clusterer handles from the indices alone.
// Trailing bounding-box columns are ignored.
func ReadCSV(r io.Reader) (*Sequence, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.New(err).
			Component("frames").
			Category(errors.CategoryFileParsing).
			Context("format", "csv").
			Build()
	}

	seq := &Sequence{}
	byFrame := make(map[int]int) // frame index -> position in seq.Frames

	for i, record := range records {
		if len(record) == 0 {
			continue
		}
		// Skip a header row if present.
		if i == 0 && strings.EqualFold(strings.TrimSpace(record[0]), "frame") {
			continue
		}
		if len(record) < 3 {
			return nil, errors.Newf("row %d has %d columns, want at least 3", i+1, len(record)).
				Component("frames").
				Category(errors.CategoryFileParsing).
				Build()
		}

		frameIndex, err := strconv.Atoi(strings.TrimSpace(record[0]))
		if err != nil {
			return nil, errors.Newf("row %d: invalid frame index %q", i+1, record[0]).
				Component("frames").
				Category(errors.CategoryFileParsing).
				Build()
		}
		speciesID, err := strconv.Atoi(strings.TrimSpace(record[1]))
		if err != nil {
			return nil, errors.Newf("row %d: invalid species id %q", i+1, record[1]).
				Component("frames").
				Category(errors.CategoryFileParsing).
				Build()
		}
		confidence, err := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
		if err != nil {
			return nil, errors.Newf("row %d: invalid confidence %q", i+1, record[2]).
				Component("frames").
				Category(errors.CategoryFileParsing).
				Build()
		}

		pos, exists := byFrame[frameIndex]
		if !exists {
			seq.Frames = append(seq.Frames, FrameRecord{Index: frameIndex})
			pos = len(seq.Frames) - 1
			byFrame[frameIndex] = pos
		}
		seq.Frames[pos].Detections = append(seq.Frames[pos].Detections, Detection{
			SpeciesID:  speciesID,
			Confidence: confidence,
		})
	}

	return seq, nil
}
