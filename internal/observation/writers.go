package observation

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/nbluto/wolfvue-go/internal/errors"
)

// Supported report formats.
const (
	FormatTable = "table"
	FormatCSV   = "csv"
	FormatJSON  = "json"
)

// WriteRecords writes records in the given format to path, or to stdout when
// path is empty.
func WriteRecords(records []Record, path, format string) error {
	var w io.Writer = os.Stdout
	if path != "" {
		file, err := os.Create(path)
		if err != nil {
			return errors.New(err).
				Component("observation").
				Category(errors.CategoryFileIO).
				FileContext(path, 0).
				Build()
		}
		defer file.Close()
		w = file
	}

	switch format {
	case FormatTable:
		return WriteRecordsTable(w, records)
	case FormatCSV:
		return WriteRecordsCSV(w, records)
	case FormatJSON:
		return WriteRecordsJSON(w, records)
	default:
		return errors.Newf("unsupported report format %q", format).
			Component("observation").
			Category(errors.CategoryReport).
			Build()
	}
}

// WriteRecordsTable renders records as an aligned text table.
func WriteRecordsTable(w io.Writer, records []Record) error {
	rows := make([][]string, 0, len(records))
	for i := range records {
		r := &records[i]
		rows = append(rows, []string{
			r.Video,
			r.Category,
			strconv.Itoa(r.TotalDetections),
			fmt.Sprintf("%.2f", r.FrameCoverage),
			strconv.Itoa(r.Transitions),
			r.Reasoning,
		})
	}

	_, err := fmt.Fprintln(w, renderTable(
		[]string{"Video", "Verdict", "Detections", "Coverage", "Transitions", "Reasoning"},
		rows, 2, 3, 4))
	return err
}

// WriteRecordsCSV writes records as CSV with a header row.
func WriteRecordsCSV(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{
		"video", "date", "time", "category", "dominant_species",
		"total_detections", "frame_coverage", "transitions", "reasoning",
	}); err != nil {
		return errors.New(err).
			Component("observation").
			Category(errors.CategoryReport).
			Build()
	}

	for i := range records {
		r := &records[i]
		row := []string{
			r.Video,
			r.Date,
			r.Time,
			r.Category,
			r.DominantSpecies,
			strconv.Itoa(r.TotalDetections),
			strconv.FormatFloat(r.FrameCoverage, 'f', 4, 64),
			strconv.Itoa(r.Transitions),
			r.Reasoning,
		}
		if err := cw.Write(row); err != nil {
			return errors.New(err).
				Component("observation").
				Category(errors.CategoryReport).
				Build()
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteRecordsJSON writes records as an indented JSON array.
func WriteRecordsJSON(w io.Writer, records []Record) error {
	if records == nil {
		records = []Record{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return errors.New(err).
			Component("observation").
			Category(errors.CategoryReport).
			Build()
	}
	return nil
}
