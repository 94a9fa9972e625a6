// Package frames defines the detector boundary: the per-frame detection
// records an external object detector produces for one video, and readers
// for the export formats those detectors write.
package frames

import (
	"encoding/json"
	"sort"
)

// Detection is one species observation in one frame. Immutable once created.
// The bounding box is carried opaquely; nothing in the classifier reads it.
type Detection struct {
	SpeciesID  int             `json:"species_id"`
	Confidence float64         `json:"confidence"`
	BBox       json.RawMessage `json:"bbox,omitempty"`
}

// FrameRecord holds all detections of a single processed frame. A frame with
// zero detections is a valid record and is treated as a gap by the clusterer,
// the same as a frame index missing from the sequence entirely.
type FrameRecord struct {
	Index      int         `json:"frame"`
	Detections []Detection `json:"detections"`
}

// Sequence is the full detection stream of one video.
type Sequence struct {
	Video  string        `json:"video"`
	Frames []FrameRecord `json:"frames"`
}

// SortFrames orders the frame records by frame index. Detector exports are
// expected to be ordered already; this makes the guarantee explicit.
func (s *Sequence) SortFrames() {
	sort.Slice(s.Frames, func(i, j int) bool {
		return s.Frames[i].Index < s.Frames[j].Index
	})
}

// TotalDetections returns the number of detections across all frames.
func (s *Sequence) TotalDetections() int {
	total := 0
	for i := range s.Frames {
		total += len(s.Frames[i].Detections)
	}
	return total
}
