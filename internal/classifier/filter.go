package classifier

import (
	"github.com/nbluto/wolfvue-go/internal/frames"
)

// FilterFrames returns a new frame sequence containing only detections with
// confidence at or above the threshold. Every input frame stays in the
// output, so frames whose detections all fall below the threshold become
// empty frames, which the clusterer treats as gaps. The input is not
// modified.
func FilterFrames(frameRecords []frames.FrameRecord, threshold float64) []frames.FrameRecord {
	filtered := make([]frames.FrameRecord, 0, len(frameRecords))

	for i := range frameRecords {
		record := frames.FrameRecord{Index: frameRecords[i].Index}
		for _, det := range frameRecords[i].Detections {
			if det.Confidence >= threshold {
				record.Detections = append(record.Detections, det)
			}
		}
		filtered = append(filtered, record)
	}

	return filtered
}
