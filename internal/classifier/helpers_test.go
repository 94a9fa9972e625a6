package classifier

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nbluto/wolfvue-go/internal/frames"
	"github.com/nbluto/wolfvue-go/internal/taxonomy"
)

// Species ids from the embedded catalog used throughout these tests.
const (
	wolfID      = 0
	whiteTailID = 5
	elkID       = 7
)

func det(speciesID int, confidence float64) frames.Detection {
	return frames.Detection{SpeciesID: speciesID, Confidence: confidence}
}

func frame(index int, detections ...frames.Detection) frames.FrameRecord {
	return frames.FrameRecord{Index: index, Detections: detections}
}

// speciesRun appends one frame per index in [start, end] with a single
// detection of the given species.
func speciesRun(dst []frames.FrameRecord, speciesID, start, end int, confidence float64) []frames.FrameRecord {
	for i := start; i <= end; i++ {
		dst = append(dst, frame(i, det(speciesID, confidence)))
	}
	return dst
}

// emptyRun appends one empty frame per index in [start, end].
func emptyRun(dst []frames.FrameRecord, start, end int) []frames.FrameRecord {
	for i := start; i <= end; i++ {
		dst = append(dst, frame(i))
	}
	return dst
}

func testCatalog(t *testing.T) *taxonomy.Catalog {
	t.Helper()
	catalog, err := taxonomy.Load("")
	require.NoError(t, err)
	return catalog
}

func classifyFrames(t *testing.T, frameRecords []frames.FrameRecord, cfg Config) Verdict {
	t.Helper()
	verdict, err := Classify(&frames.Sequence{Video: "test.mp4", Frames: frameRecords}, testCatalog(t), cfg)
	require.NoError(t, err)
	return verdict
}
