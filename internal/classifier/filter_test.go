package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nbluto/wolfvue-go/internal/frames"
)

func TestFilterFrames_ThresholdInclusive(t *testing.T) {
	t.Parallel()

	input := []frames.FrameRecord{
		frame(0, det(wolfID, 0.25), det(wolfID, 0.24999)),
		frame(1, det(elkID, 0.9)),
	}

	filtered := FilterFrames(input, 0.25)

	require.Len(t, filtered, 2)
	require.Len(t, filtered[0].Detections, 1)
	assert.InDelta(t, 0.25, filtered[0].Detections[0].Confidence, 1e-9)
	assert.Len(t, filtered[1].Detections, 1)
}

func TestFilterFrames_FramesBecomeEmptyNotDropped(t *testing.T) {
	t.Parallel()

	input := []frames.FrameRecord{
		frame(3, det(wolfID, 0.1)),
		frame(4),
	}

	filtered := FilterFrames(input, 0.5)

	require.Len(t, filtered, 2)
	assert.Equal(t, 3, filtered[0].Index)
	assert.Empty(t, filtered[0].Detections)
	assert.Empty(t, filtered[1].Detections)
}

func TestFilterFrames_InputUntouched(t *testing.T) {
	t.Parallel()

	input := []frames.FrameRecord{frame(0, det(wolfID, 0.1), det(elkID, 0.9))}

	_ = FilterFrames(input, 0.5)

	assert.Len(t, input[0].Detections, 2)
}
