package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nbluto/wolfvue-go/internal/frames"
)

func TestClassify_ScenarioA_SingleSpeciesThenEmpty(t *testing.T) {
	t.Parallel()

	// 100 frames: 1-90 one whitetail at 0.9, 91-100 empty.
	var input []frames.FrameRecord
	input = speciesRun(input, whiteTailID, 1, 90, 0.9)
	input = emptyRun(input, 91, 100)

	verdict := classifyFrames(t, input, DefaultConfig())

	assert.Equal(t, "WhiteTail", verdict.Category)
	assert.Equal(t, 90, verdict.Stats.Counts[whiteTailID])
	assert.InDelta(t, 1.0, verdict.Stats.DominanceRatio(whiteTailID), 1e-9)
	assert.Equal(t, 0, verdict.Stats.Transitions)
}

func TestClassify_ScenarioB_PredatorPreyConflict(t *testing.T) {
	t.Parallel()

	// Frames 1-50 wolf at 0.8, 51-100 whitetail at 0.8, no gaps.
	var input []frames.FrameRecord
	input = speciesRun(input, wolfID, 1, 50, 0.8)
	input = speciesRun(input, whiteTailID, 51, 100, 0.8)

	verdict := classifyFrames(t, input, DefaultConfig())

	assert.Equal(t, CategoryUnsorted, verdict.Category)
	require.Len(t, verdict.Clusters, 2)
	assert.Equal(t, 1, verdict.Stats.Transitions)
	assert.InDelta(t, 0.5, verdict.Stats.DominanceRatio(wolfID), 1e-9)
	assert.Contains(t, verdict.Reasoning[len(verdict.Reasoning)-1], "conflict")
}

func TestClassify_ScenarioC_AllEmpty(t *testing.T) {
	t.Parallel()

	var input []frames.FrameRecord
	input = emptyRun(input, 1, 100)

	verdict := classifyFrames(t, input, DefaultConfig())

	assert.Equal(t, CategoryNoAnimal, verdict.Category)
	assert.Equal(t, []string{"zero qualifying detections"}, verdict.Reasoning)
}

func TestClassify_ScenarioD_AlternatingWithShortGaps(t *testing.T) {
	t.Parallel()

	// Elk and empty alternate every 5 frames for 200 frames; every gap is
	// shorter than the tolerance, so the whole video is one bridged run.
	var input []frames.FrameRecord
	for block := 0; block < 20; block++ {
		start := block * 10
		input = speciesRun(input, elkID, start, start+4, 0.85)
		input = emptyRun(input, start+5, start+9)
	}

	verdict := classifyFrames(t, input, DefaultConfig())

	assert.Equal(t, "Elk", verdict.Category)
	require.Len(t, verdict.Clusters, 1)
	assert.Equal(t, 0, verdict.Stats.Transitions)
	assert.InDelta(t, 1.0, verdict.Stats.DominanceRatio(elkID), 1e-9)
}

func TestClassify_EmptySequenceIsNoAnimal(t *testing.T) {
	t.Parallel()

	catalog := testCatalog(t)

	verdict, err := Classify(&frames.Sequence{Video: "empty.mp4"}, catalog, DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, CategoryNoAnimal, verdict.Category)

	verdict, err = Classify(nil, catalog, DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, CategoryNoAnimal, verdict.Category)
}

func TestClassify_ConflictPrecedenceOverDominance(t *testing.T) {
	t.Parallel()

	// Whitetail dominates overwhelmingly; one qualifying wolf detection in
	// the middle still forces manual review.
	var input []frames.FrameRecord
	input = speciesRun(input, whiteTailID, 0, 98, 0.9)
	input = append(input, frame(99, det(whiteTailID, 0.9), det(wolfID, 0.3)))

	verdict := classifyFrames(t, input, DefaultConfig())

	assert.Equal(t, CategoryUnsorted, verdict.Category)
	// The intruder never dominated a frame, so it owns no cluster.
	require.Len(t, verdict.Clusters, 1)
	assert.Equal(t, whiteTailID, verdict.Clusters[0].SpeciesID)
	assert.Equal(t, 1, verdict.Stats.Counts[wolfID])
}

func TestClassify_SubThresholdIntruderIgnored(t *testing.T) {
	t.Parallel()

	// The wolf detection falls below the confidence threshold and is
	// filtered out, so no conflict fires.
	var input []frames.FrameRecord
	input = speciesRun(input, whiteTailID, 0, 98, 0.9)
	input = append(input, frame(99, det(whiteTailID, 0.9), det(wolfID, 0.2)))

	verdict := classifyFrames(t, input, DefaultConfig())

	assert.Equal(t, "WhiteTail", verdict.Category)
	assert.NotContains(t, verdict.Stats.Counts, wolfID)
}

func TestClassify_TransitionLimitBoundary(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	// Whitetail and elk alternate: each elk interlude is a single frame, so
	// whitetail keeps dominance while clusters pile up. n whitetail blocks
	// and n-1 elk frames give 2n-1 clusters.
	build := func(blocks int) []frames.FrameRecord {
		var input []frames.FrameRecord
		next := 0
		for b := 0; b < blocks; b++ {
			input = speciesRun(input, whiteTailID, next, next+9, 0.9)
			next += 10
			if b < blocks-1 {
				input = append(input, frame(next, det(elkID, 0.9)))
				next++
			}
		}
		return input
	}

	// 3 blocks + 2 interludes = 5 clusters = 4 transitions; whitetail has
	// 30 of 32 detections.
	atLimit := build(3)
	atLimit = append(atLimit, frame(1000, det(whiteTailID, 0.9)))
	verdictAt := classifyFrames(t, atLimit, cfg)
	require.Equal(t, cfg.MaxSpeciesTransitions, verdictAt.Stats.Transitions)
	assert.Equal(t, "WhiteTail", verdictAt.Category)

	// One more elk interlude pushes past the limit.
	overLimit := build(4)
	verdictOver := classifyFrames(t, overLimit, cfg)
	require.Equal(t, cfg.MaxSpeciesTransitions+1, verdictOver.Stats.Transitions)
	assert.Equal(t, CategoryUnsorted, verdictOver.Category)
}

func TestClassify_GapBridgingKeepsTransitionCount(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	bridged := speciesRun(nil, elkID, 0, 4, 0.9)
	bridged = speciesRun(bridged, elkID, 5+cfg.ConsecutiveEmptyFrames-1, 5+cfg.ConsecutiveEmptyFrames+3, 0.9)
	verdict := classifyFrames(t, bridged, cfg)
	assert.Equal(t, 0, verdict.Stats.Transitions)
	assert.Equal(t, "Elk", verdict.Category)

	split := speciesRun(nil, elkID, 0, 4, 0.9)
	split = speciesRun(split, elkID, 5+cfg.ConsecutiveEmptyFrames, 5+cfg.ConsecutiveEmptyFrames+4, 0.9)
	verdict = classifyFrames(t, split, cfg)
	assert.Equal(t, 1, verdict.Stats.Transitions)
	assert.Equal(t, "Elk", verdict.Category)
}

func TestClassify_InvalidConfigRejected(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.ConfidenceThreshold = 1.5

	_, err := Classify(&frames.Sequence{}, testCatalog(t), cfg)
	require.Error(t, err)
}

func TestClassify_NilCatalogRejected(t *testing.T) {
	t.Parallel()

	_, err := Classify(&frames.Sequence{}, nil, DefaultConfig())
	require.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, DefaultConfig().Validate())

	bad := DefaultConfig()
	bad.ConsecutiveEmptyFrames = 0
	require.Error(t, bad.Validate())

	bad = DefaultConfig()
	bad.DominantSpeciesThreshold = -0.1
	require.Error(t, bad.Validate())
}
