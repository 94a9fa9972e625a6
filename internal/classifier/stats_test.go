package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nbluto/wolfvue-go/internal/frames"
)

func TestComputeStats_CountsAndTotal(t *testing.T) {
	t.Parallel()

	input := []frames.FrameRecord{
		frame(0, det(elkID, 0.9), det(wolfID, 0.5)),
		frame(1, det(elkID, 0.9)),
		frame(2),
	}
	clusters := BuildClusters(input, 30)

	stats := ComputeStats(input, clusters)

	assert.Equal(t, 3, stats.TotalDetections)
	assert.Equal(t, 2, stats.Counts[elkID])
	assert.Equal(t, 1, stats.Counts[wolfID])

	// sum(Counts) == TotalDetections
	sum := 0
	for _, n := range stats.Counts {
		sum += n
	}
	assert.Equal(t, stats.TotalDetections, sum)
}

func TestComputeStats_FrameCoverage(t *testing.T) {
	t.Parallel()

	// 4 non-empty frames; wolf appears in 1 of them, elk in all 4.
	input := []frames.FrameRecord{
		frame(0, det(elkID, 0.9)),
		frame(1, det(elkID, 0.9), det(wolfID, 0.6)),
		frame(2, det(elkID, 0.9)),
		frame(3, det(elkID, 0.9)),
		frame(4),
	}

	stats := ComputeStats(input, nil)

	assert.InDelta(t, 1.0, stats.FrameCoverage[elkID], 1e-9)
	assert.InDelta(t, 0.25, stats.FrameCoverage[wolfID], 1e-9)
}

func TestComputeStats_TransitionsFromClusterCount(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, ComputeStats(nil, nil).Transitions)
	assert.Equal(t, 0, ComputeStats(nil, []Cluster{{}}).Transitions)
	assert.Equal(t, 2, ComputeStats(nil, []Cluster{{}, {}, {}}).Transitions)
}

func TestComputeStats_SpeciesPresentSorted(t *testing.T) {
	t.Parallel()

	input := []frames.FrameRecord{
		frame(0, det(elkID, 0.9), det(wolfID, 0.5), det(whiteTailID, 0.5)),
	}

	stats := ComputeStats(input, nil)

	require.Equal(t, []int{wolfID, whiteTailID, elkID}, stats.SpeciesPresent)
}

func TestDominanceRatio(t *testing.T) {
	t.Parallel()

	stats := AggregateStats{
		TotalDetections: 10,
		Counts:          map[int]int{elkID: 7, wolfID: 3},
	}

	assert.InDelta(t, 0.7, stats.DominanceRatio(elkID), 1e-9)
	assert.InDelta(t, 0.3, stats.DominanceRatio(wolfID), 1e-9)
	assert.Zero(t, stats.DominanceRatio(whiteTailID))

	empty := AggregateStats{}
	assert.Zero(t, empty.DominanceRatio(elkID))
}
