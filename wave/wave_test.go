package wave_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katrevik/wfccore/wave"
)

func TestNew_EveryCellStartsFull(t *testing.T) {
	w := wave.New(2, 3, []uint32{1, 1, 1, 1})
	require.Equal(t, 6, len(w.Cells))
	for r := 0; r < 2; r++ {
		for c := 0; c < 3; c++ {
			assert.Equal(t, 4, w.Possible(r, c).Count())
			assert.False(t, w.Collapsed(r, c))
		}
	}
}

func TestRemove_ChangedAndEmptyFlags(t *testing.T) {
	w := wave.New(1, 1, []uint32{1, 1})
	changed, empty := w.Remove(0, 0, 0)
	assert.True(t, changed)
	assert.False(t, empty)

	changed, empty = w.Remove(0, 0, 0)
	assert.False(t, changed) // already cleared
	assert.False(t, empty)

	changed, empty = w.Remove(0, 0, 1)
	assert.True(t, changed)
	assert.True(t, empty)
}

func TestCollapseTo_MarksSingletonAndCollapsed(t *testing.T) {
	w := wave.New(1, 1, []uint32{1, 1, 1})
	w.CollapseTo(0, 0, 1)
	assert.True(t, w.Collapsed(0, 0))
	assert.Equal(t, []int{1}, w.Possible(0, 0).Slice())
}

func TestEntropy_CollapsedAndSingletonReportInfinity(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	w := wave.New(1, 2, []uint32{1, 2, 3})
	w.CollapseTo(0, 0, 0)
	assert.True(t, math.IsInf(w.Entropy(0, 0, 0.01, rng), 1))

	// (0,1) still has all 3 patterns: not singleton, finite entropy.
	assert.False(t, math.IsInf(w.Entropy(0, 1, 0.01, rng), 1))

	w.Remove(0, 1, 0)
	w.Remove(0, 1, 1)
	// now singleton {2} without an explicit CollapseTo call
	assert.True(t, math.IsInf(w.Entropy(0, 1, 0.01, rng), 1))
}

func TestEntropy_UniformDistributionIsLogN(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	w := wave.New(1, 1, []uint32{1, 1, 1, 1})
	// noise is bounded by eps; with eps=0 entropy is exactly log(4).
	got := w.Entropy(0, 0, 0, rng)
	assert.InDelta(t, math.Log(4), got, 1e-9)
}

func TestEntropy_DecreasesAsPatternsAreRemoved(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	w := wave.New(1, 1, []uint32{1, 1, 1, 1})
	before := w.Entropy(0, 0, 0, rng)
	w.Remove(0, 0, 0)
	after := w.Entropy(0, 0, 0, rng)
	assert.Less(t, after, before)
}
