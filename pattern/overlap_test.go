package pattern_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katrevik/wfccore/core"
	"github.com/katrevik/wfccore/pattern"
)

func mustPattern(t *testing.T, vals []int, n int) pattern.Pattern {
	t.Helper()
	pixels := make([]core.ColorId, len(vals))
	for i, v := range vals {
		pixels[i] = core.ColorId(v)
	}

	return pattern.Pattern{N: n, Pixels: pixels}
}

func TestPattern_OverlapsIdenticalInAllDirections(t *testing.T) {
	p := mustPattern(t, []int{
		0, 1,
		1, 0,
	}, 2)
	for _, d := range core.Eight {
		assert.True(t, p.Overlaps(p, d), "direction %+v", d)
	}
}

func TestPattern_OverlapsRightNeighbor(t *testing.T) {
	// For RIGHT (dc=1) the predicate compares p.At(i, 0) with q.At(i, 1):
	// p's left column must equal q's right column.
	p := mustPattern(t, []int{
		0, 1,
		2, 3,
	}, 2)
	qMatch := mustPattern(t, []int{
		9, 0,
		9, 2,
	}, 2)
	qMismatch := mustPattern(t, []int{
		9, 9,
		9, 9,
	}, 2)

	right := core.Direction{DR: 0, DC: 1}
	assert.True(t, p.Overlaps(qMatch, right))
	assert.False(t, p.Overlaps(qMismatch, right))
}

func TestPattern_OverlapSymmetryHoldsUnderNegate(t *testing.T) {
	p := mustPattern(t, []int{
		0, 1, 2,
		1, 2, 0,
		2, 0, 1,
	}, 3)
	q := mustPattern(t, []int{
		1, 2, 0,
		2, 0, 1,
		0, 1, 2,
	}, 3)

	for _, d := range core.Eight {
		assert.Equal(t, p.Overlaps(q, d), q.Overlaps(p, d.Negate()), "direction %+v", d)
	}
}
