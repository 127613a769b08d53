package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katrevik/wfccore/core"
)

func TestRotate90_FourTimesIsIdentity(t *testing.T) {
	w := []core.ColorId{
		0, 1, 2,
		3, 4, 5,
		6, 7, 8,
	}
	got := w
	for i := 0; i < 4; i++ {
		got = rotate90(got, 3)
	}
	assert.Equal(t, w, got)
}

func TestReflectHorizontal_TwiceIsIdentity(t *testing.T) {
	w := []core.ColorId{
		0, 1, 2,
		3, 4, 5,
		6, 7, 8,
	}
	got := reflectHorizontal(reflectHorizontal(w, 3), 3)
	assert.Equal(t, w, got)
}

func TestRotate90_CornerMapping(t *testing.T) {
	// Top-left corner rotates into the top-right corner.
	w := []core.ColorId{
		9, 1,
		2, 3,
	}
	got := rotate90(w, 2)
	assert.Equal(t, core.ColorId(9), got[0*2+1])
}
