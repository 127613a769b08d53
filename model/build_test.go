package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katrevik/wfccore/core"
	"github.com/katrevik/wfccore/model"
)

func stripedGrid(t *testing.T) core.IndexedGrid {
	t.Helper()
	a := core.Pixel{0, 0, 0, 255}
	b := core.Pixel{255, 255, 255, 255}
	pixels := [][]core.Pixel{
		{a, a, a, a},
		{a, a, a, a},
		{b, b, b, b},
		{b, b, b, b},
	}
	g, err := core.IndexImage(pixels)
	require.NoError(t, err)
	return g
}

func TestBuild_DefaultSymmetries(t *testing.T) {
	g := stripedGrid(t)
	m, err := model.Build(g, 2, model.Options{})
	require.NoError(t, err)
	assert.NotEmpty(t, m.Patterns)
	assert.Equal(t, len(m.Patterns), m.Rules.NumPatterns)
	assert.Nil(t, m.Ground)
}

func TestBuild_GroundOutOfRange(t *testing.T) {
	g := stripedGrid(t)
	bad := 9999
	_, err := model.Build(g, 2, model.Options{Ground: &bad})
	assert.ErrorIs(t, err, model.ErrInvalidGround)
}

func TestBuild_GroundValid(t *testing.T) {
	g := stripedGrid(t)
	zero := 0
	m, err := model.Build(g, 2, model.Options{Ground: &zero})
	require.NoError(t, err)
	require.NotNil(t, m.Ground)
	assert.Equal(t, 0, *m.Ground)
}

func TestBuild_PropagatesExtractError(t *testing.T) {
	g := stripedGrid(t)
	_, err := model.Build(g, 1, model.Options{})
	assert.Error(t, err)
}
