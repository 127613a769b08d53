package wfc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRngForAttempt_DeterministicPerAttempt(t *testing.T) {
	a1 := rngForAttempt(42, 3)
	a2 := rngForAttempt(42, 3)
	assert.Equal(t, a1.Uint64(), a2.Uint64())
}

func TestRngForAttempt_DiffersAcrossAttempts(t *testing.T) {
	a := rngForAttempt(42, 0)
	b := rngForAttempt(42, 1)
	assert.NotEqual(t, a.Uint64(), b.Uint64())
}

func TestSolveOptions_NormalizeDefaultsEntropyNoise(t *testing.T) {
	o := SolveOptions{}.normalize()
	assert.Equal(t, 0.01, o.EntropyNoise)

	o2 := SolveOptions{EntropyNoise: 0.5}.normalize()
	assert.Equal(t, 0.5, o2.EntropyNoise)
}

func TestDirectionsFor(t *testing.T) {
	assert.Len(t, directionsFor(Eight), 8)
	assert.Len(t, directionsFor(Four), 4)
}

func TestUnsolvableError_MessageIncludesAttempts(t *testing.T) {
	err := &UnsolvableError{Attempts: 7}
	assert.Contains(t, err.Error(), "7")
}
