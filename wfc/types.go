package wfc

import (
	"errors"
	"fmt"
	"time"

	"github.com/katrevik/wfccore/core"
)

// SelectionMode chooses how OBSERVE picks a pattern to collapse a cell to,
// among its surviving patterns.
type SelectionMode int

const (
	// SelectionWeighted samples from the surviving patterns proportional
	// to their occurrence weight. This is the default.
	SelectionWeighted SelectionMode = iota
	// SelectionMaxProbability restricts the candidate set to patterns
	// whose probability equals the maximum within the cell, then samples
	// uniformly among those.
	SelectionMaxProbability
)

// NeighborhoodMode chooses which direction set propagation uses: the four
// cardinals, or all eight compass offsets.
type NeighborhoodMode int

const (
	// Eight is the default: four-connectivity plus diagonals. Stronger
	// local consistency, slower convergence.
	Eight NeighborhoodMode = iota
	// Four is four-connectivity only: weaker local consistency, faster
	// convergence.
	Four
)

// directionsFor returns the configured neighborhood's direction set.
func directionsFor(mode NeighborhoodMode) []core.Direction {
	if mode == Four {
		return core.Four[:]
	}

	return core.Eight[:]
}

// SolveOptions configures one Generate call.
type SolveOptions struct {
	// Seed is the deterministic RNG seed. The same Seed with the same
	// model and dimensions always produces the same output.
	Seed uint64

	// MaxRestarts bounds the number of contradiction-triggered restarts.
	// Total attempts made is MaxRestarts+1: the first attempt plus up to
	// MaxRestarts retries.
	MaxRestarts uint32

	// Selection chooses the collapse-candidate policy. Zero value is
	// SelectionWeighted.
	Selection SelectionMode

	// Neighborhood chooses the direction set. Zero value is Eight.
	Neighborhood NeighborhoodMode

	// EntropyNoise is the width of the uniform [0, EntropyNoise) jitter
	// subtracted from each cell's raw entropy for deterministic tie
	// breaking. Zero value defaults to 0.01.
	EntropyNoise float64

	// Deadline bounds wall-clock runtime across all attempts combined.
	// Zero means unbounded.
	Deadline time.Duration

	// OnObserve, if set, is called after every successful collapse with
	// the number of collapsed cells so far and the wave's total cell
	// count. It is a passive progress hook, not a logging dependency.
	OnObserve func(collapsed, total int)
}

// normalize fills in zero-value defaults.
func (o SolveOptions) normalize() SolveOptions {
	if o.EntropyNoise == 0 {
		o.EntropyNoise = 0.01
	}

	return o
}

// ErrTimedOut indicates opts.Deadline elapsed before the wave fully
// collapsed.
var ErrTimedOut = errors.New("wfc: deadline exceeded")

// UnsolvableError indicates every attempt, including all restarts, hit a
// contradiction. Attempts records how many attempts were made (1 +
// MaxRestarts).
type UnsolvableError struct {
	Attempts uint32
}

func (e *UnsolvableError) Error() string {
	return fmt.Sprintf("wfc: unsolvable after %d attempt(s)", e.Attempts)
}
