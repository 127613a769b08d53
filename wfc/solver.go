package wfc

import (
	"context"
	"math"
	"math/rand/v2"
	"time"

	"github.com/katrevik/wfccore/core"
	"github.com/katrevik/wfccore/model"
	"github.com/katrevik/wfccore/wave"
)

// Generate synthesizes an outH x outW wave consistent with m's rule table.
// It is equivalent to GenerateContext(context.Background(), ...).
func Generate(m *model.Model, outH, outW int, opts SolveOptions) (*wave.Wave, error) {
	return GenerateContext(context.Background(), m, outH, outW, opts)
}

// GenerateContext is Generate with cooperative cancellation via ctx, in
// addition to opts.Deadline. Either expiring returns ErrTimedOut without a
// partial wave: there is no partial-output mode.
func GenerateContext(ctx context.Context, m *model.Model, outH, outW int, opts SolveOptions) (*wave.Wave, error) {
	opts = opts.normalize()

	weights := make([]uint32, len(m.Patterns))
	for i, p := range m.Patterns {
		weights[i] = p.Weight
	}
	directions := directionsFor(opts.Neighborhood)

	var deadline time.Time
	hasDeadline := opts.Deadline > 0
	if hasDeadline {
		deadline = time.Now().Add(opts.Deadline)
	}

	attempts := opts.MaxRestarts + 1
	for attempt := uint32(0); attempt < attempts; attempt++ {
		rng := rngForAttempt(opts.Seed, attempt)
		w := wave.New(outH, outW, weights)

		ok, err := runAttempt(ctx, w, m, rng, opts, directions, deadline, hasDeadline)
		if err != nil {
			return nil, err
		}
		if ok {
			return w, nil
		}
		// Contradiction: the wave re-initializes on the next loop
		// iteration with a freshly reseeded RNG (attempt+1).
	}

	return nil, &UnsolvableError{Attempts: attempts}
}

// runAttempt drives one full OBSERVE/PROPAGATE cycle to completion,
// contradiction, or deadline. ok=true means the wave fully collapsed.
func runAttempt(
	ctx context.Context,
	w *wave.Wave,
	m *model.Model,
	rng *rand.Rand,
	opts SolveOptions,
	directions []core.Direction,
	deadline time.Time,
	hasDeadline bool,
) (ok bool, err error) {
	// Narrow the full initial superposition against the rule table before
	// anything is observed, so that cells which start as singletons (a
	// one-pattern model) are still checked against their neighbors.
	for row := 0; row < w.Height; row++ {
		for col := 0; col < w.Width; col++ {
			if !propagate(w, m, directions, row, col) {
				return false, nil
			}
		}
	}

	if m.Ground != nil {
		row := w.Height - 1
		for col := 0; col < w.Width; col++ {
			w.CollapseTo(row, col, *m.Ground)
			if !propagate(w, m, directions, row, col) {
				return false, nil
			}
		}
	}

	total := w.Height * w.Width
	for {
		if ctx.Err() != nil {
			return false, ErrTimedOut
		}
		if hasDeadline && time.Now().After(deadline) {
			return false, ErrTimedOut
		}

		row, col, found := minEntropyCell(w, opts.EntropyNoise, rng)
		if !found {
			return true, nil // DONE: every cell is a singleton
		}

		p := selectPattern(w, m, row, col, opts.Selection, rng)
		w.CollapseTo(row, col, p)
		if !propagate(w, m, directions, row, col) {
			return false, nil // CONTRADICTION -> restart
		}

		if opts.OnObserve != nil {
			opts.OnObserve(countCollapsed(w), total)
		}
	}
}

// minEntropyCell scans every uncollapsed cell in row-major order and
// returns the one with minimum entropy. Ties are broken by the noise
// baked into Entropy, then by row-major order since the scan only
// updates on a strict improvement.
func minEntropyCell(w *wave.Wave, eps float64, rng *rand.Rand) (row, col int, found bool) {
	minEntropy := math.Inf(1)
	for r := 0; r < w.Height; r++ {
		for c := 0; c < w.Width; c++ {
			e := w.Entropy(r, c, eps, rng)
			if e < minEntropy {
				minEntropy = e
				row, col = r, c
				found = true
			}
		}
	}

	return row, col, found
}

// selectPattern implements the two collapse-candidate selection modes.
func selectPattern(w *wave.Wave, m *model.Model, row, col int, mode SelectionMode, rng *rand.Rand) int {
	ids := w.Possible(row, col).Slice()

	if mode == SelectionMaxProbability {
		maxProb := 0.0
		for _, id := range ids {
			if p := m.Patterns[id].Probability; p > maxProb {
				maxProb = p
			}
		}
		var candidates []int
		for _, id := range ids {
			if m.Patterns[id].Probability == maxProb {
				candidates = append(candidates, id)
			}
		}

		return candidates[rng.IntN(len(candidates))]
	}

	var total uint32
	for _, id := range ids {
		total += m.Patterns[id].Weight
	}
	target := rng.Float64() * float64(total)
	var cumulative float64
	for _, id := range ids {
		cumulative += float64(m.Patterns[id].Weight)
		if target < cumulative {
			return id
		}
	}

	return ids[len(ids)-1] // floating point edge case: fall back to last
}

// propagate narrows neighbors from the collapsed cell at (startRow,
// startCol) outward, worklist-style. It returns false the moment any
// cell's superposition becomes empty.
func propagate(w *wave.Wave, m *model.Model, directions []core.Direction, startRow, startCol int) bool {
	type pos struct{ r, c int }

	stack := []pos{{startRow, startCol}}
	queued := map[pos]bool{{startRow, startCol}: true}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		delete(queued, cur)

		allowedHere := w.Possible(cur.r, cur.c)

		for _, d := range directions {
			nr, nc := cur.r+int(d.DR), cur.c+int(d.DC)
			if nr < 0 || nr >= w.Height || nc < 0 || nc >= w.Width {
				continue
			}

			support := core.NewBitset(m.Rules.NumPatterns)
			allowedHere.ForEach(func(p int) bool {
				support = support.Union(m.Rules.Allowed(p, d))
				return true
			})

			before := w.Possible(nr, nc)
			changed := false
			empty := false
			before.ForEach(func(p int) bool {
				if !support.Has(p) {
					_, e := w.Remove(nr, nc, p)
					changed = true
					empty = e
				}
				return true
			})

			if empty {
				return false
			}
			if changed {
				np := pos{nr, nc}
				if !queued[np] {
					queued[np] = true
					stack = append(stack, np)
				}
			}
		}
	}

	return true
}

// countCollapsed counts singleton cells across the wave. Used only for
// SolveOptions.OnObserve's progress callback.
func countCollapsed(w *wave.Wave) int {
	n := 0
	for r := 0; r < w.Height; r++ {
		for c := 0; c < w.Width; c++ {
			if w.Collapsed(r, c) || w.Possible(r, c).Count() <= 1 {
				n++
			}
		}
	}

	return n
}
