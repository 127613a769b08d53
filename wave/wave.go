package wave

import (
	"math"
	"math/rand/v2"

	"github.com/katrevik/wfccore/core"
)

// New builds a Wave of the given dimensions where every cell is
// initialized to the full pattern superposition.
// weights is the per-pattern occurrence weight, indexed by PatternID.
func New(height, width int, weights []uint32) *Wave {
	weightLogProd := make([]float64, len(weights))
	var totalWeight float64
	var totalLogProd float64
	for i, w := range weights {
		lw := float64(w) * math.Log(float64(w))
		weightLogProd[i] = lw
		totalWeight += float64(w)
		totalLogProd += lw
	}

	full := core.FullBitset(len(weights))
	cells := make([]Cell, height*width)
	for i := range cells {
		cells[i] = Cell{
			Possible:     full.Clone(),
			sumWeight:    totalWeight,
			sumLogWeight: totalLogProd,
		}
	}

	return &Wave{
		Height:        height,
		Width:         width,
		Cells:         cells,
		weights:       weights,
		weightLogProd: weightLogProd,
	}
}

// index maps (row, col) to the flat Cells offset.
func (w *Wave) index(row, col int) int { return row*w.Width + col }

// Possible returns a read-only view of the superposition at (row, col).
// Callers must not mutate the returned Bitset in place.
func (w *Wave) Possible(row, col int) core.Bitset {
	return w.Cells[w.index(row, col)].Possible
}

// Collapsed reports whether (row, col) has a singleton surviving pattern.
func (w *Wave) Collapsed(row, col int) bool {
	return w.Cells[w.index(row, col)].Collapsed
}

// Remove clears pattern p from the superposition at (row, col). It
// reports whether the bitset actually changed, and whether it became
// empty (a contradiction).
func (w *Wave) Remove(row, col, p int) (changed, empty bool) {
	cell := &w.Cells[w.index(row, col)]
	if !cell.Possible.Has(p) {
		return false, cell.Possible.IsEmpty()
	}
	cell.Possible.Clear(p)
	cell.sumWeight -= float64(w.weights[p])
	cell.sumLogWeight -= w.weightLogProd[p]

	return true, cell.Possible.IsEmpty()
}

// CollapseTo forces the superposition at (row, col) down to the
// singleton {p}, marking the cell Collapsed.
func (w *Wave) CollapseTo(row, col, p int) {
	cell := &w.Cells[w.index(row, col)]
	singleton := core.NewBitset(cell.Possible.Len())
	singleton.Set(p)
	cell.Possible = singleton
	cell.sumWeight = float64(w.weights[p])
	cell.sumLogWeight = w.weightLogProd[p]
	cell.Collapsed = true
}

// Entropy computes the weighted Shannon entropy of the cell at (row, col):
//
//	S(cell) = log(W) - (Σ_q weight[q]*log(weight[q])) / W
//
// with a fresh uniform noise draw in [0, eps) subtracted for
// deterministic tie-breaking. Singleton and collapsed cells report
// +Inf so they are never re-selected by the solver's min-entropy scan.
// rng must be non-nil; the solver passes its single per-attempt stream so
// that noise draws are themselves part of the deterministic,
// seed-derived sequence (see wfc package doc).
func (w *Wave) Entropy(row, col int, eps float64, rng *rand.Rand) float64 {
	cell := &w.Cells[w.index(row, col)]
	if cell.Collapsed || cell.Possible.Count() <= 1 {
		return math.Inf(1)
	}

	s := math.Log(cell.sumWeight) - cell.sumLogWeight/cell.sumWeight
	s -= rng.Float64() * eps

	return s
}
