package wave

import "github.com/katrevik/wfccore/core"

// Cell is one wave position's superposition: the bitset of still-possible
// pattern ids, plus running sums that make Entropy an O(1) query instead
// of an O(numPatterns) scan on every call.
type Cell struct {
	Possible  core.Bitset
	Collapsed bool

	sumWeight    float64 // Σ weight[q] over surviving q
	sumLogWeight float64 // Σ weight[q]*log(weight[q]) over surviving q
}

// Wave is the Hout x Wout array of Cell, row-major.
type Wave struct {
	Height, Width int
	Cells         []Cell

	weights       []uint32
	weightLogProd []float64 // weight[q]*log(weight[q]), precomputed once
}
