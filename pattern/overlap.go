package pattern

import "github.com/katrevik/wfccore/core"

// Overlaps reports whether p and q are compatible in direction d: whether,
// when q is offset by d relative to p, the shared (N-|dr|)x(N-|dc|)
// sub-rectangle agrees pixel-for-pixel.
//
// p and q must share the same N; this is a caller invariant (ruleset.Build
// only ever calls this with patterns from the same Extract call).
func (p Pattern) Overlaps(q Pattern, d core.Direction) bool {
	n := p.N
	dr, dc := int(d.DR), int(d.DC)

	rowLo, rowHi := 0, n
	if dr == 1 {
		rowHi = n - 1
	} else if dr == -1 {
		rowLo = 1
	}
	colLo, colHi := 0, n
	if dc == 1 {
		colHi = n - 1
	} else if dc == -1 {
		colLo = 1
	}

	for i := rowLo; i < rowHi; i++ {
		for j := colLo; j < colHi; j++ {
			if p.At(i, j) != q.At(i+dr, j+dc) {
				return false
			}
		}
	}

	return true
}
