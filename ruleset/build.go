package ruleset

import (
	"github.com/katrevik/wfccore/core"
	"github.com/katrevik/wfccore/pattern"
)

// Build computes the adjacency rule table for patterns. Complexity is
// O(|patterns|^2 * 8 * N^2), dominated by the overlap predicate; there is
// no error path.
func Build(patterns []pattern.Pattern) RuleTable {
	numPatterns := len(patterns)
	rows := make([][8]core.Bitset, numPatterns)
	for p := range rows {
		for di := range rows[p] {
			rows[p][di] = core.NewBitset(numPatterns)
		}
	}

	for pi, p := range patterns {
		for di, d := range core.Eight {
			for qi, q := range patterns {
				if p.Overlaps(q, d) {
					rows[pi][di].Set(qi)
				}
			}
		}
	}

	return RuleTable{NumPatterns: numPatterns, Rows: rows}
}
