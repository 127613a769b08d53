package ruleset

import "github.com/katrevik/wfccore/core"

// RuleTable holds, for every pattern id and direction, the bitset of
// pattern ids that may occupy that neighbor offset. Rows is indexed
// [patternID][direction.Index()].
//
// Invariant (checked by tests, never by the constructor — this is a pure
// derived structure with no error path): for all p, q, d:
// q in Rows[p][d.Index()] iff p in Rows[q][d.Negate().Index()].
type RuleTable struct {
	NumPatterns int
	Rows        [][8]core.Bitset
}

// Allowed returns the bitset of pattern ids allowed to occupy the cell
// offset by d from a cell holding pattern p.
func (t RuleTable) Allowed(p int, d core.Direction) core.Bitset {
	return t.Rows[p][d.Index()]
}
