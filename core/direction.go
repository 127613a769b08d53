package core

// Direction is one of the eight compass offsets (dr, dc) with dr, dc in
// {-1, 0, +1} excluding (0, 0). It is the unit of adjacency the rule table
// and the propagation worklist are both indexed by.
//
// This mirrors the connectivity-offset idea of a plain 2D grid-as-graph
// (four cardinal neighbors, or eight including diagonals) rather than a
// general adjacency list: a wave cell's neighbors are always exactly its
// compass offsets, never an arbitrary edge set.
type Direction struct {
	DR, DC int8
}

// Negate returns the opposite direction: negate(D) = (-dr, -dc).
func (d Direction) Negate() Direction {
	return Direction{DR: -d.DR, DC: -d.DC}
}

// Index returns a stable 0..7 index for d, used to address the dense
// per-pattern rule rows. The order matches Eight.
func (d Direction) Index() int {
	for i, e := range Eight {
		if e == d {
			return i
		}
	}

	return -1
}

// The eight compass directions, in a fixed, deterministic order. Index()
// and RuleTable both rely on this exact ordering.
var Eight = [8]Direction{
	{DR: -1, DC: 0},  // N
	{DR: -1, DC: 1},  // NE
	{DR: 0, DC: 1},   // E
	{DR: 1, DC: 1},   // SE
	{DR: 1, DC: 0},   // S
	{DR: 1, DC: -1},  // SW
	{DR: 0, DC: -1},  // W
	{DR: -1, DC: -1}, // NW
}

// The four cardinal directions, a subset of Eight in the same relative
// order. Using Four instead of Eight yields weaker local consistency but
// faster convergence; which set a solver run uses is configured via
// wfc.SolveOptions.Neighborhood.
var Four = [4]Direction{
	Eight[0], // N
	Eight[2], // E
	Eight[4], // S
	Eight[6], // W
}
