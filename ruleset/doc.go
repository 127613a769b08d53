// Package ruleset builds the adjacency rule table: for every ordered
// (pattern, direction) pair, the set of patterns that may legally occupy
// the neighboring cell in that direction.
//
// The table is stored densely — one core.Bitset per (pattern id,
// direction) — rather than as a map, since the relation is queried far
// more often than it is built: every propagation step in the solver
// reads R[p][d] by id, never iterates it sparsely.
package ruleset
