// Package pattern implements overlapping-window pattern extraction: given
// an indexed grid and a window size N, it enumerates every NxN sub-window,
// applies a configurable set of symmetry transforms, deduplicates
// structurally-equal patterns while summing their occurrence weight, and
// assigns each distinct pattern a dense, deterministic PatternID.
//
// Determinism is load-bearing: PatternID depends only on row-major
// traversal order, the enabled SymmetrySet, and the input grid. Two calls
// to Extract with identical arguments must produce identical patterns in
// identical order, since callers (and the rule table keyed by PatternID)
// depend on it.
package pattern
