package model

import (
	"errors"

	"github.com/katrevik/wfccore/core"
	"github.com/katrevik/wfccore/pattern"
	"github.com/katrevik/wfccore/ruleset"
)

// ErrInvalidGround indicates Options.Ground names a pattern id outside
// [0, numPatterns).
var ErrInvalidGround = errors.New("model: ground pattern id out of range")

// Options configures model construction.
type Options struct {
	// Symmetries selects which window transforms are folded into the
	// pattern dictionary during extraction. Zero value means
	// pattern.DefaultSymmetrySet() (the four rotations).
	Symmetries pattern.SymmetrySet

	// Ground, if non-nil, pins the named pattern id to the bottom row of
	// every generated wave before observation begins. See DESIGN.md for
	// the rationale behind this choice of semantics.
	Ground *int
}

// Model is the immutable output of Build: the extracted pattern
// dictionary, the derived adjacency rule table, and the palette needed to
// eventually render a collapsed wave back to pixels.
type Model struct {
	Patterns []pattern.Pattern
	Rules    ruleset.RuleTable
	Palette  core.Palette
	Ground   *int
}
