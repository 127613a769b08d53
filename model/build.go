package model

import (
	"github.com/katrevik/wfccore/core"
	"github.com/katrevik/wfccore/pattern"
	"github.com/katrevik/wfccore/ruleset"
)

// Build extracts patterns from grid, derives the adjacency rule table, and
// returns the resulting Model. It wraps pattern.Extract and ruleset.Build
// behind one call.
func Build(grid core.IndexedGrid, n int, opts Options) (*Model, error) {
	sym := opts.Symmetries
	if sym == 0 {
		sym = pattern.DefaultSymmetrySet()
	}

	patterns, err := pattern.Extract(grid, n, sym)
	if err != nil {
		return nil, err
	}

	if opts.Ground != nil {
		if *opts.Ground < 0 || *opts.Ground >= len(patterns) {
			return nil, ErrInvalidGround
		}
	}

	rules := ruleset.Build(patterns)

	return &Model{
		Patterns: patterns,
		Rules:    rules,
		Palette:  grid.Palette,
		Ground:   opts.Ground,
	}, nil
}
