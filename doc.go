// Package wfccore implements overlapping Wave Function Collapse: learning
// local NxN pattern statistics from a sample image and resynthesizing a
// new image of arbitrary size that is locally consistent with what was
// learned.
//
// The pipeline is organized as a chain of small, single-purpose packages,
// each with one external entry point:
//
//	core/    — palette indexing: Pixel grids to small-integer IndexedGrid
//	pattern/ — NxN pattern extraction and symmetry folding (Extract)
//	ruleset/ — pairwise overlap compatibility per compass direction (Build)
//	model/   — wires pattern+ruleset behind one call (Build)
//	wave/    — per-cell superposition bookkeeping with incremental entropy
//	wfc/     — the observe/propagate/restart solver loop (Generate)
//	render/  — collapsed wave back to a pixel grid (Render, RenderTiled)
//
// A typical run:
//
//	grid, err := core.IndexImage(samplePixels)
//	m, err := model.Build(grid, 3, model.Options{})
//	w, err := wfc.Generate(m, 64, 64, wfc.SolveOptions{Seed: 1})
//	out, err := render.Render(w, m)
//
// See wfc/scenarios_test.go for complete end-to-end runs, and each
// package's doc comment for the exact guarantees it makes.
package wfccore
