// Package model ties pattern extraction and rule-table construction
// together behind a single entry point:
// Build(grid, N, opts) -> Model, where Model = {Patterns, Rules, Palette}.
//
// A built Model is immutable: Patterns, Rules, and Palette are never
// mutated after Build returns, so a single Model may be shared across
// concurrent wfc.Generate calls without synchronization.
package model
