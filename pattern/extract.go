package pattern

import (
	"encoding/binary"

	"github.com/katrevik/wfccore/core"
)

// Extract decomposes grid into weighted NxN patterns.
//
// Steps:
//  1. For every valid top-left (r, c) with 0 <= r <= H-N, 0 <= c <= W-N,
//     extract the NxN window in row-major traversal order.
//  2. For every transform flag set in sym, compute the transformed window.
//  3. Upsert into an order-preserving dictionary keyed by the transformed
//     pixel content: a new key is appended with weight 1; an existing key
//     has its weight incremented.
//  4. After the full pass, assign id = position in insertion order and
//     derive Probability = Weight / sum(Weight).
//
// Extraction never wraps the input; windows that would cross an edge are
// never produced (no toroidal mode). PatternID depends only on traversal
// order, sym, and grid — see the package doc comment.
func Extract(grid core.IndexedGrid, n int, sym SymmetrySet) ([]Pattern, error) {
	if n < 2 {
		return nil, ErrInvalidN
	}
	if grid.Height < n || grid.Width < n {
		return nil, ErrInputTooSmall
	}

	index := make(map[string]int)
	var patterns []Pattern

	flags := [...]SymmetrySet{SymIdentity, SymRot90, SymRot180, SymRot270, SymReflect}

	for r := 0; r <= grid.Height-n; r++ {
		for c := 0; c <= grid.Width-n; c++ {
			window := extractWindow(grid, r, c, n)
			for _, flag := range flags {
				if !sym.Has(flag) {
					continue
				}
				t := transform(window, n, flag)
				key := patternKey(t)
				if i, ok := index[key]; ok {
					patterns[i].Weight++
					continue
				}
				index[key] = len(patterns)
				patterns = append(patterns, Pattern{
					ID:     PatternID(len(patterns)),
					N:      n,
					Pixels: t,
					Weight: 1,
				})
			}
		}
	}

	var total uint32
	for _, p := range patterns {
		total += p.Weight
	}
	for i := range patterns {
		patterns[i].Probability = float64(patterns[i].Weight) / float64(total)
	}

	return patterns, nil
}

// extractWindow copies the NxN sub-window of grid whose top-left corner is
// (r, c) into a freshly allocated row-major slice.
func extractWindow(grid core.IndexedGrid, r, c, n int) []core.ColorId {
	out := make([]core.ColorId, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out[i*n+j] = grid.At(r+i, c+j)
		}
	}

	return out
}

// patternKey builds a content key for the deduplication map. Each ColorId
// is packed as 2 bytes little-endian so structurally equal pixel arrays
// always produce identical keys regardless of the ColorId's numeric
// magnitude.
func patternKey(pixels []core.ColorId) string {
	buf := make([]byte, len(pixels)*2)
	for i, id := range pixels {
		binary.LittleEndian.PutUint16(buf[i*2:], uint16(id))
	}

	return string(buf)
}
