package render

import (
	"errors"

	"github.com/katrevik/wfccore/core"
	"github.com/katrevik/wfccore/model"
	"github.com/katrevik/wfccore/pattern"
	"github.com/katrevik/wfccore/wave"
)

// ErrNotFullyCollapsed indicates w has at least one cell whose
// superposition is not a singleton.
var ErrNotFullyCollapsed = errors.New("render: wave is not fully collapsed")

// Render reads the top-left pixel of the surviving pattern at each cell,
// producing an Hout x Wout pixel grid. This is the canonical render mode.
func Render(w *wave.Wave, m *model.Model) ([][]core.Pixel, error) {
	out := make([][]core.Pixel, w.Height)
	for r := 0; r < w.Height; r++ {
		out[r] = make([]core.Pixel, w.Width)
		for c := 0; c < w.Width; c++ {
			p, err := singlePattern(w, m, r, c)
			if err != nil {
				return nil, err
			}
			out[r][c] = m.Palette[p.At(0, 0)]
		}
	}

	return out, nil
}

// RenderTiled tiles each cell's full NxN surviving pattern, producing a
// (Hout*N) x (Wout*N) pixel grid — an alternative to the canonical
// top-left mode.
func RenderTiled(w *wave.Wave, m *model.Model) ([][]core.Pixel, error) {
	if len(m.Patterns) == 0 {
		return nil, ErrNotFullyCollapsed
	}
	n := m.Patterns[0].N

	out := make([][]core.Pixel, w.Height*n)
	for i := range out {
		out[i] = make([]core.Pixel, w.Width*n)
	}

	for r := 0; r < w.Height; r++ {
		for c := 0; c < w.Width; c++ {
			p, err := singlePattern(w, m, r, c)
			if err != nil {
				return nil, err
			}
			for i := 0; i < n; i++ {
				for j := 0; j < n; j++ {
					out[r*n+i][c*n+j] = m.Palette[p.At(i, j)]
				}
			}
		}
	}

	return out, nil
}

// singlePattern returns the one surviving pattern at (row, col), or
// ErrNotFullyCollapsed if the cell's superposition is not a singleton.
func singlePattern(w *wave.Wave, m *model.Model, row, col int) (pattern.Pattern, error) {
	possible := w.Possible(row, col)
	if possible.Count() != 1 {
		return pattern.Pattern{}, ErrNotFullyCollapsed
	}

	var id int
	possible.ForEach(func(i int) bool {
		id = i
		return false
	})

	return m.Patterns[id], nil
}
