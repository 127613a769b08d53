package core

import "errors"

// Sentinel errors for core operations.
var (
	// ErrRaggedGrid indicates that the input pixel rows do not all share
	// the same length. The original Python prototype this module is
	// derived from has no such check and indexes out of bounds instead;
	// this module surfaces the problem as an error rather than inheriting
	// that misbehavior.
	ErrRaggedGrid = errors.New("core: input rows have differing lengths")
)

// Pixel is an opaque RGBA color value. Equality is structural: two Pixels
// are equal iff every channel matches. 3-channel (RGB) sources are expected
// to set A=255.
type Pixel [4]uint8

// ColorId is a small non-negative integer index into a Palette.
type ColorId uint16

// Palette is a deduplicated, first-seen-order list of Pixel values.
type Palette []Pixel

// IndexedGrid is a rectangular H×W array of ColorId plus the Palette that
// maps each ColorId back to a Pixel. Every ColorId appearing in Cells is a
// valid index into Palette.
type IndexedGrid struct {
	Width, Height int
	Cells         []ColorId // row-major, len == Width*Height
	Palette       Palette
}

// At returns the ColorId at (row, col). Callers must ensure the coordinate
// is in bounds; this is a hot path exercised by the pattern extractor and
// is intentionally unchecked.
func (g IndexedGrid) At(row, col int) ColorId {
	return g.Cells[row*g.Width+col]
}
