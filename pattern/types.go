package pattern

import (
	"errors"

	"github.com/katrevik/wfccore/core"
)

// Sentinel errors for pattern extraction.
var (
	// ErrInvalidN indicates a window size smaller than 2.
	ErrInvalidN = errors.New("pattern: N must be at least 2")
	// ErrInputTooSmall indicates the grid is smaller than the window.
	ErrInputTooSmall = errors.New("pattern: grid is smaller than the pattern window")
)

// PatternID is a dense identifier assigned during extraction, unique
// across all patterns retained from a single Extract call. Two
// independent Extract calls may reuse the same ids.
type PatternID uint32

// Pattern is an NxN array of core.ColorId (Pixels, row-major, length
// N*N), together with its occurrence Weight and derived Probability.
type Pattern struct {
	ID          PatternID
	N           int
	Pixels      []core.ColorId // row-major, len == N*N
	Weight      uint32
	Probability float64
}

// At returns the ColorId stored at local (row, col) within the pattern.
func (p Pattern) At(row, col int) core.ColorId {
	return p.Pixels[row*p.N+col]
}

// SymmetrySet is a bitmask selecting which symmetry transforms of each
// extracted window are folded into the pattern dictionary.
type SymmetrySet uint8

const (
	// SymIdentity is the window as found, untransformed.
	SymIdentity SymmetrySet = 1 << iota
	// SymRot90 is the window rotated 90 degrees clockwise.
	SymRot90
	// SymRot180 is the window rotated 180 degrees.
	SymRot180
	// SymRot270 is the window rotated 270 degrees clockwise.
	SymRot270
	// SymReflect is the window mirrored horizontally (left-right flip).
	// Off by default.
	SymReflect
)

// DefaultSymmetrySet returns the four rotations.
func DefaultSymmetrySet() SymmetrySet {
	return SymIdentity | SymRot90 | SymRot180 | SymRot270
}

// Has reports whether s includes the given transform flag.
func (s SymmetrySet) Has(flag SymmetrySet) bool {
	return s&flag != 0
}
