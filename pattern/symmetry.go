package pattern

import "github.com/katrevik/wfccore/core"

// transform applies a single symmetry flag to an NxN row-major pixel
// window, returning a freshly allocated window. Only one flag bit may be
// set; callers iterate the SymmetrySet bit by bit.
func transform(window []core.ColorId, n int, flag SymmetrySet) []core.ColorId {
	switch flag {
	case SymRot90:
		return rotate90(window, n)
	case SymRot180:
		return rotate90(rotate90(window, n), n)
	case SymRot270:
		return rotate90(rotate90(rotate90(window, n), n), n)
	case SymReflect:
		return reflectHorizontal(window, n)
	default: // SymIdentity
		out := make([]core.ColorId, len(window))
		copy(out, window)
		return out
	}
}

// rotate90 rotates an NxN row-major window 90 degrees clockwise:
// out[row][col] = window[N-1-col][row].
func rotate90(window []core.ColorId, n int) []core.ColorId {
	out := make([]core.ColorId, n*n)
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			out[row*n+col] = window[(n-1-col)*n+row]
		}
	}

	return out
}

// reflectHorizontal mirrors an NxN row-major window left-right.
func reflectHorizontal(window []core.ColorId, n int) []core.ColorId {
	out := make([]core.ColorId, n*n)
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			out[row*n+col] = window[row*n+(n-1-col)]
		}
	}

	return out
}
