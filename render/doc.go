// Package render converts a fully collapsed wave.Wave back into a pixel
// grid. Render uses the canonical top-left-pixel mode; RenderTiled is an
// optional NxN tiling alternative.
package render
