// Package render draws symbol sequences onto raster canvases and
// synthesizes the insertion animation.
//
// The package is organized around three small pieces:
//   - Layout: pure slot-position arithmetic for a centered sequence
//   - Renderer: static frame rendering and per-frame animation compositing
//   - Canvas: an RGBA pixel buffer with PNG output
//
// All rendering is software-only and deterministic: the same inputs always
// produce byte-identical pixel buffers. The final frame of an animation is
// produced by the same RenderSequence call as the standalone "after" image,
// so the two are guaranteed to match.
package render
