package render

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Renderer draws symbol sequences onto fresh canvases. One Renderer serves
// both deliverable images and animation frames; the final animation frame
// comes from the exact same code path as the standalone "after" image.
//
// A Renderer is immutable after construction and safe to share across
// sequential task generations.
type Renderer struct {
	layout Layout
	face   font.Face
	bg     color.NRGBA
}

// RendererOption configures a Renderer during creation.
type RendererOption func(*Renderer)

// WithBackground overrides the default white background.
func WithBackground(bg color.NRGBA) RendererOption {
	return func(r *Renderer) {
		r.bg = bg
	}
}

// NewRenderer creates a renderer for the given canvas size and symbol
// size. The face provides glyph metrics and rasterization; a nil face
// yields blank frames rather than a panic.
func NewRenderer(width, height, symbolSize int, face font.Face, opts ...RendererOption) *Renderer {
	r := &Renderer{
		layout: Layout{CanvasWidth: width, CanvasHeight: height, SymbolSize: symbolSize},
		face:   face,
		bg:     Background,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Layout returns the slot arithmetic used by this renderer.
func (r *Renderer) Layout() Layout {
	return r.layout
}

// RenderSequence draws the sequence onto a fresh canvas: background fill,
// then each symbol centered at its slot position in its assigned color.
// An empty sequence yields a blank canvas.
func (r *Renderer) RenderSequence(seq []string, colors ColorMap) *Canvas {
	c := NewCanvas(r.layout.CanvasWidth, r.layout.CanvasHeight)
	c.Fill(r.bg)
	n := len(seq)
	cy := float64(r.layout.CenterY())
	for i, sym := range seq {
		r.drawSymbol(c, sym, float64(r.layout.SlotX(n, i)), cy, colors[sym])
	}
	return c
}

// drawSymbol draws one glyph (or short label) so that its visual bounding
// box, not its nominal baseline box, is centered on (x, y). Centering the
// measured box keeps symbols of differing visual weight optically aligned.
//
// The color's alpha channel is honored: a partially transparent color
// composites the glyph over whatever the canvas already holds, which is
// how the fade-in phase is built.
func (r *Renderer) drawSymbol(c *Canvas, sym string, x, y float64, col color.NRGBA) {
	if sym == "" || r.face == nil {
		return
	}
	b, _ := font.BoundString(r.face, sym)
	dot := fixed.Point26_6{
		X: toFixed(x) - (b.Min.X+b.Max.X)/2,
		Y: toFixed(y) - (b.Min.Y+b.Max.Y)/2,
	}
	d := &font.Drawer{
		Dst:  c.Image(),
		Src:  image.NewUniform(col),
		Face: r.face,
		Dot:  dot,
	}
	d.DrawString(sym)
}

// toFixed converts a pixel coordinate to 26.6 fixed point. Integral inputs
// convert exactly, which is what makes the last slide frame land on the
// same dot positions as the static after-image render.
func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}
