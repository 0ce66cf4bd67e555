package render

import (
	"math"
	"slices"
)

// Timing holds the frame counts of the insertion animation's phases.
type Timing struct {
	// Hold is the frame count of each of the two hold phases.
	Hold int

	// Fade is the frame count of the fade-in phase.
	Fade int

	// Slide is the frame count of the slide-and-shift phase.
	Slide int
}

// DefaultTiming returns the standard phase lengths.
func DefaultTiming() Timing {
	return Timing{Hold: 5, Fade: 8, Slide: 10}
}

// FrameCount returns the total animation length: hold-initial + fade-in +
// slide-and-shift + hold-final.
func (t Timing) FrameCount() int {
	return 2*t.Hold + t.Fade + t.Slide
}

// Animate produces the full insertion animation as an ordered frame
// sequence:
//
//  1. hold-initial: the before sequence, repeated
//  2. fade-in: the inserted symbol ramps to full opacity above its slot
//  3. slide-and-shift: the inserted symbol descends while the original
//     symbols glide from the pre-insertion layout to the post-insertion one
//  4. hold-final: the after sequence, repeated
//
// Every returned frame is an independent canvas; repeated hold frames are
// clones, not aliases. The last slide frame composes to exactly the
// post-insertion static layout, so the transition into hold-final is
// seamless and the final frame is pixel-identical to
// RenderSequence(after, colors).
//
// pos may be 0 (insert at front) or len(before) (insert at end); the
// partition into shifted and unshifted symbols handles empty halves
// without special cases.
func (r *Renderer) Animate(before []string, insert string, pos int, colors ColorMap, t Timing) []*Canvas {
	frames := make([]*Canvas, 0, t.FrameCount())

	base := r.RenderSequence(before, colors)
	for range t.Hold {
		frames = append(frames, base.Clone())
	}

	for i := range t.Fade {
		frames = append(frames, r.fadeFrame(before, insert, pos, colors, fadeAlpha(i, t.Fade)))
	}

	for i := range t.Slide {
		p := float64(i+1) / float64(t.Slide)
		frames = append(frames, r.slideFrame(before, insert, pos, colors, p))
	}

	after := slices.Insert(slices.Clone(before), pos, insert)
	final := r.RenderSequence(after, colors)
	for range t.Hold {
		frames = append(frames, final.Clone())
	}

	return frames
}

// fadeAlpha returns the opacity of fade frame i out of f:
// round(255*(i+1)/f). The last fade frame is always fully opaque.
func fadeAlpha(i, f int) uint8 {
	return uint8(math.Round(255 * float64(i+1) / float64(f)))
}

// fadeFrame composites the inserted symbol, at the given opacity, above
// its eventual slot. The base layer is the unmodified before sequence; the
// glyph sits at the pre-insertion layout's slot x for pos and one
// symbol-height above the vertical center.
func (r *Renderer) fadeFrame(seq []string, insert string, pos int, colors ColorMap, alpha uint8) *Canvas {
	c := r.RenderSequence(seq, colors)
	col := colors[insert]
	col.A = alpha
	r.drawSymbol(c, insert,
		float64(r.layout.SlotX(len(seq), pos)),
		float64(r.layout.RaisedY()),
		col)
	return c
}

// slideFrame renders one step of the slide-and-shift phase at progress p
// in (0, 1]. Original symbols interpolate from their pre-insertion slot to
// their post-insertion slot: indices below pos keep their slot index,
// indices at or above pos move up by one. The inserted symbol stays at its
// final x and descends from the raised y to the vertical center.
//
// At p == 1 every interpolation lands exactly on the post-insertion
// layout, because lerp(a, b, 1) is exactly b for slot coordinates.
func (r *Renderer) slideFrame(seq []string, insert string, pos int, colors ColorMap, p float64) *Canvas {
	c := NewCanvas(r.layout.CanvasWidth, r.layout.CanvasHeight)
	c.Fill(r.bg)

	n := len(seq)
	cy := float64(r.layout.CenterY())
	for i, sym := range seq {
		j := i
		if i >= pos {
			j = i + 1
		}
		preX := float64(r.layout.SlotX(n, i))
		postX := float64(r.layout.SlotX(n+1, j))
		r.drawSymbol(c, sym, lerp(preX, postX, p), cy, colors[sym])
	}

	x := float64(r.layout.SlotX(n+1, pos))
	y := lerp(float64(r.layout.RaisedY()), cy, p)
	r.drawSymbol(c, insert, x, y, colors[insert])
	return c
}

func lerp(a, b, p float64) float64 {
	return a + (b-a)*p
}
