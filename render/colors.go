package render

import "image/color"

// Canvas colors.
var (
	// Background is the fill color of every frame.
	Background = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

	// Border is the accent color for optional frame decorations.
	Border = color.NRGBA{R: 60, G: 60, B: 60, A: 255}

	// Text is the color for auxiliary text annotations.
	Text = color.NRGBA{R: 40, G: 40, B: 40, A: 255}
)

// Palette is the fixed set of symbol colors. Distinct symbols receive
// distinct entries until the palette is exhausted, after which colors
// cycle.
var Palette = []color.NRGBA{
	{R: 220, G: 60, B: 60, A: 255},   // red
	{R: 60, G: 60, B: 220, A: 255},   // blue
	{R: 60, G: 180, B: 60, A: 255},   // green
	{R: 220, G: 160, B: 60, A: 255},  // orange
	{R: 160, G: 60, B: 220, A: 255},  // purple
	{R: 60, G: 180, B: 180, A: 255},  // cyan
	{R: 220, G: 60, B: 160, A: 255},  // pink
	{R: 100, G: 150, B: 60, A: 255},  // olive
	{R: 220, G: 120, B: 60, A: 255},  // coral
	{R: 80, G: 80, B: 200, A: 255},   // indigo
}

// ColorMap is a per-task-instance assignment of symbols to palette colors.
// It is built once from the union of the before and after sequences and
// reused for every frame, so a symbol keeps the same color in both static
// images and throughout the animation.
type ColorMap map[string]color.NRGBA

// NewColorMap assigns each distinct symbol a palette color by
// first-appearance order: index i in the deduplicated enumeration maps to
// Palette[i mod len(Palette)]. First-appearance order makes the assignment
// a pure function of the input sequence, keeping generation reproducible
// under a fixed seed.
func NewColorMap(symbols []string) ColorMap {
	m := make(ColorMap, len(symbols))
	i := 0
	for _, s := range symbols {
		if _, ok := m[s]; ok {
			continue
		}
		m[s] = Palette[i%len(Palette)]
		i++
	}
	return m
}
