package render

// slotGap is the fixed horizontal gap between adjacent symbol slots.
const slotGap = 20

// Layout computes horizontal slot positions for a symbol sequence centered
// on a fixed canvas. It is pure arithmetic with no internal state; the same
// Layout value answers questions for any sequence length, which is what
// phase interpolation relies on (pre- and post-insertion layouts come from
// the same value).
//
// All division is Go integer division (truncation toward zero). Operands
// stay non-negative as long as the sequence fits the canvas, which config
// validation guarantees for the configured maximum length, so truncation
// and floor coincide everywhere this math runs.
type Layout struct {
	CanvasWidth  int
	CanvasHeight int
	SymbolSize   int
}

// Spacing returns the center-to-center distance between adjacent slots.
func (l Layout) Spacing() int {
	return l.SymbolSize + slotGap
}

// ContentWidth returns the total width spanned by n slots.
func (l Layout) ContentWidth(n int) int {
	if n <= 0 {
		return 0
	}
	return n*l.Spacing() - slotGap
}

// StartX returns the center x-coordinate of slot 0 for a sequence of n
// symbols.
func (l Layout) StartX(n int) int {
	return (l.CanvasWidth - l.ContentWidth(n)) / 2
}

// SlotX returns the center x-coordinate of slot i for a sequence of n
// symbols.
func (l Layout) SlotX(n, i int) int {
	return l.StartX(n) + i*l.Spacing()
}

// SlotCenters returns the center x-coordinates of all n slots.
func (l Layout) SlotCenters(n int) []int {
	xs := make([]int, n)
	for i := range xs {
		xs[i] = l.SlotX(n, i)
	}
	return xs
}

// CenterY returns the vertical center of the canvas, where all settled
// symbols sit.
func (l Layout) CenterY() int {
	return l.CanvasHeight / 2
}

// RaisedY returns the elevated y-coordinate where the inserted symbol
// fades in, one symbol-height above the vertical center.
func (l Layout) RaisedY() int {
	return l.CenterY() - l.SymbolSize
}
