package insertgen

import "github.com/symworlds/insertgen/render"

// TaskPair is one generated training example. Images are fully rendered
// canvases; VideoPath is empty when video output was disabled, skipped, or
// failed (an image-only pair is still a complete result).
type TaskPair struct {
	// ID identifies the task instance.
	ID string

	// Domain is the task family tag, e.g. "symbol_insert".
	Domain string

	// Prompt is the natural-language instruction, with the insertion
	// position 1-indexed.
	Prompt string

	// Before and After are the static deliverable images.
	Before *render.Canvas
	After  *render.Canvas

	// BeforeSequence and AfterSequence are the underlying symbol
	// sequences; AfterSequence is BeforeSequence with InsertedSymbol
	// spliced in at InsertPosition.
	BeforeSequence []string
	AfterSequence  []string

	// InsertedSymbol is the new symbol.
	InsertedSymbol string

	// InsertPosition is the 0-indexed insertion slot,
	// 0 <= InsertPosition <= len(BeforeSequence).
	InsertPosition int

	// Colors is the symbol-to-color assignment shared by every frame of
	// this instance.
	Colors render.ColorMap

	// VideoPath is the encoded animation file, or "" when absent.
	VideoPath string
}
