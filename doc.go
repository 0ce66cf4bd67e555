// Package insertgen synthesizes labeled training examples for a
// visual-reasoning task: insert a symbol at a position in a rendered
// symbol sequence.
//
// # Overview
//
// Each generated task pair contains a "before" image showing a sequence of
// colored symbols, an "after" image showing the same sequence with one new
// symbol spliced in, a natural-language instruction describing the
// insertion, and optionally a short video animating the transition.
//
// # Quick Start
//
//	import "github.com/symworlds/insertgen"
//
//	cfg := insertgen.DefaultConfig()
//	gen, err := insertgen.New(cfg)
//	if err != nil {
//	    return err
//	}
//
//	pair, err := gen.GenerateTaskPair("symbol_insert_000001")
//	if err != nil {
//	    return err
//	}
//	_ = pair.Before.SavePNG("before.png")
//	_ = pair.After.SavePNG("after.png")
//
// # Architecture
//
// The module is organized into:
//   - Public API: Config, Generator, TaskPair
//   - render: layout math, static frame rendering, animation synthesis
//   - fontres: font resolution with a fallback chain and a builtin last resort
//   - video: optional ffmpeg-backed frame-sequence encoding
//
// # Determinism
//
// All randomness flows through an explicit source supplied with WithRand.
// Fixing the source and the configuration reproduces the identical
// (before, after, position, symbol, colors) tuple across runs, so batch
// drivers can parallelize across Generator instances with zero
// coordination.
package insertgen
