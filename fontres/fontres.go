// Package fontres resolves a renderable font face for symbol drawing.
//
// Resolution walks a candidate list of font files in priority order and
// accepts the first one that parses and covers every rune the caller needs
// (Unicode shape symbols like "★" are missing from many otherwise fine
// fonts). When every candidate fails, resolution falls back to a minimal
// builtin face with degraded metrics — it never fails, matching the
// contract that rendering proceeds with degraded fidelity rather than
// aborting.
package fontres

import (
	"bytes"
	"fmt"
	"os"

	gtfont "github.com/go-text/typesetting/font"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// BuiltinName is the Name reported by the last-resort builtin face.
const BuiltinName = "builtin"

// DefaultCandidates lists font files tried in priority order, covering the
// common Linux and macOS locations of faces with good symbol coverage.
var DefaultCandidates = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
	"/usr/share/fonts/truetype/noto/NotoSansSymbols-Regular.ttf",
	"/System/Library/Fonts/Supplemental/Arial Unicode.ttf",
	"/Library/Fonts/Arial Unicode.ttf",
	"/System/Library/Fonts/Apple Symbols.ttf",
}

// Face couples a drawable font face with the name of the source it came
// from, so callers can log which provider actually won.
type Face struct {
	font.Face
	Name string
}

// Resolve returns a face of the given pixel size whose glyph repertoire
// covers alphabet. Candidates are tried in order; with no candidates the
// default chain is used. On exhaustion the builtin face is returned.
//
// Resolve never returns an unusable face.
func Resolve(size float64, alphabet []rune, candidates ...string) Face {
	if len(candidates) == 0 {
		candidates = DefaultCandidates
	}
	for _, path := range candidates {
		face, err := fromFile(path, size, alphabet)
		if err != nil {
			continue
		}
		return Face{Face: face, Name: path}
	}
	return Face{Face: Builtin(), Name: BuiltinName}
}

// Builtin returns the last-resort face. Its fixed 7x13 glyphs render any
// symbol the font happens to know and a blank for the rest; fidelity is
// degraded but rendering never stops.
func Builtin() font.Face {
	return basicfont.Face7x13
}

// fromFile loads one candidate: read, verify coverage, build a face.
func fromFile(path string, size float64, alphabet []rune) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := checkCoverage(data, alphabet); err != nil {
		return nil, err
	}
	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("fontres: parse %s: %w", path, err)
	}
	return opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// checkCoverage reports whether the font data has a nominal glyph for
// every rune in alphabet.
func checkCoverage(data []byte, alphabet []rune) error {
	if len(alphabet) == 0 {
		return nil
	}
	parsed, err := gtfont.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("fontres: coverage parse: %w", err)
	}
	for _, r := range alphabet {
		if _, ok := parsed.NominalGlyph(r); !ok {
			return fmt.Errorf("fontres: no glyph for %q", r)
		}
	}
	return nil
}
