package insertgen

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"

	"github.com/symworlds/insertgen/render"
)

// ErrConfig wraps every configuration validation failure. It is the only
// hard error the generator raises; everything downstream degrades instead
// of failing.
var ErrConfig = errors.New("insertgen: invalid config")

// Config holds all task-generation settings. The zero value is not usable;
// start from DefaultConfig or LoadConfig and call Validate before handing
// it to New (New validates again regardless).
type Config struct {
	// Domain tags generated task pairs and names the video scratch
	// directory.
	Domain string `yaml:"domain"`

	// Width and Height are the canvas dimensions in pixels.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// SymbolSize is the glyph size in pixels.
	SymbolSize int `yaml:"symbol_size"`

	// MinSequenceLength and MaxSequenceLength bound the length of the
	// before sequence (inclusive).
	MinSequenceLength int `yaml:"min_sequence_length"`
	MaxSequenceLength int `yaml:"max_sequence_length"`

	// SymbolSet names a built-in alphabet: "shapes", "letters", "numbers"
	// or "mixed". Unknown names fall back to "shapes". Ignored when
	// Alphabet is set.
	SymbolSet string `yaml:"symbol_set"`

	// Alphabet, when non-empty, replaces the built-in symbol set. Entries
	// are NFC-normalized and deduplicated, preserving first-appearance
	// order, so visually identical symbols cannot end up as distinct map
	// keys.
	Alphabet []string `yaml:"alphabet,omitempty"`

	// GenerateVideos enables ground-truth animation videos when an
	// encoder is available. Missing ffmpeg downgrades to image-only
	// output; it is never an error.
	GenerateVideos bool `yaml:"generate_videos"`

	// VideoFPS is the animation frame rate.
	VideoFPS int `yaml:"video_fps"`

	// HoldFrames, FadeFrames and SlideFrames are the phase lengths of the
	// insertion animation.
	HoldFrames  int `yaml:"hold_frames"`
	FadeFrames  int `yaml:"fade_frames"`
	SlideFrames int `yaml:"slide_frames"`

	// FontPaths overrides the default font fallback chain.
	FontPaths []string `yaml:"font_paths,omitempty"`
}

// DefaultConfig returns the standard settings: an 800x200 canvas, 60px
// shape symbols, sequences of 4 to 8, and the default animation timing.
func DefaultConfig() Config {
	return Config{
		Domain:            "symbol_insert",
		Width:             800,
		Height:            200,
		SymbolSize:        60,
		MinSequenceLength: 4,
		MaxSequenceLength: 8,
		SymbolSet:         "shapes",
		GenerateVideos:    true,
		VideoFPS:          10,
		HoldFrames:        5,
		FadeFrames:        8,
		SlideFrames:       10,
	}
}

// LoadConfig reads a YAML config file over the defaults, so partial files
// only need to name the settings they change.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("insertgen: read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("insertgen: parse config: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration and returns an error wrapping
// ErrConfig on the first violation. It must pass before any rendering
// begins.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: canvas size %dx%d must be positive", ErrConfig, c.Width, c.Height)
	}
	if c.SymbolSize <= 0 {
		return fmt.Errorf("%w: symbol_size %d must be positive", ErrConfig, c.SymbolSize)
	}
	if c.Height < 2*c.SymbolSize {
		return fmt.Errorf("%w: height %d too small for symbol_size %d (fade-in needs one symbol-height above center)", ErrConfig, c.Height, c.SymbolSize)
	}
	if c.MinSequenceLength < 1 {
		return fmt.Errorf("%w: min_sequence_length %d must be at least 1", ErrConfig, c.MinSequenceLength)
	}
	if c.MinSequenceLength > c.MaxSequenceLength {
		return fmt.Errorf("%w: min_sequence_length %d > max_sequence_length %d", ErrConfig, c.MinSequenceLength, c.MaxSequenceLength)
	}
	alphabet := c.alphabet()
	if len(alphabet) < c.MaxSequenceLength {
		return fmt.Errorf("%w: alphabet has %d symbols, need at least max_sequence_length (%d) for sampling without replacement", ErrConfig, len(alphabet), c.MaxSequenceLength)
	}
	layout := render.Layout{CanvasWidth: c.Width, CanvasHeight: c.Height, SymbolSize: c.SymbolSize}
	if layout.ContentWidth(c.MaxSequenceLength+1) > c.Width {
		return fmt.Errorf("%w: %d symbols of size %d do not fit a canvas %d wide", ErrConfig, c.MaxSequenceLength+1, c.SymbolSize, c.Width)
	}
	if c.HoldFrames < 0 || c.FadeFrames < 1 || c.SlideFrames < 1 {
		return fmt.Errorf("%w: frame counts hold=%d fade=%d slide=%d (fade and slide need at least 1)", ErrConfig, c.HoldFrames, c.FadeFrames, c.SlideFrames)
	}
	if c.VideoFPS < 1 {
		return fmt.Errorf("%w: video_fps %d must be at least 1", ErrConfig, c.VideoFPS)
	}
	return nil
}

// alphabet resolves the effective symbol alphabet: the custom Alphabet,
// NFC-normalized and deduplicated, or the named built-in set.
func (c Config) alphabet() []string {
	if len(c.Alphabet) == 0 {
		return symbolSet(c.SymbolSet)
	}
	seen := make(map[string]bool, len(c.Alphabet))
	out := make([]string, 0, len(c.Alphabet))
	for _, s := range c.Alphabet {
		s = norm.NFC.String(s)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

// timing converts the configured phase lengths to render.Timing.
func (c Config) timing() render.Timing {
	return render.Timing{Hold: c.HoldFrames, Fade: c.FadeFrames, Slide: c.SlideFrames}
}
