package insertgen

import (
	"image"
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"
	"slices"

	"golang.org/x/image/font"

	"github.com/symworlds/insertgen/fontres"
	"github.com/symworlds/insertgen/render"
	"github.com/symworlds/insertgen/video"
)

// Generator produces symbol-insertion task pairs. It holds only read-only
// state after construction (configuration, alphabet, font face), plus its
// private random source, so independent Generators can run in parallel
// with zero coordination.
type Generator struct {
	cfg      Config
	alphabet []string
	timing   render.Timing

	rng      *rand.Rand
	log      *slog.Logger
	face     font.Face
	renderer *render.Renderer
	encoder  video.Encoder
	videoDir string
}

// Option configures a Generator during creation.
type Option func(*Generator)

// WithRand sets the random source. Supplying a seeded source makes the
// generated (before, after, position, symbol, colors) tuple reproducible.
// Without it the generator self-seeds.
func WithRand(r *rand.Rand) Option {
	return func(g *Generator) {
		g.rng = r
	}
}

// WithLogger sets a per-generator logger, overriding the package-level one.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.log = l
		}
	}
}

// WithFace injects a font face, bypassing font resolution. Tests use this
// to render with the builtin face regardless of installed fonts.
func WithFace(f font.Face) Option {
	return func(g *Generator) {
		g.face = f
	}
}

// WithEncoder injects a video encoder, bypassing ffmpeg detection.
func WithEncoder(e video.Encoder) Option {
	return func(g *Generator) {
		g.encoder = e
	}
}

// WithVideoDir sets the directory for encoded videos. Defaults to
// "<domain>_videos" under the system temp directory.
func WithVideoDir(dir string) Option {
	return func(g *Generator) {
		g.videoDir = dir
	}
}

// New validates cfg and builds a Generator. Configuration problems are the
// only hard error; a missing font falls back to the builtin face and a
// missing encoder disables video, both logged and both non-fatal.
func New(cfg Config, opts ...Option) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &Generator{
		cfg:      cfg,
		alphabet: cfg.alphabet(),
		timing:   cfg.timing(),
		log:      Logger(),
	}
	for _, opt := range opts {
		opt(g)
	}

	if g.rng == nil {
		g.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if g.face == nil {
		resolved := fontres.Resolve(float64(cfg.SymbolSize), alphabetRunes(g.alphabet), cfg.FontPaths...)
		g.face = resolved
		if resolved.Name == fontres.BuiltinName {
			g.log.Warn("no candidate font covers the alphabet, using builtin face")
		} else {
			g.log.Info("resolved font", "path", resolved.Name)
		}
	}
	if g.encoder == nil && cfg.GenerateVideos {
		if enc, ok := video.Detect(); ok {
			g.encoder = enc
		} else {
			g.log.Warn("ffmpeg not found, generating image-only pairs")
		}
	}
	if g.videoDir == "" {
		g.videoDir = filepath.Join(os.TempDir(), cfg.Domain+"_videos")
	}

	g.renderer = render.NewRenderer(cfg.Width, cfg.Height, cfg.SymbolSize, g.face)
	return g, nil
}

// GenerateTaskPair produces one task instance: it samples a sequence, an
// insertion symbol and a position, renders the before/after images,
// optionally encodes the transition video, and formats the prompt.
func (g *Generator) GenerateTaskPair(taskID string) *TaskPair {
	n := g.cfg.MinSequenceLength
	if spread := g.cfg.MaxSequenceLength - g.cfg.MinSequenceLength; spread > 0 {
		n += g.rng.IntN(spread + 1)
	}

	// Distinct symbols, sampled without replacement.
	perm := g.rng.Perm(len(g.alphabet))
	before := make([]string, n)
	for i := range before {
		before[i] = g.alphabet[perm[i]]
	}

	insert := g.pickInsertSymbol(before)
	pos := g.rng.IntN(n + 1)
	after := slices.Insert(slices.Clone(before), pos, insert)

	// after is the union of both sequences, so one map covers every frame.
	colors := render.NewColorMap(after)

	pair := &TaskPair{
		ID:             taskID,
		Domain:         g.cfg.Domain,
		Prompt:         prompt(g.rng, insert, pos+1),
		Before:         g.renderer.RenderSequence(before, colors),
		After:          g.renderer.RenderSequence(after, colors),
		BeforeSequence: before,
		AfterSequence:  after,
		InsertedSymbol: insert,
		InsertPosition: pos,
		Colors:         colors,
	}

	if g.encoder != nil {
		pair.VideoPath = g.encodeVideo(taskID, before, insert, pos, colors)
	}

	g.log.Debug("generated task",
		"id", taskID, "before", before, "insert", insert, "position", pos, "video", pair.VideoPath != "")
	return pair
}

// AnimationFrames renders the full insertion animation for an existing
// pair, for callers that consume frames directly instead of an encoded
// file.
func (g *Generator) AnimationFrames(pair *TaskPair) []*render.Canvas {
	return g.renderer.Animate(pair.BeforeSequence, pair.InsertedSymbol, pair.InsertPosition, pair.Colors, g.timing)
}

// pickInsertSymbol chooses a symbol not already in before. When the
// alphabet has no unused symbol left it falls back to sampling with
// replacement from the full alphabet — a documented degradation, not an
// error.
func (g *Generator) pickInsertSymbol(before []string) string {
	used := make(map[string]bool, len(before))
	for _, s := range before {
		used[s] = true
	}
	avail := make([]string, 0, len(g.alphabet)-len(before))
	for _, s := range g.alphabet {
		if !used[s] {
			avail = append(avail, s)
		}
	}
	if len(avail) == 0 {
		g.log.Warn("alphabet exhausted, inserting a duplicate symbol")
		avail = g.alphabet
	}
	return avail[g.rng.IntN(len(avail))]
}

// encodeVideo renders the animation and hands it to the encoder. Any
// failure logs a warning and yields an empty path; the image-only pair
// remains valid.
func (g *Generator) encodeVideo(taskID string, before []string, insert string, pos int, colors render.ColorMap) string {
	frames := g.renderer.Animate(before, insert, pos, colors, g.timing)
	imgs := make([]*image.RGBA, len(frames))
	for i, f := range frames {
		imgs[i] = f.Image()
	}

	if err := os.MkdirAll(g.videoDir, 0o755); err != nil {
		g.log.Warn("cannot create video directory, skipping video", "dir", g.videoDir, "error", err)
		return ""
	}
	path := filepath.Join(g.videoDir, taskID+"_ground_truth.mp4")
	if err := g.encoder.Encode(imgs, g.cfg.VideoFPS, path); err != nil {
		g.log.Warn("video encoding failed, continuing without video", "error", err)
		return ""
	}
	return path
}
