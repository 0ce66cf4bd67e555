package insertgen

import (
	"errors"
	"image"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/symworlds/insertgen/fontres"
)

// testConfig keeps rendering cheap: small canvas, ASCII alphabet that the
// builtin face can draw, no video.
func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Width = 400
	cfg.Height = 100
	cfg.SymbolSize = 40
	cfg.MinSequenceLength = 3
	cfg.MaxSequenceLength = 4
	cfg.SymbolSet = "letters"
	cfg.GenerateVideos = false
	return cfg
}

func testGenerator(t *testing.T, seed uint64, opts ...Option) *Generator {
	t.Helper()
	opts = append([]Option{
		WithRand(rand.New(rand.NewPCG(seed, seed))),
		WithFace(fontres.Builtin()),
	}, opts...)
	g, err := New(testConfig(), opts...)
	if err != nil {
		t.Fatalf("New() = %v", err)
	}
	return g
}

func TestNew_InvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.MinSequenceLength = 10
	if _, err := New(cfg); !errors.Is(err, ErrConfig) {
		t.Errorf("New with invalid config = %v, want ErrConfig", err)
	}
}

func TestGenerateTaskPair_SpliceInvariant(t *testing.T) {
	g := testGenerator(t, 42)
	for i := 0; i < 50; i++ {
		pair := g.GenerateTaskPair("task")
		p := pair.InsertPosition
		n := len(pair.BeforeSequence)

		if n < 3 || n > 4 {
			t.Fatalf("before length %d outside [3, 4]", n)
		}
		if len(pair.AfterSequence) != n+1 {
			t.Fatalf("after length %d, want %d", len(pair.AfterSequence), n+1)
		}
		if p < 0 || p > n {
			t.Fatalf("position %d outside [0, %d]", p, n)
		}

		want := slices.Insert(slices.Clone(pair.BeforeSequence), p, pair.InsertedSymbol)
		if diff := cmp.Diff(want, pair.AfterSequence); diff != "" {
			t.Fatalf("after != before with symbol spliced at %d (-want +got):\n%s", p, diff)
		}
	}
}

func TestGenerateTaskPair_Distinctness(t *testing.T) {
	g := testGenerator(t, 7)
	for i := 0; i < 50; i++ {
		pair := g.GenerateTaskPair("task")
		seen := make(map[string]bool)
		for _, s := range pair.BeforeSequence {
			if seen[s] {
				t.Fatalf("duplicate %q in before sequence %v", s, pair.BeforeSequence)
			}
			seen[s] = true
		}
		// The letters alphabet (26) always leaves unused symbols, so the
		// non-fallback path must pick an unseen one.
		if seen[pair.InsertedSymbol] {
			t.Fatalf("inserted symbol %q already present in %v", pair.InsertedSymbol, pair.BeforeSequence)
		}
	}
}

func TestGenerateTaskPair_BoundaryPositionsReachable(t *testing.T) {
	g := testGenerator(t, 3)
	var sawFront, sawEnd bool
	for i := 0; i < 200 && !(sawFront && sawEnd); i++ {
		pair := g.GenerateTaskPair("task")
		switch pair.InsertPosition {
		case 0:
			sawFront = true
			if pair.AfterSequence[0] != pair.InsertedSymbol {
				t.Fatal("insert at front did not land at index 0")
			}
		case len(pair.BeforeSequence):
			sawEnd = true
			if pair.AfterSequence[len(pair.AfterSequence)-1] != pair.InsertedSymbol {
				t.Fatal("insert at end did not land at the last index")
			}
		}
	}
	if !sawFront || !sawEnd {
		t.Errorf("200 samples never hit a boundary position (front=%v end=%v)", sawFront, sawEnd)
	}
}

func TestGenerateTaskPair_Deterministic(t *testing.T) {
	a := testGenerator(t, 99).GenerateTaskPair("task")
	b := testGenerator(t, 99).GenerateTaskPair("task")

	if diff := cmp.Diff(a.BeforeSequence, b.BeforeSequence); diff != "" {
		t.Errorf("before sequences differ:\n%s", diff)
	}
	if a.InsertedSymbol != b.InsertedSymbol || a.InsertPosition != b.InsertPosition {
		t.Errorf("insert choice differs: (%q, %d) vs (%q, %d)",
			a.InsertedSymbol, a.InsertPosition, b.InsertedSymbol, b.InsertPosition)
	}
	if a.Prompt != b.Prompt {
		t.Errorf("prompts differ:\n%q\n%q", a.Prompt, b.Prompt)
	}
	if diff := cmp.Diff(a.Colors, b.Colors); diff != "" {
		t.Errorf("color maps differ:\n%s", diff)
	}
	if !a.Before.Equal(b.Before) || !a.After.Equal(b.After) {
		t.Error("rendered images differ under identical seeds")
	}
}

func TestGenerateTaskPair_PromptMatchesInstance(t *testing.T) {
	g := testGenerator(t, 5)
	pair := g.GenerateTaskPair("task")
	if !strings.Contains(pair.Prompt, pair.InsertedSymbol) {
		t.Errorf("prompt %q does not mention inserted symbol %q", pair.Prompt, pair.InsertedSymbol)
	}
}

func TestGenerateTaskPair_ColorsCoverUnion(t *testing.T) {
	g := testGenerator(t, 11)
	pair := g.GenerateTaskPair("task")
	for _, s := range pair.AfterSequence {
		if _, ok := pair.Colors[s]; !ok {
			t.Errorf("no color assigned to %q", s)
		}
	}
}

// Pins the documented degradation: when the alphabet has no unused symbol
// left, the insert symbol is drawn from the full alphabet and a duplicate
// is allowed.
func TestGenerator_InsertFallbackDuplicates(t *testing.T) {
	cfg := testConfig()
	cfg.Alphabet = []string{"A", "B", "C"}
	cfg.MinSequenceLength = 3
	cfg.MaxSequenceLength = 3

	g, err := New(cfg, WithRand(rand.New(rand.NewPCG(1, 1))), WithFace(fontres.Builtin()))
	if err != nil {
		t.Fatalf("New() = %v", err)
	}
	pair := g.GenerateTaskPair("task")
	if !slices.Contains(pair.BeforeSequence, pair.InsertedSymbol) {
		t.Errorf("with an exhausted alphabet the insert symbol %q must duplicate one of %v",
			pair.InsertedSymbol, pair.BeforeSequence)
	}
	if len(pair.AfterSequence) != 4 {
		t.Errorf("after length = %d, want 4", len(pair.AfterSequence))
	}
}

func TestAnimationFrames_Count(t *testing.T) {
	cfg := testConfig()
	cfg.HoldFrames = 2
	cfg.FadeFrames = 3
	cfg.SlideFrames = 4
	g, err := New(cfg, WithRand(rand.New(rand.NewPCG(1, 1))), WithFace(fontres.Builtin()))
	if err != nil {
		t.Fatalf("New() = %v", err)
	}
	pair := g.GenerateTaskPair("task")
	frames := g.AnimationFrames(pair)
	if want := 2*2 + 3 + 4; len(frames) != want {
		t.Errorf("len(frames) = %d, want %d", len(frames), want)
	}
	// The last frame is the after image.
	if !frames[len(frames)-1].Equal(pair.After) {
		t.Error("final animation frame differs from the after image")
	}
}

// captureEncoder records the encode call without touching ffmpeg.
type captureEncoder struct {
	frames int
	fps    int
	path   string
	err    error
}

func (e *captureEncoder) Encode(frames []*image.RGBA, fps int, path string) error {
	if e.err != nil {
		return e.err
	}
	e.frames = len(frames)
	e.fps = fps
	e.path = path
	return nil
}

func TestGenerateTaskPair_VideoEncoded(t *testing.T) {
	cfg := testConfig()
	cfg.GenerateVideos = true
	enc := &captureEncoder{}
	g, err := New(cfg,
		WithRand(rand.New(rand.NewPCG(1, 1))),
		WithFace(fontres.Builtin()),
		WithEncoder(enc),
		WithVideoDir(t.TempDir()))
	if err != nil {
		t.Fatalf("New() = %v", err)
	}

	pair := g.GenerateTaskPair("vid01")
	if pair.VideoPath == "" {
		t.Fatal("VideoPath empty with a working encoder")
	}
	if enc.frames != cfg.timing().FrameCount() {
		t.Errorf("encoded %d frames, want %d", enc.frames, cfg.timing().FrameCount())
	}
	if enc.fps != cfg.VideoFPS {
		t.Errorf("fps = %d, want %d", enc.fps, cfg.VideoFPS)
	}
	if !strings.Contains(pair.VideoPath, "vid01") {
		t.Errorf("video path %q does not embed the task id", pair.VideoPath)
	}
}

// Encoder failure downgrades to an image-only pair; it never propagates.
func TestGenerateTaskPair_VideoFailureIsNotFatal(t *testing.T) {
	cfg := testConfig()
	cfg.GenerateVideos = true
	g, err := New(cfg,
		WithRand(rand.New(rand.NewPCG(1, 1))),
		WithFace(fontres.Builtin()),
		WithEncoder(&captureEncoder{err: errors.New("boom")}),
		WithVideoDir(t.TempDir()))
	if err != nil {
		t.Fatalf("New() = %v", err)
	}

	pair := g.GenerateTaskPair("task")
	if pair.VideoPath != "" {
		t.Errorf("VideoPath = %q, want empty after encoder failure", pair.VideoPath)
	}
	if pair.Before == nil || pair.After == nil {
		t.Error("image outputs must survive an encoder failure")
	}
}
