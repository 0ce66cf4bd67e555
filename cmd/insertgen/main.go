// Command insertgen generates batches of symbol-insertion training
// examples: before/after PNG pairs, a JSONL manifest, and ground-truth
// videos when ffmpeg is available.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/symworlds/insertgen"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type genFlags struct {
	configPath string
	count      int
	seed       uint64
	outDir     string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	var flags genFlags
	cmd := &cobra.Command{
		Use:   "insertgen",
		Short: "Generate symbol-insertion training examples",
		Long: `insertgen renders symbol sequences, splices a new symbol into each,
and writes (prompt, before image, after image, optional video) tuples
for model training.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(flags)
		},
	}
	cmd.Flags().StringVarP(&flags.configPath, "config", "c", "", "YAML config file (defaults apply when omitted)")
	cmd.Flags().IntVarP(&flags.count, "count", "n", 10, "number of task pairs to generate")
	cmd.Flags().Uint64Var(&flags.seed, "seed", 0, "random seed (0 = nondeterministic)")
	cmd.Flags().StringVarP(&flags.outDir, "out", "o", "out", "output directory")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")
	return cmd
}

// manifestRecord is one line of the tasks.jsonl manifest.
type manifestRecord struct {
	ID        string `json:"id"`
	Domain    string `json:"domain"`
	Prompt    string `json:"prompt"`
	Before    string `json:"before_image"`
	After     string `json:"after_image"`
	VideoPath string `json:"video_path,omitempty"`
}

func run(flags genFlags) error {
	if flags.verbose {
		insertgen.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	cfg := insertgen.DefaultConfig()
	if flags.configPath != "" {
		var err error
		if cfg, err = insertgen.LoadConfig(flags.configPath); err != nil {
			return err
		}
	}

	var opts []insertgen.Option
	if flags.seed != 0 {
		opts = append(opts, insertgen.WithRand(rand.New(rand.NewPCG(flags.seed, flags.seed))))
	}
	if cfg.GenerateVideos {
		opts = append(opts, insertgen.WithVideoDir(filepath.Join(flags.outDir, "videos")))
	}

	gen, err := insertgen.New(cfg, opts...)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(flags.outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	manifest, err := os.Create(filepath.Join(flags.outDir, "tasks.jsonl"))
	if err != nil {
		return fmt.Errorf("create manifest: %w", err)
	}
	defer func() {
		_ = manifest.Close()
	}()
	enc := json.NewEncoder(manifest)

	batch := uuid.NewString()[:8]
	for i := 0; i < flags.count; i++ {
		id := fmt.Sprintf("%s_%s_%06d", cfg.Domain, batch, i)
		pair := gen.GenerateTaskPair(id)

		beforePath := filepath.Join(flags.outDir, id+"_before.png")
		afterPath := filepath.Join(flags.outDir, id+"_after.png")
		if err := pair.Before.SavePNG(beforePath); err != nil {
			return fmt.Errorf("save %s: %w", beforePath, err)
		}
		if err := pair.After.SavePNG(afterPath); err != nil {
			return fmt.Errorf("save %s: %w", afterPath, err)
		}

		if err := enc.Encode(manifestRecord{
			ID:        pair.ID,
			Domain:    pair.Domain,
			Prompt:    pair.Prompt,
			Before:    beforePath,
			After:     afterPath,
			VideoPath: pair.VideoPath,
		}); err != nil {
			return fmt.Errorf("write manifest: %w", err)
		}
	}

	fmt.Printf("Generated %d task pairs in %s\n", flags.count, flags.outDir)
	return nil
}
