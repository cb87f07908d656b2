package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/playform/playform/internal/core"
	"github.com/playform/playform/internal/generate"
	"github.com/playform/playform/internal/platform/tui"
	"github.com/playform/playform/internal/registry"
	"github.com/playform/playform/internal/runtime"
	"github.com/playform/playform/internal/thumb"
)

var flagThumbOut string

var generateCmd = &cobra.Command{
	Use:   "generate \"<prompt>\"",
	Short: "Turn a prompt into a playable game",
	Long: `Pick the template that best matches a free-form prompt and start
playing it in the studio. With --thumb-out the game is instead run
headlessly for a moment and a still frame is written as an SVG.

Examples:
  playform generate "a snake game with a twist"
  playform generate "pong but angry" --thumb-out preview.svg`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&flagThumbOut, "thumb-out", "", "Render a preview SVG to this path instead of playing")
}

func runGenerate(_ *cobra.Command, args []string) error {
	prompt := args[0]
	name := generate.Select(prompt)

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if flagThumbOut != "" {
		return writePreview(name, cfg.Canvas.Width, cfg.Canvas.Height, cfg.Canvas.RandSeed)
	}

	fmt.Printf("Generated %s (simulated LLM)\n", name)

	store, kv, err := openCatalog(cfg)
	if err != nil {
		return err
	}
	defer kv.Close()

	return tui.RunTemplate(store, cfg, name)
}

// writePreview runs the template headlessly for a second of simulated
// time and writes a still frame as SVG.
func writePreview(name string, w, h int, seed int64) error {
	pacer := runtime.NewManualPacer()
	keys := core.NewKeySet()
	rt := runtime.New(pacer, keys, seed)
	surface := core.NewSurface(w, h)

	def, err := registry.Create(name)
	if err != nil {
		return err
	}
	rt.Load(def, surface)
	if err := rt.LastError(); err != nil {
		return err
	}

	start := time.Now()
	for i := 0; i < 30; i++ {
		pacer.Step(start.Add(time.Duration(i) * 33 * time.Millisecond))
	}
	rt.Stop()

	if err := os.WriteFile(flagThumbOut, thumb.Capture(surface), 0o644); err != nil {
		return fmt.Errorf("failed to write preview: %w", err)
	}
	fmt.Printf("Wrote %s preview to %s\n", name, flagThumbOut)
	return nil
}
