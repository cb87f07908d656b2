package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/playform/playform/internal/core"
	"github.com/playform/playform/internal/platform/tui"
	"github.com/playform/playform/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <game-id|template>",
	Short: "Play a published game or a template",
	Long: `Start playing right away. The argument is either a published game's
id from the catalog or a template name like "snake" or "pong".

Controls:
  Arrows/WASD - Move
  Space       - Action
  Esc         - Back
  Q/Ctrl+C    - Quit

Examples:
  playform play snake
  playform play 2f1c9a3e-...`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	target := args[0]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Fit the canvas to the local terminal up front.
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.Canvas.Width = core.Clamp(w-4, 20, cfg.Canvas.Width)
		cfg.Canvas.Height = core.Clamp(h-10, 10, cfg.Canvas.Height)
	}

	store, kv, err := openCatalog(cfg)
	if err != nil {
		return err
	}
	defer kv.Close()

	if registry.Exists(target) {
		return tui.RunTemplate(store, cfg, target)
	}

	if g, err := store.GameByID(target); err == nil {
		return tui.RunGame(store, cfg, g.ID)
	}

	return fmt.Errorf("unknown game %q; run 'playform list' to see what's available", target)
}
