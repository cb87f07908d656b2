// playform is a terminal game platform: describe a game, play it,
// publish it and browse what everyone else has made.
//
// Usage:
//
//	playform                     - Open the interactive studio
//	playform play <id|template>  - Play a published game or a template
//	playform generate "<prompt>" - Turn a prompt into a playable game
//	playform list                - List templates and published games
//	playform serve               - Serve the platform over SSH
//
// Global flags:
//
//	--config <path> - Config file (default: ~/.playform/playform.yaml)
//	--db <path>     - Catalog database path (overrides config)
//	--fps <rate>    - Frame rate (overrides config)
//	--seed <value>  - RNG seed for reproducible gameplay (0 = random)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/playform/playform/internal/catalog"
	"github.com/playform/playform/internal/config"
	"github.com/playform/playform/internal/storage"

	// Import templates to register them
	_ "github.com/playform/playform/internal/games/blank"
	_ "github.com/playform/playform/internal/games/bouncer"
	_ "github.com/playform/playform/internal/games/breakout"
	_ "github.com/playform/playform/internal/games/flappy"
	_ "github.com/playform/playform/internal/games/pong"
	_ "github.com/playform/playform/internal/games/runner"
	_ "github.com/playform/playform/internal/games/shooter"
	_ "github.com/playform/playform/internal/games/snake"
)

var (
	// Global flags
	flagConfig string
	flagDBPath string
	flagFPS    int
	flagSeed   int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "playform",
	Short: "Playform - Turn your ideas into terminal games",
	Long: `Playform is a terminal platform for making and playing games.
Type a prompt, get a playable game, save it, publish it and see what
other people are building.

Available commands:
  play      - Play a published game or a template directly
  generate  - Turn a prompt into a playable game
  list      - Show templates and the published catalog
  serve     - Serve the platform over SSH

Run with no command to open the interactive studio.

Examples:
  playform
  playform generate "a snake game with a twist"
  playform play snake
  playform serve --ssh :2222`,
	RunE: runStudio,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Catalog database path (overrides config)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frame rate (overrides config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig loads the YAML config and applies flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	if flagFPS > 0 {
		cfg.Canvas.TickRate = flagFPS
	}
	if flagSeed != 0 {
		cfg.Canvas.RandSeed = flagSeed
	}
	return cfg, nil
}

// openCatalog opens the store and seeds sample data on first run.
// The caller closes the returned KV.
func openCatalog(cfg config.Config) (*catalog.Store, *storage.KV, error) {
	kv, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open catalog database: %w", err)
	}

	store := catalog.New(kv)
	if cfg.Storage.Seed {
		if err := store.SeedSampleData(); err != nil {
			kv.Close()
			return nil, nil, fmt.Errorf("failed to seed sample data: %w", err)
		}
	}
	return store, kv, nil
}
