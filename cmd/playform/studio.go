package main

import (
	"github.com/spf13/cobra"

	"github.com/playform/playform/internal/platform/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Open the interactive studio and catalog",
	Long: `Open the full-screen studio: type a prompt, generate a game, play
it, save or publish it, and browse what everyone else has made.
Running playform with no command does the same thing.`,
	RunE: runStudio,
}

// runStudio is the default command: the interactive studio and
// catalog browser.
func runStudio(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, kv, err := openCatalog(cfg)
	if err != nil {
		return err
	}
	defer kv.Close()

	return tui.Run(store, cfg)
}
