package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/playform/playform/internal/registry"
)

var flagListAll bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List templates and the published catalog",
	Long: `Show the built-in game templates and the games published on this
catalog. With --all, unpublished drafts are included too.

Examples:
  playform list
  playform list --all`,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&flagListAll, "all", false, "Include unpublished drafts")
}

func runList(_ *cobra.Command, _ []string) error {
	fmt.Println("Templates:")
	for _, info := range registry.List() {
		fmt.Printf("  %-10s %s\n", info.Name, info.Title)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, kv, err := openCatalog(cfg)
	if err != nil {
		return err
	}
	defer kv.Close()

	games, err := store.ListPublished()
	if flagListAll {
		games, err = store.Games()
	}
	if err != nil {
		return err
	}

	fmt.Println("\nCatalog:")
	if len(games) == 0 {
		fmt.Println("  (no games yet)")
		return nil
	}
	for _, g := range games {
		state := ""
		if !g.Published {
			state = "  [draft]"
		}
		fmt.Printf("  %s  ♥ %-4d %-28s @%s%s\n", g.ID, g.LikeCount, g.Title, g.Creator, state)
	}
	return nil
}
