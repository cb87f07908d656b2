package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/playform/playform/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleMinutes int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the platform over SSH",
	Long: `Start an SSH server so people can use the studio and play the
catalog from anywhere. All connections share the same catalog.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.playform/host_key

Examples:
  playform serve
  playform serve --ssh :2222
  playform serve --host-key ./my_host_key

Users can connect with:
  ssh localhost -p 23235`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH listen address (overrides config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (overrides config)")
	serveCmd.Flags().IntVar(&flagIdleMinutes, "idle-timeout", 0, "Idle timeout in minutes (overrides config)")
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagSSHAddr != "" {
		cfg.SSH.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.SSH.HostKeyPath = flagHostKey
	}
	if flagIdleMinutes > 0 {
		cfg.SSH.IdleMinutes = flagIdleMinutes
	}

	store, kv, err := openCatalog(cfg)
	if err != nil {
		return err
	}
	defer kv.Close()

	server, err := tui.NewSSHServer(store, cfg)
	if err != nil {
		return err
	}

	fmt.Printf("Starting Playform SSH server on %s\n", server.Addr())
	fmt.Println("Connect with: ssh localhost -p 23235")
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
