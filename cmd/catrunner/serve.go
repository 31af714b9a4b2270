package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cat-runner/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the cat runner SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own game instance with its own seed.
All users share the same best score and run history.

Host key handling:
  - If --host-key (or server.host_key) is set, uses that key file
  - Otherwise, auto-generates a key at ~/.catrunner/host_key

Examples:
  catrunner serve                           # Listen on :23234 with auto-generated key
  catrunner serve --ssh :2222               # Listen on port 2222
  catrunner serve --host-key ./my_host_key  # Use specific host key
  catrunner serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, default from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes before disconnecting")
}

func runServe(cmd *cobra.Command, _ []string) error {
	loaded, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	cfg := loaded.Config
	if cmd.Flags().Changed("ssh") {
		cfg.Server.Address = flagSSHAddr
	}
	if cmd.Flags().Changed("host-key") {
		cfg.Server.HostKeyPath = flagHostKey
	}
	if cmd.Flags().Changed("idle-timeout") {
		cfg.Server.IdleTimeoutMinutes = flagIdleTimeout
	}

	logger, closer, err := newLogger(cfg.Log, os.Stderr, "catrunner-ssh")
	if err != nil {
		return err
	}
	defer closer.Close()

	store := openStore(cfg, logger)
	if store != nil {
		defer store.Close()
	}

	server, err := tui.NewSSHServer(cfg, store, logger)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	fmt.Printf("Starting cat runner SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe(cmd.Context())
}
