package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cat-runner/internal/config"
	"github.com/vovakirdan/cat-runner/internal/platform/tui"
)

var flagNoWatch bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Space/Up   - Jump (also starts the run)
  P/Esc      - Pause / resume
  R          - Restart
  Ctrl+S     - Save a text screenshot to ~/.catrunner/screenshots
  ?          - Toggle help
  Q/Ctrl+C   - Quit

The config file is watched while playing; changes apply on the next restart.

Examples:
  catrunner play
  catrunner play --seed 42
  catrunner play --config ./catrunner.yaml --log-file /tmp/catrunner.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagNoWatch, "no-watch", false, "Do not reload the config file on change")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	loaded, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	cfg := loaded.Config

	// The terminal belongs to the game; logs go to a file or nowhere.
	logger, closer, err := newLogger(cfg.Log, io.Discard, "catrunner")
	if err != nil {
		return err
	}
	defer closer.Close()

	size := terminalSize()

	store := openStore(cfg, logger)
	if store != nil {
		defer store.Close()
	}

	var watcher *config.Watcher
	if loaded.Path != "" && !flagNoWatch {
		watcher, err = config.NewWatcher(loaded.Path)
		if err != nil {
			logger.Warn("config hot reload disabled", "error", err)
		} else {
			defer watcher.Close()
			logger.Info("watching config", "path", watcher.Path())
		}
	}

	err = tui.Run(tui.Options{
		Config:  cfg,
		Seed:    seedFromFlags(cmd),
		Store:   store,
		Watcher: watcher,
		Logger:  logger,
		Source:  "local",
		Width:   size.W,
		Height:  size.H,
	})
	if err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
