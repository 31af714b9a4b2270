package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/cat-runner/internal/config"
	"github.com/vovakirdan/cat-runner/internal/core"
	"github.com/vovakirdan/cat-runner/internal/games/catrunner"
	"github.com/vovakirdan/cat-runner/internal/storage"
)

// loadConfig loads the configuration and applies global flag overrides.
func loadConfig(cmd *cobra.Command) (config.Loaded, error) {
	loaded, err := config.Load(flagConfig)
	if err != nil {
		return loaded, err
	}

	flags := cmd.Flags()
	if flags.Changed("fps") {
		loaded.Config.Timing.TickRate = flagFPS
	}
	if flags.Changed("db") {
		loaded.Config.Storage.DBPath = flagDBPath
	}
	if flags.Changed("log-level") {
		loaded.Config.Log.Level = flagLogLevel
	}
	if flags.Changed("log-file") {
		loaded.Config.Log.File = flagLogFile
	}

	if err := loaded.Config.Validate(); err != nil {
		return loaded, err
	}
	return loaded, nil
}

// newLogger builds the logger described by cfg. Without a log file it
// writes to fallback. The returned closer must be closed on exit.
func newLogger(cfg config.LogConfig, fallback io.Writer, prefix string) (*log.Logger, io.Closer, error) {
	level := log.InfoLevel
	if cfg.Level != "" {
		parsed, err := log.ParseLevel(cfg.Level)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
		level = parsed
	}

	out := fallback
	var closer io.Closer = nopCloser{}
	if cfg.File != "" {
		path, err := config.ExpandHome(cfg.File)
		if err != nil {
			return nil, nil, err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out, closer = f, f
	}

	logger := log.NewWithOptions(out, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// openStore opens the scores database. Failures are logged and yield a
// nil store so the game still runs without persistence.
func openStore(cfg config.Config, logger *log.Logger) *storage.Store {
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		logger.Warn("could not open scores database, continuing without persistence", "error", err)
		return nil
	}
	return store
}

// seedFromFlags returns the --seed value folded to 32 bits, or 0 when the
// flag was not set.
func seedFromFlags(cmd *cobra.Command) uint32 {
	if !cmd.Flags().Changed("seed") {
		return 0
	}
	seed := catrunner.FoldSeed(flagSeed)
	if seed == 0 {
		seed = catrunner.NewRNG(0).State()
	}
	return seed
}

// terminalSize reports the size of stdout, or the default viewport when
// stdout is not a terminal.
func terminalSize() core.Viewport {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return core.DefaultViewport()
	}
	return core.Viewport{W: w, H: h}.Fit()
}
