// catrunner is a terminal cat runner: jump over boxes and spikes on a
// scrolling ground, survive as long as you can and beat your best score.
//
// Usage:
//
//	catrunner play            - Play in the terminal
//	catrunner simulate        - Run a headless, deterministic simulation
//	catrunner scores          - Show the best score and top runs
//	catrunner serve           - Start SSH server for remote play
//	catrunner config          - Print the effective configuration
//
// Global flags:
//
//	--config <path>  - Config file (default: search path, then built-in)
//	--fps <rate>     - Set tick rate (default: from config, 60)
//	--seed <value>   - Set RNG seed for reproducible runs
//	--db <path>      - Set database path (default: ~/.catrunner/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "catrunner",
	Short: "Cat Runner - an endless runner in your terminal",
	Long: `Cat Runner is a side-scrolling avoidance game for the terminal.
A cat runs along the ground; jump over boxes and spikes. The run ends on
the first hit and the score grows with survival time and speed.

Available commands:
  play      - Play in the terminal
  simulate  - Headless deterministic run (optionally with autopilot)
  scores    - View the best score and run history
  serve     - Start SSH server for remote play
  config    - Print the effective configuration

Examples:
  catrunner play
  catrunner play --seed 42
  catrunner simulate --seed 1 --frames 300 --autopilot=false
  catrunner scores --table
  catrunner serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (frames per second, 0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
