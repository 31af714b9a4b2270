package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cat-runner/internal/core"
	"github.com/vovakirdan/cat-runner/internal/games/catrunner"
	"github.com/vovakirdan/cat-runner/internal/storage"
)

var (
	flagFrames    int
	flagFrameMs   float64
	flagAutopilot bool
	flagRecord    bool
	flagRender    bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless, deterministic simulation",
	Long: `Run the game without a terminal UI, feeding a fixed frame time.

The same seed, frame time and autopilot setting always produce the same
run. Without the autopilot the cat never jumps and the run ends at the
first obstacle.

Examples:
  catrunner simulate --seed 1 --autopilot=false
  catrunner simulate --seed 7 --frames 36000 --frame-ms 33.34
  catrunner simulate --seed 7 --record --render`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagFrames, "frames", 36000, "Maximum number of frames to simulate")
	simulateCmd.Flags().Float64Var(&flagFrameMs, "frame-ms", 0, "Elapsed milliseconds per frame (0 = canonical tick)")
	simulateCmd.Flags().BoolVar(&flagAutopilot, "autopilot", true, "Jump automatically in front of obstacles")
	simulateCmd.Flags().BoolVar(&flagRecord, "record", false, "Save the run and any new best to the database")
	simulateCmd.Flags().BoolVar(&flagRender, "render", false, "Print the final frame")
}

// simResult summarizes a headless run.
type simResult struct {
	Seed   uint32
	Frames int
	Final  catrunner.Snapshot
	Jumps  int
	Best   bool
}

// simulate runs g from Idle for at most frames frames.
func simulate(g *catrunner.Game, frames int, frameMs float64, pilot *catrunner.Autopilot) simResult {
	res := simResult{Seed: g.Seed()}

	in := core.NewInputFrame(core.CommandStart)
	for res.Frames < frames {
		step := g.Step(in, frameMs)
		res.Frames++
		for _, n := range step.Notices {
			if n.Kind == catrunner.NoticeNewBest {
				res.Best = true
			}
		}
		if step.State == catrunner.StateDead {
			break
		}

		in.Clear()
		if pilot != nil {
			if cmd := pilot.Decide(g.Snapshot()); cmd == core.CommandJump {
				in.Push(cmd)
				res.Jumps++
			}
		}
	}

	res.Final = g.Snapshot()
	return res
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	loaded, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	cfg := loaded.Config

	logger, closer, err := newLogger(cfg.Log, os.Stderr, "catrunner-sim")
	if err != nil {
		return err
	}
	defer closer.Close()

	seed := seedFromFlags(cmd)
	if seed == 0 {
		seed = catrunner.NewSeed()
	}
	frameMs := flagFrameMs
	if frameMs <= 0 {
		frameMs = catrunner.CanonicalTickMs
	}

	var store *storage.Store
	var best *catrunner.BestScore
	if flagRecord {
		store = openStore(cfg, logger)
		if store != nil {
			defer store.Close()
			best = catrunner.NewBestScore(store, cfg.Storage.BestKey)
		}
	}

	var pilot *catrunner.Autopilot
	if flagAutopilot {
		pilot = catrunner.NewAutopilot()
	}

	g := catrunner.New(cfg, seed, best)
	logger.Debug("simulating", "seed", seed, "frames", flagFrames, "frame_ms", frameMs, "autopilot", flagAutopilot)
	res := simulate(g, flagFrames, frameMs, pilot)

	if store != nil && res.Final.State == catrunner.StateDead {
		_, err := store.SaveRun(storage.Run{
			Seed:       res.Seed,
			Score:      res.Final.Score,
			Ticks:      res.Final.Tick,
			DurationMs: int64(res.Final.T),
			NewBest:    res.Best,
			Source:     "simulate",
		})
		if err != nil {
			logger.Warn("could not save run", "error", err)
		}
	}

	if flagRender {
		screen := core.NewScreen(100, 24)
		catrunner.Render(screen, res.Final)
		fmt.Println(screen.String())
		fmt.Println()
	}

	fmt.Printf("Seed:      %d\n", res.Seed)
	fmt.Printf("State:     %s\n", res.Final.State)
	fmt.Printf("Frames:    %d\n", res.Frames)
	fmt.Printf("Sim time:  %.2fs\n", res.Final.T/1000)
	fmt.Printf("Speed:     %.2fx\n", res.Final.SpeedMultiplier)
	fmt.Printf("Jumps:     %d\n", res.Jumps)
	fmt.Printf("Score:     %d\n", res.Final.Score)
	if res.Best {
		fmt.Println("New best!")
	}
	return nil
}
