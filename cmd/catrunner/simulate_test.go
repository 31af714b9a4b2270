package main

import (
	"testing"

	"github.com/vovakirdan/cat-runner/internal/config"
	"github.com/vovakirdan/cat-runner/internal/games/catrunner"
)

func TestSimulateWithoutAutopilotDies(t *testing.T) {
	cfg := config.Default()
	g := catrunner.New(cfg, 1, nil)

	res := simulate(g, 1000, catrunner.CanonicalTickMs, nil)
	if res.Final.State != catrunner.StateDead {
		t.Fatalf("State = %v, expected dead", res.Final.State)
	}
	if res.Frames >= 1000 || res.Jumps != 0 {
		t.Errorf("Frames = %d, Jumps = %d", res.Frames, res.Jumps)
	}
}

func TestSimulateIsDeterministic(t *testing.T) {
	cfg := config.Default()
	run := func() simResult {
		g := catrunner.New(cfg, 42, nil)
		return simulate(g, 600, catrunner.CanonicalTickMs, catrunner.NewAutopilot())
	}

	a, b := run(), run()
	if a.Frames != b.Frames || a.Jumps != b.Jumps || a.Final.Score != b.Final.Score || a.Final.T != b.Final.T {
		t.Errorf("runs diverged: %+v vs %+v", a, b)
	}
}

func TestSimulateAutopilotSurvives(t *testing.T) {
	cfg := config.Default()
	g := catrunner.New(cfg, 7, nil)

	res := simulate(g, 1200, catrunner.CanonicalTickMs, catrunner.NewAutopilot())
	if res.Final.State != catrunner.StateRunning {
		t.Fatalf("State = %v after %d frames, expected running", res.Final.State, res.Frames)
	}
	if res.Frames != 1200 || res.Jumps == 0 {
		t.Errorf("Frames = %d, Jumps = %d", res.Frames, res.Jumps)
	}
}
