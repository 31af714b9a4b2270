// Package catrunner implements the cat runner simulation: a cat jumps over
// procedurally spawned obstacles on a scrolling ground, the run ends on
// the first collision, and the score grows with survival time.
//
// A Game owns all of its state and is driven by the host one frame at a
// time. It is not safe for concurrent use; run one instance per player.
package catrunner

import (
	"math"

	"github.com/vovakirdan/cat-runner/internal/config"
	"github.com/vovakirdan/cat-runner/internal/core"
)

// Frame timing.
const (
	CanonicalTickMs = 16.67 // Reference 60 Hz frame; dtRatio = elapsed / CanonicalTickMs
	MaxFrameMs      = 40.0  // Longest frame simulated by one Tick
)

// Game is one independent simulation instance.
type Game struct {
	cfg     config.Config
	pending *config.Config // Applied on the next Reset
	rng     *RNG
	seed    uint32

	state     State
	t         float64 // Running time in ms
	tickCount int
	score     int
	speed     float64
	speedMul  float64
	groundY   float64

	cat       Character
	obstacles *ObstacleManager
	dust      DustSystem

	best      int
	bestStore *BestScore
	notices   []Notice
}

// New creates a game in the Idle state. The best score is read from store
// (which may be nil) and merged back into it when a run ends; read
// failures leave it at 0 and raise a notice.
func New(cfg config.Config, seed uint32, store *BestScore) *Game {
	g := &Game{
		cfg:       cfg,
		rng:       NewRNG(seed),
		seed:      seed,
		bestStore: store,
	}

	best, err := store.Load()
	if err != nil {
		g.notify(NoticeStorageFailed, err)
	}
	g.best = best

	g.groundY = cfg.World.GroundY()
	g.obstacles = NewObstacleManager(g.rng, float64(cfg.World.Width), g.groundY)
	g.Reset()
	return g
}

// Seed returns the seed the game was created with.
func (g *Game) Seed() uint32 {
	return g.seed
}

// SetConfig stages a new configuration. It takes effect on the next Reset
// so a run in progress never changes its rules mid-flight.
func (g *Game) SetConfig(cfg config.Config) {
	g.pending = &cfg
}

// Reset reinitializes the world and returns to Idle. Valid from any state.
func (g *Game) Reset() {
	if g.pending != nil {
		g.cfg = *g.pending
		g.pending = nil
		g.groundY = g.cfg.World.GroundY()
	}

	g.state = StateIdle
	g.t = 0
	g.tickCount = 0
	g.score = 0
	g.speed = BaseSpeed
	g.speedMul = 1
	g.cat = newCharacter(float64(g.cfg.World.Width), g.groundY)
	g.obstacles.Reset(float64(g.cfg.World.Width), g.groundY)
	g.dust = newDustSystem(g.cfg.Effects)
}

// Start begins a run. From Dead it resets first; from Running or Paused
// it does nothing.
func (g *Game) Start() {
	switch g.state {
	case StateDead:
		g.Reset()
	case StateRunning, StatePaused:
		return
	}
	g.state = StateRunning
	g.notify(NoticeRunStarted, nil)
}

// Jump starts the run from Idle, or makes the cat jump while Running.
// It is ignored while Paused or Dead, and while the cat is airborne.
func (g *Game) Jump() {
	switch g.state {
	case StateIdle:
		g.Start()
	case StateRunning:
		if g.cat.jump() {
			g.dust.burst(g.rng, g.cat.X, g.groundY)
		}
	}
}

// TogglePause switches between Running and Paused. Ignored otherwise.
func (g *Game) TogglePause() {
	switch g.state {
	case StateRunning:
		g.state = StatePaused
		g.notify(NoticePaused, nil)
	case StatePaused:
		g.state = StateRunning
		g.notify(NoticeResumed, nil)
	}
}

// Apply dispatches a single command.
func (g *Game) Apply(cmd core.Command) {
	switch cmd {
	case core.CommandJump:
		g.Jump()
	case core.CommandStart:
		g.Start()
	case core.CommandTogglePause:
		g.TogglePause()
	case core.CommandReset:
		g.Reset()
	}
}

// Step applies the frame's commands in order, then advances the
// simulation by elapsedMs of real time.
func (g *Game) Step(in core.InputFrame, elapsedMs float64) StepResult {
	for _, cmd := range in.Commands {
		g.Apply(cmd)
	}
	return g.Tick(elapsedMs)
}

// Tick advances the simulation by elapsedMs of real time. Nothing moves
// unless the game is Running. Elapsed time is clamped to MaxFrameMs and
// consumed in slices of at most one canonical tick, so a long frame
// integrates exactly like the equivalent run of short frames.
func (g *Game) Tick(elapsedMs float64) StepResult {
	if g.state != StateRunning {
		return g.result()
	}

	if math.IsNaN(elapsedMs) {
		elapsedMs = 0
	}
	elapsed := core.ClampF(elapsedMs, 0, MaxFrameMs)

	g.tickCount++
	g.t += elapsed
	g.speedMul = SpeedMultiplier(g.t)
	g.score += ScoreIncrement(elapsed, g.speedMul)
	g.cat.updateBlink(elapsed, g.rng)

	speed := g.speed * g.speedMul
	remaining := elapsed / CanonicalTickMs
	for remaining > 0 && g.state == StateRunning {
		dt := math.Min(1, remaining)
		remaining -= dt
		g.advance(dt, speed)
	}

	return g.result()
}

// advance runs one integration slice: physics, spawner, effects, then
// collision against the post-update world.
func (g *Game) advance(dtRatio, speed float64) {
	g.cat.Squish *= decay(g.cfg.Effects.SquishDecay, dtRatio)
	g.cat.applyGravity(dtRatio, g.groundY)
	g.obstacles.Update(dtRatio, g.speed, speed)
	g.dust.update(dtRatio)

	if firstCollision(g.cat, g.obstacles.Obstacles()) >= 0 {
		g.die()
	}
}

// die ends the run and records a new best if one was set. Another game
// sharing the store may have raised the best since this one loaded it, so
// the comparison is settled by the store.
func (g *Game) die() {
	g.state = StateDead
	g.notify(NoticeGameOver, nil)

	if g.score <= g.best {
		return
	}
	best, raised, err := g.bestStore.Submit(g.score)
	if err != nil {
		// Keep the run's best in memory even though it was not persisted.
		g.best = g.score
		g.notify(NoticeNewBest, nil)
		g.notify(NoticeStorageFailed, err)
		return
	}
	g.best = best
	if raised {
		g.notify(NoticeNewBest, nil)
	}
}

func (g *Game) notify(kind NoticeKind, err error) {
	g.notices = append(g.notices, Notice{Kind: kind, Score: g.score, Err: err})
}

// result drains pending notices into a StepResult.
func (g *Game) result() StepResult {
	res := StepResult{State: g.state, Score: g.score}
	if len(g.notices) > 0 {
		res.Notices = g.notices
		g.notices = nil
	}
	return res
}

// State returns the current run state.
func (g *Game) State() State {
	return g.state
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// Best returns the best score known to this instance.
func (g *Game) Best() int {
	return g.best
}
