package catrunner

import (
	"math"

	"github.com/vovakirdan/cat-runner/internal/core"
)

// Spawner constants, in world pixels and canonical ticks.
const (
	firstSpawnIn  = 35.0 // Countdown after a reset
	spawnMargin   = 30.0 // Obstacles appear this far right of the viewport
	cleanupMargin = 40.0 // and are dropped once this far left of it
	boxChance     = 0.65

	gapMin       = 34.0
	gapMax       = 70.0
	gapSlowBonus = 6.0  // Added to both gap bounds at low speed
	gapSlowBelow = 10.0 // Base speed under which the bonus applies

	obstacleInset   = 2.0 // Hitbox inset on each side and from the top
	obstacleMinSide = 6.0
)

// Kind identifies an obstacle type.
type Kind int

const (
	KindBox Kind = iota
	KindSpike
)

// String returns the obstacle type name.
func (k Kind) String() string {
	switch k {
	case KindBox:
		return "box"
	case KindSpike:
		return "spike"
	default:
		return "unknown"
	}
}

// sizeRange holds half-open integer ranges for an obstacle kind.
type sizeRange struct {
	minH, maxH int
	minW, maxW int
}

var obstacleSizes = map[Kind]sizeRange{
	KindBox:   {minH: 24, maxH: 42, minW: 16, maxW: 38},
	KindSpike: {minH: 18, maxH: 30, minW: 22, maxW: 44},
}

// Obstacle is a ground hazard. X is the left edge, Y the base on the
// ground line.
type Obstacle struct {
	Kind  Kind
	X, Y  float64
	W, H  float64
	Phase float64 // Cosmetic animation offset in radians
}

// Hitbox returns the obstacle's collision box, inset from its visual size.
func (o Obstacle) Hitbox() core.Box {
	return core.NewBox(
		o.X+obstacleInset,
		o.Y,
		math.Max(obstacleMinSide, o.W-obstacleInset*2),
		math.Max(obstacleMinSide, o.H-obstacleInset),
	)
}

// ObstacleManager handles spawning, scrolling and removal of obstacles.
// Obstacles are kept in spawn order.
type ObstacleManager struct {
	obstacles   []Obstacle
	rng         *RNG
	worldW      float64
	groundY     float64
	nextSpawnIn float64 // Canonical ticks until the next spawn
}

// NewObstacleManager creates a manager drawing from the shared RNG.
func NewObstacleManager(rng *RNG, worldW, groundY float64) *ObstacleManager {
	om := &ObstacleManager{
		obstacles: make([]Obstacle, 0, 8),
		rng:       rng,
	}
	om.Reset(worldW, groundY)
	return om
}

// Reset clears all obstacles and restarts the spawn countdown. The RNG is
// not reseeded.
func (om *ObstacleManager) Reset(worldW, groundY float64) {
	om.obstacles = om.obstacles[:0]
	om.worldW = worldW
	om.groundY = groundY
	om.nextSpawnIn = firstSpawnIn
}

// Update advances the countdown, spawns at most one obstacle, scrolls
// every obstacle left by speed*dtRatio and drops those fully off-screen.
func (om *ObstacleManager) Update(dtRatio, baseSpeed, speed float64) {
	om.nextSpawnIn -= dtRatio
	if om.nextSpawnIn <= 0 {
		om.spawn(baseSpeed)
	}

	dx := speed * dtRatio
	for i := range om.obstacles {
		om.obstacles[i].X -= dx
	}

	live := om.obstacles[:0]
	for _, o := range om.obstacles {
		if o.X+o.W > -cleanupMargin {
			live = append(live, o)
		}
	}
	om.obstacles = live
}

// spawn appends one obstacle and draws the next countdown.
// Draw order: kind, height, width, phase, gap.
func (om *ObstacleManager) spawn(baseSpeed float64) {
	kind := KindSpike
	if om.rng.Next() < boxChance {
		kind = KindBox
	}
	size := obstacleSizes[kind]
	h := om.rng.IntRange(size.minH, size.maxH)
	w := om.rng.IntRange(size.minW, size.maxW)

	om.obstacles = append(om.obstacles, Obstacle{
		Kind:  kind,
		X:     om.worldW + spawnMargin,
		Y:     om.groundY,
		W:     float64(w),
		H:     float64(h),
		Phase: om.rng.Next() * 2 * math.Pi,
	})

	bonus := 0.0
	if baseSpeed < gapSlowBelow {
		bonus = gapSlowBonus
	}
	om.nextSpawnIn = om.rng.Range(gapMin+bonus, gapMax+bonus)
}

// Obstacles returns the live obstacles in spawn order. Callers must not
// modify the slice.
func (om *ObstacleManager) Obstacles() []Obstacle {
	return om.obstacles
}

// NextSpawnIn returns the canonical ticks left until the next spawn.
func (om *ObstacleManager) NextSpawnIn() float64 {
	return om.nextSpawnIn
}
