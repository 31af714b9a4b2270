package catrunner

import "github.com/vovakirdan/cat-runner/internal/core"

// Character physics constants.
const (
	Gravity   = 0.9  // Downward acceleration per canonical tick
	JumpPower = 14.5 // Takeoff speed
	CatWidth  = 36.0
	CatHeight = 28.0
	catXRatio = 0.16 // Horizontal position as a share of world width

	// Hitbox is narrower and shorter than the sprite so grazes are forgiven.
	hitboxHalfWidth = 0.38
	hitboxHeight    = 0.82
	hitboxLift      = 2.0

	// Blink cycle, in seconds.
	blinkMin    = 1.5
	blinkSpread = 2.2
)

// Character is the player's cat. X never changes; the world scrolls under
// it. Y is the base (feet) coordinate and grows downward.
type Character struct {
	X, Y      float64
	VY        float64
	W, H      float64
	OnGround  bool
	JumpPower float64
	Squish    float64 // 1 right after takeoff, decays toward 0
	BlinkT    float64 // Seconds since the last blink cycle started
	blinkAt   float64 // Seconds at which the current cycle restarts
}

func newCharacter(worldW, groundY float64) Character {
	return Character{
		X:         float64(int(worldW * catXRatio)),
		Y:         groundY,
		W:         CatWidth,
		H:         CatHeight,
		OnGround:  true,
		JumpPower: JumpPower,
		blinkAt:   blinkMin,
	}
}

// applyGravity integrates one slice of dtRatio canonical ticks and clamps
// the cat to the ground.
func (c *Character) applyGravity(dtRatio, groundY float64) {
	c.VY += Gravity * dtRatio
	c.Y += c.VY * dtRatio
	if c.Y >= groundY {
		c.Y = groundY
		c.VY = 0
		c.OnGround = true
	}
}

// jump starts a jump if the cat is grounded and reports whether it did.
// Requests while airborne are dropped.
func (c *Character) jump() bool {
	if !c.OnGround {
		return false
	}
	c.VY = -c.JumpPower
	c.OnGround = false
	c.Squish = 1
	return true
}

// updateBlink advances the cosmetic blink timer.
func (c *Character) updateBlink(elapsedMs float64, rng *RNG) {
	c.BlinkT += elapsedMs / 1000
	if c.BlinkT > c.blinkAt {
		c.BlinkT = 0
		c.blinkAt = rng.Range(blinkMin, blinkMin+blinkSpread)
	}
}

// Blinking reports whether the eyes are closed this frame.
func (c Character) Blinking() bool {
	return c.BlinkT > 0.92 && c.BlinkT < 0.98
}

// Hitbox returns the forgiving collision box centered on X.
func (c Character) Hitbox() core.Box {
	return core.NewBox(
		c.X-c.W*hitboxHalfWidth,
		c.Y-hitboxLift,
		c.W*hitboxHalfWidth*2,
		c.H*hitboxHeight,
	)
}
