package catrunner

import "github.com/vovakirdan/cat-runner/internal/core"

// DefaultLeadTicks is how many canonical ticks before contact the
// autopilot jumps. The cat clears the tallest obstacle between roughly
// 3 and 29 ticks after takeoff.
const DefaultLeadTicks = 6.0

// Autopilot plays the game from snapshots. It is used by headless
// simulations and demos.
type Autopilot struct {
	LeadTicks float64
}

// NewAutopilot returns an autopilot with the default lead.
func NewAutopilot() *Autopilot {
	return &Autopilot{LeadTicks: DefaultLeadTicks}
}

// Decide returns the command to send for the next frame.
func (a *Autopilot) Decide(snap Snapshot) core.Command {
	switch snap.State {
	case StateIdle, StateDead:
		return core.CommandStart
	case StatePaused:
		return core.CommandNone
	}
	if !snap.Character.OnGround {
		return core.CommandNone
	}

	cat := Character{
		X: snap.Character.X,
		Y: snap.Character.Y,
		W: snap.Character.W,
		H: snap.Character.H,
	}.Hitbox()
	speed := BaseSpeed * snap.SpeedMultiplier
	lead := a.LeadTicks * speed

	for _, o := range snap.Obstacles {
		box := o.Hitbox()
		if box.Right() <= cat.X {
			continue // Already behind the cat
		}
		if box.X-cat.Right() <= lead {
			return core.CommandJump
		}
		// Obstacles are in spawn order, so the first one ahead is nearest.
		break
	}
	return core.CommandNone
}
