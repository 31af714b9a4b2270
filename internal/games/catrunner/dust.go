package catrunner

import "github.com/vovakirdan/cat-runner/internal/config"

// Particle is a cosmetic dust puff kicked up on takeoff. It never takes
// part in collisions.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Alpha  float64
	Radius float64
}

// DustBurst is the number of particles kicked up by one jump.
const DustBurst = 6

// DustSystem owns the live particles.
type DustSystem struct {
	particles []Particle
	cfg       config.EffectsConfig
}

func newDustSystem(cfg config.EffectsConfig) DustSystem {
	return DustSystem{
		particles: make([]Particle, 0, DustBurst*4),
		cfg:       cfg,
	}
}

// burst spawns one puff of particles near the cat's back foot.
// Draw order per particle: x, vx, vy, radius.
func (d *DustSystem) burst(rng *RNG, catX, groundY float64) {
	for i := 0; i < DustBurst; i++ {
		x := catX + 8 + rng.Next()*12
		vx := -2 - rng.Next()*2
		vy := -1 - rng.Next()*1.5
		r := 1 + rng.Next()*2
		d.particles = append(d.particles, Particle{
			X:      x,
			Y:      groundY + 2,
			VX:     vx,
			VY:     vy,
			Alpha:  1,
			Radius: r,
		})
	}
}

// update moves particles ballistically, fades them and drops the faded.
func (d *DustSystem) update(dtRatio float64) {
	fade := decay(d.cfg.DustDecay, dtRatio)
	live := d.particles[:0]
	for _, p := range d.particles {
		p.X += p.VX * dtRatio
		p.Y += p.VY * dtRatio
		p.VY += d.cfg.DustGravity * dtRatio
		p.Alpha *= fade
		if p.Alpha > d.cfg.DustMinAlpha {
			live = append(live, p)
		}
	}
	d.particles = live
}

// Particles returns the live particles. Callers must not modify the slice.
func (d *DustSystem) Particles() []Particle {
	return d.particles
}
