package catrunner

// CharacterView is the renderer's read-only view of the cat.
type CharacterView struct {
	X, Y       float64
	W, H       float64
	VY         float64
	OnGround   bool
	Squish     float64
	BlinkPhase float64 // Seconds into the current blink cycle
	Blinking   bool
}

// DustView is the renderer's read-only view of a particle.
type DustView struct {
	X, Y   float64
	Alpha  float64
	Radius float64
}

// Snapshot is a consistent copy of the world after a complete tick.
// It shares no memory with the game.
type Snapshot struct {
	State           State
	Tick            int
	T               float64 // Running time in ms
	Score           int
	Best            int
	AboveBest       bool // Score currently beats the stored best
	SpeedMultiplier float64
	WorldW, WorldH  float64
	GroundY         float64
	Character       CharacterView
	Obstacles       []Obstacle
	Dust            []DustView
	NextSpawnIn     float64
}

// Snapshot copies the current world state.
func (g *Game) Snapshot() Snapshot {
	obstacles := make([]Obstacle, len(g.obstacles.Obstacles()))
	copy(obstacles, g.obstacles.Obstacles())

	particles := g.dust.Particles()
	dust := make([]DustView, len(particles))
	for i, p := range particles {
		dust[i] = DustView{X: p.X, Y: p.Y, Alpha: p.Alpha, Radius: p.Radius}
	}

	return Snapshot{
		State:           g.state,
		Tick:            g.tickCount,
		T:               g.t,
		Score:           g.score,
		Best:            g.best,
		AboveBest:       g.score > g.best,
		SpeedMultiplier: g.speedMul,
		WorldW:          float64(g.cfg.World.Width),
		WorldH:          float64(g.cfg.World.Height),
		GroundY:         g.groundY,
		Character: CharacterView{
			X:          g.cat.X,
			Y:          g.cat.Y,
			W:          g.cat.W,
			H:          g.cat.H,
			VY:         g.cat.VY,
			OnGround:   g.cat.OnGround,
			Squish:     g.cat.Squish,
			BlinkPhase: g.cat.BlinkT,
			Blinking:   g.cat.Blinking(),
		},
		Obstacles:   obstacles,
		Dust:        dust,
		NextSpawnIn: g.obstacles.NextSpawnIn(),
	}
}
