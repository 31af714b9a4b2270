package catrunner

import (
	"fmt"
	"math"

	"github.com/vovakirdan/cat-runner/internal/core"
)

// Visual characters for rendering
const (
	GroundChar = '═'
	DashChar   = '-'
	BoxChar    = '▓'
	SpikeTop   = '▲'
	SpikeBody  = '█'
	CatBody    = '█'
	CatAir     = '▀'
	CatEar     = '^'
	CatEye     = 'o'
	CatBlink   = '-'
	CatTail    = '~'
	DustBright = '·'
	DustFaint  = '.'
)

// viewport maps world pixels onto screen cells below a one-row HUD.
type viewport struct {
	sx, sy float64
	top    int
}

func newViewport(dst *core.Screen, snap Snapshot) viewport {
	rows := dst.Height() - 1
	return viewport{
		sx:  float64(dst.Width()) / snap.WorldW,
		sy:  float64(rows) / snap.WorldH,
		top: 1,
	}
}

func (v viewport) col(x float64) int {
	return int(math.Floor(x * v.sx))
}

func (v viewport) row(y float64) int {
	return v.top + int(math.Floor(y*v.sy))
}

// base returns the row an entity standing at world y occupies.
func (v viewport) base(y float64) int {
	return v.row(y) - 1
}

func (v viewport) cols(w float64, min int) int {
	return core.Max(min, int(math.Round(w*v.sx)))
}

func (v viewport) rows(h float64, min int) int {
	return core.Max(min, int(math.Round(h*v.sy)))
}

// Render draws the current world into dst.
func (g *Game) Render(dst *core.Screen) {
	Render(dst, g.Snapshot())
}

// Render draws a snapshot into dst. It only reads the snapshot.
func Render(dst *core.Screen, snap Snapshot) {
	dst.Clear()
	if dst.Width() < 10 || dst.Height() < 6 {
		dst.DrawText(0, 0, "too small")
		return
	}

	v := newViewport(dst, snap)
	drawGround(dst, v, snap)
	for _, o := range snap.Obstacles {
		drawObstacle(dst, v, o)
	}
	drawDust(dst, v, snap.Dust)
	drawCat(dst, v, snap.Character)
	drawHUD(dst, snap)

	switch snap.State {
	case StateIdle:
		drawCenteredMessage(dst, "CAT RUNNER", "Space to jump and start")
	case StatePaused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case StateDead:
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", snap.Score))
	}
}

func drawGround(dst *core.Screen, v viewport, snap Snapshot) {
	ground := v.row(snap.GroundY)
	dst.DrawHLine(0, ground, dst.Width(), GroundChar, core.ColorGray)

	// Moving dashes one row below the ground line.
	const dash, gap = 18.0, 18.0
	offset := math.Mod(snap.T*BaseSpeed*snap.SpeedMultiplier*0.06, dash+gap)
	for col := 0; col < dst.Width(); col++ {
		x := float64(col) / v.sx
		if math.Mod(x+offset, dash+gap) < dash {
			dst.SetColor(col, ground+1, DashChar, core.ColorDim)
		}
	}
}

func drawObstacle(dst *core.Screen, v viewport, o Obstacle) {
	left := v.col(o.X)
	w := v.cols(o.W, 1)
	h := v.rows(o.H, 1)
	bottom := v.base(o.Y)
	top := bottom - h + 1

	switch o.Kind {
	case KindBox:
		dst.DrawRect(core.NewRect(left, top, w, h), BoxChar, core.ColorBlue)
	case KindSpike:
		dst.DrawRect(core.NewRect(left, top+1, w, h-1), SpikeBody, core.ColorRed)
		dst.DrawHLine(left, top, w, SpikeTop, core.ColorBrightRed)
	}
}

func drawDust(dst *core.Screen, v viewport, dust []DustView) {
	for _, p := range dust {
		r := DustFaint
		if p.Alpha > 0.5 {
			r = DustBright
		}
		dst.SetColor(v.col(p.X), v.base(p.Y), r, core.ColorGray)
	}
}

func drawCat(dst *core.Screen, v viewport, c CharacterView) {
	w := v.cols(c.W, 3)
	h := v.rows(c.H, 2)
	left := v.col(c.X - c.W/2)
	bottom := v.base(c.Y)
	top := bottom - h + 1

	// Ears and eyes on the top row.
	eye := CatEye
	if c.Blinking {
		eye = CatBlink
	}
	dst.SetColor(left, top, CatEar, core.ColorBrightWhite)
	for x := left + 1; x < left+w-1; x++ {
		dst.SetColor(x, top, eye, core.ColorBrightWhite)
	}
	dst.SetColor(left+w-1, top, CatEar, core.ColorBrightWhite)

	body := CatBody
	if !c.OnGround {
		body = CatAir
	}
	for y := top + 1; y <= bottom; y++ {
		dst.DrawHLine(left, y, w, body, core.ColorBrightWhite)
	}
	dst.SetColor(left-1, bottom, CatTail, core.ColorWhite)
}

func drawHUD(dst *core.Screen, snap Snapshot) {
	scoreColor := core.ColorBrightWhite
	if snap.AboveBest {
		scoreColor = core.ColorBrightGreen
	}
	score := fmt.Sprintf(" Score: %d ", snap.Score)
	dst.DrawTextColor(1, 0, score, scoreColor)
	dst.DrawTextColor(1+len(score), 0, fmt.Sprintf(" Best: %d ", snap.Best), core.ColorYellow)

	speed := fmt.Sprintf(" Speed: %.1f× ", snap.SpeedMultiplier)
	dst.DrawTextColor(dst.Width()-len([]rune(speed))-1, 0, speed, core.ColorCyan)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Min(w, core.Max(len(title), len(subtitle))+4)
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)

	dst.DrawTextColor(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightWhite)
	dst.DrawTextColor(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle, core.ColorDefault)
}
