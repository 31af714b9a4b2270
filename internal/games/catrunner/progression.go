package catrunner

import "math"

// Speed ramp and scoring constants.
const (
	BaseSpeed = 7.0     // World pixels per canonical tick at multiplier 1
	rampMs    = 60000.0 // Running time that maps to one unit of ramp
	rampCap   = 1.8     // Ramp stops growing at this many units
	rampScale = 0.9     // Multiplier gained per ramp unit
	scoreRate = 0.02    // Points per elapsed millisecond at multiplier 1
)

// SpeedMultiplier returns the difficulty multiplier for t milliseconds of
// running time. It grows by 0.9 per minute from 1.0 and holds at 2.62
// once t reaches 108 seconds.
func SpeedMultiplier(tMs float64) float64 {
	return 1 + math.Min(rampCap, tMs/rampMs)*rampScale
}

// ScoreIncrement returns the points earned for one frame.
// Accrual follows wall-clock time and difficulty, not the frame count.
func ScoreIncrement(elapsedMs, speedMul float64) int {
	return int(math.Floor(elapsedMs * scoreRate * speedMul))
}

// decay applies a per-canonical-tick multiplier over dtRatio ticks.
func decay(rate, dtRatio float64) float64 {
	return math.Pow(rate, dtRatio)
}
