package core

// Color is a foreground color for a screen cell, translated to an ANSI
// code by the platform layer.
type Color uint8

// Palette used by the cat runner renderer.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightBlue
	ColorBrightWhite
	ColorGray
	ColorDim
)
