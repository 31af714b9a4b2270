package core

// Viewport is the size in cells of the terminal area a game renders into.
type Viewport struct {
	W, H int
}

// DefaultViewport is used when the terminal size is unknown.
func DefaultViewport() Viewport {
	return Viewport{W: 80, H: 24}
}

// Fit replaces a non-positive viewport with the default one.
func (v Viewport) Fit() Viewport {
	if v.W <= 0 || v.H <= 0 {
		return DefaultViewport()
	}
	return v
}
