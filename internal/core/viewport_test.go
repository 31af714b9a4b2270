package core

import "testing"

func TestViewportFit(t *testing.T) {
	tests := []struct {
		name string
		in   Viewport
		want Viewport
	}{
		{"valid", Viewport{W: 120, H: 40}, Viewport{W: 120, H: 40}},
		{"zero", Viewport{}, DefaultViewport()},
		{"negative height", Viewport{W: 100, H: -1}, DefaultViewport()},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.Fit(); got != tc.want {
				t.Errorf("Fit() = %+v, expected %+v", got, tc.want)
			}
		})
	}
}
