package core

import "testing"

func TestInputFrameKeepsOrder(t *testing.T) {
	f := NewInputFrame(CommandReset, CommandStart)
	f.Push(CommandNone)
	f.Push(CommandJump)

	want := []Command{CommandReset, CommandStart, CommandJump}
	if f.Len() != len(want) {
		t.Fatalf("Len() = %d, expected %d", f.Len(), len(want))
	}
	for i, c := range want {
		if f.Commands[i] != c {
			t.Errorf("Commands[%d] = %v, expected %v", i, f.Commands[i], c)
		}
	}
	if !f.Has(CommandJump) || f.Has(CommandTogglePause) {
		t.Error("Has() reported wrong membership")
	}

	f.Clear()
	if f.Len() != 0 {
		t.Errorf("Clear() left %d commands", f.Len())
	}
}

func TestCommandString(t *testing.T) {
	tests := map[Command]string{
		CommandJump:        "Jump",
		CommandStart:       "Start",
		CommandTogglePause: "TogglePause",
		CommandReset:       "Reset",
		Command(99):        "Unknown",
	}
	for c, want := range tests {
		if c.String() != want {
			t.Errorf("%d.String() = %q, expected %q", int(c), c.String(), want)
		}
	}
}
