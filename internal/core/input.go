package core

// Command is one of the discrete player intents the simulation accepts.
// Physical keys and pointer events are mapped to commands by the platform.
type Command int

const (
	CommandNone Command = iota
	CommandJump
	CommandStart
	CommandTogglePause
	CommandReset
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CommandNone:
		return "None"
	case CommandJump:
		return "Jump"
	case CommandStart:
		return "Start"
	case CommandTogglePause:
		return "TogglePause"
	case CommandReset:
		return "Reset"
	default:
		return "Unknown"
	}
}

// InputFrame collects the commands issued between two simulation ticks.
// Order is preserved: a Reset followed by a Start is not the same as a
// Start followed by a Reset.
type InputFrame struct {
	Commands []Command
}

// NewInputFrame creates an empty input frame.
func NewInputFrame(cmds ...Command) InputFrame {
	f := InputFrame{Commands: make([]Command, 0, 4)}
	for _, c := range cmds {
		f.Push(c)
	}
	return f
}

// Push appends a command to the frame. CommandNone is dropped.
func (f *InputFrame) Push(c Command) {
	if c == CommandNone {
		return
	}
	f.Commands = append(f.Commands, c)
}

// Has returns true if the given command was issued this frame.
func (f InputFrame) Has(c Command) bool {
	for _, cmd := range f.Commands {
		if cmd == c {
			return true
		}
	}
	return false
}

// Len returns the number of queued commands.
func (f InputFrame) Len() int {
	return len(f.Commands)
}

// Clear drops all commands, keeping the backing array for the next frame.
func (f *InputFrame) Clear() {
	f.Commands = f.Commands[:0]
}
