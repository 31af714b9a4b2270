package catrunner

// State is the run state machine's current state.
type State int

const (
	StateIdle State = iota
	StateRunning
	StatePaused
	StateDead
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateDead:
		return "dead"
	default:
		return "unknown"
	}
}

// NoticeKind identifies a notification-worthy transition.
type NoticeKind int

const (
	NoticeRunStarted NoticeKind = iota
	NoticePaused
	NoticeResumed
	NoticeGameOver
	NoticeNewBest
	NoticeStorageFailed
)

// String returns the notice kind name.
func (k NoticeKind) String() string {
	switch k {
	case NoticeRunStarted:
		return "run_started"
	case NoticePaused:
		return "paused"
	case NoticeResumed:
		return "resumed"
	case NoticeGameOver:
		return "game_over"
	case NoticeNewBest:
		return "new_best"
	case NoticeStorageFailed:
		return "storage_failed"
	default:
		return "unknown"
	}
}

// Notice is a short-lived message for the notification collaborator.
// Wording is up to the presentation layer.
type Notice struct {
	Kind  NoticeKind
	Score int   // Score at the time of the transition
	Err   error // Set for NoticeStorageFailed
}

// StepResult is returned by Game.Step after each frame.
type StepResult struct {
	State   State
	Score   int
	Notices []Notice // Notices raised since the previous step
}
