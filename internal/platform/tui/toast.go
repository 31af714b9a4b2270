package tui

import (
	"fmt"
	"time"

	"github.com/vovakirdan/cat-runner/internal/games/catrunner"
)

// toast is a short message shown above the game for a fixed duration.
type toast struct {
	text    string
	expires time.Time
}

// active reports whether the toast is still visible at now.
func (t toast) active(now time.Time) bool {
	return t.text != "" && now.Before(t.expires)
}

// noticeText returns the toast wording for a notice, or "" for notices
// that are not shown.
func noticeText(n catrunner.Notice) string {
	switch n.Kind {
	case catrunner.NoticeRunStarted:
		return "Go! Jump over the obstacles"
	case catrunner.NoticePaused:
		return "Paused"
	case catrunner.NoticeResumed:
		return "Resumed"
	case catrunner.NoticeGameOver:
		return "Game over, press R to restart"
	case catrunner.NoticeNewBest:
		return fmt.Sprintf("New best: %d!", n.Score)
	case catrunner.NoticeStorageFailed:
		return "Best score could not be saved"
	}
	return ""
}

// latestToast picks the message for a batch of notices. Later notices win,
// except that a new best outranks the plain game over.
func latestToast(notices []catrunner.Notice, now time.Time, d time.Duration) (toast, bool) {
	text := ""
	newBest := false
	for _, n := range notices {
		if n.Kind == catrunner.NoticeGameOver && newBest {
			continue
		}
		if n.Kind == catrunner.NoticeNewBest {
			newBest = true
		}
		if t := noticeText(n); t != "" {
			text = t
		}
	}
	if text == "" {
		return toast{}, false
	}
	return toast{text: text, expires: now.Add(d)}, true
}
