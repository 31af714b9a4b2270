package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/cat-runner/internal/storage"
)

func TestScoreboardViews(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveRun(storage.Run{Seed: 1, Score: 120, DurationMs: 65000})
	store.SaveRun(storage.Run{Seed: 2, Score: 300, NewBest: true})

	m := NewScoreboardModel(store, 300, 100, 30)
	if len(m.runs) != 2 || m.runs[0].Score != 300 {
		t.Fatalf("top runs = %+v", m.runs)
	}
	view := m.View()
	if !strings.Contains(view, "HIGH SCORES") || !strings.Contains(view, "Best: 300") {
		t.Errorf("unexpected view:\n%s", view)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.view != viewRecent {
		t.Fatal("tab should switch to recent runs")
	}
	if m.runs[0].Seed != 2 {
		t.Errorf("recent runs should be newest first: %+v", m.runs)
	}
	if !strings.Contains(m.View(), "RECENT RUNS") {
		t.Error("title should follow the view")
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 0, 80, 24)
	if !strings.Contains(m.View(), "No runs recorded yet") {
		t.Errorf("unexpected view:\n%s", m.View())
	}
}

func TestFormatDuration(t *testing.T) {
	tests := map[int64]string{
		0:      "0:00",
		65000:  "1:05",
		600500: "10:00",
	}
	for ms, want := range tests {
		if got := formatDuration(ms); got != want {
			t.Errorf("formatDuration(%d) = %q, expected %q", ms, got, want)
		}
	}
}
