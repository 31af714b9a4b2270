package tui

import (
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/cat-runner/internal/config"
	"github.com/vovakirdan/cat-runner/internal/core"
	"github.com/vovakirdan/cat-runner/internal/games/catrunner"
	"github.com/vovakirdan/cat-runner/internal/storage"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func spaceKey() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
}

func TestKeyMapCommands(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want []core.Command
	}{
		{"space jumps", spaceKey(), []core.Command{core.CommandJump}},
		{"up jumps", tea.KeyMsg{Type: tea.KeyUp}, []core.Command{core.CommandJump}},
		{"p pauses", runeKey('p'), []core.Command{core.CommandTogglePause}},
		{"esc pauses", tea.KeyMsg{Type: tea.KeyEsc}, []core.Command{core.CommandTogglePause}},
		{"r restarts", runeKey('r'), []core.Command{core.CommandReset, core.CommandStart}},
		{"unbound key", runeKey('x'), nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.Commands(tc.msg); !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Commands() = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestLatestToast(t *testing.T) {
	now := time.Unix(100, 0)
	d := 1200 * time.Millisecond

	tests := []struct {
		name    string
		notices []catrunner.Notice
		want    string
	}{
		{"none", nil, ""},
		{"paused", []catrunner.Notice{{Kind: catrunner.NoticePaused}}, "Paused"},
		{"game over", []catrunner.Notice{{Kind: catrunner.NoticeGameOver, Score: 12}}, "Game over, press R to restart"},
		{"new best wins", []catrunner.Notice{
			{Kind: catrunner.NoticeGameOver, Score: 40},
			{Kind: catrunner.NoticeNewBest, Score: 40},
		}, "New best: 40!"},
		{"storage failure last", []catrunner.Notice{
			{Kind: catrunner.NoticeGameOver, Score: 40},
			{Kind: catrunner.NoticeNewBest, Score: 40},
			{Kind: catrunner.NoticeStorageFailed, Err: errors.New("boom")},
		}, "Best score could not be saved"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := latestToast(tc.notices, now, d)
			if got.text != tc.want || ok != (tc.want != "") {
				t.Errorf("latestToast() = %q, %v; expected %q", got.text, ok, tc.want)
			}
			if ok && !got.expires.Equal(now.Add(d)) {
				t.Errorf("expires = %v", got.expires)
			}
		})
	}
}

func TestToastExpires(t *testing.T) {
	now := time.Unix(100, 0)
	ts := toast{text: "hi", expires: now.Add(time.Second)}
	if !ts.active(now) {
		t.Error("toast should be active before expiry")
	}
	if ts.active(now.Add(time.Second)) {
		t.Error("toast should expire")
	}
	if (toast{}).active(now) {
		t.Error("empty toast should never be active")
	}
}

func TestFrameClock(t *testing.T) {
	c := newFrameClock(16.67)
	start := time.Unix(0, 0)

	if got := c.elapsed(start); got != 16.67 {
		t.Errorf("first frame = %v, expected 16.67", got)
	}
	if got := c.elapsed(start.Add(20 * time.Millisecond)); got != 20 {
		t.Errorf("second frame = %v, expected 20", got)
	}
	if got := c.elapsed(start); got != 0 {
		t.Errorf("backwards clock = %v, expected 0", got)
	}

	c.reset()
	if got := c.elapsed(start.Add(time.Hour)); got != 16.67 {
		t.Errorf("frame after reset = %v, expected 16.67", got)
	}
}

func step(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func TestModelPlaysRun(t *testing.T) {
	m := NewModel(Options{Config: config.Default(), Seed: 1, Width: 80, Height: 24})
	now := time.Unix(1000, 0)

	m = step(t, m, spaceKey())
	m = step(t, m, TickMsg(now))
	if m.Game().State() != catrunner.StateRunning {
		t.Fatalf("State = %v, expected running", m.Game().State())
	}
	if !strings.Contains(m.View(), "Go!") {
		t.Error("expected the run started toast")
	}

	for i := 1; i <= 400 && m.Game().State() == catrunner.StateRunning; i++ {
		m = step(t, m, TickMsg(now.Add(time.Duration(i)*16670*time.Microsecond)))
	}
	if m.Game().State() != catrunner.StateDead {
		t.Fatalf("State = %v, expected dead without jumping", m.Game().State())
	}

	m = step(t, m, runeKey('r'))
	m = step(t, m, TickMsg(now.Add(10*time.Second)))
	if m.Game().State() != catrunner.StateRunning {
		t.Errorf("restart: State = %v, expected running", m.Game().State())
	}
	if m.Game().Snapshot().Tick != 1 {
		t.Errorf("restart should begin a fresh run, Tick = %d", m.Game().Snapshot().Tick)
	}
}

func TestModelPausedTimeNotSimulated(t *testing.T) {
	m := NewModel(Options{Config: config.Default(), Seed: 1, Width: 80, Height: 24})
	now := time.Unix(1000, 0)

	m = step(t, m, spaceKey())
	m = step(t, m, TickMsg(now))
	m = step(t, m, runeKey('p'))
	m = step(t, m, TickMsg(now.Add(16*time.Millisecond)))
	before := m.Game().Snapshot().T

	m = step(t, m, runeKey('p'))
	m = step(t, m, TickMsg(now.Add(time.Minute)))
	if got := m.Game().Snapshot().T; got != before {
		t.Errorf("resume frame advanced T from %v to %v", before, got)
	}
}

func TestModelRecordsRuns(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m := NewModel(Options{Config: config.Default(), Seed: 1, Store: store, Source: "test", Width: 80, Height: 24})
	now := time.Unix(1000, 0)

	m = step(t, m, spaceKey())
	m = step(t, m, TickMsg(now))
	for i := 1; i <= 400 && m.Game().State() == catrunner.StateRunning; i++ {
		m = step(t, m, TickMsg(now.Add(time.Duration(i)*16670*time.Microsecond)))
	}
	if m.Game().State() != catrunner.StateDead {
		t.Fatal("run did not end")
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 recorded run, got %d", len(runs))
	}
	snap := m.Game().Snapshot()
	r := runs[0]
	if r.Score != snap.Score || r.Ticks != snap.Tick || r.Source != "test" || r.Seed != 1 {
		t.Errorf("recorded run = %+v, game ended at %+v", r, snap)
	}
	// A run that does not beat the stored best is not flagged.
	if r.NewBest != (snap.Score > 0) {
		t.Errorf("NewBest = %v for score %d", r.NewBest, snap.Score)
	}
}

func TestModelStagesReloadedConfig(t *testing.T) {
	m := NewModel(Options{Config: config.Default(), Seed: 1, Width: 80, Height: 24})

	cfg := config.Default()
	cfg.World.Width = 640
	m = step(t, m, configChangedMsg{cfg: cfg})
	if m.Game().Snapshot().WorldW != 960 {
		t.Error("reloaded config should wait for the next reset")
	}

	m = step(t, m, runeKey('r'))
	m = step(t, m, TickMsg(time.Unix(1000, 0)))
	if m.Game().Snapshot().WorldW != 640 {
		t.Errorf("WorldW = %v after restart, expected 640", m.Game().Snapshot().WorldW)
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(Options{Config: config.Default(), Seed: 1})
	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if next.(Model).View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(5, 2)
	s.DrawText(0, 0, "hello")
	s.DrawTextColor(0, 1, "ab", core.ColorRed)

	out := RenderScreen(s)
	if !strings.Contains(out, "hello") {
		t.Errorf("RenderScreen() = %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected 2 lines, got %q", out)
	}
}
