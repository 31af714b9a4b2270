package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cat-runner/internal/config"
	"github.com/vovakirdan/cat-runner/internal/core"
	"github.com/vovakirdan/cat-runner/internal/games/catrunner"
	"github.com/vovakirdan/cat-runner/internal/storage"
)

// configChangedMsg carries a configuration reloaded from disk.
type configChangedMsg struct {
	cfg config.Config
}

// configErrorMsg reports a reload that failed to parse or validate.
type configErrorMsg struct {
	err error
}

// Options configures a game Model.
type Options struct {
	Config  config.Config
	Seed    uint32 // 0 selects a fresh random seed
	Store   *storage.Store
	Watcher *config.Watcher // Optional config hot reload
	Logger  *log.Logger
	Source  string // Recorded with each finished run
	Width   int
	Height  int
}

// Model is the Bubble Tea model for playing the cat runner.
type Model struct {
	game     *catrunner.Game
	screen   *core.Screen
	store    *storage.Store
	watcher  *config.Watcher
	logger   *log.Logger
	cfg      config.Config
	source   string
	keys     KeyMap
	help     help.Model
	clock    frameClock
	input    core.InputFrame
	toast    toast
	now      time.Time
	quitting bool
}

// NewModel creates a new Bubble Tea model with its own game instance.
func NewModel(opts Options) Model {
	seed := opts.Seed
	if seed == 0 {
		seed = catrunner.NewSeed()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	source := opts.Source
	if source == "" {
		source = "local"
	}
	size := core.Viewport{W: opts.Width, H: opts.Height}.Fit()

	var best *catrunner.BestScore
	if opts.Store != nil {
		best = catrunner.NewBestScore(opts.Store, opts.Config.Storage.BestKey)
	}

	h := help.New()
	h.ShowAll = false

	return Model{
		game:    catrunner.New(opts.Config, seed, best),
		screen:  core.NewScreen(size.W, size.H-1), // Last line is for toasts and help
		store:   opts.Store,
		watcher: opts.Watcher,
		logger:  logger.With("seed", seed),
		cfg:     opts.Config,
		source:  source,
		keys:    DefaultKeyMap(),
		help:    h,
		clock:   newFrameClock(catrunner.CanonicalTickMs),
		input:   core.NewInputFrame(),
	}
}

// Game returns the model's game instance.
func (m Model) Game() *catrunner.Game {
	return m.game
}

// Init starts the tick loop and, if configured, the config watcher.
func (m Model) Init() tea.Cmd {
	m.logger.Debug("game ready", "source", m.source)
	return tea.Batch(tickCmd(m.cfg.Timing.TickRate), m.watchConfig())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height-1)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case configChangedMsg:
		// Staged; the running world keeps its rules until the next reset.
		m.game.SetConfig(msg.cfg)
		m.cfg = msg.cfg
		m.toast = toast{text: "Config reloaded", expires: m.now.Add(msg.cfg.Notices.Duration())}
		m.logger.Info("config reloaded", "world", fmt.Sprintf("%dx%d", msg.cfg.World.Width, msg.cfg.World.Height))
		return m, m.watchConfig()

	case configErrorMsg:
		m.logger.Warn("config reload failed", "error", msg.err)
		return m, m.watchConfig()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	for _, cmd := range m.keys.Commands(msg) {
		m.input.Push(cmd)
	}
	return m, nil
}

// handleTick advances the game by the real time since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.now = now
	wasRunning := m.game.State() == catrunner.StateRunning
	elapsed := m.clock.elapsed(now)
	if !wasRunning {
		// Time spent idle or paused is not simulated on resume.
		elapsed = 0
	}

	res := m.game.Step(m.input, elapsed)
	m.input.Clear()
	if res.State != catrunner.StateRunning {
		m.clock.reset()
	}

	if len(res.Notices) > 0 {
		m.handleNotices(res.Notices)
	}

	return m, tickCmd(m.cfg.Timing.TickRate)
}

// handleNotices shows toasts, logs transitions and records finished runs.
func (m *Model) handleNotices(notices []catrunner.Notice) {
	if t, ok := latestToast(notices, m.now, m.cfg.Notices.Duration()); ok {
		m.toast = t
	}

	newBest := false
	for _, n := range notices {
		switch n.Kind {
		case catrunner.NoticeStorageFailed:
			m.logger.Warn("best score storage failed", "error", n.Err)
		case catrunner.NoticeNewBest:
			newBest = true
			m.logger.Info("new best", "score", n.Score)
		default:
			m.logger.Debug("notice", "kind", n.Kind, "score", n.Score)
		}
	}

	for _, n := range notices {
		if n.Kind == catrunner.NoticeGameOver {
			m.recordRun(n.Score, newBest)
		}
	}
}

// recordRun appends the finished run to the history. Best-effort.
func (m *Model) recordRun(score int, newBest bool) {
	if m.store == nil {
		return
	}
	snap := m.game.Snapshot()
	_, err := m.store.SaveRun(storage.Run{
		Seed:       m.game.Seed(),
		Score:      score,
		Ticks:      snap.Tick,
		DurationMs: int64(snap.T),
		NewBest:    newBest,
		Source:     m.source,
	})
	if err != nil {
		m.logger.Warn("could not save run", "error", err)
	}
}

// watchConfig waits for the next event from the config watcher.
func (m Model) watchConfig() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	w := m.watcher
	return func() tea.Msg {
		select {
		case cfg, ok := <-w.Changes:
			if !ok {
				return nil
			}
			return configChangedMsg{cfg: cfg}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return configErrorMsg{err: err}
		}
	}
}

// saveScreenshot saves the current screen to a file.
func (m Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("tui: cannot find home directory: %w", err)
	}
	dir := filepath.Join(home, ".catrunner", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create %s: %w", dir, err)
	}

	filename := fmt.Sprintf("catrunner_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	if m.toast.active(m.now) {
		b.WriteString(renderToast(m.toast.text, m.screen.Width()))
	} else {
		b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	}
	return b.String()
}

// Run starts the Bubble Tea program with a new model.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
