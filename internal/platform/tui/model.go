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
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// Publisher receives every snapshot the model produces.
type Publisher interface {
	Publish(snap snake.Snapshot)
}

// Options wires the model to its collaborators. Every field is optional.
type Options struct {
	Store     storage.Store
	Logger    *log.Logger
	Publisher Publisher

	// SessionID tags saved runs. A random UUID is used when empty.
	SessionID string

	// ScreenshotDir enables ctrl+s screenshots when set.
	ScreenshotDir string
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model driving one snake engine.
type Model struct {
	engine    *snake.Engine
	screen    *core.Screen
	opts      Options
	keys      KeyMap
	help      help.Model
	snap      snake.Snapshot
	started   time.Time
	width     int
	height    int
	runSaved  bool // Whether the current game over has been recorded
	savedHigh int  // Last high score written to the store
	quitting  bool
}

// NewModel creates a model for engine sized to cfg's screen.
func NewModel(engine *snake.Engine, cfg core.RuntimeConfig, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.SessionID == "" {
		opts.SessionID = uuid.NewString()
	}

	m := Model{
		engine:    engine,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		opts:      opts,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		snap:      engine.Snapshot(),
		started:   time.Now(),
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		savedHigh: engine.HighScore(),
	}
	m.keys.Screenshot.SetEnabled(opts.ScreenshotDir != "")
	m.layout()
	return m
}

// Init publishes the opening frame and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.publish()
	return tickCmd(m.engine.TickInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil
	}

	action := m.keys.Action(msg)
	if action.IsDirectional() {
		d, _ := direction(action)
		m.engine.SetDirection(d)
		m.snap = m.engine.Snapshot()
		return m, nil
	}

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionPause:
		m.snap = m.engine.TogglePause()
		m.publish()
	case core.ActionRestart:
		m.snap = m.engine.Reset()
		m.started = time.Now()
		m.runSaved = false
		m.publish()
	}

	return m, nil
}

// handleTick advances the engine and schedules the next tick at its current speed.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.snap = m.engine.Tick()
	m.publish()

	if m.snap.HighScore > m.savedHigh {
		m.saveHighScore()
	}
	if m.snap.Over() && !m.runSaved {
		m.recordRun()
		m.runSaved = true
	}

	return m, tickCmd(m.engine.TickInterval())
}

// saveHighScore persists the snapshot's high score outside the engine lock.
// A failed save is retried on the next improvement.
func (m *Model) saveHighScore() {
	score := m.snap.HighScore
	if m.opts.Store == nil {
		m.savedHigh = score
		return
	}
	if err := m.opts.Store.SaveHighScore(score); err != nil {
		m.opts.Logger.Error("cannot save high score", "score", score, "error", err)
		return
	}
	m.savedHigh = score
	m.opts.Logger.Debug("new high score", "score", score)
}

// recordRun logs the finished game and saves it. Failures never stop the game.
func (m *Model) recordRun() {
	run := storage.Run{
		SessionID: m.opts.SessionID,
		Score:     m.snap.Score,
		Level:     m.snap.Level,
		Length:    len(m.snap.Snake),
		Ticks:     m.snap.Tick,
		Duration:  time.Since(m.started).Round(time.Millisecond),
		Collision: m.snap.Collision.String(),
	}
	m.opts.Logger.Info("game over",
		"session", run.SessionID,
		"score", run.Score,
		"level", run.Level,
		"length", run.Length,
		"collision", run.Collision,
	)

	if m.opts.Store == nil {
		return
	}
	if _, err := m.opts.Store.SaveRun(run); err != nil {
		m.opts.Logger.Error("cannot save run", "session", run.SessionID, "error", err)
	}
}

func (m *Model) publish() {
	if m.opts.Publisher != nil {
		m.opts.Publisher.Publish(m.snap)
	}
}

// layout sizes the game screen to the window minus the help footer.
func (m *Model) layout() {
	m.help.Width = m.width
	footer := lipgloss.Height(m.help.View(m.keys))
	m.screen.Resize(m.width, max(m.height-footer, 0))
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() {
	snake.Render(m.screen, m.snap)
	path, err := writeScreenshot(m.opts.ScreenshotDir, m.screen, time.Now())
	if err != nil {
		m.opts.Logger.Warn("cannot save screenshot", "error", err)
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
}

func writeScreenshot(dir string, screen *core.Screen, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create %s: %w", dir, err)
	}

	filename := fmt.Sprintf("snake_%s.txt", now.Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(screen.String()+"\n"), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snake.Render(m.screen, m.snap)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Snapshot returns the latest snapshot the model has seen.
func (m Model) Snapshot() snake.Snapshot {
	return m.snap
}

// Run starts the Bubble Tea program for engine in the current terminal.
func Run(engine *snake.Engine, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewModel(engine, cfg, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
