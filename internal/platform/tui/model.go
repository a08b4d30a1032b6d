package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Game is the contract between the frontend and a game core.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Resize(w, h int)
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
}

// footerRows is the space reserved under the game for the help line.
const footerRows = 1

// Options configures a Model.
type Options struct {
	Runtime core.RuntimeConfig

	// SoftDropReleaseTicks is how many ticks without a soft drop key press
	// end a soft drop. Terminals report no key releases, so auto-repeat
	// keeps the drop alive while the key is held.
	SoftDropReleaseTicks int

	// ScreenshotDir defaults to ~/.tetris/screenshots.
	ScreenshotDir string

	Logger *log.Logger
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       Game
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       KeyMap
	help       help.Model
	logger     *log.Logger

	releaseTicks  int
	dropHeld      bool
	dropIdle      int
	screenshotDir string
	quitting      bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, opts Options) Model {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	dir := opts.ScreenshotDir
	if dir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			dir = filepath.Join(home, ".tetris", "screenshots")
		}
	}

	h := help.New()
	h.ShowAll = false
	h.Width = cfg.ScreenW

	cfg.ScreenH -= footerRows
	return Model{
		game:          game,
		screen:        core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:        cfg,
		inputFrame:    core.NewInputFrame(),
		keys:          DefaultKeyMap(),
		help:          h,
		logger:        logger,
		releaseTicks:  opts.SoftDropReleaseTicks,
		screenshotDir: dir,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed, "tick_rate", m.config.TickRate)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		// A paused game does not step, so it cannot report the quit itself.
		if m.game.State().Paused {
			m.quitting = true
			return m, tea.Quit
		}
	case core.ActionSoftDrop:
		m.dropIdle = 0
		if m.dropHeld {
			return m, nil
		}
		m.dropHeld = true
	}

	m.inputFrame.Set(action)
	return m, nil
}

// handleResize keeps the running game and only adapts the screen buffer.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height - footerRows
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.game.Resize(m.config.ScreenW, m.config.ScreenH)
	m.gameState = m.game.State()
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.dropHeld && !m.inputFrame.Has(core.ActionSoftDrop) {
		m.dropIdle++
		if m.dropIdle >= m.releaseTicks {
			m.inputFrame.Set(core.ActionSoftDropRelease)
			m.dropHeld = false
			m.dropIdle = 0
		}
	}

	result := m.game.Step(m.inputFrame)
	if result.State.GameOver && !m.gameState.GameOver {
		m.logger.Info("game over", "game", m.game.ID(), "score", result.State.Score)
	}
	m.gameState = result.State
	m.inputFrame.Clear()

	if m.gameState.Quit {
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot writes the current screen as plain text.
func (m *Model) saveScreenshot() {
	if m.screenshotDir == "" {
		m.logger.Warn("screenshot skipped: no home directory")
		return
	}

	m.game.Render(m.screen)

	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		m.logger.Error("screenshot dir", "dir", m.screenshotDir, "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.screenshotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Error("screenshot", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + footerStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(game Game, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, opts),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
