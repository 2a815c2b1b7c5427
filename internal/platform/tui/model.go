package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-lightsout/internal/core"
	"github.com/vovakirdan/tui-lightsout/internal/logging"
)

// footerHeight is the number of rows reserved below the game for the help line.
const footerHeight = 1

// Game is the interface the platform drives.
// Implementations are pure simulations: they never touch the terminal.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	SetScreenSize(w, h int)
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       Game
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	altScreen  bool
	quitting   bool

	// screenshotDir receives Ctrl+S captures; empty disables them.
	screenshotDir string
}

// NewModel creates a new Bubble Tea model and resets the game for cfg.
// The bottom row of the terminal is kept for the help line.
func NewModel(game Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = logging.Discard()
	}

	gameCfg := cfg
	gameCfg.ScreenH = gameHeight(cfg.ScreenH)
	game.Reset(gameCfg)

	h := help.New()
	h.Width = cfg.ScreenW

	m := Model{
		game:       game,
		screen:     core.NewScreen(gameCfg.ScreenW, gameCfg.ScreenH),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		keys:       DefaultKeyMap(),
		help:       h,
		logger:     logger,
		altScreen:  true,
	}
	if home, err := os.UserHomeDir(); err == nil {
		m.screenshotDir = filepath.Join(home, ".lightsout", "screenshots")
	}
	return m
}

func gameHeight(screenH int) int {
	return max(screenH-footerHeight, 1)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("game started",
		"game", m.game.ID(),
		"width", m.config.ScreenW,
		"height", m.config.ScreenH,
		"tick_rate", m.config.TickRate,
	)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Quit, fullscreen and screenshots are
// handled here; everything else is queued for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	switch {
	case isQuit:
		m.logger.Info("quit", "clicks", m.gameState.Moves, "won", m.gameState.Won)
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionFullscreen:
		m.altScreen = !m.altScreen
		m.logger.Info("fullscreen toggled", "enabled", m.altScreen)
		if m.altScreen {
			return m, tea.EnterAltScreen
		}
		return m, tea.ExitAltScreen
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize re-lays out the board without resetting the puzzle.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width

	h := gameHeight(msg.Height)
	m.screen.Resize(msg.Width, h)
	m.game.SetScreenSize(msg.Width, h)

	m.logger.Debug("window resized", "width", msg.Width, "height", msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.logEvents(result.Events)

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// logEvents writes one record per game event.
func (m Model) logEvents(events []core.Event) {
	for _, e := range events {
		switch e.Kind {
		case core.EventWon:
			m.logger.Info("board cleared",
				"seed", e.Seed,
				"attempts", e.Attempts,
				"clicks", e.Moves,
				"elapsed", fmt.Sprintf("%.2fs", e.Elapsed),
			)
		default:
			m.logger.Info(e.Kind.String(),
				"seed", e.Seed,
				"attempts", e.Attempts,
				"size", e.Size,
				"strength", e.Strength,
			)
		}
	}
}

// saveScreenshot saves the current screen to a text file.
func (m *Model) saveScreenshot() {
	if m.screenshotDir == "" {
		return
	}
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.screenshotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
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
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for game.
func Run(game Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Mouse clicks press lights
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run game: %w", err)
	}
	return nil
}
