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
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2040/internal/core"
	"github.com/vovakirdan/tui-2040/internal/games/t2040"
	"github.com/vovakirdan/tui-2040/internal/storage"
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model running one engine.
type Model struct {
	engine     *t2040.Engine
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	inputFrame core.InputFrame
	now        func() time.Time

	roundStart time.Time
	recorded   bool // Whether the current round has been stored
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given engine.
// store may be nil, in which case rounds are not recorded.
func NewModel(engine *t2040.Engine, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	// One row is kept for the help line.
	screenH := max(cfg.ScreenH-1, 1)

	return Model{
		engine:     engine,
		screen:     core.NewScreen(cfg.ScreenW, screenH),
		store:      store,
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		logger:     logger,
		inputFrame: core.NewInputFrame(),
		now:        time.Now,
	}
}

// Init resets the engine and starts the frame loop.
func (m Model) Init() tea.Cmd {
	m.engine.Reset(m.config)
	m.engine.Resize(m.screen.Width(), m.screen.Height())
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
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events. The round in progress is kept.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 1))
	m.engine.Resize(m.screen.Width(), m.screen.Height())
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.engine.Step(m.inputFrame)
	m = m.handleEvents(result)

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// handleEvents reacts to what happened during a step.
func (m Model) handleEvents(result core.StepResult) Model {
	for _, ev := range result.Events {
		switch ev.Kind {
		case core.EventRoundStart:
			m.roundStart = m.now()
			m.recorded = false

		case core.EventRoundOver:
			reason := storage.EndNoMoves
			if m.engine.Round() == t2040.RoundBoardFull {
				reason = storage.EndBoardFull
			}
			m = m.recordRound(ev.Value, result.State.Moves, reason)

		case core.EventRoundQuit:
			// A round left before the first move is not worth a record.
			if result.State.Moves > 0 {
				m = m.recordRound(ev.Value, result.State.Moves, storage.EndQuit)
			}
		}
	}
	return m
}

// recordRound stores the finished round once.
func (m Model) recordRound(largest, moves int, reason storage.EndReason) Model {
	if m.recorded || m.store == nil {
		return m
	}
	m.recorded = true

	round := storage.Round{
		LargestTile: largest,
		Moves:       moves,
		Duration:    m.now().Sub(m.roundStart),
		Reason:      reason,
	}
	if _, err := m.store.SaveRound(round); err != nil {
		m.logger.Warn("round not recorded", "error", err)
		return m
	}
	m.logger.Info("round recorded", "largest", largest, "moves", moves, "reason", reason)
	return m
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.engine.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot not saved", "error", err)
		return
	}
	dir := filepath.Join(home, ".t2040", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot not saved", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("t2040_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot not saved", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.engine.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for the given engine.
func Run(engine *t2040.Engine, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(engine, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
