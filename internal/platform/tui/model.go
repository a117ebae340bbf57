package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snake-tui/internal/core"
	"github.com/vovakirdan/snake-tui/internal/snake"
)

// Model is the Bubble Tea model that runs one game session. It owns the
// fixed-tick scheduler lifecycle and maps key presses to intents; the
// controller is the only mutator of game state.
type Model struct {
	ctrl     *snake.Controller
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	ticking  bool // Whether a tick command is in flight
	quitting bool
}

// NewModel creates a model for the given controller.
// The bottom terminal row is reserved for the help line.
func NewModel(ctrl *snake.Controller, cfg core.RuntimeConfig) Model {
	return Model{
		ctrl:   ctrl,
		screen: core.NewScreen(cfg.ScreenW, core.Max(cfg.ScreenH-1, 1)),
		keys:   DefaultKeyMap(),
		help:   help.New(),
	}
}

// Init initializes the model. The scheduler starts on the start intent,
// not here: the pre-start screen needs no ticks.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, core.Max(msg.Height-1, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey maps a key press to an intent and dispatches it.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	in := m.keys.Intent(msg)
	if in == core.IntentQuit {
		m.quitting = true
		return m, tea.Quit
	}

	m.ctrl.Apply(in)

	// Starting (or restarting after reset+start) admits the scheduler.
	if m.ctrl.Ticking() && !m.ticking {
		m.ticking = true
		return m, tickCmd(m.ctrl.Interval())
	}

	return m, nil
}

// handleTick advances the simulation and re-arms the scheduler while the
// controller still wants ticks. Game over drops the command chain, which
// deterministically cancels the timer.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.ticking {
		// Orphaned tick after cancellation: no-op.
		return m, nil
	}

	m.ctrl.Tick()

	if !m.ctrl.Ticking() {
		m.ticking = false
		return m, nil
	}
	return m, tickCmd(m.ctrl.Interval())
}

// saveScreenshot dumps the current screen buffer to a text file.
func (m *Model) saveScreenshot() {
	drawGame(m.screen, m.ctrl.Snapshot())

	dir := filepath.Join(os.Getenv("HOME"), ".snake-tui", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("snake_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current snapshot plus a help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	drawGame(m.screen, m.ctrl.Snapshot())

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(ctrl *snake.Controller, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(ctrl, cfg),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
