// Package tui provides the Bubble Tea integration for term2048.
// The game is turn-based: every accepted key maps to one move, and the
// view re-renders after each message. There is no tick loop.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/term2048/internal/config"
	"github.com/vovakirdan/term2048/internal/core"
	"github.com/vovakirdan/term2048/internal/t2048"
)

// footerHeight is the number of rows reserved below the board for help.
const footerHeight = 1

// Model is the Bubble Tea model for a game session.
type Model struct {
	session  *t2048.Session
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	palette  t2048.Palette
	quitting bool
}

// NewModel creates a model for a fresh session.
func NewModel(cfg core.RuntimeConfig, theme config.ThemeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		session: t2048.NewSession(cfg.Seed),
		screen:  core.NewScreen(cfg.ScreenW, core.Max(cfg.ScreenH-footerHeight, 1)),
		keys:    DefaultKeyMap(),
		help:    h,
		palette: theme.Palette(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, core.Max(msg.Height-footerHeight, 1))
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input: directions become moves, restart is
// only honored after game over, and the session itself rejects moves that
// change nothing.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionRestart:
		if m.session.Over() {
			m.session.Restart()
		}

	case core.ActionUp:
		m.session.Move(t2048.DirUp)
	case core.ActionDown:
		m.session.Move(t2048.DirDown)
	case core.ActionLeft:
		m.session.Move(t2048.DirLeft)
	case core.ActionRight:
		m.session.Move(t2048.DirRight)
	}

	return m, nil
}

// View renders the board and the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.session.Render(m.screen, m.palette)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for one game session.
func Run(cfg core.RuntimeConfig, theme config.ThemeConfig) error {
	p := tea.NewProgram(
		NewModel(cfg, theme),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
