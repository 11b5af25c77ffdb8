package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gravity-runner/internal/config"
	"github.com/vovakirdan/gravity-runner/internal/core"
	"github.com/vovakirdan/gravity-runner/internal/games/gravity"
	"github.com/vovakirdan/gravity-runner/internal/platform/host"
)

// StartFunc builds a host session for a new run.
type StartFunc func(ch gravity.Character, preset config.DifficultyPreset, rt core.RuntimeConfig) (*host.Session, error)

type screenMode int

const (
	modeMenu screenMode = iota
	modeScores
	modeGame
)

// SessionOptions configure the menu -> game -> menu flow.
type SessionOptions struct {
	Start    StartFunc
	Board    Leaderboard // may be nil
	Player   string
	Preset   config.DifficultyPreset
	Runtime  core.RuntimeConfig
	Renderer *lipgloss.Renderer
	ShotDir  string
}

// SessionModel manages the full session flow: menu -> game -> menu.
// It is the top-level model for both local and SSH play.
type SessionModel struct {
	opts   SessionOptions
	config core.RuntimeConfig
	mode   screenMode
	menu   MenuModel
	scores ScoreboardModel
	game   Model
	err    error

	quitting bool
}

// NewSessionModel creates a session starting at the menu.
func NewSessionModel(opts SessionOptions) SessionModel {
	m := SessionModel{opts: opts, config: opts.Runtime}
	m.menu = m.newMenu(opts.Preset)
	return m
}

func (m SessionModel) newMenu(preset config.DifficultyPreset) MenuModel {
	return NewMenuModel(m.config, preset, m.opts.Player, m.bestScore(), m.opts.Renderer)
}

func (m SessionModel) bestScore() int {
	if m.opts.Board == nil {
		return 0
	}
	stats, err := m.opts.Board.Stats(scoreboardGameID)
	if err != nil || stats == nil {
		return 0
	}
	return stats.HighScore
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.mode {
	case modeGame:
		return m.updateGame(msg)
	case modeScores:
		return m.updateScores(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if menu, ok := next.(MenuModel); ok {
		m.menu = menu
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		m.scores = NewScoreboardModel(m.opts.Board, m.config.ScreenW, m.config.ScreenH, m.opts.Renderer)
		m.mode = modeScores
		m.menu = m.newMenu(m.menu.Preset())
		return m, nil

	case m.menu.Selected() != nil:
		ch := *m.menu.Selected()
		preset := m.menu.Preset()
		session, err := m.opts.Start(ch, preset, m.config)
		if err != nil {
			m.err = err
			m.menu = m.newMenu(preset)
			return m, nil
		}
		m.err = nil
		m.opts.Preset = preset
		m.game = NewModel(session, m.config, m.opts.Renderer, m.opts.ShotDir)
		m.mode = modeGame
		return m, m.game.Init()
	}

	return m, cmd
}

// updateScores handles updates when showing the leaderboard.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	if scores, ok := next.(ScoreboardModel); ok {
		m.scores = scores
	}

	switch {
	case m.scores.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.scores.IsGoingBack():
		m.mode = modeMenu
		return m, nil
	}
	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if game, ok := next.(Model); ok {
		m.game = game
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.BackToMenu() {
		m.mode = modeMenu
		m.menu = m.newMenu(m.opts.Preset)
		return m, nil
	}
	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.mode {
	case modeGame:
		return m.game.View()
	case modeScores:
		return m.scores.View()
	}

	view := m.menu.View()
	if m.err != nil {
		errStyle := m.menu.renderer.NewStyle().Foreground(lipgloss.Color("#ef476f"))
		view += "\n" + centerText(errStyle.Render(m.err.Error()), m.config.ScreenW)
	}
	return view
}

// Err returns the last error from starting a run.
func (m SessionModel) Err() error {
	return m.err
}

// Run starts a local Bubble Tea program for the session flow.
func Run(opts SessionOptions) error {
	p := tea.NewProgram(
		NewSessionModel(opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)
	_, err := p.Run()
	return err
}
