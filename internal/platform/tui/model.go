package tui

import (
	"image/color"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gravity-runner/internal/core"
	"github.com/vovakirdan/gravity-runner/internal/platform/host"
)

// statusRows is the number of rows reserved below the playfield.
const statusRows = 1

var (
	hudFG    = toRGBA(core.ColorHUD)
	statusBG = color.RGBA{R: 0x11, G: 0x18, B: 0x27, A: 0xff}
)

// Model is the Bubble Tea model for a running game. The raster is downsampled
// into half-block cells every frame; the HUD is repeated on a status line so
// it stays readable at small terminal sizes.
type Model struct {
	session   *host.Session
	screen    *core.Screen
	renderer  *lipgloss.Renderer
	keyMapper *KeyMapper
	tickRate  int
	shotDir   string
	notice    string
	gameState core.GameState

	quitting       bool
	backToMenu     bool
	restartPending bool
}

func toRGBA(c color.NRGBA) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// NewModel creates a model driving session. Screenshots go to shotDir.
func NewModel(session *host.Session, cfg core.RuntimeConfig, renderer *lipgloss.Renderer, shotDir string) Model {
	return Model{
		session:   session,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		renderer:  renderer,
		keyMapper: NewKeyMapper(),
		tickRate:  cfg.TickRate,
		shotDir:   shotDir,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The simulation is resolution independent, only the cell buffer changes.
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.session.Stop()
		return m, tea.Quit
	}

	switch action {
	case core.ActionFlip:
		m.session.Flip()
	case core.ActionPause:
		if !m.gameState.GameOver {
			m.session.TogglePause()
		}
	case core.ActionRestart:
		// The running tick loop picks this up on its next frame.
		if m.gameState.GameOver {
			m.restartPending = true
		}
	case core.ActionBack:
		if m.gameState.GameOver || m.session.Paused() {
			m.backToMenu = true
			m.session.Stop()
		}
	}
	return m, nil
}

// handleTick runs one frame and re-arms the tick while the driver runs.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if !m.session.Running() {
		return m, nil
	}
	if m.restartPending {
		m.restartPending = false
		if err := m.session.Restart(); err == nil {
			m.notice = ""
		}
	}
	m.gameState = m.session.Frame(tickTime(msg))
	return m, tickCmd(m.tickRate)
}

// saveScreenshot writes the current frame as PNG.
func (m *Model) saveScreenshot() {
	path, err := m.session.Screenshot(m.shotDir)
	if err != nil {
		m.notice = "screenshot failed"
		return
	}
	m.notice = "saved " + path
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	field := core.NewRect(0, 0, m.screen.Width(), m.screen.Height()-statusRows)
	m.screen.Blit(m.session.Canvas(), field)

	status := m.session.Status()
	if m.gameState.GameOver {
		status = append(status, "R: restart  B: menu")
	} else if m.session.Paused() {
		status = append(status, keyHints(m.keyMapper.GameHelp()))
	}
	if m.notice != "" {
		status = append(status, m.notice)
	}
	m.screen.DrawText(0, m.screen.Height()-1, statusLine(status, m.screen.Width()), hudFG, statusBG)

	return RenderScreen(m.screen, m.renderer)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}
