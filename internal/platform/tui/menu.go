package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gravity-runner/internal/config"
	"github.com/vovakirdan/gravity-runner/internal/core"
	"github.com/vovakirdan/gravity-runner/internal/games/gravity"
)

var presets = []config.DifficultyPreset{
	config.DifficultyEasy,
	config.DifficultyNormal,
	config.DifficultyHard,
	config.DifficultyFixed,
}

// MenuModel is the start screen: pick a character and a difficulty preset.
type MenuModel struct {
	characters []gravity.Character
	cursor     int
	preset     int
	player     string
	best       int
	width      int
	height     int
	config     core.RuntimeConfig
	renderer   *lipgloss.Renderer
	keyMapper  *KeyMapper

	quitting       bool
	selected       *gravity.Character // Set when user starts a run
	openScoreboard bool               // True if user pressed Tab for scoreboard
}

// NewMenuModel creates a new menu model with preset preselected.
func NewMenuModel(cfg core.RuntimeConfig, preset config.DifficultyPreset, player string, best int, r *lipgloss.Renderer) MenuModel {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	m := MenuModel{
		characters: gravity.Characters(),
		player:     player,
		best:       best,
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
		config:     cfg,
		renderer:   r,
		keyMapper:  NewKeyMapper(),
	}
	for i, p := range presets {
		if p == preset {
			m.preset = i
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.characters)-1 {
			m.cursor++
		}

	case MenuActionLeft:
		m.preset = (m.preset + len(presets) - 1) % len(presets)

	case MenuActionRight:
		m.preset = (m.preset + 1) % len(presets)

	case MenuActionSelect:
		selected := m.characters[m.cursor]
		m.selected = &selected

	case MenuActionScoreboard:
		m.openScoreboard = true
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := m.renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffd166"))
	dimStyle := m.renderer.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("G R A V I T Y   R U N N E R"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(fmt.Sprintf("player: %s   best: %d", m.player, m.best), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Choose your runner", m.width))
	b.WriteString("\n\n")

	for i, ch := range m.characters {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		swatch := m.renderer.NewStyle().Foreground(lipgloss.Color(hexColor(toRGBA(ch.Tint)))).Render("██")
		b.WriteString(centerText(fmt.Sprintf("%s%s %-8s", cursor, swatch, ch.Name), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(fmt.Sprintf("difficulty: < %s >", m.Preset()), m.width))
	b.WriteString("\n\n")

	controls := "Up/Down: Runner  |  Left/Right: Difficulty  |  Enter: Run  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(dimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen character, or nil if none selected.
func (m MenuModel) Selected() *gravity.Character {
	return m.selected
}

// Preset returns the chosen difficulty preset.
func (m MenuModel) Preset() config.DifficultyPreset {
	return presets[m.preset]
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}
