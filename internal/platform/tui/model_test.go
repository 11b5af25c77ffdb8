package tui

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gravity-runner/internal/config"
	"github.com/vovakirdan/gravity-runner/internal/core"
	"github.com/vovakirdan/gravity-runner/internal/games/gravity"
	"github.com/vovakirdan/gravity-runner/internal/identity"
	"github.com/vovakirdan/gravity-runner/internal/platform/host"
	"github.com/vovakirdan/gravity-runner/internal/storage"
)

var testRuntime = core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}

func newHostSession(t *testing.T, ch gravity.Character, preset config.DifficultyPreset) *host.Session {
	t.Helper()
	cfg := config.DefaultRunnerConfig()
	config.ApplyPreset(&cfg, preset)
	s, err := host.New(host.Options{
		Config:    cfg,
		Preset:    preset,
		Character: ch,
		Runtime:   testRuntime,
		Gate:      identity.Gate{CanPlay: true, DisplayName: "tester"},
	})
	if err != nil {
		t.Fatalf("host.New() failed: %v", err)
	}
	return s
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	s := newHostSession(t, gravity.DefaultCharacter(), config.DifficultyNormal)
	return NewModel(s, testRuntime, plainRenderer(), t.TempDir())
}

func update(t *testing.T, m tea.Model, msg tea.Msg) (tea.Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	if next == nil {
		t.Fatal("Update returned a nil model")
	}
	return next, cmd
}

func TestModelTickRendersStatus(t *testing.T) {
	m := newTestModel(t)
	if m.Init() == nil {
		t.Fatal("Init should start the tick loop")
	}

	next, cmd := update(t, m, TickMsg(time.Unix(100, 0)))
	if cmd == nil {
		t.Error("tick should be re-armed while the run is going")
	}

	view := next.View()
	if lines := strings.Split(view, "\n"); len(lines) != testRuntime.ScreenH {
		t.Errorf("View() has %d rows, expected %d", len(lines), testRuntime.ScreenH)
	}
	if !strings.Contains(view, "Score: 0") {
		t.Errorf("status line should show the score, got %q", view)
	}
}

func TestModelPauseAndBack(t *testing.T) {
	var m tea.Model = newTestModel(t)

	// Back is ignored while the run is live.
	m, _ = update(t, m, runeKey('b'))
	if m.(Model).BackToMenu() {
		t.Fatal("back should be ignored during a live run")
	}

	m, _ = update(t, m, runeKey('p'))
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("paused run should say so on the status line")
	}

	m, _ = update(t, m, runeKey('b'))
	model := m.(Model)
	if !model.BackToMenu() {
		t.Fatal("back should be accepted while paused")
	}
	if model.session.Running() {
		t.Error("leaving to the menu should stop the driver")
	}

	if _, cmd := update(t, model, TickMsg(time.Unix(100, 0))); cmd != nil {
		t.Error("a stopped session should not re-arm the tick")
	}
}

func TestModelRestartIgnoredDuringRun(t *testing.T) {
	m := newTestModel(t)
	runID := m.session.RunID()

	next, cmd := update(t, m, runeKey('r'))
	if cmd != nil {
		t.Error("restart during a live run should not schedule anything")
	}
	if next.(Model).session.RunID() != runID {
		t.Error("restart during a live run should keep the run id")
	}
}

// tickUntilOver feeds 40ms ticks until the run ends. Standing still always
// ends a run: the first gate opens against the ceiling.
func tickUntilOver(t *testing.T, m tea.Model, now time.Time) (tea.Model, time.Time) {
	t.Helper()
	for i := 0; i < 20000; i++ {
		var cmd tea.Cmd
		m, cmd = update(t, m, TickMsg(now))
		if cmd == nil {
			t.Fatal("tick loop stopped before the run ended")
		}
		now = now.Add(40 * time.Millisecond)
		if m.(Model).gameState.GameOver {
			return m, now
		}
	}
	t.Fatal("run did not end")
	return m, now
}

func TestModelRestartKeepsSingleTickLoop(t *testing.T) {
	var m tea.Model = newTestModel(t)
	m, now := tickUntilOver(t, m, time.Unix(100, 0))
	runID := m.(Model).session.RunID()

	m, cmd := update(t, m, runeKey('r'))
	if cmd != nil {
		t.Fatal("restart key should not start a second tick loop")
	}
	if m.(Model).session.RunID() != runID {
		t.Fatal("restart should wait for the next tick")
	}

	m, cmd = update(t, m, TickMsg(now))
	if cmd == nil {
		t.Fatal("the existing tick loop should keep running after restart")
	}
	model := m.(Model)
	if model.session.RunID() == runID {
		t.Error("tick should perform the pending restart")
	}
	if model.gameState.GameOver {
		t.Error("restarted run should be live")
	}

	// A second tick must not restart again.
	restarted := model.session.RunID()
	m, _ = update(t, model, TickMsg(now.Add(40*time.Millisecond)))
	if m.(Model).session.RunID() != restarted {
		t.Error("restart should happen once per key press")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t)
	next, cmd := update(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return tea.Quit")
	}
	if !next.(Model).IsQuitting() {
		t.Error("IsQuitting should be set")
	}
	if next.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelScreenshot(t *testing.T) {
	m := newTestModel(t)
	next, _ := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	notice := next.(Model).notice
	if !strings.HasPrefix(notice, "saved ") {
		t.Fatalf("notice = %q, expected a saved path", notice)
	}
	if filepath.Ext(notice) != ".png" {
		t.Errorf("screenshot should be a PNG, got %q", notice)
	}
}

func TestSessionModelFlow(t *testing.T) {
	var started []config.DifficultyPreset
	opts := SessionOptions{
		Start: func(ch gravity.Character, preset config.DifficultyPreset, rt core.RuntimeConfig) (*host.Session, error) {
			started = append(started, preset)
			return newHostSession(t, ch, preset), nil
		},
		Player:   "tester",
		Preset:   config.DifficultyNormal,
		Runtime:  testRuntime,
		Renderer: plainRenderer(),
		ShotDir:  t.TempDir(),
	}

	var m tea.Model = NewSessionModel(opts)
	if !strings.Contains(m.View(), "difficulty: < normal >") {
		t.Fatalf("menu should preselect the normal preset:\n%s", m.View())
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("starting a run should start the tick loop")
	}
	if m.(SessionModel).mode != modeGame {
		t.Fatal("enter should start a run")
	}
	if len(started) != 1 || started[0] != config.DifficultyHard {
		t.Fatalf("started presets = %v, expected [hard]", started)
	}

	m, _ = update(t, m, runeKey('p'))
	m, _ = update(t, m, runeKey('b'))
	if m.(SessionModel).mode != modeMenu {
		t.Fatal("back from a paused run should return to the menu")
	}
	if !strings.Contains(m.View(), "difficulty: < hard >") {
		t.Error("menu should remember the last preset")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.(SessionModel).mode != modeScores {
		t.Fatal("tab should open the scoreboard")
	}
	if !strings.Contains(m.View(), "No runs recorded yet.") {
		t.Error("scoreboard without a store should be empty")
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.(SessionModel).mode != modeMenu {
		t.Fatal("esc should leave the scoreboard")
	}

	if _, cmd := update(t, m, runeKey('q')); cmd == nil {
		t.Error("q in the menu should quit")
	}
}

func TestSessionModelStartError(t *testing.T) {
	opts := SessionOptions{
		Start: func(gravity.Character, config.DifficultyPreset, core.RuntimeConfig) (*host.Session, error) {
			return nil, errors.New("no runner today")
		},
		Runtime:  testRuntime,
		Renderer: plainRenderer(),
	}

	m, cmd := update(t, NewSessionModel(opts), tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("failed start should not schedule ticks")
	}
	sm := m.(SessionModel)
	if sm.mode != modeMenu || sm.Err() == nil {
		t.Fatal("failed start should stay on the menu with an error")
	}
	if !strings.Contains(sm.View(), "no runner today") {
		t.Error("menu should show the start error")
	}
}

func TestScoreboardWithStore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	for i, score := range []int{5, 40, 12} {
		_, err := store.SaveRun(storage.RunRecord{
			RunID:     storage.NewRunID(),
			GameID:    scoreboardGameID,
			Player:    []string{"ann", "bo", "cy"}[i],
			Character: "cat",
			Preset:    "normal",
			Score:     score,
		})
		if err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	m := NewScoreboardModel(store, 120, 30, plainRenderer())
	runs := m.Runs()
	if len(runs) != 3 {
		t.Fatalf("Runs() = %d entries, expected 3", len(runs))
	}
	if runs[0].Player != "bo" || runs[0].Score != 40 {
		t.Errorf("best run should come first, got %+v", runs[0])
	}

	rows := leaderboardRows(runs)
	if rows[0][0] != "#1" || rows[0][1] != "bo" || rows[0][3] != "40" {
		t.Errorf("first row = %v", rows[0])
	}

	view := m.View()
	if !strings.Contains(view, "runs   3") || !strings.Contains(view, "best   40") {
		t.Errorf("sidebar should show aggregate stats:\n%s", view)
	}

	next, _ := m.Update(runeKey('q'))
	if !next.(ScoreboardModel).IsQuitting() {
		t.Error("q should quit from the scoreboard")
	}
}
