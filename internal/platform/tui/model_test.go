package tui

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/storage"
)

func testMazeConfig() config.MazeConfig {
	cfg := config.DefaultMazeConfig()
	cfg.Seed = config.SeedConfig{Value: 99}
	return cfg
}

func newTestModel(t *testing.T, opts Options) Model {
	t.Helper()
	return NewModel(testMazeConfig(), core.RuntimeConfig{ScreenW: 80, ScreenH: 30}, opts)
}

func press(t *testing.T, m Model, msg tea.KeyMsg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func TestNewModelGeneratesFirstMaze(t *testing.T) {
	m := newTestModel(t, Options{})

	if m.Result().Seed != 99 {
		t.Errorf("seed = %d, expected 99", m.Result().Seed)
	}
	if m.Preset() != "" {
		t.Errorf("preset = %q, expected the config's own ratios", m.Preset())
	}
	if !m.ShowPath() {
		t.Error("route should be shown by default")
	}
}

func TestRuntimeSeedOverridesConfig(t *testing.T) {
	m := NewModel(testMazeConfig(), core.RuntimeConfig{ScreenW: 80, ScreenH: 30, Seed: 7}, Options{})
	if m.Result().Seed != 7 {
		t.Errorf("seed = %d, expected 7", m.Result().Seed)
	}
}

func TestRegenerateKeepsSeed(t *testing.T) {
	m := newTestModel(t, Options{})
	before := m.Result().Snapshot().String()

	m = press(t, m, runeKey('r'))

	if m.Result().Seed != 99 || m.Result().Snapshot().String() != before {
		t.Error("rebuild changed the maze")
	}
	if !strings.Contains(m.Status(), "99") {
		t.Errorf("status = %q", m.Status())
	}
}

func TestNextPresetCycles(t *testing.T) {
	m := newTestModel(t, Options{Preset: config.DifficultyNormal})

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})

	if m.Preset() != config.DifficultyHard {
		t.Errorf("preset = %q, expected hard", m.Preset())
	}

	custom := press(t, newTestModel(t, Options{}), tea.KeyMsg{Type: tea.KeyTab})
	if custom.Preset() != config.DifficultyEasy {
		t.Errorf("preset after custom = %q, expected easy", custom.Preset())
	}
	if m.Result().Seed != 99 {
		t.Error("changing preset should keep the seed")
	}
}

func TestTogglePath(t *testing.T) {
	m := newTestModel(t, Options{})
	m = press(t, m, runeKey('p'))
	if m.ShowPath() {
		t.Error("route still shown after toggle")
	}
}

func TestCopy(t *testing.T) {
	var copied string
	m := newTestModel(t, Options{Clipboard: func(s string) error {
		copied = s
		return nil
	}})

	m = press(t, m, runeKey('c'))

	if copied != m.Result().Snapshot().String() {
		t.Error("clipboard did not receive the grid")
	}
	if !strings.HasPrefix(m.Status(), "copied") {
		t.Errorf("status = %q", m.Status())
	}

	failing := newTestModel(t, Options{Clipboard: func(string) error { return errors.New("no display") }})
	failing = press(t, failing, runeKey('c'))
	if failing.Status() != "copy failed" {
		t.Errorf("status = %q, expected copy failed", failing.Status())
	}

	disabled := press(t, newTestModel(t, Options{}), runeKey('c'))
	if disabled.Status() != "clipboard not available" {
		t.Errorf("status = %q", disabled.Status())
	}
}

func TestStatusExpires(t *testing.T) {
	m := newTestModel(t, Options{})
	m = press(t, m, runeKey('r'))

	next, _ := m.Update(StatusExpiredMsg{ID: m.statusID - 1})
	m = next.(Model)
	if m.Status() == "" {
		t.Error("stale expiry cleared a newer status")
	}

	next, _ = m.Update(StatusExpiredMsg{ID: m.statusID})
	m = next.(Model)
	if m.Status() != "" {
		t.Errorf("status = %q after expiry", m.Status())
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, Options{})
	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("quit returned no command")
	}
	if next.(Model).View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestHistoryDisabledWithoutStore(t *testing.T) {
	m := press(t, newTestModel(t, Options{}), runeKey('h'))
	if m.InHistory() {
		t.Error("history opened without a store")
	}
}

func TestHistoryReplaysSeed(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m := newTestModel(t, Options{Store: store, Source: "tui"})
	m = press(t, m, runeKey('n'))
	if m.Result().Seed == 99 {
		t.Skip("fresh seed collided with the configured one")
	}

	runs, _ := store.RecentRuns(10)
	if len(runs) != 2 || runs[1].Seed != 99 || runs[0].Source != "tui" {
		t.Fatalf("recorded runs = %+v", runs)
	}

	m = press(t, m, runeKey('h'))
	if !m.InHistory() {
		t.Fatal("history did not open")
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.InHistory() {
		t.Error("history still open after selecting a run")
	}
	if m.Result().Seed != 99 {
		t.Errorf("replayed seed = %d, expected 99", m.Result().Seed)
	}
}

func TestHistoryReplayRestoresPreset(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m := newTestModel(t, Options{Store: store, Source: "tui", Preset: config.DifficultyNormal})
	original := m.Result().Snapshot().String()

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.Preset() != config.DifficultyHard {
		t.Fatalf("preset after Tab = %q, expected hard", m.Preset())
	}
	if m.Result().Snapshot().String() == original {
		t.Fatal("hard preset produced the same maze as normal")
	}

	// Newest first: the hard run, then the normal one.
	m = press(t, m, runeKey('h'))
	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.Preset() != config.DifficultyNormal {
		t.Errorf("preset after replay = %q, expected normal", m.Preset())
	}
	if m.Result().Seed != 99 {
		t.Errorf("replayed seed = %d, expected 99", m.Result().Seed)
	}
	if got := m.Result().Snapshot().String(); got != original {
		t.Errorf("replayed maze differs from the recorded one:\n%s\nexpected:\n%s", got, original)
	}

	runs, _ := store.RecentRuns(1)
	if len(runs) != 1 || runs[0].Preset != "normal" {
		t.Errorf("replay recorded as %+v, expected preset normal", runs)
	}
}

func TestReplayCustomRunUsesBaseRatios(t *testing.T) {
	m := newTestModel(t, Options{})
	original := m.Result().Snapshot().String()

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m.replay(storage.Run{Seed: 99, Preset: "custom", Columns: m.Result().Snapshot().Columns(), Rows: m.Result().Snapshot().Rows()})

	if m.Preset() != "" {
		t.Errorf("preset after custom replay = %q, expected none", m.Preset())
	}
	if got := m.Result().Snapshot().String(); got != original {
		t.Error("custom replay did not restore the base config's maze")
	}
}

func TestViewShowsMaze(t *testing.T) {
	m := newTestModel(t, Options{})
	view := m.View()

	if !strings.Contains(view, "seed 99") {
		t.Error("title missing from view")
	}
	if !strings.Contains(view, "P") || !strings.Contains(view, "G") {
		t.Error("player or goal marker missing from view")
	}
}

func TestViewTinyTerminal(t *testing.T) {
	m := NewModel(testMazeConfig(), core.RuntimeConfig{ScreenW: 10, ScreenH: 6}, Options{})
	_ = m.View() // must not panic
}
