package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-maze/internal/storage"
)

func seededStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	store.SaveRun(storage.Run{Seed: 1, Preset: "easy", Columns: 21, Rows: 13})
	store.SaveRun(storage.Run{Seed: 2, Preset: "hard", Columns: 21, Rows: 13})
	store.SaveRun(storage.Run{Seed: 3, Preset: "easy", Columns: 21, Rows: 13})
	return store
}

func updateHistory(t *testing.T, m HistoryModel, msg tea.Msg) (HistoryModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	hm, ok := next.(HistoryModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return hm, cmd
}

func TestHistoryTabsFilterByPreset(t *testing.T) {
	m := NewHistoryModel(seededStore(t), 100, 30)

	if m.Tab() != "all" || len(m.Runs()) != 3 {
		t.Fatalf("tab %q lists %d runs, expected all/3", m.Tab(), len(m.Runs()))
	}

	m, _ = updateHistory(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.Tab() != "easy" || len(m.Runs()) != 2 {
		t.Errorf("tab %q lists %d runs, expected easy/2", m.Tab(), len(m.Runs()))
	}

	m, _ = updateHistory(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	m, _ = updateHistory(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.Tab() != "custom" || len(m.Runs()) != 0 {
		t.Errorf("tab %q lists %d runs, expected custom/0", m.Tab(), len(m.Runs()))
	}
}

func TestHistorySelectNewestRun(t *testing.T) {
	m := NewHistoryModel(seededStore(t), 100, 30)

	m, cmd := updateHistory(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.Selected() == nil || m.Selected().Seed != 3 {
		t.Fatalf("selected = %+v, expected seed 3", m.Selected())
	}
	if cmd != nil {
		t.Error("embedded table should not quit the program")
	}
}

func TestHistoryStandaloneQuitsOnBack(t *testing.T) {
	m := NewHistoryModel(seededStore(t), 60, 20)
	m.standalone = true

	m, cmd := updateHistory(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	if !m.IsGoingBack() || cmd == nil {
		t.Error("back should end a standalone history program")
	}
}

func TestHistoryViewWithoutRuns(t *testing.T) {
	m := NewHistoryModel(nil, 60, 20)
	if len(m.Runs()) != 0 {
		t.Error("nil store should list nothing")
	}
	if m.View() == "" {
		t.Error("empty history should still render")
	}
}
