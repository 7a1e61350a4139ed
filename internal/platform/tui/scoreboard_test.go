package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-driller/internal/registry"
	"github.com/vovakirdan/tui-driller/internal/storage"
)

func scoreboardStep(t *testing.T, m ScoreboardModel, msg tea.Msg) ScoreboardModel {
	t.Helper()
	next, _ := m.Update(msg)
	sb, ok := next.(ScoreboardModel)
	if !ok {
		t.Fatalf("Update() returned %T", next)
	}
	return sb
}

func TestScoreboardSwitchesMode(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	for _, e := range []storage.ScoreEntry{
		{GameID: "driller", Player: "mole", Depth: 41, Stage: 2},
		{GameID: "driller_wrap", Player: "worm", Depth: 93, Stage: 5},
	} {
		if _, err := store.SaveScore(e); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	m := NewScoreboardModel(store, 100, 30)
	if m.ModeID() != "driller" {
		t.Fatalf("ModeID() = %q, expected driller", m.ModeID())
	}
	info, _ := registry.Info("driller")
	view := m.View()
	for _, want := range []string{"DEEPEST RUNS", "[" + info.Title + "]", "mole", "1 runs"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}

	m = scoreboardStep(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.ModeID() != "driller_wrap" {
		t.Fatalf("after tab ModeID() = %q, expected driller_wrap", m.ModeID())
	}
	if view := m.View(); !strings.Contains(view, "worm") || strings.Contains(view, "mole") {
		t.Errorf("wrap view should list only wrap runs:\n%s", view)
	}

	m = scoreboardStep(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.ModeID() != "driller" {
		t.Errorf("tab should cycle back, ModeID() = %q", m.ModeID())
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 20)
	if !strings.Contains(m.View(), "No runs recorded yet") {
		t.Errorf("view = %q", m.View())
	}

	m = scoreboardStep(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.IsGoingBack() || m.IsQuitting() {
		t.Error("esc should go back without quitting")
	}
	if m.View() != "" {
		t.Error("view should be empty once leaving")
	}
}

func TestScoreboardQuit(t *testing.T) {
	m := scoreboardStep(t, NewScoreboardModel(nil, 60, 20), runeKey("q"))
	if !m.IsQuitting() {
		t.Error("q should quit")
	}
}
