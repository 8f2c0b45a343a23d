package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/storage"
)

func TestScoreboardEmpty(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	defer store.Close()

	m := NewScoreboardModel(store, 80, 24)
	if !strings.Contains(m.View(), "No scores recorded yet") {
		t.Errorf("expected empty message:\n%s", m.View())
	}
}

func TestScoreboardNilStore(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24)
	if !strings.Contains(m.View(), "unavailable") {
		t.Errorf("expected unavailable message:\n%s", m.View())
	}
}

func TestScoreboardRows(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	defer store.Close()

	store.SaveScore(storage.ScoreEntry{Score: 300, MaxTile: 64, Moves: 90, Difficulty: "hard"})
	store.SaveScore(storage.ScoreEntry{Score: 500, MaxTile: 128, Moves: 120})

	m := NewScoreboardModel(store, 80, 24)
	if len(m.scores) != 2 {
		t.Fatalf("loaded %d scores, want 2", len(m.scores))
	}

	rows := scoreRows(m.scores)
	if rows[0][0] != "#1" || rows[0][1] != "500" || rows[0][2] != "128" || rows[0][4] != "-" {
		t.Errorf("first row = %v", rows[0])
	}
	if rows[1][1] != "300" || rows[1][4] != "hard" {
		t.Errorf("second row = %v", rows[1])
	}

	view := m.View()
	if !strings.Contains(view, "Games: 2") || !strings.Contains(view, "Best: 500") {
		t.Errorf("stats line missing:\n%s", view)
	}
}

func TestScoreboardKeys(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24)

	next, _ := m.Update(runeKey('?'))
	m = next.(ScoreboardModel)
	if !m.help.ShowAll {
		t.Error("? should toggle full help")
	}

	next, _ = m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(ScoreboardModel)
	if m.width != 120 || m.help.Width != 120 {
		t.Error("window size should update layout")
	}

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Error("q should quit")
	}
	if next.(ScoreboardModel).View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText = %q, want %q", got, "  ab")
	}
	if got := centerText("toolong", 4); got != "toolong" {
		t.Errorf("centerText should not trim, got %q", got)
	}
}
