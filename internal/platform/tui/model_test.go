package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/game"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42}
}

func step(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		if !ok {
			t.Fatalf("Update returned %T, want Model", next)
		}
	}
	return m
}

// playUntilOver cycles through all directions until the game ends.
func playUntilOver(t *testing.T, m Model) Model {
	t.Helper()
	keys := []tea.KeyMsg{
		{Type: tea.KeyLeft}, {Type: tea.KeyDown}, {Type: tea.KeyRight}, {Type: tea.KeyUp},
	}
	for i := 0; i < 20000 && !m.gameState.GameOver; i++ {
		m = step(t, m, keys[i%len(keys)], TickMsg{})
	}
	if !m.gameState.GameOver {
		t.Fatal("game did not end")
	}
	return m
}

func TestModelMovesOnTick(t *testing.T) {
	m := NewModel(game.New(), nil, nil, testRuntime())

	before := m.game.Engine().Moves()
	m = step(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.game.Engine().Moves() != before {
		t.Error("key press should not move before the tick")
	}

	// Find a direction that changes the fresh board.
	for _, k := range []tea.KeyType{tea.KeyLeft, tea.KeyRight, tea.KeyUp, tea.KeyDown} {
		m = step(t, m, tea.KeyMsg{Type: k}, TickMsg{})
		if m.game.Engine().Moves() > before {
			break
		}
	}
	if m.game.Engine().Moves() == before {
		t.Error("expected at least one accepted move")
	}
	if m.inputFrame.Has(core.ActionLeft) || m.inputFrame.Has(core.ActionDown) {
		t.Error("input frame should be cleared after a tick")
	}
	if len(m.moveQueue) != 0 {
		t.Errorf("queue holds %d moves after their ticks", len(m.moveQueue))
	}
}

func TestModelAppliesMovesInPressOrder(t *testing.T) {
	m := NewModel(game.New(), nil, nil, testRuntime())

	m = step(t, m, tea.KeyMsg{Type: tea.KeyLeft}, tea.KeyMsg{Type: tea.KeyUp})
	if len(m.moveQueue) != 2 {
		t.Fatalf("queued %d moves, want 2", len(m.moveQueue))
	}

	ref := game.New()
	ref.Reset(gameConfig(testRuntime()))

	for _, a := range []core.Action{core.ActionLeft, core.ActionUp} {
		m = step(t, m, TickMsg{})

		in := core.NewInputFrame()
		in.Set(a)
		ref.Step(in)

		if m.game.Engine().Board() != ref.Engine().Board() {
			t.Fatalf("after %s board = %v, want %v", a, m.game.Engine().Board(), ref.Engine().Board())
		}
	}
	if len(m.moveQueue) != 0 {
		t.Errorf("queue holds %d moves, want 0", len(m.moveQueue))
	}
}

func TestModelMoveQueueLimit(t *testing.T) {
	m := NewModel(game.New(), nil, nil, testRuntime())

	for i := 0; i < maxQueuedMoves+3; i++ {
		m = step(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	if len(m.moveQueue) != maxQueuedMoves {
		t.Errorf("queued %d moves, want %d", len(m.moveQueue), maxQueuedMoves)
	}
}

func TestModelScreenshot(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	m := NewModel(game.New(), nil, nil, testRuntime())
	m = step(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	entries, err := os.ReadDir(filepath.Join(home, ".t2048", "screenshots"))
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("found %d screenshots, want 1", len(entries))
	}

	data, err := os.ReadFile(filepath.Join(home, ".t2048", "screenshots", entries[0].Name()))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "Score") {
		t.Errorf("screenshot does not contain the HUD: %q", data)
	}
	if m.quitting || len(m.moveQueue) != 0 {
		t.Error("screenshot key should not change game input")
	}
}

func TestModelViewShowsKeyHelp(t *testing.T) {
	m := NewModel(game.New(), nil, nil, testRuntime())

	view := m.View()
	for _, want := range []string{"arrows/wasd/hjkl", "move", "p/esc", "ctrl+s", "screenshot", "q/ctrl+c", "quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing help text %q", want)
		}
	}
}

func TestModelHighScore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	defer store.Close()

	if _, err := store.SaveScore(storage.ScoreEntry{Score: 4, MaxTile: 2, Difficulty: "normal"}); err != nil {
		t.Fatalf("SaveScore: %v", err)
	}

	m := NewModel(game.New(), store, nil, testRuntime())
	if m.highScore != 4 {
		t.Fatalf("highScore = %d, want 4", m.highScore)
	}
	if !strings.Contains(m.View(), "High: 4") {
		t.Error("view should show the stored high score")
	}

	m = playUntilOver(t, m)
	snap := m.game.Snapshot()
	if m.highScore != snap.Score {
		t.Errorf("highScore = %d, want %d", m.highScore, snap.Score)
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(game.New(), nil, nil, testRuntime())

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if next.(Model).View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelResizeKeepsBoard(t *testing.T) {
	m := NewModel(game.New(), nil, nil, testRuntime())
	board := m.game.Engine().Board()

	m = step(t, m, tea.WindowSizeMsg{Width: 20, Height: 10})
	if !m.gameState.Paused {
		t.Error("small window should pause")
	}
	if !strings.Contains(m.View(), "too small") {
		t.Error("small window should show a warning")
	}

	m = step(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if m.game.Engine().Board() != board {
		t.Error("resize should keep the board")
	}
	if m.gameState.Paused {
		t.Error("large window should resume")
	}
}

func TestModelSavesScoreOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	defer store.Close()

	m := NewModel(game.New(), store, nil, testRuntime())
	m = playUntilOver(t, m)

	// Extra ticks after game over must not add entries.
	m = step(t, m, TickMsg{}, TickMsg{})

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("saved %d scores, want 1", len(scores))
	}

	snap := m.game.Snapshot()
	got := scores[0]
	if got.Score != snap.Score || got.MaxTile != snap.MaxTile || got.Moves != snap.Moves || got.Seed != 42 {
		t.Errorf("saved entry %+v does not match final state %+v", got, snap)
	}
	if got.Difficulty != "normal" {
		t.Errorf("difficulty = %q, want normal", got.Difficulty)
	}
}

func TestModelRestartAfterGameOver(t *testing.T) {
	m := NewModel(game.New(), nil, nil, testRuntime())
	m = playUntilOver(t, m)

	m = step(t, m, runeKey('r'), TickMsg{})
	if m.gameState.GameOver {
		t.Error("R should start a new game after game over")
	}
	if m.scoreSaved {
		t.Error("restart should reset the saved flag")
	}
	if m.game.Engine().Moves() != 0 {
		t.Errorf("moves = %d, want 0 after restart", m.game.Engine().Moves())
	}
}

func TestModelRestartIgnoredWhilePlaying(t *testing.T) {
	m := NewModel(game.New(), nil, nil, testRuntime())
	seed := m.game.Seed()

	m = step(t, m, runeKey('r'), TickMsg{})
	if m.game.Seed() != seed {
		t.Error("R should not restart a running game")
	}
}

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(5, 2)
	s.DrawText(0, 0, "ab")
	s.DrawTextColor(2, 0, "cd", core.ColorBrightMagenta)
	s.DrawTextColor(0, 1, "xyz", core.Color(200))

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if !strings.Contains(out, "cd") || !strings.Contains(out, "xyz") {
		t.Errorf("rendered output lost text: %q", out)
	}
}
