package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/game"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

const (
	helpHeight     = 1 // Rows below the board reserved for the key help
	maxQueuedMoves = 4 // Direction presses buffered ahead of the tick loop
)

// Model is the Bubble Tea model for running a 2048 game.
type Model struct {
	game       *game.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	keys       *KeyMapper
	help       help.Model
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	moveQueue  []core.Action // Directions in press order, one applied per tick
	gameState  core.GameState
	highScore  int
	quitting   bool
	scoreSaved bool // Whether the score has been saved for the current game over
}

// NewModel creates a Bubble Tea model for g and starts a fresh game.
// store and logger may be nil.
func NewModel(g *game.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	highScore := 0
	if store != nil {
		hs, err := store.HighScore()
		if err != nil {
			logger.Warn("could not read high score", "error", err)
		}
		highScore = hs
	}
	g.SetHighScore(highScore)

	g.Reset(gameConfig(cfg))
	logger.Debug("game started", "seed", cfg.Seed, "difficulty", g.Difficulty())

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       g,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH-helpHeight),
		store:      store,
		logger:     logger,
		keys:       NewKeyMapper(),
		help:       h,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		gameState:  g.State(),
		highScore:  highScore,
	}
}

// gameConfig returns cfg with the rows taken by the help line removed.
func gameConfig(cfg core.RuntimeConfig) core.RuntimeConfig {
	cfg.ScreenH = max(cfg.ScreenH-helpHeight, 0)
	return cfg
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Keys().Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit
	case action.IsDirection():
		if len(m.moveQueue) < maxQueuedMoves {
			m.moveQueue = append(m.moveQueue, action)
		}
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize keeps the board and only adapts the layout.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height

	gc := gameConfig(m.config)
	m.screen.Resize(gc.ScreenW, gc.ScreenH)
	m.game.Resize(gc.ScreenW, gc.ScreenH)
	m.help.Width = msg.Width
	m.gameState = m.game.State()

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(gameConfig(m.config))
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.moveQueue = nil
		m.inputFrame.Clear()
		m.logger.Debug("game restarted", "seed", m.config.Seed)
		return m, tickCmd(m.config.TickRate)
	}

	if len(m.moveQueue) > 0 {
		m.inputFrame.Set(m.moveQueue[0])
		m.moveQueue = m.moveQueue[1:]
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver && !m.scoreSaved {
		m.saveScore()
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveScore records the finished game once.
func (m *Model) saveScore() {
	m.scoreSaved = true

	snap := m.game.Snapshot()
	m.logger.Info("game over", "score", snap.Score, "max_tile", snap.MaxTile, "moves", snap.Moves)

	if m.store == nil || snap.Score == 0 {
		return
	}

	entry := storage.ScoreEntry{
		Score:      snap.Score,
		MaxTile:    snap.MaxTile,
		Moves:      snap.Moves,
		Difficulty: string(m.game.Difficulty()),
		Seed:       snap.Seed,
	}
	if _, err := m.store.SaveScore(entry); err != nil {
		m.logger.Warn("could not save score", "error", err)
		return
	}

	if snap.Score > m.highScore {
		m.highScore = snap.Score
		m.game.SetHighScore(snap.Score)
		m.logger.Info("new high score", "score", snap.Score)
	}
}

// saveScreenshot saves the current screen to ~/.t2048/screenshots.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot: no home directory", "error", err)
		return
	}
	dir := filepath.Join(home, ".t2048", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot: cannot create directory", "dir", dir, "error", err)
		return
	}

	filename := fmt.Sprintf("%s_%s.txt", game.ID, time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot: cannot write file", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys.Keys()))
}

// Run starts the Bubble Tea program for g.
func Run(g *game.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewModel(g, store, logger, cfg)

	p := tea.NewProgram(model, tea.WithAltScreen())

	_, err := p.Run()
	return err
}
