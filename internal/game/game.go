// Package game adapts the 2048 rules engine to the platform's tick loop.
// It turns input frames into moves, owns pause and window-size handling,
// and draws the board into a core.Screen.
package game

import (
	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/engine"
)

// ID names the game in file names such as screenshots.
const ID = "2048"

// Minimum screen size: board (29x9) plus the HUD.
const (
	minScreenW = 31
	minScreenH = 13
)

// Game implements the 2048 puzzle game.
type Game struct {
	cfg     config.T2048Config
	palette config.Palette

	ctrl  *engine.Controller
	state engine.GameState
	seed  int64
	tick  uint64

	highScore int

	// Screen dimensions
	screenW int
	screenH int

	paused   bool
	tooSmall bool
}

// Option configures a Game.
type Option func(*Game)

// WithConfig sets the spawn and theme configuration.
func WithConfig(cfg config.T2048Config) Option {
	return func(g *Game) {
		g.cfg = cfg
	}
}

// New creates a game. Call Reset before stepping it.
func New(opts ...Option) *Game {
	g := &Game{cfg: config.Default()}
	for _, opt := range opts {
		opt(g)
	}
	g.palette = g.cfg.TileColors()
	return g
}

// Reset starts a new game seeded from cfg.Seed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.seed = cfg.Seed
	g.ctrl = engine.NewController(
		engine.NewSource(cfg.Seed),
		engine.WithFourProbability(g.cfg.Spawn.FourProbability),
	)
	g.state = g.ctrl.NewGame()
	g.tick = 0
	g.paused = false

	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize updates the screen size without touching the board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < minScreenW || h < minScreenH
}

// Step advances the game by one tick. At most one move is applied per tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.state.Terminal() {
		g.paused = !g.paused
	}

	if g.paused || g.state.Terminal() {
		return core.StepResult{State: g.State()}
	}

	dir, ok := directionFor(in)
	if !ok {
		return core.StepResult{State: g.State()}
	}

	before := g.state.Moves()
	g.state = g.ctrl.ApplyMove(g.state, dir)
	return core.StepResult{State: g.State(), Moved: g.state.Moves() != before}
}

// directionFor picks the first directional action in a fixed order.
func directionFor(in core.InputFrame) (engine.Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return engine.Up, true
	case in.Has(core.ActionDown):
		return engine.Down, true
	case in.Has(core.ActionLeft):
		return engine.Left, true
	case in.Has(core.ActionRight):
		return engine.Right, true
	}
	return 0, false
}

// State returns the platform view of the game.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Score(),
		GameOver: g.state.Terminal(),
		Paused:   g.paused || g.tooSmall,
	}
}

// Engine returns the underlying rules state.
func (g *Game) Engine() engine.GameState {
	return g.state
}

// Seed returns the seed of the current game.
func (g *Game) Seed() int64 {
	return g.seed
}

// SetHighScore sets the best recorded score shown in the HUD. Zero hides it.
// It survives Reset.
func (g *Game) SetHighScore(score int) {
	g.highScore = score
}

// Difficulty returns the configured difficulty preset.
func (g *Game) Difficulty() config.DifficultyPreset {
	return g.cfg.Difficulty
}
