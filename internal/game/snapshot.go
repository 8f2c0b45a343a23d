package game

import "github.com/vovakirdan/tui-2048/internal/engine"

// StateType names what the game is currently doing.
type StateType string

const (
	StatePlaying     StateType = "playing"
	StatePaused      StateType = "paused"
	StateGameOver    StateType = "game_over"
	StatePausedSmall StateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick    uint64
	Seed    int64
	Score   int
	Moves   int
	Board   engine.Board
	MaxTile int
	State   StateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.state.Terminal():
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	return Snapshot{
		Tick:    g.tick,
		Seed:    g.seed,
		Score:   g.state.Score(),
		Moves:   g.state.Moves(),
		Board:   g.state.Board(),
		MaxTile: g.state.MaxTile(),
		State:   state,
	}
}
