package engine

// Status is the controller state of a game.
type Status int

const (
	// StatusActive accepts moves.
	StatusActive Status = iota
	// StatusTerminal is absorbing: no legal move remains.
	StatusTerminal
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusTerminal:
		return "terminal"
	default:
		return "unknown"
	}
}

// GameState is an immutable snapshot of a game. Transitions return a new
// value and never modify the receiver.
type GameState struct {
	board  Board
	score  int
	moves  int
	status Status
}

// NewState builds a state around an arbitrary board. Score is the board sum
// and the status follows HasMove. It fails if the board holds an illegal tile.
func NewState(b Board) (GameState, error) {
	if err := Validate(b); err != nil {
		return GameState{}, err
	}
	s := GameState{
		board: b,
		score: Sum(b),
	}
	if !HasMove(b) {
		s.status = StatusTerminal
	}
	return s, nil
}

// Board returns a copy of the grid.
func (s GameState) Board() Board { return s.board }

// Score is the sum of all tiles on the board after the last accepted move.
func (s GameState) Score() int { return s.score }

// Moves counts accepted moves since the game started.
func (s GameState) Moves() int { return s.moves }

// Status returns the controller state.
func (s GameState) Status() Status { return s.status }

// Terminal reports whether the game is over.
func (s GameState) Terminal() bool { return s.status == StatusTerminal }

// MaxTile returns the highest tile on the board.
func (s GameState) MaxTile() int { return MaxTile(s.board) }

// Controller runs the turn loop: move, reject no-ops, spawn, score, check
// for a terminal board.
type Controller struct {
	spawner *Spawner
}

// NewController creates a controller whose spawner draws from src.
func NewController(src Source, opts ...Option) *Controller {
	return &Controller{spawner: NewSpawner(src, opts...)}
}

// NewGame returns an active state with two spawned tiles and a zero score.
func (c *Controller) NewGame() GameState {
	var b Board
	b = c.spawner.Spawn(b)
	b = c.spawner.Spawn(b)
	return GameState{board: b}
}

// ApplyMove plays d against s and returns the resulting state.
//
// A terminal state, or a move that changes no cell, returns s as is and
// does not touch the random source. Otherwise a tile is spawned, the score
// becomes the board sum and the state turns terminal if no move remains.
// ApplyMove panics if d is not a valid Direction.
func (c *Controller) ApplyMove(s GameState, d Direction) GameState {
	if !d.Valid() {
		panic("engine: apply move with invalid direction " + d.String())
	}
	if s.Terminal() {
		return s
	}

	res := Move(s.board, d)
	if !res.Changed {
		return s
	}

	next := GameState{
		board: c.spawner.Spawn(res.Board),
		moves: s.moves + 1,
	}
	next.score = Sum(next.board)
	if !HasMove(next.board) {
		next.status = StatusTerminal
	}
	return next
}
