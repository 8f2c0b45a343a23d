package engine

import (
	"errors"
	"fmt"
	"strings"
)

// Direction selects which way tiles slide.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every valid direction.
var Directions = [...]Direction{Up, Down, Left, Right}

// ErrInvalidDirection is returned by ParseDirection for unknown names.
var ErrInvalidDirection = errors.New("engine: invalid direction")

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d >= Up && d <= Right
}

// ParseDirection accepts full names ("up") or single letters ("u"), any case.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "u", "up":
		return Up, nil
	case "d", "down":
		return Down, nil
	case "l", "left":
		return Left, nil
	case "r", "right":
		return Right, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

// MoveResult is the board after a move and whether any cell changed.
type MoveResult struct {
	Board   Board
	Changed bool
}

// Move applies d to b. Left reduces each row, Right reduces each reversed
// row, Up and Down do the same on the transposed board.
// Move panics if d is not a valid Direction.
func Move(b Board, d Direction) MoveResult {
	var out Board
	switch d {
	case Left:
		out = slideLeft(b)
	case Right:
		out = slideRight(b)
	case Up:
		out = Transpose(slideLeft(Transpose(b)))
	case Down:
		out = Transpose(slideRight(Transpose(b)))
	default:
		panic(fmt.Sprintf("engine: move with invalid direction %d", int(d)))
	}
	return MoveResult{Board: out, Changed: out != b}
}

func slideLeft(b Board) Board {
	var out Board
	for y := range Size {
		out[y] = ReduceRow(b[y])
	}
	return out
}

func slideRight(b Board) Board {
	var out Board
	for y := range Size {
		out[y] = reverseRow(ReduceRow(reverseRow(b[y])))
	}
	return out
}
