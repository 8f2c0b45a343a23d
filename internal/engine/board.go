// Package engine implements the rules of 2048: the board, the row reducer,
// moves in four directions, tile spawning, terminal detection and the turn
// controller. It has no platform dependencies; every operation except
// spawning is a pure function over Board values.
package engine

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Size is the board dimension.
const Size = 4

// Board is a Size x Size grid of tile values, 0 meaning empty.
// Board is an array, so assignment copies it and == compares cell-wise.
type Board [Size][Size]int

// Cell addresses a board position. X is the column, Y the row.
type Cell struct {
	X, Y int
}

// ErrInvalidTile is returned when a board holds a value that is neither zero
// nor a power of two >= 2.
var ErrInvalidTile = errors.New("engine: invalid tile value")

// Transpose swaps rows and columns. Transpose(Transpose(b)) == b.
func Transpose(b Board) Board {
	var out Board
	for y := range Size {
		for x := range Size {
			out[y][x] = b[x][y]
		}
	}
	return out
}

// EmptyCells returns the empty positions in row-major order.
func EmptyCells(b Board) []Cell {
	var cells []Cell
	for y := range Size {
		for x := range Size {
			if b[y][x] == 0 {
				cells = append(cells, Cell{X: x, Y: y})
			}
		}
	}
	return cells
}

// Sum returns the total of all tile values.
func Sum(b Board) int {
	total := 0
	for y := range Size {
		for x := range Size {
			total += b[y][x]
		}
	}
	return total
}

// MaxTile returns the highest tile value on the board.
func MaxTile(b Board) int {
	maxVal := 0
	for y := range Size {
		for x := range Size {
			if b[y][x] > maxVal {
				maxVal = b[y][x]
			}
		}
	}
	return maxVal
}

// TileCount returns the number of non-empty cells.
func TileCount(b Board) int {
	return Size*Size - len(EmptyCells(b))
}

// Validate checks that every non-zero cell is a power of two >= 2.
func Validate(b Board) error {
	for y := range Size {
		for x := range Size {
			if !IsTileValue(b[y][x]) && b[y][x] != 0 {
				return fmt.Errorf("%w: %d at (%d, %d)", ErrInvalidTile, b[y][x], x, y)
			}
		}
	}
	return nil
}

// IsTileValue reports whether v is a legal non-empty tile.
func IsTileValue(v int) bool {
	return v >= 2 && v&(v-1) == 0
}

// String renders the board as Size lines of right-aligned values, "." for empty.
func (b Board) String() string {
	width := len(strconv.Itoa(MaxTile(b)))
	if width < 1 {
		width = 1
	}

	var sb strings.Builder
	for y := range Size {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := range Size {
			if x > 0 {
				sb.WriteByte(' ')
			}
			cell := "."
			if b[y][x] != 0 {
				cell = strconv.Itoa(b[y][x])
			}
			sb.WriteString(strings.Repeat(" ", width-len(cell)))
			sb.WriteString(cell)
		}
	}
	return sb.String()
}
