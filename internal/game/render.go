package game

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/engine"
)

const (
	cellWidth  = 7 // Width of each cell including its left border
	cellHeight = 2 // Height of each cell including its top border
	hudHeight  = 3
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardW := engine.Size*cellWidth + 1
	boardH := engine.Size*cellHeight + 1

	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX, boardW)
	g.renderBoard(dst, boardX, boardY)
	g.renderOverlays(dst, core.NewRect(boardX, boardY, boardW, boardH))
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
}

// renderHUD draws the title, high score, score, best tile and move count.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := "2048"
	dst.DrawTextColor(boardX+(boardW-len(title))/2, 0, title, core.ColorBrightYellow)

	if g.highScore > 0 {
		high := fmt.Sprintf("High: %d", g.highScore)
		dst.DrawTextColor(core.Max(boardX, boardX+boardW-len(high)), 0, high, core.ColorGray)
	}

	dst.DrawText(boardX, 1, fmt.Sprintf("Score: %d", g.state.Score()))

	best := fmt.Sprintf("Best tile: %d", g.state.MaxTile())
	dst.DrawText(core.Max(boardX, boardX+boardW-len(best)), 1, best)

	moves := fmt.Sprintf("Moves: %d", g.state.Moves())
	dst.DrawTextColor(boardX, 2, moves, core.ColorGray)

	if g.cfg.Difficulty != "" {
		diff := string(g.cfg.Difficulty)
		dst.DrawTextColor(core.Max(boardX, boardX+boardW-len(diff)), 2, diff, core.ColorGray)
	}
}

// renderBoard draws the grid with colored tiles.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	for y := range engine.Size + 1 {
		for x := range engine.Size + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			dst.Set(px, py, gridCorner(x, y))

			if x < engine.Size {
				dst.DrawHLine(px+1, py, cellWidth-1, '─')
			}
			if y < engine.Size {
				dst.DrawVLine(px, py+1, cellHeight-1, '│')
			}
		}
	}

	board := g.state.Board()
	for y := range engine.Size {
		for x := range engine.Size {
			val := board[y][x]
			if val == 0 {
				continue
			}

			cellX := boardX + x*cellWidth + 1
			cellY := boardY + y*cellHeight + 1

			valStr := strconv.Itoa(val)
			padLeft := core.Max((cellWidth-1-len(valStr))/2, 0)
			dst.DrawTextColor(cellX+padLeft, cellY, valStr, g.palette.Color(val))
		}
	}
}

// gridCorner picks the box-drawing junction for grid point (x, y).
func gridCorner(x, y int) rune {
	last := engine.Size
	switch {
	case y == 0 && x == 0:
		return '┌'
	case y == 0 && x == last:
		return '┐'
	case y == last && x == 0:
		return '└'
	case y == last && x == last:
		return '┘'
	case y == 0:
		return '┬'
	case y == last:
		return '┴'
	case x == 0:
		return '├'
	case x == last:
		return '┤'
	default:
		return '┼'
	}
}

// renderOverlays draws pause and game-over boxes over the board.
func (g *Game) renderOverlays(dst *core.Screen, board core.Rect) {
	switch {
	case g.state.Terminal():
		g.drawOverlay(dst, board,
			"GAME OVER",
			fmt.Sprintf("Score: %d", g.state.Score()),
			"Press R to restart",
		)
	case g.paused:
		g.drawOverlay(dst, board, "PAUSED", "Press P to resume")
	}
}

// drawOverlay draws a boxed message centered on area.
func (g *Game) drawOverlay(dst *core.Screen, area core.Rect, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, len(line))
	}

	box := area.Centered(maxLen+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	centerX, _ := box.Center()
	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, box.Y+1+i, line)
	}
}
