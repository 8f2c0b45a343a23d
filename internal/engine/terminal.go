package engine

// HasEmptyCell reports whether any cell is empty.
func HasEmptyCell(b Board) bool {
	for y := range Size {
		for x := range Size {
			if b[y][x] == 0 {
				return true
			}
		}
	}
	return false
}

// HasPossibleMerge reports whether two horizontally or vertically adjacent
// cells hold the same non-zero value.
func HasPossibleMerge(b Board) bool {
	for y := range Size {
		for x := range Size {
			val := b[y][x]
			if val == 0 {
				continue
			}
			if x < Size-1 && b[y][x+1] == val {
				return true
			}
			if y < Size-1 && b[y+1][x] == val {
				return true
			}
		}
	}
	return false
}

// HasMove reports whether at least one direction would change the board.
// An empty cell lets some tile slide; an equal adjacent pair can merge.
func HasMove(b Board) bool {
	return HasEmptyCell(b) || HasPossibleMerge(b)
}
