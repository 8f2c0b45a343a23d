package engine

// Row is a single line of the board as seen in the direction of movement.
type Row [Size]int

// ReduceRow slides every tile toward index 0 and merges equal neighbours.
//
// Tiles are compressed first, then scanned left to right: a pair of equal
// tiles becomes one tile of double value and the scan skips past both, so a
// tile takes part in at most one merge per move. The result is padded with
// zeros on the right.
func ReduceRow(row Row) Row {
	compressed := make([]int, 0, Size)
	for _, v := range row {
		if v != 0 {
			compressed = append(compressed, v)
		}
	}

	var out Row
	pos := 0
	for i := 0; i < len(compressed); i++ {
		if i+1 < len(compressed) && compressed[i] == compressed[i+1] {
			out[pos] = compressed[i] * 2
			i++
		} else {
			out[pos] = compressed[i]
		}
		pos++
	}
	return out
}

// reverseRow mirrors a row so reductions can run toward the far end.
func reverseRow(row Row) Row {
	var out Row
	for i := range Size {
		out[i] = row[Size-1-i]
	}
	return out
}
