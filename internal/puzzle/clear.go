package puzzle

// ClearResult describes the outcome of a line clear
type ClearResult struct {
	Board Board `json:"board"`
	// LinesCleared counts full rows plus full columns; a crossing row and
	// column count as two.
	LinesCleared int     `json:"lines_cleared"`
	Rows         []int   `json:"rows,omitempty"`
	Cols         []int   `json:"cols,omitempty"`
	Cleared      []Coord `json:"cleared,omitempty"`
}

// CheckAndClearLines empties every full row and column. Cleared cells are
// reported once each in row-major order.
func CheckAndClearLines(b Board) ClearResult {
	var rows, cols []int

	for r := 0; r < Size; r++ {
		full := true
		for c := 0; c < Size; c++ {
			if b[r][c].IsEmpty() {
				full = false
				break
			}
		}
		if full {
			rows = append(rows, r)
		}
	}

	for c := 0; c < Size; c++ {
		full := true
		for r := 0; r < Size; r++ {
			if b[r][c].IsEmpty() {
				full = false
				break
			}
		}
		if full {
			cols = append(cols, c)
		}
	}

	var mark [Size][Size]bool
	for _, r := range rows {
		for c := 0; c < Size; c++ {
			mark[r][c] = true
		}
	}
	for _, c := range cols {
		for r := 0; r < Size; r++ {
			mark[r][c] = true
		}
	}

	next, cleared := clearMarked(b, mark)
	return ClearResult{
		Board:        next,
		LinesCleared: len(rows) + len(cols),
		Rows:         rows,
		Cols:         cols,
		Cleared:      cleared,
	}
}

// clearMarked empties marked cells and returns the ones that were occupied
func clearMarked(b Board, mark [Size][Size]bool) (Board, []Coord) {
	var cleared []Coord
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if mark[r][c] && !b[r][c].IsEmpty() {
				b[r][c] = Empty
				cleared = append(cleared, Coord{Row: r, Col: c})
			}
		}
	}
	return b, cleared
}
