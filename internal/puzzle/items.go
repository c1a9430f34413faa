package puzzle

// Direction is the swipe direction of a strip clear
type Direction string

// Strip directions. Up and Down clear columns, Left and Right clear rows.
const (
	DirectionUp    Direction = "up"
	DirectionDown  Direction = "down"
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
)

// Valid reports whether d is a known direction
func (d Direction) Valid() bool {
	switch d {
	case DirectionUp, DirectionDown, DirectionLeft, DirectionRight:
		return true
	}
	return false
}

// Vertical reports whether d clears columns
func (d Direction) Vertical() bool {
	return d == DirectionUp || d == DirectionDown
}

// EffectResult is the outcome of an item effect. Only cells that held a
// tile are listed in Cleared.
type EffectResult struct {
	Board   Board   `json:"board"`
	Cleared []Coord `json:"cleared,omitempty"`
	Count   int     `json:"count"`
}

// stripWidth is how many rows or columns a strip clear spans
const stripWidth = 3

// ClearStrip empties the three columns centered on startCol (vertical
// directions) or the three rows centered on startRow (horizontal
// directions). Lines off the board are skipped.
func ClearStrip(b Board, startRow, startCol int, dir Direction) EffectResult {
	var mark [Size][Size]bool
	if !dir.Valid() {
		return EffectResult{Board: b}
	}

	half := stripWidth / 2
	if dir.Vertical() {
		for c := startCol - half; c <= startCol+half; c++ {
			if c < 0 || c >= Size {
				continue
			}
			for r := 0; r < Size; r++ {
				mark[r][c] = true
			}
		}
	} else {
		for r := startRow - half; r <= startRow+half; r++ {
			if r < 0 || r >= Size {
				continue
			}
			for c := 0; c < Size; c++ {
				mark[r][c] = true
			}
		}
	}

	next, cleared := clearMarked(b, mark)
	return EffectResult{Board: next, Cleared: cleared, Count: len(cleared)}
}

// ClearAllBlocks returns an empty board and every coordinate that was filled
func ClearAllBlocks(b Board) EffectResult {
	cleared := b.Occupied()
	return EffectResult{Board: NewBoard(), Cleared: cleared, Count: len(cleared)}
}
