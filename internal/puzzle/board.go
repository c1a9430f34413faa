package puzzle

// Size is the width and height of the board
const Size = 8

// Coord addresses a board square, or a shape offset relative to its anchor
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Board is the 8x8 grid in row-major order. It is a value type so copies
// never alias.
type Board [Size][Size]Cell

// NewBoard returns a board with every cell empty
func NewBoard() Board {
	return Board{}
}

// InBounds reports whether (row, col) lies on the board
func InBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

// At returns the cell at (row, col). Out of bounds reads are empty.
func (b Board) At(row, col int) Cell {
	if !InBounds(row, col) {
		return Empty
	}
	return b[row][col]
}

// Occupied returns the coordinates of every filled cell in row-major order
func (b Board) Occupied() []Coord {
	var out []Coord
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if !b[r][c].IsEmpty() {
				out = append(out, Coord{Row: r, Col: c})
			}
		}
	}
	return out
}

// FilledCount returns how many cells are occupied
func (b Board) FilledCount() int {
	return len(b.Occupied())
}
