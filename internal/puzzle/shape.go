package puzzle

import (
	"github.com/KirkDiggler/block-cats/internal/errors"
)

// Shape is a named footprint of cell offsets. Offsets are non-negative and
// normalized so the smallest row and the smallest column are both zero.
// Shapes are shared catalog values and must not be mutated.
type Shape struct {
	Name  string  `json:"name"`
	Cells []Coord `json:"cells"`
}

// Validate checks the offset invariants
func (s Shape) Validate() error {
	if len(s.Cells) == 0 {
		return errors.InvalidArgumentf("shape %q has no cells", s.Name)
	}

	minRow, minCol := s.Cells[0].Row, s.Cells[0].Col
	seen := make(map[Coord]bool, len(s.Cells))
	for _, c := range s.Cells {
		if c.Row < 0 || c.Col < 0 {
			return errors.InvalidArgumentf("shape %q has negative offset (%d,%d)", s.Name, c.Row, c.Col)
		}
		if seen[c] {
			return errors.InvalidArgumentf("shape %q repeats offset (%d,%d)", s.Name, c.Row, c.Col)
		}
		seen[c] = true
		minRow = min(minRow, c.Row)
		minCol = min(minCol, c.Col)
	}
	if minRow != 0 || minCol != 0 {
		return errors.InvalidArgumentf("shape %q is not anchored at row 0 and col 0", s.Name)
	}
	return nil
}

// Bounds returns the height and width of the shape's bounding box
func (s Shape) Bounds() (rows, cols int) {
	for _, c := range s.Cells {
		rows = max(rows, c.Row+1)
		cols = max(cols, c.Col+1)
	}
	return rows, cols
}

// Piece is a shape drawn as a single cat. A tray slot holding nil has
// already been placed.
type Piece struct {
	Shape Shape   `json:"shape"`
	Cat   CatType `json:"cat"`
}
