package puzzle

// Base points for line clears
const (
	pointsOneLine   = 10
	pointsTwoLines  = 25
	pointsExtraLine = 15
)

// CalculateScore returns the points for a placement that cleared
// linesCleared lines while the combo counter stood at combo. Each combo
// step past the first adds 20% of the base, floored.
func CalculateScore(linesCleared, combo int) int {
	if linesCleared <= 0 {
		return 0
	}

	base := pointsOneLine
	if linesCleared >= 2 {
		base = pointsTwoLines + (linesCleared-2)*pointsExtraLine
	}

	if combo <= 1 {
		return base
	}
	// base * (1 + (combo-1)*0.2) == base * (combo+4) / 5
	return base * (combo + 4) / 5
}

// Combo counts consecutive clearing placements
type Combo int

// Next returns the combo after a placement that cleared linesCleared lines
func (c Combo) Next(linesCleared int) Combo {
	if linesCleared > 0 {
		return c + 1
	}
	return 0
}
