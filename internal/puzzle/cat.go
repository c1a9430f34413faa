// Package puzzle holds the board rules: placement, line clears, item effects
// and scoring. Every function is pure; boards are values and each mutation
// returns a new Board.
package puzzle

import "fmt"

// CatType identifies which cat a tile shows. Only identity matters.
type CatType uint8

// The six cats a piece can be drawn as
const (
	CatOrange CatType = iota
	CatBlack
	CatWhite
	CatCalico
	CatGray
	CatSiamese
)

// NumCatTypes is the size of the CatType domain
const NumCatTypes = 6

var catNames = [NumCatTypes]string{"orange", "black", "white", "calico", "gray", "siamese"}

// Valid reports whether c is one of the six cats
func (c CatType) Valid() bool {
	return c < NumCatTypes
}

func (c CatType) String() string {
	if !c.Valid() {
		return fmt.Sprintf("cat(%d)", uint8(c))
	}
	return catNames[c]
}

// Cell is a single board square. The zero value is empty; an occupied cell
// stores its cat offset by one.
type Cell uint8

// Empty is the unoccupied cell
const Empty Cell = 0

// Filled returns an occupied cell showing cat
func Filled(cat CatType) Cell {
	return Cell(cat) + 1
}

// IsEmpty reports whether nothing occupies the cell
func (c Cell) IsEmpty() bool {
	return c == Empty
}

// Cat returns the cat in the cell, false when empty
func (c Cell) Cat() (CatType, bool) {
	if c == Empty {
		return 0, false
	}
	return CatType(c - 1), true
}
