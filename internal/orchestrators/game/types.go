package game

import (
	"github.com/KirkDiggler/block-cats/internal/entities"
	"github.com/KirkDiggler/block-cats/internal/puzzle"
)

// PlaceResult is the outcome of one placement
type PlaceResult struct {
	Clear  puzzle.ClearResult
	Points int
	Combo  int
	// Refilled is set when the placement used the last tray piece and a
	// new tray was drawn
	Refilled bool
	// Stuck is set when no piece left in the tray fits anywhere
	Stuck bool
}

// UseItemInput selects an item and, for a line blast, its target
type UseItemInput struct {
	Kind      entities.ItemKind
	Row       int
	Col       int
	Direction puzzle.Direction
}

// UseItemResult is the outcome of an item use. Effect is empty for a
// reroll, which changes the tray instead of the board.
type UseItemResult struct {
	Effect    puzzle.EffectResult
	Inventory entities.Inventory
	Stuck     bool
}
