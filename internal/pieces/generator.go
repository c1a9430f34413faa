package pieces

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/block-cats/internal/errors"
	"github.com/KirkDiggler/block-cats/internal/puzzle"
)

// TraySize is how many pieces are offered at once
const TraySize = 3

// Generator draws pieces from the weighted catalog. There is no rejection
// against the board, so a drawn piece may not fit anywhere.
type Generator struct {
	roller  dice.Roller
	entries []Entry
	total   int
}

// NewGenerator creates a generator backed by roller. A nil roller uses
// dice.DefaultRoller.
func NewGenerator(roller dice.Roller) *Generator {
	if roller == nil {
		roller = dice.DefaultRoller
	}
	return &Generator{
		roller:  roller,
		entries: catalog,
		total:   TotalWeight(),
	}
}

// GeneratePiece draws a shape by weight and an independent uniform cat
func (g *Generator) GeneratePiece() (*puzzle.Piece, error) {
	// roll lands in [1, total]; walk until the remainder is non-positive
	remaining, err := g.roller.Roll(g.total)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll shape")
	}

	idx := len(g.entries) - 1
	for i, e := range g.entries {
		remaining -= e.Weight
		if remaining <= 0 {
			idx = i
			break
		}
	}

	cat, err := g.roller.Roll(puzzle.NumCatTypes)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll cat")
	}

	return &puzzle.Piece{
		Shape: g.entries[idx].Shape,
		Cat:   puzzle.CatType(cat - 1),
	}, nil
}

// GeneratePieces draws a full tray of independent pieces
func (g *Generator) GeneratePieces() ([]*puzzle.Piece, error) {
	tray := make([]*puzzle.Piece, TraySize)
	for i := range tray {
		p, err := g.GeneratePiece()
		if err != nil {
			return nil, err
		}
		tray[i] = p
	}
	return tray, nil
}
