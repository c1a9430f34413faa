package game

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/block-cats/internal/entities"
	"github.com/KirkDiggler/block-cats/internal/errors"
	"github.com/KirkDiggler/block-cats/internal/puzzle"
)

// DefaultMaxMoves bounds an auto-played game
const DefaultMaxMoves = 5000

// AutoPlayer plays a session without input. It starts from a random tray
// slot and takes the first legal placement, scanning the board row by row.
// When stuck it spends items in the order reroll, board wipe, line blast.
type AutoPlayer struct {
	roller   dice.Roller
	maxMoves int
}

// NewAutoPlayer creates an auto player. A nil roller uses
// dice.DefaultRoller; maxMoves <= 0 uses DefaultMaxMoves.
func NewAutoPlayer(roller dice.Roller, maxMoves int) *AutoPlayer {
	if roller == nil {
		roller = dice.DefaultRoller
	}
	if maxMoves <= 0 {
		maxMoves = DefaultMaxMoves
	}
	return &AutoPlayer{roller: roller, maxMoves: maxMoves}
}

// Play runs s until it is stuck with no items left, or the move limit is
// reached, then finishes it
func (a *AutoPlayer) Play(s *Session) (entities.GameStats, error) {
	for moves := 0; moves < a.maxMoves && !s.Finished(); moves++ {
		slot, row, col, ok, err := a.NextMove(s)
		if err != nil {
			return entities.GameStats{}, err
		}
		if ok {
			if _, err := s.Place(slot, row, col); err != nil {
				return entities.GameStats{}, errors.Wrap(err, "auto placement rejected")
			}
			continue
		}

		used, err := a.rescue(s)
		if err != nil {
			return entities.GameStats{}, err
		}
		if !used {
			break
		}
	}
	return s.Finish(), nil
}

// NextMove picks a placement. ok is false when nothing in the tray fits.
func (a *AutoPlayer) NextMove(s *Session) (slot, row, col int, ok bool, err error) {
	tray := s.Tray()
	start, err := a.roller.Roll(len(tray))
	if err != nil {
		return 0, 0, 0, false, errors.Wrap(err, "failed to roll tray slot")
	}

	board := s.Board()
	for i := range tray {
		slot = (start - 1 + i) % len(tray)
		piece := tray[slot]
		if piece == nil {
			continue
		}
		for r := 0; r < puzzle.Size; r++ {
			for c := 0; c < puzzle.Size; c++ {
				if puzzle.CanPlace(board, *piece, r, c) {
					return slot, r, c, true, nil
				}
			}
		}
	}
	return 0, 0, 0, false, nil
}

// rescue spends one item to get unstuck. It reports false when the
// inventory is empty.
func (a *AutoPlayer) rescue(s *Session) (bool, error) {
	inv := s.Inventory()

	var input UseItemInput
	switch {
	case inv.Get(entities.ItemReroll) > 0:
		input.Kind = entities.ItemReroll
	case inv.Get(entities.ItemBoardWipe) > 0:
		input.Kind = entities.ItemBoardWipe
	case inv.Get(entities.ItemLineBlast) > 0:
		input = UseItemInput{
			Kind:      entities.ItemLineBlast,
			Row:       densestRow(s.Board()),
			Direction: puzzle.DirectionRight,
		}
	default:
		return false, nil
	}

	if _, err := s.UseItem(input); err != nil {
		return false, errors.Wrapf(err, "failed to use %s", input.Kind)
	}
	return true, nil
}

func densestRow(b puzzle.Board) int {
	best, bestCount := 0, -1
	for r := 0; r < puzzle.Size; r++ {
		count := 0
		for c := 0; c < puzzle.Size; c++ {
			if !b.At(r, c).IsEmpty() {
				count++
			}
		}
		if count > bestCount {
			best, bestCount = r, count
		}
	}
	return best
}
