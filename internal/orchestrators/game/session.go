// Package game drives a single game session: the tray, the combo state
// machine, item use and stats accrual. A Session is not safe for
// concurrent use.
package game

import (
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/block-cats/internal/entities"
	"github.com/KirkDiggler/block-cats/internal/errors"
	"github.com/KirkDiggler/block-cats/internal/pieces"
	"github.com/KirkDiggler/block-cats/internal/pkg/idgen"
	"github.com/KirkDiggler/block-cats/internal/puzzle"
)

// EntityType identifies sessions as toolkit entities
const EntityType = "game_session"

// Config holds the dependencies for a session
type Config struct {
	Generator   *pieces.Generator
	IDGenerator idgen.Generator
	// Inventory is the player's stock of items carried into the game
	Inventory entities.Inventory
	// Skin is the equipped cosmetic set, recorded in the stats
	Skin string
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Generator == nil {
		vb.RequiredField("Generator")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

// Session is one game from the first tray until Finish
type Session struct {
	id        string
	gen       *pieces.Generator
	board     puzzle.Board
	tray      [pieces.TraySize]*puzzle.Piece
	score     int
	combo     puzzle.Combo
	stats     entities.GameStats
	inventory entities.Inventory
	finished  bool
}

// Ensure Session is a toolkit entity
var _ core.Entity = (*Session)(nil)

// NewSession starts a game on an empty board with a fresh tray
func NewSession(cfg *Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	s := &Session{
		id:        cfg.IDGenerator.Generate(),
		gen:       cfg.Generator,
		board:     puzzle.NewBoard(),
		inventory: cfg.Inventory,
		stats:     entities.GameStats{Skin: cfg.Skin},
	}
	if err := s.refill(); err != nil {
		return nil, err
	}

	slog.Debug("Started game session",
		"session_id", s.id,
		"skin", cfg.Skin,
		"items", cfg.Inventory.Total())

	return s, nil
}

// GetID returns the session ID
func (s *Session) GetID() string { return s.id }

// GetType returns the entity type
func (s *Session) GetType() string { return EntityType }

// Board returns the current board
func (s *Session) Board() puzzle.Board { return s.board }

// Score returns the running score
func (s *Session) Score() int { return s.score }

// Combo returns the number of consecutive clearing placements
func (s *Session) Combo() int { return int(s.combo) }

// Inventory returns the items left
func (s *Session) Inventory() entities.Inventory { return s.inventory }

// Stats returns the stats so far
func (s *Session) Stats() entities.GameStats {
	stats := s.stats
	stats.FinalScore = s.score
	return stats
}

// Finished reports whether Finish was called
func (s *Session) Finished() bool { return s.finished }

// Tray returns the pieces on offer. Used slots are nil.
func (s *Session) Tray() []*puzzle.Piece {
	tray := make([]*puzzle.Piece, len(s.tray))
	copy(tray, s.tray[:])
	return tray
}

// Stuck reports whether no piece left in the tray fits anywhere
func (s *Session) Stuck() bool {
	return puzzle.IsGameOver(s.board, s.Tray())
}

// Place puts the piece in slot at (row, col), clears full lines and scores
// the move. A rejected placement leaves the session untouched.
func (s *Session) Place(slot, row, col int) (*PlaceResult, error) {
	if s.finished {
		return nil, errors.FailedPrecondition("game is over")
	}
	if slot < 0 || slot >= len(s.tray) {
		return nil, errors.InvalidArgumentf("tray slot %d out of range", slot)
	}
	piece := s.tray[slot]
	if piece == nil {
		return nil, errors.InvalidArgumentf("tray slot %d is empty", slot)
	}

	placed, err := puzzle.Place(s.board, *piece, row, col)
	if err != nil {
		return nil, err
	}

	// Placing the last tray piece needs a new tray. Draw it before the move
	// is committed so a failed draw leaves the session untouched.
	var next []*puzzle.Piece
	if s.onlyPiece(slot) {
		next, err = s.draw()
		if err != nil {
			return nil, err
		}
	}

	cleared := puzzle.CheckAndClearLines(placed)
	s.board = cleared.Board
	s.combo = s.combo.Next(cleared.LinesCleared)
	points := puzzle.CalculateScore(cleared.LinesCleared, int(s.combo))
	s.score += points
	s.stats.RecordPlacement(cleared.LinesCleared, int(s.combo))
	s.tray[slot] = nil

	result := &PlaceResult{
		Clear:  cleared,
		Points: points,
		Combo:  int(s.combo),
	}

	if next != nil {
		copy(s.tray[:], next)
		result.Refilled = true
	}
	result.Stuck = s.Stuck()

	return result, nil
}

// UseItem spends one item from the inventory. Items change neither the
// score nor the combo.
func (s *Session) UseItem(input UseItemInput) (*UseItemResult, error) {
	if s.finished {
		return nil, errors.FailedPrecondition("game is over")
	}

	switch input.Kind {
	case entities.ItemLineBlast:
		if !input.Direction.Valid() {
			return nil, errors.InvalidArgumentf("invalid direction %q", input.Direction)
		}
		if !puzzle.InBounds(input.Row, input.Col) {
			return nil, errors.OutOfRangef("target (%d, %d) is off the board", input.Row, input.Col)
		}
	case entities.ItemBoardWipe, entities.ItemReroll:
	default:
		return nil, errors.InvalidArgumentf("unknown item %q", input.Kind)
	}

	inventory, err := s.inventory.Use(input.Kind)
	if err != nil {
		return nil, err
	}

	result := &UseItemResult{}
	switch input.Kind {
	case entities.ItemLineBlast:
		result.Effect = puzzle.ClearStrip(s.board, input.Row, input.Col, input.Direction)
		s.board = result.Effect.Board
	case entities.ItemBoardWipe:
		result.Effect = puzzle.ClearAllBlocks(s.board)
		s.board = result.Effect.Board
	case entities.ItemReroll:
		if err := s.refill(); err != nil {
			return nil, err
		}
		result.Effect = puzzle.EffectResult{Board: s.board}
	}

	s.inventory = inventory
	s.stats.RecordItemUse(input.Kind)
	result.Inventory = inventory
	result.Stuck = s.Stuck()

	return result, nil
}

// Finish ends the game and returns its final stats. Calling it again
// returns the same stats.
func (s *Session) Finish() entities.GameStats {
	if !s.finished {
		s.finished = true
		slog.Info("Finished game session",
			"session_id", s.id,
			"score", s.score,
			"lines", s.stats.TotalLines,
			"pieces", s.stats.BlocksPlaced)
	}
	return s.Stats()
}

// onlyPiece reports whether slot holds the last piece in the tray
func (s *Session) onlyPiece(slot int) bool {
	for i, p := range s.tray {
		if i != slot && p != nil {
			return false
		}
	}
	return s.tray[slot] != nil
}

func (s *Session) draw() ([]*puzzle.Piece, error) {
	drawn, err := s.gen.GeneratePieces()
	if err != nil {
		return nil, errors.Wrap(err, "failed to draw tray")
	}
	return drawn, nil
}

func (s *Session) refill() error {
	drawn, err := s.draw()
	if err != nil {
		return err
	}
	copy(s.tray[:], drawn)
	return nil
}
