package game_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/block-cats/internal/entities"
	"github.com/KirkDiggler/block-cats/internal/errors"
	"github.com/KirkDiggler/block-cats/internal/orchestrators/game"
	"github.com/KirkDiggler/block-cats/internal/pieces"
	"github.com/KirkDiggler/block-cats/internal/pkg/idgen"
	"github.com/KirkDiggler/block-cats/internal/puzzle"
)

// lowRoller always rolls 1, which draws an orange single every time
type lowRoller struct{}

func (lowRoller) Roll(_ int) (int, error) { return 1, nil }

func (lowRoller) RollN(count, _ int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		out[i] = 1
	}
	return out, nil
}

// highRoller always rolls the maximum, which draws the last catalog shape
type highRoller struct{}

func (highRoller) Roll(size int) (int, error) { return size, nil }

func (highRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		out[i] = size
	}
	return out, nil
}

// switchRoller rolls like lowRoller until broken is set
type switchRoller struct {
	broken bool
}

func (r *switchRoller) Roll(_ int) (int, error) {
	if r.broken {
		return 0, errors.Unavailable("dice unavailable")
	}
	return 1, nil
}

func (r *switchRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		v, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

type SessionTestSuite struct {
	suite.Suite
	session *game.Session
	placed  int
}

func (s *SessionTestSuite) SetupTest() {
	s.session = s.newSession(entities.ItemCounts{})
	s.placed = 0
}

func (s *SessionTestSuite) newSession(items entities.ItemCounts) *game.Session {
	session, err := game.NewSession(&game.Config{
		Generator:   pieces.NewGenerator(lowRoller{}),
		IDGenerator: idgen.NewSequential("game"),
		Inventory:   entities.Inventory{}.Grant(items),
		Skin:        "classic",
	})
	s.Require().NoError(err)
	return session
}

// place puts the next single at (row, col). With a tray of singles the slots
// are used in order and refilled after every third placement.
func (s *SessionTestSuite) place(row, col int) *game.PlaceResult {
	result, err := s.session.Place(s.placed%pieces.TraySize, row, col)
	s.Require().NoError(err)
	s.placed++
	return result
}

func (s *SessionTestSuite) TestNewSession() {
	s.Equal("game_1", s.session.GetID())
	s.Equal(game.EntityType, s.session.GetType())
	s.Equal(0, s.session.Score())
	s.Equal("classic", s.session.Stats().Skin)
	s.Equal(0, s.session.Board().FilledCount())

	tray := s.session.Tray()
	s.Len(tray, pieces.TraySize)
	for _, p := range tray {
		s.Require().NotNil(p)
		s.Equal("single", p.Shape.Name)
		s.Equal(puzzle.CatOrange, p.Cat)
	}
}

func (s *SessionTestSuite) TestNewSessionValidation() {
	_, err := game.NewSession(&game.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "Generator")
}

func (s *SessionTestSuite) TestPlaceWithoutClear() {
	result := s.place(4, 4)

	s.Equal(0, result.Points)
	s.Equal(0, result.Combo)
	s.False(result.Refilled)
	s.False(result.Stuck)
	s.Nil(s.session.Tray()[0])
	s.Equal(puzzle.Filled(puzzle.CatOrange), s.session.Board().At(4, 4))
	s.Equal(1, s.session.Stats().BlocksPlaced)
}

func (s *SessionTestSuite) TestTrayRefillsWhenEmpty() {
	s.place(0, 0)
	s.place(0, 1)
	result := s.place(0, 2)

	s.True(result.Refilled)
	for _, p := range s.session.Tray() {
		s.NotNil(p)
	}
}

func (s *SessionTestSuite) TestFailedRefillLeavesSessionUntouched() {
	roller := &switchRoller{}
	session, err := game.NewSession(&game.Config{
		Generator:   pieces.NewGenerator(roller),
		IDGenerator: idgen.NewSequential("game"),
	})
	s.Require().NoError(err)

	_, err = session.Place(0, 0, 0)
	s.Require().NoError(err)
	_, err = session.Place(1, 0, 1)
	s.Require().NoError(err)

	roller.broken = true
	_, err = session.Place(2, 0, 2)
	s.Require().Error(err)
	s.Equal(errors.CodeUnavailable, errors.GetCode(err))
	s.Equal(2, session.Board().FilledCount())
	s.True(session.Board().At(0, 2).IsEmpty())
	s.NotNil(session.Tray()[2])
	s.Equal(2, session.Stats().BlocksPlaced)

	roller.broken = false
	result, err := session.Place(2, 0, 2)
	s.Require().NoError(err)
	s.True(result.Refilled)
	s.Equal(3, session.Stats().BlocksPlaced)
}

func (s *SessionTestSuite) TestComboAcrossConsecutiveClears() {
	for col := 0; col < puzzle.Size-1; col++ {
		s.place(0, col)
		s.place(1, col)
	}

	first := s.place(0, 7)
	s.Equal(1, first.Clear.LinesCleared)
	s.Equal(1, first.Combo)
	s.Equal(10, first.Points)

	second := s.place(1, 7)
	s.Equal(2, second.Combo)
	s.Equal(12, second.Points)

	third := s.place(5, 5)
	s.Equal(0, third.Combo)
	s.Equal(0, third.Points)

	stats := s.session.Stats()
	s.Equal(22, s.session.Score())
	s.Equal(22, stats.FinalScore)
	s.Equal(2, stats.TotalLines)
	s.Equal(1, stats.MaxLinesAtOnce)
	s.Equal(2, stats.MaxCombo)
	s.Equal(1, stats.ComboEvents)
	s.Equal(17, stats.BlocksPlaced)
	s.Equal(1, s.session.Board().FilledCount())
}

func (s *SessionTestSuite) TestPlaceRejected() {
	s.place(2, 2)

	_, err := s.session.Place(1, 2, 2)
	s.Require().Error(err)
	reason, ok := puzzle.RejectionReason(err)
	s.True(ok)
	s.Equal(puzzle.RejectOccupied, reason)

	_, err = s.session.Place(1, 2, puzzle.Size)
	s.Require().Error(err)
	reason, _ = puzzle.RejectionReason(err)
	s.Equal(puzzle.RejectOutOfBounds, reason)

	s.NotNil(s.session.Tray()[1])
	s.Equal(1, s.session.Stats().BlocksPlaced)
}

func (s *SessionTestSuite) TestPlaceBadSlot() {
	_, err := s.session.Place(pieces.TraySize, 0, 0)
	s.True(errors.IsInvalidArgument(err))

	s.place(0, 0)
	_, err = s.session.Place(0, 1, 1)
	s.True(errors.IsInvalidArgument(err))
}

func (s *SessionTestSuite) TestUseItemWithoutStock() {
	_, err := s.session.UseItem(game.UseItemInput{Kind: entities.ItemBoardWipe})
	s.Require().Error(err)
	s.True(errors.IsResourceExhausted(err))
	s.Zero(s.session.Stats().ItemUses.Total())
}

func (s *SessionTestSuite) TestLineBlast() {
	s.session = s.newSession(entities.ItemCounts{LineBlast: 2})
	s.place(3, 0)
	s.place(4, 1)
	s.place(7, 7)

	result, err := s.session.UseItem(game.UseItemInput{
		Kind:      entities.ItemLineBlast,
		Row:       4,
		Col:       0,
		Direction: puzzle.DirectionRight,
	})
	s.Require().NoError(err)
	s.Equal(2, result.Effect.Count)
	s.Equal(1, result.Inventory.LineBlast)
	s.Equal(1, s.session.Board().FilledCount())
	s.Equal(0, s.session.Score())
	s.Equal(1, s.session.Stats().ItemUses.LineBlast)
}

func (s *SessionTestSuite) TestLineBlastValidatesBeforeSpending() {
	s.session = s.newSession(entities.ItemCounts{LineBlast: 1})

	_, err := s.session.UseItem(game.UseItemInput{Kind: entities.ItemLineBlast, Direction: "sideways"})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.session.UseItem(game.UseItemInput{Kind: entities.ItemLineBlast, Row: -1, Direction: puzzle.DirectionUp})
	s.True(errors.IsOutOfRange(err))

	s.Equal(1, s.session.Inventory().LineBlast)
}

func (s *SessionTestSuite) TestBoardWipe() {
	s.session = s.newSession(entities.ItemCounts{BoardWipe: 1})
	s.place(0, 0)
	s.place(5, 6)

	result, err := s.session.UseItem(game.UseItemInput{Kind: entities.ItemBoardWipe})
	s.Require().NoError(err)
	s.Equal(2, result.Effect.Count)
	s.Equal(0, s.session.Board().FilledCount())
	s.Equal(0, result.Inventory.BoardWipe)
}

func (s *SessionTestSuite) TestReroll() {
	s.session = s.newSession(entities.ItemCounts{Reroll: 1})
	s.place(0, 0)
	s.Nil(s.session.Tray()[0])

	_, err := s.session.UseItem(game.UseItemInput{Kind: entities.ItemReroll})
	s.Require().NoError(err)
	for _, p := range s.session.Tray() {
		s.NotNil(p)
	}
	s.Equal(1, s.session.Board().FilledCount())
	s.Equal(1, s.session.Stats().ItemUses.Reroll)
}

func (s *SessionTestSuite) TestUnknownItem() {
	_, err := s.session.UseItem(game.UseItemInput{Kind: "catnip"})
	s.True(errors.IsInvalidArgument(err))
}

func (s *SessionTestSuite) TestFinish() {
	s.place(0, 0)
	stats := s.session.Finish()
	s.True(s.session.Finished())
	s.Equal(1, stats.BlocksPlaced)
	s.Equal(stats, s.session.Finish())

	_, err := s.session.Place(1, 1, 1)
	s.True(errors.IsFailedPrecondition(err))

	_, err = s.session.UseItem(game.UseItemInput{Kind: entities.ItemReroll})
	s.True(errors.IsFailedPrecondition(err))
}

func TestSessionTestSuite(t *testing.T) {
	suite.Run(t, new(SessionTestSuite))
}
