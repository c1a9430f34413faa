package progression_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/block-cats/internal/entities"
	"github.com/KirkDiggler/block-cats/internal/errors"
	"github.com/KirkDiggler/block-cats/internal/progression"
)

type ProgressionTestSuite struct {
	suite.Suite
	player progression.PlayerProgress
}

func TestProgressionSuite(t *testing.T) {
	suite.Run(t, new(ProgressionTestSuite))
}

func (s *ProgressionTestSuite) SetupTest() {
	s.player = progression.NewPlayerProgress("whiskers")
}

func (s *ProgressionTestSuite) TestNewPlayerProgress() {
	s.Equal("whiskers", s.player.Nickname)
	s.Equal(progression.DefaultSetID, s.player.Equipped.Skin)
	s.True(s.player.Owns(progression.DefaultSetID))
	s.Positive(s.player.Inventory.Total())
	s.Equal(0, progression.TotalStars(s.player))
}

func (s *ProgressionTestSuite) TestTotalStarsIsPure() {
	s.player.UnlockedIcons = []string{"icon_first_game", "icon_combo_4"}
	s.player.CompletedCosmeticQuests = []string{"cq_blaster"}
	s.player.OwnedSets = []string{progression.DefaultSetID, "midnight", "sakura"}

	first := progression.TotalStars(s.player)
	s.Equal(first, progression.TotalStars(s.player))
	s.Equal(1+3+2+2*progression.SetBonusStars, first)
}

func (s *ProgressionTestSuite) TestTotalStarsGrowsByIconValue() {
	for _, icon := range progression.Icons() {
		before := progression.TotalStars(s.player)
		next, err := progression.UnlockIcon(s.player, icon.ID)
		s.Require().NoError(err)
		s.Equal(before+icon.Stars, progression.TotalStars(next), icon.ID)
		s.player = next
	}
}

func (s *ProgressionTestSuite) TestTotalStarsIgnoresDuplicatesAndUnknown() {
	s.player.UnlockedIcons = []string{"icon_regular", "icon_regular", "icon_gone"}
	s.player.OwnedSets = []string{progression.DefaultSetID, "neon", "neon"}

	s.Equal(2+progression.SetBonusStars, progression.TotalStars(s.player))
}

func (s *ProgressionTestSuite) TestRecordGameUnlocks() {
	next, unlocks := progression.RecordGame(s.player, entities.GameStats{
		FinalScore: 640,
		TotalLines: 12,
		MaxCombo:   4,
		ItemUses:   entities.ItemCounts{LineBlast: 1},
	})

	s.Equal(1, next.Lifetime.GamesPlayed)
	s.Equal(640, next.Lifetime.HighestScore)
	s.Equal(12, next.Lifetime.LinesCleared)
	s.Equal(1, next.Lifetime.ItemUses.LineBlast)
	s.ElementsMatch([]string{"icon_first_game", "icon_score_500", "icon_combo_4"}, unlocks.Icons)
	s.Empty(unlocks.CosmeticQuests)
	s.Empty(s.player.UnlockedIcons, "input must be untouched")

	again, unlocks := progression.RecordGame(next, entities.GameStats{FinalScore: 10})
	s.True(unlocks.Empty())
	s.Equal(640, again.Lifetime.HighestScore)
	s.Equal(2, again.Lifetime.GamesPlayed)
}

func (s *ProgressionTestSuite) TestCosmeticQuestGrantsSet() {
	s.player.Lifetime.ItemUses.LineBlast = 19

	next, unlocks := progression.RecordGame(s.player, entities.GameStats{
		ItemUses: entities.ItemCounts{LineBlast: 1},
	})

	s.Equal([]string{"cq_blaster"}, unlocks.CosmeticQuests)
	s.Equal([]string{"midnight"}, unlocks.Sets)
	s.True(next.Owns("midnight"))
	s.Contains(unlocks.Icons, "icon_items_10")
	s.Equal(1+2+2+progression.SetBonusStars, progression.TotalStars(next))
}

func (s *ProgressionTestSuite) TestGrant() {
	next := progression.Grant(s.player, 40, entities.ItemCounts{Reroll: 1})

	s.Equal(40, next.Coins)
	s.Equal(s.player.Inventory.Reroll+1, next.Inventory.Reroll)
}

func (s *ProgressionTestSuite) TestPurchaseAndEquip() {
	_, err := progression.PurchaseSet(s.player, "midnight")
	s.True(errors.IsFailedPrecondition(err))

	_, err = progression.PurchaseSet(s.player, "tabby")
	s.True(errors.IsNotFound(err))

	_, err = progression.Equip(s.player, "midnight")
	s.True(errors.IsFailedPrecondition(err))

	s.player.Coins = 600
	bought, err := progression.PurchaseSet(s.player, "midnight")
	s.Require().NoError(err)
	s.Equal(100, bought.Coins)
	s.True(bought.Owns("midnight"))
	s.False(s.player.Owns("midnight"))

	_, err = progression.PurchaseSet(bought, "midnight")
	s.True(errors.IsFailedPrecondition(err))
	_, err = progression.PurchaseSet(bought, "pixel")
	s.True(errors.IsFailedPrecondition(err), "quest-only sets cannot be bought")

	equipped, err := progression.Equip(bought, "midnight")
	s.Require().NoError(err)
	s.Equal("midnight", equipped.Equipped.Skin)
}

func (s *ProgressionTestSuite) TestUnlockIconUnknown() {
	_, err := progression.UnlockIcon(s.player, "icon_missing")
	s.True(errors.IsNotFound(err))
}
