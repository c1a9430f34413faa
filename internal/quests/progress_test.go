package quests_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/block-cats/internal/entities"
	"github.com/KirkDiggler/block-cats/internal/quests"
)

type ProgressTestSuite struct {
	suite.Suite
	progress quests.QuestProgress
}

func TestProgressSuite(t *testing.T) {
	suite.Run(t, new(ProgressTestSuite))
}

func (s *ProgressTestSuite) SetupTest() {
	s.progress = quests.QuestProgress{
		Daily: quests.DailyState{
			Date: "2026-10-20",
			Slots: [quests.DailySlots]quests.DailySlot{
				{Quest: quests.DailyQuestDef{ID: "lines", Type: quests.TypeLinesCleared, Target: 10, Reward: quests.Reward{Coins: 20}}},
				{Quest: quests.DailyQuestDef{ID: "score", Type: quests.TypeBestScore, Target: 300, Reward: quests.Reward{Coins: 30}}},
				{Quest: quests.DailyQuestDef{ID: "items", Type: quests.TypeUseItems, Target: 2,
					Reward: quests.Reward{Items: entities.ItemCounts{Reroll: 1}}}},
			},
		},
		Weekly: quests.WeeklyState{
			Quest:     quests.WeeklyQuestDef{ID: "weekly", Type: quests.TypeDailySets, Target: 2, Reward: quests.Reward{Coins: 100}},
			WeekStart: "2026-10-19",
		},
	}
}

func (s *ProgressTestSuite) TestCounterMapping() {
	c := quests.DailyCounters{
		ItemUses:       entities.ItemCounts{LineBlast: 1, BoardWipe: 2, Reroll: 3},
		GamesPlayed:    4,
		LinesCleared:   5,
		BlocksPlaced:   6,
		BestScore:      7,
		MaxLinesAtOnce: 8,
		MaxCombo:       9,
	}

	testCases := []struct {
		questType quests.QuestType
		want      int
	}{
		{quests.TypeUseLineBlast, 1},
		{quests.TypeUseBoardWipe, 2},
		{quests.TypeUseReroll, 3},
		{quests.TypeGamesPlayed, 4},
		{quests.TypeLinesCleared, 5},
		{quests.TypeBlocksPlaced, 6},
		{quests.TypeBestScore, 7},
		{quests.TypeMaxLinesAtOnce, 8},
		{quests.TypeMaxCombo, 9},
		{quests.TypeUseItems, 6},
		{quests.QuestType("pet_the_cat"), 0},
		{quests.TypeDailySets, 0},
	}

	for _, tc := range testCases {
		s.Run(string(tc.questType), func() {
			s.Equal(tc.want, c.Value(tc.questType))
		})
	}
}

func (s *ProgressTestSuite) TestCatalogTypesAreMapped() {
	for _, q := range quests.DailyPool() {
		s.True(quests.KnownDailyType(q.Type), q.ID)
		s.Positive(q.Target, q.ID)
		s.False(q.Reward.IsZero(), q.ID)
	}
	s.GreaterOrEqual(len(quests.DailyPool()), quests.DailySlots)
	for _, q := range quests.WeeklyPool() {
		s.Equal(quests.TypeDailySets, q.Type, q.ID)
	}
}

func (s *ProgressTestSuite) TestApplyGameStats() {
	p := quests.ApplyGameStats(s.progress, entities.GameStats{
		TotalLines:     6,
		BlocksPlaced:   20,
		FinalScore:     250,
		MaxLinesAtOnce: 2,
		MaxCombo:       3,
		ItemUses:       entities.ItemCounts{LineBlast: 1},
	})
	p = quests.ApplyGameStats(p, entities.GameStats{
		TotalLines: 5,
		FinalScore: 120,
		MaxCombo:   1,
		ItemUses:   entities.ItemCounts{Reroll: 1},
	})

	s.Equal(2, p.Counters.GamesPlayed)
	s.Equal(11, p.Counters.LinesCleared)
	s.Equal(20, p.Counters.BlocksPlaced)
	s.Equal(250, p.Counters.BestScore)
	s.Equal(3, p.Counters.MaxCombo)
	s.Equal(2, p.Counters.MaxLinesAtOnce)

	s.Equal(11, p.Daily.Slots[0].Progress)
	s.Equal(250, p.Daily.Slots[1].Progress)
	s.Equal(2, p.Daily.Slots[2].Progress)
	s.True(quests.DailyComplete(p, 0))
	s.False(quests.DailyComplete(p, 1))
	s.True(quests.DailyComplete(p, 2))
	s.False(quests.DailyComplete(p, 3))
}

func (s *ProgressTestSuite) TestApplyGameStatsSkipsClaimedSlots() {
	s.progress.Daily.Slots[0].Claimed = true
	s.progress.Daily.Slots[0].Progress = 10

	p := quests.ApplyGameStats(s.progress, entities.GameStats{TotalLines: 40})
	s.Equal(10, p.Daily.Slots[0].Progress)
}

func (s *ProgressTestSuite) TestUnknownTypeNeverCompletes() {
	s.progress.Daily.Slots[1].Quest.Type = quests.QuestType("retired_type")

	p := quests.ApplyGameStats(s.progress, entities.GameStats{FinalScore: 99999})
	s.Equal(0, p.Daily.Slots[1].Progress)
	s.False(quests.DailyComplete(p, 1))
}

func (s *ProgressTestSuite) TestClaimIncompleteIsNoop() {
	s.progress.Daily.Slots[0].Progress = 9

	next, reward, ok := quests.ClaimDaily(s.progress, 0)
	s.False(ok)
	s.True(reward.IsZero())
	s.Equal(s.progress, next)

	next, _, ok = quests.ClaimDaily(s.progress, 7)
	s.False(ok)
	s.Equal(s.progress, next)
}

func (s *ProgressTestSuite) TestClaimDaily() {
	s.progress.Daily.Slots[0].Progress = 10

	next, reward, ok := quests.ClaimDaily(s.progress, 0)
	s.True(ok)
	s.Equal(20, reward.Coins)
	s.True(next.Daily.Slots[0].Claimed)
	s.False(s.progress.Daily.Slots[0].Claimed, "input must be untouched")
	s.Equal(0, next.Weekly.Progress)

	again, _, ok := quests.ClaimDaily(next, 0)
	s.False(ok)
	s.Equal(next, again)
}

func (s *ProgressTestSuite) TestClaimingFullSetCreditsWeek() {
	p := quests.ApplyGameStats(s.progress, entities.GameStats{
		TotalLines: 10,
		FinalScore: 300,
		ItemUses:   entities.ItemCounts{BoardWipe: 2},
	})

	var ok bool
	for slot := 0; slot < quests.DailySlots; slot++ {
		s.Equal(0, p.Weekly.Progress)
		p, _, ok = quests.ClaimDaily(p, slot)
		s.Require().True(ok)
	}

	s.Equal(1, p.Weekly.Progress)
	s.Equal(1, p.Daily.SetsCompleted)
	s.True(quests.AllDailyClaimed(p))
}

func (s *ProgressTestSuite) TestClaimWeekly() {
	s.progress.Weekly.Progress = 1
	next, _, ok := quests.ClaimWeekly(s.progress)
	s.False(ok)
	s.Equal(s.progress, next)

	s.progress.Weekly.Progress = 2
	next, reward, ok := quests.ClaimWeekly(s.progress)
	s.True(ok)
	s.Equal(100, reward.Coins)
	s.True(next.Weekly.Claimed)

	_, _, ok = quests.ClaimWeekly(next)
	s.False(ok)
}
