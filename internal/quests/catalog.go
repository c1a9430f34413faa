package quests

import "github.com/KirkDiggler/block-cats/internal/entities"

var dailyPool = []DailyQuestDef{
	{ID: "daily_lines_10", Title: "Clear 10 lines", Type: TypeLinesCleared, Target: 10, Reward: Reward{Coins: 20}},
	{ID: "daily_lines_30", Title: "Clear 30 lines", Type: TypeLinesCleared, Target: 30, Reward: Reward{Coins: 50}},
	{ID: "daily_score_300", Title: "Score 300 in one game", Type: TypeBestScore, Target: 300, Reward: Reward{Coins: 30}},
	{ID: "daily_score_800", Title: "Score 800 in one game", Type: TypeBestScore, Target: 800,
		Reward: Reward{Coins: 60, Items: entities.ItemCounts{Reroll: 1}}},
	{ID: "daily_combo_3", Title: "Reach a 3x combo", Type: TypeMaxCombo, Target: 3, Reward: Reward{Coins: 30}},
	{ID: "daily_combo_5", Title: "Reach a 5x combo", Type: TypeMaxCombo, Target: 5, Reward: Reward{Coins: 60}},
	{ID: "daily_games_3", Title: "Play 3 games", Type: TypeGamesPlayed, Target: 3, Reward: Reward{Coins: 20}},
	{ID: "daily_blocks_50", Title: "Place 50 pieces", Type: TypeBlocksPlaced, Target: 50, Reward: Reward{Coins: 30}},
	{ID: "daily_multi_2", Title: "Clear 2 lines at once", Type: TypeMaxLinesAtOnce, Target: 2, Reward: Reward{Coins: 25}},
	{ID: "daily_multi_3", Title: "Clear 3 lines at once", Type: TypeMaxLinesAtOnce, Target: 3,
		Reward: Reward{Coins: 50, Items: entities.ItemCounts{LineBlast: 1}}},
	{ID: "daily_line_blast", Title: "Use a Line Blast", Type: TypeUseLineBlast, Target: 1, Reward: Reward{Coins: 15}},
	{ID: "daily_board_wipe", Title: "Use a Board Wipe", Type: TypeUseBoardWipe, Target: 1, Reward: Reward{Coins: 15}},
	{ID: "daily_reroll", Title: "Reroll your pieces", Type: TypeUseReroll, Target: 1, Reward: Reward{Coins: 15}},
	{ID: "daily_items_3", Title: "Use 3 items", Type: TypeUseItems, Target: 3,
		Reward: Reward{Coins: 40, Items: entities.ItemCounts{BoardWipe: 1}}},
}

var weeklyPool = []WeeklyQuestDef{
	{ID: "weekly_sets_3", Title: "Finish every daily quest on 3 days", Type: TypeDailySets, Target: 3,
		Reward: Reward{Coins: 150, Items: entities.ItemCounts{LineBlast: 1, Reroll: 1}}},
	{ID: "weekly_sets_4", Title: "Finish every daily quest on 4 days", Type: TypeDailySets, Target: 4,
		Reward: Reward{Coins: 220, Items: entities.ItemCounts{LineBlast: 2}}},
	{ID: "weekly_sets_5", Title: "Finish every daily quest on 5 days", Type: TypeDailySets, Target: 5,
		Reward: Reward{Coins: 300, Items: entities.ItemCounts{BoardWipe: 1, Reroll: 2}}},
}

// DailyPool returns a copy of the daily catalog
func DailyPool() []DailyQuestDef {
	return append([]DailyQuestDef(nil), dailyPool...)
}

// WeeklyPool returns a copy of the weekly catalog
func WeeklyPool() []WeeklyQuestDef {
	return append([]WeeklyQuestDef(nil), weeklyPool...)
}
