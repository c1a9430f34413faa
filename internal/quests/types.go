// Package quests selects the daily and weekly quests for a calendar date,
// rolls progress over at day and week boundaries, and settles claims.
//
// Every function takes the current QuestProgress and returns the next one;
// callers decide when to persist.
package quests

import "github.com/KirkDiggler/block-cats/internal/entities"

// QuestType says which counter a quest reads
type QuestType string

// Quest types
const (
	TypeLinesCleared   QuestType = "lines_cleared"
	TypeBestScore      QuestType = "best_score"
	TypeMaxCombo       QuestType = "max_combo"
	TypeGamesPlayed    QuestType = "games_played"
	TypeBlocksPlaced   QuestType = "blocks_placed"
	TypeMaxLinesAtOnce QuestType = "max_lines_at_once"
	TypeUseLineBlast   QuestType = "use_line_blast"
	TypeUseBoardWipe   QuestType = "use_board_wipe"
	TypeUseReroll      QuestType = "use_reroll"
	TypeUseItems       QuestType = "use_items"

	// TypeDailySets is the weekly quest type; it counts days on which all
	// three daily quests were claimed.
	TypeDailySets QuestType = "daily_sets"
)

// DailySlots is how many daily quests are offered per day
const DailySlots = 3

// Reward is paid out when a quest is claimed
type Reward struct {
	Coins int                 `json:"coins"`
	Items entities.ItemCounts `json:"items"`
}

// IsZero reports whether the reward pays nothing
func (r Reward) IsZero() bool {
	return r.Coins == 0 && r.Items.Total() == 0
}

// DailyQuestDef is an immutable daily catalog entry
type DailyQuestDef struct {
	ID     string    `json:"id"`
	Title  string    `json:"title"`
	Type   QuestType `json:"type"`
	Target int       `json:"target"`
	Reward Reward    `json:"reward"`
}

// WeeklyQuestDef is an immutable weekly catalog entry
type WeeklyQuestDef struct {
	ID     string    `json:"id"`
	Title  string    `json:"title"`
	Type   QuestType `json:"type"`
	Target int       `json:"target"`
	Reward Reward    `json:"reward"`
}

// DailyCounters are the day-scoped totals the daily quests read. They reset
// at every daily rollover.
type DailyCounters struct {
	ItemUses       entities.ItemCounts `json:"item_uses"`
	GamesPlayed    int                 `json:"games_played"`
	LinesCleared   int                 `json:"lines_cleared"`
	BlocksPlaced   int                 `json:"blocks_placed"`
	BestScore      int                 `json:"best_score"`
	MaxLinesAtOnce int                 `json:"max_lines_at_once"`
	MaxCombo       int                 `json:"max_combo"`
}

// DailySlot is one of today's quests with its progress
type DailySlot struct {
	Quest    DailyQuestDef `json:"quest"`
	Progress int           `json:"progress"`
	Claimed  bool          `json:"claimed"`
}

// DailyState is the quest set generated for Date
type DailyState struct {
	Date  string                `json:"date"`
	Slots [DailySlots]DailySlot `json:"slots"`
	// SetsCompleted is how many full sets were claimed on Date
	SetsCompleted int `json:"sets_completed"`
}

// WeeklyState is the quest chosen for the week starting on WeekStart
type WeeklyState struct {
	Quest     WeeklyQuestDef `json:"quest"`
	Progress  int            `json:"progress"`
	Claimed   bool           `json:"claimed"`
	WeekStart string         `json:"week_start"`
}

// QuestProgress is the persisted quest state for one player
type QuestProgress struct {
	Daily    DailyState    `json:"daily"`
	Weekly   WeeklyState   `json:"weekly"`
	Counters DailyCounters `json:"counters"`
}
