package progress

import (
	"github.com/KirkDiggler/block-cats/internal/entities"
	"github.com/KirkDiggler/block-cats/internal/progression"
	"github.com/KirkDiggler/block-cats/internal/quests"
)

// GetQuestsInput contains the player whose quests to load
type GetQuestsInput struct {
	PlayerID string
}

// GetQuestsOutput contains quest progress rolled over to today
type GetQuestsOutput struct {
	Quests quests.QuestProgress
}

// RecordGameInput contains a finished game session
type RecordGameInput struct {
	PlayerID string
	Stats    entities.GameStats
	// Inventory is what the session had left; nil leaves the stored
	// inventory untouched
	Inventory *entities.Inventory
}

// RecordGameOutput contains progress after the game was folded in
type RecordGameOutput struct {
	Quests  quests.QuestProgress
	Player  progression.PlayerProgress
	Unlocks progression.Unlocks
}

// ClaimDailyQuestInput contains the daily slot to claim
type ClaimDailyQuestInput struct {
	PlayerID string
	Slot     int
}

// ClaimWeeklyQuestInput contains the player claiming the weekly quest
type ClaimWeeklyQuestInput struct {
	PlayerID string
}

// ClaimOutput is the result of a claim. Claimed is false when the quest was
// not complete; nothing is paid or persisted in that case.
type ClaimOutput struct {
	Claimed bool
	Reward  quests.Reward
	Quests  quests.QuestProgress
	Player  progression.PlayerProgress
}

// GetPlayerInput contains the player to load
type GetPlayerInput struct {
	PlayerID string
}

// GetPlayerOutput contains a player's collection and star total
type GetPlayerOutput struct {
	Player     progression.PlayerProgress
	TotalStars int
}

// PurchaseSetInput contains the set to buy with coins
type PurchaseSetInput struct {
	PlayerID string
	SetID    string
}

// EquipSetInput contains the owned set to wear
type EquipSetInput struct {
	PlayerID string
	SetID    string
}

// UpdatePlayerOutput contains the player after a collection change
type UpdatePlayerOutput struct {
	Player progression.PlayerProgress
}
