package progress

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/block-cats/internal/progression"
)

// Event types published on the bus after progress is saved
const (
	EventQuestClaimed           = "blockcats.quest.claimed"
	EventIconUnlocked           = "blockcats.icon.unlocked"
	EventCosmeticQuestCompleted = "blockcats.cosmetic_quest.completed"
	EventSetUnlocked            = "blockcats.set.unlocked"
)

// Keys set on an event's context
const (
	KeyQuestKind = "quest_kind"
	KeyCoins     = "coins"
	KeyUnlockID  = "unlock_id"
)

// Quest kinds carried by EventQuestClaimed
const (
	QuestKindDaily  = "daily"
	QuestKindWeekly = "weekly"
)

// PlayerEntityType identifies players as toolkit entities
const PlayerEntityType = "player"

// Player is the source entity of every progress event
type Player struct {
	ID string
}

// GetID returns the player ID
func (p Player) GetID() string { return p.ID }

// GetType returns the entity type
func (p Player) GetType() string { return PlayerEntityType }

// publish sends one event. Progress is already saved when this runs, so a
// failing handler is logged and not returned.
func (o *orchestrator) publish(ctx context.Context, eventType, playerID string, data map[string]interface{}) {
	event := events.NewGameEvent(eventType, Player{ID: playerID}, nil)
	for k, v := range data {
		event.Context().Set(k, v)
	}

	if err := o.bus.Publish(ctx, event); err != nil {
		slog.Warn("Progress event handler failed",
			"event", eventType,
			"player_id", playerID,
			"error", err)
	}
}

func (o *orchestrator) publishUnlocks(ctx context.Context, playerID string, unlocks progression.Unlocks) {
	for _, id := range unlocks.Icons {
		o.publish(ctx, EventIconUnlocked, playerID, map[string]interface{}{KeyUnlockID: id})
	}
	for _, id := range unlocks.CosmeticQuests {
		o.publish(ctx, EventCosmeticQuestCompleted, playerID, map[string]interface{}{KeyUnlockID: id})
	}
	for _, id := range unlocks.Sets {
		o.publish(ctx, EventSetUnlocked, playerID, map[string]interface{}{KeyUnlockID: id})
	}
}
