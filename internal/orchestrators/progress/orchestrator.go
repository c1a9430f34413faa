// Package progress implements the progress orchestrator. It owns the
// load, rollover and save lifecycle of quest and player progress.
package progress

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/block-cats/internal/errors"
	"github.com/KirkDiggler/block-cats/internal/pkg/clock"
	"github.com/KirkDiggler/block-cats/internal/progression"
	"github.com/KirkDiggler/block-cats/internal/quests"
	progressrepo "github.com/KirkDiggler/block-cats/internal/repositories/progress"
)

// DefaultNickname is given to players created on first load
const DefaultNickname = "Player"

// Service defines the interface for progress operations
type Service interface {
	GetQuests(ctx context.Context, input *GetQuestsInput) (*GetQuestsOutput, error)
	RecordGame(ctx context.Context, input *RecordGameInput) (*RecordGameOutput, error)
	ClaimDailyQuest(ctx context.Context, input *ClaimDailyQuestInput) (*ClaimOutput, error)
	ClaimWeeklyQuest(ctx context.Context, input *ClaimWeeklyQuestInput) (*ClaimOutput, error)

	GetPlayer(ctx context.Context, input *GetPlayerInput) (*GetPlayerOutput, error)
	PurchaseSet(ctx context.Context, input *PurchaseSetInput) (*UpdatePlayerOutput, error)
	EquipSet(ctx context.Context, input *EquipSetInput) (*UpdatePlayerOutput, error)
}

// Config holds the dependencies for the progress orchestrator
type Config struct {
	Repository progressrepo.Repository
	Clock      clock.Clock
	EventBus   events.EventBus
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}

	return vb.Build()
}

type orchestrator struct {
	repo  progressrepo.Repository
	clock clock.Clock
	bus   events.EventBus
}

// NewOrchestrator creates a new progress orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		repo:  cfg.Repository,
		clock: cfg.Clock,
		bus:   cfg.EventBus,
	}, nil
}

// GetQuests loads quest progress, rolls it over to today and saves it
func (o *orchestrator) GetQuests(ctx context.Context, input *GetQuestsInput) (*GetQuestsOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	qp, err := o.loadQuests(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}
	if err := o.saveQuests(ctx, input.PlayerID, qp); err != nil {
		return nil, err
	}

	return &GetQuestsOutput{Quests: qp}, nil
}

// RecordGame folds a finished session into quest counters and lifetime
// progress, then persists both
func (o *orchestrator) RecordGame(ctx context.Context, input *RecordGameInput) (*RecordGameOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	qp, err := o.loadQuests(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}
	pp, err := o.loadPlayer(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	qp = quests.ApplyGameStats(qp, input.Stats)
	pp, unlocks := progression.RecordGame(pp, input.Stats)
	if input.Inventory != nil {
		pp.Inventory = *input.Inventory
	}

	if err := o.saveQuests(ctx, input.PlayerID, qp); err != nil {
		return nil, err
	}
	if err := o.savePlayer(ctx, input.PlayerID, pp); err != nil {
		return nil, err
	}

	slog.Info("Recorded game",
		"player_id", input.PlayerID,
		"score", input.Stats.FinalScore,
		"lines", input.Stats.TotalLines,
		"new_icons", len(unlocks.Icons),
		"new_sets", len(unlocks.Sets))

	o.publishUnlocks(ctx, input.PlayerID, unlocks)

	return &RecordGameOutput{
		Quests:  qp,
		Player:  pp,
		Unlocks: unlocks,
	}, nil
}

// ClaimDailyQuest settles one of today's slots and credits its reward
func (o *orchestrator) ClaimDailyQuest(ctx context.Context, input *ClaimDailyQuestInput) (*ClaimOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	return o.claim(ctx, input.PlayerID, QuestKindDaily, func(qp quests.QuestProgress) (quests.QuestProgress, quests.Reward, bool) {
		return quests.ClaimDaily(qp, input.Slot)
	})
}

// ClaimWeeklyQuest settles the weekly quest and credits its reward
func (o *orchestrator) ClaimWeeklyQuest(ctx context.Context, input *ClaimWeeklyQuestInput) (*ClaimOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	return o.claim(ctx, input.PlayerID, QuestKindWeekly, quests.ClaimWeekly)
}

func (o *orchestrator) claim(
	ctx context.Context,
	playerID string,
	kind string,
	settle func(quests.QuestProgress) (quests.QuestProgress, quests.Reward, bool),
) (*ClaimOutput, error) {
	qp, err := o.loadQuests(ctx, playerID)
	if err != nil {
		return nil, err
	}
	pp, err := o.loadPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}

	next, reward, ok := settle(qp)
	if !ok {
		return &ClaimOutput{Quests: qp, Player: pp}, nil
	}

	pp = progression.Grant(pp, reward.Coins, reward.Items)

	if err := o.saveQuests(ctx, playerID, next); err != nil {
		return nil, err
	}
	if err := o.savePlayer(ctx, playerID, pp); err != nil {
		return nil, err
	}

	slog.Info("Claimed quest reward",
		"player_id", playerID,
		"coins", reward.Coins,
		"items", reward.Items.Total(),
		"weekly_progress", next.Weekly.Progress)

	o.publish(ctx, EventQuestClaimed, playerID, map[string]interface{}{
		KeyQuestKind: kind,
		KeyCoins:     reward.Coins,
	})

	return &ClaimOutput{
		Claimed: true,
		Reward:  reward,
		Quests:  next,
		Player:  pp,
	}, nil
}

// GetPlayer loads a player's collection and totals their stars
func (o *orchestrator) GetPlayer(ctx context.Context, input *GetPlayerInput) (*GetPlayerOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	pp, err := o.loadPlayer(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	return &GetPlayerOutput{
		Player:     pp,
		TotalStars: progression.TotalStars(pp),
	}, nil
}

// PurchaseSet buys a cosmetic set with coins
func (o *orchestrator) PurchaseSet(ctx context.Context, input *PurchaseSetInput) (*UpdatePlayerOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	return o.updatePlayer(ctx, input.PlayerID, func(pp progression.PlayerProgress) (progression.PlayerProgress, error) {
		return progression.PurchaseSet(pp, input.SetID)
	})
}

// EquipSet wears an owned cosmetic set
func (o *orchestrator) EquipSet(ctx context.Context, input *EquipSetInput) (*UpdatePlayerOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	return o.updatePlayer(ctx, input.PlayerID, func(pp progression.PlayerProgress) (progression.PlayerProgress, error) {
		return progression.Equip(pp, input.SetID)
	})
}

func (o *orchestrator) updatePlayer(
	ctx context.Context,
	playerID string,
	apply func(progression.PlayerProgress) (progression.PlayerProgress, error),
) (*UpdatePlayerOutput, error) {
	pp, err := o.loadPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}

	pp, err = apply(pp)
	if err != nil {
		return nil, err
	}

	if err := o.savePlayer(ctx, playerID, pp); err != nil {
		return nil, err
	}

	return &UpdatePlayerOutput{Player: pp}, nil
}

// loadQuests reads stored quest progress and rolls it over to today.
// Missing or unreadable progress is replaced with a fresh day.
func (o *orchestrator) loadQuests(ctx context.Context, playerID string) (quests.QuestProgress, error) {
	now := o.clock.Now()

	out, err := o.repo.GetQuestProgress(ctx, progressrepo.GetInput{PlayerID: playerID})
	if err != nil {
		if !recoverable(err) {
			return quests.QuestProgress{}, errors.Wrapf(err, "failed to load quest progress for %s", playerID)
		}
		if errors.IsDataLoss(err) {
			slog.Warn("Discarding unreadable quest progress",
				"player_id", playerID,
				"error", err)
		}
		return quests.NewQuestProgress(now), nil
	}

	return quests.Refresh(out.Progress, now), nil
}

// loadPlayer reads stored player progress, creating a new player when
// nothing readable is stored
func (o *orchestrator) loadPlayer(ctx context.Context, playerID string) (progression.PlayerProgress, error) {
	out, err := o.repo.GetPlayerProgress(ctx, progressrepo.GetInput{PlayerID: playerID})
	if err != nil {
		if !recoverable(err) {
			return progression.PlayerProgress{}, errors.Wrapf(err, "failed to load player progress for %s", playerID)
		}
		if errors.IsDataLoss(err) {
			slog.Warn("Discarding unreadable player progress",
				"player_id", playerID,
				"error", err)
		}
		return progression.NewPlayerProgress(DefaultNickname), nil
	}

	return out.Progress, nil
}

func (o *orchestrator) saveQuests(ctx context.Context, playerID string, qp quests.QuestProgress) error {
	err := o.repo.SaveQuestProgress(ctx, progressrepo.SaveQuestProgressInput{
		PlayerID: playerID,
		Progress: qp,
	})
	if err != nil {
		return errors.Wrapf(err, "failed to save quest progress for %s", playerID)
	}
	return nil
}

func (o *orchestrator) savePlayer(ctx context.Context, playerID string, pp progression.PlayerProgress) error {
	err := o.repo.SavePlayerProgress(ctx, progressrepo.SavePlayerProgressInput{
		PlayerID: playerID,
		Progress: pp,
	})
	if err != nil {
		return errors.Wrapf(err, "failed to save player progress for %s", playerID)
	}
	return nil
}

func recoverable(err error) bool {
	return errors.IsNotFound(err) || errors.IsDataLoss(err)
}
