package progress

import (
	"context"
	"encoding/json"

	"github.com/KirkDiggler/block-cats/internal/errors"
)

const (
	// Key patterns: quest_progress:{player_id}, player_progress:{player_id}
	questKeyPrefix  = "quest_progress:"
	playerKeyPrefix = "player_progress:"

	errPlayerIDEmpty = "player ID cannot be empty"
)

func questKey(playerID string) string {
	return questKeyPrefix + playerID
}

func playerKey(playerID string) string {
	return playerKeyPrefix + playerID
}

// blobStore is a string-keyed byte store. get returns a NotFound error for
// a missing key.
type blobStore interface {
	get(ctx context.Context, key string) ([]byte, error)
	set(ctx context.Context, key string, data []byte) error
}

// blobRepository implements Repository as JSON blobs in a blobStore
type blobRepository struct {
	store blobStore
}

// Ensure blobRepository implements Repository
var _ Repository = (*blobRepository)(nil)

// GetQuestProgress reads a player's quest progress
func (r *blobRepository) GetQuestProgress(ctx context.Context, input GetInput) (*GetQuestProgressOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	out := &GetQuestProgressOutput{}
	if err := r.load(ctx, questKey(input.PlayerID), &out.Progress); err != nil {
		return nil, err
	}
	return out, nil
}

// SaveQuestProgress replaces a player's quest progress
func (r *blobRepository) SaveQuestProgress(ctx context.Context, input SaveQuestProgressInput) error {
	if input.PlayerID == "" {
		return errors.InvalidArgument(errPlayerIDEmpty)
	}
	return r.save(ctx, questKey(input.PlayerID), input.Progress)
}

// GetPlayerProgress reads a player's collection progress
func (r *blobRepository) GetPlayerProgress(ctx context.Context, input GetInput) (*GetPlayerProgressOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	out := &GetPlayerProgressOutput{}
	if err := r.load(ctx, playerKey(input.PlayerID), &out.Progress); err != nil {
		return nil, err
	}
	return out, nil
}

// SavePlayerProgress replaces a player's collection progress
func (r *blobRepository) SavePlayerProgress(ctx context.Context, input SavePlayerProgressInput) error {
	if input.PlayerID == "" {
		return errors.InvalidArgument(errPlayerIDEmpty)
	}
	return r.save(ctx, playerKey(input.PlayerID), input.Progress)
}

func (r *blobRepository) load(ctx context.Context, key string, v any) error {
	data, err := r.store.get(ctx, key)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(data, v); err != nil {
		return errors.WrapWithCode(err, errors.CodeDataLoss, "stored progress is unreadable").
			WithMeta("key", key)
	}
	return nil
}

func (r *blobRepository) save(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal %s", key)
	}
	return r.store.set(ctx, key, data)
}
