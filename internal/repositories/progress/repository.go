// Package progress provides the storage repository for quest and player
// progress. Both are stored as opaque JSON blobs under fixed string keys.
package progress

import (
	"context"

	"github.com/KirkDiggler/block-cats/internal/progression"
	"github.com/KirkDiggler/block-cats/internal/quests"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=progressmock github.com/KirkDiggler/block-cats/internal/repositories/progress Repository

// GetInput identifies whose progress to read
type GetInput struct {
	PlayerID string
}

// GetQuestProgressOutput contains the stored quest progress
type GetQuestProgressOutput struct {
	Progress quests.QuestProgress
}

// SaveQuestProgressInput contains quest progress to store
type SaveQuestProgressInput struct {
	PlayerID string
	Progress quests.QuestProgress
}

// GetPlayerProgressOutput contains the stored player progress
type GetPlayerProgressOutput struct {
	Progress progression.PlayerProgress
}

// SavePlayerProgressInput contains player progress to store
type SavePlayerProgressInput struct {
	PlayerID string
	Progress progression.PlayerProgress
}

// Repository defines storage for persisted progress. Get methods return a
// NotFound error for a missing key and a DataLoss error for a blob that
// cannot be decoded.
type Repository interface {
	// GetQuestProgress reads a player's quest progress
	GetQuestProgress(ctx context.Context, input GetInput) (*GetQuestProgressOutput, error)

	// SaveQuestProgress replaces a player's quest progress
	SaveQuestProgress(ctx context.Context, input SaveQuestProgressInput) error

	// GetPlayerProgress reads a player's collection progress
	GetPlayerProgress(ctx context.Context, input GetInput) (*GetPlayerProgressOutput, error)

	// SavePlayerProgress replaces a player's collection progress
	SavePlayerProgress(ctx context.Context, input SavePlayerProgressInput) error
}
