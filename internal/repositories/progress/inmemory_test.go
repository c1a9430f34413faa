package progress_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/block-cats/internal/errors"
	"github.com/KirkDiggler/block-cats/internal/progression"
	"github.com/KirkDiggler/block-cats/internal/quests"
	"github.com/KirkDiggler/block-cats/internal/repositories/progress"
)

func TestInMemoryRepository(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, time.October, 21, 18, 30, 0, 0, time.UTC)

	t.Run("round trips quest progress", func(t *testing.T) {
		repo := progress.NewInMemory()
		want := quests.NewQuestProgress(now)

		require.NoError(t, repo.SaveQuestProgress(ctx, progress.SaveQuestProgressInput{PlayerID: "p1", Progress: want}))

		out, err := repo.GetQuestProgress(ctx, progress.GetInput{PlayerID: "p1"})
		require.NoError(t, err)
		assert.Equal(t, want, out.Progress)
	})

	t.Run("stored value is a copy", func(t *testing.T) {
		repo := progress.NewInMemory()
		p := progression.NewPlayerProgress("mittens")

		require.NoError(t, repo.SavePlayerProgress(ctx, progress.SavePlayerProgressInput{PlayerID: "p1", Progress: p}))
		p.OwnedSets[0] = "mutated"

		out, err := repo.GetPlayerProgress(ctx, progress.GetInput{PlayerID: "p1"})
		require.NoError(t, err)
		assert.Equal(t, []string{progression.DefaultSetID}, out.Progress.OwnedSets)
	})

	t.Run("missing is not found", func(t *testing.T) {
		repo := progress.NewInMemory()

		_, err := repo.GetPlayerProgress(ctx, progress.GetInput{PlayerID: "p1"})
		assert.True(t, errors.IsNotFound(err))
	})

	t.Run("corrupt blob is data loss", func(t *testing.T) {
		repo := progress.NewInMemory()
		repo.PutRaw("quest_progress:p1", []byte(`{"daily":7}`))

		_, err := repo.GetQuestProgress(ctx, progress.GetInput{PlayerID: "p1"})
		assert.True(t, errors.IsDataLoss(err))
	})
}
