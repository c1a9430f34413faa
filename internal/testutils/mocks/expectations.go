// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/block-cats/internal/progression"
	"github.com/KirkDiggler/block-cats/internal/quests"
	progressrepo "github.com/KirkDiggler/block-cats/internal/repositories/progress"
	progressrepomock "github.com/KirkDiggler/block-cats/internal/repositories/progress/mock"
)

// ExpectQuestProgressGet sets up a mock expectation for loading quest progress
func ExpectQuestProgressGet(
	ctx context.Context, mockRepo *progressrepomock.MockRepository,
	playerID string, qp quests.QuestProgress, err error,
) *gomock.Call {
	var out *progressrepo.GetQuestProgressOutput
	if err == nil {
		out = &progressrepo.GetQuestProgressOutput{Progress: qp}
	}
	return mockRepo.EXPECT().
		GetQuestProgress(ctx, progressrepo.GetInput{PlayerID: playerID}).
		Return(out, err)
}

// ExpectPlayerProgressGet sets up a mock expectation for loading player progress
func ExpectPlayerProgressGet(
	ctx context.Context, mockRepo *progressrepomock.MockRepository,
	playerID string, pp progression.PlayerProgress, err error,
) *gomock.Call {
	var out *progressrepo.GetPlayerProgressOutput
	if err == nil {
		out = &progressrepo.GetPlayerProgressOutput{Progress: pp}
	}
	return mockRepo.EXPECT().
		GetPlayerProgress(ctx, progressrepo.GetInput{PlayerID: playerID}).
		Return(out, err)
}

// ExpectQuestProgressSave sets up a mock expectation for saving quest
// progress. A non-nil saved receives the stored value.
func ExpectQuestProgressSave(
	ctx context.Context, mockRepo *progressrepomock.MockRepository,
	saved *quests.QuestProgress, err error,
) *gomock.Call {
	return mockRepo.EXPECT().
		SaveQuestProgress(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input progressrepo.SaveQuestProgressInput) error {
			if saved != nil {
				*saved = input.Progress
			}
			return err
		})
}

// ExpectPlayerProgressSave sets up a mock expectation for saving player
// progress. A non-nil saved receives the stored value.
func ExpectPlayerProgressSave(
	ctx context.Context, mockRepo *progressrepomock.MockRepository,
	saved *progression.PlayerProgress, err error,
) *gomock.Call {
	return mockRepo.EXPECT().
		SavePlayerProgress(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input progressrepo.SavePlayerProgressInput) error {
			if saved != nil {
				*saved = input.Progress
			}
			return err
		})
}
