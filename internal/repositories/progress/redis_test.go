package progress_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/block-cats/internal/errors"
	"github.com/KirkDiggler/block-cats/internal/progression"
	"github.com/KirkDiggler/block-cats/internal/quests"
	"github.com/KirkDiggler/block-cats/internal/repositories/progress"
	"github.com/KirkDiggler/block-cats/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr   *miniredis.Miniredis
	repo progress.Repository
	ctx  context.Context
	now  time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, mr := testutils.CreateTestRedisClient(s.T())
	s.mr = mr

	repo, err := progress.NewRedisRepository(&progress.Config{Client: client})
	s.Require().NoError(err)
	s.repo = repo

	s.ctx = context.Background()
	s.now = time.Date(2026, time.October, 19, 9, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TestNewRedisRepositoryRequiresClient() {
	_, err := progress.NewRedisRepository(&progress.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = progress.NewRedisRepository(nil)
	s.Require().Error(err)
}

func (s *RedisRepositoryTestSuite) TestQuestProgressRoundTrip() {
	want := quests.NewQuestProgress(s.now)
	want.Daily.Slots[1].Progress = 4
	want.Daily.Slots[2].Claimed = true
	want.Weekly.Progress = 2

	err := s.repo.SaveQuestProgress(s.ctx, progress.SaveQuestProgressInput{
		PlayerID: "p1",
		Progress: want,
	})
	s.Require().NoError(err)
	s.True(s.mr.Exists("quest_progress:p1"))

	out, err := s.repo.GetQuestProgress(s.ctx, progress.GetInput{PlayerID: "p1"})
	s.Require().NoError(err)
	s.Equal(want, out.Progress)
}

func (s *RedisRepositoryTestSuite) TestPlayerProgressRoundTrip() {
	want := progression.NewPlayerProgress("whiskers")
	want = progression.Grant(want, 250, want.Inventory.ItemCounts)

	err := s.repo.SavePlayerProgress(s.ctx, progress.SavePlayerProgressInput{
		PlayerID: "p1",
		Progress: want,
	})
	s.Require().NoError(err)
	s.True(s.mr.Exists("player_progress:p1"))

	out, err := s.repo.GetPlayerProgress(s.ctx, progress.GetInput{PlayerID: "p1"})
	s.Require().NoError(err)
	s.Equal(want, out.Progress)
}

func (s *RedisRepositoryTestSuite) TestMissingKeyIsNotFound() {
	_, err := s.repo.GetQuestProgress(s.ctx, progress.GetInput{PlayerID: "nobody"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))

	_, err = s.repo.GetPlayerProgress(s.ctx, progress.GetInput{PlayerID: "nobody"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestCorruptBlobIsDataLoss() {
	s.Require().NoError(s.mr.Set("quest_progress:p1", "{not json"))
	s.Require().NoError(s.mr.Set("player_progress:p1", "[]"))

	_, err := s.repo.GetQuestProgress(s.ctx, progress.GetInput{PlayerID: "p1"})
	s.Require().Error(err)
	s.True(errors.IsDataLoss(err))

	_, err = s.repo.GetPlayerProgress(s.ctx, progress.GetInput{PlayerID: "p1"})
	s.Require().Error(err)
	s.True(errors.IsDataLoss(err))
}

func (s *RedisRepositoryTestSuite) TestEmptyPlayerID() {
	_, err := s.repo.GetQuestProgress(s.ctx, progress.GetInput{})
	s.True(errors.IsInvalidArgument(err))

	err = s.repo.SavePlayerProgress(s.ctx, progress.SavePlayerProgressInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestUnavailable() {
	s.mr.Close()

	_, err := s.repo.GetQuestProgress(s.ctx, progress.GetInput{PlayerID: "p1"})
	s.Require().Error(err)
	s.Equal(errors.CodeUnavailable, errors.GetCode(err))
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
