package redis_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/block-cats/internal/redis"
)

func TestNewClient(t *testing.T) {
	t.Run("requires endpoint", func(t *testing.T) {
		client, err := redis.NewClient("", nil)
		assert.Error(t, err)
		assert.Nil(t, client)
	})

	t.Run("talks to server", func(t *testing.T) {
		mr := miniredis.RunT(t)

		client, err := redis.NewClient(mr.Addr(), &redis.Options{PoolSize: 2})
		require.NoError(t, err)
		defer func() { _ = client.Close() }()

		ctx := context.Background()
		require.NoError(t, client.Set(ctx, "k", "v", 0).Err())
		got, err := mr.Get("k")
		require.NoError(t, err)
		assert.Equal(t, "v", got)
	})
}
