// Package testutils provides utilities for testing, including Redis test helpers
package testutils

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/block-cats/internal/redis"
)

// CreateTestRedisClient creates an in-memory Redis client for testing. The
// returned server can be used to seed or corrupt stored blobs.
func CreateTestRedisClient(t *testing.T) (redis.Client, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to create miniredis")

	client, err := redis.NewClient(mr.Addr(), nil)
	require.NoError(t, err, "failed to create redis client")

	t.Cleanup(func() {
		_ = client.Close()
		mr.Close()
	})

	return client, mr
}
