package infrastructure

import (
	"context"
	"testing"

	"casinobot/domain/entities"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupRedis(t *testing.T) *redis.Client {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping redis test in short mode")
	}
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections"),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("Warning: Failed to terminate redis container: %v", err)
		}
	})

	endpoint, err := container.Endpoint(ctx, "")
	require.NoError(t, err)

	client, err := NewRedisClient(ctx, endpoint, "", 0)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })
	return client
}

func TestRedisLeaderboardCache(t *testing.T) {
	client := setupRedis(t)
	cache := NewRedisLeaderboardCache(client)
	ctx := context.Background()

	entries, ok, err := cache.Top(ctx, 5)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, entries)

	require.NoError(t, cache.Rebuild(ctx, []*entities.Account{
		{DiscordID: 1, Username: "alice", Balance: 100},
		{DiscordID: 2, Username: "bob", Balance: 700},
		{DiscordID: 3, Username: "carol", Balance: 300},
	}))

	entries, ok, err = cache.Top(ctx, 2)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, entries, 2)
	assert.Equal(t, &entities.LeaderboardEntry{Rank: 1, DiscordID: 2, Username: "bob", Balance: 700}, entries[0])
	assert.Equal(t, &entities.LeaderboardEntry{Rank: 2, DiscordID: 3, Username: "carol", Balance: 300}, entries[1])

	require.NoError(t, cache.SetBalance(ctx, 1, "alice", 1000))

	entries, _, err = cache.Top(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), entries[0].DiscordID)
	assert.Equal(t, int64(1000), entries[0].Balance)

	require.NoError(t, cache.Rebuild(ctx, nil))
	_, ok, err = cache.Top(ctx, 5)
	require.NoError(t, err)
	assert.False(t, ok)
}
