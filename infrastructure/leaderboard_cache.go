package infrastructure

import (
	"context"
	"fmt"
	"strconv"

	"casinobot/domain/entities"

	"github.com/redis/go-redis/v9"
)

const (
	leaderboardKey      = "casino:leaderboard"
	leaderboardNamesKey = "casino:leaderboard:names"
)

// NewRedisClient connects to Redis and verifies the connection
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}
	return client, nil
}

// RedisLeaderboardCache keeps balances in a sorted set and display names in a hash
type RedisLeaderboardCache struct {
	client redis.UniversalClient
}

// NewRedisLeaderboardCache creates a leaderboard cache on the given client
func NewRedisLeaderboardCache(client redis.UniversalClient) *RedisLeaderboardCache {
	return &RedisLeaderboardCache{client: client}
}

// Top returns the highest balances. ok is false when the cache holds nothing.
func (c *RedisLeaderboardCache) Top(ctx context.Context, limit int) ([]*entities.LeaderboardEntry, bool, error) {
	scores, err := c.client.ZRevRangeWithScores(ctx, leaderboardKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, false, fmt.Errorf("failed to read leaderboard: %w", err)
	}
	if len(scores) == 0 {
		return nil, false, nil
	}

	members := make([]string, len(scores))
	for i, z := range scores {
		members[i] = z.Member.(string)
	}
	names, err := c.client.HMGet(ctx, leaderboardNamesKey, members...).Result()
	if err != nil {
		return nil, false, fmt.Errorf("failed to read leaderboard names: %w", err)
	}

	entries := make([]*entities.LeaderboardEntry, 0, len(scores))
	for i, z := range scores {
		discordID, err := strconv.ParseInt(members[i], 10, 64)
		if err != nil {
			return nil, false, fmt.Errorf("invalid leaderboard member %q: %w", members[i], err)
		}
		username, _ := names[i].(string)
		entries = append(entries, &entities.LeaderboardEntry{
			Rank:      i + 1,
			DiscordID: discordID,
			Username:  username,
			Balance:   int64(z.Score),
		})
	}
	return entries, true, nil
}

// SetBalance updates one account's score and name
func (c *RedisLeaderboardCache) SetBalance(ctx context.Context, discordID int64, username string, balance int64) error {
	member := strconv.FormatInt(discordID, 10)
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZAdd(ctx, leaderboardKey, redis.Z{Score: float64(balance), Member: member})
		if username != "" {
			pipe.HSet(ctx, leaderboardNamesKey, member, username)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to update leaderboard for %d: %w", discordID, err)
	}
	return nil
}

// Rebuild replaces the cache with the given accounts
func (c *RedisLeaderboardCache) Rebuild(ctx context.Context, accounts []*entities.Account) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, leaderboardKey, leaderboardNamesKey)
		if len(accounts) == 0 {
			return nil
		}

		members := make([]redis.Z, 0, len(accounts))
		names := make(map[string]any, len(accounts))
		for _, account := range accounts {
			member := strconv.FormatInt(account.DiscordID, 10)
			members = append(members, redis.Z{Score: float64(account.Balance), Member: member})
			names[member] = account.Username
		}
		pipe.ZAdd(ctx, leaderboardKey, members...)
		pipe.HSet(ctx, leaderboardNamesKey, names)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to rebuild leaderboard: %w", err)
	}
	return nil
}
