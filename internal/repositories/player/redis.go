package player

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/KirkDiggler/hammer/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	badgeKeyPrefix = "badge:"
	badgeIndexKey  = "badges"
)

// ErrPlayerNotFound is returned when a badge id is not in the directory
var ErrPlayerNotFound = errors.New("player not found")

// Config holds configuration for the Redis player repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed badge directory
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

func badgeKey(id string) string {
	return fmt.Sprintf("%s%s", badgeKeyPrefix, id)
}

// SavePlayer persists a directory entry to Redis
func (r *redisRepository) SavePlayer(ctx context.Context, input *SavePlayerInput) error {
	if input == nil || input.Player == nil {
		return errors.New("input and player cannot be nil")
	}

	if input.Player.BadgeID == "" {
		return errors.New("badge ID cannot be empty")
	}

	playerJSON, err := json.Marshal(input.Player)
	if err != nil {
		return fmt.Errorf("failed to marshal player: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, badgeKey(input.Player.BadgeID), playerJSON, 0)
	pipe.SAdd(ctx, badgeIndexKey, input.Player.BadgeID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save player: %w", err)
	}

	return nil
}

// GetPlayer retrieves a directory entry by exact badge id
func (r *redisRepository) GetPlayer(ctx context.Context, input *GetPlayerInput) (*models.Player, error) {
	if input == nil || input.BadgeID == "" {
		return nil, ErrPlayerNotFound
	}

	playerJSON, err := r.client.Get(ctx, badgeKey(input.BadgeID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	var player models.Player
	if err := json.Unmarshal([]byte(playerJSON), &player); err != nil {
		return nil, fmt.Errorf("failed to unmarshal player: %w", err)
	}

	return &player, nil
}

// ListPlayers retrieves every directory entry from Redis
func (r *redisRepository) ListPlayers(ctx context.Context) (*ListPlayersOutput, error) {
	ids, err := r.client.SMembers(ctx, badgeIndexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list badge ids: %w", err)
	}

	if len(ids) == 0 {
		return &ListPlayersOutput{Players: []*models.Player{}}, nil
	}
	sort.Strings(ids)

	pipe := r.client.Pipeline()
	cmds := make([]*redis.StringCmd, len(ids))
	for i, id := range ids {
		cmds[i] = pipe.Get(ctx, badgeKey(id))
	}

	// redis.Nil for an entry removed mid-listing is handled per command
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get players: %w", err)
	}

	players := make([]*models.Player, 0, len(ids))
	for i, cmd := range cmds {
		playerJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to get player %s: %w", ids[i], err)
		}

		var player models.Player
		if err := json.Unmarshal([]byte(playerJSON), &player); err != nil {
			return nil, fmt.Errorf("failed to unmarshal player %s: %w", ids[i], err)
		}
		players = append(players, &player)
	}

	return &ListPlayersOutput{Players: players}, nil
}

// ImportDirectory writes a batch of entries in one pipeline
func (r *redisRepository) ImportDirectory(ctx context.Context, input *ImportDirectoryInput) (*ImportDirectoryOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	incoming := make(map[string]struct{}, len(input.Players))
	for _, p := range input.Players {
		if p == nil || p.BadgeID == "" {
			return nil, errors.New("every entry needs a badge ID")
		}
		incoming[p.BadgeID] = struct{}{}
	}

	var stale []string
	if input.Replace {
		existing, err := r.client.SMembers(ctx, badgeIndexKey).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to list badge ids: %w", err)
		}
		for _, id := range existing {
			if _, ok := incoming[id]; !ok {
				stale = append(stale, id)
			}
		}
	}

	pipe := r.client.TxPipeline()
	for _, id := range stale {
		pipe.Del(ctx, badgeKey(id))
		pipe.SRem(ctx, badgeIndexKey, id)
	}
	for _, p := range input.Players {
		playerJSON, err := json.Marshal(p)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal player %s: %w", p.BadgeID, err)
		}
		pipe.Set(ctx, badgeKey(p.BadgeID), playerJSON, 0)
		pipe.SAdd(ctx, badgeIndexKey, p.BadgeID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to import directory: %w", err)
	}

	return &ImportDirectoryOutput{
		Imported: len(incoming),
		Removed:  len(stale),
	}, nil
}
