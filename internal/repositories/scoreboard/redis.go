package scoreboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/KirkDiggler/hammer/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	latestKey      = "scoreboard:latest"
	matchKeyPrefix = "scoreboard:match:"
	matchIndexKey  = "scoreboard:matches"

	// DefaultChannel is the pub/sub channel snapshots are announced on
	DefaultChannel = "scoreboard:updates"

	// DefaultTTL is how long a snapshot outlives its last update
	DefaultTTL = 24 * time.Hour
)

// ErrScoreboardNotFound is returned when no snapshot is stored
var ErrScoreboardNotFound = errors.New("scoreboard not found")

// Config holds configuration for the Redis scoreboard repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// Channel defaults to DefaultChannel
	Channel string

	// TTL defaults to DefaultTTL
	TTL time.Duration

	Logger *slog.Logger
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client  *redis.Client
	channel string
	ttl     time.Duration
	logger  *slog.Logger
}

// NewRedis creates a new Redis-backed scoreboard repository
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

	repo := &redisRepository{
		client:  cfg.RedisClient,
		channel: cfg.Channel,
		ttl:     cfg.TTL,
		logger:  cfg.Logger,
	}
	if repo.channel == "" {
		repo.channel = DefaultChannel
	}
	if repo.ttl <= 0 {
		repo.ttl = DefaultTTL
	}
	if repo.logger == nil {
		repo.logger = slog.Default()
	}
	return repo, nil
}

func matchKey(id string) string {
	return fmt.Sprintf("%s%s", matchKeyPrefix, id)
}

// SaveScoreboard writes the snapshot and publishes it in one pipeline
func (r *redisRepository) SaveScoreboard(ctx context.Context, input *SaveScoreboardInput) error {
	if input == nil || input.Scoreboard == nil {
		return errors.New("input and scoreboard cannot be nil")
	}
	board := input.Scoreboard

	boardJSON, err := json.Marshal(board)
	if err != nil {
		return fmt.Errorf("failed to marshal scoreboard: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, latestKey, boardJSON, r.ttl)

	// idle snapshots before the first launch have no match yet
	if board.MatchID != "" {
		pipe.Set(ctx, matchKey(board.MatchID), boardJSON, r.ttl)
		pipe.ZAdd(ctx, matchIndexKey, redis.Z{
			Score:  float64(board.UpdatedAt.UnixNano()),
			Member: board.MatchID,
		})
		pipe.ZRemRangeByScore(ctx, matchIndexKey, "-inf",
			fmt.Sprintf("(%d", board.UpdatedAt.Add(-r.ttl).UnixNano()))
	}
	pipe.Publish(ctx, r.channel, boardJSON)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save scoreboard: %w", err)
	}
	return nil
}

// Publish stores board as the latest snapshot
func (r *redisRepository) Publish(ctx context.Context, board *models.Scoreboard) error {
	return r.SaveScoreboard(ctx, &SaveScoreboardInput{Scoreboard: board})
}

// GetLatestScoreboard retrieves the most recently saved snapshot from Redis
func (r *redisRepository) GetLatestScoreboard(ctx context.Context) (*models.Scoreboard, error) {
	return r.get(ctx, latestKey)
}

// GetScoreboard retrieves the last snapshot of a match from Redis
func (r *redisRepository) GetScoreboard(ctx context.Context, input *GetScoreboardInput) (*models.Scoreboard, error) {
	if input == nil || input.MatchID == "" {
		return nil, errors.New("input and match ID cannot be empty")
	}
	return r.get(ctx, matchKey(input.MatchID))
}

func (r *redisRepository) get(ctx context.Context, key string) (*models.Scoreboard, error) {
	boardJSON, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrScoreboardNotFound
		}
		return nil, fmt.Errorf("failed to get scoreboard: %w", err)
	}

	var board models.Scoreboard
	if err := json.Unmarshal([]byte(boardJSON), &board); err != nil {
		return nil, fmt.Errorf("failed to unmarshal scoreboard: %w", err)
	}
	return &board, nil
}

// ListRecentMatches returns the ids of matches with a live snapshot, newest first
func (r *redisRepository) ListRecentMatches(ctx context.Context, input *ListRecentMatchesInput) (*ListRecentMatchesOutput, error) {
	stop := int64(-1)
	if input != nil && input.Limit > 0 {
		stop = int64(input.Limit) - 1
	}

	ids, err := r.client.ZRevRange(ctx, matchIndexKey, 0, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}

	return &ListRecentMatchesOutput{
		MatchIDs: ids,
	}, nil
}

// Subscribe streams snapshots published after the call. The channel is
// closed when ctx is done.
func (r *redisRepository) Subscribe(ctx context.Context) (<-chan *models.Scoreboard, error) {
	sub := r.client.Subscribe(ctx, r.channel)
	// wait for the subscription to be confirmed so no update is missed
	if _, err := sub.Receive(ctx); err != nil {
		sub.Close()
		return nil, fmt.Errorf("failed to subscribe to %s: %w", r.channel, err)
	}

	out := make(chan *models.Scoreboard)
	go func() {
		defer close(out)
		defer sub.Close()

		messages := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}
				var board models.Scoreboard
				if err := json.Unmarshal([]byte(msg.Payload), &board); err != nil {
					r.logger.WarnContext(ctx, "dropping malformed scoreboard update", "error", err)
					continue
				}
				select {
				case out <- &board:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}
