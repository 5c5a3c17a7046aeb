package league

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/gkha/league/internal/models"
)

const (
	// Key prefixes for Redis
	leagueKeyPrefix = "league:"
	leaguesIndexKey = "leagues"
)

// ErrLeagueNotFound is returned when a league is not found
var ErrLeagueNotFound = errors.New("league not found")

// Config holds configuration for the Redis league repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed league repository
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

// SaveLeague persists a league to Redis as one JSON document
func (r *redisRepository) SaveLeague(ctx context.Context, input *SaveLeagueInput) error {
	if input == nil || input.League == nil {
		return errors.New("input and league cannot be nil")
	}

	leagueJSON, err := json.Marshal(input.League)
	if err != nil {
		return fmt.Errorf("failed to marshal league: %w", err)
	}

	pipe := r.client.Pipeline()

	leagueKey := fmt.Sprintf("%s%s", leagueKeyPrefix, input.League.ID)
	pipe.Set(ctx, leagueKey, leagueJSON, 0)
	pipe.SAdd(ctx, leaguesIndexKey, input.League.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save league: %w", err)
	}

	return nil
}

// GetLeague retrieves a league by ID from Redis
func (r *redisRepository) GetLeague(ctx context.Context, input *GetLeagueInput) (*models.League, error) {
	if input == nil || input.LeagueID == "" {
		return nil, errors.New("input and league ID cannot be empty")
	}

	leagueKey := fmt.Sprintf("%s%s", leagueKeyPrefix, input.LeagueID)
	leagueJSON, err := r.client.Get(ctx, leagueKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrLeagueNotFound
		}
		return nil, fmt.Errorf("failed to get league: %w", err)
	}

	var league models.League
	if err := json.Unmarshal([]byte(leagueJSON), &league); err != nil {
		return nil, fmt.Errorf("failed to unmarshal league: %w", err)
	}

	return &league, nil
}

// ListLeagues retrieves every saved league ID
func (r *redisRepository) ListLeagues(ctx context.Context, input *ListLeaguesInput) (*ListLeaguesOutput, error) {
	ids, err := r.client.SMembers(ctx, leaguesIndexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list leagues: %w", err)
	}

	return &ListLeaguesOutput{
		LeagueIDs: ids,
	}, nil
}

// DeleteLeague removes a league and its index entry
func (r *redisRepository) DeleteLeague(ctx context.Context, input *DeleteLeagueInput) error {
	if input == nil || input.LeagueID == "" {
		return errors.New("input and league ID cannot be empty")
	}

	pipe := r.client.Pipeline()

	leagueKey := fmt.Sprintf("%s%s", leagueKeyPrefix, input.LeagueID)
	pipe.Del(ctx, leagueKey)
	pipe.SRem(ctx, leaguesIndexKey, input.LeagueID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete league: %w", err)
	}

	return nil
}
