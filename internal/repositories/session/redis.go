package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/moundworks/diceball/internal/models"
)

const (
	// Key prefixes for Redis
	sessionKeyPrefix  = "session:"
	joinCodeKeyPrefix = "joincode:"
	userOpenKeyPrefix = "user:open:"
	openSessionsKey   = "open_sessions"
)

// ErrSessionNotFound is returned when a session is not found
var ErrSessionNotFound = errors.New("session not found")

// ErrJoinCodeTaken is returned when another session already holds the
// join code; callers draw a new code and retry
var ErrJoinCodeTaken = errors.New("join code already claimed")

// Config holds configuration for the Redis session repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed session repository
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

// SaveSession persists a session and maintains its secondary indexes:
// the join code lookup (waiting sessions only), the per-user open
// session pointer and the open sessions set.
func (r *redisRepository) SaveSession(ctx context.Context, input *SaveSessionInput) error {
	if input == nil || input.Session == nil {
		return errors.New("input and session cannot be nil")
	}

	sess := input.Session
	sessionJSON, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	// A join code identifies at most one waiting session at a time. The
	// claim is SETNX so two concurrent creates drawing the same code
	// cannot both win; the loser draws a new code.
	if sess.JoinCode != "" && sess.Status == models.SessionStatusWaiting {
		joinCodeKey := fmt.Sprintf("%s%s", joinCodeKeyPrefix, sess.JoinCode)
		claimed, err := r.client.SetNX(ctx, joinCodeKey, sess.ID, 0).Result()
		if err != nil {
			return fmt.Errorf("failed to claim join code: %w", err)
		}
		if !claimed {
			holder, err := r.client.Get(ctx, joinCodeKey).Result()
			if err != nil && !errors.Is(err, redis.Nil) {
				return fmt.Errorf("failed to check join code holder: %w", err)
			}
			if holder != sess.ID {
				return ErrJoinCodeTaken
			}
		}
	}

	pipe := r.client.Pipeline()

	sessionKey := fmt.Sprintf("%s%s", sessionKeyPrefix, sess.ID)
	pipe.Set(ctx, sessionKey, sessionJSON, 0)

	if sess.JoinCode != "" && sess.Status != models.SessionStatusWaiting {
		pipe.Del(ctx, fmt.Sprintf("%s%s", joinCodeKeyPrefix, sess.JoinCode))
	}

	open := sess.Status == models.SessionStatusWaiting || sess.Status == models.SessionStatusActive
	if open {
		pipe.SAdd(ctx, openSessionsKey, sess.ID)
	} else {
		pipe.SRem(ctx, openSessionsKey, sess.ID)
	}

	for _, slot := range []*models.PlayerSlot{sess.HomePlayer, sess.AwayPlayer} {
		if slot == nil {
			continue
		}
		userKey := fmt.Sprintf("%s%s", userOpenKeyPrefix, slot.UserID)
		if open {
			pipe.Set(ctx, userKey, sess.ID, 0)
		} else {
			pipe.Del(ctx, userKey)
		}
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

// GetSession retrieves a session by ID from Redis
func (r *redisRepository) GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	sessionKey := fmt.Sprintf("%s%s", sessionKeyPrefix, input.SessionID)
	sessionJSON, err := r.client.Get(ctx, sessionKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var sess models.Session
	if err := json.Unmarshal([]byte(sessionJSON), &sess); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &sess, nil
}

// GetSessionByJoinCode retrieves the waiting session holding a join code
func (r *redisRepository) GetSessionByJoinCode(ctx context.Context, input *GetSessionByJoinCodeInput) (*models.Session, error) {
	if input == nil || input.JoinCode == "" {
		return nil, errors.New("input and join code cannot be empty")
	}

	joinCodeKey := fmt.Sprintf("%s%s", joinCodeKeyPrefix, input.JoinCode)
	sessionID, err := r.client.Get(ctx, joinCodeKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session ID for join code: %w", err)
	}

	return r.GetSession(ctx, &GetSessionInput{
		SessionID: sessionID,
	})
}

// GetOpenSessionByUser retrieves the user's waiting or active session
func (r *redisRepository) GetOpenSessionByUser(ctx context.Context, input *GetOpenSessionByUserInput) (*models.Session, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	userKey := fmt.Sprintf("%s%s", userOpenKeyPrefix, input.UserID)
	sessionID, err := r.client.Get(ctx, userKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get open session for user: %w", err)
	}

	return r.GetSession(ctx, &GetSessionInput{
		SessionID: sessionID,
	})
}

// DeleteSession removes a session and its indexes from Redis
func (r *redisRepository) DeleteSession(ctx context.Context, input *DeleteSessionInput) error {
	if input == nil || input.SessionID == "" {
		return errors.New("input and session ID cannot be empty")
	}

	// Fetch first so the secondary indexes can be cleaned up
	sess, err := r.GetSession(ctx, &GetSessionInput{
		SessionID: input.SessionID,
	})
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()

	pipe.Del(ctx, fmt.Sprintf("%s%s", sessionKeyPrefix, sess.ID))

	if sess.JoinCode != "" {
		pipe.Del(ctx, fmt.Sprintf("%s%s", joinCodeKeyPrefix, sess.JoinCode))
	}

	pipe.SRem(ctx, openSessionsKey, sess.ID)

	for _, slot := range []*models.PlayerSlot{sess.HomePlayer, sess.AwayPlayer} {
		if slot == nil {
			continue
		}
		pipe.Del(ctx, fmt.Sprintf("%s%s", userOpenKeyPrefix, slot.UserID))
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}
