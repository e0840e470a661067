package tenant

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"grace-voice/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// CachedStore is a read-through Redis cache in front of another Store.
// The church record is read once per conversation turn, so a short TTL
// takes nearly all of that load off Postgres.
//
// Cache failures fall through to the inner store; a degraded cache must
// never fail a live call.
type CachedStore struct {
	inner Store
	rdb   *redis.Client
	ttl   time.Duration
}

// negativeTTL bounds how long a missing church ID is remembered.
// Kept shorter than ttl so newly provisioned churches go live quickly.
const negativeTTL = 5 * time.Second

// cacheMiss marks a cached ErrNotFound.
const cacheMiss = "!"

func NewCachedStore(inner Store, rdb *redis.Client, ttl time.Duration) *CachedStore {
	return &CachedStore{inner: inner, rdb: rdb, ttl: ttl}
}

func cacheKey(id string) string { return "church:" + id }

func (s *CachedStore) FindByID(ctx context.Context, id string) (Church, error) {
	if s.rdb == nil || s.ttl <= 0 {
		return s.inner.FindByID(ctx, id)
	}

	raw, err := s.rdb.Get(ctx, cacheKey(id)).Result()
	switch {
	case err == nil:
		if raw == cacheMiss {
			return Church{}, ErrNotFound
		}
		var c Church
		if jsonErr := json.Unmarshal([]byte(raw), &c); jsonErr == nil {
			return c, nil
		}
		// Corrupt payload: fall through and repopulate.
	case errors.Is(err, redis.Nil):
		// fall through
	default:
		logger.From(ctx).Warn("tenant cache read failed", "church_id", id, "err", err)
	}

	c, err := s.inner.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			if setErr := s.rdb.Set(ctx, cacheKey(id), cacheMiss, negativeTTL).Err(); setErr != nil {
				logger.From(ctx).Warn("tenant cache write failed", "church_id", id, "err", setErr)
			}
		}
		return Church{}, err
	}

	if buf, jsonErr := json.Marshal(c); jsonErr == nil {
		if setErr := s.rdb.Set(ctx, cacheKey(id), buf, s.ttl).Err(); setErr != nil {
			logger.From(ctx).Warn("tenant cache write failed", "church_id", id, "err", setErr)
		}
	}
	return c, nil
}
