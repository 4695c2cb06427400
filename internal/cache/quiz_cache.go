package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/cybermcq/mcq-backend/internal/model"
)

const keyPrefix = "quiz:candidates:"

// QuizCache is a best-effort Redis cache of the quiz-play projection, keyed
// by subject (empty subject id = the full-scan candidate set). A nil client
// disables it: every lookup misses and writes are no-ops, so the composer
// behaves identically without Redis. Cache failures are logged, never
// propagated.
type QuizCache struct {
	rdb *redis.Client
	ttl time.Duration
	log zerolog.Logger
}

// NewQuizCache creates a QuizCache. rdb may be nil.
func NewQuizCache(rdb *redis.Client, ttl time.Duration, log zerolog.Logger) *QuizCache {
	return &QuizCache{
		rdb: rdb,
		ttl: ttl,
		log: log.With().Str("component", "quiz_cache").Logger(),
	}
}

func cacheKey(subjectID string) string {
	if subjectID == "" {
		return keyPrefix + "all"
	}
	return keyPrefix + subjectID
}

// Get returns the cached candidate set for a subject, if present.
func (c *QuizCache) Get(ctx context.Context, subjectID string) ([]model.QuizQuestion, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, cacheKey(subjectID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Msg("Cache read failed")
		}
		return nil, false
	}

	var items []model.QuizQuestion
	if err := json.Unmarshal(raw, &items); err != nil {
		c.log.Warn().Err(err).Msg("Cache entry corrupt, dropping")
		c.rdb.Del(ctx, cacheKey(subjectID))
		return nil, false
	}
	return items, true
}

// Set stores the candidate set for a subject.
func (c *QuizCache) Set(ctx context.Context, subjectID string, items []model.QuizQuestion) {
	if c == nil || c.rdb == nil {
		return
	}

	raw, err := json.Marshal(items)
	if err != nil {
		c.log.Warn().Err(err).Msg("Cache encode failed")
		return
	}
	if err := c.rdb.Set(ctx, cacheKey(subjectID), raw, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Msg("Cache write failed")
	}
}

// Invalidate drops the cached sets for the given subjects and the
// all-subjects set. Question writes call this so quizzes never serve a
// deleted or re-homed question past the write.
func (c *QuizCache) Invalidate(ctx context.Context, subjectIDs ...string) {
	if c == nil || c.rdb == nil {
		return
	}

	keys := make([]string, 0, len(subjectIDs)+1)
	keys = append(keys, cacheKey(""))
	for _, id := range subjectIDs {
		if id != "" {
			keys = append(keys, cacheKey(id))
		}
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		c.log.Warn().Err(err).Msg("Cache invalidation failed")
	}
}
