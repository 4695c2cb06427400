package cache

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/cybermcq/mcq-backend/internal/model"
)

func TestCacheKey(t *testing.T) {
	if got := cacheKey(""); got != "quiz:candidates:all" {
		t.Errorf("cacheKey(\"\") = %q", got)
	}
	if got := cacheKey("s1"); got != "quiz:candidates:s1" {
		t.Errorf("cacheKey(s1) = %q", got)
	}
}

func TestDisabledCacheIsInert(t *testing.T) {
	ctx := context.Background()
	c := NewQuizCache(nil, 0, zerolog.Nop())

	items := []model.QuizQuestion{{QuestionID: "q1"}}
	c.Set(ctx, "s1", items)

	if got, hit := c.Get(ctx, "s1"); hit || got != nil {
		t.Errorf("disabled cache Get = (%v, %v), want miss", got, hit)
	}

	// Must not panic.
	c.Invalidate(ctx, "s1", "s2")
	c.Invalidate(ctx)

	var nilCache *QuizCache
	if _, hit := nilCache.Get(ctx, ""); hit {
		t.Error("nil cache must miss")
	}
	nilCache.Set(ctx, "", items)
	nilCache.Invalidate(ctx, "s1")
}
