package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestArticleID(t *testing.T) {
	published := time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC)

	t.Run("stable for identical inputs", func(t *testing.T) {
		first := ArticleID("Tech Daily", "https://example.com/a", published)
		second := ArticleID("Tech Daily", "https://example.com/a", published)
		assert.Equal(t, first, second)
	})

	t.Run("distinct for different inputs", func(t *testing.T) {
		base := ArticleID("Tech Daily", "https://example.com/a", published)
		assert.NotEqual(t, base, ArticleID("Biz Wire", "https://example.com/a", published))
		assert.NotEqual(t, base, ArticleID("Tech Daily", "https://example.com/b", published))
		assert.NotEqual(t, base, ArticleID("Tech Daily", "https://example.com/a", published.Add(time.Minute)))
	})

	t.Run("timezone normalized", func(t *testing.T) {
		loc := time.FixedZone("SGT", 8*3600)
		utc := ArticleID("Tech Daily", "https://example.com/a", published)
		local := ArticleID("Tech Daily", "https://example.com/a", published.In(loc))
		assert.Equal(t, utc, local)
	})
}

func TestSortBy_Valid(t *testing.T) {
	assert.True(t, SortByRelevancy.Valid())
	assert.True(t, SortByPopularity.Valid())
	assert.True(t, SortByPublishedAt.Valid())
	assert.False(t, SortBy("trending").Valid())
	assert.False(t, SortBy("").Valid())
}
