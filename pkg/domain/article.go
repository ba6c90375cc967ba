package domain

import (
	"crypto/sha1" //nolint:gosec // identity hash, not used for security
	"encoding/hex"
	"time"
)

// Article represents a single normalized article as returned by the upstream search API.
// Immutable once parsed from the upstream response.
type Article struct {
	ID          string    `json:"id"`
	Source      string    `json:"source"`
	Author      string    `json:"author,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	URL         string    `json:"url"`
	PublishedAt time.Time `json:"published_at"`
	Trigger     string    `json:"trigger,omitempty"` // name of the trigger that surfaced the article, empty for ad-hoc search
}

// ArticleID derives a stable identity from source, URL and publication time.
// Used for deduplication when merging multi-trigger results.
func ArticleID(source, url string, publishedAt time.Time) string {
	h := sha1.Sum([]byte(source + "|" + url + "|" + publishedAt.UTC().Format(time.RFC3339))) //nolint:gosec // identity hash
	return hex.EncodeToString(h[:])
}
