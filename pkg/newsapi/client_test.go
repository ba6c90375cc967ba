package newsapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/salescope/pkg/domain"
)

// allowAll is a quota gate that always permits
type allowAll struct{}

func (allowAll) AttemptCall(context.Context) bool { return true }

// denyAll is a quota gate with an exhausted budget
type denyAll struct{}

func (denyAll) AttemptCall(context.Context) bool { return false }

func TestClient_Fetch(t *testing.T) {
	t.Run("success parses articles in upstream order", func(t *testing.T) {
		respBody := `{
			"status": "ok",
			"totalResults": 2,
			"articles": [
				{
					"source": {"id": "techdaily", "name": "Tech Daily"},
					"author": "J. Writer",
					"title": "Startup secures patent",
					"description": "Patent granted for widget",
					"url": "https://example.com/patent",
					"publishedAt": "2026-01-15T10:30:00Z",
					"content": "Full snippet here"
				},
				{
					"source": {"id": "", "name": "Biz Wire"},
					"title": "Company expands into new market",
					"url": "https://example.com/expansion",
					"publishedAt": "2026-01-14T08:00:00Z",
					"content": "Expansion snippet"
				}
			]
		}`

		var gotQuery, gotKey string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v2/everything", r.URL.Path)
			gotQuery = r.URL.Query().Get("q")
			gotKey = r.Header.Get("X-Api-Key")
			assert.Equal(t, "2026-01-01", r.URL.Query().Get("from"))
			assert.Equal(t, "2026-01-15", r.URL.Query().Get("to"))
			assert.Equal(t, "en", r.URL.Query().Get("language"))
			assert.Equal(t, "publishedAt", r.URL.Query().Get("sortBy"))
			assert.Equal(t, "arxiv.org,ieee.org", r.URL.Query().Get("excludeDomains"))
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(respBody)) //nolint:errcheck
		}))
		defer server.Close()

		client := NewClient(Config{Endpoint: server.URL, APIKey: "test-key"}, allowAll{})
		result := client.Fetch(context.Background(), `+patent "intellectual property"`, Filters{
			From:           time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			To:             time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
			Language:       "en",
			SortBy:         domain.SortByPublishedAt,
			ExcludeDomains: []string{"arxiv.org", "ieee.org"},
		})

		assert.Equal(t, `+patent "intellectual property"`, gotQuery)
		assert.Equal(t, "test-key", gotKey)

		require.Equal(t, domain.StatusOK, result.Status)
		require.Len(t, result.Articles, 2)
		assert.Equal(t, "Startup secures patent", result.Articles[0].Title)
		assert.Equal(t, "Tech Daily", result.Articles[0].Source)
		assert.Equal(t, "J. Writer", result.Articles[0].Author)
		assert.NotEmpty(t, result.Articles[0].ID)
		assert.Equal(t, "Company expands into new market", result.Articles[1].Title)
		assert.NotEqual(t, result.Articles[0].ID, result.Articles[1].ID)
	})

	t.Run("quota denied makes no network call", func(t *testing.T) {
		var hits int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&hits, 1)
			w.Write([]byte(`{"status":"ok","articles":[]}`)) //nolint:errcheck
		}))
		defer server.Close()

		client := NewClient(Config{Endpoint: server.URL, APIKey: "test-key"}, denyAll{})
		result := client.Fetch(context.Background(), "bitcoin", Filters{})

		assert.Equal(t, domain.StatusQuotaExceeded, result.Status)
		assert.Empty(t, result.Articles)
		assert.Equal(t, int32(0), atomic.LoadInt32(&hits))
	})

	t.Run("upstream error envelope classified as api error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"status":"error","code":"apiKeyInvalid","message":"Your API key is invalid"}`)) //nolint:errcheck
		}))
		defer server.Close()

		client := NewClient(Config{Endpoint: server.URL, APIKey: "bad-key"}, allowAll{})
		result := client.Fetch(context.Background(), "bitcoin", Filters{})

		assert.Equal(t, domain.StatusAPIError, result.Status)
		assert.Empty(t, result.Articles)
		assert.Contains(t, result.Error, "apiKeyInvalid")
	})

	t.Run("upstream rate limit classified as api error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"status":"error","code":"rateLimited","message":"You have been rate limited"}`)) //nolint:errcheck
		}))
		defer server.Close()

		client := NewClient(Config{Endpoint: server.URL, APIKey: "test-key"}, allowAll{})
		result := client.Fetch(context.Background(), "bitcoin", Filters{})

		assert.Equal(t, domain.StatusAPIError, result.Status)
		assert.Contains(t, result.Error, "rateLimited")
	})

	t.Run("non-json response classified as api error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte("<html>bad gateway</html>")) //nolint:errcheck
		}))
		defer server.Close()

		client := NewClient(Config{Endpoint: server.URL, APIKey: "test-key"}, allowAll{})
		result := client.Fetch(context.Background(), "bitcoin", Filters{})

		assert.Equal(t, domain.StatusAPIError, result.Status)
		assert.Empty(t, result.Articles)
	})

	t.Run("transport failure classified as network error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close() // refuse connections

		client := NewClient(Config{Endpoint: server.URL, APIKey: "test-key"}, allowAll{})
		result := client.Fetch(context.Background(), "bitcoin", Filters{})

		assert.Equal(t, domain.StatusNetworkError, result.Status)
		assert.Empty(t, result.Articles)
		assert.NotEmpty(t, result.Error)
	})

	t.Run("timeout classified as network error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			w.Write([]byte(`{"status":"ok","articles":[]}`)) //nolint:errcheck
		}))
		defer server.Close()

		client := NewClient(Config{Endpoint: server.URL, APIKey: "test-key", Timeout: 10 * time.Millisecond}, allowAll{})
		result := client.Fetch(context.Background(), "bitcoin", Filters{})

		assert.Equal(t, domain.StatusNetworkError, result.Status)
	})
}

func TestClient_TopHeadlines(t *testing.T) {
	t.Run("passes country and sources", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v2/top-headlines", r.URL.Path)
			assert.Equal(t, "sg", r.URL.Query().Get("country"))
			assert.Equal(t, "business", r.URL.Query().Get("category"))
			assert.Equal(t, "bbc-news,cnn", r.URL.Query().Get("sources"))
			w.Write([]byte(`{"status":"ok","totalResults":0,"articles":[]}`)) //nolint:errcheck
		}))
		defer server.Close()

		client := NewClient(Config{Endpoint: server.URL, APIKey: "test-key"}, allowAll{})
		result := client.TopHeadlines(context.Background(), HeadlinesFilters{
			Country:  "sg",
			Category: "business",
			Sources:  []string{"bbc-news", "cnn"},
		})

		assert.Equal(t, domain.StatusOK, result.Status)
		assert.Empty(t, result.Articles)
	})

	t.Run("charged against the same budget", func(t *testing.T) {
		client := NewClient(Config{Endpoint: "http://localhost", APIKey: "test-key"}, denyAll{})
		result := client.TopHeadlines(context.Background(), HeadlinesFilters{Country: "sg"})
		assert.Equal(t, domain.StatusQuotaExceeded, result.Status)
	})
}
