package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/umputun/salescope/pkg/domain"
)

// maxResponseSize caps the upstream body read, the API pages results anyway
const maxResponseSize = 10 * 1024 * 1024

// QuotaGate permits or denies an upstream call attempt. Implemented by the
// quota tracker; every call drawn through the gate charges the daily budget.
type QuotaGate interface {
	AttemptCall(ctx context.Context) bool
}

// Filters narrows an everything-search request
type Filters struct {
	From           time.Time
	To             time.Time
	Language       string
	SortBy         domain.SortBy
	ExcludeDomains []string
}

// HeadlinesFilters narrows a top-headlines request
type HeadlinesFilters struct {
	Country  string
	Category string
	Sources  []string
}

// Config holds client configuration
type Config struct {
	Endpoint  string        // API base URL, e.g. https://newsapi.org
	APIKey    string        // account credential, sent as X-Api-Key header
	Timeout   time.Duration // per-request timeout
	RateLimit time.Duration // minimum spacing between permitted calls, 0 disables pacing
}

// Client performs bounded calls against the upstream news search API. Every
// call consults the quota gate first and always returns a FetchResult - call
// outcomes are classified into statuses, never surfaced as errors.
type Client struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string
	quota      QuotaGate
	limiter    *rate.Limiter
}

// NewClient creates a client for the given API endpoint and quota gate
func NewClient(cfg Config, quota QuotaGate) *Client {
	if cfg.Endpoint == "" {
		cfg.Endpoint = "https://newsapi.org"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}

	var limiter *rate.Limiter
	if cfg.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Every(cfg.RateLimit), 1)
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		endpoint: strings.TrimSuffix(cfg.Endpoint, "/"),
		apiKey:   cfg.APIKey,
		quota:    quota,
		limiter:  limiter,
	}
}

// Fetch performs a single everything-search call for the given rendered query
// string. A denied quota attempt returns StatusQuotaExceeded without any
// network I/O.
func (c *Client) Fetch(ctx context.Context, queryString string, filters Filters) domain.FetchResult {
	if !c.quota.AttemptCall(ctx) {
		return domain.FetchResult{Status: domain.StatusQuotaExceeded, Articles: []domain.Article{}}
	}

	params := url.Values{}
	params.Set("q", queryString)
	if !filters.From.IsZero() {
		params.Set("from", filters.From.Format("2006-01-02"))
	}
	if !filters.To.IsZero() {
		params.Set("to", filters.To.Format("2006-01-02"))
	}
	if filters.Language != "" {
		params.Set("language", filters.Language)
	}
	if filters.SortBy != "" {
		params.Set("sortBy", string(filters.SortBy))
	}
	if len(filters.ExcludeDomains) > 0 {
		params.Set("excludeDomains", strings.Join(filters.ExcludeDomains, ","))
	}

	return c.call(ctx, c.endpoint+"/v2/everything?"+params.Encode())
}

// TopHeadlines performs a single top-headlines call, charged against the same
// daily budget as everything-search.
func (c *Client) TopHeadlines(ctx context.Context, filters HeadlinesFilters) domain.FetchResult {
	if !c.quota.AttemptCall(ctx) {
		return domain.FetchResult{Status: domain.StatusQuotaExceeded, Articles: []domain.Article{}}
	}

	params := url.Values{}
	if filters.Country != "" {
		params.Set("country", filters.Country)
	}
	if filters.Category != "" {
		params.Set("category", filters.Category)
	}
	if len(filters.Sources) > 0 {
		params.Set("sources", strings.Join(filters.Sources, ","))
	}

	return c.call(ctx, c.endpoint+"/v2/top-headlines?"+params.Encode())
}

// call issues the outbound request and classifies the outcome. Quota is
// already spent at this point, failures don't refund it.
func (c *Client) call(ctx context.Context, reqURL string) domain.FetchResult {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return networkError(fmt.Errorf("rate limit wait: %w", err))
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return apiError(fmt.Sprintf("create request: %v", err))
	}
	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return networkError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return networkError(fmt.Errorf("read response: %w", err))
	}

	var envelope response
	if err := json.Unmarshal(body, &envelope); err != nil {
		return apiError(fmt.Sprintf("unexpected response (status code %d): %v", resp.StatusCode, err))
	}

	// upstream signals errors both via HTTP status and the envelope status
	// field; its own rate limiting lands here as a regular API error
	if resp.StatusCode != http.StatusOK || envelope.Status != "ok" {
		msg := envelope.Message
		if msg == "" {
			msg = fmt.Sprintf("unexpected status code %d", resp.StatusCode)
		}
		if envelope.Code != "" {
			msg = envelope.Code + ": " + msg
		}
		return apiError(msg)
	}

	articles := make([]domain.Article, 0, len(envelope.Articles))
	for _, a := range envelope.Articles {
		articles = append(articles, a.toDomain())
	}

	return domain.FetchResult{Status: domain.StatusOK, Articles: articles}
}

func networkError(err error) domain.FetchResult {
	return domain.FetchResult{Status: domain.StatusNetworkError, Articles: []domain.Article{}, Error: err.Error()}
}

func apiError(msg string) domain.FetchResult {
	return domain.FetchResult{Status: domain.StatusAPIError, Articles: []domain.Article{}, Error: msg}
}
