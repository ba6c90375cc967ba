package trigger

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/umputun/salescope/pkg/domain"
	"github.com/umputun/salescope/pkg/newsapi"
	"github.com/umputun/salescope/pkg/query"
)

// Fetcher performs a single bounded retrieval call
type Fetcher interface {
	Fetch(ctx context.Context, queryString string, filters newsapi.Filters) domain.FetchResult
}

// Config holds orchestrator configuration
type Config struct {
	DaysBack       int              // search window for trigger fetches
	ExcludeDomains []string         // domains filtered out of every trigger fetch
	NowFn          func() time.Time // time source, defaults to time.Now
}

// Orchestrator fans out canned trigger queries within the shared daily budget.
// Fetches run sequentially in catalog order; a failed or quota-skipped trigger
// never aborts the rest of the batch.
type Orchestrator struct {
	fetcher        Fetcher
	catalog        Catalog
	daysBack       int
	excludeDomains []string
	nowFn          func() time.Time
}

// NewOrchestrator creates an orchestrator over the given catalog. Every canned
// query is rendered once up front so a malformed catalog fails at startup, not
// mid-batch.
func NewOrchestrator(fetcher Fetcher, catalog Catalog, cfg Config) (*Orchestrator, error) {
	if cfg.DaysBack == 0 {
		cfg.DaysBack = 7
	}
	if cfg.NowFn == nil {
		cfg.NowFn = time.Now
	}

	for _, t := range catalog {
		if t.Name == "" {
			return nil, fmt.Errorf("catalog contains trigger without a name")
		}
		if _, err := query.Build(t.Query); err != nil {
			return nil, fmt.Errorf("trigger %q: %w", t.Name, err)
		}
	}

	return &Orchestrator{
		fetcher:        fetcher,
		catalog:        catalog,
		daysBack:       cfg.DaysBack,
		excludeDomains: cfg.ExcludeDomains,
		nowFn:          cfg.NowFn,
	}, nil
}

// Catalog returns the full trigger catalog
func (o *Orchestrator) Catalog() Catalog {
	return o.catalog
}

// RunTriggers issues one retrieval per active trigger, in catalog order, and
// returns one FetchResult per trigger so the caller sees exactly which
// triggers succeeded, were skipped for quota, or failed. A nil active set runs
// the full catalog. A non-empty region scopes every query to it.
func (o *Orchestrator) RunTriggers(ctx context.Context, active Catalog, region string) []domain.FetchResult {
	if active == nil {
		active = o.catalog
	}

	now := o.nowFn()
	from := now.AddDate(0, 0, -o.daysBack)

	results := make([]domain.FetchResult, 0, len(active))
	for _, t := range active {
		q := scopeToRegion(t.Query, region)

		queryString, err := query.Build(q)
		if err != nil {
			// bad query can't reach the API, classified same as an upstream rejection
			log.Printf("[WARN] trigger %q query rejected: %v", t.Name, err)
			results = append(results, domain.FetchResult{
				Trigger:  t.Name,
				Status:   domain.StatusAPIError,
				Articles: []domain.Article{},
				Error:    err.Error(),
			})
			continue
		}

		res := o.fetcher.Fetch(ctx, queryString, newsapi.Filters{
			From:           from,
			To:             now,
			Language:       q.Language,
			SortBy:         q.SortBy,
			ExcludeDomains: o.excludeDomains,
		})
		res.Trigger = t.Name
		for i := range res.Articles {
			res.Articles[i].Trigger = t.Name
		}

		switch res.Status {
		case domain.StatusOK:
			log.Printf("[INFO] trigger %q: %d articles", t.Name, len(res.Articles))
		case domain.StatusQuotaExceeded:
			log.Printf("[INFO] trigger %q skipped, daily quota exhausted", t.Name)
		default:
			log.Printf("[WARN] trigger %q failed with %s: %s", t.Name, res.Status, res.Error)
		}

		results = append(results, res)
	}

	return results
}

// scopeToRegion narrows a search intent to a region. Boolean expressions get
// wrapped as "(expr) AND region", keyword intents pick up the region as an
// extra required term.
func scopeToRegion(q domain.SearchQuery, region string) domain.SearchQuery {
	if region == "" {
		return q
	}
	if q.BooleanExpression != "" {
		q.BooleanExpression = "(" + q.BooleanExpression + ") AND " + region
		return q
	}
	include := make([]string, 0, len(q.MustInclude)+1)
	include = append(include, q.MustInclude...)
	q.MustInclude = append(include, region)
	return q
}
