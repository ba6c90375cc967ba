package trigger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/salescope/pkg/domain"
	"github.com/umputun/salescope/pkg/newsapi"
	"github.com/umputun/salescope/pkg/query"
)

// stubFetcher records queries and replays canned results
type stubFetcher struct {
	queries []string
	filters []newsapi.Filters
	results []domain.FetchResult
}

func (f *stubFetcher) Fetch(_ context.Context, queryString string, filters newsapi.Filters) domain.FetchResult {
	f.queries = append(f.queries, queryString)
	f.filters = append(f.filters, filters)
	if len(f.results) == 0 {
		return domain.FetchResult{Status: domain.StatusOK, Articles: []domain.Article{}}
	}
	res := f.results[0]
	f.results = f.results[1:]
	return res
}

// budgetFetcher succeeds until the remaining budget runs out, then reports
// quota exhaustion without "issuing" the call
type budgetFetcher struct {
	remaining int
	calls     int
}

func (f *budgetFetcher) Fetch(context.Context, string, newsapi.Filters) domain.FetchResult {
	if f.remaining == 0 {
		return domain.FetchResult{Status: domain.StatusQuotaExceeded, Articles: []domain.Article{}}
	}
	f.remaining--
	f.calls++
	return domain.FetchResult{Status: domain.StatusOK, Articles: []domain.Article{}}
}

func testCatalog() Catalog {
	return Catalog{
		{Name: "funding", Query: domain.SearchQuery{BooleanExpression: `startup AND ("Series A" OR raises)`, Language: "en", SortBy: domain.SortByPublishedAt}},
		{Name: "leadership_change", Query: domain.SearchQuery{BooleanExpression: `company AND (CEO OR CTO) AND appoints`, Language: "en", SortBy: domain.SortByPublishedAt}},
		{Name: "expansion", Query: domain.SearchQuery{BooleanExpression: `company AND ("opens office" OR "enters market")`, Language: "en", SortBy: domain.SortByPublishedAt}},
	}
}

func TestOrchestrator_RunTriggers(t *testing.T) {
	t.Run("runs full catalog in order", func(t *testing.T) {
		fetcher := &stubFetcher{}
		orch, err := NewOrchestrator(fetcher, testCatalog(), Config{})
		require.NoError(t, err)

		results := orch.RunTriggers(context.Background(), nil, "")

		require.Len(t, results, 3)
		assert.Equal(t, "funding", results[0].Trigger)
		assert.Equal(t, "leadership_change", results[1].Trigger)
		assert.Equal(t, "expansion", results[2].Trigger)
		require.Len(t, fetcher.queries, 3)
		assert.Equal(t, `startup AND ("Series A" OR raises)`, fetcher.queries[0])
	})

	t.Run("budget for two of three triggers", func(t *testing.T) {
		fetcher := &budgetFetcher{remaining: 2}
		orch, err := NewOrchestrator(fetcher, testCatalog(), Config{})
		require.NoError(t, err)

		results := orch.RunTriggers(context.Background(), nil, "")

		require.Len(t, results, 3)
		assert.Equal(t, domain.StatusOK, results[0].Status)
		assert.Equal(t, domain.StatusOK, results[1].Status)
		assert.Equal(t, domain.StatusQuotaExceeded, results[2].Status)
		assert.Equal(t, 2, fetcher.calls)
	})

	t.Run("one failure doesn't abort the batch", func(t *testing.T) {
		fetcher := &stubFetcher{results: []domain.FetchResult{
			{Status: domain.StatusOK, Articles: []domain.Article{{ID: "a1", Title: "one"}}},
			{Status: domain.StatusNetworkError, Articles: []domain.Article{}, Error: "connection refused"},
			{Status: domain.StatusOK, Articles: []domain.Article{{ID: "a2", Title: "two"}}},
		}}
		orch, err := NewOrchestrator(fetcher, testCatalog(), Config{})
		require.NoError(t, err)

		results := orch.RunTriggers(context.Background(), nil, "")

		require.Len(t, results, 3)
		assert.Equal(t, domain.StatusOK, results[0].Status)
		assert.Equal(t, domain.StatusNetworkError, results[1].Status)
		assert.Equal(t, domain.StatusOK, results[2].Status)
	})

	t.Run("articles tagged with trigger name", func(t *testing.T) {
		fetcher := &stubFetcher{results: []domain.FetchResult{
			{Status: domain.StatusOK, Articles: []domain.Article{{ID: "a1"}, {ID: "a2"}}},
		}}
		catalog := testCatalog()[:1]
		orch, err := NewOrchestrator(fetcher, catalog, Config{})
		require.NoError(t, err)

		results := orch.RunTriggers(context.Background(), nil, "")

		require.Len(t, results, 1)
		for _, a := range results[0].Articles {
			assert.Equal(t, "funding", a.Trigger)
		}
	})

	t.Run("caller-supplied subset runs only those triggers", func(t *testing.T) {
		fetcher := &stubFetcher{}
		orch, err := NewOrchestrator(fetcher, testCatalog(), Config{})
		require.NoError(t, err)

		subset, err := orch.Catalog().Subset([]string{"expansion"})
		require.NoError(t, err)

		results := orch.RunTriggers(context.Background(), subset, "")
		require.Len(t, results, 1)
		assert.Equal(t, "expansion", results[0].Trigger)
	})

	t.Run("region scopes every query", func(t *testing.T) {
		fetcher := &stubFetcher{}
		orch, err := NewOrchestrator(fetcher, testCatalog(), Config{})
		require.NoError(t, err)

		orch.RunTriggers(context.Background(), nil, "Singapore")

		require.Len(t, fetcher.queries, 3)
		assert.Equal(t, `(startup AND ("Series A" OR raises)) AND Singapore`, fetcher.queries[0])
	})

	t.Run("date window derives from days back", func(t *testing.T) {
		fetcher := &stubFetcher{}
		now := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
		orch, err := NewOrchestrator(fetcher, testCatalog(), Config{
			DaysBack: 7,
			NowFn:    func() time.Time { return now },
		})
		require.NoError(t, err)

		orch.RunTriggers(context.Background(), nil, "")

		require.NotEmpty(t, fetcher.filters)
		assert.Equal(t, now.AddDate(0, 0, -7), fetcher.filters[0].From)
		assert.Equal(t, now, fetcher.filters[0].To)
	})
}

func TestNewOrchestrator_RejectsBadCatalog(t *testing.T) {
	fetcher := &stubFetcher{}

	t.Run("empty canned query", func(t *testing.T) {
		catalog := Catalog{{Name: "broken", Query: domain.SearchQuery{}}}
		_, err := NewOrchestrator(fetcher, catalog, Config{})
		require.Error(t, err)
		assert.ErrorIs(t, err, query.ErrInvalidQuery)
	})

	t.Run("unnamed trigger", func(t *testing.T) {
		catalog := Catalog{{Query: domain.SearchQuery{BooleanExpression: "company AND funding"}}}
		_, err := NewOrchestrator(fetcher, catalog, Config{})
		require.Error(t, err)
	})
}

func TestCatalog_Subset(t *testing.T) {
	catalog := testCatalog()

	t.Run("preserves catalog order", func(t *testing.T) {
		subset, err := catalog.Subset([]string{"expansion", "funding"})
		require.NoError(t, err)
		require.Len(t, subset, 2)
		assert.Equal(t, "funding", subset[0].Name)
		assert.Equal(t, "expansion", subset[1].Name)
	})

	t.Run("unknown name rejected", func(t *testing.T) {
		_, err := catalog.Subset([]string{"funding", "nope"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "nope")
	})
}

func TestDefaultCatalog(t *testing.T) {
	catalog := DefaultCatalog()
	assert.Equal(t, []string{"Patent & IP", "Product Launch", "Expansion"}, catalog.Names())

	// every stock query must render
	for _, tr := range catalog {
		got, err := query.Build(tr.Query)
		require.NoError(t, err)
		assert.NotEmpty(t, got)
	}
}
