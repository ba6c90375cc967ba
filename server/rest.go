package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/umputun/salescope/pkg/domain"
	"github.com/umputun/salescope/pkg/newsapi"
	"github.com/umputun/salescope/pkg/query"
	"github.com/umputun/salescope/pkg/trigger"
)

// statusHandler returns server status and the current quota window
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
		"quota":   s.quota.State(),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// searchHandler performs an ad-hoc everything-search. The query comes either
// as ?q= with a verbatim boolean expression, or as repeated keyword/must/
// exclude params for structured mode. Date range, language and sort fall back
// to configured defaults.
func (s *Server) searchHandler(w http.ResponseWriter, r *http.Request) {
	apiCfg := s.config.GetNewsAPIConfig()
	params := r.URL.Query()

	intent := domain.SearchQuery{
		BooleanExpression: params.Get("q"),
		Keywords:          params["keyword"],
		MustInclude:       params["must"],
		MustExclude:       params["exclude"],
		Language:          params.Get("language"),
		SortBy:            domain.SortBy(params.Get("sort")),
	}
	if intent.Language == "" {
		intent.Language = apiCfg.Language
	}
	if intent.SortBy == "" {
		intent.SortBy = domain.SortBy(apiCfg.SortBy)
	}
	if !intent.SortBy.Valid() {
		renderError(w, r, fmt.Errorf("invalid sort order %q", intent.SortBy), http.StatusBadRequest)
		return
	}

	now := time.Now()
	intent.From = now.AddDate(0, 0, -apiCfg.SearchDaysBack)
	intent.To = now
	var err error
	if intent.From, err = dateParam(params.Get("from"), intent.From); err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	if intent.To, err = dateParam(params.Get("to"), intent.To); err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	queryString, err := query.Build(intent)
	if err != nil {
		// invalid intents fail fast, before any quota or network interaction
		if errors.Is(err, query.ErrInvalidQuery) {
			renderError(w, r, err, http.StatusBadRequest)
			return
		}
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	result := s.searcher.Fetch(r.Context(), queryString, newsapi.Filters{
		From:           intent.From,
		To:             intent.To,
		Language:       intent.Language,
		SortBy:         intent.SortBy,
		ExcludeDomains: apiCfg.ExcludeDomains,
	})

	renderJSON(w, r, http.StatusOK, result)
}

// headlinesHandler performs a top-headlines call for a country/category
func (s *Server) headlinesHandler(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	filters := newsapi.HeadlinesFilters{
		Country:  params.Get("country"),
		Category: params.Get("category"),
	}
	if sources := params.Get("sources"); sources != "" {
		filters.Sources = strings.Split(sources, ",")
	}
	if filters.Country == "" && filters.Category == "" && len(filters.Sources) == 0 {
		renderError(w, r, fmt.Errorf("country, category or sources required"), http.StatusBadRequest)
		return
	}

	result := s.searcher.TopHeadlines(r.Context(), filters)
	renderJSON(w, r, http.StatusOK, result)
}

// triggersHandler returns the trigger catalog and the latest scheduled snapshot
func (s *Server) triggersHandler(w http.ResponseWriter, r *http.Request) {
	resp := map[string]interface{}{
		"catalog": s.triggers.Catalog().Names(),
	}
	if snap, ok := s.snapshots.Latest(); ok {
		resp["snapshot"] = snap
	}
	renderJSON(w, r, http.StatusOK, resp)
}

// triggersRunRequest is the body of an on-demand trigger run
type triggersRunRequest struct {
	Triggers []string `json:"triggers,omitempty"` // subset of catalog names, empty runs the full catalog
	Region   string   `json:"region,omitempty"`   // overrides the configured region scope
}

// triggersRunHandler runs the trigger batch immediately, optionally for a
// subset of the catalog, and returns per-trigger results plus the merged
// deduplicated article list
func (s *Server) triggersRunHandler(w http.ResponseWriter, r *http.Request) {
	var req triggersRunRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			renderError(w, r, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
			return
		}
	}

	var active trigger.Catalog
	if len(req.Triggers) > 0 {
		subset, err := s.triggers.Catalog().Subset(req.Triggers)
		if err != nil {
			renderError(w, r, err, http.StatusBadRequest)
			return
		}
		active = subset
	}

	region := req.Region
	if region == "" {
		region = s.config.GetTriggersConfig().Region
	}

	results := s.triggers.RunTriggers(r.Context(), active, region)
	renderJSON(w, r, http.StatusOK, map[string]interface{}{
		"results":  results,
		"articles": trigger.Merge(results),
	})
}

// dateParam parses an ISO date query param, falling back to def when empty
func dateParam(val string, def time.Time) (time.Time, error) {
	if val == "" {
		return def, nil
	}
	t, err := time.Parse("2006-01-02", val)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", val)
	}
	return t, nil
}
