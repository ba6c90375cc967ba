package domain

import "time"

// SortBy defines the result ordering requested from the upstream API
type SortBy string

// supported sort orders, passed through to the upstream API as-is
const (
	SortByRelevancy   SortBy = "relevancy"
	SortByPopularity  SortBy = "popularity"
	SortByPublishedAt SortBy = "publishedAt"
)

// Valid reports whether the sort order is one the upstream API recognizes
func (s SortBy) Valid() bool {
	switch s {
	case SortByRelevancy, SortByPopularity, SortByPublishedAt:
		return true
	}
	return false
}

// SearchQuery describes a structured search intent before rendering into the
// upstream operator syntax. BooleanExpression is mutually exclusive with the
// keyword/include/exclude fields - one or the other drives the rendered query.
// Constructed per request and treated as immutable once built.
type SearchQuery struct {
	Keywords          []string
	MustInclude       []string
	MustExclude       []string
	BooleanExpression string
	From              time.Time
	To                time.Time
	Language          string
	SortBy            SortBy
}
