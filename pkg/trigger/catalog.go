package trigger

import (
	"fmt"

	"github.com/umputun/salescope/pkg/domain"
)

// Catalog is the fixed, ordered list of sales-trigger types. Defined once at
// process start and never mutated at runtime; orchestrated fetches always run
// in catalog order.
type Catalog []domain.TriggerType

// DefaultCatalog returns the stock trigger catalog. Sales teams customize the
// queries through configuration; these defaults target the usual prospecting
// signals.
func DefaultCatalog() Catalog {
	return Catalog{
		{
			Name: "Patent & IP",
			Query: domain.SearchQuery{
				BooleanExpression: `(company OR startup OR firm OR corporation) AND (patent OR "intellectual property" OR "IP portfolio" OR trademark) AND (granted OR filed OR awarded OR secures)`,
				Language:          "en",
				SortBy:            domain.SortByPublishedAt,
			},
		},
		{
			Name: "Product Launch",
			Query: domain.SearchQuery{
				BooleanExpression: `(company OR startup OR firm) AND ("product launch" OR "launches" OR "unveils" OR "announces" OR "introduces" OR "new product")`,
				Language:          "en",
				SortBy:            domain.SortByPublishedAt,
			},
		},
		{
			Name: "Expansion",
			Query: domain.SearchQuery{
				BooleanExpression: `(company OR startup OR firm) AND (expansion OR "opens office" OR "opening" OR "expands into" OR "enters market" OR "new location")`,
				Language:          "en",
				SortBy:            domain.SortByPublishedAt,
			},
		},
	}
}

// Names returns trigger names in catalog order
func (c Catalog) Names() []string {
	names := make([]string, 0, len(c))
	for _, t := range c {
		names = append(names, t.Name)
	}
	return names
}

// Subset returns the catalog entries matching the given names, preserving
// catalog order regardless of the order names were requested in
func (c Catalog) Subset(names []string) (Catalog, error) {
	requested := make(map[string]bool, len(names))
	for _, n := range names {
		requested[n] = false
	}

	subset := make(Catalog, 0, len(names))
	for _, t := range c {
		if _, ok := requested[t.Name]; ok {
			subset = append(subset, t)
			requested[t.Name] = true
		}
	}

	for n, found := range requested {
		if !found {
			return nil, fmt.Errorf("unknown trigger %q", n)
		}
	}

	return subset, nil
}
