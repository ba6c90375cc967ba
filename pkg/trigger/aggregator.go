package trigger

import "github.com/umputun/salescope/pkg/domain"

// Merge flattens successful results into one deduplicated article list.
// Articles are concatenated in input order, duplicates dropped by identity
// keeping the first occurrence. Non-ok results contribute nothing here; their
// status stays visible on the per-trigger FetchResult.
func Merge(results []domain.FetchResult) []domain.Article {
	seen := make(map[string]struct{})
	merged := []domain.Article{}

	for _, res := range results {
		if res.Status != domain.StatusOK {
			continue
		}
		for _, a := range res.Articles {
			if _, ok := seen[a.ID]; ok {
				continue
			}
			seen[a.ID] = struct{}{}
			merged = append(merged, a)
		}
	}

	return merged
}
