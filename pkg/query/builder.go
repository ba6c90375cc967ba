package query

import (
	"errors"
	"fmt"
	"strings"

	"github.com/umputun/salescope/pkg/domain"
)

// ErrInvalidQuery indicates a search intent that cannot be rendered into a
// query string. Returned before any quota or network interaction.
var ErrInvalidQuery = errors.New("invalid query")

// Build renders a structured search intent into the upstream boolean/phrase
// operator syntax. Rendering is deterministic: identical intents always yield
// identical strings. A boolean expression is emitted verbatim, the caller owns
// its AND/OR/NOT structure; otherwise keyword, must-include (+term) and
// must-exclude (-term) tokens are joined with single spaces, implicit AND per
// upstream semantics. Multi-word terms are quoted for exact-phrase matching.
func Build(q domain.SearchQuery) (string, error) {
	if err := checkIntent(q); err != nil {
		return "", err
	}

	if expr := strings.TrimSpace(q.BooleanExpression); expr != "" {
		return expr, nil
	}

	tokens := make([]string, 0, len(q.Keywords)+len(q.MustInclude)+len(q.MustExclude))
	for _, kw := range q.Keywords {
		if t := term(kw); t != "" {
			tokens = append(tokens, t)
		}
	}
	for _, inc := range q.MustInclude {
		if t := term(inc); t != "" {
			tokens = append(tokens, "+"+t)
		}
	}
	for _, exc := range q.MustExclude {
		if t := term(exc); t != "" {
			tokens = append(tokens, "-"+t)
		}
	}

	if len(tokens) == 0 {
		return "", fmt.Errorf("%w: no keywords, required/excluded terms or boolean expression", ErrInvalidQuery)
	}

	return strings.Join(tokens, " "), nil
}

// checkIntent validates SearchQuery invariants before rendering
func checkIntent(q domain.SearchQuery) error {
	hasTerms := len(q.Keywords) > 0 || len(q.MustInclude) > 0 || len(q.MustExclude) > 0
	hasExpr := strings.TrimSpace(q.BooleanExpression) != ""

	if !hasTerms && !hasExpr {
		return fmt.Errorf("%w: no keywords, required/excluded terms or boolean expression", ErrInvalidQuery)
	}
	if hasTerms && hasExpr {
		return fmt.Errorf("%w: boolean expression can't be combined with keyword terms", ErrInvalidQuery)
	}

	if !q.From.IsZero() && !q.To.IsZero() && q.From.After(q.To) {
		return fmt.Errorf("%w: from date %s is after to date %s",
			ErrInvalidQuery, q.From.Format("2006-01-02"), q.To.Format("2006-01-02"))
	}

	// must-include and must-exclude have to be disjoint
	excluded := make(map[string]struct{}, len(q.MustExclude))
	for _, e := range q.MustExclude {
		excluded[strings.ToLower(strings.TrimSpace(e))] = struct{}{}
	}
	for _, inc := range q.MustInclude {
		if _, ok := excluded[strings.ToLower(strings.TrimSpace(inc))]; ok {
			return fmt.Errorf("%w: term %q both required and excluded", ErrInvalidQuery, strings.TrimSpace(inc))
		}
	}

	return nil
}

// term normalizes a single search term, quoting multi-word phrases
func term(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if strings.ContainsAny(s, " \t") {
		return `"` + s + `"`
	}
	return s
}
