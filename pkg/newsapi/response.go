package newsapi

import (
	"time"

	"github.com/umputun/salescope/pkg/domain"
)

// response is the upstream API envelope, shared by everything-search and
// top-headlines. On failures status is "error" and code/message describe it.
type response struct {
	Status       string        `json:"status"`
	TotalResults int           `json:"totalResults"`
	Code         string        `json:"code"`
	Message      string        `json:"message"`
	Articles     []articleJSON `json:"articles"`
}

// articleJSON is a single article as the upstream API returns it
type articleJSON struct {
	Source struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"source"`
	Author      string    `json:"author"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	PublishedAt time.Time `json:"publishedAt"`
	Content     string    `json:"content"`
}

// toDomain converts an upstream article into the internal representation,
// deriving the dedup identity from source, URL and publication time
func (a articleJSON) toDomain() domain.Article {
	return domain.Article{
		ID:          domain.ArticleID(a.Source.Name, a.URL, a.PublishedAt),
		Source:      a.Source.Name,
		Author:      a.Author,
		Title:       a.Title,
		Description: a.Description,
		Content:     a.Content,
		URL:         a.URL,
		PublishedAt: a.PublishedAt,
	}
}
