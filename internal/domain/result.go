package domain

import "time"

// SearchResult is a denormalized projection of a ContentItem for
// presentation. It is a view, never stored.
type SearchResult struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Excerpt     string    `json:"excerpt,omitempty"`
	Author      string    `json:"author,omitempty"`
	Category    string    `json:"category,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	ReadTime    int       `json:"readTime,omitempty"`
	Views       int       `json:"views"`
	Likes       int       `json:"likes"`
	PublishedAt time.Time `json:"publishedAt"`

	// MatchScore is the text matcher's [0,100] relevance estimate. Carried
	// on every result regardless of the sort mode so callers can show
	// "why this result" even under non-relevance sorts.
	MatchScore int `json:"matchScore"`
}

type SuggestionType string

const (
	SuggestionPost     SuggestionType = "post"
	SuggestionTag      SuggestionType = "tag"
	SuggestionAuthor   SuggestionType = "author"
	SuggestionCategory SuggestionType = "category"
)

// Suggestion is one typed autocomplete candidate.
type Suggestion struct {
	ID       string         `json:"id"`
	Type     SuggestionType `json:"type"`
	Title    string         `json:"title"`
	Subtitle string         `json:"subtitle,omitempty"`
	Trending bool           `json:"trending,omitempty"`
}
