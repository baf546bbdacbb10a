package domain

import "time"

// ContentItem is one publishable article as owned by the content store.
// Counters are denormalized and read-only from the engine's perspective.
type ContentItem struct {
	ID          string    `json:"id" yaml:"id"`
	Title       string    `json:"title" yaml:"title"`
	Excerpt     string    `json:"excerpt,omitempty" yaml:"excerpt"`
	Body        string    `json:"body,omitempty" yaml:"body"`
	CategoryID  string    `json:"categoryId" yaml:"categoryId"`
	TagIDs      []string  `json:"tagIds,omitempty" yaml:"tagIds"`
	AuthorID    string    `json:"authorId" yaml:"authorId"`
	PublishedAt time.Time `json:"publishedAt" yaml:"publishedAt"`
	ReadTime    int       `json:"readTime,omitempty" yaml:"readTime"`

	Views    int `json:"views" yaml:"views"`
	Likes    int `json:"likes" yaml:"likes"`
	Comments int `json:"comments" yaml:"comments"`
	Shares   int `json:"shares" yaml:"shares"`
}

type Tag struct {
	ID        string `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	PostCount int    `json:"postCount" yaml:"postCount"`
}

type Author struct {
	ID            string `json:"id" yaml:"id"`
	Name          string `json:"name" yaml:"name"`
	Role          string `json:"role,omitempty" yaml:"role"`
	FollowerCount int    `json:"followerCount" yaml:"followerCount"`
}

type Category struct {
	ID        string `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	PostCount int    `json:"postCount" yaml:"postCount"`
}

// HasTag reports whether the item carries the given tag id.
func (c *ContentItem) HasTag(tagID string) bool {
	for _, id := range c.TagIDs {
		if id == tagID {
			return true
		}
	}
	return false
}
