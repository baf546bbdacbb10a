package es

import "time"

// Document is the post document shape in the content index. Tag, author and
// category entities are embedded denormalized, the way the indexing pipeline
// writes them.
type Document struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Excerpt     string    `json:"excerpt,omitempty"`
	Body        string    `json:"body,omitempty"`
	PublishedAt time.Time `json:"publishedAt"`
	ReadTime    int       `json:"readTime,omitempty"`

	Views    int `json:"views"`
	Likes    int `json:"likes"`
	Comments int `json:"comments"`
	Shares   int `json:"shares"`

	Category CategoryDoc `json:"category"`
	Author   AuthorDoc   `json:"author"`
	Tags     []TagDoc    `json:"tags,omitempty"`
}

type TagDoc struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type AuthorDoc struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Role      string `json:"role,omitempty"`
	Followers int    `json:"followers,omitempty"`
}

type CategoryDoc struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
