package engine

import (
	"time"

	"github.com/pulsepress/discovery/internal/domain"
)

var testNow = time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)

type fixedClock time.Time

func (f fixedClock) Now() time.Time {
	return time.Time(f)
}

func daysAgo(n int) time.Time {
	return testNow.AddDate(0, 0, -n)
}

// testSnapshot builds a small curated catalog covering every category, tag
// and author relationship the scorers care about.
func testSnapshot() *domain.Snapshot {
	snap := &domain.Snapshot{
		Items: []domain.ContentItem{
			{
				ID:          "p1",
				Title:       "React Server Components in practice",
				Excerpt:     "Streaming UI with React and Suspense",
				Body:        "A long walkthrough of server rendering.",
				CategoryID:  "dev",
				TagIDs:      []string{"react"},
				AuthorID:    "a1",
				PublishedAt: daysAgo(1),
				ReadTime:    4,
				Views:       100, Likes: 10, Comments: 5, Shares: 2,
			},
			{
				ID:          "p2",
				Title:       "Figma variables deep dive",
				Excerpt:     "Design tokens without the busywork",
				Body:        "Variables replace ad-hoc styles.",
				CategoryID:  "design",
				TagIDs:      []string{"figma"},
				AuthorID:    "a2",
				PublishedAt: daysAgo(30),
				ReadTime:    8,
				Views:       1000, Likes: 0, Comments: 0, Shares: 0,
			},
			{
				ID:          "p3",
				Title:       "Profiling Go services",
				Excerpt:     "pprof from first principles",
				Body:        "CPU and heap profiles explained.",
				CategoryID:  "dev",
				TagIDs:      []string{"golang"},
				AuthorID:    "a1",
				PublishedAt: daysAgo(2),
				ReadTime:    18,
				Views:       50, Likes: 3, Comments: 1, Shares: 0,
			},
			{
				ID:          "p4",
				Title:       "Training compact models",
				Excerpt:     "Small machine learning that ships",
				Body:        "Distillation beats size.",
				CategoryID:  "ai",
				TagIDs:      []string{"ml", "golang"},
				AuthorID:    "a2",
				PublishedAt: daysAgo(5),
				ReadTime:    12,
				Views:       300, Likes: 20, Comments: 8, Shares: 5,
			},
			{
				ID:          "p5",
				Title:       "React hooks for Go programmers",
				Excerpt:     "Two ecosystems, one mental model",
				Body:        "Comparing effect systems.",
				CategoryID:  "dev",
				TagIDs:      []string{"react", "golang"},
				AuthorID:    "a1",
				PublishedAt: daysAgo(20),
				ReadTime:    6,
				Views:       400, Likes: 15, Comments: 2, Shares: 1,
			},
		},
		Tags: []domain.Tag{
			{ID: "react", Name: "React", PostCount: 2},
			{ID: "figma", Name: "Figma", PostCount: 1},
			{ID: "golang", Name: "Go", PostCount: 3},
			{ID: "ml", Name: "Machine Learning", PostCount: 1},
		},
		Authors: []domain.Author{
			{ID: "a1", Name: "Ana García", Role: "Staff Engineer", FollowerCount: 1200},
			{ID: "a2", Name: "Marko Ilic", Role: "Product Designer", FollowerCount: 450},
		},
		Categories: []domain.Category{
			{ID: "dev", Name: "Development", PostCount: 3},
			{ID: "design", Name: "Design", PostCount: 1},
			{ID: "ai", Name: "AI", PostCount: 1},
		},
	}
	return snap.Index()
}

func itemIDs(items []domain.ContentItem) []string {
	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}
	return ids
}
