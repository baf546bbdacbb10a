package engine

import (
	"sort"
	"time"

	"github.com/pulsepress/discovery/internal/domain"
)

// Active-engagement weighting for the "popular" sort. Likes, comments and
// shares signal deliberate engagement; raw views are cheap and noisy, so
// they are excluded here.
const (
	popularLikesWeight    = 2
	popularCommentsWeight = 3
	popularSharesWeight   = 1
)

func popularityScore(item *domain.ContentItem) int {
	return item.Likes*popularLikesWeight +
		item.Comments*popularCommentsWeight +
		item.Shares*popularSharesWeight
}

// rankResults orders candidates under the requested sort mode and projects
// them to SearchResult views. Candidates are pre-ordered by recency then id
// so exact ties resolve deterministically across calls.
func rankResults(snap *domain.Snapshot, candidates []domain.ContentItem, query string, sortBy domain.SortMode, now time.Time) []domain.SearchResult {
	ordered := make([]domain.ContentItem, len(candidates))
	copy(ordered, candidates)

	sort.SliceStable(ordered, func(i, j int) bool {
		if !ordered[i].PublishedAt.Equal(ordered[j].PublishedAt) {
			return ordered[i].PublishedAt.After(ordered[j].PublishedAt)
		}
		return ordered[i].ID < ordered[j].ID
	})

	var trendScores map[string]float64
	if sortBy == domain.SortTrending {
		trendScores = make(map[string]float64, len(ordered))
		for i := range ordered {
			trendScores[ordered[i].ID] = trendingScore(&ordered[i], now)
		}
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := &ordered[i], &ordered[j]
		switch sortBy {
		case domain.SortPopular:
			return popularityScore(a) > popularityScore(b)
		case domain.SortTrending:
			return trendScores[a.ID] > trendScores[b.ID]
		case domain.SortMostViewed:
			return a.Views > b.Views
		case domain.SortMostLiked:
			return a.Likes > b.Likes
		default:
			// latest; the pre-sort above already ordered by recency
			return a.PublishedAt.After(b.PublishedAt)
		}
	})

	results := make([]domain.SearchResult, 0, len(ordered))
	for i := range ordered {
		results = append(results, projectResult(snap, &ordered[i], query))
	}
	return results
}

func projectResult(snap *domain.Snapshot, item *domain.ContentItem, query string) domain.SearchResult {
	var authorName, categoryName string
	if a, ok := snap.AuthorByID(item.AuthorID); ok {
		authorName = a.Name
	}
	if c, ok := snap.CategoryByID(item.CategoryID); ok {
		categoryName = c.Name
	}

	return domain.SearchResult{
		ID:          item.ID,
		Title:       item.Title,
		Excerpt:     item.Excerpt,
		Author:      authorName,
		Category:    categoryName,
		Tags:        snap.TagNames(item.TagIDs),
		ReadTime:    item.ReadTime,
		Views:       item.Views,
		Likes:       item.Likes,
		PublishedAt: item.PublishedAt,
		MatchScore:  matchScore(item, snap, query),
	}
}
