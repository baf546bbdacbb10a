package engine

import (
	"sort"
	"time"

	"github.com/pulsepress/discovery/internal/domain"
)

// Trending weights: comments are the strongest engagement signal, raw views
// the weakest. The recency boost decays linearly to zero over ten days so
// fresh content is favored without permanently excluding older items whose
// raw engagement terms keep contributing.
const (
	trendingViewsWeight    = 0.5
	trendingLikesWeight    = 2.0
	trendingCommentsWeight = 3.0
	trendingSharesWeight   = 1.5
	recencyWindowDays      = 10.0
	recencyBoostWeight     = 5.0

	// trendingFlagThreshold marks an item as "hot" for suggestion results.
	trendingFlagThreshold = 100.0
)

func trendingScore(item *domain.ContentItem, now time.Time) float64 {
	return float64(item.Views)*trendingViewsWeight +
		float64(item.Likes)*trendingLikesWeight +
		float64(item.Comments)*trendingCommentsWeight +
		float64(item.Shares)*trendingSharesWeight +
		recencyBoost(item.PublishedAt, now)*recencyBoostWeight
}

// recencyBoost decays linearly from recencyWindowDays to zero with age.
func recencyBoost(publishedAt, now time.Time) float64 {
	ageDays := now.Sub(publishedAt).Hours() / 24
	boost := recencyWindowDays - ageDays
	if boost < 0 {
		return 0
	}
	return boost
}

func isTrending(item *domain.ContentItem, now time.Time) bool {
	return trendingScore(item, now) >= trendingFlagThreshold
}

// topTrending orders all items by trending score descending and truncates.
// Ties go to the most recently published item.
func topTrending(items []domain.ContentItem, now time.Time, limit int) []domain.ContentItem {
	scored := make([]domain.ContentItem, len(items))
	copy(scored, items)

	scores := make(map[string]float64, len(scored))
	for i := range scored {
		scores[scored[i].ID] = trendingScore(&scored[i], now)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		si, sj := scores[scored[i].ID], scores[scored[j].ID]
		if si != sj {
			return si > sj
		}
		return scored[i].PublishedAt.After(scored[j].PublishedAt)
	})

	return truncateItems(scored, limit)
}

func truncateItems(items []domain.ContentItem, limit int) []domain.ContentItem {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}
