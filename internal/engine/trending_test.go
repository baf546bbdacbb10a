package engine

import (
	"testing"
	"time"

	"github.com/pulsepress/discovery/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestTrendingScore_Formula(t *testing.T) {
	item := &domain.ContentItem{
		ID:          "x",
		Views:       100,
		Likes:       10,
		Comments:    5,
		Shares:      2,
		PublishedAt: daysAgo(1),
	}

	// 100*0.5 + 10*2 + 5*3 + 2*1.5 + (10-1)*5
	assert.InDelta(t, 50+20+15+3+45, trendingScore(item, testNow), 1e-9)
}

func TestTrendingScore_RecencyBoostDecaysToZero(t *testing.T) {
	old := &domain.ContentItem{ID: "old", PublishedAt: daysAgo(30)}
	ancient := &domain.ContentItem{ID: "ancient", PublishedAt: daysAgo(300)}

	// past the ten-day window age no longer matters
	assert.Equal(t, trendingScore(old, testNow), trendingScore(ancient, testNow))
	assert.Equal(t, 0.0, trendingScore(old, testNow))
}

func TestTrendingScore_MonotonicInComments(t *testing.T) {
	base := domain.ContentItem{ID: "a", Views: 500, Likes: 5, Shares: 1, PublishedAt: daysAgo(4)}
	more := base
	more.ID = "b"
	more.Comments = base.Comments + 7

	assert.Greater(t, trendingScore(&more, testNow), trendingScore(&base, testNow))
}

func TestTopTrending_RecentEngagementBeatsStaleViews(t *testing.T) {
	items := []domain.ContentItem{
		{ID: "fresh", Views: 100, Likes: 10, Comments: 5, Shares: 2, PublishedAt: daysAgo(1)},
		{ID: "stale", Views: 150, Likes: 0, Comments: 0, Shares: 0, PublishedAt: daysAgo(30)},
	}

	got := topTrending(items, testNow, 1)

	// fresh: 50+20+15+3+45 = 133 beats stale: 75
	assert.Len(t, got, 1)
	assert.Equal(t, "fresh", got[0].ID)
}

func TestTopTrending_Ordering(t *testing.T) {
	snap := testSnapshot()

	got := topTrending(snap.Items, testNow, len(snap.Items))

	scores := make([]float64, len(got))
	for i := range got {
		scores[i] = trendingScore(&got[i], testNow)
	}
	for i := 1; i < len(scores); i++ {
		assert.GreaterOrEqual(t, scores[i-1], scores[i])
	}
}

func TestTopTrending_TieGoesToMostRecent(t *testing.T) {
	items := []domain.ContentItem{
		{ID: "older", PublishedAt: testNow.Add(-15 * 24 * time.Hour), Views: 10},
		{ID: "newer", PublishedAt: testNow.Add(-12 * 24 * time.Hour), Views: 10},
	}

	got := topTrending(items, testNow, 2)

	assert.Equal(t, []string{"newer", "older"}, itemIDs(got))
}

func TestTopTrending_LimitTruncates(t *testing.T) {
	snap := testSnapshot()

	got := topTrending(snap.Items, testNow, 2)

	assert.Len(t, got, 2)
}

func TestIsTrending_Threshold(t *testing.T) {
	hot := &domain.ContentItem{ID: "hot", Views: 300, Likes: 20, Comments: 8, Shares: 5, PublishedAt: daysAgo(5)}
	cold := &domain.ContentItem{ID: "cold", Views: 10, PublishedAt: daysAgo(60)}

	assert.True(t, isTrending(hot, testNow))
	assert.False(t, isTrending(cold, testNow))
}
