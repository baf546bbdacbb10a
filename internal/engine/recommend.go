package engine

import (
	"math"
	"sort"
	"time"

	"github.com/pulsepress/discovery/internal/domain"
)

// Affinity scoring weights. Category match is a coarse but strong signal,
// tag overlap is additive per shared tag, popularity is log-dampened so a
// handful of viral items cannot dominate every list, and the recency bonus
// mirrors the trending decay so fresh matching content beats stale matches.
const (
	affinityCategoryBonus = 30.0
	affinityTagBonus      = 15.0
	affinityViewsWeight   = 2.0
	affinityLikesWeight   = 1.5
)

// recommendFor scores every item the user has not interacted with against
// an affinity profile built from their liked and bookmarked items. With no
// history the caller falls back to topTrending before reaching here.
//
// An all-zero-score outcome still ranks: the popularity and recency terms
// order the list rather than triggering a second trending fallback.
func recommendFor(snap *domain.Snapshot, interactions *domain.Interactions, now time.Time, limit int) []domain.ContentItem {
	affinityCategories := make(map[string]struct{})
	affinityTags := make(map[string]struct{})
	for id := range interactions.Liked {
		collectAffinity(snap, id, affinityCategories, affinityTags)
	}
	for id := range interactions.Bookmarked {
		collectAffinity(snap, id, affinityCategories, affinityTags)
	}

	candidates := make([]domain.ContentItem, 0, len(snap.Items))
	scores := make(map[string]float64, len(snap.Items))
	for _, item := range snap.Items {
		if interactions.Interacted(item.ID) {
			continue
		}
		candidates = append(candidates, item)
		scores[item.ID] = affinityScore(&item, affinityCategories, affinityTags, now)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		si, sj := scores[candidates[i].ID], scores[candidates[j].ID]
		if si != sj {
			return si > sj
		}
		return candidates[i].PublishedAt.After(candidates[j].PublishedAt)
	})

	return truncateItems(candidates, limit)
}

func collectAffinity(snap *domain.Snapshot, itemID string, categories, tags map[string]struct{}) {
	item, ok := snap.ItemByID(itemID)
	if !ok {
		return
	}
	categories[item.CategoryID] = struct{}{}
	for _, tagID := range item.TagIDs {
		tags[tagID] = struct{}{}
	}
}

func affinityScore(item *domain.ContentItem, categories, tags map[string]struct{}, now time.Time) float64 {
	var score float64

	if _, ok := categories[item.CategoryID]; ok {
		score += affinityCategoryBonus
	}
	for _, tagID := range item.TagIDs {
		if _, ok := tags[tagID]; ok {
			score += affinityTagBonus
		}
	}

	score += math.Log(float64(item.Views)+1) * affinityViewsWeight
	score += float64(item.Likes) * affinityLikesWeight
	score += recencyBoost(item.PublishedAt, now)

	return score
}
