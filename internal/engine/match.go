package engine

import (
	"strings"

	"github.com/pulsepress/discovery/internal/domain"
)

// Coarse relevance heuristic: the corpus is small and curated, so substring
// containment with field-weighted bonuses is adequate. Not a TF-IDF model.
const (
	matchBase         = 50
	matchTitleBonus   = 30
	matchExcerptBonus = 15
	matchTagBonus     = 10
	matchMax          = 100
)

// matchScore estimates relevance of an item for a query in [0,100].
// An empty query contributes 0 and ranking falls back to other factors.
func matchScore(item *domain.ContentItem, snap *domain.Snapshot, query string) int {
	if query == "" {
		return 0
	}
	q := strings.ToLower(query)

	score := matchBase
	if strings.Contains(strings.ToLower(item.Title), q) {
		score += matchTitleBonus
	}
	if strings.Contains(strings.ToLower(item.Excerpt), q) {
		score += matchExcerptBonus
	}
	if anyTagNameContains(item, snap, q) {
		score += matchTagBonus
	}

	if score > matchMax {
		score = matchMax
	}
	return score
}

// matchesQuery reports whether the item contains the lowered query in its
// title, excerpt, body, or any tag name. Used to narrow candidates before
// ranking when a query is present.
func matchesQuery(item *domain.ContentItem, snap *domain.Snapshot, loweredQuery string) bool {
	if strings.Contains(strings.ToLower(item.Title), loweredQuery) {
		return true
	}
	if strings.Contains(strings.ToLower(item.Excerpt), loweredQuery) {
		return true
	}
	if strings.Contains(strings.ToLower(item.Body), loweredQuery) {
		return true
	}
	return anyTagNameContains(item, snap, loweredQuery)
}

func anyTagNameContains(item *domain.ContentItem, snap *domain.Snapshot, loweredQuery string) bool {
	for _, id := range item.TagIDs {
		tag, ok := snap.TagByID(id)
		if !ok {
			continue
		}
		if strings.Contains(strings.ToLower(tag.Name), loweredQuery) {
			return true
		}
	}
	return false
}
