package engine

import (
	"sort"

	"github.com/pulsepress/discovery/internal/domain"
)

// Related-content weights. Zero-relation candidates are excluded outright:
// a "related" surface must be topically justified, so unlike recommendations
// there is no popularity floor to fall back on.
const (
	relatedCategoryBonus = 40
	relatedTagBonus      = 20
	relatedAuthorBonus   = 15
)

func relatedTo(snap *domain.Snapshot, item *domain.ContentItem, limit int) []domain.ContentItem {
	itemTags := make(map[string]struct{}, len(item.TagIDs))
	for _, id := range item.TagIDs {
		itemTags[id] = struct{}{}
	}

	var candidates []domain.ContentItem
	scores := make(map[string]int)
	for _, c := range snap.Items {
		if c.ID == item.ID {
			continue
		}
		score := relatedScore(&c, item, itemTags)
		if score == 0 {
			continue
		}
		candidates = append(candidates, c)
		scores[c.ID] = score
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

func relatedScore(c, item *domain.ContentItem, itemTags map[string]struct{}) int {
	var score int
	if c.CategoryID == item.CategoryID {
		score += relatedCategoryBonus
	}
	for _, tagID := range c.TagIDs {
		if _, ok := itemTags[tagID]; ok {
			score += relatedTagBonus
		}
	}
	if c.AuthorID == item.AuthorID {
		score += relatedAuthorBonus
	}
	return score
}
