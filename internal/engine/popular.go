package engine

import (
	"sort"

	"github.com/pulsepress/discovery/internal/domain"
)

func popularTags(tags []domain.Tag, limit int) []domain.Tag {
	ordered := make([]domain.Tag, len(tags))
	copy(ordered, tags)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].PostCount > ordered[j].PostCount
	})
	if limit > 0 && len(ordered) > limit {
		ordered = ordered[:limit]
	}
	return ordered
}

func popularCategories(categories []domain.Category, limit int) []domain.Category {
	ordered := make([]domain.Category, len(categories))
	copy(ordered, categories)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].PostCount > ordered[j].PostCount
	})
	if limit > 0 && len(ordered) > limit {
		ordered = ordered[:limit]
	}
	return ordered
}
