package engine

import (
	"time"

	"github.com/pulsepress/discovery/internal/domain"
)

// applyFilters narrows the candidate set. Stages are independent predicates
// composed by intersection, so their application order does not affect the
// result. Each stage is a no-op when its filter field is empty or "all".
func applyFilters(items []domain.ContentItem, f domain.SearchFilters, now time.Time) []domain.ContentItem {
	cutoff, bounded := dateCutoff(f.DateRange, now)

	candidates := make([]domain.ContentItem, 0, len(items))
	for _, item := range items {
		if !inSet(item.CategoryID, f.Categories) {
			continue
		}
		if !anyTagInSet(item.TagIDs, f.Tags) {
			continue
		}
		if !inSet(item.AuthorID, f.Authors) {
			continue
		}
		if bounded && item.PublishedAt.Before(cutoff) {
			continue
		}
		if !inReadTimeBucket(item.ReadTime, f.ReadTime) {
			continue
		}
		candidates = append(candidates, item)
	}
	return candidates
}

// dateCutoff returns the lower bound of the published-at window. The second
// return is false for the unbounded "all" range.
func dateCutoff(r domain.DateRange, now time.Time) (time.Time, bool) {
	switch r {
	case domain.DateRangeToday:
		return now.AddDate(0, 0, -1), true
	case domain.DateRangeWeek:
		return now.AddDate(0, 0, -7), true
	case domain.DateRangeMonth:
		return now.AddDate(0, -1, 0), true
	case domain.DateRangeYear:
		return now.AddDate(-1, 0, 0), true
	default:
		return time.Time{}, false
	}
}

func inSet(id string, set []string) bool {
	if len(set) == 0 {
		return true
	}
	for _, s := range set {
		if s == id {
			return true
		}
	}
	return false
}

// anyTagInSet matches when the item carries at least one tag from the
// filter set.
func anyTagInSet(tagIDs []string, set []string) bool {
	if len(set) == 0 {
		return true
	}
	for _, id := range tagIDs {
		for _, s := range set {
			if s == id {
				return true
			}
		}
	}
	return false
}

func inReadTimeBucket(minutes int, bucket domain.ReadTimeBucket) bool {
	switch bucket {
	case domain.ReadTimeShort:
		return minutes < 5
	case domain.ReadTimeMedium:
		return minutes >= 5 && minutes <= 15
	case domain.ReadTimeLong:
		return minutes > 15
	default:
		return true
	}
}
