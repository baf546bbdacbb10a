package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/pulsepress/discovery/internal/domain"
)

// Suggestion caps per entity scan. Posts lead because direct content
// matches are the most actionable suggestions.
const (
	suggestMinQueryLen   = 2
	suggestMaxPosts      = 5
	suggestMaxTags       = 3
	suggestMaxAuthors    = 3
	suggestMaxCategories = 3
)

// suggestions performs four independent, capped substring scans and
// concatenates them in fixed order: posts, tags, authors, categories.
func suggestions(snap *domain.Snapshot, query string, now time.Time) []domain.Suggestion {
	if len([]rune(query)) < suggestMinQueryLen {
		return []domain.Suggestion{}
	}
	q := strings.ToLower(query)

	out := make([]domain.Suggestion, 0, suggestMaxPosts+suggestMaxTags+suggestMaxAuthors+suggestMaxCategories)

	for i := range snap.Items {
		if len(out) >= suggestMaxPosts {
			break
		}
		item := &snap.Items[i]
		if !strings.Contains(strings.ToLower(item.Title), q) {
			continue
		}
		var subtitle string
		if c, ok := snap.CategoryByID(item.CategoryID); ok {
			subtitle = c.Name
		}
		out = append(out, domain.Suggestion{
			ID:       item.ID,
			Type:     domain.SuggestionPost,
			Title:    item.Title,
			Subtitle: subtitle,
			Trending: isTrending(item, now),
		})
	}

	matched := 0
	for _, tag := range snap.Tags {
		if matched >= suggestMaxTags {
			break
		}
		if !strings.Contains(strings.ToLower(tag.Name), q) {
			continue
		}
		out = append(out, domain.Suggestion{
			ID:       tag.ID,
			Type:     domain.SuggestionTag,
			Title:    tag.Name,
			Subtitle: postCountSubtitle(tag.PostCount),
		})
		matched++
	}

	matched = 0
	for _, author := range snap.Authors {
		if matched >= suggestMaxAuthors {
			break
		}
		if !strings.Contains(strings.ToLower(author.Name), q) {
			continue
		}
		out = append(out, domain.Suggestion{
			ID:       author.ID,
			Type:     domain.SuggestionAuthor,
			Title:    author.Name,
			Subtitle: author.Role,
		})
		matched++
	}

	matched = 0
	for _, category := range snap.Categories {
		if matched >= suggestMaxCategories {
			break
		}
		if !strings.Contains(strings.ToLower(category.Name), q) {
			continue
		}
		out = append(out, domain.Suggestion{
			ID:       category.ID,
			Type:     domain.SuggestionCategory,
			Title:    category.Name,
			Subtitle: postCountSubtitle(category.PostCount),
		})
		matched++
	}

	return out
}

func postCountSubtitle(count int) string {
	if count == 1 {
		return "1 post"
	}
	return fmt.Sprintf("%d posts", count)
}
