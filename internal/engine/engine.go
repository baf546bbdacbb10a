// Package engine implements the content discovery core: filtered search,
// trending, personalized recommendations, related content, and autocomplete
// suggestions. Every operation is a pure function over the snapshots the
// configured sources return; the engine holds no mutable state of its own.
package engine

import (
	"context"
	"strings"

	"github.com/pulsepress/discovery/internal/apperr"
	"github.com/pulsepress/discovery/internal/domain"
	"github.com/pulsepress/discovery/internal/store"
)

// Default result list sizes when the caller passes limit <= 0.
const (
	DefaultTrendingLimit  = 10
	DefaultRecommendLimit = 10
	DefaultRelatedLimit   = 3
	DefaultTagCloudLimit  = 20
)

type Engine struct {
	content      store.ContentSource
	interactions store.InteractionSource
	clock        Clock
}

type Option func(*Engine)

// WithClock overrides the engine's time source. Tests use a fixed clock so
// recency decay is deterministic.
func WithClock(c Clock) Option {
	return func(e *Engine) {
		e.clock = c
	}
}

func New(content store.ContentSource, interactions store.InteractionSource, opts ...Option) *Engine {
	e := &Engine{
		content:      content,
		interactions: interactions,
		clock:        SystemClock(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Search runs the filter pipeline over the current snapshot, narrows by
// text containment when a query is present, and ranks the survivors under
// the requested sort mode. An empty result is success, not an error.
func (e *Engine) Search(ctx context.Context, query string, filters domain.SearchFilters) ([]domain.SearchResult, error) {
	filters = filters.WithDefaults()
	if err := filters.Validate(); err != nil {
		return nil, err
	}

	snap, err := e.content.Content(ctx)
	if err != nil {
		return nil, err
	}
	now := e.clock.Now()

	candidates := applyFilters(snap.Items, filters, now)
	if query != "" {
		q := strings.ToLower(query)
		narrowed := candidates[:0]
		for i := range candidates {
			if matchesQuery(&candidates[i], snap, q) {
				narrowed = append(narrowed, candidates[i])
			}
		}
		candidates = narrowed
	}

	return rankResults(snap, candidates, query, filters.SortBy, now), nil
}

// Trending returns the top items by decayed engagement score.
func (e *Engine) Trending(ctx context.Context, limit int) ([]domain.ContentItem, error) {
	if limit <= 0 {
		limit = DefaultTrendingLimit
	}
	snap, err := e.content.Content(ctx)
	if err != nil {
		return nil, err
	}
	return topTrending(snap.Items, e.clock.Now(), limit), nil
}

// Recommend scores unseen items against an affinity profile built from the
// user's likes and bookmarks. A user with no history gets the trending list
// as the cold-start fallback.
func (e *Engine) Recommend(ctx context.Context, userID string, limit int) ([]domain.ContentItem, error) {
	if limit <= 0 {
		limit = DefaultRecommendLimit
	}

	interactions, err := e.interactions.Interactions(ctx, userID)
	if err != nil {
		return nil, err
	}

	snap, err := e.content.Content(ctx)
	if err != nil {
		return nil, err
	}
	now := e.clock.Now()

	if interactions.Empty() {
		return topTrending(snap.Items, now, limit), nil
	}
	return recommendFor(snap, interactions, now, limit), nil
}

// Related returns items sharing category, tags, or author with the given
// item. Unknown item ids are rejected; zero-relation candidates are never
// included.
func (e *Engine) Related(ctx context.Context, itemID string, limit int) ([]domain.ContentItem, error) {
	if limit <= 0 {
		limit = DefaultRelatedLimit
	}
	snap, err := e.content.Content(ctx)
	if err != nil {
		return nil, err
	}
	item, ok := snap.ItemByID(itemID)
	if !ok {
		return nil, apperr.NewUnknownEntity("post", itemID)
	}
	return relatedTo(snap, item, limit), nil
}

// Suggest returns typed autocomplete candidates for a partial query.
// Queries shorter than two characters are noise and yield nothing.
func (e *Engine) Suggest(ctx context.Context, query string) ([]domain.Suggestion, error) {
	snap, err := e.content.Content(ctx)
	if err != nil {
		return nil, err
	}
	return suggestions(snap, query, e.clock.Now()), nil
}

// Item fetches a single content item by id.
func (e *Engine) Item(ctx context.Context, itemID string) (*domain.ContentItem, error) {
	snap, err := e.content.Content(ctx)
	if err != nil {
		return nil, err
	}
	item, ok := snap.ItemByID(itemID)
	if !ok {
		return nil, apperr.NewUnknownEntity("post", itemID)
	}
	return item, nil
}

// PopularTags orders tags by denormalized post count descending.
func (e *Engine) PopularTags(ctx context.Context, limit int) ([]domain.Tag, error) {
	if limit <= 0 {
		limit = DefaultTagCloudLimit
	}
	snap, err := e.content.Content(ctx)
	if err != nil {
		return nil, err
	}
	return popularTags(snap.Tags, limit), nil
}

// PopularCategories orders categories by denormalized post count descending.
func (e *Engine) PopularCategories(ctx context.Context, limit int) ([]domain.Category, error) {
	if limit <= 0 {
		limit = DefaultTagCloudLimit
	}
	snap, err := e.content.Content(ctx)
	if err != nil {
		return nil, err
	}
	return popularCategories(snap.Categories, limit), nil
}
