package router

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pulsepress/discovery/internal/domain"
	"github.com/pulsepress/discovery/internal/engine"
	"github.com/pulsepress/discovery/pkg/pagination"
	"github.com/pulsepress/discovery/pkg/utils"
)

type DiscoveryRouter struct {
	e      *echo.Echo
	engine *engine.Engine
}

func NewDiscoveryRouter(e *echo.Echo, eng *engine.Engine) *DiscoveryRouter {
	return &DiscoveryRouter{
		e:      e,
		engine: eng,
	}
}

func (r *DiscoveryRouter) Bind() {
	r.e.GET("/search", r.searchHandler)
	r.e.GET("/trending", r.trendingHandler)
	r.e.GET("/recommendations/:userId", r.recommendationsHandler)
	r.e.GET("/posts/:id", r.postHandler)
	r.e.GET("/posts/:id/related", r.relatedHandler)
	r.e.GET("/suggestions", r.suggestionsHandler)
	r.e.GET("/tags/popular", r.popularTagsHandler)
	r.e.GET("/categories/popular", r.popularCategoriesHandler)
}

// searchHandler godoc
// @Summary Search content
// @Description Filtered, ranked search over the content catalog
// @Param q query string false "search query"
// @Param categories query string false "comma-separated category ids"
// @Param tags query string false "comma-separated tag ids"
// @Param authors query string false "comma-separated author ids"
// @Param dateRange query string false "all|today|week|month|year"
// @Param readTime query string false "all|short|medium|long"
// @Param sortBy query string false "latest|popular|trending|mostViewed|mostLiked"
// @Param page query int false "page number"
// @Param size query int false "page size"
// @Success 200 {object} pagination.OffsetResult[domain.SearchResult]
// @Failure 400 {object} map[string]string
// @Router /search [get]
func (r *DiscoveryRouter) searchHandler(c echo.Context) error {
	filters := domain.SearchFilters{
		Categories: splitCSV(c.QueryParam("categories")),
		Tags:       splitCSV(c.QueryParam("tags")),
		Authors:    splitCSV(c.QueryParam("authors")),
		DateRange:  domain.DateRange(c.QueryParam("dateRange")),
		ReadTime:   domain.ReadTimeBucket(c.QueryParam("readTime")),
		SortBy:     domain.SortMode(c.QueryParam("sortBy")),
	}

	page := &pagination.OffsetRequest{
		Page: intParam(c, "page", 1),
		Size: intParam(c, "size", pagination.PageDefaultSize),
	}
	if err := page.Validate(); err != nil {
		return err
	}

	results, err := r.engine.Search(c.Request().Context(), c.QueryParam("q"), filters)
	if err != nil {
		return err
	}

	total := int64(len(results))
	offset := (page.Page - 1) * page.Size
	if offset > len(results) {
		offset = len(results)
	}
	end := offset + page.Size
	if end > len(results) {
		end = len(results)
	}

	return c.JSON(http.StatusOK, pagination.NewOffsetResult(results[offset:end], total, page.Page, page.Size))
}

// trendingHandler godoc
// @Summary Trending content
// @Param limit query int false "max results"
// @Success 200 {array} domain.ContentItem
// @Router /trending [get]
func (r *DiscoveryRouter) trendingHandler(c echo.Context) error {
	items, err := r.engine.Trending(c.Request().Context(), intParam(c, "limit", 0))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// recommendationsHandler godoc
// @Summary Personalized recommendations
// @Param userId path string true "user id"
// @Param limit query int false "max results"
// @Success 200 {array} domain.ContentItem
// @Failure 404 {object} map[string]string
// @Router /recommendations/{userId} [get]
func (r *DiscoveryRouter) recommendationsHandler(c echo.Context) error {
	items, err := r.engine.Recommend(c.Request().Context(), c.Param("userId"), intParam(c, "limit", 0))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// postHandler godoc
// @Summary Fetch one post
// @Param id path string true "post id"
// @Success 200 {object} domain.ContentItem
// @Failure 404 {object} map[string]string
// @Router /posts/{id} [get]
func (r *DiscoveryRouter) postHandler(c echo.Context) error {
	item, err := r.engine.Item(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// relatedHandler godoc
// @Summary Related content
// @Param id path string true "post id"
// @Param limit query int false "max results"
// @Success 200 {array} domain.ContentItem
// @Failure 404 {object} map[string]string
// @Router /posts/{id}/related [get]
func (r *DiscoveryRouter) relatedHandler(c echo.Context) error {
	items, err := r.engine.Related(c.Request().Context(), c.Param("id"), intParam(c, "limit", 0))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// suggestionsHandler godoc
// @Summary Autocomplete suggestions
// @Param q query string true "partial query, minimum two characters"
// @Success 200 {array} domain.Suggestion
// @Router /suggestions [get]
func (r *DiscoveryRouter) suggestionsHandler(c echo.Context) error {
	suggestions, err := r.engine.Suggest(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, suggestions)
}

// popularTagsHandler godoc
// @Summary Popular tags
// @Param limit query int false "max results"
// @Success 200 {array} domain.Tag
// @Router /tags/popular [get]
func (r *DiscoveryRouter) popularTagsHandler(c echo.Context) error {
	tags, err := r.engine.PopularTags(c.Request().Context(), intParam(c, "limit", 0))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tags)
}

// popularCategoriesHandler godoc
// @Summary Popular categories
// @Param limit query int false "max results"
// @Success 200 {array} domain.Category
// @Router /categories/popular [get]
func (r *DiscoveryRouter) popularCategoriesHandler(c echo.Context) error {
	categories, err := r.engine.PopularCategories(c.Request().Context(), intParam(c, "limit", 0))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, categories)
}

func splitCSV(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return utils.RemoveEmptyStrings(parts)
}

func intParam(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
