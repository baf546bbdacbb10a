package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pulsepress/discovery/internal/apperr"
	"github.com/pulsepress/discovery/internal/domain"
	"github.com/pulsepress/discovery/internal/engine"
	"github.com/pulsepress/discovery/internal/store/memory"
	"github.com/pulsepress/discovery/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var routerNow = time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)

type fixedClock time.Time

func (f fixedClock) Now() time.Time {
	return time.Time(f)
}

func newTestServer(t *testing.T) (*echo.Echo, *memory.Store) {
	t.Helper()

	s := memory.NewStore()
	s.Replace(&domain.Snapshot{
		Items: []domain.ContentItem{
			{
				ID: "p1", Title: "React Server Components in practice",
				Excerpt: "Streaming UI with React", CategoryID: "dev",
				TagIDs: []string{"react"}, AuthorID: "a1",
				PublishedAt: routerNow.AddDate(0, 0, -1), ReadTime: 4,
				Views: 100, Likes: 10, Comments: 5, Shares: 2,
			},
			{
				ID: "p2", Title: "Figma variables deep dive",
				CategoryID: "design", TagIDs: []string{"figma"}, AuthorID: "a2",
				PublishedAt: routerNow.AddDate(0, 0, -30), ReadTime: 8,
				Views: 1000,
			},
			{
				ID: "p3", Title: "Profiling Go services",
				CategoryID: "dev", TagIDs: []string{"golang"}, AuthorID: "a1",
				PublishedAt: routerNow.AddDate(0, 0, -2), ReadTime: 18,
				Views: 50, Likes: 3, Comments: 1,
			},
		},
		Tags: []domain.Tag{
			{ID: "react", Name: "React", PostCount: 1},
			{ID: "figma", Name: "Figma", PostCount: 1},
			{ID: "golang", Name: "Go", PostCount: 1},
		},
		Authors: []domain.Author{
			{ID: "a1", Name: "Ana García", Role: "Staff Engineer"},
			{ID: "a2", Name: "Marko Ilic", Role: "Product Designer"},
		},
		Categories: []domain.Category{
			{ID: "dev", Name: "Development", PostCount: 2},
			{ID: "design", Name: "Design", PostCount: 1},
		},
	})

	e := echo.New()
	e.HTTPErrorHandler = apperr.GlobalErrorHandler()

	eng := engine.New(s, s, engine.WithClock(fixedClock(routerNow)))
	NewDiscoveryRouter(e, eng).Bind()

	return e, s
}

func doGet(t *testing.T, e *echo.Echo, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestSearchEndpoint_ReturnsPaginatedResults(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doGet(t, e, "/search?sortBy=latest&page=1&size=2")

	require.Equal(t, http.StatusOK, rec.Code)
	var body pagination.OffsetResult[domain.SearchResult]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, int64(3), body.Total)
	assert.Equal(t, 1, body.Page)
	assert.Equal(t, 2, body.Size)
	assert.True(t, body.HasMore)
	require.Len(t, body.Items, 2)
	assert.Equal(t, "p1", body.Items[0].ID)
	assert.Equal(t, "p3", body.Items[1].ID)
}

func TestSearchEndpoint_SecondPage(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doGet(t, e, "/search?sortBy=latest&page=2&size=2")

	require.Equal(t, http.StatusOK, rec.Code)
	var body pagination.OffsetResult[domain.SearchResult]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.False(t, body.HasMore)
	require.Len(t, body.Items, 1)
	assert.Equal(t, "p2", body.Items[0].ID)
}

func TestSearchEndpoint_FiltersAndQuery(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doGet(t, e, "/search?q=react&categories=dev,design")

	require.Equal(t, http.StatusOK, rec.Code)
	var body pagination.OffsetResult[domain.SearchResult]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	require.Len(t, body.Items, 1)
	assert.Equal(t, "p1", body.Items[0].ID)
	assert.Equal(t, 100, body.Items[0].MatchScore)
}

func TestSearchEndpoint_InvalidSortBy(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doGet(t, e, "/search?sortBy=hottest")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "invalid filter", body["title"])
	assert.Contains(t, body["error"], "sortBy")
}

func TestTrendingEndpoint(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doGet(t, e, "/trending?limit=1")

	require.Equal(t, http.StatusOK, rec.Code)
	var items []domain.ContentItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "p2", items[0].ID)
}

func TestRecommendationsEndpoint_UnknownUser(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doGet(t, e, "/recommendations/ghost")

	require.Equal(t, http.StatusNotFound, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "unknown entity", body["title"])
}

func TestRecommendationsEndpoint_KnownUser(t *testing.T) {
	e, s := newTestServer(t)
	s.AddLike("u1", "p1")

	rec := doGet(t, e, "/recommendations/u1")

	require.Equal(t, http.StatusOK, rec.Code)
	var items []domain.ContentItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.NotEmpty(t, items)
	for _, item := range items {
		assert.NotEqual(t, "p1", item.ID, "liked item must not be recommended back")
	}
}

func TestPostEndpoint(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doGet(t, e, "/posts/p2")
	require.Equal(t, http.StatusOK, rec.Code)
	var item domain.ContentItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &item))
	assert.Equal(t, "Figma variables deep dive", item.Title)

	rec = doGet(t, e, "/posts/missing")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRelatedEndpoint(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doGet(t, e, "/posts/p1/related")

	require.Equal(t, http.StatusOK, rec.Code)
	var items []domain.ContentItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.NotEmpty(t, items)
	assert.Equal(t, "p3", items[0].ID, "same category and author should lead")
}

func TestSuggestionsEndpoint_ShortQuery(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doGet(t, e, "/suggestions?q=r")

	require.Equal(t, http.StatusOK, rec.Code)
	var items []domain.Suggestion
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	assert.Empty(t, items)
}

func TestSuggestionsEndpoint_TypedResults(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doGet(t, e, "/suggestions?q=figma")

	require.Equal(t, http.StatusOK, rec.Code)
	var items []domain.Suggestion
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.NotEmpty(t, items)
	assert.Equal(t, domain.SuggestionPost, items[0].Type)
}

func TestPopularTagsEndpoint(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doGet(t, e, "/tags/popular?limit=2")

	require.Equal(t, http.StatusOK, rec.Code)
	var tags []domain.Tag
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tags))
	assert.Len(t, tags, 2)
}

func TestPopularCategoriesEndpoint(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doGet(t, e, "/categories/popular")

	require.Equal(t, http.StatusOK, rec.Code)
	var categories []domain.Category
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &categories))
	require.Len(t, categories, 2)
	assert.Equal(t, "dev", categories[0].ID)
}
