package file

import (
	"context"
	"strings"
	"testing"

	"github.com/pulsepress/discovery/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validDocument = `
kind: ContentSnapshot
version: v1
items:
  - id: p1
    title: React Server Components in practice
    excerpt: Streaming UI with React
    categoryId: dev
    tagIds: [react]
    authorId: a1
    publishedAt: 2026-08-19T10:00:00Z
    readTime: 4
    views: 100
    likes: 10
    comments: 5
    shares: 2
  - id: p2
    title: Figma variables deep dive
    categoryId: design
    authorId: a2
    publishedAt: 2026-07-20T10:00:00Z
tags:
  - id: react
    name: React
    postCount: 1
authors:
  - id: a1
    name: Ana García
    role: Staff Engineer
categories:
  - id: dev
    name: Development
    postCount: 1
users:
  - id: u1
    likes: [p1]
    bookmarks: [p2]
  - id: u2
`

func TestLoad_ValidDocument(t *testing.T) {
	s, err := Load(strings.NewReader(validDocument))
	require.NoError(t, err)

	snap, err := s.Content(context.Background())
	require.NoError(t, err)

	require.Len(t, snap.Items, 2)
	item, ok := snap.ItemByID("p1")
	require.True(t, ok)
	assert.Equal(t, "React Server Components in practice", item.Title)
	assert.Equal(t, []string{"react"}, item.TagIDs)
	assert.Equal(t, 100, item.Views)

	author, ok := snap.AuthorByID("a1")
	require.True(t, ok)
	assert.Equal(t, "Ana García", author.Name)
}

func TestLoad_UserInteractions(t *testing.T) {
	s, err := Load(strings.NewReader(validDocument))
	require.NoError(t, err)

	got, err := s.Interactions(context.Background(), "u1")
	require.NoError(t, err)
	assert.Contains(t, got.Liked, "p1")
	assert.Contains(t, got.Bookmarked, "p2")

	empty, err := s.Interactions(context.Background(), "u2")
	require.NoError(t, err)
	assert.True(t, empty.Empty())

	_, err = s.Interactions(context.Background(), "u3")
	var ue *apperr.UnknownEntityError
	assert.ErrorAs(t, err, &ue)
}

func TestLoad_RejectsWrongKind(t *testing.T) {
	_, err := Load(strings.NewReader("kind: Recipe\nversion: v1\n"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected document kind")
}

func TestLoad_RejectsItemWithoutID(t *testing.T) {
	doc := `
kind: ContentSnapshot
items:
  - title: No identity
    publishedAt: 2026-08-19T10:00:00Z
`
	_, err := Load(strings.NewReader(doc))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "id is required")
}

func TestLoad_RejectsItemWithoutPublishedAt(t *testing.T) {
	doc := `
kind: ContentSnapshot
items:
  - id: p1
    title: Undated
`
	_, err := Load(strings.NewReader(doc))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "publishedAt is required")
}

func TestLoad_RejectsMalformedYAML(t *testing.T) {
	_, err := Load(strings.NewReader("kind: [unterminated"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode")
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := Open("testdata/does-not-exist.yaml")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open")
}
