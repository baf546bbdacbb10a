package es

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/sortorder"
	"github.com/pulsepress/discovery/internal/domain"
)

// snapshotFetchSize caps a single snapshot fetch. The discovery catalog is
// a small curated corpus; anything near this size belongs in a paged
// ingest, not a snapshot source.
const snapshotFetchSize = 10_000

// Reader builds content snapshots from the post index. The engine does its
// own scoring over the snapshot; Elasticsearch is only the system of record
// here, not the relevance model.
type Reader struct {
	client    *elasticsearch.TypedClient
	indexName string
}

func NewReader(config ClientConfig) (*Reader, error) {
	client, err := newClient(config)

	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	return &Reader{
		client:    client,
		indexName: config.IndexName,
	}, nil
}

func (r *Reader) Content(ctx context.Context) (*domain.Snapshot, error) {
	slog.Debug("Loading content snapshot from es", "index", r.indexName)

	sortOrderDesc := sortorder.Desc
	res, err := r.client.Search().
		Index(r.indexName).
		Query(&types.Query{
			MatchAll: &types.MatchAllQuery{},
		}).
		Size(snapshotFetchSize).
		Sort(&types.SortOptions{
			SortOptions: map[string]types.FieldSort{
				"publishedAt": {Order: &sortOrderDesc},
			},
		}).
		Do(ctx)
	if err != nil {
		slog.Error("Elasticsearch snapshot fetch failed", "error", err, "index", r.indexName)
		return nil, fmt.Errorf("failed to fetch content snapshot: %w", err)
	}

	snap, err := mapToSnapshot(res.Hits.Hits)
	if err != nil {
		return nil, fmt.Errorf("failed to map index documents: %w", err)
	}

	slog.Info("Es content snapshot fetched",
		"total_docs", res.Hits.Total.Value,
		"items", len(snap.Items),
	)

	return snap, nil
}

func mapToSnapshot(hits []types.Hit) (*domain.Snapshot, error) {
	snap := &domain.Snapshot{}

	tagPosts := make(map[string]int)
	categoryPosts := make(map[string]int)
	seenTags := make(map[string]domain.Tag)
	seenAuthors := make(map[string]domain.Author)
	seenCategories := make(map[string]domain.Category)

	for _, hit := range hits {
		var doc Document
		if err := json.Unmarshal(hit.Source_, &doc); err != nil {
			return nil, fmt.Errorf("failed to unmarshal document: %w", err)
		}

		item := domain.ContentItem{
			ID:          doc.ID,
			Title:       doc.Title,
			Excerpt:     doc.Excerpt,
			Body:        doc.Body,
			CategoryID:  doc.Category.ID,
			AuthorID:    doc.Author.ID,
			PublishedAt: doc.PublishedAt,
			ReadTime:    doc.ReadTime,
			Views:       doc.Views,
			Likes:       doc.Likes,
			Comments:    doc.Comments,
			Shares:      doc.Shares,
		}
		for _, tag := range doc.Tags {
			item.TagIDs = append(item.TagIDs, tag.ID)
			seenTags[tag.ID] = domain.Tag{ID: tag.ID, Name: tag.Name}
			tagPosts[tag.ID]++
		}
		snap.Items = append(snap.Items, item)

		seenAuthors[doc.Author.ID] = domain.Author{
			ID:            doc.Author.ID,
			Name:          doc.Author.Name,
			Role:          doc.Author.Role,
			FollowerCount: doc.Author.Followers,
		}
		seenCategories[doc.Category.ID] = domain.Category{
			ID:   doc.Category.ID,
			Name: doc.Category.Name,
		}
		categoryPosts[doc.Category.ID]++
	}

	for id, tag := range seenTags {
		tag.PostCount = tagPosts[id]
		snap.Tags = append(snap.Tags, tag)
	}
	for _, author := range seenAuthors {
		snap.Authors = append(snap.Authors, author)
	}
	for id, category := range seenCategories {
		category.PostCount = categoryPosts[id]
		snap.Categories = append(snap.Categories, category)
	}

	// Map iteration order is random; keep entity scans deterministic.
	sort.Slice(snap.Tags, func(i, j int) bool { return snap.Tags[i].ID < snap.Tags[j].ID })
	sort.Slice(snap.Authors, func(i, j int) bool { return snap.Authors[i].ID < snap.Authors[j].ID })
	sort.Slice(snap.Categories, func(i, j int) bool { return snap.Categories[i].ID < snap.Categories[j].ID })

	return snap.Index(), nil
}
