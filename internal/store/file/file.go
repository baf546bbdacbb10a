// Package file loads a full content snapshot, including interaction sets,
// from a YAML document. Used for demo catalogs and test fixtures.
package file

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pulsepress/discovery/internal/domain"
	"github.com/pulsepress/discovery/internal/store/memory"
	"gopkg.in/yaml.v3"
)

type Document struct {
	Kind       string               `yaml:"kind"`
	Version    string               `yaml:"version"`
	Items      []domain.ContentItem `yaml:"items"`
	Tags       []domain.Tag         `yaml:"tags"`
	Authors    []domain.Author      `yaml:"authors"`
	Categories []domain.Category    `yaml:"categories"`
	Users      []UserDocument       `yaml:"users"`
}

type UserDocument struct {
	ID        string   `yaml:"id"`
	Likes     []string `yaml:"likes"`
	Bookmarks []string `yaml:"bookmarks"`
}

const expectedKind = "ContentSnapshot"

func (d *Document) Validate() error {
	if d.Kind != expectedKind {
		return fmt.Errorf("unexpected document kind %q, want %q", d.Kind, expectedKind)
	}
	for i, item := range d.Items {
		if item.ID == "" {
			return fmt.Errorf("item %d: id is required", i)
		}
		if item.PublishedAt.IsZero() {
			return fmt.Errorf("item %q: publishedAt is required", item.ID)
		}
	}
	return nil
}

// Store is a file-backed snapshot source. The document is materialized into
// a memory store once at load time; reads afterwards are lock-cheap.
type Store struct {
	backing *memory.Store
}

func Load(r io.Reader) (*Store, error) {
	decoder := yaml.NewDecoder(r)
	var doc Document
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot document: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid snapshot document: %w", err)
	}

	backing := memory.NewStore()
	backing.Replace(&domain.Snapshot{
		Items:      doc.Items,
		Tags:       doc.Tags,
		Authors:    doc.Authors,
		Categories: doc.Categories,
	})
	for _, user := range doc.Users {
		backing.RegisterUser(user.ID)
		for _, itemID := range user.Likes {
			backing.AddLike(user.ID, itemID)
		}
		for _, itemID := range user.Bookmarks {
			backing.AddBookmark(user.ID, itemID)
		}
	}

	return &Store{backing: backing}, nil
}

func Open(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot file: %w", err)
	}
	defer f.Close()
	return Load(f)
}

func (s *Store) Content(ctx context.Context) (*domain.Snapshot, error) {
	return s.backing.Content(ctx)
}

func (s *Store) Interactions(ctx context.Context, userID string) (*domain.Interactions, error) {
	return s.backing.Interactions(ctx, userID)
}
