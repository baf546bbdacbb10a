package pg

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pulsepress/discovery/internal/apperr"
	"github.com/pulsepress/discovery/internal/domain"
)

// Reader assembles content snapshots from Postgres. Each call produces an
// independent, fully-formed snapshot; nothing is cached or mutated between
// calls, so concurrent engine reads are safe by construction.
type Reader struct {
	db *pgxpool.Pool
}

func NewReader(pool *ConnectionPool) (*Reader, error) {
	return &Reader{db: pool.conn}, nil
}

func (r *Reader) Content(ctx context.Context) (*domain.Snapshot, error) {
	slog.Debug("Loading content snapshot from pg")

	snap := &domain.Snapshot{}

	items, err := r.loadItems(ctx)
	if err != nil {
		return nil, err
	}
	snap.Items = items

	if snap.Tags, err = r.loadTags(ctx); err != nil {
		return nil, err
	}
	if snap.Authors, err = r.loadAuthors(ctx); err != nil {
		return nil, err
	}
	if snap.Categories, err = r.loadCategories(ctx); err != nil {
		return nil, err
	}

	return snap.Index(), nil
}

func (r *Reader) loadItems(ctx context.Context) ([]domain.ContentItem, error) {
	const itemsSQL = `
		SELECT
			p.id, p.title, p.excerpt, p.body, p.category_id, p.author_id,
			p.published_at, p.read_time,
			p.views_count, p.likes_count, p.comments_count, p.shares_count,
			COALESCE(array_agg(pt.tag_id) FILTER (WHERE pt.tag_id IS NOT NULL), '{}') AS tag_ids
		FROM posts p
		LEFT JOIN post_tags pt ON pt.post_id = p.id
		GROUP BY p.id
		ORDER BY p.published_at DESC, p.id
	`

	rows, err := r.db.Query(ctx, itemsSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer rows.Close()

	var items []domain.ContentItem
	for rows.Next() {
		var item domain.ContentItem
		if err := rows.Scan(
			&item.ID,
			&item.Title,
			&item.Excerpt,
			&item.Body,
			&item.CategoryID,
			&item.AuthorID,
			&item.PublishedAt,
			&item.ReadTime,
			&item.Views,
			&item.Likes,
			&item.Comments,
			&item.Shares,
			&item.TagIDs,
		); err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating posts: %w", err)
	}
	return items, nil
}

func (r *Reader) loadTags(ctx context.Context) ([]domain.Tag, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, posts_count FROM tags ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query tags: %w", err)
	}
	defer rows.Close()

	var tags []domain.Tag
	for rows.Next() {
		var t domain.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.PostCount); err != nil {
			return nil, fmt.Errorf("failed to scan tag: %w", err)
		}
		tags = append(tags, t)
	}
	return tags, rows.Err()
}

func (r *Reader) loadAuthors(ctx context.Context) ([]domain.Author, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, role, followers_count FROM authors ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query authors: %w", err)
	}
	defer rows.Close()

	var authors []domain.Author
	for rows.Next() {
		var a domain.Author
		if err := rows.Scan(&a.ID, &a.Name, &a.Role, &a.FollowerCount); err != nil {
			return nil, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, a)
	}
	return authors, rows.Err()
}

func (r *Reader) loadCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, posts_count FROM categories ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.PostCount); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// Interactions loads the user's liked and bookmarked item id sets. An id
// with no user row is an unknown entity, not an empty history.
func (r *Reader) Interactions(ctx context.Context, userID string) (*domain.Interactions, error) {
	var exists string
	err := r.db.QueryRow(ctx, `SELECT id FROM users WHERE id = $1`, userID).Scan(&exists)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NewUnknownEntity("user", userID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	interactions := &domain.Interactions{
		Liked:      make(map[string]struct{}),
		Bookmarked: make(map[string]struct{}),
	}

	if err := r.loadItemIDSet(ctx, `SELECT post_id FROM likes WHERE user_id = $1`, userID, interactions.Liked); err != nil {
		return nil, fmt.Errorf("failed to load likes: %w", err)
	}
	if err := r.loadItemIDSet(ctx, `SELECT post_id FROM bookmarks WHERE user_id = $1`, userID, interactions.Bookmarked); err != nil {
		return nil, fmt.Errorf("failed to load bookmarks: %w", err)
	}

	return interactions, nil
}

func (r *Reader) loadItemIDSet(ctx context.Context, sql, userID string, dst map[string]struct{}) error {
	rows, err := r.db.Query(ctx, sql, userID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var itemID string
		if err := rows.Scan(&itemID); err != nil {
			return err
		}
		dst[itemID] = struct{}{}
	}
	return rows.Err()
}
