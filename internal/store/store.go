package store

import (
	"context"

	"github.com/pulsepress/discovery/internal/domain"
)

// ContentSource returns the current content snapshot. Implementations must
// publish fully-formed, indexed snapshots atomically; the engine never sees
// a snapshot mid-update.
type ContentSource interface {
	Content(ctx context.Context) (*domain.Snapshot, error)
}

// InteractionSource returns the per-user interaction sets. A user id that
// the store has never seen yields an apperr.UnknownEntityError.
type InteractionSource interface {
	Interactions(ctx context.Context, userID string) (*domain.Interactions, error)
}

type Type string

const (
	Memory Type = "memory"
	File   Type = "file"
	PG     Type = "pg"
	ES     Type = "es"
)

type SourceError string

const (
	ErrUnsupportedSource SourceError = "unsupported store type: %s"
)

func (e SourceError) Error() string {
	return string(e)
}
