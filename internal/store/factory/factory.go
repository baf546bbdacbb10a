package factory

import (
	"context"
	"fmt"

	"github.com/pulsepress/discovery/internal/store"
	"github.com/pulsepress/discovery/internal/store/es"
	"github.com/pulsepress/discovery/internal/store/file"
	"github.com/pulsepress/discovery/internal/store/memory"
	"github.com/pulsepress/discovery/internal/store/pg"
)

// NewSources creates the content and interaction sources for the configured
// backend. The es backend only carries content; interactions are served by
// an empty memory store there, so recommendation calls see every user as
// unknown until a user-aware backend is configured.
func (cfg *StoreConfig) NewSources(ctx context.Context) (store.ContentSource, store.InteractionSource, error) {
	switch cfg.Type {
	case store.Memory:
		s := memory.NewStore()
		return s, s, nil

	case store.File:
		s, err := file.Open(cfg.FilePath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open file store: %w", err)
		}
		return s, s, nil

	case store.PG:
		pool, err := pg.NewConnectionPool(ctx, *cfg.Pg)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create PostgreSQL connection pool: %w", err)
		}
		reader, err := pg.NewReader(pool)
		if err != nil {
			return nil, nil, err
		}
		return reader, reader, nil

	case store.ES:
		reader, err := es.NewReader(*cfg.Es)
		if err != nil {
			return nil, nil, err
		}
		return reader, memory.NewStore(), nil

	default:
		return nil, nil, fmt.Errorf(string(store.ErrUnsupportedSource), cfg.Type)
	}
}
