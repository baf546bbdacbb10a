package factory

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/pulsepress/discovery/internal/store"
	"github.com/pulsepress/discovery/internal/store/es"
	"github.com/pulsepress/discovery/internal/store/pg"
)

type StoreConfig struct {
	store.Type
	FilePath string
	Pg       *pg.PoolConfig
	Es       *es.ClientConfig
}

func LoadEnv() (*StoreConfig, error) {
	storeType := (store.Type)(os.Getenv("STORE_TYPE"))
	if storeType == "" {
		slog.Error("STORE_TYPE environment variable is not set")
		return nil, fmt.Errorf("STORE_TYPE environment variable is not set")
	}
	if storeType != store.Memory && storeType != store.File && storeType != store.PG && storeType != store.ES {
		slog.Error("Invalid STORE_TYPE environment variable value", "value", storeType)
		return nil, fmt.Errorf(
			"invalid STORE_TYPE environment variable value: %s, expected one of %v",
			storeType,
			[]store.Type{store.Memory, store.File, store.PG, store.ES})
	}

	var filePath string
	if storeType == store.File {
		filePath = os.Getenv("SNAPSHOT_FILE")
		if filePath == "" {
			slog.Error("Snapshot file path is not set")
			return nil, fmt.Errorf("SNAPSHOT_FILE environment variable is not set")
		}
	}

	var pgCfg *pg.PoolConfig
	if storeType == store.PG {
		pgCfg = &pg.PoolConfig{
			ConnStr: os.Getenv("PG_CONNECTION_STRING"),
		}
		if pgCfg.ConnStr == "" {
			slog.Error("PostgreSQL connection string is not set")
			return nil, fmt.Errorf("PostgreSQL connection string is not set")
		}
	}

	var esCfg *es.ClientConfig
	if storeType == store.ES {
		esCfg = &es.ClientConfig{
			Addresses: strings.Split(os.Getenv("ES_ADDRESSES"), ","),
			IndexName: os.Getenv("ES_INDEX_NAME"),
			Username:  os.Getenv("ES_USERNAME"),
			Password:  os.Getenv("ES_PASSWORD"),
		}
		if len(esCfg.Addresses) == 0 || esCfg.IndexName == "" {
			slog.Error("Elasticsearch configuration is incomplete", "addresses", esCfg.Addresses, "indexName", esCfg.IndexName)
			return nil, fmt.Errorf("elasticsearch configuration is incomplete: addresses or index name is missing")
		}
	}

	return &StoreConfig{
		Type:     storeType,
		FilePath: filePath,
		Pg:       pgCfg,
		Es:       esCfg,
	}, nil
}
