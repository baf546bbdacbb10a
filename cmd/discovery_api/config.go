package main

import (
	"log/slog"
	"os"

	"github.com/pulsepress/discovery/internal/store/factory"
	"github.com/pulsepress/discovery/pkg/config/env"
)

type AppConfig struct {
	ENV string
}

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type DiscoveryConfig struct {
	StoreConfig factory.StoreConfig
}

func (as *AppConfig) Load() (*DiscoveryConfig, error) {

	err := env.LoadDotEnv(as.ENV, "cmd/discovery_api/.env")
	if err != nil {
		slog.Info("Failed to .env load environment variables, continuing with existing environment variables", "error", err)
	}

	storeCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load store configuration from environment", "error", err)
		return nil, err
	}

	return &DiscoveryConfig{
		StoreConfig: *storeCfg,
	}, nil
}
