// Package main Content Discovery API
// @title Content Discovery API
// @version 1.0
// @description Search, trending, recommendation and suggestion queries over a content catalog
// @contact.name API Support
// @contact.email support@pulsepress.io
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
package main

import (
	"log/slog"
	"os"

	"github.com/labstack/echo/v4"
	_ "github.com/pulsepress/discovery/docs"
	"github.com/pulsepress/discovery/internal/engine"
	"github.com/pulsepress/discovery/internal/router"
	"github.com/pulsepress/discovery/internal/server"
	pkgserver "github.com/pulsepress/discovery/pkg/server"
)

func main() {
	sCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	healthChecker := pkgserver.NewOkHealthChecker()

	s := server.New(sCfg, healthChecker).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupOpenApi("/swagger/*")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "Content Discovery API is running")
	})

	appSettings := NewAppConfig()
	cfg, err := appSettings.Load()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
		return
	}

	content, interactions, err := cfg.StoreConfig.NewSources(s.Context())
	if err != nil {
		slog.Error("Failed to create snapshot sources", "error", err)
		os.Exit(1)
		return
	}

	eng := engine.New(content, interactions)

	discoveryRouter := router.NewDiscoveryRouter(s.Echo, eng)
	discoveryRouter.Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
	}()

	err = s.Start()
	if err != nil {
		s.Echo.Logger.Error("Failed to start server: ", err)
		os.Exit(1)
	}
}
