// Package main Bills DB API
// @title Bills DB API
// @version 1.0
// @description Stores legislative bill records and serves lookup and title search over them
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/DjordjeVuckovic/bills-db/docs"
	"github.com/DjordjeVuckovic/bills-db/internal/router"
	"github.com/DjordjeVuckovic/bills-db/internal/server"
	"github.com/DjordjeVuckovic/bills-db/internal/storage"
	"github.com/DjordjeVuckovic/bills-db/internal/storage/factory"
	"github.com/labstack/echo/v4"
)

func main() {
	appSettings := NewAppConfig()
	cfg, err := appSettings.Load()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
	}
	slog.SetLogLoggerLevel(cfg.LogLevel)

	sCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	store, err := factory.NewStore(context.Background(), cfg.StorageConfig)
	if err != nil {
		slog.Error("Failed to initialize database", "storageType", cfg.StorageConfig.Type, "error", err)
		os.Exit(1)
	}
	slog.Info("Database initialized successfully", "storageType", cfg.StorageConfig.Type)

	s := server.New(sCfg, storage.NewHealthChecker(store)).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/api/health").
		SetupOpenApi("/swagger/*")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "Bills DB API is running")
	})

	billsRouter := router.NewBillsRouter(s.Echo, store)
	billsRouter.Bind()

	logEndpoints(sCfg.Port)

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
	}()

	err = s.Start()

	if cerr := store.Close(); cerr != nil {
		slog.Error("Failed to close database", "error", cerr)
	}

	if err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}

func logEndpoints(port string) {
	base := fmt.Sprintf("http://localhost:%s", port)
	slog.Info("Available endpoints",
		"health", "GET "+base+"/api/health",
		"insert", "POST "+base+"/api/bills",
		"get", "GET "+base+"/api/bills/:billNumber",
		"search", "GET "+base+"/api/bills/search/:keyword",
		"docs", "GET "+base+"/swagger/index.html",
	)
}
