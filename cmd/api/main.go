package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"library-catalog/config"
	_ "library-catalog/docs" // Swagger docs
	"library-catalog/internal/httpserver"
	"library-catalog/pkg/log"
	"library-catalog/pkg/postgre"
)

// @title       Library Catalog API
// @description CRUD and query API for the physical and digital item catalog.
// @version     1
// @host        localhost:8080
// @schemes     http
//
// @securityDefinitions.apikey ApiKeyAuth
// @in   header
// @name X-API-Key
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Library Catalog API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Store driver: %s", cfg.Database.Driver)

	// 3. Catalog store
	srvCfg := httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		DatabaseDriver: cfg.Database.Driver,
		Auth:           cfg.Auth,
		RateLimit:      cfg.RateLimit,
	}

	if cfg.Database.Driver == "postgres" {
		idle, parseErr := time.ParseDuration(cfg.Database.Postgres.ConnMaxIdleTime)
		if parseErr != nil {
			logger.Warnf(ctx, "Invalid conn_max_idle_time %q, using 5m: %v", cfg.Database.Postgres.ConnMaxIdleTime, parseErr)
			idle = 5 * time.Minute
		}

		pg, connErr := postgre.Connect(ctx, postgre.Config{
			URL:             cfg.Database.Postgres.URL,
			MaxOpenConns:    cfg.Database.Postgres.MaxOpenConns,
			MaxIdleConns:    cfg.Database.Postgres.MaxIdleConns,
			ConnMaxIdleTime: idle,
		})
		if connErr != nil {
			logger.Errorf(ctx, "Failed to connect to postgres: %v", connErr)
			return
		}
		defer pg.Close()
		srvCfg.PostgresDB = pg

		logger.Info(ctx, "Postgres connection established")
	}

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, srvCfg)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
